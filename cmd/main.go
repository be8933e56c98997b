package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"coursera-extractor/adapters"
	"coursera-extractor/export"
	"coursera-extractor/extractor"
	"coursera-extractor/internal/types"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	var (
		urlFlag      = flag.String("url", "", "Catalog search URL (default: built from the search flags)")
		outputFlag   = flag.String("output", "coursera_courses.csv", "Output CSV file path")
		partnersFlag = flag.String("partners", "", "Comma-separated partner filter (overrides the default partner list)")
		languageFlag = flag.String("language", "English", "Catalog language filter")
		sortFlag     = flag.String("sort", "NEW", "Catalog sort order")
		plusFlag     = flag.Bool("plus", true, "Restrict the search to Coursera Plus content")
		genaiFlag    = flag.Bool("genai-only", false, "Keep only generative-AI courses")
		settleFlag   = flag.Duration("settle", 1*time.Second, "Pause after each scroll before re-measuring page height")
		maxScrolls   = flag.Int("max-scrolls", 60, "Scroll iterations before giving up on convergence")
		timeoutFlag  = flag.Duration("timeout", 5*time.Minute, "Overall page load timeout")
		httpOnly     = flag.Bool("http-only", false, "Fetch the static page without a headless browser")
		uploadFlag   = flag.Bool("upload", false, "Upload the CSV via SFTP (credentials from SFTP_* env)")
		verbose      = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	// Setup logging
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	if levelStr := os.Getenv("LOG_LEVEL"); levelStr != "" {
		if level, err := logrus.ParseLevel(levelStr); err == nil {
			logger.SetLevel(level)
		}
	} else if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	config := types.DefaultConfig()
	config.SettleInterval = *settleFlag
	config.MaxScrolls = *maxScrolls
	config.Timeout = *timeoutFlag
	config.UseHeadlessBrowser = !*httpOnly

	url := *urlFlag
	if url == "" {
		opts := adapters.DefaultSearchOptions()
		opts.Language = *languageFlag
		opts.SortBy = *sortFlag
		opts.CourseraPlus = *plusFlag
		if *partnersFlag != "" {
			opts.Partners = splitList(*partnersFlag)
		}
		url = opts.URL()
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.Timeout+1*time.Minute)
	defer cancel()

	startTime := time.Now()
	logger.Infof("Starting catalog extraction from %s", url)

	courseExtractor := extractor.NewCourseraExtractor(config, logger)
	defer courseExtractor.Close()

	courses, outcome, err := courseExtractor.ExtractAll(ctx, url)
	if err != nil {
		logger.Fatalf("Extraction failed: %v", err)
	}
	if outcome == types.LoadIncomplete {
		logger.Warn("Catalog load was incomplete, exporting the records that were captured")
	}

	if *genaiFlag {
		filtered := extractor.DefaultGenAIFilter().Apply(courses)
		logger.Infof("Tag filter kept %d of %d courses", len(filtered), len(courses))
		courses = filtered
	}

	written, err := export.ExportCSV(*outputFlag, courses, logger)
	if err != nil {
		logger.Fatalf("Export failed: %v", err)
	}

	if written && *uploadFlag {
		if err := export.UploadCSV(ctx, export.SFTPConfigFromEnv(), *outputFlag, logger); err != nil {
			logger.Fatalf("Upload failed: %v", err)
		}
	}

	logger.Infof("Run completed in %v", time.Since(startTime))
	logger.Infof("Courses exported: %d", len(courses))
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
