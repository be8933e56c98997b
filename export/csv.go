package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"coursera-extractor/internal/types"
)

// fixedHeader is the schema shared by every run. Keep header order
// exact; the sorted skill vocabulary is appended after it.
var fixedHeader = []string{
	"partner",
	"title",
	"plus",
	"level",
	"type",
	"duration",
	"degree",
	"rating",
	"reviews",
	"url",
}

// SkillVocabulary returns the distinct skills across all records,
// sorted lexicographically. The vocabulary decides the dynamic column
// set, so it can only be built once every record has been extracted.
func SkillVocabulary(records []types.CourseRecord) []string {
	seen := make(map[string]bool)
	var vocab []string
	for _, record := range records {
		for _, skill := range record.Skills {
			if !seen[skill] {
				seen[skill] = true
				vocab = append(vocab, skill)
			}
		}
	}
	sort.Strings(vocab)
	return vocab
}

// WriteCourseCSV writes the wide-format table: the fixed columns
// followed by one column per vocabulary skill, holding the skill's own
// name when the record lists it and empty otherwise. Output is
// deterministic for a given record list.
func WriteCourseCSV(w io.Writer, records []types.CourseRecord) error {
	vocab := SkillVocabulary(records)

	cw := csv.NewWriter(w)
	if err := cw.Write(append(append([]string{}, fixedHeader...), vocab...)); err != nil {
		return err
	}

	for _, record := range records {
		if err := cw.Write(toRow(record, vocab)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func toRow(record types.CourseRecord, vocab []string) []string {
	row := []string{
		record.Partner,
		record.Title,
		record.Plus,
		record.Level,
		record.Type,
		record.Duration,
		record.Degree,
		record.Rating,
		strconv.Itoa(record.Reviews),
		record.URL,
	}

	for _, skill := range vocab {
		if record.HasSkill(skill) {
			row = append(row, skill)
		} else {
			row = append(row, "")
		}
	}
	return row
}

// ExportCSV writes the catalog to path. An empty record list is a
// "no records" outcome, not an error: nothing is written and the
// returned bool reports whether a file was produced.
func ExportCSV(path string, records []types.CourseRecord, logger types.Logger) (bool, error) {
	if len(records) == 0 {
		logger.Warn("No records to export, skipping CSV file")
		return false, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := WriteCourseCSV(file, records); err != nil {
		return false, fmt.Errorf("failed to write CSV: %w", err)
	}

	logger.Infof("Exported %d records to %s", len(records), path)
	return true, nil
}
