package types

import "time"

// CourseRecord represents one course card from the catalog page.
// Fields a card is missing keep their documented defaults; a record is
// never dropped because a sub-element could not be found.
type CourseRecord struct {
	Title    string   `json:"title"`
	Partner  string   `json:"partner"`
	Rating   string   `json:"rating"`  // "-" when the card has no rating
	Reviews  int      `json:"reviews"` // 0 when unknown
	Skills   []string `json:"skills,omitempty"`
	Level    string   `json:"level"`
	Type     string   `json:"type"`
	Duration string   `json:"duration"`
	URL      string   `json:"url"`    // absolute, or empty
	Plus     string   `json:"plus"`   // "plus" or "-"
	Degree   string   `json:"degree"` // "degree" or "-"
}

// HasSkill reports whether the record lists the given skill verbatim.
func (c CourseRecord) HasSkill(skill string) bool {
	for _, s := range c.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// LoadOutcome describes how the dynamic-content load finished.
type LoadOutcome int

const (
	// LoadComplete means the page height stabilized before the scroll bound.
	LoadComplete LoadOutcome = iota
	// LoadIncomplete means the scroll bound was hit while the page was
	// still growing. The captured markup is usable but may be partial.
	LoadIncomplete
)

func (o LoadOutcome) String() string {
	if o == LoadComplete {
		return "complete"
	}
	return "incomplete"
}

// Config holds the configuration for the extractor
type Config struct {
	SettleInterval     time.Duration // pause after each scroll before re-measuring
	MaxScrolls         int           // scroll iterations before giving up on convergence
	Timeout            time.Duration // overall browser/HTTP deadline
	RequestDelay       time.Duration // pacing between HTTP fallback requests
	MaxRetries         int           // HTTP fallback retry attempts
	UseHeadlessBrowser bool
	UserAgent          string
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		SettleInterval:     1 * time.Second,
		MaxScrolls:         60,
		Timeout:            5 * time.Minute,
		RequestDelay:       1 * time.Second,
		MaxRetries:         3,
		UseHeadlessBrowser: true,
		UserAgent:          "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	}
}

// Logger defines the logging interface
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}
