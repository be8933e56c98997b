package adapters

import (
	"regexp"
	"strconv"
	"strings"
)

// Text fragments on the card are adversarial: any of them can be
// missing or malformed. Every function in this file is total and
// degrades to a documented default instead of returning an error.

const (
	skillsLabel       = "Skills you'll gain:"
	metadataDelimiter = " · "
)

var (
	suffixedCountRegex = regexp.MustCompile(`(\d+(?:\.\d+)?)(K|M)`)
	digitRunRegex      = regexp.MustCompile(`\d+`)
)

// splitMetadata splits the combined card metadata string
// ("Intermediate · Course · 4 weeks") into its three parts.
// Missing parts come back as empty strings.
func splitMetadata(text string) (level, courseType, duration string) {
	if text == "" {
		return "", "", ""
	}
	parts := strings.Split(text, metadataDelimiter)
	if len(parts) > 0 {
		level = parts[0]
	}
	if len(parts) > 1 {
		courseType = parts[1]
	}
	if len(parts) > 2 {
		duration = parts[2]
	}
	return level, courseType, duration
}

// parseReviewCount converts a human-readable review count ("12K",
// "1.2M", "457 reviews") to an integer. Magnitude suffixes are
// case-sensitive; fractional values are truncated after scaling.
// Unrecognized input yields 0.
func parseReviewCount(text string) int {
	if m := suffixedCountRegex.FindStringSubmatch(text); m != nil {
		num, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			switch m[2] {
			case "K":
				return int(num * 1000)
			case "M":
				return int(num * 1000000)
			}
		}
	}

	if m := digitRunRegex.FindString(text); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			return n
		}
	}
	return 0
}

// cleanSkillsText strips the leading "Skills you'll gain:" label and
// surrounding whitespace from the card's skills paragraph.
func cleanSkillsText(text string) string {
	if strings.HasPrefix(text, skillsLabel) {
		text = text[len(skillsLabel):]
	}
	return strings.TrimSpace(text)
}

// splitSkills turns a cleaned skills string into a list of distinct,
// trimmed skill names, preserving first-seen order.
func splitSkills(text string) []string {
	if text == "" {
		return nil
	}

	var skills []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(text, ",") {
		skill := strings.TrimSpace(part)
		if skill == "" || seen[skill] {
			continue
		}
		seen[skill] = true
		skills = append(skills, skill)
	}
	return skills
}
