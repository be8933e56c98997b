package extractor

import (
	"strings"

	"coursera-extractor/internal/types"
)

// TagFilter narrows the extracted catalog to courses whose title or
// skills mention one of the configured tags. Short acronyms are matched
// case-sensitively so e.g. "RAG" does not fire on "storage".
type TagFilter struct {
	CaseSensitiveTags []string
	Tags              []string
	SkipURLSuffixes   []string
}

// DefaultGenAIFilter matches generative-AI course listings and skips
// the non-English catalog variants.
func DefaultGenAIFilter() TagFilter {
	return TagFilter{
		CaseSensitiveTags: []string{"RAG", "MCP", "LLM"},
		Tags: []string{
			"Generative AI",
			"AI Dev",
			"AI Agent",
			"AI Engineer",
			"Agents",
			"Agentic",
			"Prompt",
			"GenAI",
			"LangGraph",
			"LangChain",
			"Hugging Face",
			"OpenAI",
			"Retrieval-Augmented Generation",
		},
		SkipURLSuffixes: []string{"-tr", "-ja", "-jp", "-fr", "-ko", "-br", "-es", "-bhid", "-zeka"},
	}
}

// Matches reports whether the course's title or skills mention any
// configured tag.
func (f TagFilter) Matches(course types.CourseRecord) bool {
	text := course.Title + " " + strings.Join(course.Skills, ", ")
	for _, tag := range f.CaseSensitiveTags {
		if strings.Contains(text, tag) {
			return true
		}
	}

	textLower := strings.ToLower(text)
	for _, tag := range f.Tags {
		if strings.Contains(textLower, strings.ToLower(tag)) {
			return true
		}
	}
	return false
}

func (f TagFilter) skippedLanguage(course types.CourseRecord) bool {
	for _, suffix := range f.SkipURLSuffixes {
		if strings.HasSuffix(course.URL, suffix) {
			return true
		}
	}
	return false
}

// Apply returns the courses that match the filter, preserving order.
func (f TagFilter) Apply(courses []types.CourseRecord) []types.CourseRecord {
	var kept []types.CourseRecord
	for _, course := range courses {
		if f.Matches(course) && !f.skippedLanguage(course) {
			kept = append(kept, course)
		}
	}
	return kept
}
