package adapters

import "strings"

const searchBaseURL = courseraOrigin + "/search?"

// SearchOptions describes a catalog search query. The zero value
// searches the whole catalog.
type SearchOptions struct {
	Language     string
	Partners     []string
	ProductTypes []string
	CourseraPlus bool
	SortBy       string
}

// DefaultSearchOptions returns the catalog query used when no flags
// are given: new English Coursera-Plus certificates and specializations
// from the major partners.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Language: "English",
		Partners: []string{
			"IBM",
			"Google",
			"Google Cloud",
			"Microsoft",
			"Amazon Web Services",
			"Meta",
			"Alberta Machine Intelligence Institute",
			"Anthropic",
		},
		ProductTypes: []string{"Professional Certificates", "Specializations"},
		CourseraPlus: true,
		SortBy:       "NEW",
	}
}

// URL composes the search page address. Only spaces need escaping in
// the values Coursera accepts here.
func (o SearchOptions) URL() string {
	var parts []string

	if o.Language != "" {
		parts = append(parts, "language="+escapeQueryValue(o.Language))
	}
	for _, p := range o.Partners {
		parts = append(parts, "partners="+escapeQueryValue(p))
	}
	if o.CourseraPlus {
		parts = append(parts, "isPartOfCourseraPlus=true")
	}
	for _, p := range o.ProductTypes {
		parts = append(parts, "productTypeDescription="+escapeQueryValue(p))
	}
	if o.SortBy != "" {
		parts = append(parts, "sortBy="+o.SortBy)
	}

	return searchBaseURL + strings.Join(parts, "&")
}

func escapeQueryValue(v string) string {
	return strings.ReplaceAll(v, " ", "%20")
}
