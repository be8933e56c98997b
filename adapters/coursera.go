package adapters

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"coursera-extractor/internal/types"
)

// courseraOrigin is prepended to relative course links.
const courseraOrigin = "https://www.coursera.org"

// Selectors into the rendered search page. Coursera's DOM is an
// external contract that changes between releases; keeping every
// selector here makes a markup bump a one-file change.
const (
	cardSelector        = "ul.cds-9.css-5t8l4v.cds-10 li"
	titleSelector       = "h3.cds-CommonCard-title"
	partnerSelector     = "p.cds-ProductCard-partnerNames"
	ratingSelector      = "span.css-4s48ix"
	reviewsSelector     = "div.css-vac8rf"
	bodyContentSelector = "div.cds-CommonCard-bodyContent"
	skillsParaSelector  = "p.css-vac8rf"
	metadataSelector    = "div.cds-CommonCard-metadata"
	titleLinkSelector   = "a.cds-CommonCard-titleLink"
	plusBadgeSelector   = `img[alt="Coursera Plus"]`
	degreeParaSelector  = "p.css-ls7ln4"
	degreeMarkerText    = "Build toward a degree"
)

// CourseraAdapter turns the rendered search page markup into
// CourseRecord values.
type CourseraAdapter struct {
	logger types.Logger
}

// NewCourseraAdapter creates a new Coursera adapter
func NewCourseraAdapter(logger types.Logger) *CourseraAdapter {
	return &CourseraAdapter{logger: logger}
}

// ParseHTML parses HTML content into a goquery document
func (a *CourseraAdapter) ParseHTML(html string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

// ExtractCourses walks every course card in the document and builds one
// record per card, in document order. A card missing a sub-element
// keeps the default for that field; no card is ever skipped.
func (a *CourseraAdapter) ExtractCourses(doc *goquery.Document) []types.CourseRecord {
	cards := doc.Find(cardSelector)
	a.logger.Infof("Found %d course cards", cards.Length())

	var courses []types.CourseRecord
	cards.Each(func(i int, card *goquery.Selection) {
		courses = append(courses, a.extractCard(card))
	})
	return courses
}

func (a *CourseraAdapter) extractCard(card *goquery.Selection) types.CourseRecord {
	course := types.CourseRecord{
		Rating: "-",
		Plus:   "-",
		Degree: "-",
	}

	course.Title = strings.TrimSpace(card.Find(titleSelector).First().Text())
	course.Partner = strings.TrimSpace(card.Find(partnerSelector).First().Text())

	// The review count only lives in the element right after the
	// rating, and only when that element actually talks about reviews.
	// Anything else in the same class is unrelated body text.
	rating := card.Find(ratingSelector).First()
	if rating.Length() > 0 {
		course.Rating = strings.TrimSpace(rating.Text())

		reviews := rating.NextFiltered(reviewsSelector)
		if reviews.Length() > 0 && strings.Contains(strings.ToLower(reviews.Text()), "reviews") {
			course.Reviews = parseReviewCount(strings.TrimSpace(reviews.Text()))
		}
	}

	skillsPara := card.Find(bodyContentSelector).First().Find(skillsParaSelector).First()
	course.Skills = splitSkills(cleanSkillsText(strings.TrimSpace(skillsPara.Text())))

	metadata := strings.TrimSpace(card.Find(metadataSelector).First().Find("p").First().Text())
	course.Level, course.Type, course.Duration = splitMetadata(metadata)

	if href, exists := card.Find(titleLinkSelector).First().Attr("href"); exists {
		if strings.HasPrefix(href, "http") {
			course.URL = href
		} else {
			course.URL = courseraOrigin + href
		}
	}

	if card.Find(plusBadgeSelector).Length() > 0 {
		course.Plus = "plus"
	}

	degreePara := card.Find(degreeParaSelector).First()
	if degreePara.Length() > 0 && strings.Contains(degreePara.Text(), degreeMarkerText) {
		course.Degree = "degree"
	}

	return course
}
