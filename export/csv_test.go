package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursera-extractor/internal/types"
)

func testRecords() []types.CourseRecord {
	return []types.CourseRecord{
		{
			Partner:  "DeepLearning.AI",
			Title:    "Machine Learning",
			Plus:     "plus",
			Level:    "Intermediate",
			Type:     "Course",
			Duration: "4 weeks",
			Degree:   "-",
			Rating:   "4.9",
			Reviews:  23000,
			URL:      "https://www.coursera.org/learn/machine-learning",
			Skills:   []string{"SQL", "Python"},
		},
		{
			Partner: "Google",
			Title:   "Data Basics",
			Plus:    "-",
			Degree:  "-",
			Rating:  "-",
			Skills:  []string{"Python"},
		},
	}
}

func testLogger() types.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func TestSkillVocabulary(t *testing.T) {
	vocab := SkillVocabulary(testRecords())
	assert.Equal(t, []string{"Python", "SQL"}, vocab)
}

func TestSkillVocabulary_Empty(t *testing.T) {
	assert.Empty(t, SkillVocabulary(nil))
	assert.Empty(t, SkillVocabulary([]types.CourseRecord{{Title: "No Skills"}}))
}

func TestWriteCourseCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCourseCSV(&buf, testRecords()))

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	header := rows[0]
	assert.Equal(t, []string{
		"partner", "title", "plus", "level", "type", "duration",
		"degree", "rating", "reviews", "url", "Python", "SQL",
	}, header)

	// Row 1 lists both skills, each column carries its own name.
	assert.Equal(t, "Machine Learning", rows[1][1])
	assert.Equal(t, "23000", rows[1][8])
	assert.Equal(t, "Python", rows[1][10])
	assert.Equal(t, "SQL", rows[1][11])

	// Row 2 only lists Python; the SQL column stays empty.
	assert.Equal(t, "Data Basics", rows[2][1])
	assert.Equal(t, "Python", rows[2][10])
	assert.Equal(t, "", rows[2][11])
}

func TestWriteCourseCSV_Deterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, WriteCourseCSV(&first, testRecords()))
	require.NoError(t, WriteCourseCSV(&second, testRecords()))
	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestWriteCourseCSV_QuotesDelimiters(t *testing.T) {
	records := []types.CourseRecord{{
		Partner: "Acme, Inc.",
		Title:   `The "Complete" Course`,
		Plus:    "-",
		Degree:  "-",
		Rating:  "-",
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteCourseCSV(&buf, records))

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Acme, Inc.", rows[1][0])
	assert.Equal(t, `The "Complete" Course`, rows[1][1])
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courses.csv")

	written, err := ExportCSV(path, testRecords(), testLogger())
	require.NoError(t, err)
	assert.True(t, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Machine Learning")
}

func TestExportCSV_NoRecordsWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courses.csv")

	written, err := ExportCSV(path, nil, testLogger())
	require.NoError(t, err)
	assert.False(t, written)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
