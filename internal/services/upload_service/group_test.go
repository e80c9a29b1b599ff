package upload_service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunr3d/fshare/models"
)

func at(year int, month time.Month, day, hour int) int64 {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC).Unix()
}

func TestGroupByDate(t *testing.T) {
	entries := []models.Entry{
		{Name: "b.txt", Type: models.ArchiveFile("LinkOne"), Size: 10, Created: at(2024, time.March, 9, 10)},
		{Name: "a.txt", Type: models.ArchiveFile("LinkOne"), Size: 10, Created: at(2024, time.March, 9, 10)},
		{Name: "notes.md", Type: models.RegularFile(), Size: 3, Created: at(2024, time.March, 9, 23)},
		{Name: "c.txt", Type: models.ArchiveFile("LinkTwo"), Size: 7, Created: at(2024, time.March, 10, 1)},
		{Name: "old.txt", Type: models.RegularFile(), Size: 1, Created: at(2023, time.December, 31, 12)},
	}

	groups := GroupByDate(entries)

	require.Len(t, groups, 3)
	assert.Equal(t, "2024, 03 10", groups[0].Date)
	assert.Equal(t, "2024, 03 09", groups[1].Date)
	assert.Equal(t, "2023, 12 31", groups[2].Date)

	day := groups[1]
	assert.Equal(t, []string{"LinkOne", "notes.md"}, day.Keys())
	require.Len(t, day.Files["LinkOne"], 2)
	assert.Equal(t, "a.txt", day.Files["LinkOne"][0].Name)
	assert.Equal(t, "b.txt", day.Files["LinkOne"][1].Name)
	assert.Len(t, day.Files["notes.md"], 1)

	assert.Len(t, groups[0].Files["LinkTwo"], 1)
}

func TestGroupByDate_ZeroPaddedOrdering(t *testing.T) {
	entries := []models.Entry{
		{Name: "sep", Type: models.RegularFile(), Created: at(2024, time.September, 30, 0)},
		{Name: "oct", Type: models.RegularFile(), Created: at(2024, time.October, 1, 0)},
		{Name: "nov", Type: models.RegularFile(), Created: at(2024, time.November, 2, 0)},
	}

	groups := GroupByDate(entries)

	require.Len(t, groups, 3)
	assert.Equal(t, "2024, 11 02", groups[0].Date)
	assert.Equal(t, "2024, 10 01", groups[1].Date)
	assert.Equal(t, "2024, 09 30", groups[2].Date)
}

func TestGroupByDate_Empty(t *testing.T) {
	groups := GroupByDate(nil)

	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestGroupByDate_DoesNotMutateInput(t *testing.T) {
	entries := []models.Entry{
		{Name: "b", Type: models.ArchiveFile("L"), Created: at(2024, time.January, 1, 0)},
		{Name: "a", Type: models.ArchiveFile("L"), Created: at(2024, time.January, 1, 0)},
	}

	GroupByDate(entries)

	assert.Equal(t, "b", entries[0].Name)
	assert.Equal(t, "a", entries[1].Name)
}
