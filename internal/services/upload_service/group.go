package upload_service

import (
	"sort"
	"time"

	"github.com/sunr3d/fshare/models"
)

// GroupByDate buckets entries by UTC creation day, then by group key.
// Dates come out newest first and entries inside a group sorted by name.
func GroupByDate(entries []models.Entry) []models.DateGroup {
	byDate := make(map[string]map[string][]models.Entry)

	for _, e := range entries {
		date := time.Unix(e.Created, 0).UTC().Format(models.DateLayout)

		files, ok := byDate[date]
		if !ok {
			files = make(map[string][]models.Entry)
			byDate[date] = files
		}

		key := e.GroupKey()
		files[key] = append(files[key], e)
	}

	groups := make([]models.DateGroup, 0, len(byDate))
	for date, files := range byDate {
		for _, list := range files {
			sort.SliceStable(list, func(i, j int) bool {
				return list[i].Name < list[j].Name
			})
		}
		groups = append(groups, models.DateGroup{Date: date, Files: files})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date > groups[j].Date
	})

	return groups
}
