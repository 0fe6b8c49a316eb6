package catalog

import (
	"time"

	"shelfkeeper/internal/models"
)

// Stats summarizes the full collection for the dashboard.
type Stats struct {
	Total           int    `json:"total"`
	TotalPages      int    `json:"totalPages"`
	MostFrequentTag string `json:"mostFrequentTag"`
	TagCount        int    `json:"tagCount"`
	RecentRecords   int    `json:"recentRecords"`
}

// Stats computes totals over the whole collection, independent of the
// current view. The most frequent tag is found in a single pass; on a
// tie the tag encountered first wins. RecentRecords counts records whose
// dateAdded falls within the 7 calendar days ending today, inclusive.
func (c *Catalog) Stats() Stats {
	stats := Stats{
		Total:           len(c.records),
		MostFrequentTag: "None",
	}

	tagCounts := make(map[string]int, len(c.records))
	cutoff := c.now().AddDate(0, 0, -7)
	cutoffDate := time.Date(cutoff.Year(), cutoff.Month(), cutoff.Day(), 0, 0, 0, 0, time.UTC)

	for _, r := range c.records {
		stats.TotalPages += r.Pages

		tagCounts[r.Tag]++
		if tagCounts[r.Tag] > stats.TagCount {
			stats.TagCount = tagCounts[r.Tag]
			stats.MostFrequentTag = r.Tag
		}

		if d, err := time.Parse(models.DateLayout, r.DateAdded); err == nil && !d.Before(cutoffDate) {
			stats.RecentRecords++
		}
	}

	return stats
}
