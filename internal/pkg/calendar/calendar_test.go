package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	pkt := time.FixedZone("PKT", 5*3600)
	today := time.Date(2025, time.March, 10, 9, 0, 0, 0, pkt)

	tests := []struct {
		name  string
		event time.Time
		want  Category
	}{
		{"same day earlier hour", time.Date(2025, time.March, 10, 0, 5, 0, 0, pkt), Happening},
		{"same day later hour", time.Date(2025, time.March, 10, 23, 59, 0, 0, pkt), Happening},
		{"tomorrow", today.AddDate(0, 0, 1), Upcoming},
		{"next year", today.AddDate(1, 0, 0), Upcoming},
		{"yesterday", today.AddDate(0, 0, -1), Expired},
		// 20:00 UTC on the 9th is 01:00 on the 10th in PKT.
		{"utc timestamp crossing midnight", time.Date(2025, time.March, 9, 20, 0, 0, 0, time.UTC), Happening},
		{"utc timestamp before midnight", time.Date(2025, time.March, 9, 18, 0, 0, 0, time.UTC), Expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.event, today))
		})
	}
}

func TestClassify_ConsistentWithChronology(t *testing.T) {
	today := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	rank := map[Category]int{Expired: 0, Happening: 1, Upcoming: 2}

	prev := -1
	for offset := -40; offset <= 40; offset++ {
		c := Classify(today.AddDate(0, 0, offset), today)
		assert.GreaterOrEqual(t, rank[c], prev, "offset %d", offset)
		prev = rank[c]

		switch {
		case offset < 0:
			assert.Equal(t, Expired, c)
		case offset == 0:
			assert.Equal(t, Happening, c)
		default:
			assert.Equal(t, Upcoming, c)
		}
	}
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Happening Now", Happening.Label())
	assert.Equal(t, "Upcoming", Upcoming.Label())
	assert.Equal(t, "Expired", Expired.Label())
}
