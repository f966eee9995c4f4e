package report

import (
	"sort"
	"time"
)

// Count is a label with the number of mentions carrying it.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// DailyTotal is the summed engagements for one calendar day.
type DailyTotal struct {
	Date        string `json:"date"`
	Engagements int    `json:"engagements"`
}

// PlatformTotal is the summed engagements for one platform.
type PlatformTotal struct {
	Platform    string `json:"platform"`
	Engagements int    `json:"engagements"`
}

// SentimentBreakdown counts mentions per sentiment, most frequent first.
func SentimentBreakdown(mentions []Mention) []Count {
	return countBy(mentions, func(m Mention) string { return m.Sentiment })
}

// EngagementTrend sums engagements per day in chronological order.
func EngagementTrend(mentions []Mention) []DailyTotal {
	totals := make(map[string]int)
	for _, m := range mentions {
		day := m.Date.Format(time.DateOnly)
		totals[day] += m.Engagements
	}
	out := make([]DailyTotal, 0, len(totals))
	for day, sum := range totals {
		out = append(out, DailyTotal{Date: day, Engagements: sum})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// PlatformEngagements sums engagements per platform, highest first.
func PlatformEngagements(mentions []Mention) []PlatformTotal {
	totals := make(map[string]int)
	for _, m := range mentions {
		totals[m.Platform] += m.Engagements
	}
	out := make([]PlatformTotal, 0, len(totals))
	for platform, sum := range totals {
		out = append(out, PlatformTotal{Platform: platform, Engagements: sum})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Engagements != out[j].Engagements {
			return out[i].Engagements > out[j].Engagements
		}
		return out[i].Platform < out[j].Platform
	})
	return out
}

// MediaTypeMix counts mentions per media type, most frequent first.
func MediaTypeMix(mentions []Mention) []Count {
	return countBy(mentions, func(m Mention) string { return m.MediaType })
}

// TopLocations returns the n locations with the most mentions.
func TopLocations(mentions []Mention, n int) []Count {
	counts := countBy(mentions, func(m Mention) string { return m.Location })
	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

func countBy(mentions []Mention, key func(Mention) string) []Count {
	counts := make(map[string]int)
	for _, m := range mentions {
		counts[key(m)]++
	}
	out := make([]Count, 0, len(counts))
	for label, n := range counts {
		out = append(out, Count{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}
