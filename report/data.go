package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Mention is one cleaned row of a media-mentions export.
type Mention struct {
	Date        time.Time
	Platform    string
	Sentiment   string
	Location    string
	Engagements int
	MediaType   string
}

var requiredColumns = []string{"date", "platform", "sentiment", "location", "engagements", "mediatype"}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02/01/2006",
	"1/2/2006",
}

// Load reads and cleans a CSV export. Header names are normalized
// ("Media Type" matches "mediatype"), rows with unparseable dates are
// dropped, missing engagement counts become 0 and empty string fields
// become "Unknown".
func Load(path string) ([]Mention, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func Parse(r io.Reader) ([]Mention, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[normalizeColumnName(name)] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	var mentions []Mention
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		date, ok := parseDate(field(rec, idx["date"]))
		if !ok {
			continue
		}

		mentions = append(mentions, Mention{
			Date:        date,
			Platform:    cleanString(field(rec, idx["platform"])),
			Sentiment:   cleanString(field(rec, idx["sentiment"])),
			Location:    cleanString(field(rec, idx["location"])),
			Engagements: parseEngagements(field(rec, idx["engagements"])),
			MediaType:   cleanString(field(rec, idx["mediatype"])),
		})
	}
	return mentions, nil
}

func normalizeColumnName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "")
	name = strings.ReplaceAll(name, "_", "")
	return name
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseEngagements(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	// Exports sometimes carry counts as floats ("120.0").
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

func cleanString(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "Unknown"
	}
	return s
}
