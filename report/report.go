// Package report rebuilds the media-intelligence dashboard as a batch run:
// clean a mentions CSV, aggregate five views, and ask the model for the top
// three insights on each.
package report

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taniiarch/mediaintel/insight"
	"github.com/taniiarch/mediaintel/llm"
)

type Section struct {
	Title   string
	Header  []string
	Rows    [][]string
	Insight string
}

type Report struct {
	RunID       string
	GeneratedAt time.Time
	Source      string
	Model       string
	Mentions    int
	Sections    []Section
}

type Options struct {
	// Source labels where the mentions came from (file path), recorded in
	// the report frontmatter.
	Source string
	Model  string
	Logger *slog.Logger
}

// Run aggregates the five dashboard views and fetches one insight per view.
// Sections are produced in a fixed order; a failed insight call shows up as
// the dispatcher's error string inside the section, never as an error here.
func Run(ctx context.Context, client llm.Client, mentions []Mention, opts Options) Report {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = insight.DefaultModel
	}

	runID := uuid.NewString()
	log.Info("report_start", "run_id", runID, "source", opts.Source, "model", model, "mentions", len(mentions))

	fetch := func(prompt string) string {
		return insight.Fetch(ctx, client, prompt, insight.Options{Model: model, Logger: log})
	}

	sentiments := SentimentBreakdown(mentions)
	trend := EngagementTrend(mentions)
	platforms := PlatformEngagements(mentions)
	mediaTypes := MediaTypeMix(mentions)
	locations := TopLocations(mentions, 5)

	sections := []Section{
		{
			Title:   "Rincian Sentimen",
			Header:  []string{"Sentimen", "Jumlah"},
			Rows:    countRows(sentiments),
			Insight: fetch(sentimentPrompt(sentiments)),
		},
		{
			Title:   "Tren Engagement Seiring Waktu",
			Header:  []string{"Tanggal", "Total Engagement"},
			Rows:    trendRows(trend),
			Insight: fetch(trendPrompt(trend)),
		},
		{
			Title:   "Engagement Platform",
			Header:  []string{"Platform", "Total Engagement"},
			Rows:    platformRows(platforms),
			Insight: fetch(platformPrompt(platforms)),
		},
		{
			Title:   "Campuran Tipe Media",
			Header:  []string{"Tipe Media", "Jumlah"},
			Rows:    countRows(mediaTypes),
			Insight: fetch(mediaTypePrompt(mediaTypes)),
		},
		{
			Title:   "5 Lokasi Teratas",
			Header:  []string{"Lokasi", "Jumlah"},
			Rows:    countRows(locations),
			Insight: fetch(locationPrompt(locations)),
		},
	}

	log.Info("report_done", "run_id", runID, "sections", len(sections))

	return Report{
		RunID:       runID,
		GeneratedAt: time.Now().UTC(),
		Source:      opts.Source,
		Model:       model,
		Mentions:    len(mentions),
		Sections:    sections,
	}
}

func countRows(counts []Count) [][]string {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Label, strconv.Itoa(c.Count)})
	}
	return rows
}

func trendRows(trend []DailyTotal) [][]string {
	rows := make([][]string, 0, len(trend))
	for _, d := range trend {
		rows = append(rows, []string{d.Date, strconv.Itoa(d.Engagements)})
	}
	return rows
}

func platformRows(totals []PlatformTotal) [][]string {
	rows := make([][]string, 0, len(totals))
	for _, p := range totals {
		rows = append(rows, []string{p.Platform, strconv.Itoa(p.Engagements)})
	}
	return rows
}
