package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

type frontmatter struct {
	RunID       string `yaml:"run_id"`
	GeneratedAt string `yaml:"generated_at"`
	Source      string `yaml:"source"`
	Model       string `yaml:"model"`
	Mentions    int    `yaml:"mentions"`
}

// Write prints the report to w: one table plus the fetched insight per
// section.
func Write(w io.Writer, rep Report) error {
	for i, sec := range rep.Sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "## %s\n\n", sec.Title)

		table := tablewriter.NewWriter(w)
		table.Header(sec.Header)
		for _, row := range sec.Rows {
			table.Append(row)
		}
		table.Render()

		fmt.Fprintf(w, "\n%s\n", sec.Insight)
	}
	return nil
}

// Markdown renders the report as a markdown document with YAML frontmatter.
func Markdown(rep Report) string {
	var b strings.Builder

	fm, _ := yaml.Marshal(frontmatter{
		RunID:       rep.RunID,
		GeneratedAt: rep.GeneratedAt.Format("2006-01-02T15:04:05Z"),
		Source:      rep.Source,
		Model:       rep.Model,
		Mentions:    rep.Mentions,
	})
	b.WriteString("---\n")
	b.Write(fm)
	b.WriteString("---\n\n")
	b.WriteString("# Laporan Intelijen Media\n")

	for _, sec := range rep.Sections {
		b.WriteString("\n## " + sec.Title + "\n\n")
		b.WriteString(markdownTable(sec.Header, sec.Rows))
		b.WriteString("\n" + strings.TrimSpace(sec.Insight) + "\n")
	}
	return b.String()
}

func markdownTable(header []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString("| " + strings.Join(header, " | ") + " |\n")
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	b.WriteString("| " + strings.Join(sep, " | ") + " |\n")
	for _, row := range rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
	return b.String()
}
