package report

import (
	"encoding/json"
	"fmt"
)

// trendPromptPoints caps how many trend points go into the prompt; the
// model only needs the opening of the series to describe the pattern.
const trendPromptPoints = 5

func sentimentPrompt(counts []Count) string {
	return fmt.Sprintf("Berdasarkan distribusi sentimen berikut (%s), apa 3 wawasan teratas?", compactJSON(counts))
}

func trendPrompt(trend []DailyTotal) string {
	if len(trend) > trendPromptPoints {
		trend = trend[:trendPromptPoints]
	}
	return fmt.Sprintf("Mengingat tren engagement seiring waktu (beberapa titik data pertama: %s), apa 3 wawasan teratas mengenai pola engagement?", compactJSON(trend))
}

func platformPrompt(totals []PlatformTotal) string {
	return fmt.Sprintf("Berdasarkan engagement platform berikut (%s), apa 3 wawasan teratas tentang kinerja platform?", compactJSON(totals))
}

func mediaTypePrompt(counts []Count) string {
	return fmt.Sprintf("Mengingat distribusi tipe media (%s), apa 3 wawasan teratas mengenai jenis konten?", compactJSON(counts))
}

func locationPrompt(counts []Count) string {
	return fmt.Sprintf("Berdasarkan 5 lokasi teratas berikut (%s), apa 3 wawasan geografis teratas?", compactJSON(counts))
}

func compactJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}
