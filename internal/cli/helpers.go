package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// report is the JSON envelope for every --json output.
type report struct {
	ReportID    string    `json:"report_id"`
	Command     string    `json:"command"`
	GeneratedAt time.Time `json:"generated_at"`
	Data        any       `json:"data"`
}

// writeJSON prints data wrapped in a report envelope.
func writeJSON(w io.Writer, command string, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report{
		ReportID:    "ghg-" + uuid.New().String(),
		Command:     command,
		GeneratedAt: time.Now().UTC(),
		Data:        data,
	})
}

// newTable creates the tab writer used for human-readable output.
func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// formatFloat renders v with thousands separators. Infinities and NaN
// are printed as-is.
func formatFloat(v float64, digits int) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Sprint(v)
	}
	return humanize.CommafWithDigits(v, digits)
}

// formatCount renders an integer with thousands separators.
func formatCount(n int64) string {
	return humanize.Comma(n)
}
