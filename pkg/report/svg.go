package report

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/dshills/pbt/pkg/runner"
)

// SVGOptions configures the bar chart SVG export.
type SVGOptions struct {
	Width     int    // canvas width in pixels (default 900)
	RowHeight int    // height of one property's bar row (default 36)
	Margin    int    // canvas margin in pixels (default 40)
	Title     string // chart title (default "pbtcheck summary")
}

// DefaultSVGOptions returns sensible defaults.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:     900,
		RowHeight: 36,
		Margin:    40,
		Title:     "pbtcheck summary",
	}
}

// SVG renders a horizontal bar chart, one row per property, bar length
// proportional to samples run and colored by outcome status.
func SVG(summary *runner.Summary, opts SVGOptions) ([]byte, error) {
	if opts.Width <= 0 {
		opts.Width = 900
	}
	if opts.RowHeight <= 0 {
		opts.RowHeight = 36
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}
	if opts.Title == "" {
		opts.Title = "pbtcheck summary"
	}

	height := opts.Margin*2 + 40 + len(summary.Results)*opts.RowHeight

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, height)
	canvas.Rect(0, 0, opts.Width, height, "fill:#1a1a2e")

	canvas.Text(opts.Margin, opts.Margin, fmt.Sprintf("%s (seed=%d)", opts.Title, summary.Seed),
		"fill:#eaeaea;font-size:18px;font-family:monospace")

	maxSamples := 1
	for _, r := range summary.Results {
		if r.SamplesRun > maxSamples {
			maxSamples = r.SamplesRun
		}
	}

	labelWidth := 180
	barAreaWidth := opts.Width - 2*opts.Margin - labelWidth
	if barAreaWidth < 10 {
		barAreaWidth = 10
	}

	y := opts.Margin + 30
	for _, r := range summary.Results {
		barWidth := int(float64(barAreaWidth) * float64(r.SamplesRun) / float64(maxSamples))
		if barWidth < 2 {
			barWidth = 2
		}
		barX := opts.Margin + labelWidth
		barY := y
		canvas.Rect(barX, barY, barWidth, opts.RowHeight-10, fmt.Sprintf("fill:%s", statusColor(r.Status)))
		canvas.Text(opts.Margin, barY+opts.RowHeight-16, truncateLabel(r.Name, 22),
			"fill:#eaeaea;font-size:12px;font-family:monospace")
		canvas.Text(barX+barWidth+8, barY+opts.RowHeight-16, fmt.Sprintf("%s (%d)", r.Status, r.SamplesRun),
			"fill:#9a9a9a;font-size:11px;font-family:monospace")
		y += opts.RowHeight
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile renders SVG(summary, opts) to path with 0644 permissions.
func SaveSVGToFile(summary *runner.Summary, path string, opts SVGOptions) error {
	data, err := SVG(summary, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func statusColor(s runner.Status) string {
	switch s {
	case runner.StatusPassed:
		return "#2ecc71"
	case runner.StatusFailed:
		return "#e74c3c"
	default:
		return "#f39c12"
	}
}

func truncateLabel(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
