package stats

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Width(16)

	passStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)
)

// Threshold is the |z| above which Render flags a run as non-uniform.
const Threshold = 4.0

// Passed reports whether the histogram is consistent with uniformity.
func (r *Result) Passed() bool {
	return math.Abs(r.ZScore()) < Threshold
}

// Render formats r as a small styled report.
func Render(r *Result) string {
	chi, df := r.ChiSquare()
	verdict := passStyle.Render("uniform")
	if !r.Passed() {
		verdict = failStyle.Render("NOT uniform")
	}

	rows := [][2]string{
		{"range", fmt.Sprintf("[0, %d]", r.N)},
		{"trials", fmt.Sprintf("%d", r.Trials)},
		{"buckets", fmt.Sprintf("%d", len(r.Counts))},
		{"mean", fmt.Sprintf("%.2f (expected %.2f)", r.Mean(), r.ExpectedMean())},
		{"stddev", fmt.Sprintf("%.2f", r.StdDev())},
		{"chi-square", fmt.Sprintf("%.2f on %d df", chi, df)},
		{"z", fmt.Sprintf("%+.2f", r.ZScore())},
		{"rejection rate", fmt.Sprintf("%.3g", r.RejectionRate())},
		{"verdict", verdict},
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("isaac uniformity"))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(row[0]), row[1]))
		b.WriteString("\n")
	}
	return b.String()
}
