package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	reportapp "zes-stations/internal/reporting/application"
	stations "zes-stations/internal/stations/domain"
)

const banner = "Distributing charging stations across cities..."

// Progress prints one line per city while the generator runs.
type Progress struct {
	out io.Writer
}

// NewProgress constructs a progress printer. A nil writer prints to stdout.
func NewProgress(out io.Writer) *Progress {
	if out == nil {
		out = os.Stdout
	}
	return &Progress{out: out}
}

// Banner prints the run banner.
func (p *Progress) Banner() {
	fmt.Fprintf(p.out, "%s\n\n", banner)
}

// CityStarted prints the city's target.
func (p *Progress) CityStarted(_ context.Context, city string, target int) {
	fmt.Fprintf(p.out, "%s: generating %d stations...\n", city, target)
}

// CityCompleted is a no-op; shortfalls are logged by the pipeline.
func (p *Progress) CityCompleted(context.Context, stations.CityResult) {}

// SummaryReporter prints the completion line, the city distribution and the sample listing.
type SummaryReporter struct {
	out  io.Writer
	opts reportapp.Options
}

// NewSummaryReporter constructs a summary reporter. A nil writer prints to stdout.
func NewSummaryReporter(out io.Writer, opts reportapp.Options) *SummaryReporter {
	if out == nil {
		out = os.Stdout
	}
	return &SummaryReporter{out: out, opts: opts}
}

// Report prints the run summary.
func (r *SummaryReporter) Report(_ context.Context, run stations.Run) error {
	return PrintSummary(r.out, reportapp.Summarize(run, r.opts), r.opts)
}

// PrintSummary writes the summary block.
func PrintSummary(out io.Writer, summary reportapp.Summary, opts reportapp.Options) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\nGenerated and saved %d stations in total.\n", summary.Total)

	b.WriteString("\nCITY DISTRIBUTION:\n")
	for _, city := range summary.Top {
		fmt.Fprintf(&b, "  %s: %d stations\n", city.City, city.Count)
	}

	if opts.SampleCity != "" && opts.SampleSize > 0 {
		fmt.Fprintf(&b, "\n%s SAMPLES (first %d):\n", strings.ToUpperSpecial(unicode.TurkishCase, opts.SampleCity), opts.SampleSize)
		for _, sample := range summary.Samples {
			fmt.Fprintf(&b, "  - %s\n", sample)
		}
	}

	_, err := io.WriteString(out, b.String())
	return err
}
