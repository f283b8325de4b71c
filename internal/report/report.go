// Package report writes the coverage report as plain text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/triviagame/checkquestions/internal/coverage"
	"github.com/triviagame/checkquestions/internal/questions"
)

const (
	successBanner = "✓ All combinations have at least %d questions for each difficulty!"
	failureBanner = "✗ Insufficient combinations (<%d questions):"
	ruleWidth     = 50
)

// Writer prints coverage reports to an underlying io.Writer.
type Writer struct {
	out    io.Writer
	styles Styles
	err    error
}

// New returns a Writer that prints to out using styles.
func New(out io.Writer, styles Styles) *Writer {
	return &Writer{out: out, styles: styles}
}

// Write prints the full report for t: category listing, distribution
// table, question total and verdict. totalQuestions is the number of input
// records. It returns the deficiencies found; having some is not an error.
func (w *Writer) Write(t coverage.Table, totalQuestions int) ([]coverage.Deficiency, error) {
	w.err = nil
	cats := t.Categories()

	w.println()
	w.println(w.styles.render(w.styles.Heading, "Distinct categories:"))
	for _, c := range cats {
		w.printf("  - %s\n", c)
	}

	w.printf("\nTotal categories: %d\n", t.Len())

	w.println()
	w.println(w.styles.render(w.styles.Heading,
		fmt.Sprintf("Complete distribution (minimum required: %d):", coverage.MinPerLevel)))
	w.printf("%-20s %-8s %-8s %-8s\n", "Category",
		questions.Easy, questions.Medium, questions.Hard)
	w.println(strings.Repeat("-", ruleWidth))
	for _, c := range cats {
		w.printf("%-20s %-8d %-8d %-8d\n", c,
			t.Count(c, questions.Easy),
			t.Count(c, questions.Medium),
			t.Count(c, questions.Hard))
	}

	w.printf("\nTotal questions: %d\n", totalQuestions)

	defs := t.Deficiencies()
	w.println()
	if len(defs) > 0 {
		w.println(w.styles.render(w.styles.Failure, fmt.Sprintf(failureBanner, coverage.MinPerLevel)))
		for _, d := range defs {
			w.printf("  - %s\n", d)
		}
		w.printf("\nTotal insufficient combinations: %d\n", len(defs))
	} else {
		w.println(w.styles.render(w.styles.Success, fmt.Sprintf(successBanner, coverage.MinPerLevel)))
	}

	if w.err != nil {
		return nil, fmt.Errorf("write report: %w", w.err)
	}
	return defs, nil
}

// printf and println remember the first write error so Write can report
// it once at the end.
func (w *Writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format, args...)
}

func (w *Writer) println(args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintln(w.out, args...)
}
