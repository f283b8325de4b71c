package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/triviagame/checkquestions/internal/coverage"
	"github.com/triviagame/checkquestions/internal/questions"
	"github.com/triviagame/checkquestions/internal/report"
)

// runCheck loads the dataset, tallies it and prints the coverage report.
func runCheck(cmd *cobra.Command) error {
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	out := cmd.OutOrStdout()
	styles := report.PlainStyles()
	if out == os.Stdout {
		// Downsamples or strips colors when stdout is not a terminal.
		out = colorprofile.NewWriter(os.Stdout, os.Environ())
		styles = report.DefaultStyles()
	}

	return check(questions.DefaultPath, out, styles, logger)
}

func check(path string, out io.Writer, styles report.Styles, logger *slog.Logger) error {
	qs, err := questions.Load(path)
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}

	table := coverage.Tally(qs)
	for _, d := range table.UnknownLevels() {
		logger.Warn("unrecognized difficulty level, counted but not reported",
			"path", path, "difficulty", string(d))
	}

	if _, err := report.New(out, styles).Write(table, len(qs)); err != nil {
		return err
	}
	return nil
}
