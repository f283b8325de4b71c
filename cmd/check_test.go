package cmd

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/colorprofile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triviagame/checkquestions/internal/questions"
	"github.com/triviagame/checkquestions/internal/report"
)

func datasetFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCheck_Success(t *testing.T) {
	var records []string
	for _, level := range []string{"EASY", "MEDIUM", "HARD"} {
		for i := 0; i < 3; i++ {
			records = append(records, `{"category": "Geografie", "difficulty": "`+level+`"}`)
		}
	}
	path := datasetFile(t, "["+strings.Join(records, ",")+"]")

	var out bytes.Buffer
	require.NoError(t, check(path, &out, report.PlainStyles(), discardLogger()))
	assert.Contains(t, out.String(), "Total categories: 1\n")
	assert.Contains(t, out.String(), "Total questions: 9\n")
	assert.Contains(t, out.String(), "✓ All combinations")
}

func TestCheck_ReportsDeficienciesWithoutError(t *testing.T) {
	path := datasetFile(t, `[
		{"category": "Istorie", "difficulty": "EASY"},
		{"category": "Istorie", "difficulty": "EASY"},
		{"category": "Istorie", "difficulty": "HARD"},
		{"category": "Istorie", "difficulty": "HARD"},
		{"category": "Istorie", "difficulty": "HARD"},
		{"category": "Istorie", "difficulty": "HARD"},
		{"category": "Istorie", "difficulty": "HARD"}
	]`)

	var out bytes.Buffer
	require.NoError(t, check(path, &out, report.PlainStyles(), discardLogger()))
	assert.Contains(t, out.String(), "  - Istorie EASY (2/3)\n")
	assert.Contains(t, out.String(), "  - Istorie MEDIUM (0/3)\n")
	assert.Contains(t, out.String(), "Total insufficient combinations: 2\n")
}

func TestCheck_EmptyDataset(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, check(datasetFile(t, `[]`), &out, report.PlainStyles(), discardLogger()))
	assert.Contains(t, out.String(), "Total categories: 0\n")
	assert.Contains(t, out.String(), "Total questions: 0\n")
	assert.Contains(t, out.String(), "✓ All combinations")
}

func TestCheck_MissingFieldStopsBeforeReport(t *testing.T) {
	path := datasetFile(t, `[{"category": "Arta", "difficulty": "EASY"}, {"category": "Arta"}]`)

	var out bytes.Buffer
	err := check(path, &out, report.PlainStyles(), discardLogger())
	require.Error(t, err)

	var missing *questions.ErrMissingField
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "difficulty", missing.Field)
	assert.Empty(t, out.String())
}

func TestCheck_SourceNotFound(t *testing.T) {
	var out bytes.Buffer
	err := check(filepath.Join(t.TempDir(), "questions.json"), &out, report.PlainStyles(), discardLogger())

	var notFound *questions.ErrSourceNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Empty(t, out.String())
}

func TestCheck_WarnsOnUnknownDifficulty(t *testing.T) {
	path := datasetFile(t, `[{"category": "Arta", "difficulty": "EXPERT"}]`)

	var out, logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))
	require.NoError(t, check(path, &out, report.PlainStyles(), logger))
	assert.Contains(t, logs.String(), "difficulty=EXPERT")
	assert.NotContains(t, out.String(), "EXPERT")
}

func TestCheck_RedirectedStyledOutputIsPlain(t *testing.T) {
	path := datasetFile(t, `[
		{"category": "Sport", "difficulty": "EASY"},
		{"category": "Arta", "difficulty": "HARD"}
	]`)

	var plain bytes.Buffer
	require.NoError(t, check(path, &plain, report.PlainStyles(), discardLogger()))

	var styled bytes.Buffer
	out := &colorprofile.Writer{Forward: &styled, Profile: colorprofile.NoTTY}
	require.NoError(t, check(path, out, report.DefaultStyles(), discardLogger()))

	assert.Equal(t, plain.String(), styled.String())
}

func TestRootCommand_ReadsDefaultPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, questions.DefaultPath),
		[]byte(`[{"category": "Sport", "difficulty": "MEDIUM"}]`), 0o644))
	t.Chdir(dir)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs([]string{})
	})

	require.NoError(t, Execute())
	assert.Contains(t, out.String(), "  - Sport\n")
	assert.Contains(t, out.String(), "  - Sport EASY (0/3)\n")
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"other.json"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs([]string{})
	})

	assert.Error(t, Execute())
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs([]string{})
	})

	require.NoError(t, Execute())
	assert.Equal(t, "checkquestions (devel)\n", out.String())
}
