package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "checkquestions",
	Short: "Check quiz question coverage per category and difficulty",
	Long: "checkquestions reads questions.json from the current directory and reports\n" +
		"every category/difficulty combination with fewer than 3 questions.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
