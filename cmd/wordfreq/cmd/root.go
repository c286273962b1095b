package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	colorMode string
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "wordfreq",
	Short: "wordfreq: word frequencies of a text file",
	Long: "Reports the three most common words of a text file, or how often a single word occurs.\n" +
		"A word is letters with at most one hyphen, surrounded by whitespace.",
	Args:              noArgs,
	PersistentPreRunE: checkColorFlag,
	RunE:              runRoot,
	SilenceErrors:     true,
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// checkColorFlag rejects --color values other than auto, always and never.
func checkColorFlag(cmd *cobra.Command, args []string) error {
	switch colorMode {
	case "auto", "always", "never":
		return nil
	}
	return usageErrorf("invalid --color %q: want auto, always or never", colorMode)
}

func runRoot(cmd *cobra.Command, args []string) error {
	return usageErrorf("missing command")
}

// Execute runs the root command. On a usage error the usage text of the
// offending command is printed to its output before the error is returned.
func Execute() error {
	c, err := rootCmd.ExecuteC()
	if err != nil && c != nil && ExitCode(err) == exitUsage {
		fmt.Fprint(c.OutOrStdout(), c.UsageString())
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Suppress color output")
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError{msg: err.Error()}
	})

	rootCmd.AddCommand(commonCmd)
	rootCmd.AddCommand(occurCmd)
	rootCmd.AddCommand(versionCmd)
}
