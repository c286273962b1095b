package cmd

import (
	"fmt"

	"github.com/corey/wordfreq/internal/app"
	"github.com/spf13/cobra"
)

var (
	commonTop      int
	commonCounts   bool
	commonWatch    bool
	commonJSON     bool
	commonProgress bool
)

var commonCmd = &cobra.Command{
	Use:   "common [flags] <file>",
	Short: "Print the three most common words in a file",
	Long:  "Scans the file once and prints its most frequent words, most frequent first. Ties keep the order words first appear in.",
	Args:  exactArgs(1),
	RunE:  runCommon,
}

func init() {
	f := commonCmd.Flags()
	f.IntVarP(&commonTop, "top", "n", app.DefaultTopN, "Number of words to report")
	f.BoolVarP(&commonCounts, "counts", "c", false, "Show the count of each word")
	f.BoolVarP(&commonWatch, "watch", "w", false, "Re-run whenever the file changes")
	f.BoolVar(&commonJSON, "json", false, "Output in JSON format")
	f.BoolVar(&commonProgress, "progress", false, "Show a progress bar on stderr while scanning")
}

func runCommon(cmd *cobra.Command, args []string) error {
	if commonTop < 1 {
		return usageErrorf("--top must be at least 1, got %d", commonTop)
	}
	path := args[0]
	color := resolveColor(colorMode, noColor)
	out := cmd.OutOrStdout()

	a := app.New(app.Config{
		TopN:        commonTop,
		Progress:    commonProgress,
		ProgressOut: cmd.ErrOrStderr(),
	})

	run := func() error {
		entries, err := a.CommonWords(path)
		if err != nil {
			return err
		}
		if commonJSON {
			return writeJSON(out, commonReport{File: path, Words: entries})
		}
		fmt.Fprint(out, formatCommon(entries, commonTop, commonCounts, color))
		return nil
	}

	if commonWatch {
		return watch(cmd, a, path, run)
	}
	return run()
}
