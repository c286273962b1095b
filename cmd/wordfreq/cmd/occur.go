package cmd

import (
	"fmt"
	"strings"

	"github.com/corey/wordfreq/internal/app"
	"github.com/corey/wordfreq/internal/domain/words"
	"github.com/spf13/cobra"
)

var (
	occurWatch    bool
	occurJSON     bool
	occurProgress bool
)

var occurCmd = &cobra.Command{
	Use:   "occur [flags] [--] <word> <file>",
	Short: "Count how often a word occurs in a file",
	Long: "Counts case-insensitive occurrences of a single word. The word must be letters with at most one hyphen.\n" +
		"Put -- before a word that starts with '-', otherwise it is read as a flag.",
	Example: "  wordfreq occur cat story.txt\n" +
		"  wordfreq occur --json well-known story.txt\n" +
		"  wordfreq occur -- -well story.txt",
	Args: exactArgs(2),
	RunE:  runOccur,
}

func init() {
	f := occurCmd.Flags()
	f.BoolVarP(&occurWatch, "watch", "w", false, "Re-run whenever the file changes")
	f.BoolVar(&occurJSON, "json", false, "Output in JSON format")
	f.BoolVar(&occurProgress, "progress", false, "Show a progress bar on stderr while scanning")
}

func runOccur(cmd *cobra.Command, args []string) error {
	word, path := strings.TrimSpace(args[0]), args[1]

	// Reject a bad word before touching the file, watch mode included.
	if !words.Valid(word) {
		return &words.InvalidWordError{Word: args[0]}
	}

	color := resolveColor(colorMode, noColor)
	out := cmd.OutOrStdout()

	a := app.New(app.Config{
		TopN:        app.DefaultTopN,
		Progress:    occurProgress,
		ProgressOut: cmd.ErrOrStderr(),
	})

	run := func() error {
		n, err := a.WordOccurrences(word, path)
		if err != nil {
			return err
		}
		if occurJSON {
			return writeJSON(out, occurReport{File: path, Word: strings.ToLower(word), Count: n})
		}
		fmt.Fprint(out, formatOccur(word, path, n, color))
		return nil
	}

	if occurWatch {
		return watch(cmd, a, path, run)
	}
	return run()
}
