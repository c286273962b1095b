// wordfreq reports the most common words of a text file, or how often one
// word occurs in it.
package main

import (
	"fmt"
	"os"

	"github.com/corey/wordfreq/cmd/wordfreq/cmd"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(cmd.ExitCode(err))
}
