package app

import (
	"io"
	"os"
)

// DefaultTopN is the number of words the common query reports.
const DefaultTopN = 3

// Config controls how queries run. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	TopN        int       // rows returned by CommonWords
	Progress    bool      // render a byte progress bar while scanning
	ProgressOut io.Writer // where the progress bar is drawn
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		TopN:        DefaultTopN,
		ProgressOut: os.Stderr,
	}
}
