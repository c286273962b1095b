package cmd

import (
	"os"
	"os/signal"

	"github.com/corey/wordfreq/internal/app"
	"github.com/spf13/cobra"
)

// watch re-runs run on every change of path until interrupted.
func watch(cmd *cobra.Command, a *app.App, path string, run func() error) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return a.Watch(ctx, path, run)
}
