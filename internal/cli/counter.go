package cli

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/tada/internal/counter"
	"github.com/idilsaglam/tada/internal/tui"
)

func newCounterCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "counter",
		Short: "Open the counter (+ / - / r, q to quit)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer e.teardown()
			return tui.Run(tui.NewCounter(counter.New()), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
