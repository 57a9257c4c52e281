package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"weighttrend/internal/adapter/tui"
)

var showCmd = &cobra.Command{
	Use:   "show [YYYY-MM]",
	Short: "Print the grid for a month (default: current month)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	month, err := parseMonthArg(args)
	if err != nil {
		return err
	}

	e, err := setup(os.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = e.Close() }()

	view, err := e.svc.LoadMonth(cmd.Context(), month)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprint(cmd.OutOrStdout(), tui.RenderMonth(view, -1))
	if view.InitialWeight > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "\n  Initial weight: %.1f %s\n", view.InitialWeight, view.Unit)
	}
	return nil
}
