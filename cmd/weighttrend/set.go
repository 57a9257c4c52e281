package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"weighttrend/internal/domain"
)

var (
	flagWeight       float64
	flagComment      string
	flagInputUnit    string
	flagClearWeight  bool
	flagClearComment bool
)

var setCmd = &cobra.Command{
	Use:   "set [YYYY-MM-DD]",
	Short: "Record the weight and/or comment for a day (default: today)",
	Long: "Record the weight and/or comment for a day. Fields that are not given keep\n" +
		"their stored value; use --clear-weight or --clear-comment to remove one.",
	Args: cobra.MaximumNArgs(1),
	RunE: runSet,
}

func init() {
	setCmd.Flags().Float64VarP(&flagWeight, "weight", "w", 0, "Weight for the day")
	setCmd.Flags().StringVarP(&flagComment, "comment", "c", "", "Comment for the day")
	setCmd.Flags().StringVar(&flagInputUnit, "in", "", "Unit of --weight if different from the stored unit (kg or lb)")
	setCmd.Flags().BoolVar(&flagClearWeight, "clear-weight", false, "Remove the day's weight")
	setCmd.Flags().BoolVar(&flagClearComment, "clear-comment", false, "Remove the day's comment")
	setCmd.MarkFlagsMutuallyExclusive("weight", "clear-weight")
	setCmd.MarkFlagsMutuallyExclusive("comment", "clear-comment")
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	setWeight, setComment := flags.Changed("weight"), flags.Changed("comment")
	if !setWeight && !setComment && !flagClearWeight && !flagClearComment {
		return errors.New("nothing to set: pass --weight, --comment or a --clear flag")
	}
	if flagInputUnit != "" {
		if err := domain.ValidUnit(flagInputUnit); err != nil {
			return err
		}
	}

	date := domain.Today()
	if len(args) == 1 {
		d, err := domain.ParseDate(args[0])
		if err != nil {
			return err
		}
		date = d
	}

	e, err := setup(os.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = e.Close() }()

	ctx := cmd.Context()
	existing, err := e.svc.Day(ctx, date)
	if err != nil {
		return err
	}
	weight, comment := existing.Weight, existing.Comment

	switch {
	case setWeight:
		w := flagWeight
		if flagInputUnit != "" {
			w = domain.ConvertWeight(w, flagInputUnit, e.cfg.Display.Unit)
		}
		weight = &w
	case flagClearWeight:
		weight = nil
	}
	switch {
	case setComment:
		c := flagComment
		comment = &c
	case flagClearComment:
		comment = nil
	}

	rec, err := e.svc.SaveDay(ctx, date, weight, comment)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %s saved", rec.Date)
	if rec.Weight != nil {
		fmt.Fprintf(out, "  %.1f %s", *rec.Weight, e.cfg.Display.Unit)
	}
	if rec.Comment != nil {
		fmt.Fprintf(out, "  %q", *rec.Comment)
	}
	fmt.Fprintln(out)
	return nil
}
