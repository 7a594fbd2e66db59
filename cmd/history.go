package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/misterclayt0n/fitcalc/internal/models"
	"github.com/misterclayt0n/fitcalc/internal/storage"
	"github.com/misterclayt0n/fitcalc/internal/utils"
	"github.com/spf13/cobra"
)

var (
	historyKind  string
	historyLimit int
	historyClear bool
)

// saveRun stores one calculator run. Input and result are kept as JSON.
func saveRun(cmd *cobra.Command, kind string, input, result interface{}) error {
	in, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to encode input: %w", err)
	}
	out, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	st, err := storage.NewStorage(cfg)
	if err != nil {
		return fmt.Errorf("cannot save: %w", err)
	}
	defer st.Close()

	c, err := st.SaveCalculation(cmd.Context(), models.Calculation{
		Kind:   kind,
		Input:  string(in),
		Result: string(out),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", boldGreen("✅ Saved as"), c.ID)
	return nil
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display saved calculator runs, newest first, optionally filtered by kind",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch historyKind {
		case "", models.KindBMI, models.KindCalories, models.KindMacros, models.KindFFMI, models.KindOneRM:
		default:
			return fmt.Errorf("unknown kind %q", historyKind)
		}

		st, err := storage.NewStorage(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		out := cmd.OutOrStdout()
		if historyClear {
			n, err := st.DeleteCalculations(cmd.Context(), historyKind)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "✅ Deleted %d saved runs\n", n)
			return nil
		}

		runs, err := st.ListCalculations(cmd.Context(), historyKind, historyLimit)
		if err != nil {
			return fmt.Errorf("failed to retrieve history: %w", err)
		}
		if len(runs) == 0 {
			fmt.Fprintln(out, magenta("No saved runs found."))
			return nil
		}

		loc := utils.LoadLocation(cfg.Display.Timezone)
		for i, c := range runs {
			fmt.Fprintf(out, "%s %d. %s (%s)\n", boldGreen("Run"), i+1, c.Kind, c.ID)
			fmt.Fprintf(out, "   %s: %s\n", boldCyan("When"), utils.FormatIn(c.CreatedAt, loc))
			fmt.Fprintf(out, "   %s: %s\n", boldCyan("Input"), c.Input)
			fmt.Fprintf(out, "   %s: %s\n", boldCyan("Result"), c.Result)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVarP(&historyKind, "kind", "k", "", "Only runs of this kind: bmi, calories, macros, ffmi or 1rm")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "Number of runs to display")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Delete the matching runs instead of listing them")
}
