package cmd

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/fitcalc/internal/bmi"
	"github.com/misterclayt0n/fitcalc/internal/config"
	"github.com/misterclayt0n/fitcalc/internal/lms"
	"github.com/misterclayt0n/fitcalc/internal/storage"
	"github.com/misterclayt0n/fitcalc/internal/units"
	"github.com/spf13/cobra"
)

// How long a command waits for the LMS reference before using the proxy.
const lmsWait = 2 * time.Second

var (
	verbose   bool
	noColor   bool
	unitsFlag string
	lmsPath   string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "fitcalc",
	Short:         "Fitness calculators: BMI, calories, macros, FFMI and one-rep max",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}

		log.SetFlags(0)
		log.SetPrefix("fitcalc: ")
		if verbose {
			log.SetOutput(cmd.ErrOrStderr())
		} else {
			log.SetOutput(io.Discard)
		}

		var err error
		cfg, err = config.LoadConfig()
		return err
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// unitSystem resolves --units, falling back to the configured display units.
func unitSystem(cmd *cobra.Command) (units.System, error) {
	if cmd.Flags().Changed("units") {
		return units.ParseSystem(unitsFlag)
	}
	return units.ParseSystem(cfg.Display.Units)
}

// newEngine builds the BMI engine over a background-loaded LMS reference:
// the --lms or configured dataset file when set, the database otherwise.
// The command waits briefly for the load; until it completes, or when it
// fails, percentiles come from the proxy.
func newEngine(cmd *cobra.Command) *bmi.Engine {
	path := lmsPath
	if path == "" {
		path = cfg.LMS.DatasetPath
	}

	var provider *lms.Lazy
	if path != "" {
		provider = lms.LoadLazy(func() (*lms.Table, error) {
			return lms.Load(path)
		})
	} else {
		provider = lms.LoadLazy(func() (*lms.Table, error) {
			st, err := storage.NewStorage(cfg)
			if err != nil {
				return nil, err
			}
			defer st.Close()
			return st.LoadLMS(context.Background())
		})
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), lmsWait)
	defer cancel()
	if err := provider.Wait(ctx); err != nil {
		if errors.Is(err, storage.ErrNotConfigured) {
			log.Printf("no LMS reference configured, using proxy cutoffs")
		} else {
			log.Printf("LMS reference unavailable, using proxy cutoffs: %v", err)
		}
	}
	return bmi.NewEngine(provider)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print diagnostic notices to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVarP(&unitsFlag, "units", "u", "metric", "Unit system for inputs and output: metric or imperial")
	rootCmd.PersistentFlags().StringVar(&lmsPath, "lms", "", "LMS reference dataset (.toml, .yaml or .json)")
}
