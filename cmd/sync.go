package cmd

import (
	"fmt"

	"github.com/misterclayt0n/fitcalc/internal/storage"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export saved history and the LMS reference to a TOML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var outputFile string
		if len(args) == 1 {
			outputFile = args[0]
		} else {
			var err error
			if outputFile, err = storage.GetDBExportPath(); err != nil {
				return err
			}
		}

		st, err := storage.NewStorage(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ExportDBToTOML(outputFile); err != nil {
			return fmt.Errorf("error exporting database: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Database exported successfully to %s\n", outputFile)
		return nil
	},
}

var buildDBCmd = &cobra.Command{
	Use:   "build-db [dump-file]",
	Short: "Rebuild history and the LMS reference from a TOML dump file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var dumpFile string
		if len(args) == 1 {
			dumpFile = args[0]
		} else {
			var err error
			if dumpFile, err = storage.GetDBExportPath(); err != nil {
				return err
			}
		}

		st, err := storage.NewStorage(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ImportDBFromTOML(dumpFile); err != nil {
			return fmt.Errorf("failed to build database: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✅ Database built successfully from TOML dump.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(buildDBCmd)
}
