package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/misterclayt0n/fitcalc/internal/config"
	"github.com/misterclayt0n/fitcalc/internal/storage"
	"github.com/spf13/cobra"
)

var initDB string

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file and create the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			if cmd.Flags().Changed("db") {
				cfg.DB.ConnectionString = initDB
			}
			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Fprintf(out, "✅ Config written to %s\n", path)
		} else {
			fmt.Fprintf(out, "Config already exists at %s\n", path)
		}

		st, err := storage.NewStorage(cfg)
		if errors.Is(err, storage.ErrNotConfigured) {
			fmt.Fprintln(out, magenta("No database configured; history is disabled until one is set."))
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer st.Close()

		fmt.Fprintln(out, "✅ Database initialized successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
	initSetupCmd.Flags().StringVar(&initDB, "db", "", "Database connection string to store in the new config (e.g. file:./fitcalc.db)")
}
