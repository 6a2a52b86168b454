package main

import (
	"time"

	leaft "github.com/leafthq/leaft"
	"github.com/leafthq/leaft/internal/config"
	"github.com/leafthq/leaft/internal/database"
	"github.com/spf13/cobra"
)

type migrateOutput struct {
	Command    string   `json:"command"`
	DryRun     bool     `json:"dry_run"`
	DurationMS int64    `json:"duration_ms"`
	Applied    []string `json:"applied"`
	Error      string   `json:"error,omitempty"`
}

func newMigrateCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending SQL migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := database.OpenSQL(cmd.Context(), cfg.URL())
			if err != nil {
				return err
			}
			defer db.Close()

			start := time.Now()
			migrator := database.NewMigrator(db, leaft.MigrationsFS, "migrations")
			applied, runErr := migrator.Up(cmd.Context(), dryRun)

			out := migrateOutput{
				Command:    "migrate",
				DryRun:     dryRun,
				DurationMS: time.Since(start).Milliseconds(),
				Applied:    make([]string, 0, len(applied)),
			}
			for _, m := range applied {
				out.Applied = append(out.Applied, m.Name)
			}
			if runErr != nil {
				out.Error = runErr.Error()
			}
			if err := writeJSON(cmd.OutOrStdout(), out); err != nil {
				return err
			}
			return runErr
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List pending migrations without applying them")
	return cmd
}
