package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/leafthq/leaft/internal/service"
	"github.com/spf13/cobra"
)

func newSyncSubscriptionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync-subscription <stripe-subscription-id>",
		Short: "Fetch one subscription from Stripe and store it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if !strings.HasPrefix(id, "sub_") {
				return fmt.Errorf("%q is not a Stripe subscription id", id)
			}

			deps, err := newSyncDeps(cmd.Context())
			if err != nil {
				return err
			}
			defer deps.close()

			sub, err := deps.sync.SyncByID(cmd.Context(), id, service.SyncSourceManual)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), sub)
		},
	}
}

func newReconcileCmd() *cobra.Command {
	var (
		batchSize int
		dryRun    bool
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Re-sync every stored subscription from Stripe",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			deps, err := newSyncDeps(ctx)
			if err != nil {
				return err
			}
			defer deps.close()

			reconciler := service.NewSubscriptionReconciliationService(deps.subRepo, deps.sync, slog.Default())
			reconciler.SetBatchSize(batchSize)
			reconciler.SetDryRun(dryRun)

			report, err := reconciler.ReconcileAll(ctx)
			if report != nil {
				if werr := writeJSON(cmd.OutOrStdout(), report); werr != nil {
					return werr
				}
			}
			if err != nil {
				return err
			}
			if report.Failed > 0 {
				return fmt.Errorf("%d subscriptions failed to sync", report.Failed)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&batchSize, "batch-size", 100, "Number of subscriptions per page")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Count subscriptions without calling Stripe")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Minute, "Maximum time to run reconciliation")
	return cmd
}
