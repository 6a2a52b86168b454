// internal/service/subscription_reconciliation.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leafthq/leaft/internal/repository"
)

// ReconciliationReport summarizes one reconciliation run. Failed counts
// subscriptions worth retrying; Permanent counts those whose Stripe data can
// never sync as is.
type ReconciliationReport struct {
	Scanned   int `json:"scanned"`
	Synced    int `json:"synced"`
	Failed    int `json:"failed"`
	Permanent int `json:"permanent"`
}

// SubscriptionReconciliationService re-reads every stored subscription from
// Stripe and re-applies it, recovering from missed webhook deliveries.
type SubscriptionReconciliationService struct {
	subRepo   repository.SubscriptionRepositoryIface
	sync      *SubscriptionSyncService
	batchSize int
	dryRun    bool // If true, don't make changes, just log
	logger    *slog.Logger
}

func NewSubscriptionReconciliationService(
	subRepo repository.SubscriptionRepositoryIface,
	sync *SubscriptionSyncService,
	logger *slog.Logger,
) *SubscriptionReconciliationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SubscriptionReconciliationService{
		subRepo:   subRepo,
		sync:      sync,
		batchSize: 100,
		logger:    logger,
	}
}

// SetBatchSize sets the number of subscriptions fetched per page
func (s *SubscriptionReconciliationService) SetBatchSize(size int) {
	if size > 0 {
		s.batchSize = size
	}
}

// SetDryRun sets whether to actually make changes or just log what would be done
func (s *SubscriptionReconciliationService) SetDryRun(dryRun bool) {
	s.dryRun = dryRun
}

// ReconcileAll walks the subscriptions table page by page. A failing
// subscription is logged and counted; the run continues with the next one.
func (s *SubscriptionReconciliationService) ReconcileAll(ctx context.Context) (*ReconciliationReport, error) {
	report := &ReconciliationReport{}

	for offset := 0; ; offset += s.batchSize {
		batch, total, err := s.subRepo.FindAllPaginated(ctx, offset, s.batchSize)
		if err != nil {
			return report, fmt.Errorf("fetching subscriptions: %w", err)
		}
		if offset == 0 {
			s.logger.InfoContext(ctx, "reconciling subscriptions", "count", total, "dry_run", s.dryRun)
		}
		if len(batch) == 0 {
			break
		}

		s.logger.InfoContext(ctx, "processing subscription batch", "start", offset, "size", len(batch))

		for _, sub := range batch {
			report.Scanned++

			if s.dryRun {
				s.logger.InfoContext(ctx, "would sync subscription (dry run)",
					"subscriptionID", sub.StripeSubscriptionID,
					"organizationID", sub.OrganizationID,
					"status", sub.Status,
				)
				continue
			}

			stored, err := s.sync.SyncByID(ctx, sub.StripeSubscriptionID, SyncSourceReconciliation)
			if err != nil {
				if IsPermanentSyncError(err) {
					report.Permanent++
					s.logger.WarnContext(ctx, "subscription cannot be synced",
						"subscriptionID", sub.StripeSubscriptionID,
						"error", err,
					)
					continue
				}
				report.Failed++
				s.logger.ErrorContext(ctx, "failed to sync subscription",
					"subscriptionID", sub.StripeSubscriptionID,
					"error", err,
				)
				continue
			}

			report.Synced++
			if stored.Status != sub.Status || stored.SeatCount != sub.SeatCount {
				s.logger.InfoContext(ctx, "subscription drift repaired",
					"subscriptionID", sub.StripeSubscriptionID,
					"status", stored.Status,
					"previousStatus", sub.Status,
					"seatCount", stored.SeatCount,
					"previousSeatCount", sub.SeatCount,
				)
			}
		}

		// Check if context is done between batches
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		if len(batch) < s.batchSize {
			break
		}
	}

	return report, nil
}
