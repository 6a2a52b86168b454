package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/leafthq/leaft/internal/billing"
	"github.com/leafthq/leaft/internal/mocks"
	"github.com/leafthq/leaft/internal/model"
	"github.com/leafthq/leaft/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81"
	"go.uber.org/mock/gomock"
)

func TestSubscriptionReconciliation(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	now := time.Now().Unix()

	stored := []*model.Subscription{
		{OrganizationID: orgID, StripeSubscriptionID: "sub_1", Status: "active", SeatCount: 5},
		{OrganizationID: orgID, StripeSubscriptionID: "sub_2", Status: "active", SeatCount: 5},
		{OrganizationID: orgID, StripeSubscriptionID: "sub_3", Status: "trialing", SeatCount: 1},
	}

	remote := func(id, status string) *billing.Subscription {
		return &billing.Subscription{
			ID:                 id,
			Status:             status,
			Customer:           billing.Expandable[billing.Customer]{ID: "cus_1"},
			Metadata:           billing.Metadata{"organization_id": orgID.String(), "seat_count": "5"},
			CurrentPeriodStart: now,
			CurrentPeriodEnd:   now + 3600,
		}
	}

	t.Run("syncs every page and keeps going on failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		subRepo := mocks.NewMockSubscriptionRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		api := mocks.NewMockAPI(ctrl)

		subRepo.EXPECT().FindAllPaginated(gomock.Any(), 0, 2).Return(stored[:2], int64(3), nil)
		subRepo.EXPECT().FindAllPaginated(gomock.Any(), 2, 2).Return(stored[2:], int64(3), nil)

		api.EXPECT().GetSubscription(gomock.Any(), "sub_1").Return(remote("sub_1", "active"), nil)
		api.EXPECT().GetSubscription(gomock.Any(), "sub_2").Return(nil, errors.New("stripe 500"))
		api.EXPECT().GetSubscription(gomock.Any(), "sub_3").Return(remote("sub_3", "canceled"), nil)

		orgRepo.EXPECT().EnsureExists(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		subRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *model.Subscription) (*model.Subscription, error) { return s, nil }).
			Times(2)
		orgRepo.EXPECT().SetStripeCustomerID(gomock.Any(), orgID, "cus_1").Return(nil).Times(2)

		sync := service.NewSubscriptionSyncService(subRepo, orgRepo, api, nil, nil, nil)
		svc := service.NewSubscriptionReconciliationService(subRepo, sync, nil)
		svc.SetBatchSize(2)

		report, err := svc.ReconcileAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, &service.ReconciliationReport{Scanned: 3, Synced: 2, Failed: 1}, report)
	})

	t.Run("separates permanent failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		subRepo := mocks.NewMockSubscriptionRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		api := mocks.NewMockAPI(ctrl)

		subRepo.EXPECT().FindAllPaginated(gomock.Any(), 0, 100).Return(stored, int64(3), nil)

		missing := &stripe.Error{HTTPStatusCode: 404, Code: stripe.ErrorCodeResourceMissing, Msg: "No such subscription"}
		api.EXPECT().GetSubscription(gomock.Any(), "sub_1").Return(nil, fmt.Errorf("retrieving subscription sub_1: %w", missing))

		orphan := remote("sub_2", "active")
		orphan.Metadata = billing.Metadata{}
		api.EXPECT().GetSubscription(gomock.Any(), "sub_2").Return(orphan, nil)
		api.EXPECT().GetCustomer(gomock.Any(), "cus_1").Return(&billing.Customer{ID: "cus_1"}, nil)

		api.EXPECT().GetSubscription(gomock.Any(), "sub_3").Return(nil, errors.New("connection reset"))
		subRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

		sync := service.NewSubscriptionSyncService(subRepo, orgRepo, api, nil, nil, nil)
		report, err := service.NewSubscriptionReconciliationService(subRepo, sync, nil).ReconcileAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, &service.ReconciliationReport{Scanned: 3, Failed: 1, Permanent: 2}, report)
	})

	t.Run("dry run touches nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		subRepo := mocks.NewMockSubscriptionRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		api := mocks.NewMockAPI(ctrl)

		subRepo.EXPECT().FindAllPaginated(gomock.Any(), 0, 100).Return(stored, int64(3), nil)
		api.EXPECT().GetSubscription(gomock.Any(), gomock.Any()).Times(0)
		subRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

		sync := service.NewSubscriptionSyncService(subRepo, orgRepo, api, nil, nil, nil)
		svc := service.NewSubscriptionReconciliationService(subRepo, sync, nil)
		svc.SetDryRun(true)
		svc.SetBatchSize(0)

		report, err := svc.ReconcileAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, report.Scanned)
		assert.Equal(t, 0, report.Synced)
	})
}
