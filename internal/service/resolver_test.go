package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/leafthq/leaft/internal/domain"
	"github.com/leafthq/leaft/internal/mocks"
	"github.com/leafthq/leaft/internal/model"
	"github.com/leafthq/leaft/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrganizationResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	refOrg := uuid.New()
	memberOrg := uuid.New()

	t.Run("organization reference wins over membership", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)

		orgRepo.EXPECT().FindByExternalID(gomock.Any(), "org_abc").Return(&model.Organization{ID: refOrg}, nil)
		membershipRepo.EXPECT().FindByUser(gomock.Any(), gomock.Any()).Times(0)

		id, err := service.NewOrganizationResolver(orgRepo, membershipRepo).Resolve(ctx, "user_1", "org_abc")
		require.NoError(t, err)
		assert.Equal(t, refOrg, id)
	})

	t.Run("unknown reference falls back to membership", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)

		orgRepo.EXPECT().FindByExternalID(gomock.Any(), "org_unknown").Return(nil, domain.ErrOrganizationNotFound)
		membershipRepo.EXPECT().FindByUser(gomock.Any(), "user_1").
			Return(&model.UserOrganization{UserID: "user_1", OrganizationID: memberOrg}, nil)

		id, err := service.NewOrganizationResolver(orgRepo, membershipRepo).Resolve(ctx, "user_1", "org_unknown")
		require.NoError(t, err)
		assert.Equal(t, memberOrg, id)
	})

	t.Run("no reference uses membership only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)

		membershipRepo.EXPECT().FindByUser(gomock.Any(), "user_1").
			Return(&model.UserOrganization{OrganizationID: memberOrg}, nil)

		id, err := service.NewOrganizationResolver(orgRepo, membershipRepo).Resolve(ctx, "user_1", "")
		require.NoError(t, err)
		assert.Equal(t, memberOrg, id)
	})

	t.Run("neither path resolves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)

		orgRepo.EXPECT().FindByExternalID(gomock.Any(), "org_x").Return(nil, domain.ErrOrganizationNotFound)
		membershipRepo.EXPECT().FindByUser(gomock.Any(), "user_1").Return(nil, domain.ErrMembershipNotFound)

		id, err := service.NewOrganizationResolver(orgRepo, membershipRepo).Resolve(ctx, "user_1", "org_x")
		assert.ErrorIs(t, err, domain.ErrOrganizationNotFound)
		assert.Equal(t, uuid.Nil, id)
	})

	t.Run("storage failure is not a missing organization", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)

		boom := errors.New("connection reset")
		orgRepo.EXPECT().FindByExternalID(gomock.Any(), "org_x").Return(nil, boom)

		_, err := service.NewOrganizationResolver(orgRepo, membershipRepo).Resolve(ctx, "user_1", "org_x")
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, domain.ErrOrganizationNotFound)
	})

	t.Run("empty user reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)

		_, err := service.NewOrganizationResolver(orgRepo, membershipRepo).Resolve(ctx, "  ", "")
		assert.ErrorIs(t, err, domain.ErrOrganizationNotFound)
	})
}
