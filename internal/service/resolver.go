// internal/service/resolver.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/leafthq/leaft/internal/domain"
	"github.com/leafthq/leaft/internal/repository"
)

// OrganizationResolver maps a session to the internal tenant id.
//
// The identity provider's organization reference wins when it resolves.
// Otherwise the user's membership is used. When neither resolves the
// result is domain.ErrOrganizationNotFound and no tenant id is returned.
type OrganizationResolver struct {
	orgRepo        repository.OrganizationRepositoryIface
	membershipRepo repository.MembershipRepositoryIface
}

func NewOrganizationResolver(
	orgRepo repository.OrganizationRepositoryIface,
	membershipRepo repository.MembershipRepositoryIface,
) *OrganizationResolver {
	return &OrganizationResolver{
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
	}
}

func (r *OrganizationResolver) Resolve(ctx context.Context, userRef, externalOrgRef string) (uuid.UUID, error) {
	if ref := strings.TrimSpace(externalOrgRef); ref != "" {
		org, err := r.orgRepo.FindByExternalID(ctx, ref)
		switch {
		case err == nil:
			return org.ID, nil
		case !errors.Is(err, domain.ErrOrganizationNotFound):
			return uuid.Nil, fmt.Errorf("resolving organization reference: %w", err)
		}
	}

	if userRef = strings.TrimSpace(userRef); userRef == "" {
		return uuid.Nil, domain.ErrOrganizationNotFound
	}

	membership, err := r.membershipRepo.FindByUser(ctx, userRef)
	if err != nil {
		if errors.Is(err, domain.ErrMembershipNotFound) {
			return uuid.Nil, domain.ErrOrganizationNotFound
		}
		return uuid.Nil, fmt.Errorf("resolving membership: %w", err)
	}

	return membership.OrganizationID, nil
}
