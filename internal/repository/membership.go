// internal/repository/membership.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/leafthq/leaft/internal/domain"
	"github.com/leafthq/leaft/internal/model"
	"gorm.io/gorm"
)

type MembershipRepositoryIface interface {
	FindByUser(ctx context.Context, userID string) (*model.UserOrganization, error)
}

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// FindByUser returns the user's membership. Users normally have zero or one;
// when there are several the oldest one wins.
func (r *MembershipRepository) FindByUser(ctx context.Context, userID string) (*model.UserOrganization, error) {
	var m model.UserOrganization
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("finding membership: %w", err)
	}
	return &m, nil
}
