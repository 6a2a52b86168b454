// internal/repository/ordering.go
package repository

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/leafthq/leaft/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// nextOrder hands out the next display order for (orgID, scope) inside tx.
// The first call for a scope seeds the counter from the current maximum of
// the scoped rows; later calls increment the stored counter, so values freed
// by deletes are never handed out again.
func nextOrder(tx *gorm.DB, orgID uuid.UUID, scope string, scoped *gorm.DB) (int, error) {
	var current int
	if err := scoped.Select("COALESCE(MAX(display_order), 0)").Scan(&current).Error; err != nil {
		return 0, fmt.Errorf("reading current order: %w", err)
	}

	seq := &model.OrderSequence{
		OrganizationID: orgID,
		Scope:          scope,
		LastValue:      current + 1,
	}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "organization_id"}, {Name: "scope"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"last_value": gorm.Expr("order_sequences.last_value + 1"),
		}),
	}).Create(seq).Error
	if err != nil {
		return 0, fmt.Errorf("advancing order sequence: %w", err)
	}

	var stored model.OrderSequence
	if err := tx.First(&stored, "organization_id = ? AND scope = ?", orgID, scope).Error; err != nil {
		return 0, fmt.Errorf("reading order sequence: %w", err)
	}
	return stored.LastValue, nil
}
