// internal/model/catalog.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Department struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	Description    *string   `gorm:"type:text" json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (d *Department) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

type JobFamily struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"organization_id"`
	DepartmentID   *uuid.UUID `gorm:"type:uuid;index" json:"department_id,omitempty"`
	Name           string     `gorm:"type:text;not null" json:"name"`
	Description    *string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (JobFamily) TableName() string {
	return "job_families"
}

func (j *JobFamily) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

// Level has no organization column. Its tenant is the tenant of its parent,
// which is exactly one of JobFamilyID or DepartmentID.
type Level struct {
	ID           uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	JobFamilyID  *uuid.UUID          `gorm:"type:uuid;index" json:"job_family_id,omitempty"`
	DepartmentID *uuid.UUID          `gorm:"type:uuid;index" json:"department_id,omitempty"`
	Name         string              `gorm:"type:text;not null" json:"name"`
	Order        int                 `gorm:"column:display_order;not null;default:0" json:"order"`
	MinSalary    decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"min_salary"`
	MidSalary    decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"mid_salary"`
	MaxSalary    decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"max_salary"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func (l *Level) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// Avantage is a benefit in kind.
type Avantage struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID uuid.UUID       `gorm:"type:uuid;not null;index" json:"organization_id"`
	DepartmentID   *uuid.UUID      `gorm:"type:uuid;index" json:"department_id,omitempty"`
	Name           string          `gorm:"type:text;not null" json:"name"`
	Description    *string         `gorm:"type:text" json:"description,omitempty"`
	AnnualAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"annual_amount"`
	Order          int             `gorm:"column:display_order;not null" json:"order"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (a *Avantage) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

type GrilleExtraType string

const (
	GrilleExtraManagement GrilleExtraType = "management"
	GrilleExtraSeniority  GrilleExtraType = "seniority"
)

// GrilleExtra is a management or seniority supplement on top of the grid.
type GrilleExtra struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID uuid.UUID       `gorm:"type:uuid;not null;index" json:"organization_id"`
	DepartmentID   *uuid.UUID      `gorm:"type:uuid;index" json:"department_id,omitempty"`
	Type           GrilleExtraType `gorm:"type:text;not null" json:"type"`
	Label          string          `gorm:"type:text;not null" json:"label"`
	AnnualAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"annual_amount"`
	Order          int             `gorm:"column:display_order;not null" json:"order"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (g *GrilleExtra) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// OrderSequence holds the last display order handed out for one
// (organization, scope) pair. Values only ever grow.
type OrderSequence struct {
	OrganizationID uuid.UUID `gorm:"type:uuid;primaryKey" json:"organization_id"`
	Scope          string    `gorm:"type:text;primaryKey" json:"scope"`
	LastValue      int       `gorm:"not null" json:"last_value"`
}

func OrderScopeAvantage() string {
	return "avantage"
}

func OrderScopeGrilleExtra(t GrilleExtraType) string {
	return "grille_extra:" + string(t)
}

// All lists every persisted model, parents first.
func All() []interface{} {
	return []interface{}{
		&Organization{},
		&UserOrganization{},
		&Subscription{},
		&Department{},
		&JobFamily{},
		&Level{},
		&Avantage{},
		&GrilleExtra{},
		&OrderSequence{},
	}
}
