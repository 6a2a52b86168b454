// internal/model/organization.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleOwner  = "Owner"
	RoleMember = "Member"
)

// Organization is the tenant. ExternalOrgID is the identity provider's
// organization reference and is unique when present.
type Organization struct {
	ID                        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ExternalOrgID             *string   `gorm:"type:text;uniqueIndex" json:"external_org_id,omitempty"`
	Name                      string    `gorm:"type:text;not null" json:"name"`
	StripeCustomerID          *string   `gorm:"type:text;index" json:"stripe_customer_id,omitempty"`
	SalaryTransparencyEnabled bool      `gorm:"not null;default:false" json:"salary_transparency_enabled"`
	CreatedAt                 time.Time `json:"created_at"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// UserOrganization links an identity provider user to an organization.
type UserOrganization struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         string    `gorm:"type:text;not null;uniqueIndex:ux_user_organizations_user_org" json:"user_id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_user_organizations_user_org" json:"organization_id"`
	Role           string    `gorm:"type:text;not null" json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (UserOrganization) TableName() string {
	return "user_organizations"
}

func (m *UserOrganization) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// OrganizationSettings is the settings projection exposed by the API.
type OrganizationSettings struct {
	ID                        uuid.UUID `json:"id"`
	Name                      string    `json:"name"`
	SalaryTransparencyEnabled bool      `json:"salary_transparency_enabled"`
	HasBillingCustomer        bool      `json:"has_billing_customer"`
}

func (o *Organization) Settings() OrganizationSettings {
	return OrganizationSettings{
		ID:                        o.ID,
		Name:                      o.Name,
		SalaryTransparencyEnabled: o.SalaryTransparencyEnabled,
		HasBillingCustomer:        o.StripeCustomerID != nil && *o.StripeCustomerID != "",
	}
}
