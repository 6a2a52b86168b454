// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Organization-related errors
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrMembershipNotFound   = errors.New("membership not found")

	// Subscription-related errors
	ErrSubscriptionNotFound          = errors.New("subscription not found")
	ErrMissingOrganizationMetadata   = errors.New("organization id missing from subscription and customer metadata")
	ErrInvalidOrganizationMetadata   = errors.New("organization id in billing metadata is not a valid id")
	ErrCheckoutSessionMismatch       = errors.New("checkout session belongs to another organization")
	ErrCheckoutSessionNoSubscription = errors.New("checkout session has no subscription")
	ErrBillingCustomerMissing        = errors.New("organization has no billing customer")

	// Webhook-related errors
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrInvalidPayload   = errors.New("invalid webhook payload")
	ErrEventIgnored     = errors.New("webhook event ignored")

	// Catalog-related errors
	ErrDepartmentNotFound  = errors.New("department not found")
	ErrJobFamilyNotFound   = errors.New("job family not found")
	ErrLevelNotFound       = errors.New("level not found")
	ErrAvantageNotFound    = errors.New("avantage not found")
	ErrGrilleExtraNotFound = errors.New("grille extra not found")
	ErrInvalidLevelParent  = errors.New("level must reference exactly one job family or department")
	ErrInvalidSalaryBounds = errors.New("salary bounds must satisfy min <= mid <= max")
)
