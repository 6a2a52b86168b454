package auth

import (
	"context"

	"github.com/google/uuid"
)

// Session is the authenticated caller as seen by handlers.
type Session struct {
	UserID string
	// OrgRef is the identity provider's organization reference, if any.
	OrgRef string
	Email  string
}

type sessionKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the session stored by the session middleware.
func SessionFrom(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}

func (c *Claims) Session() *Session {
	return &Session{
		UserID: c.Subject,
		OrgRef: c.OrgID,
		Email:  c.Email,
	}
}

type organizationKey struct{}

// WithOrganizationID stores the resolved tenant for the request.
func WithOrganizationID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, organizationKey{}, id)
}

// OrganizationIDFrom returns the tenant stored by the tenant middleware.
func OrganizationIDFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(organizationKey{}).(uuid.UUID)
	return id, ok && id != uuid.Nil
}
