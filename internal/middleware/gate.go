// internal/middleware/gate.go
package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/leafthq/leaft/internal/auth"
	"github.com/leafthq/leaft/internal/service"
)

// CheckoutSessionParam is the query parameter Stripe appends to the
// checkout success URL.
const CheckoutSessionParam = "session_id"

// AccessGate protects product pages. Unauthenticated visitors go to the
// sign-in page with a redirect back; visitors without an organization or
// an active subscription go to onboarding.
func AccessGate(access *service.AccessService, signInURL, onboardingURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, _ := auth.SessionFrom(r.Context())

			d := access.Evaluate(r.Context(), service.AccessRequest{
				Session:           sess,
				CheckoutSessionID: r.URL.Query().Get(CheckoutSessionParam),
			})

			switch d.Decision {
			case service.DecisionAdmit:
				ctx := auth.WithOrganizationID(r.Context(), d.OrganizationID)
				next.ServeHTTP(w, r.WithContext(ctx))
			case service.DecisionSignIn:
				http.Redirect(w, r, signInRedirect(signInURL, r), http.StatusFound)
			case service.DecisionOnboarding:
				http.Redirect(w, r, onboardingURL, http.StatusFound)
			default:
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
		})
	}
}

func signInRedirect(signInURL string, r *http.Request) string {
	sep := "?"
	if strings.Contains(signInURL, "?") {
		sep = "&"
	}
	return signInURL + sep + url.Values{"redirect_url": {requestURL(r)}}.Encode()
}

// requestURL rebuilds the absolute URL the browser asked for.
func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}
