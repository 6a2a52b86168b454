package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/leafthq/leaft/internal/auth"
	"github.com/leafthq/leaft/internal/billing"
	"github.com/leafthq/leaft/internal/cache"
	"github.com/leafthq/leaft/internal/handler"
	"github.com/leafthq/leaft/internal/middleware"
	"github.com/leafthq/leaft/internal/model"
	"github.com/leafthq/leaft/internal/repository"
	"github.com/leafthq/leaft/internal/service"
	"github.com/leafthq/leaft/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const webhookSecret = "whsec_test"

type testServer struct {
	t       *testing.T
	db      *gorm.DB
	tokens  *auth.TokenManager
	subRepo *repository.SubscriptionRepository
	router  http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db := testutil.NewDB(t)

	tokens, err := auth.NewTokenManager(auth.TokenConfig{Secret: "test_secret"})
	require.NoError(t, err)

	orgRepo := repository.NewOrganizationRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	deptRepo := repository.NewDepartmentRepository(db)
	familyRepo := repository.NewJobFamilyRepository(db)

	cacheSvc := service.NewCacheService(cache.NewMemoryStore(time.Minute), nil)
	resolver := service.NewOrganizationResolver(orgRepo, repository.NewMembershipRepository(db))
	access := service.NewAccessService(resolver, subRepo, cacheSvc, nil, nil)
	organizations := service.NewOrganizationService(orgRepo, resolver, nil, nil)
	sync := service.NewSubscriptionSyncService(subRepo, orgRepo, nil, cacheSvc, nil, nil)
	checkout := service.NewCheckoutService(orgRepo, nil, sync, service.CheckoutConfig{}, nil)
	webhooks := service.NewWebhookService(billing.NewWebhookVerifier(webhookSecret, 0), sync, cacheSvc, nil, nil, nil)

	h := &handler.Handlers{
		Onboarding:   handler.NewOnboardingHandler(access, organizations),
		Organization: handler.NewOrganizationHandler(organizations),
		Billing:      handler.NewBillingHandler(checkout),
		Webhook:      handler.NewWebhookHandler(webhooks),
		Departments:  handler.NewDepartmentHandler(service.NewDepartmentService(deptRepo)),
		JobFamilies:  handler.NewJobFamilyHandler(service.NewJobFamilyService(familyRepo, deptRepo)),
		Levels:       handler.NewLevelHandler(service.NewLevelService(repository.NewLevelRepository(db), familyRepo, deptRepo)),
		Avantages:    handler.NewAvantageHandler(service.NewAvantageService(repository.NewAvantageRepository(db), deptRepo)),
		GrilleExtras: handler.NewGrilleExtraHandler(service.NewGrilleExtraService(repository.NewGrilleExtraRepository(db), deptRepo)),
	}

	r := chi.NewRouter()
	r.Use(middleware.Authenticate(tokens, "__session"))
	h.Mount(r, middleware.RequireSession, middleware.Tenant(resolver))

	return &testServer{t: t, db: db, tokens: tokens, subRepo: subRepo, router: r}
}

// owner creates an organization owned by userID and returns its id.
func (s *testServer) owner(userID, name string) uuid.UUID {
	org := &model.Organization{Name: name}
	require.NoError(s.t, repository.NewOrganizationRepository(s.db).CreateWithOwner(context.Background(), org, userID))
	return org.ID
}

func (s *testServer) do(userID, method, path string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		token, err := s.tokens.Generate(userID, "", userID+"@acme.test", time.Hour)
		require.NoError(s.t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestRequiresSession(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/departments", "/api/onboarding/check", "/api/organization"} {
		rec := s.do("", http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestWithoutOrganization(t *testing.T) {
	s := newTestServer(t)

	rec := s.do("user_new", http.MethodGet, "/api/departments", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do("user_new", http.MethodGet, "/api/onboarding/check", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	status := decode[model.OnboardingStatus](t, rec)
	assert.False(t, status.HasOrganization)
	assert.False(t, status.HasActiveSubscription)
}

func TestOnboardingOrganization(t *testing.T) {
	s := newTestServer(t)

	rec := s.do("user_1", http.MethodPost, "/api/onboarding/organization", map[string]string{"name": "Acme"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[model.OrganizationSettings](t, rec)
	assert.Equal(t, "Acme", created.Name)

	rec = s.do("user_1", http.MethodPost, "/api/onboarding/organization", map[string]string{"name": "Other"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, decode[model.OrganizationSettings](t, rec).ID)

	rec = s.do("user_1", http.MethodGet, "/api/onboarding/check", nil)
	status := decode[model.OnboardingStatus](t, rec)
	assert.True(t, status.HasOrganization)
	assert.False(t, status.HasActiveSubscription)
	require.NotNil(t, status.OrganizationID)
	assert.Equal(t, created.ID, *status.OrganizationID)

	rec = s.do("user_2", http.MethodPost, "/api/onboarding/organization", map[string]string{"name": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "details")
}

func TestOrganizationSettings(t *testing.T) {
	s := newTestServer(t)
	s.owner("user_1", "Acme")

	rec := s.do("user_1", http.MethodPut, "/api/organization", map[string]interface{}{"salary_transparency_enabled": true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	settings := decode[model.OrganizationSettings](t, rec)
	assert.True(t, settings.SalaryTransparencyEnabled)
	assert.Equal(t, "Acme", settings.Name)

	rec = s.do("user_1", http.MethodGet, "/api/organization", nil)
	assert.True(t, decode[model.OrganizationSettings](t, rec).SalaryTransparencyEnabled)
}

func TestDepartmentsAreTenantScoped(t *testing.T) {
	s := newTestServer(t)
	s.owner("alice", "A")
	s.owner("bob", "B")

	rec := s.do("alice", http.MethodPost, "/api/departments", map[string]string{"name": "Engineering"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	dept := decode[model.Department](t, rec)

	rec = s.do("bob", http.MethodGet, "/api/departments", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]model.Department](t, rec))

	path := "/api/departments/" + dept.ID.String()
	assert.Equal(t, http.StatusNotFound, s.do("bob", http.MethodPut, path, map[string]string{"name": "Stolen"}).Code)
	assert.Equal(t, http.StatusNotFound, s.do("bob", http.MethodDelete, path, nil).Code)

	// Bob cannot hang his records off Alice's department either.
	rec = s.do("bob", http.MethodPost, "/api/job-families", map[string]interface{}{"name": "Backend", "department_id": dept.ID})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do("alice", http.MethodPut, path, map[string]string{"name": "R&D"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "R&D", decode[model.Department](t, rec).Name)

	assert.Equal(t, http.StatusOK, s.do("alice", http.MethodDelete, path, nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do("alice", http.MethodDelete, "/api/departments/not-a-uuid", nil).Code)
}

func TestLevels(t *testing.T) {
	s := newTestServer(t)
	s.owner("alice", "A")
	s.owner("bob", "B")

	rec := s.do("alice", http.MethodPost, "/api/job-families", map[string]string{"name": "Backend"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	family := decode[model.JobFamily](t, rec)

	rec = s.do("alice", http.MethodPost, "/api/levels", map[string]interface{}{
		"name":          "L1",
		"job_family_id": family.ID,
		"order":         1,
		"min_salary":    "40000",
		"mid_salary":    "45000",
		"max_salary":    "50000",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	level := decode[model.Level](t, rec)

	rec = s.do("alice", http.MethodGet, "/api/levels?job_family_id="+family.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Level](t, rec), 1)

	rec = s.do("alice", http.MethodPost, "/api/levels", map[string]interface{}{
		"name": "L2", "job_family_id": family.ID, "department_id": uuid.New(),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do("alice", http.MethodPost, "/api/levels", map[string]interface{}{
		"name": "L2", "job_family_id": family.ID, "min_salary": "60000", "max_salary": "50000",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, http.StatusNotFound, s.do("bob", http.MethodGet, "/api/levels?job_family_id="+family.ID.String(), nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do("bob", http.MethodDelete, "/api/levels/"+level.ID.String(), nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do("alice", http.MethodGet, "/api/levels?department_id=x", nil).Code)
}

func TestAvantagesAndGrilleExtras(t *testing.T) {
	s := newTestServer(t)
	s.owner("alice", "A")

	for i := 0; i < 2; i++ {
		rec := s.do("alice", http.MethodPost, "/api/avantages", map[string]interface{}{
			"name": fmt.Sprintf("Perk %d", i), "annual_amount": "1200",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, i+1, decode[model.Avantage](t, rec).Order)
	}

	rec := s.do("alice", http.MethodPost, "/api/grille-extras", map[string]interface{}{
		"type": "management", "label": "Team lead", "annual_amount": "3000",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do("alice", http.MethodGet, "/api/grille-extras?type=seniority", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]model.GrilleExtra](t, rec))

	rec = s.do("alice", http.MethodGet, "/api/grille-extras?type=management", nil)
	assert.Len(t, decode[[]model.GrilleExtra](t, rec), 1)

	assert.Equal(t, http.StatusBadRequest, s.do("alice", http.MethodGet, "/api/grille-extras?type=bonus", nil).Code)
}

func TestPortalWithoutCustomer(t *testing.T) {
	s := newTestServer(t)
	s.owner("alice", "A")

	rec := s.do("alice", http.MethodPost, "/api/stripe/portal", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestStripeWebhook(t *testing.T) {
	s := newTestServer(t)
	orgID := s.owner("alice", "A")
	now := time.Now()

	payload := []byte(fmt.Sprintf(`{"id":"evt_1","type":"customer.subscription.updated","created":%d,"data":{"object":{
		"id":"sub_1","status":"active","customer":"cus_1",
		"metadata":{"organization_id":%q,"seat_count":"3"},
		"current_period_start":%d,"current_period_end":%d}}}`,
		now.Unix(), orgID.String(), now.Unix(), now.Add(720*time.Hour).Unix()))

	post := func(sig string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", bytes.NewReader(payload))
		req.Header.Set(billing.SignatureHeader, sig)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		return rec
	}

	rec := post(billing.SignatureHeaderValue("whsec_wrong", now, payload))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(billing.SignatureHeaderValue(webhookSecret, now, payload))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, decode[handler.WebhookResponse](t, rec).Received)

	active, err := s.subRepo.HasActive(context.Background(), orgID)
	require.NoError(t, err)
	assert.True(t, active)

	rec = s.do("alice", http.MethodGet, "/api/onboarding/check", nil)
	assert.True(t, decode[model.OnboardingStatus](t, rec).HasActiveSubscription)
}
