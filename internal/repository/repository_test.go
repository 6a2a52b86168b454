package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/leafthq/leaft/internal/domain"
	"github.com/leafthq/leaft/internal/model"
	"github.com/leafthq/leaft/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func seedOrganization(t *testing.T, db *gorm.DB, name string) *model.Organization {
	t.Helper()
	org := &model.Organization{Name: name}
	require.NoError(t, db.Create(org).Error)
	return org
}

func TestOrganizationRepository_CreateWithOwner(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewOrganizationRepository(db)
	ctx := context.Background()

	org := &model.Organization{Name: "Acme", ExternalOrgID: strPtr("org_ext_1")}
	require.NoError(t, repo.CreateWithOwner(ctx, org, "user_1"))
	assert.NotEqual(t, uuid.Nil, org.ID)

	found, err := repo.FindByExternalID(ctx, "org_ext_1")
	require.NoError(t, err)
	assert.Equal(t, org.ID, found.ID)

	var memberships []model.UserOrganization
	require.NoError(t, db.Find(&memberships, "user_id = ?", "user_1").Error)
	require.Len(t, memberships, 1)
	assert.Equal(t, model.RoleOwner, memberships[0].Role)

	_, err = repo.FindByExternalID(ctx, "org_missing")
	assert.ErrorIs(t, err, domain.ErrOrganizationNotFound)
}

func TestOrganizationRepository_CreateWithOwnerRollsBack(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewOrganizationRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateWithOwner(ctx, &model.Organization{Name: "Acme", ExternalOrgID: strPtr("org_ext_1")}, "user_1"))

	err := repo.CreateWithOwner(ctx, &model.Organization{Name: "Acme again", ExternalOrgID: strPtr("org_ext_1")}, "user_2")
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&model.UserOrganization{}).Where("user_id = ?", "user_2").Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&model.Organization{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestOrganizationRepository_SetStripeCustomerIDKeepsExisting(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewOrganizationRepository(db)
	ctx := context.Background()

	org := seedOrganization(t, db, "Acme")

	require.NoError(t, repo.SetStripeCustomerID(ctx, org.ID, "cus_first"))
	require.NoError(t, repo.SetStripeCustomerID(ctx, org.ID, "cus_second"))

	found, err := repo.FindByID(ctx, org.ID)
	require.NoError(t, err)
	require.NotNil(t, found.StripeCustomerID)
	assert.Equal(t, "cus_first", *found.StripeCustomerID)
}

func TestOrganizationRepository_EnsureExistsKeepsExistingRow(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewOrganizationRepository(db)
	ctx := context.Background()

	org := seedOrganization(t, db, "Acme")

	require.NoError(t, repo.EnsureExists(ctx, &model.Organization{ID: org.ID, Name: "Organization"}))
	found, err := repo.FindByID(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", found.Name)

	placeholder := &model.Organization{ID: uuid.New(), Name: "Organization"}
	require.NoError(t, repo.EnsureExists(ctx, placeholder))
	found, err = repo.FindByID(ctx, placeholder.ID)
	require.NoError(t, err)
	assert.Equal(t, "Organization", found.Name)
}

func TestMembershipRepository_FindByUserOldestWins(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewMembershipRepository(db)
	ctx := context.Background()

	first := seedOrganization(t, db, "First")
	second := seedOrganization(t, db, "Second")

	now := time.Now()
	require.NoError(t, db.Create(&model.UserOrganization{UserID: "user_1", OrganizationID: second.ID, Role: model.RoleMember, CreatedAt: now}).Error)
	require.NoError(t, db.Create(&model.UserOrganization{UserID: "user_1", OrganizationID: first.ID, Role: model.RoleOwner, CreatedAt: now.Add(-time.Hour)}).Error)

	m, err := repo.FindByUser(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, m.OrganizationID)

	_, err = repo.FindByUser(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrMembershipNotFound)
}

func TestSubscriptionRepository_UpsertIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()
	org := seedOrganization(t, db, "Acme")

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	snapshot := func() *model.Subscription {
		return &model.Subscription{
			OrganizationID:       org.ID,
			StripeSubscriptionID: "sub_123",
			StripeCustomerID:     "cus_123",
			Status:               model.SubscriptionStatusActive,
			PlanType:             model.PlanMonthly,
			SeatCount:            12,
			CurrentPeriodStart:   start,
			CurrentPeriodEnd:     start.AddDate(0, 1, 0),
		}
	}

	first, err := repo.Upsert(ctx, snapshot())
	require.NoError(t, err)
	second, err := repo.Upsert(ctx, snapshot())
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Subscription{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 12, second.SeatCount)

	updated := snapshot()
	updated.SeatCount = 20
	updated.Status = model.SubscriptionStatusPastDue
	third, err := repo.Upsert(ctx, updated)
	require.NoError(t, err)
	assert.Equal(t, first.ID, third.ID)
	assert.Equal(t, 20, third.SeatCount)
	assert.Equal(t, model.SubscriptionStatusPastDue, third.Status)
}

func TestSubscriptionRepository_HasActive(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()
	org := seedOrganization(t, db, "Acme")

	active, err := repo.HasActive(ctx, org.ID)
	require.NoError(t, err)
	assert.False(t, active)

	sub := &model.Subscription{
		OrganizationID:       org.ID,
		StripeSubscriptionID: "sub_trial",
		StripeCustomerID:     "cus_1",
		Status:               model.SubscriptionStatusTrialing,
		PlanType:             model.PlanAnnual,
		CurrentPeriodStart:   time.Now(),
		CurrentPeriodEnd:     time.Now().AddDate(1, 0, 0),
	}
	_, err = repo.Upsert(ctx, sub)
	require.NoError(t, err)

	active, err = repo.HasActive(ctx, org.ID)
	require.NoError(t, err)
	assert.True(t, active)

	canceled := *sub
	canceled.ID = uuid.Nil
	canceled.Status = model.SubscriptionStatusCanceled
	_, err = repo.Upsert(ctx, &canceled)
	require.NoError(t, err)

	active, err = repo.HasActive(ctx, org.ID)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestDepartmentRepository_ForeignTenantIsNotFound(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewDepartmentRepository(db)
	ctx := context.Background()

	mine := seedOrganization(t, db, "Mine")
	theirs := seedOrganization(t, db, "Theirs")

	dept := &model.Department{OrganizationID: theirs.ID, Name: "Sales"}
	require.NoError(t, repo.Create(ctx, dept))

	_, err := repo.FindByID(ctx, mine.ID, dept.ID)
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)

	err = repo.Delete(ctx, mine.ID, dept.ID)
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)

	found, err := repo.FindByID(ctx, theirs.ID, dept.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sales", found.Name)
}

func TestLevelRepository_TenantDerivedFromParent(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	levels := NewLevelRepository(db)

	mine := seedOrganization(t, db, "Mine")
	theirs := seedOrganization(t, db, "Theirs")

	myFamily := &model.JobFamily{OrganizationID: mine.ID, Name: "Engineering"}
	require.NoError(t, db.Create(myFamily).Error)
	theirDept := &model.Department{OrganizationID: theirs.ID, Name: "Ops"}
	require.NoError(t, db.Create(theirDept).Error)

	mid := decimal.NewNullDecimal(decimal.NewFromInt(50000))
	myLevel := &model.Level{JobFamilyID: &myFamily.ID, Name: "L1", Order: 1, MidSalary: mid}
	require.NoError(t, levels.Create(ctx, myLevel))
	theirLevel := &model.Level{DepartmentID: &theirDept.ID, Name: "Junior", Order: 1}
	require.NoError(t, levels.Create(ctx, theirLevel))

	list, err := levels.List(ctx, mine.ID, LevelFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, myLevel.ID, list[0].ID)
	assert.True(t, list[0].MidSalary.Valid)
	assert.True(t, list[0].MidSalary.Decimal.Equal(decimal.NewFromInt(50000)))

	list, err = levels.List(ctx, mine.ID, LevelFilter{JobFamilyID: &myFamily.ID})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = levels.FindByID(ctx, mine.ID, theirLevel.ID)
	assert.ErrorIs(t, err, domain.ErrLevelNotFound)

	err = levels.Delete(ctx, mine.ID, theirLevel.ID)
	assert.ErrorIs(t, err, domain.ErrLevelNotFound)

	require.NoError(t, levels.Delete(ctx, mine.ID, myLevel.ID))
}

func TestGrilleExtraRepository_OrderNeverReused(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewGrilleExtraRepository(db)
	ctx := context.Background()
	org := seedOrganization(t, db, "Acme")

	create := func(extraType model.GrilleExtraType, label string) *model.GrilleExtra {
		extra := &model.GrilleExtra{
			OrganizationID: org.ID,
			Type:           extraType,
			Label:          label,
			AnnualAmount:   decimal.NewFromInt(1200),
		}
		require.NoError(t, repo.Create(ctx, extra))
		return extra
	}

	a := create(model.GrilleExtraManagement, "Team lead")
	b := create(model.GrilleExtraManagement, "Manager")
	assert.Equal(t, 1, a.Order)
	assert.Equal(t, 2, b.Order)

	s := create(model.GrilleExtraSeniority, "5 years")
	assert.Equal(t, 1, s.Order)

	require.NoError(t, repo.Delete(ctx, org.ID, b.ID))

	c := create(model.GrilleExtraManagement, "Director")
	assert.Equal(t, 3, c.Order)

	management := model.GrilleExtraManagement
	list, err := repo.List(ctx, org.ID, &management)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, []int{1, 3}, []int{list[0].Order, list[1].Order})
}

func TestAvantageRepository_SeedsFromExistingRows(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewAvantageRepository(db)
	ctx := context.Background()
	org := seedOrganization(t, db, "Acme")

	legacy := &model.Avantage{OrganizationID: org.ID, Name: "Lunch", AnnualAmount: decimal.NewFromInt(600), Order: 7}
	require.NoError(t, db.Create(legacy).Error)

	next := &model.Avantage{OrganizationID: org.ID, Name: "Transport", AnnualAmount: decimal.NewFromInt(300)}
	require.NoError(t, repo.Create(ctx, next))
	assert.Equal(t, 8, next.Order)

	other := seedOrganization(t, db, "Other")
	first := &model.Avantage{OrganizationID: other.ID, Name: "Gym", AnnualAmount: decimal.NewFromInt(400)}
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, 1, first.Order)
}
