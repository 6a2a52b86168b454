package service_test

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/leafthq/leaft/internal/domain"
	"github.com/leafthq/leaft/internal/model"
	"github.com/leafthq/leaft/internal/repository"
	"github.com/leafthq/leaft/internal/service"
	"github.com/leafthq/leaft/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type catalog struct {
	db           *gorm.DB
	departments  *service.DepartmentService
	jobFamilies  *service.JobFamilyService
	levels       *service.LevelService
	avantages    *service.AvantageService
	grilleExtras *service.GrilleExtraService
}

func newCatalog(t *testing.T) *catalog {
	db := testutil.NewDB(t)
	deptRepo := repository.NewDepartmentRepository(db)
	familyRepo := repository.NewJobFamilyRepository(db)
	return &catalog{
		db:           db,
		departments:  service.NewDepartmentService(deptRepo),
		jobFamilies:  service.NewJobFamilyService(familyRepo, deptRepo),
		levels:       service.NewLevelService(repository.NewLevelRepository(db), familyRepo, deptRepo),
		avantages:    service.NewAvantageService(repository.NewAvantageRepository(db), deptRepo),
		grilleExtras: service.NewGrilleExtraService(repository.NewGrilleExtraRepository(db), deptRepo),
	}
}

func (c *catalog) org(t *testing.T, name string) uuid.UUID {
	org := &model.Organization{Name: name}
	require.NoError(t, repository.NewOrganizationRepository(c.db).CreateWithOwner(context.Background(), org, "owner_"+name))
	return org.ID
}

func salary(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func TestDepartmentService(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)
	orgA := c.org(t, "a")
	orgB := c.org(t, "b")

	dept, err := c.departments.Create(ctx, orgA, service.DepartmentInput{Name: " Engineering "})
	require.NoError(t, err)
	assert.Equal(t, "Engineering", dept.Name)

	_, err = c.departments.Create(ctx, orgA, service.DepartmentInput{})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	_, err = c.departments.Update(ctx, orgB, dept.ID, service.DepartmentInput{Name: "Hijacked"})
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)
	assert.ErrorIs(t, c.departments.Delete(ctx, orgB, dept.ID), domain.ErrDepartmentNotFound)

	updated, err := c.departments.Update(ctx, orgA, dept.ID, service.DepartmentInput{Name: "Platform"})
	require.NoError(t, err)
	assert.Equal(t, "Platform", updated.Name)

	list, err := c.departments.List(ctx, orgB)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, c.departments.Delete(ctx, orgA, dept.ID))
	list, err = c.departments.List(ctx, orgA)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestJobFamilyService_ForeignDepartment(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)
	orgA := c.org(t, "a")
	orgB := c.org(t, "b")

	foreign, err := c.departments.Create(ctx, orgB, service.DepartmentInput{Name: "Sales"})
	require.NoError(t, err)

	_, err = c.jobFamilies.Create(ctx, orgA, service.JobFamilyInput{Name: "Engineers", DepartmentID: &foreign.ID})
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)

	family, err := c.jobFamilies.Create(ctx, orgA, service.JobFamilyInput{Name: "Engineers"})
	require.NoError(t, err)
	assert.Nil(t, family.DepartmentID)
}

func TestLevelService(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)
	orgA := c.org(t, "a")
	orgB := c.org(t, "b")

	family, err := c.jobFamilies.Create(ctx, orgA, service.JobFamilyInput{Name: "Engineers"})
	require.NoError(t, err)
	dept, err := c.departments.Create(ctx, orgA, service.DepartmentInput{Name: "Support"})
	require.NoError(t, err)
	foreignFamily, err := c.jobFamilies.Create(ctx, orgB, service.JobFamilyInput{Name: "Foreign"})
	require.NoError(t, err)

	t.Run("exactly one parent", func(t *testing.T) {
		_, err := c.levels.Create(ctx, orgA, service.LevelInput{Name: "L1"})
		assert.ErrorIs(t, err, domain.ErrInvalidLevelParent)

		_, err = c.levels.Create(ctx, orgA, service.LevelInput{Name: "L1", JobFamilyID: &family.ID, DepartmentID: &dept.ID})
		assert.ErrorIs(t, err, domain.ErrInvalidLevelParent)
	})

	t.Run("salary bounds ordered", func(t *testing.T) {
		_, err := c.levels.Create(ctx, orgA, service.LevelInput{
			Name:        "L1",
			JobFamilyID: &family.ID,
			MinSalary:   salary("50000"),
			MidSalary:   salary("45000"),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidSalaryBounds)

		_, err = c.levels.Create(ctx, orgA, service.LevelInput{
			Name:        "L1",
			JobFamilyID: &family.ID,
			MinSalary:   salary("-1"),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidSalaryBounds)
	})

	t.Run("foreign parent", func(t *testing.T) {
		_, err := c.levels.Create(ctx, orgA, service.LevelInput{Name: "L1", JobFamilyID: &foreignFamily.ID})
		assert.ErrorIs(t, err, domain.ErrJobFamilyNotFound)

		_, err = c.levels.List(ctx, orgA, repository.LevelFilter{JobFamilyID: &foreignFamily.ID})
		assert.ErrorIs(t, err, domain.ErrJobFamilyNotFound)
	})

	t.Run("create, move and list", func(t *testing.T) {
		level, err := c.levels.Create(ctx, orgA, service.LevelInput{
			Name:        "Senior",
			JobFamilyID: &family.ID,
			Order:       2,
			MinSalary:   salary("50000"),
			MaxSalary:   salary("70000"),
		})
		require.NoError(t, err)

		byFamily, err := c.levels.List(ctx, orgA, repository.LevelFilter{JobFamilyID: &family.ID})
		require.NoError(t, err)
		require.Len(t, byFamily, 1)
		assert.True(t, byFamily[0].MinSalary.Decimal.Equal(decimal.NewFromInt(50000)))
		assert.False(t, byFamily[0].MidSalary.Valid)

		moved, err := c.levels.Update(ctx, orgA, level.ID, service.LevelInput{Name: "Senior", DepartmentID: &dept.ID, Order: 3})
		require.NoError(t, err)
		assert.Nil(t, moved.JobFamilyID)
		assert.Equal(t, 3, moved.Order)

		_, err = c.levels.Update(ctx, orgB, level.ID, service.LevelInput{Name: "x", JobFamilyID: &foreignFamily.ID})
		assert.ErrorIs(t, err, domain.ErrLevelNotFound)

		byDept, err := c.levels.List(ctx, orgA, repository.LevelFilter{DepartmentID: &dept.ID})
		require.NoError(t, err)
		assert.Len(t, byDept, 1)

		assert.ErrorIs(t, c.levels.Delete(ctx, orgB, level.ID), domain.ErrLevelNotFound)
		require.NoError(t, c.levels.Delete(ctx, orgA, level.ID))
	})
}

func TestAvantageService(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)
	orgA := c.org(t, "a")

	_, err := c.avantages.Create(ctx, orgA, service.AvantageInput{Name: "Lunch", AnnualAmount: decimal.NewFromInt(-5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	first, err := c.avantages.Create(ctx, orgA, service.AvantageInput{Name: "Lunch", AnnualAmount: decimal.RequireFromString("1200.50")})
	require.NoError(t, err)
	second, err := c.avantages.Create(ctx, orgA, service.AvantageInput{Name: "Transit", AnnualAmount: decimal.NewFromInt(400)})
	require.NoError(t, err)
	assert.Equal(t, first.Order+1, second.Order)

	updated, err := c.avantages.Update(ctx, orgA, first.ID, service.AvantageInput{Name: "Meal vouchers", AnnualAmount: decimal.NewFromInt(1300)})
	require.NoError(t, err)
	assert.Equal(t, first.Order, updated.Order)
	assert.Equal(t, "Meal vouchers", updated.Name)
}

func TestGrilleExtraService(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)
	orgA := c.org(t, "a")

	_, err := c.grilleExtras.Create(ctx, orgA, service.GrilleExtraInput{Type: "bonus", Label: "x"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	extra, err := c.grilleExtras.Create(ctx, orgA, service.GrilleExtraInput{
		Type:         model.GrilleExtraManagement,
		Label:        "Team lead",
		AnnualAmount: decimal.NewFromInt(3000),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, extra.Order)

	_, err = c.grilleExtras.Update(ctx, orgA, extra.ID, service.GrilleExtraInput{
		Type:  model.GrilleExtraSeniority,
		Label: "Team lead",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	filter, err := service.ParseGrilleExtraType("seniority")
	require.NoError(t, err)
	list, err := c.grilleExtras.List(ctx, orgA, filter)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = service.ParseGrilleExtraType("bonus")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	none, err := service.ParseGrilleExtraType("")
	require.NoError(t, err)
	assert.Nil(t, none)
}
