package catalogrepo_test

import (
	"context"
	"testing"
	"time"

	"clinicmeals/internal/adapters/out/postgres/catalogrepo"
	"clinicmeals/internal/adapters/out/postgres/pgtest"
	"clinicmeals/internal/core/domain/model/catalog"
	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var pngHeader = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d}

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type CatalogRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg      *pgtest.Database
	weekly  *catalogrepo.GormWeeklyMenuRepository
	menus   *catalogrepo.GormEmployeeMenuRepository
	tracker *MockAggregateTracker
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.weekly = catalogrepo.NewGormWeeklyMenuRepository(suite.pg.DB, suite.tracker)
	suite.menus = catalogrepo.NewGormEmployeeMenuRepository(suite.pg.DB, suite.tracker)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Stop(context.Background()))
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestWeekly_AddListAndToggle() {
	ctx := context.Background()
	slot := catalog.Slot{Day: kernel.Tuesday, Diet: kernel.DietSaltFree, MealType: kernel.Dinner}
	first, err := catalog.NewWeeklyMenuItem(kernel.NewUUID(), slot, "Soupe de légumes", "", time.Now().Add(-time.Hour))
	suite.Require().NoError(err)
	second, err := catalog.NewWeeklyMenuItem(kernel.NewUUID(), slot, "Riz au poisson", "sans sauce", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.weekly.Add(ctx, second))
	suite.Require().NoError(suite.weekly.Add(ctx, first))

	first.SetAvailable(false)
	suite.Require().NoError(suite.weekly.Update(ctx, first))

	items, err := suite.weekly.ListAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	suite.Equal(first.ID(), items[0].ID())
	suite.False(items[0].IsAvailable())
	suite.Equal(slot, items[1].Slot())
	suite.Equal("Riz au poisson - sans sauce", items[1].DishText())
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestWeekly_UpdateUnknown() {
	item, err := catalog.NewWeeklyMenuItem(kernel.NewUUID(),
		catalog.Slot{Day: kernel.Monday, Diet: kernel.DietNormal, MealType: kernel.Lunch},
		"Poulet rôti", "", time.Now())
	suite.Require().NoError(err)

	suite.Require().ErrorIs(suite.weekly.Update(context.Background(), item), errs.ErrObjectNotFound)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestEmployeeMenu_PriceAndPhoto() {
	ctx := context.Background()
	menu, err := catalog.NewEmployeeMenu(kernel.NewUUID(), "Poulet yassa", "riz blanc", kernel.MustPrice(1500), time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.menus.Add(ctx, menu))

	photo, err := catalog.NewPhoto(pngHeader)
	suite.Require().NoError(err)
	suite.Require().NoError(menu.AttachPhoto(photo))
	suite.Require().NoError(menu.ChangePrice(kernel.MustPrice(1750)))
	suite.Require().NoError(suite.menus.Update(ctx, menu))

	got, err := suite.menus.Get(ctx, menu.ID())
	suite.Require().NoError(err)
	suite.True(got.BasePrice().IsEqual(kernel.MustPrice(1750)))
	suite.Equal("image/png", got.Photo().ContentType())
	suite.Equal(pngHeader, got.Photo().Data())
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestEmployeeMenu_ListedMenusKeepTheirPhotoOnUpdate() {
	ctx := context.Background()
	menu, err := catalog.NewEmployeeMenu(kernel.NewUUID(), "Thiéboudienne", "", kernel.MustPrice(2000), time.Now())
	suite.Require().NoError(err)
	photo, err := catalog.NewPhoto(pngHeader)
	suite.Require().NoError(err)
	suite.Require().NoError(menu.AttachPhoto(photo))
	suite.Require().NoError(suite.menus.Add(ctx, menu))

	listed, err := suite.menus.ListAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(listed, 1)
	suite.True(listed[0].Photo().IsEmpty())

	listed[0].SetAvailable(false)
	suite.Require().NoError(suite.menus.Update(ctx, listed[0]))

	got, err := suite.menus.Get(ctx, menu.ID())
	suite.Require().NoError(err)
	suite.False(got.IsAvailable())
	suite.Equal(pngHeader, got.Photo().Data())
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestEmployeeMenu_GetUnknown() {
	_, err := suite.menus.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestCatalogRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CatalogRepositoryIntegrationTestSuite))
}
