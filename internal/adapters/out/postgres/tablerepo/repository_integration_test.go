package tablerepo_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/adapters/out/postgres/tablerepo"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// TableRepositoryIntegrationTestSuite provides integration tests for TableRepository
// using PostgreSQL containers to verify database persistence behavior.
type TableRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *tablerepo.GormTableRepository
	tracker    *MockAggregateTracker
}

func (suite *TableRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&tablerepo.TableDTO{}))
}

func (suite *TableRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE dining_tables").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = tablerepo.NewGormTableRepository(suite.db, suite.tracker)
}

func (suite *TableRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TableRepositoryIntegrationTestSuite) TestAdd_ValidTable_Success() {
	ctx := context.Background()

	diningTable := suite.newTable(5)
	suite.tracker.On("TrackAggregate", diningTable.ID(), diningTable).Once()

	err := suite.repository.Add(ctx, diningTable)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&tablerepo.TableDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TableRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_ReturnsError() {
	ctx := context.Background()

	first := suite.newTable(5)
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	duplicate := suite.newTable(5)

	err := suite.repository.Add(ctx, duplicate)

	suite.Require().Error(err)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TableRepositoryIntegrationTestSuite) TestGet_ExistingTable_RoundTrips() {
	ctx := context.Background()

	diningTable := suite.newTable(5)
	diningTable.Claim()
	suite.tracker.On("TrackAggregate", diningTable.ID(), diningTable).Once()
	suite.Require().NoError(suite.repository.Add(ctx, diningTable))

	retrieved, err := suite.repository.Get(ctx, diningTable.ID())

	suite.Require().NoError(err)
	suite.Equal(diningTable.ID(), retrieved.ID())
	suite.Equal(5, retrieved.Number())
	suite.Equal(4, retrieved.Capacity())
	suite.Equal(table.Occupied, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TableRepositoryIntegrationTestSuite) TestGet_NonExistentTable_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *TableRepositoryIntegrationTestSuite) TestGetByNumber_ExistingTable_ReturnsTable() {
	ctx := context.Background()

	diningTable := suite.newTable(12)
	suite.tracker.On("TrackAggregate", diningTable.ID(), diningTable).Once()
	suite.Require().NoError(suite.repository.Add(ctx, diningTable))

	retrieved, err := suite.repository.GetByNumber(ctx, 12)

	suite.Require().NoError(err)
	suite.Equal(diningTable.ID(), retrieved.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TableRepositoryIntegrationTestSuite) TestGetByNumber_UnknownNumber_ReturnsNotFoundError() {
	retrieved, err := suite.repository.GetByNumber(context.Background(), 99)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *TableRepositoryIntegrationTestSuite) TestUpdate_StatusChangePersists() {
	ctx := context.Background()

	diningTable := suite.newTable(5)
	suite.tracker.On("TrackAggregate", diningTable.ID(), diningTable).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, diningTable))

	diningTable.Claim()
	suite.Require().NoError(suite.repository.Update(ctx, diningTable))

	retrieved, err := suite.repository.Get(ctx, diningTable.ID())
	suite.Require().NoError(err)
	suite.Equal(table.Occupied, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TableRepositoryIntegrationTestSuite) TestUpdate_NonExistentTable_ReturnsNotFoundError() {
	err := suite.repository.Update(context.Background(), suite.newTable(5))

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TableRepositoryIntegrationTestSuite) TestSeed_MixOfNewAndExistingNumbers_InsertsOnlyMissing() {
	ctx := context.Background()

	existing := suite.newTable(1)
	suite.tracker.On("TrackAggregate", existing.ID(), existing).Once()
	suite.Require().NoError(suite.repository.Add(ctx, existing))

	relaidOut := suite.newTable(1)
	fresh := suite.newTable(2)
	suite.Require().NoError(suite.repository.Seed(ctx, []*table.DiningTable{relaidOut, fresh}))

	kept, err := suite.repository.GetByNumber(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(existing.ID(), kept.ID())

	added, err := suite.repository.GetByNumber(ctx, 2)
	suite.Require().NoError(err)
	suite.Equal(fresh.ID(), added.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TableRepositoryIntegrationTestSuite) newTable(number int) *table.DiningTable {
	diningTable, err := table.NewDiningTable(kernel.NewUUID(), number, 4)
	suite.Require().NoError(err)
	return diningTable
}

func TestTableRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TableRepositoryIntegrationTestSuite))
}
