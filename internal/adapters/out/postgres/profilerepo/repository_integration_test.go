package profilerepo_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/profilerepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/profile"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type ProfileRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	profiles   *profilerepo.GormProfileRepository
	activities *profilerepo.GormActivityRepository
	tracker    *MockAggregateTracker
}

func (suite *ProfileRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&profilerepo.ProfileDTO{}, &profilerepo.ActivityDTO{}))
}

func (suite *ProfileRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE profiles, user_activity").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.profiles = profilerepo.NewGormProfileRepository(suite.db, suite.tracker)
	suite.activities = profilerepo.NewGormActivityRepository(suite.db)
}

func (suite *ProfileRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProfileRepositoryIntegrationTestSuite) TestSave_InsertsThenOverwrites() {
	ctx := context.Background()
	created := time.Date(2025, 1, 20, 8, 0, 0, 0, time.UTC)
	p, err := profile.NewProfile(kernel.NewUUID(), created)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.profiles.Save(ctx, p))

	p.UpdateDetails("Asha Rao", "98765", "Ganga", "214", created.Add(time.Hour))
	_, err = p.ChangeRole(profile.Staff, created.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.profiles.Save(ctx, p))

	got, err := suite.profiles.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal("Asha Rao", got.FullName())
	suite.Equal(profile.Staff, got.Role())
	suite.True(created.Equal(got.CreatedAt()))

	var count int64
	suite.Require().NoError(suite.db.Model(&profilerepo.ProfileDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *ProfileRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.profiles.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProfileRepositoryIntegrationTestSuite) TestGet_UnknownStoredRole_ReadsAsCustomer() {
	ctx := context.Background()
	id := kernel.NewUUID()
	suite.Require().NoError(suite.db.Create(&profilerepo.ProfileDTO{ID: id.Bytes(), Role: "superuser"}).Error)

	got, err := suite.profiles.Get(ctx, id)

	suite.Require().NoError(err)
	suite.Equal(profile.Customer, got.Role())
}

func (suite *ProfileRepositoryIntegrationTestSuite) TestRecord_AppendsActivity() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	a, err := profile.NewActivity(userID, profile.ActivitySignedIn, "signed in", time.Now())
	suite.Require().NoError(err)

	b, err := profile.NewActivity(userID, profile.ActivitySignedOut, "signed out", time.Now())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.activities.Record(ctx, a))
	suite.Require().NoError(suite.activities.Record(ctx, b))

	var count int64
	suite.Require().NoError(suite.db.Model(&profilerepo.ActivityDTO{}).
		Where("user_id = ?", userID.Bytes()).Count(&count).Error)
	suite.Equal(int64(2), count)
}

func TestProfileRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileRepositoryIntegrationTestSuite))
}
