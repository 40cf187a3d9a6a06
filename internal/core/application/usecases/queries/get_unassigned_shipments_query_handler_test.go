package queries_test

import (
	"context"
	"testing"
	"time"

	"parcelops/internal/adapters/out/postgres/shipmentrepo"
	"parcelops/internal/core/application/usecases/queries"
	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.EntityID, _ any) {
	// No-op for query tests
}

type GetUnassignedShipmentsQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetUnassignedShipmentsQueryHandler
	shipmentRepo *shipmentrepo.GormShipmentRepository
}

func (suite *GetUnassignedShipmentsQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&shipmentrepo.ShipmentDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetUnassignedShipmentsQueryHandler(db)
	suite.shipmentRepo = shipmentrepo.NewGormShipmentRepository(db, &mockAggregateTracker{})
}

func (suite *GetUnassignedShipmentsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetUnassignedShipmentsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipments").Error
	suite.Require().NoError(err)
}

func (suite *GetUnassignedShipmentsQueryHandlerTestSuite) addShipment(
	n int64,
	status shipment.Status,
	driverID *kernel.EntityID,
	createdAt time.Time,
) *shipment.Shipment {
	s, err := shipment.RestoreShipment(
		kernel.KindShipment.Format(n),
		kernel.KindPackage.Format(n),
		kernel.KindClient.Format(1),
		"Paris", "Marseille", shipment.ZoneNational, shipment.SpeedExpress,
		decimal.NewFromInt(775), nil, "", status, driverID, createdAt)
	suite.Require().NoError(err)
	err = suite.shipmentRepo.Add(context.Background(), s)
	suite.Require().NoError(err)
	return s
}

func (suite *GetUnassignedShipmentsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetUnassignedShipmentsQuery(
		kernel.NewActor(kernel.KindDriver.Format(9).String(), kernel.RoleDriver))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetUnassignedShipmentsQueryHandlerTestSuite) TestHandle_ReturnsOnlyPendingUnassigned() {
	now := time.Now().UTC()
	driverID := kernel.KindDriver.Format(1)

	claimable := suite.addShipment(1, shipment.StatusPending, nil, now)
	suite.addShipment(2, shipment.StatusPending, &driverID, now)
	suite.addShipment(3, shipment.StatusInTransit, &driverID, now)
	suite.addShipment(4, shipment.StatusDelivered, &driverID, now)

	query, err := queries.NewGetUnassignedShipmentsQuery(
		kernel.NewActor(kernel.KindDriver.Format(9).String(), kernel.RoleDriver))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(claimable.ID().String(), result[0].ID)
	suite.Equal(claimable.PackageID().String(), result[0].PackageID)
	suite.Equal("Paris", result[0].Origin)
	suite.Equal("Marseille", result[0].Destination)
	suite.Equal(shipment.ZoneNational.String(), result[0].Zone)
	suite.Equal(shipment.SpeedExpress.String(), result[0].Speed)
}

func (suite *GetUnassignedShipmentsQueryHandlerTestSuite) TestHandle_OldestShipmentsFirst() {
	now := time.Now().UTC()

	newest := suite.addShipment(1, shipment.StatusPending, nil, now)
	oldest := suite.addShipment(2, shipment.StatusPending, nil, now.Add(-2*time.Hour))
	middle := suite.addShipment(3, shipment.StatusPending, nil, now.Add(-time.Hour))

	query, err := queries.NewGetUnassignedShipmentsQuery(
		kernel.NewActor(kernel.KindDriver.Format(9).String(), kernel.RoleDriver))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(oldest.ID().String(), result[0].ID)
	suite.Equal(middle.ID().String(), result[1].ID)
	suite.Equal(newest.ID().String(), result[2].ID)
}

func (suite *GetUnassignedShipmentsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetUnassignedShipmentsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetUnassignedShipmentsQuery constructor")
}

func TestGetUnassignedShipmentsQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(GetUnassignedShipmentsQueryHandlerTestSuite))
}
