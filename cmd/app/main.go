package main

import (
	"fmt"
	"log/slog"
	"os"

	"parcelops/cmd"
	httpadapter "parcelops/internal/adapters/in/http"
	"parcelops/internal/adapters/out/postgres/clientrepo"
	"parcelops/internal/adapters/out/postgres/driverrepo"
	"parcelops/internal/adapters/out/postgres/invoicerepo"
	"parcelops/internal/adapters/out/postgres/parcelrepo"
	"parcelops/internal/adapters/out/postgres/seqrepo"
	"parcelops/internal/adapters/out/postgres/shipmentrepo"
	"parcelops/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.ConnectionString()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateReconcileDriverAvailabilityCommandHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		LockTimeoutMs: goDotEnvVariable("LOCK_TIMEOUT_MS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&clientrepo.ClientDTO{},
		&driverrepo.DriverDTO{},
		&parcelrepo.ParcelDTO{},
		&shipmentrepo.ShipmentDTO{},
		&invoicerepo.InvoiceDTO{},
		&seqrepo.SequenceDTO{},
	)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		app.CreateCreateClientCommandHandler(),
		app.CreateCreateDriverCommandHandler(),
		app.CreateCreateParcelCommandHandler(),
		app.CreateCreateShipmentCommandHandler(),
		app.CreateClaimShipmentCommandHandler(),
		app.CreateUpdateShipmentStatusCommandHandler(),
		app.CreateStaffEditShipmentCommandHandler(),
		app.CreateDeleteShipmentCommandHandler(),
		app.CreateTrackParcelQueryHandler(),
		app.CreateGetUnassignedShipmentsQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
