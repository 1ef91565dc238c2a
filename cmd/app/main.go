package main

import (
	"fmt"
	"log/slog"
	"os"

	"dealership/cmd"
	httpadapter "dealership/internal/adapters/in/http"
	"dealership/internal/adapters/out/postgres/deliveryrepo"
	"dealership/internal/adapters/out/postgres/inventoryrepo"
	"dealership/internal/adapters/out/postgres/orderrepo"
	"dealership/internal/adapters/out/postgres/paymentrepo"
	"dealership/internal/adapters/out/postgres/requestrepo"
	"dealership/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := connectDB(configs)

	root := cmd.NewCompositionRoot(configs, db)

	jobManager := jobs.NewJobManager(root.CreateGetPendingTasksQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&inventoryrepo.RecordDTO{},
		&deliveryrepo.DeliveryDTO{},
		&paymentrepo.PaymentDTO{},
		&requestrepo.VehicleRequestDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		httpadapter.CommandHandlers{
			CreateOrder:              root.CreateCreateOrderCommandHandler(),
			TransitionOrder:          root.CreateTransitionOrderCommandHandler(),
			CreateDelivery:           root.CreateCreateDeliveryCommandHandler(),
			UpdateDeliveryStatus:     root.CreateUpdateDeliveryStatusCommandHandler(),
			CreatePayment:            root.CreateCreatePaymentCommandHandler(),
			UpdatePaymentStatus:      root.CreateUpdatePaymentStatusCommandHandler(),
			CreateVehicleRequest:     root.CreateCreateVehicleRequestCommandHandler(),
			TransitionVehicleRequest: root.CreateTransitionVehicleRequestCommandHandler(),
		},
		httpadapter.QueryHandlers{
			GetOrder:          root.CreateGetOrderQueryHandler(),
			GetAllOrders:      root.CreateGetAllOrdersQueryHandler(),
			GetOrderDebt:      root.CreateGetOrderDebtQueryHandler(),
			GetInventory:      root.CreateGetInventoryQueryHandler(),
			GetPendingTasks:   root.CreateGetPendingTasksQueryHandler(),
			GetAllowedActions: root.CreateGetAllowedActionsQueryHandler(),
		},
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
