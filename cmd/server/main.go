package main

import (
	"fmt"
	"net/http"

	"ricemill/config"
	"ricemill/db"
	"ricemill/db/mongo"
	"ricemill/db/postgres"
	"ricemill/handlers"
	"ricemill/repository"
	"ricemill/routes"
	"ricemill/utils"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	var slipRepo repository.SlipRepository
	var godownRepo repository.GodownRepository
	var userRepo repository.UserRepository

	switch cfg.DBType {
	case "postgres":
		// Run migrations (Postgres only)
		db.RunMigrations()

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		slipRepo = repository.NewPostgresSlipRepo(pg.Conn)
		godownRepo = repository.NewPostgresGodownRepo(pg.Conn)
		userRepo = repository.NewPostgresUserRepo(pg.Conn)

	case "mongo":
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		slipRepo = repository.NewMongoSlipRepo(mg.Client)
		godownRepo = repository.NewMongoGodownRepo(mg.Client)
		userRepo = repository.NewMongoUserRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}

	// Handlers
	slipHandler := &handlers.SlipHandler{Repo: slipRepo}
	godownHandler := &handlers.GodownHandler{Repo: godownRepo}
	userHandler := &handlers.UserHandler{Repo: userRepo}
	printHandler := &handlers.PrintHandler{Repo: slipRepo}

	// PDF support is resolved once: absence turns the download
	// endpoint into an explicit "unavailable" response.
	pdfSupported := utils.PDFSupported()
	if !pdfSupported {
		fmt.Println("Warning: headless Chrome not found. PDF generation will be disabled.")
	}
	pdfHandler := &handlers.PDFHandler{
		Repo:      repository.NewPDFRepository(slipRepo),
		Supported: pdfSupported,
		SavePath:  cfg.PDFSavePath,
	}

	backupHandler := &handlers.BackupHandler{
		PostgresURL: cfg.PostgresURL,
		BackupDir:   cfg.BackupDir,
	}

	routes.SetupRoutes(userHandler, slipHandler, godownHandler, pdfHandler, printHandler, backupHandler)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}
