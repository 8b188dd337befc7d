package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"newsdesk/internal/db"
	"newsdesk/internal/router"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, reading env vars from system")
	}

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	root := &cobra.Command{
		Use:           "server",
		Short:         "News aggregator REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(log), seedCmd(log))

	if err := root.Execute(); err != nil {
		log.Fatal("command failed", zap.Error(err))
	}
}

func dsn() string {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		return v
	}
	// Fallback for local dev if not set
	return "host=localhost user=postgres password=postgres dbname=newsdesk port=5432 sslmode=disable"
}

func serveCmd(log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.Open(dsn(), log)
			if err != nil {
				return err
			}
			sqlDB, err := database.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			r := router.New(database, log)

			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			log.Info("server starting", zap.String("port", port))
			return r.Run(":" + port)
		},
	}
}

func seedCmd(log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Drop, recreate and reseed the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.Connect(dsn())
			if err != nil {
				return err
			}
			sqlDB, err := database.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			if err := db.Reset(database); err != nil {
				return err
			}
			log.Info("database reset and reseeded")
			return nil
		},
	}
}
