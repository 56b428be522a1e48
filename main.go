package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"monopoly-engine/pkg/routes"
	"monopoly-engine/platform/logging"
)

func main() {
	logging.Init()

	app := fiber.New()

	app.Use(cors.New())
	routes.GameRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4101"
	}
	logrus.WithField("port", port).Info("starting server")
	if err := app.Listen(":" + port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
