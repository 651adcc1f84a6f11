package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/jmtrinidad26/ScholarManager/app/config"
	"github.com/jmtrinidad26/ScholarManager/app/database"
	"github.com/jmtrinidad26/ScholarManager/app/middlewares"
	"github.com/jmtrinidad26/ScholarManager/app/routes/students"
)

// apiErrorHandler keeps every error response JSON, matching the rest of the
// API surface.
func apiErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	config.LoadEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var handlers *students.Handlers
	switch config.Backend() {
	case config.BackendPostgres:
		config.InitDB()
		handlers = students.NewPostgresHandlers(&database.MasterlistStore{DB: config.GetDB()})
	default:
		config.InitMongo(ctx)
		handlers = students.NewMongoHandlers(database.NewMongoStudentStore(config.StudentsCollection()))
	}
	log.Printf("Serving students from the %s backend", config.Backend())

	app := fiber.New(fiber.Config{
		ErrorHandler: apiErrorHandler,
	})

	app.Use(logger.New())
	app.Use(middlewares.RequestID())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	students.SetupStudentsRoutes(app, handlers)

	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down...")
		_ = app.Shutdown()
	}()

	port := config.GetEnv("PORT", "8080")
	log.Println("Server starting on :" + port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}

	closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer closeCancel()
	config.Close(closeCtx)
}
