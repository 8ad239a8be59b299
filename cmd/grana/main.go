package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/granapp/grana/internal/api"
	"github.com/granapp/grana/internal/cli"
	"github.com/granapp/grana/internal/config"
	"github.com/granapp/grana/internal/db"
	"github.com/granapp/grana/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config init failed: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "reset-password" {
		if len(os.Args) < 3 {
			log.Fatal("usage: grana reset-password <email>")
		}
		if err := cli.RunResetPasswordCommand(cfg.DBPath, os.Args[2]); err != nil {
			log.Fatalf("reset password failed: %v", err)
		}
		return
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	repositories := db.NewRepositories(database)

	issuer := services.NewTokenIssuer([]byte(cfg.SecretKey), nil)
	codes := services.NewRecoveryCodeGenerator(nil)

	var mailer services.Mailer
	if cfg.SMTPHost != "" {
		mailer = services.NewSMTPMailer(services.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.MailFrom,
		})
	} else {
		log.Print("no SMTP host configured, recovery codes go to the log")
		mailer = services.NewLogMailer()
	}

	authService := services.NewAuthService(
		repositories.Users,
		repositories.RefreshTokens,
		issuer,
		codes,
		mailer,
		nil,
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
	)
	categoryService := services.NewCategoryService(repositories.Categories, nil)
	transactionService := services.NewTransactionService(repositories.Transactions, repositories.Categories, nil)

	handler := api.NewHandler(authService, categoryService, transactionService, issuer)

	app := fiber.New(fiber.Config{
		AppName:               "Grana",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Grana listening on http://0.0.0.0:%s (db: %s)", cfg.Port, cfg.DBPath)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
