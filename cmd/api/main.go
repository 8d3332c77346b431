package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/hugolinos1/freezy-api/docs"
	"github.com/hugolinos1/freezy-api/internal/application/auth"
	"github.com/hugolinos1/freezy-api/internal/application/usecase"
	"github.com/hugolinos1/freezy-api/internal/domain/repository"
	"github.com/hugolinos1/freezy-api/internal/infrastructure/mail"
	"github.com/hugolinos1/freezy-api/internal/infrastructure/postgres"
	"github.com/hugolinos1/freezy-api/internal/infrastructure/sqlite"
	httpRouter "github.com/hugolinos1/freezy-api/internal/interfaces/http"
	"github.com/hugolinos1/freezy-api/pkg/config"
	"github.com/hugolinos1/freezy-api/pkg/logger"
)

// repos regroupe les trois ports de persistance, quel que soit le backend.
type repos struct {
	users    repository.UserRepository
	products repository.ProductRepository
	settings repository.SettingsRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()

	// Backend de données : choisi une seule fois au démarrage. En "auto",
	// PostgreSQL si configuré et joignable, sinon le fichier SQLite local.
	r, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("ouverture du stockage")
	}
	defer closeStore()

	var mailer auth.Mailer
	if cfg.Mail.Configured() {
		mailer = mail.NewSMTPMailer(cfg.Mail)
	} else {
		log.Warn().Msg("SMTP non configuré, les liens de connexion seront journalisés")
		mailer = mail.NewLogMailer(log)
	}

	authUC := auth.NewAuthUseCase(r.users, mailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.App.BaseURL)
	productUC := usecase.NewProductUseCase(r.products, r.settings)
	settingsUC := usecase.NewSettingsUseCase(r.settings)
	exportUC := usecase.NewExportUseCase(r.products)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Freezy API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ProductUC:  productUC,
		SettingsUC: settingsUC,
		ExportUC:   exportUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP terminé")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}

// openStore ouvre le backend de données selon STORE_DRIVER et retourne les
// repositories et la fonction de fermeture.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (repos, func(), error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		return openPostgres(ctx, cfg, log)
	case config.StoreSQLite:
		return openSQLite(cfg, log)
	default: // auto
		if cfg.DB.Configured() {
			r, closeFn, err := openPostgres(ctx, cfg, log)
			if err == nil {
				return r, closeFn, nil
			}
			log.Warn().Err(err).Msg("PostgreSQL injoignable, repli sur SQLite")
		}
		return openSQLite(cfg, log)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config, log *logger.Logger) (repos, func(), error) {
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return repos{}, nil, err
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return repos{}, nil, err
	}
	log.Info().Msg("backend de données: PostgreSQL")
	return repos{
		users:    postgres.NewUserRepository(pool),
		products: postgres.NewProductRepository(pool),
		settings: postgres.NewSettingsRepository(pool),
	}, pool.Close, nil
}

func openSQLite(cfg *config.Config, log *logger.Logger) (repos, func(), error) {
	db, err := sqlite.Open(cfg.Store.SQLitePath)
	if err != nil {
		return repos{}, nil, err
	}
	log.Info().Str("path", cfg.Store.SQLitePath).Msg("backend de données: SQLite")
	return repos{
		users:    sqlite.NewUserRepository(db),
		products: sqlite.NewProductRepository(db),
		settings: sqlite.NewSettingsRepository(db),
	}, func() { _ = db.Close() }, nil
}
