// Package http expose l'API REST de Freezy via Fiber : handlers, routeur et
// middleware d'authentification JWT.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hugolinos1/freezy-api/internal/application/auth"
	"github.com/hugolinos1/freezy-api/internal/application/usecase"
)

// RouterDeps dépendances du routeur.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	SettingsUC *usecase.SettingsUseCase
	ExportUC   *usecase.ExportUseCase
	JWTSecret  string
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public) : les deux variantes d'établissement de session
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/magic-link", authHandler.MagicLink)
	authGroup.Get("/verify", authHandler.Verify)

	// Routes protégées (Bearer Token requis)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Profil (protégé)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.AuthUC)
	users.Get("/me", userHandler.Me)
	users.Put("/me/display-name", userHandler.UpdateDisplayName)
	users.Put("/me/password", userHandler.UpdatePassword)

	// Produits (protégé)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/grouped", productHandler.ListGrouped)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Paramètres du congélateur (protégé)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)
	settings.Post("/drawers/increment", settingsHandler.IncrementDrawers)
	settings.Post("/drawers/decrement", settingsHandler.DecrementDrawers)

	// Export CSV (protégé)
	exportHandler := NewExportHandler(deps.ExportUC)
	protected.Get("/export/csv", exportHandler.CSV)

	// Analyse vocale (protégé)
	voiceHandler := NewVoiceHandler()
	protected.Post("/voice/analyze", voiceHandler.Analyze)
}
