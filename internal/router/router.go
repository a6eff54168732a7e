package router

import (
	"net/http"

	"stockcheck_backend/internal/database"
	"stockcheck_backend/internal/handlers"
	"stockcheck_backend/internal/repositories"
	"stockcheck_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Options control cross-cutting wiring that differs between production and
// tests.
type Options struct {
	// Clock supplies "now" to the data layer. Nil means wall time.
	Clock services.Clock
	// AuthEnabled protects the inventory routes with the JWT middleware.
	// The auth endpoints themselves are always registered.
	AuthEnabled bool
}

// Setup initializes the routing for the application. The storage handle is
// constructed by the caller and threaded through explicitly; nothing here
// reaches for a global.
func Setup(engine *gin.Engine, store *database.DB, opts Options) {
	// Repositories
	itemRepo := repositories.NewItemRepository(store)
	checkRepo := repositories.NewCheckRepository(store)
	purchaseRepo := repositories.NewPurchaseRepository(store)
	reportRepo := repositories.NewReportRepository(store)
	authRepo := repositories.NewAuthRepository(store)

	// Services
	itemService := services.NewItemService(itemRepo, store)
	checklistService := services.NewChecklistService(checkRepo, reportRepo, store, opts.Clock)
	purchaseService := services.NewPurchaseService(purchaseRepo, itemRepo, store, opts.Clock)
	authService := services.NewAuthService(authRepo, store)

	// Handlers
	itemHandler := handlers.NewItemHandler(itemService)
	checkHandler := handlers.NewCheckHandler(checklistService)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
	authHandler := handlers.NewAuthHandler(authService)

	apiV1 := engine.Group("/api/v1")

	apiV1.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	SetupAuthRoutes(apiV1, authHandler)

	inventory := apiV1.Group("")
	if opts.AuthEnabled {
		inventory.Use(AuthRequired())
	}
	{
		SetupItemRoutes(inventory, itemHandler)
		SetupCheckRoutes(inventory, checkHandler)
		SetupPurchaseRoutes(inventory, purchaseHandler)
	}
}
