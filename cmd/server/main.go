package main

import (
	"log"
	"os"
	"strings"

	"stockcheck_backend/internal/database"
	"stockcheck_backend/internal/router"
	"stockcheck_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	utils.InitLogger()

	// Storage configuration. The backend is selected here, once; everything
	// downstream is backend-agnostic.
	cfg := database.Config{
		Backend:    utils.Getenv("DB_BACKEND", database.BackendSQLite),
		SQLitePath: utils.Getenv("SQLITE_PATH", "data/stockcheck.db"),
		Host:       utils.Getenv("DB_HOST", "localhost"),
		Port:       utils.Getenv("DB_PORT", "5432"),
		User:       utils.Getenv("DB_USER", "stockcheck_user"),
		Password:   utils.Getenv("DB_PASSWORD", "stockcheck_password"),
		Name:       utils.Getenv("DB_NAME", "stockcheck_db"),
		SSLMode:    utils.Getenv("DB_SSLMODE", "disable"),
	}

	store, err := database.Open(cfg)
	if err != nil {
		utils.LogError(err, "Failed to open storage")
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()
	utils.LogInfo("Storage initialized", map[string]interface{}{"backend": store.Backend()})

	utils.InitJWT(utils.Getenv("JWT_SECRET", "dev-only-stockcheck-secret"))
	authEnabled := strings.EqualFold(utils.Getenv("AUTH_ENABLED", "false"), "true")

	engine := gin.Default()
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"}
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = allowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	engine.Use(cors.New(corsConfig))

	router.Setup(engine, store, router.Options{AuthEnabled: authEnabled})

	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port, "auth_enabled": authEnabled})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
