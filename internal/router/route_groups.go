package router

import (
	"stockcheck_backend/internal/handlers"
	"stockcheck_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// AuthRequired returns the JWT middleware guarding the inventory routes.
func AuthRequired() gin.HandlerFunc {
	return middleware.AuthMiddleware()
}

// SetupAuthRoutes sets up the staff authentication routes.
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.RegisterStaff)
		authRoutes.POST("/login", authHandler.LoginStaff)

		authRequiredRoutes := authRoutes.Group("")
		authRequiredRoutes.Use(middleware.AuthMiddleware())
		{
			authRequiredRoutes.GET("/me", authHandler.GetCurrentStaff)
		}
	}
}

// SetupItemRoutes sets up the catalog item routes.
func SetupItemRoutes(group *gin.RouterGroup, itemHandler *handlers.ItemHandler) {
	itemRoutes := group.Group("/items")
	{
		itemRoutes.GET("", itemHandler.ListItems)
		itemRoutes.POST("", itemHandler.CreateItem)
		itemRoutes.DELETE("/:id", itemHandler.DeleteItem)
	}
}

// SetupCheckRoutes sets up the daily checklist and report routes.
func SetupCheckRoutes(group *gin.RouterGroup, checkHandler *handlers.CheckHandler) {
	checkRoutes := group.Group("/checks")
	{
		checkRoutes.GET("/today", checkHandler.GetTodaysChecks)
		checkRoutes.POST("", checkHandler.SubmitChecklist)
	}
	group.POST("/reports", checkHandler.SubmitReport)
}

// SetupPurchaseRoutes sets up the purchase and weekly stats routes.
func SetupPurchaseRoutes(group *gin.RouterGroup, purchaseHandler *handlers.PurchaseHandler) {
	purchaseRoutes := group.Group("/purchases")
	{
		purchaseRoutes.GET("", purchaseHandler.ListPurchases)
		purchaseRoutes.POST("", purchaseHandler.RecordPurchase)
	}
	group.GET("/stats/weekly", purchaseHandler.GetWeeklyStats)
}
