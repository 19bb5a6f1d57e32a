package api

import (
	"Rentora/internal/api/middleware"
	"Rentora/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "pong",
		})
	})

	listingGroup := r.Group("/listings")
	{
		listingGroup.POST("/generate", group.ListingHandler.Generate)
		listingGroup.GET("/trending", group.ListingHandler.Trending)
		listingGroup.GET("/user/:id", group.ListingHandler.GetUserListings)
		listingGroup.GET("/:id", group.ListingHandler.GetListing)
		listingGroup.PUT("/:id", group.ListingHandler.UpdateListing)
		listingGroup.DELETE("/:id", group.ListingHandler.DeleteListing)
	}

	analyticsGroup := r.Group("/analytics")
	{
		analyticsGroup.POST("/listings/:id/view", group.AnalyticsHandler.RecordView)
		analyticsGroup.POST("/listings/:id/inquiry", group.AnalyticsHandler.RecordInquiry)
		analyticsGroup.POST("/listings/:id/favorite", group.AnalyticsHandler.RecordFavorite)
		analyticsGroup.GET("/listings/:id", group.AnalyticsHandler.GetListingAnalytics)
		analyticsGroup.GET("/user/:id/listings", group.AnalyticsHandler.GetUserRollup)
	}

	return r
}
