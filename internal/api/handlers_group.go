package api

import "Rentora/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	ListingHandler   *handler.ListingHandler
	AnalyticsHandler *handler.AnalyticsHandler
}
