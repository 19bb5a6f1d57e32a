package handler

import (
	"Rentora/internal/api/dto"
	"Rentora/internal/pkg/response"
	"Rentora/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
	rollupSvc    service.RollupService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService, rollupSvc service.RollupService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
		rollupSvc:    rollupSvc,
	}
}

// RecordView 记录一次浏览及停留时长
func (h *AnalyticsHandler) RecordView(c *gin.Context) {
	listingID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.RecordViewDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err = h.analyticsSvc.RecordView(c.Request.Context(), listingID, *req.ViewDuration); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}

// RecordInquiry 记录一次咨询
func (h *AnalyticsHandler) RecordInquiry(c *gin.Context) {
	listingID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = h.analyticsSvc.RecordInquiry(c.Request.Context(), listingID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}

// RecordFavorite 记录一次收藏
func (h *AnalyticsHandler) RecordFavorite(c *gin.Context) {
	listingID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = h.analyticsSvc.RecordFavorite(c.Request.Context(), listingID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}

// GetListingAnalytics 房源统计快照，从未观测过返回 404
func (h *AnalyticsHandler) GetListingAnalytics(c *gin.Context) {
	listingID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	analytics, err := h.analyticsSvc.GetListingAnalytics(c.Request.Context(), listingID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"analytics": analytics})
}

// GetUserRollup 用户名下全部房源的读时汇总
func (h *AnalyticsHandler) GetUserRollup(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	rollup, err := h.rollupSvc.GetUserRollup(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"analytics": rollup})
}
