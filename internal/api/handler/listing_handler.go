package handler

import (
	"Rentora/internal/api/dto"
	"Rentora/internal/pkg/response"
	"Rentora/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	listingSvc service.ListingService
}

func NewListingHandler(listingSvc service.ListingService) *ListingHandler {
	return &ListingHandler{
		listingSvc: listingSvc,
	}
}

// Generate 为房产生成一条文案
func (h *ListingHandler) Generate(c *gin.Context) {
	var req dto.GenerateListingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	listing, err := h.listingSvc.GenerateListing(c.Request.Context(), req.PropertyID, req.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"listing": listing})
}

// GetListing 查询单条文案
func (h *ListingHandler) GetListing(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	listing, err := h.listingSvc.GetListing(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"listing": listing})
}

// GetUserListings 查询用户名下全部文案
func (h *ListingHandler) GetUserListings(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	listings, err := h.listingSvc.GetUserListings(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"listings": listings})
}

// UpdateListing 手工编辑文案正文
func (h *ListingHandler) UpdateListing(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.UpdateListingDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	listing, err := h.listingSvc.UpdateListingContent(c.Request.Context(), id, req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"listing": listing})
}

// DeleteListing 删除文案，统计行随之级联删除
func (h *ListingHandler) DeleteListing(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = h.listingSvc.DeleteListing(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}

// Trending 热门房源榜
func (h *ListingHandler) Trending(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	listings, err := h.listingSvc.GetTrendingListings(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"listings": listings})
}

func parseIDParam(c *gin.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
