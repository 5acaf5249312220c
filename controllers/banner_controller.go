package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
	"storefront/utils"
)

type BannerController struct {
	banners *services.BannerService
}

func NewBannerController(banners *services.BannerService) *BannerController {
	return &BannerController{banners: banners}
}

func (h *BannerController) Create(c *gin.Context) {
	var input models.BannerInput
	if !bindJSON(c, &input) {
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	banner, err := h.banners.Create(ctx, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusCreated, "Banner created successfully", banner)
}

func (h *BannerController) List(c *gin.Context) {
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	banners, err := h.banners.List(ctx)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Banners fetched successfully", banners)
}

func (h *BannerController) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "banner")
	if !ok {
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	banner, err := h.banners.Get(ctx, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Banner fetched successfully", banner)
}

func (h *BannerController) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "banner")
	if !ok {
		return
	}
	var patch models.BannerPatch
	if !bindJSON(c, &patch) {
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	banner, err := h.banners.Update(ctx, id, patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Banner updated successfully", banner)
}

func (h *BannerController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", "banner")
	if !ok {
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	if err := h.banners.Delete(ctx, id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Banner deleted successfully", gin.H{"id": id.Hex()})
}

func (h *BannerController) ListActive(c *gin.Context) {
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	banners, err := h.banners.ListActive(ctx)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Active banners fetched successfully", banners)
}
