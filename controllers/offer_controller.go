package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
	"storefront/utils"
)

type OfferController struct {
	offers *services.OfferService
}

func NewOfferController(offers *services.OfferService) *OfferController {
	return &OfferController{offers: offers}
}

func (h *OfferController) Create(c *gin.Context) {
	var input models.OfferInput
	if !bindJSON(c, &input) {
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	offer, err := h.offers.Create(ctx, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusCreated, "Offer created successfully", offer)
}

func (h *OfferController) List(c *gin.Context) {
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	offers, err := h.offers.List(ctx)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Offers fetched successfully", offers)
}

func (h *OfferController) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "offer")
	if !ok {
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	offer, err := h.offers.Get(ctx, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Offer fetched successfully", offer)
}

func (h *OfferController) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "offer")
	if !ok {
		return
	}
	var patch models.OfferPatch
	if !bindJSON(c, &patch) {
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	offer, err := h.offers.Update(ctx, id, patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Offer updated successfully", offer)
}

func (h *OfferController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", "offer")
	if !ok {
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	if err := h.offers.Delete(ctx, id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Offer deleted successfully", gin.H{"id": id.Hex()})
}
