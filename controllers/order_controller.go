package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/middleware"
	"storefront/models"
	"storefront/services"
	"storefront/utils"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

func (h *OrderController) Place(c *gin.Context) {
	var input models.OrderInput
	if !bindJSON(c, &input) {
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	order, err := h.orders.Place(ctx, input, middleware.CurrentUser(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusCreated, "Order placed successfully", order)
}

func (h *OrderController) List(c *gin.Context) {
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	orders, err := h.orders.List(ctx)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "All orders fetched", orders)
}

func (h *OrderController) Get(c *gin.Context) {
	id, ok := pathID(c, "orderId", "order")
	if !ok {
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	order, err := h.orders.Get(ctx, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Order details fetched", order)
}

func (h *OrderController) ListForUser(c *gin.Context) {
	userID, ok := pathID(c, "userId", "user")
	if !ok {
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	orders, err := h.orders.ListForUser(ctx, userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "User's orders fetched", orders)
}

func (h *OrderController) Update(c *gin.Context) {
	id, ok := pathID(c, "orderId", "order")
	if !ok {
		return
	}
	var patch models.OrderPatch
	if !bindJSON(c, &patch) {
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	order, err := h.orders.Update(ctx, id, patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Order updated successfully", order)
}

func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "orderId", "order")
	if !ok {
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if !bindJSON(c, &body) {
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	order, err := h.orders.UpdateStatus(ctx, id, body.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Order status updated", order)
}

func (h *OrderController) Delete(c *gin.Context) {
	id, ok := pathID(c, "orderId", "order")
	if !ok {
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	if err := h.orders.Delete(ctx, id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Order deleted successfully", gin.H{"orderId": id.Hex()})
}
