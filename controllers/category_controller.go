package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
	"storefront/utils"
)

type CategoryController struct {
	categories *services.CategoryService
}

func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{categories: categories}
}

func (h *CategoryController) Create(c *gin.Context) {
	var input models.CategoryInput
	if !bindJSON(c, &input) {
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	category, err := h.categories.Create(ctx, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusCreated, "Category created successfully", category)
}

func (h *CategoryController) List(c *gin.Context) {
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	categories, err := h.categories.List(ctx)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Categories fetched successfully", categories)
}

func (h *CategoryController) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "category")
	if !ok {
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	category, err := h.categories.Get(ctx, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Category fetched successfully", category)
}

func (h *CategoryController) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "category")
	if !ok {
		return
	}
	var patch models.CategoryPatch
	if !bindJSON(c, &patch) {
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	category, err := h.categories.Update(ctx, id, patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Category updated successfully", category)
}

func (h *CategoryController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", "category")
	if !ok {
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	if err := h.categories.Delete(ctx, id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Category deleted successfully", gin.H{"id": id.Hex()})
}
