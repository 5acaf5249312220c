package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
	"storefront/utils"
)

type ProductController struct {
	products *services.ProductService
	limits   uploadLimit
}

func NewProductController(products *services.ProductService, maxUploadMB int64) *ProductController {
	return &ProductController{products: products, limits: uploadLimit{maxMB: maxUploadMB}}
}

// Create accepts either a JSON body or a multipart form whose "images" files
// are stored with the product.
func (h *ProductController) Create(c *gin.Context) {
	var input models.ProductInput
	var images []io.Reader

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		form, err := c.MultipartForm()
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid multipart form")
			return
		}
		if msg := productFromForm(form.Value, &input); msg != "" {
			utils.Error(c, http.StatusBadRequest, msg)
			return
		}
		files := form.File["images"]
		if !h.limits.check(c, files...) {
			return
		}
		for _, fh := range files {
			f, err := fh.Open()
			if err != nil {
				utils.RespondError(c, err)
				return
			}
			defer f.Close()
			images = append(images, f)
		}
	} else if !bindJSON(c, &input) {
		return
	}

	ctx, cancel := requestContext(c, uploadTimeout)
	defer cancel()

	product, err := h.products.Create(ctx, input, images)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusCreated, "Product created successfully", product)
}

func productFromForm(values map[string][]string, in *models.ProductInput) string {
	get := func(k string) string {
		if v := values[k]; len(v) > 0 {
			return strings.TrimSpace(v[0])
		}
		return ""
	}
	in.Name = get("name")
	in.Description = get("description")
	in.Category = get("category")
	in.OfferID = get("offerId")

	if v := get("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return "price must be a number"
		}
		in.Price = price
	}
	if v := get("stock"); v != "" {
		stock, err := strconv.Atoi(v)
		if err != nil {
			return "stock must be an integer"
		}
		in.Stock = stock
	}
	if v := get("sizes"); v != "" {
		if err := json.Unmarshal([]byte(v), &in.Sizes); err != nil {
			return "sizes must be a JSON array"
		}
	}
	return ""
}

func (h *ProductController) List(c *gin.Context) {
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	products, err := h.products.List(ctx)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Products fetched successfully", products)
}

func (h *ProductController) ListByCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "categoryId", "category")
	if !ok {
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	products, err := h.products.ListByCategory(ctx, categoryID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Products fetched successfully", products)
}

func (h *ProductController) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "product")
	if !ok {
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	product, err := h.products.Get(ctx, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Product fetched successfully", product)
}

func (h *ProductController) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "product")
	if !ok {
		return
	}
	var patch models.ProductPatch
	if !bindJSON(c, &patch) {
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	product, err := h.products.Update(ctx, id, patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Product updated successfully", product)
}

func (h *ProductController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", "product")
	if !ok {
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	if err := h.products.Delete(ctx, id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Product deleted successfully", gin.H{"id": id.Hex()})
}
