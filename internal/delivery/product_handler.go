package delivery

import (
	"net/http"
	"strconv"

	"github.com/Danzskrtt/Health-Point-Management-System/internal/domain"
	"github.com/Danzskrtt/Health-Point-Management-System/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	useCase usecase.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

// RegisterRoutes wires the inventory endpoints. Mutating routes sit
// behind the auth middleware; reads are open.
func (h *ProductHandler) RegisterRoutes(router gin.IRouter, auth gin.HandlerFunc) {
	products := router.Group("/products")
	{
		products.POST("", auth, h.CreateProduct)
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProductByID)
		products.PATCH("/:id", auth, h.UpdateProduct)
		products.DELETE("/:id", auth, h.DeleteProduct)
	}
	categories := router.Group("/categories")
	{
		categories.GET("/codes", h.ListCategoryCodes)
		categories.POST("/codes", auth, h.AddCategoryCode)
	}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var requestBody struct {
		Name      string  `json:"name"`
		Category  string  `json:"category"`
		Price     float64 `json:"price"`
		Stock     int     `json:"stock"`
		Status    string  `json:"status"`
		ImagePath string  `json:"image_path"`
	}
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		h.log.Errorf("Failed to bind JSON for create product: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	product := domain.Product{
		Name:      requestBody.Name,
		Category:  requestBody.Category,
		Price:     requestBody.Price,
		Stock:     requestBody.Stock,
		Status:    requestBody.Status,
		ImagePath: requestBody.ImagePath,
	}
	created, err := h.useCase.CreateProduct(&product)
	if err != nil {
		h.log.Errorf("Failed to create product '%s': %v", requestBody.Name, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to create product: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusCreated, "Product created successfully", created)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	product, err := h.useCase.GetProductByID(id)
	if err != nil {
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve product: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Product retrieved successfully", product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		h.log.Errorf("Failed to bind JSON for update product %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updated, err := h.useCase.UpdateProduct(id, updates)
	if err != nil {
		ErrorResponse(c, mapErrorToStatus(err), "Failed to update product: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Product updated successfully", updated)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	if err := h.useCase.DeleteProduct(id); err != nil {
		ErrorResponse(c, mapErrorToStatus(err), "Failed to delete product: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Product deleted successfully", nil)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	query := c.Query("q")
	var products []domain.Product
	var err error
	if query != "" {
		products, err = h.useCase.SearchProducts(query, limit, offset)
	} else {
		products, err = h.useCase.ListProducts(limit, offset)
	}
	if err != nil {
		ErrorResponse(c, mapErrorToStatus(err), "Failed to list products: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", products)
}

func (h *ProductHandler) ListCategoryCodes(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "Category codes retrieved successfully", h.useCase.CategoryCodes())
}

func (h *ProductHandler) AddCategoryCode(c *gin.Context) {
	var requestBody struct {
		Name string `json:"name"`
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.useCase.AddCategoryCode(requestBody.Name, requestBody.Code); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Failed to add category code: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusCreated, "Category code added successfully", nil)
}
