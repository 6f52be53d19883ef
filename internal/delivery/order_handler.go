package delivery

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Danzskrtt/Health-Point-Management-System/internal/receipt"
	"github.com/Danzskrtt/Health-Point-Management-System/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type OrderHandler struct {
	useCase  usecase.OrderUseCase
	receipts *receipt.Generator
	log      *logrus.Logger
}

func NewOrderHandler(uc usecase.OrderUseCase, receipts *receipt.Generator, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		useCase:  uc,
		receipts: receipts,
		log:      logger,
	}
}

// RegisterRoutes wires the order endpoints. Checkout requires a logged-in
// session; reads are open.
func (h *OrderHandler) RegisterRoutes(router gin.IRouter, auth gin.HandlerFunc) {
	orders := router.Group("/orders")
	{
		orders.POST("", auth, h.Checkout)
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrderByID)
		orders.GET("/:id/receipt", h.GetReceipt)
	}
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	var requestBody struct {
		CustomerName  string             `json:"customer_name"`
		PaymentMethod string             `json:"payment_method"`
		Items         []usecase.CartLine `json:"items"`
	}
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		h.log.Errorf("Failed to bind JSON for checkout: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.useCase.Checkout(requestBody.CustomerName, requestBody.PaymentMethod, requestBody.Items)
	if err != nil {
		h.log.Errorf("Failed to place order for customer '%s': %v", requestBody.CustomerName, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to place order: "+err.Error())
		return
	}

	h.log.Infof("Order %s placed successfully for customer '%s'", order.OrderID, order.CustomerName)
	SuccessResponse(c, http.StatusCreated, "Order placed successfully", order)
}

func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	id := c.Param("id")

	order, err := h.useCase.GetOrderByID(id)
	if err != nil {
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve order: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Order retrieved successfully", order)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	orders, err := h.useCase.ListOrders(limit, offset)
	if err != nil {
		ErrorResponse(c, mapErrorToStatus(err), "Failed to list orders: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Orders retrieved successfully", orders)
}

func (h *OrderHandler) GetReceipt(c *gin.Context) {
	id := c.Param("id")

	order, err := h.useCase.GetOrderByID(id)
	if err != nil {
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve order: "+err.Error())
		return
	}

	pdfBytes, err := h.receipts.Render(order)
	if err != nil {
		h.log.Errorf("Failed to render receipt for order %s: %v", id, err)
		ErrorResponse(c, http.StatusInternalServerError, "Could not generate receipt: "+err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", order.OrderID))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
