package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/obsidianspecter/demo-delivery/internal/application/order"
	domain "github.com/obsidianspecter/demo-delivery/internal/domain/order"
)

type OrderHandler struct {
	svc *app.Service
}

func NewOrderHandler(svc *app.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// PlaceOrder handles POST /api/orders.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var cmd app.PlaceOrderCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order data"})
		return
	}
	if len(cmd.Items) == 0 || cmd.TotalPrice == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order data"})
		return
	}

	order, err := h.svc.PlaceOrder(c.Request.Context(), cmd)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrEmptyItems),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidPrice):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order placed successfully",
		"orderId": order.ID,
	})
}

// GetOrder handles GET /api/orders?orderId=<id>.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID := c.Query("orderId")
	if orderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order ID is required"})
		return
	}

	order, err := h.svc.GetOrder(c.Request.Context(), orderID)
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

// UpdateStatus handles PATCH /api/orders/:orderId/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	err := h.svc.UpdateStatus(c.Request.Context(), c.Param("orderId"), body.Status)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrUnknownStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
}

// UpdateTable handles PATCH /api/orders/:orderId/table.
func (h *OrderHandler) UpdateTable(c *gin.Context) {
	var body struct {
		TableNumber string `json:"tableNumber"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.TableNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Table number is required"})
		return
	}

	err := h.svc.UpdateTable(c.Request.Context(), c.Param("orderId"), body.TableNumber)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order table"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order table updated successfully"})
}

// ListOrders handles GET /api/kitchen/orders, with an optional ?status= filter.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.svc.ListOrders(c.Query("status"))
	if errors.Is(err, domain.ErrUnknownStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
