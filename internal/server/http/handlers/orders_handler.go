package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/model"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/server/http/dto"
)

// OrdersHandler serves completed order history.
type OrdersHandler struct {
	facade OrdersFacade
}

// NewOrdersHandler constructs OrdersHandler.
func NewOrdersHandler(facade OrdersFacade) *OrdersHandler {
	return &OrdersHandler{facade: facade}
}

// List handles GET /api/user/orders.
func (h *OrdersHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// ListAll handles GET /api/admin/orders.
func (h *OrdersHandler) ListAll(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	orders, err := h.facade.AllOrders(c.Request.Context(), limit)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.AdminOrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, dto.AdminOrderResponse{
			OrderResponse: toOrderResponse(o),
			UserID:        o.UserID,
		})
	}
	c.JSON(http.StatusOK, response)
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		OrderID:   order.DisplayID,
		Summary:   order.ProductSummary,
		Amount:    order.Amount,
		Status:    string(order.Status),
		Method:    order.Method,
		CreatedAt: order.CreatedAt,
	}
}
