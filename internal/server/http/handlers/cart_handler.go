package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/adonisdeptrai/r4bbit-sub001/internal/domain/errors"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/server/http/dto"
)

// CartHandler manages cart endpoints.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// List handles GET /api/user/cart.
func (h *CartHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	lines, err := h.facade.CartItems(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.CartLineResponse, 0, len(lines))
	for _, line := range lines {
		response = append(response, dto.CartLineResponse{
			Product:  toProductResponse(line.Product),
			Quantity: line.Quantity,
			AddedAt:  line.AddedAt,
		})
	}
	c.JSON(http.StatusOK, response)
}

// Add handles POST /api/user/cart.
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID <= 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.AddToCart(c.Request.Context(), CurrentUserID(c), req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}

// Remove handles DELETE /api/user/cart/:productID.
func (h *CartHandler) Remove(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil || productID <= 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.RemoveFromCart(c.Request.Context(), CurrentUserID(c), productID); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}

// Clear handles DELETE /api/user/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.facade.ClearCart(c.Request.Context(), CurrentUserID(c)); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}
