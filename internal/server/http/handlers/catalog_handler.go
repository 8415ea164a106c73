package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/adonisdeptrai/r4bbit-sub001/internal/domain/errors"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/model"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/money"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/server/http/dto"
)

// CatalogHandler serves the public product list and admin catalog management.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /api/products.
func (h *CatalogHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/admin/products.
func (h *CatalogHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	created, err := h.facade.CreateProduct(c.Request.Context(), &model.Product{
		Title:       req.Title,
		Description: req.Description,
		Kind:        model.ProductKind(req.Kind),
		Price:       req.Price,
		Active:      req.Active,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidProduct):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(*created))
}

// Update handles PUT /api/admin/products/:id.
func (h *CatalogHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err = h.facade.UpdateProduct(c.Request.Context(), &model.Product{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Kind:        model.ProductKind(req.Kind),
		Price:       req.Price,
		Active:      req.Active,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidProduct):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}

func toProductResponse(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Kind:        string(p.Kind),
		Price:       p.Price,
		PriceLabel:  money.FormatUSD(p.Price),
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
	}
}
