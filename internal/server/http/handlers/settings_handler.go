package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/adonisdeptrai/r4bbit-sub001/internal/domain/errors"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/model"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/server/http/dto"
)

// SettingsHandler serves payment configuration endpoints.
type SettingsHandler struct {
	facade SettingsFacade
}

// NewSettingsHandler constructs SettingsHandler.
func NewSettingsHandler(facade SettingsFacade) *SettingsHandler {
	return &SettingsHandler{facade: facade}
}

// PaymentOptions handles GET /api/payment-options. Public: exposes only what
// a buyer needs to pick a method, never the full bank account record.
func (h *SettingsHandler) PaymentOptions(c *gin.Context) {
	settings, err := h.facade.PaymentOptions(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.PaymentOptionsResponse{
		BankConfigured: settings.BankConfigured(),
		Networks:       toNetworkResponses(settings.CryptoNetworks),
	})
}

// Get handles GET /api/admin/settings.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.facade.PaymentOptions(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.SettingsResponse{
		BankID:            settings.BankID,
		BankAccountNumber: settings.BankAccountNumber,
		BankAccountName:   settings.BankAccountName,
		ExchangeRate:      settings.ExchangeRate,
		CryptoNetworks:    toNetworkResponses(settings.CryptoNetworks),
	})
}

// Update handles PUT /api/admin/settings.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	networks := make([]model.CryptoNetwork, 0, len(req.CryptoNetworks))
	for _, n := range req.CryptoNetworks {
		networks = append(networks, model.CryptoNetwork{
			Name:       n.Name,
			Address:    n.Address,
			QRImageURL: n.QRImageURL,
		})
	}

	err := h.facade.UpdateSettings(c.Request.Context(), &model.PaymentSettings{
		BankID:            req.BankID,
		BankAccountNumber: req.BankAccountNumber,
		BankAccountName:   req.BankAccountName,
		ExchangeRate:      req.ExchangeRate,
		CryptoNetworks:    networks,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidSettings):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}

func toNetworkResponses(networks []model.CryptoNetwork) []dto.NetworkResponse {
	response := make([]dto.NetworkResponse, 0, len(networks))
	for _, n := range networks {
		response = append(response, dto.NetworkResponse{
			Name:       n.Name,
			Address:    n.Address,
			QRImageURL: n.QRImageURL,
		})
	}
	return response
}
