package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/adonisdeptrai/r4bbit-sub001/internal/domain/errors"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/model"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/money"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/server/http/dto"
)

// CheckoutHandler manages checkout session endpoints.
type CheckoutHandler struct {
	facade CheckoutFacade
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(facade CheckoutFacade) *CheckoutHandler {
	return &CheckoutHandler{facade: facade}
}

// Create handles POST /api/user/checkout. A payload with a product id opens a
// buy-now session; an empty payload checks out the whole cart.
func (h *CheckoutHandler) Create(c *gin.Context) {
	userID := CurrentUserID(c)

	var req dto.CheckoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
	}

	var (
		sess model.CheckoutSession
		err  error
	)
	if req.ProductID != nil {
		sess, err = h.facade.CheckoutDirect(c.Request.Context(), userID, *req.ProductID, req.Quantity)
	} else {
		sess, err = h.facade.Checkout(c.Request.Context(), userID)
	}
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyCart):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	view, err := h.facade.CheckoutSession(c.Request.Context(), sess.ID, userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, toSessionResponse(view))
}

// Get handles GET /api/user/checkout/:id.
func (h *CheckoutHandler) Get(c *gin.Context) {
	view, err := h.facade.CheckoutSession(c.Request.Context(), c.Param("id"), CurrentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(view))
}

// Confirm handles POST /api/user/checkout/:id/confirm.
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	var req dto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	userID := CurrentUserID(c)
	id := c.Param("id")

	_, err := h.facade.ConfirmCheckout(c.Request.Context(), id, userID, model.PaymentMethod(req.Method), req.Network)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidMethod),
			errors.Is(err, domainErrors.ErrUnknownNetwork),
			errors.Is(err, domainErrors.ErrBankNotConfigured):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrSessionClosed):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	view, err := h.facade.CheckoutSession(c.Request.Context(), id, userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(view))
}

// Cancel handles DELETE /api/user/checkout/:id.
func (h *CheckoutHandler) Cancel(c *gin.Context) {
	err := h.facade.CancelCheckout(c.Request.Context(), c.Param("id"), CurrentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func toSessionResponse(view *model.SessionView) dto.SessionResponse {
	sess := view.Session

	items := make([]dto.CheckoutItemResponse, 0, len(sess.Items))
	for _, item := range sess.Items {
		items = append(items, dto.CheckoutItemResponse{
			ProductID: item.ProductID,
			Title:     item.Title,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	resp := dto.SessionResponse{
		ID:          sess.ID,
		State:       string(sess.State),
		Items:       items,
		Total:       sess.Total,
		TotalLabel:  money.FormatUSD(sess.Total),
		PaymentCode: sess.PaymentCode,
		Method:      string(sess.Method),
		PayURL:      sess.PayURL,
		VerifyError: sess.VerifyError,
		ExpiresAt:   sess.ExpiresAt,
	}

	if sess.State == model.SessionStateVerifying {
		resp.Countdown = view.Countdown
	}

	if view.Bank != nil {
		resp.Bank = &dto.BankDetailsResponse{
			BankID:        view.Bank.BankID,
			AccountNumber: view.Bank.AccountNumber,
			AccountName:   view.Bank.AccountName,
			Amount:        view.Bank.Amount,
			Memo:          view.Bank.Memo,
			QRImageURL:    view.Bank.QRImageURL,
		}
	}

	for _, n := range view.Networks {
		resp.Networks = append(resp.Networks, dto.NetworkResponse{
			Name:       n.Name,
			Address:    n.Address,
			QRImageURL: n.QRImageURL,
		})
	}

	if sess.Receipt != nil {
		resp.Receipt = &dto.ReceiptResponse{
			OrderID: sess.Receipt.OrderID,
			Date:    sess.Receipt.Date,
			Total:   sess.Receipt.Total,
			Method:  sess.Receipt.Method,
		}
	}

	return resp
}
