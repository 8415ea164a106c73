package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/adonisdeptrai/r4bbit-sub001/internal/adapter/bank"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/adapter/binance"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/config"
	domainErrors "github.com/adonisdeptrai/r4bbit-sub001/internal/domain/errors"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/model"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/repository"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/money"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/paycode"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/qr"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/session"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/verify"
)

// Method labels recorded on completed orders and shown on receipts.
const (
	methodLabelBank    = "Bank Transfer (QR)"
	methodLabelBinance = "Binance Pay (Auto)"
)

const (
	finalizeTimeout = 10 * time.Second
	timeoutMessage  = "verification timed out, no matching payment was found"
	displayIDPrefix = "R4B-"
	displayIDLength = 8
)

func methodLabelCrypto(network string) string {
	return "Crypto (" + network + ")"
}

// CheckoutUseCase drives the checkout flow: session creation, payment
// confirmation with polling verification, and order finalization.
type CheckoutUseCase struct {
	sessions *session.Store
	carts    repository.CartRepository
	products repository.ProductRepository
	orders   repository.OrderRepository
	settings repository.SettingsRepository
	bank     bank.Client
	binance  binance.Client
	cfg      *config.Config
	logger   *slog.Logger
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(
	sessions *session.Store,
	carts repository.CartRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
	settings repository.SettingsRepository,
	bankClient bank.Client,
	binanceClient binance.Client,
	cfg *config.Config,
	logger *slog.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		sessions: sessions,
		carts:    carts,
		products: products,
		orders:   orders,
		settings: settings,
		bank:     bankClient,
		binance:  binanceClient,
		cfg:      cfg,
		logger:   logger,
	}
}

// CreateFromCart opens a checkout session for the user's full cart.
func (u *CheckoutUseCase) CreateFromCart(ctx context.Context, userID int64) (model.CheckoutSession, error) {
	lines, err := u.carts.ListByUser(ctx, userID)
	if err != nil {
		return model.CheckoutSession{}, err
	}
	if len(lines) == 0 {
		return model.CheckoutSession{}, domainErrors.ErrEmptyCart
	}

	items := make([]model.CheckoutItem, 0, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		items = append(items, model.CheckoutItem{
			ProductID: line.Product.ID,
			Title:     line.Product.Title,
			Price:     line.Product.Price,
			Quantity:  line.Quantity,
		})
		total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	return u.newSession(userID, items, total, true), nil
}

// CreateDirect opens a buy-now session for a single product, bypassing the cart.
func (u *CheckoutUseCase) CreateDirect(ctx context.Context, userID, productID int64, quantity int) (model.CheckoutSession, error) {
	if quantity <= 0 {
		quantity = 1
	}

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return model.CheckoutSession{}, err
	}
	if !product.Active {
		return model.CheckoutSession{}, domainErrors.ErrNotFound
	}

	items := []model.CheckoutItem{{
		ProductID: product.ID,
		Title:     product.Title,
		Price:     product.Price,
		Quantity:  quantity,
	}}
	total := product.Price.Mul(decimal.NewFromInt(int64(quantity)))

	return u.newSession(userID, items, total, false), nil
}

func (u *CheckoutUseCase) newSession(userID int64, items []model.CheckoutItem, total decimal.Decimal, fromCart bool) model.CheckoutSession {
	return u.sessions.Put(model.CheckoutSession{
		ID:          uuid.NewString(),
		UserID:      userID,
		Items:       items,
		Total:       total,
		PaymentCode: paycode.New(),
		FromCart:    fromCart,
		State:       model.SessionStateOpen,
	})
}

// Session assembles the checkout view for an owned session.
func (u *CheckoutUseCase) Session(ctx context.Context, id string, userID int64) (*model.SessionView, error) {
	snap, err := u.sessions.Get(id, userID)
	if err != nil {
		return nil, err
	}

	settings, err := u.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	view := &model.SessionView{
		Session:  snap,
		Networks: settings.CryptoNetworks,
	}

	if settings.BankConfigured() {
		amountVND := money.ToVND(snap.Total, settings.ExchangeRate)
		view.Bank = &model.BankInstructions{
			BankID:        settings.BankID,
			AccountNumber: settings.BankAccountNumber,
			AccountName:   settings.BankAccountName,
			AmountVND:     amountVND,
			Amount:        money.FormatVND(amountVND),
			Memo:          snap.PaymentCode,
			QRImageURL:    qr.BankImageURL(*settings, amountVND, snap.PaymentCode),
		}
	}

	if snap.State == model.SessionStateVerifying {
		if verifier, err := u.sessions.Verifier(id, userID); err == nil {
			if attempt := verifier.Current(); attempt != nil && attempt.Status() == verify.StatusPolling {
				view.Remaining = attempt.Remaining()
			}
		}
	}
	view.Countdown = verify.FormatCountdown(view.Remaining)

	return view, nil
}

// Confirm starts payment verification for the chosen method. Bank and Binance
// methods launch a background polling attempt; crypto finalizes immediately
// since settlement is confirmed manually off-platform. Confirming again while
// an attempt is polling cancels it and starts a fresh one.
func (u *CheckoutUseCase) Confirm(ctx context.Context, id string, userID int64, method model.PaymentMethod, network string) (model.CheckoutSession, error) {
	if !method.Valid() {
		return model.CheckoutSession{}, domainErrors.ErrInvalidMethod
	}

	snap, err := u.sessions.Get(id, userID)
	if err != nil {
		return model.CheckoutSession{}, err
	}
	if snap.State == model.SessionStateCompleted || snap.State == model.SessionStateNeedsSupport {
		return model.CheckoutSession{}, domainErrors.ErrSessionClosed
	}

	settings, err := u.settings.Get(ctx)
	if err != nil {
		return model.CheckoutSession{}, err
	}

	switch method {
	case model.PaymentMethodCrypto:
		net, ok := settings.Network(strings.TrimSpace(network))
		if !ok {
			return model.CheckoutSession{}, domainErrors.ErrUnknownNetwork
		}
		if _, err := u.sessions.Update(id, func(s *model.CheckoutSession) error {
			s.Method = model.PaymentMethodCrypto
			return nil
		}); err != nil {
			return model.CheckoutSession{}, err
		}
		u.finalize(id, methodLabelCrypto(net.Name))

	case model.PaymentMethodBank:
		if !settings.BankConfigured() {
			return model.CheckoutSession{}, domainErrors.ErrBankNotConfigured
		}
		if err := u.startBankAttempt(id, userID, snap, settings.ExchangeRate); err != nil {
			return model.CheckoutSession{}, err
		}

	case model.PaymentMethodBinancePay:
		if err := u.startBinanceAttempt(ctx, id, userID, snap); err != nil {
			return model.CheckoutSession{}, err
		}
	}

	return u.sessions.Get(id, userID)
}

// Cancel drops the session and stops any active verification.
func (u *CheckoutUseCase) Cancel(ctx context.Context, id string, userID int64) error {
	return u.sessions.Remove(id, userID)
}

func (u *CheckoutUseCase) startBankAttempt(id string, userID int64, snap model.CheckoutSession, rate decimal.Decimal) error {
	verifier, err := u.sessions.Verifier(id, userID)
	if err != nil {
		return err
	}

	if _, err := u.sessions.Update(id, func(s *model.CheckoutSession) error {
		s.State = model.SessionStateVerifying
		s.Method = model.PaymentMethodBank
		s.VerifyError = ""
		return nil
	}); err != nil {
		return err
	}

	code := snap.PaymentCode
	amountVND := money.ToVND(snap.Total, rate)

	verifier.Start(context.Background(), verify.Options{
		Interval:    u.cfg.BankPollInterval,
		MaxDuration: u.cfg.VerifyTimeout,
		OnSuccess:   func() { u.finalize(id, methodLabelBank) },
		OnTimeout:   func() { u.expire(id) },
	}, func(ctx context.Context) (bool, error) {
		return u.bank.Verify(ctx, code, amountVND)
	})
	return nil
}

func (u *CheckoutUseCase) startBinanceAttempt(ctx context.Context, id string, userID int64, snap model.CheckoutSession) error {
	verifier, err := u.sessions.Verifier(id, userID)
	if err != nil {
		return err
	}

	remote, err := u.binance.CreateOrder(ctx, snap.Total, snap.ItemSummary())
	if err != nil {
		return err
	}

	if _, err := u.sessions.Update(id, func(s *model.CheckoutSession) error {
		s.State = model.SessionStateVerifying
		s.Method = model.PaymentMethodBinancePay
		s.RemoteOrderID = remote.ID
		s.PayURL = remote.PayURL
		s.VerifyError = ""
		return nil
	}); err != nil {
		return err
	}

	remoteID := remote.ID
	verifier.Start(context.Background(), verify.Options{
		Interval:    u.cfg.BinancePollInterval,
		MaxDuration: u.cfg.VerifyTimeout,
		OnSuccess:   func() { u.finalize(id, methodLabelBinance) },
		OnTimeout:   func() { u.expire(id) },
	}, func(ctx context.Context) (bool, error) {
		status, err := u.binance.OrderStatus(ctx, remoteID)
		if err != nil {
			return false, err
		}
		return status == model.RemoteOrderStatusPaid, nil
	})
	return nil
}

// finalize records the order for a confirmed payment. The store claim is the
// exactly-once rail: a session is claimed at most once, so concurrent
// confirmations cannot produce two order records. The claim also cancels any
// verification still polling, and COMPLETED is committed together with the
// receipt so readers never observe one without the other.
func (u *CheckoutUseCase) finalize(id, methodLabel string) {
	snap, err := u.sessions.Claim(id)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), finalizeTimeout)
	defer cancel()

	created, err := u.orders.Create(ctx, &model.Order{
		DisplayID:      displayOrderID(),
		UserID:         snap.UserID,
		ProductSummary: snap.ItemSummary(),
		Amount:         snap.Total,
		Status:         model.OrderStatusCompleted,
		Method:         methodLabel,
	})
	if err != nil {
		u.logger.Error("order record failed after confirmed payment",
			slog.String("session_id", id), slog.String("error", err.Error()))
		_, _ = u.sessions.Update(id, func(s *model.CheckoutSession) error {
			s.State = model.SessionStateNeedsSupport
			s.VerifyError = domainErrors.ErrOrderRecordFailed.Error()
			return nil
		})
		return
	}

	_, _ = u.sessions.Update(id, func(s *model.CheckoutSession) error {
		s.State = model.SessionStateCompleted
		s.VerifyError = ""
		s.Receipt = &model.Receipt{
			OrderID: created.DisplayID,
			Date:    created.CreatedAt,
			Total:   created.Amount,
			Method:  methodLabel,
		}
		return nil
	})

	if snap.FromCart {
		if err := u.carts.Clear(ctx, snap.UserID); err != nil {
			u.logger.Error("cart clear after checkout failed",
				slog.Int64("user_id", snap.UserID), slog.String("error", err.Error()))
		}
	}

	u.logger.Info("checkout finalized",
		slog.String("session_id", id),
		slog.String("order_id", created.DisplayID),
		slog.String("method", methodLabel))
}

// expire returns a timed-out session to OPEN so the buyer can retry.
func (u *CheckoutUseCase) expire(id string) {
	_, _ = u.sessions.Update(id, func(s *model.CheckoutSession) error {
		if s.State != model.SessionStateVerifying {
			return nil
		}
		s.State = model.SessionStateOpen
		s.VerifyError = timeoutMessage
		return nil
	})
}

func displayOrderID() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return displayIDPrefix + raw[:displayIDLength]
}
