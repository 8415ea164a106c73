package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/adonisdeptrai/r4bbit-sub001/internal/domain/errors"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/model"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/repository"
)

// SettingsUseCase manages the admin-editable payment configuration.
type SettingsUseCase struct {
	settings repository.SettingsRepository
}

// NewSettingsUseCase constructs SettingsUseCase.
func NewSettingsUseCase(settings repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settings: settings}
}

// Get returns the current payment settings.
func (u *SettingsUseCase) Get(ctx context.Context) (*model.PaymentSettings, error) {
	return u.settings.Get(ctx)
}

// Update replaces the payment settings. Crypto networks without a name or
// address are rejected; the exchange rate must not be negative.
func (u *SettingsUseCase) Update(ctx context.Context, settings *model.PaymentSettings) error {
	if settings.ExchangeRate.IsNegative() {
		return domainErrors.ErrInvalidSettings
	}
	for i, n := range settings.CryptoNetworks {
		n.Name = strings.TrimSpace(n.Name)
		n.Address = strings.TrimSpace(n.Address)
		if n.Name == "" || n.Address == "" {
			return domainErrors.ErrInvalidSettings
		}
		settings.CryptoNetworks[i] = n
	}
	return u.settings.Update(ctx, settings)
}
