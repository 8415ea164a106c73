package repository

import (
	"context"

	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/model"
)

// SettingsRepository manages the single payment settings record.
type SettingsRepository interface {
	Get(ctx context.Context) (*model.PaymentSettings, error)
	Update(ctx context.Context, settings *model.PaymentSettings) error
}
