package setting

import (
	"context"
	"errors"

	settingerrors "go-payroll/internal/setting/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	// DailyRate returns the configured per-day rate, or the default when the
	// setting is missing or unparseable.
	DailyRate(ctx context.Context) (decimal.Decimal, error)
	GetDailyRate(ctx context.Context) (DailyRateResponse, error)
	UpdateDailyRate(ctx context.Context, req UpdateDailyRateRequest) (DailyRateResponse, error)
}

type service struct {
	repo        Repository
	defaultRate decimal.Decimal
	logger      *zap.Logger
}

func NewService(repo Repository, defaultRate decimal.Decimal, logger ...*zap.Logger) Service {
	l := zap.L().Named("setting.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("setting.service")
	}
	return &service{repo: repo, defaultRate: defaultRate, logger: l}
}

func (s *service) DailyRate(ctx context.Context) (decimal.Decimal, error) {
	rate, _, err := s.lookup(ctx)
	return rate, err
}

func (s *service) lookup(ctx context.Context) (decimal.Decimal, bool, error) {
	row, err := s.repo.Get(ctx, KeyDailyRate)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.defaultRate, true, nil
	}
	if err != nil {
		return decimal.Zero, false, err
	}

	rate, err := decimal.NewFromString(row.Value)
	if err != nil || rate.IsNegative() {
		contextutil.GetLogger(ctx, s.logger).Warn("stored daily rate unusable, using default",
			zap.String("value", row.Value),
			zap.String("default", s.defaultRate.String()),
		)
		return s.defaultRate, true, nil
	}
	return rate, false, nil
}

func (s *service) GetDailyRate(ctx context.Context) (DailyRateResponse, error) {
	rate, isDefault, err := s.lookup(ctx)
	if err != nil {
		return DailyRateResponse{}, err
	}
	return DailyRateResponse{DailyRate: rate.StringFixed(2), IsDefault: isDefault}, nil
}

func (s *service) UpdateDailyRate(ctx context.Context, req UpdateDailyRateRequest) (DailyRateResponse, error) {
	rate, err := decimal.NewFromString(req.DailyRate)
	if err != nil || rate.IsNegative() {
		return DailyRateResponse{}, settingerrors.ErrInvalidDailyRate
	}
	rate = rate.Round(2)

	if err := s.repo.Upsert(ctx, KeyDailyRate, rate.String()); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("update daily rate failed", zap.Error(err))
		return DailyRateResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("daily rate updated", zap.String("daily_rate", rate.String()))
	return DailyRateResponse{DailyRate: rate.StringFixed(2)}, nil
}
