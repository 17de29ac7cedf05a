package employee

import (
	"context"

	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int64) (DeleteEmployeeResponse, error)
	GetPayBand(ctx context.Context, id int64) (EmployeePayBandResponse, error)
	GetStats(ctx context.Context) (StatsResponse, error)
	ListPayBands(ctx context.Context) ([]PayBandResponse, error)
	SetPayBand(ctx context.Context, band int, req SetPayBandRequest) (PayBandResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

// validateCategory enforces that SALARIED carries a band and DAILY_RATE never does.
func validateCategory(raw string, band *int) (Category, error) {
	category := Category(raw)
	if !category.Valid() {
		return "", employeeerrors.ErrInvalidCategory
	}
	switch category {
	case CategorySalaried:
		if band == nil {
			return "", employeeerrors.ErrPayBandRequired
		}
		if !ValidPayBand(*band) {
			return "", employeeerrors.ErrInvalidPayBand
		}
	case CategoryDailyRate:
		if band != nil {
			return "", employeeerrors.ErrPayBandNotAllowed
		}
	}
	return category, nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	log := s.log(ctx)
	log.Debug("create employee requested",
		zap.String("employment_type", req.EmploymentType),
	)

	category, err := validateCategory(req.EmploymentType, req.PayBand)
	if err != nil {
		log.Warn("create employee rejected", zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		Name:           req.Name,
		EmploymentType: category,
		PayBand:        req.PayBand,
		IsActive:       true,
	}
	if err := s.repo.Create(ctx, empl); err != nil {
		log.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	log.Info("create employee success", zap.Int64("employee_id", empl.ID))
	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	emps, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log(ctx).Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(emps), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	log := s.log(ctx).With(zap.Int64("employee_id", id))
	log.Debug("update employee requested")

	category, err := validateCategory(req.EmploymentType, req.PayBand)
	if err != nil {
		log.Warn("update employee rejected", zap.Error(err))
		return EmployeeResponse{}, err
	}

	var updated Employee
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		empl, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		empl.Name = req.Name
		empl.EmploymentType = category
		empl.PayBand = req.PayBand
		if req.IsActive != nil {
			empl.IsActive = *req.IsActive
		}

		if err := qtx.Update(ctx, empl); err != nil {
			return err
		}
		updated = *empl
		return nil
	})
	if err != nil {
		log.Error("update employee failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	log.Info("update employee success")
	return mapToResponse(updated), nil
}

// Delete removes an employee with no payroll history. Otherwise the employee is
// deactivated so paid settlements keep a valid owner.
func (s *service) Delete(ctx context.Context, id int64) (DeleteEmployeeResponse, error) {
	log := s.log(ctx).With(zap.Int64("employee_id", id))
	log.Debug("delete employee requested")

	var resp DeleteEmployeeResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		empl, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		hasHistory, err := qtx.HasFinancialHistory(ctx, id)
		if err != nil {
			return err
		}

		if hasHistory {
			empl.IsActive = false
			if err := qtx.Update(ctx, empl); err != nil {
				return err
			}
			resp.Deactivated = true
			return nil
		}

		if err := qtx.Delete(ctx, id); err != nil {
			return err
		}
		resp.Deleted = true
		return nil
	})
	if err != nil {
		log.Error("delete employee failed", zap.Error(err))
		return DeleteEmployeeResponse{}, mapRepositoryError(err)
	}

	log.Info("delete employee success",
		zap.Bool("deleted", resp.Deleted),
		zap.Bool("deactivated", resp.Deactivated),
	)
	return resp, nil
}

func (s *service) GetPayBand(ctx context.Context, id int64) (EmployeePayBandResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeePayBandResponse{}, mapRepositoryError(err)
	}
	return EmployeePayBandResponse{EmployeeID: empl.ID, PayBand: empl.PayBand}, nil
}

func (s *service) GetStats(ctx context.Context) (StatsResponse, error) {
	stats, err := s.repo.CountActive(ctx)
	if err != nil {
		s.log(ctx).Error("count employees failed", zap.Error(err))
		return StatsResponse{}, err
	}
	return StatsResponse{
		Total:     stats.Total,
		Salaried:  stats.Salaried,
		DailyRate: stats.DailyRate,
		Inactive:  stats.Inactive,
	}, nil
}

func (s *service) ListPayBands(ctx context.Context) ([]PayBandResponse, error) {
	bands, err := s.repo.FindPayBands(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]PayBandResponse, len(bands))
	for i, b := range bands {
		res[i] = PayBandResponse{Band: b.Band, BaseAmount: b.BaseAmount.StringFixed(2)}
	}
	return res, nil
}

func (s *service) SetPayBand(ctx context.Context, band int, req SetPayBandRequest) (PayBandResponse, error) {
	if !ValidPayBand(band) {
		return PayBandResponse{}, employeeerrors.ErrInvalidPayBand
	}
	amount, err := decimal.NewFromString(req.BaseAmount)
	if err != nil || amount.IsNegative() {
		return PayBandResponse{}, employeeerrors.ErrInvalidBaseAmount
	}

	pb := &PayBand{Band: band, BaseAmount: amount.Round(2)}
	if err := s.repo.SavePayBand(ctx, pb); err != nil {
		s.log(ctx).Error("save pay band failed", zap.Int("band", band), zap.Error(err))
		return PayBandResponse{}, err
	}

	s.log(ctx).Info("pay band saved", zap.Int("band", band), zap.String("base_amount", pb.BaseAmount.String()))
	return PayBandResponse{Band: pb.Band, BaseAmount: pb.BaseAmount.StringFixed(2)}, nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             empl.ID,
		Name:           empl.Name,
		EmploymentType: string(empl.EmploymentType),
		PayBand:        empl.PayBand,
		IsActive:       empl.IsActive,
	}
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		res[i] = mapToResponse(e)
	}
	return res
}
