package workrecord

import (
	"context"
	"errors"

	"go-payroll/internal/employee"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/calendar"
	"go-payroll/internal/shared/contextutil"
	workrecorderrors "go-payroll/internal/workrecord/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PaidChecker reports whether a settlement for the period is already PAID.
// The check runs on tx and keeps the settlement row locked until tx ends.
type PaidChecker interface {
	IsPaidTx(ctx context.Context, tx *gorm.DB, employeeID int64, year, month int) (bool, error)
}

type Service interface {
	SetDaysWorked(ctx context.Context, req SetDaysWorkedRequest) (WorkRecordResponse, error)
	Get(ctx context.Context, q GetWorkRecordQuery) (WorkRecordResponse, error)
}

type service struct {
	db        *gorm.DB
	repo      Repository
	employees employee.Repository
	paid      PaidChecker
	logger    *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, employees employee.Repository, paid PaidChecker, logger ...*zap.Logger) Service {
	l := zap.L().Named("workrecord.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workrecord.service")
	}
	return &service{db: db, repo: repo, employees: employees, paid: paid, logger: l}
}

// ValidateDaysWorked accepts 0 through the number of days in the month, inclusive.
func ValidateDaysWorked(year, month, days int) error {
	if !calendar.ValidPeriod(year, month) {
		return apperror.ErrInvalidPeriod
	}
	if days < 0 || days > calendar.DaysInMonth(year, month) {
		return workrecorderrors.ErrDaysOutOfRange
	}
	return nil
}

func (s *service) SetDaysWorked(ctx context.Context, req SetDaysWorkedRequest) (WorkRecordResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(
		zap.Int64("employee_id", req.EmployeeID),
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
	)

	if req.DaysWorked == nil {
		return WorkRecordResponse{}, workrecorderrors.ErrDaysOutOfRange
	}
	days := *req.DaysWorked
	if err := ValidateDaysWorked(req.Year, req.Month, days); err != nil {
		log.Warn("set days worked rejected", zap.Int("days_worked", days), zap.Error(err))
		return WorkRecordResponse{}, err
	}

	emp, err := s.employees.FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WorkRecordResponse{}, workrecorderrors.ErrEmployeeNotFound
		}
		return WorkRecordResponse{}, err
	}
	if emp.EmploymentType != employee.CategoryDailyRate {
		return WorkRecordResponse{}, workrecorderrors.ErrNotDailyRate
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if s.paid != nil {
			paid, err := s.paid.IsPaidTx(ctx, tx, req.EmployeeID, req.Year, req.Month)
			if err != nil {
				return err
			}
			if paid {
				return workrecorderrors.ErrPeriodAlreadyPaid
			}
		}

		qtx := s.repo.WithTx(tx)
		if err := qtx.EnsureExists(ctx, req.EmployeeID, req.Year, req.Month); err != nil {
			return err
		}
		return qtx.SetDaysWorked(ctx, req.EmployeeID, req.Year, req.Month, days)
	})
	if errors.Is(err, workrecorderrors.ErrPeriodAlreadyPaid) {
		log.Warn("set days worked on paid period")
		return WorkRecordResponse{}, err
	}
	if err != nil {
		log.Error("set days worked failed", zap.Error(err))
		return WorkRecordResponse{}, err
	}

	log.Info("days worked updated", zap.Int("days_worked", days))
	return WorkRecordResponse{
		EmployeeID:  req.EmployeeID,
		Year:        req.Year,
		Month:       req.Month,
		DaysWorked:  days,
		DaysInMonth: calendar.DaysInMonth(req.Year, req.Month),
	}, nil
}

func (s *service) Get(ctx context.Context, q GetWorkRecordQuery) (WorkRecordResponse, error) {
	if !calendar.ValidPeriod(q.Year, q.Month) {
		return WorkRecordResponse{}, apperror.ErrInvalidPeriod
	}

	days, err := s.repo.DaysWorked(ctx, q.EmployeeID, q.Year, q.Month)
	if err != nil {
		return WorkRecordResponse{}, err
	}
	return WorkRecordResponse{
		EmployeeID:  q.EmployeeID,
		Year:        q.Year,
		Month:       q.Month,
		DaysWorked:  days,
		DaysInMonth: calendar.DaysInMonth(q.Year, q.Month),
	}, nil
}
