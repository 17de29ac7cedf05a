package timeentry

import (
	"context"
	"errors"
	"time"

	"go-payroll/internal/employee"
	"go-payroll/internal/shared/contextutil"
	timeentryerrors "go-payroll/internal/timeentry/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type Service interface {
	Create(ctx context.Context, req CreateOvertimeEntryRequest) (OvertimeEntryResponse, error)
	List(ctx context.Context, q ListOvertimeEntriesQuery) ([]OvertimeEntryResponse, error)
	Delete(ctx context.Context, id int64) error
}

// PaidChecker reports whether the settlement of a period is already PAID.
// The check runs on tx and keeps the settlement row locked until tx ends.
type PaidChecker interface {
	IsPaidTx(ctx context.Context, tx *gorm.DB, employeeID int64, year, month int) (bool, error)
}

type service struct {
	db        *gorm.DB
	repo      Repository
	employees employee.Repository
	paid      PaidChecker
	logger    *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, employees employee.Repository, paid PaidChecker, logger ...*zap.Logger) Service {
	l := zap.L().Named("timeentry.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timeentry.service")
	}
	return &service{db: db, repo: repo, employees: employees, paid: paid, logger: l}
}

func (s *service) ensureUnpaid(ctx context.Context, tx *gorm.DB, employeeID int64, day time.Time) error {
	if s.paid == nil {
		return nil
	}
	paid, err := s.paid.IsPaidTx(ctx, tx, employeeID, day.Year(), int(day.Month()))
	if err != nil {
		return err
	}
	if paid {
		return timeentryerrors.ErrPeriodAlreadyPaid
	}
	return nil
}

// ParseInterval validates a date plus HH:MM start and end on that date and
// returns the UTC date and timestamps.
func ParseInterval(date, start, end string) (time.Time, time.Time, time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, timeentryerrors.ErrInvalidDate
	}

	startClock, err := time.ParseInLocation(timeLayout, start, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, timeentryerrors.ErrInvalidTime
	}
	endClock, err := time.ParseInLocation(timeLayout, end, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, timeentryerrors.ErrInvalidTime
	}

	startAt := day.Add(time.Duration(startClock.Hour())*time.Hour + time.Duration(startClock.Minute())*time.Minute)
	endAt := day.Add(time.Duration(endClock.Hour())*time.Hour + time.Duration(endClock.Minute())*time.Minute)
	if !endAt.After(startAt) {
		return time.Time{}, time.Time{}, time.Time{}, timeentryerrors.ErrEndNotAfterStart
	}

	return day, startAt, endAt, nil
}

func (s *service) Create(ctx context.Context, req CreateOvertimeEntryRequest) (OvertimeEntryResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(zap.Int64("employee_id", req.EmployeeID))

	day, startAt, endAt, err := ParseInterval(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		log.Warn("overtime entry rejected", zap.Error(err))
		return OvertimeEntryResponse{}, err
	}

	emp, err := s.employees.FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OvertimeEntryResponse{}, timeentryerrors.ErrEmployeeNotFound
		}
		return OvertimeEntryResponse{}, err
	}
	if emp.EmploymentType != employee.CategorySalaried {
		log.Warn("overtime entry rejected", zap.String("employment_type", string(emp.EmploymentType)))
		return OvertimeEntryResponse{}, timeentryerrors.ErrNotSalaried
	}

	entry := &OvertimeEntry{
		EmployeeID:   req.EmployeeID,
		OvertimeDate: day,
		StartAt:      startAt,
		EndAt:        endAt,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.ensureUnpaid(ctx, tx, req.EmployeeID, day); err != nil {
			return err
		}
		return s.repo.WithTx(tx).Create(ctx, entry)
	})
	if errors.Is(err, timeentryerrors.ErrPeriodAlreadyPaid) {
		log.Warn("overtime entry on paid period", zap.String("date", req.Date))
		return OvertimeEntryResponse{}, err
	}
	if err != nil {
		log.Error("overtime entry persist failed", zap.Error(err))
		return OvertimeEntryResponse{}, err
	}

	log.Info("overtime entry recorded",
		zap.Int64("entry_id", entry.ID),
		zap.String("date", req.Date),
		zap.Int64("minutes", entry.Minutes()),
	)
	return mapToResponse(*entry), nil
}

func (s *service) List(ctx context.Context, q ListOvertimeEntriesQuery) ([]OvertimeEntryResponse, error) {
	entries, err := s.repo.FindByEmployeeAndPeriod(ctx, q.EmployeeID, q.Year, q.Month)
	if err != nil {
		return nil, err
	}

	res := make([]OvertimeEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = mapToResponse(e)
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	log := contextutil.GetLogger(ctx, s.logger).With(zap.Int64("entry_id", id))

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		entry, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.ensureUnpaid(ctx, tx, entry.EmployeeID, entry.OvertimeDate); err != nil {
			return err
		}
		return qtx.Delete(ctx, id)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return timeentryerrors.ErrEntryNotFound
	}
	if errors.Is(err, timeentryerrors.ErrPeriodAlreadyPaid) {
		log.Warn("overtime delete on paid period")
		return err
	}
	if err != nil {
		log.Error("overtime entry delete failed", zap.Error(err))
		return err
	}

	log.Info("overtime entry deleted")
	return nil
}

func mapToResponse(e OvertimeEntry) OvertimeEntryResponse {
	return OvertimeEntryResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Date:       e.OvertimeDate.UTC().Format(dateLayout),
		StartTime:  e.StartAt.UTC().Format(timeLayout),
		EndTime:    e.EndAt.UTC().Format(timeLayout),
		Hours:      e.Hours().StringFixed(2),
	}
}
