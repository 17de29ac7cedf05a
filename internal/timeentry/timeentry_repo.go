package timeentry

import (
	"context"

	"go-payroll/internal/shared/calendar"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, e *OvertimeEntry) error
	FindByID(ctx context.Context, id int64) (*OvertimeEntry, error)
	FindByEmployeeAndPeriod(ctx context.Context, employeeID int64, year, month int) ([]OvertimeEntry, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, e *OvertimeEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*OvertimeEntry, error) {
	var e OvertimeEntry
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindByEmployeeAndPeriod(ctx context.Context, employeeID int64, year, month int) ([]OvertimeEntry, error) {
	start, next := calendar.MonthRange(year, month)

	var entries []OvertimeEntry
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("ot_date >= ? AND ot_date < ?", start, next).
		Order("ot_date ASC").
		Order("start_at ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&OvertimeEntry{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
