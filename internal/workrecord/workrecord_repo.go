package workrecord

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	// DaysWorked returns 0 when no record exists.
	DaysWorked(ctx context.Context, employeeID int64, year, month int) (int, error)
	Find(ctx context.Context, employeeID int64, year, month int) (*WorkRecord, error)
	EnsureExists(ctx context.Context, employeeID int64, year, month int) error
	SetDaysWorked(ctx context.Context, employeeID int64, year, month, days int) error
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

func (r *repository) Find(ctx context.Context, employeeID int64, year, month int) (*WorkRecord, error) {
	var rec WorkRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND year = ? AND month = ?", employeeID, year, month).
		Take(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) DaysWorked(ctx context.Context, employeeID int64, year, month int) (int, error) {
	rec, err := r.Find(ctx, employeeID, year, month)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return rec.DaysWorked, nil
}

func (r *repository) EnsureExists(ctx context.Context, employeeID int64, year, month int) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&WorkRecord{EmployeeID: employeeID, Year: year, Month: month}).Error
}

func (r *repository) SetDaysWorked(ctx context.Context, employeeID int64, year, month, days int) error {
	return r.db.WithContext(ctx).
		Model(&WorkRecord{}).
		Where("employee_id = ? AND year = ? AND month = ?", employeeID, year, month).
		Update("days_worked", days).Error
}
