package employee

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id int64) (*Employee, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id int64) error
	HasFinancialHistory(ctx context.Context, id int64) (bool, error)
	CountActive(ctx context.Context) (Stats, error)
	PayBandBaseAmount(ctx context.Context, band int) (decimal.Decimal, error)
	FindPayBands(ctx context.Context) ([]PayBand, error)
	SavePayBand(ctx context.Context, band *PayBand) error
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// FindAll lists active employees first, then by name.
func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var emps []Employee
	err := r.db.WithContext(ctx).
		Order("is_active DESC").
		Order("name ASC").
		Order("id ASC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Employee, error) {
	var e Employee
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// HasFinancialHistory reports whether any settlement, work record or overtime
// entry references the employee.
func (r *repository) HasFinancialHistory(ctx context.Context, id int64) (bool, error) {
	for _, table := range []string{"settlement_records", "work_records", "overtime_entries"} {
		var count int64
		err := r.db.WithContext(ctx).
			Table(table).
			Where("employee_id = ?", id).
			Count(&count).Error
		if err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}

// CountActive counts active employees per category; inactive ones are only totalled.
func (r *repository) CountActive(ctx context.Context) (Stats, error) {
	var rows []struct {
		EmploymentType Category
		IsActive       bool
		Total          int64
	}
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Select("employment_type, is_active, COUNT(*) AS total").
		Group("employment_type, is_active").
		Scan(&rows).Error
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	for _, row := range rows {
		if !row.IsActive {
			stats.Inactive += row.Total
			continue
		}
		stats.Total += row.Total
		switch row.EmploymentType {
		case CategorySalaried:
			stats.Salaried += row.Total
		case CategoryDailyRate:
			stats.DailyRate += row.Total
		}
	}
	return stats, nil
}

// PayBandBaseAmount returns zero for a band that has no configured amount.
func (r *repository) PayBandBaseAmount(ctx context.Context, band int) (decimal.Decimal, error) {
	var pb PayBand
	err := r.db.WithContext(ctx).First(&pb, "band = ?", band).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	return pb.BaseAmount, nil
}

func (r *repository) FindPayBands(ctx context.Context) ([]PayBand, error) {
	var bands []PayBand
	err := r.db.WithContext(ctx).Order("band ASC").Find(&bands).Error
	return bands, err
}

func (r *repository) SavePayBand(ctx context.Context, band *PayBand) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "band"}},
			DoUpdates: clause.AssignmentColumns([]string{"base_amount", "updated_at"}),
		}).
		Create(band).Error
}
