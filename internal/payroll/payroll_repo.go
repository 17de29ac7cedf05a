package payroll

import (
	"context"
	"errors"
	"time"

	"go-payroll/internal/employee"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PaymentInfo is the latest payment log entry of a PAID settlement.
type PaymentInfo struct {
	SettlementID  int64
	PaidBy        string
	PaidAt        time.Time
	PaymentMethod string
	Reference     string
	Amount        decimal.Decimal
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAllByPeriod(ctx context.Context, year, month int) ([]SettlementRecord, error)
	FindByEmployeeAndPeriod(ctx context.Context, employeeID int64, year, month int) (*SettlementRecord, error)
	// FindForUpdate takes a row lock where the dialect supports it.
	FindForUpdate(ctx context.Context, employeeID int64, year, month int) (*SettlementRecord, error)
	// UpsertPending inserts the record or overwrites the amounts of a PENDING
	// one. A PAID row for the same key is left untouched.
	UpsertPending(ctx context.Context, rec *SettlementRecord) error
	// MarkPaid reports false when the row was no longer PENDING.
	MarkPaid(ctx context.Context, id int64, snapType employee.Category, snapBand *int, paidAt time.Time) (bool, error)
	CreatePaymentLog(ctx context.Context, entry *PaymentLog) error
	SumPaid(ctx context.Context, year, month int) (decimal.Decimal, error)
	FindPaymentInfo(ctx context.Context, employeeID int64, year, month int) (*PaymentInfo, error)
	// IsPaid holds a shared lock on the settlement row until the enclosing
	// transaction ends.
	IsPaid(ctx context.Context, employeeID int64, year, month int) (bool, error)
	IsPaidTx(ctx context.Context, tx *gorm.DB, employeeID int64, year, month int) (bool, error)
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

func (r *repository) FindAllByPeriod(ctx context.Context, year, month int) ([]SettlementRecord, error) {
	var recs []SettlementRecord
	err := r.db.WithContext(ctx).
		Where("year = ? AND month = ?", year, month).
		Order("employee_id ASC").
		Find(&recs).Error
	return recs, err
}

func (r *repository) FindByEmployeeAndPeriod(ctx context.Context, employeeID int64, year, month int) (*SettlementRecord, error) {
	var rec SettlementRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND year = ? AND month = ?", employeeID, year, month).
		Take(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) FindForUpdate(ctx context.Context, employeeID int64, year, month int) (*SettlementRecord, error) {
	var rec SettlementRecord
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("employee_id = ? AND year = ? AND month = ?", employeeID, year, month).
		Take(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) UpsertPending(ctx context.Context, rec *SettlementRecord) error {
	rec.Status = StatusPending
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "year"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"base_amount",
				"variable_amount",
				"total_amount",
				"updated_at",
			}),
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Eq{
					Column: clause.Column{Table: SettlementRecord{}.TableName(), Name: "status"},
					Value:  string(StatusPending),
				},
			}},
		}).
		Create(rec).Error
}

func (r *repository) MarkPaid(ctx context.Context, id int64, snapType employee.Category, snapBand *int, paidAt time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&SettlementRecord{}).
		Where("id = ? AND status = ?", id, StatusPending).
		Updates(map[string]any{
			"status":        StatusPaid,
			"snapshot_type": snapType,
			"snapshot_band": snapBand,
			"paid_at":       paidAt,
			"updated_at":    paidAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) CreatePaymentLog(ctx context.Context, entry *PaymentLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) SumPaid(ctx context.Context, year, month int) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&SettlementRecord{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("year = ? AND month = ? AND status = ?", year, month, StatusPaid).
		Row().
		Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *repository) FindPaymentInfo(ctx context.Context, employeeID int64, year, month int) (*PaymentInfo, error) {
	var info PaymentInfo
	err := r.db.WithContext(ctx).
		Table("payment_logs AS pl").
		Select("pl.settlement_id, pl.paid_by, pl.paid_at, pl.payment_method, pl.reference, pl.amount").
		Joins("JOIN settlement_records AS sr ON sr.id = pl.settlement_id").
		Where("sr.employee_id = ? AND sr.year = ? AND sr.month = ? AND sr.status = ?", employeeID, year, month, StatusPaid).
		Order("pl.paid_at DESC").
		Take(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *repository) IsPaid(ctx context.Context, employeeID int64, year, month int) (bool, error) {
	var rec SettlementRecord
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "SHARE"}).
		Select("id", "status").
		Where("employee_id = ? AND year = ? AND month = ?", employeeID, year, month).
		Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return rec.Status == StatusPaid, nil
}

// IsPaidTx runs IsPaid on tx, for callers that write period inputs in their own transaction.
func (r *repository) IsPaidTx(ctx context.Context, tx *gorm.DB, employeeID int64, year, month int) (bool, error) {
	return r.WithTx(tx).IsPaid(ctx, employeeID, year, month)
}
