package payroll

import (
	"time"

	"go-payroll/internal/employee"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "PENDING"
	StatusPaid    Status = "PAID"
)

// SettlementRecord is the stored computation for one employee and period.
// Once Status is PAID the amounts and the snapshot fields are frozen.
type SettlementRecord struct {
	ID             int64              `gorm:"primaryKey;autoIncrement"`
	EmployeeID     int64              `gorm:"column:employee_id;not null;uniqueIndex:uq_settlement_period"`
	Year           int                `gorm:"column:year;not null;uniqueIndex:uq_settlement_period"`
	Month          int                `gorm:"column:month;not null;uniqueIndex:uq_settlement_period"`
	BaseAmount     decimal.Decimal    `gorm:"column:base_amount;type:numeric(18,2);not null"`
	VariableAmount decimal.Decimal    `gorm:"column:variable_amount;type:numeric(18,2);not null"`
	TotalAmount    decimal.Decimal    `gorm:"column:total_amount;type:numeric(18,2);not null"`
	Status         Status             `gorm:"column:status;type:varchar(10);not null;index"`
	SnapshotType   *employee.Category `gorm:"column:snapshot_type;type:varchar(20)"`
	SnapshotBand   *int               `gorm:"column:snapshot_band"`
	PaidAt         *time.Time         `gorm:"column:paid_at"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (SettlementRecord) TableName() string {
	return "settlement_records"
}

// PaymentLog is append-only: one row per settlement transitioned to PAID.
type PaymentLog struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	SettlementID  int64           `gorm:"column:settlement_id;not null;index"`
	PaidBy        string          `gorm:"column:paid_by;type:varchar(100);not null"`
	Amount        decimal.Decimal `gorm:"column:amount;type:numeric(18,2);not null"`
	PaymentMethod string          `gorm:"column:payment_method;type:varchar(50)"`
	Reference     string          `gorm:"column:reference;type:varchar(100)"`
	PaidAt        time.Time       `gorm:"column:paid_at;not null"`
}

func (PaymentLog) TableName() string {
	return "payment_logs"
}

// Breakdown is the display split of a gross amount.
type Breakdown struct {
	Base     decimal.Decimal
	Variable decimal.Decimal
	Days     int
}

// Row is one employee's figures for a period, either computed live or
// recalled from a PAID settlement.
type Row struct {
	EmployeeID     int64
	Name           string
	EmploymentType employee.Category
	PayBand        *int
	Total          decimal.Decimal
	Breakdown      Breakdown
	Status         Status
	Frozen         bool
}
