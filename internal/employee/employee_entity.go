package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategorySalaried  Category = "SALARIED"
	CategoryDailyRate Category = "DAILY_RATE"
)

func (c Category) Valid() bool {
	return c == CategorySalaried || c == CategoryDailyRate
}

const (
	MinPayBand = 1
	MaxPayBand = 4
)

func ValidPayBand(band int) bool {
	return band >= MinPayBand && band <= MaxPayBand
}

type Employee struct {
	ID             int64    `gorm:"primaryKey;autoIncrement"`
	Name           string   `gorm:"type:varchar(120);not null"`
	EmploymentType Category `gorm:"column:employment_type;type:varchar(20);not null;index"`
	// PayBand is set only for SALARIED employees.
	PayBand   *int `gorm:"column:pay_band"`
	IsActive  bool `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PayBand maps a band number to the monthly base amount of salaried staff.
type PayBand struct {
	Band       int             `gorm:"primaryKey;autoIncrement:false"`
	BaseAmount decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	UpdatedAt  time.Time
}

func (PayBand) TableName() string {
	return "pay_bands"
}

// Stats is the headcount of active employees by category plus the inactive total.
type Stats struct {
	Total     int64
	Salaried  int64
	DailyRate int64
	Inactive  int64
}
