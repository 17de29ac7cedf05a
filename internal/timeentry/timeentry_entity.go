package timeentry

import (
	"time"

	"github.com/shopspring/decimal"
)

var minutesPerHour = decimal.NewFromInt(60)

// OvertimeEntry is one recorded overtime interval. All timestamps are UTC and
// OvertimeDate is the calendar date the interval is billed to.
type OvertimeEntry struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	EmployeeID   int64     `gorm:"column:employee_id;not null;index:idx_overtime_employee_date"`
	OvertimeDate time.Time `gorm:"column:ot_date;type:date;not null;index:idx_overtime_employee_date"`
	StartAt      time.Time `gorm:"column:start_at;not null"`
	EndAt        time.Time `gorm:"column:end_at;not null"`
	CreatedAt    time.Time
}

func (OvertimeEntry) TableName() string {
	return "overtime_entries"
}

// Minutes is the whole-minute length of the interval, never negative.
func (e OvertimeEntry) Minutes() int64 {
	m := int64(e.EndAt.Sub(e.StartAt) / time.Minute)
	if m < 0 {
		return 0
	}
	return m
}

func (e OvertimeEntry) Hours() decimal.Decimal {
	return decimal.NewFromInt(e.Minutes()).Div(minutesPerHour)
}
