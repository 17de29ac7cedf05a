package workrecord

import "time"

// WorkRecord holds the days a DAILY_RATE employee worked in one month.
type WorkRecord struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	EmployeeID int64 `gorm:"column:employee_id;not null;uniqueIndex:uq_work_record_period"`
	Year       int   `gorm:"not null;uniqueIndex:uq_work_record_period"`
	Month      int   `gorm:"not null;uniqueIndex:uq_work_record_period"`
	DaysWorked int   `gorm:"column:days_worked;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (WorkRecord) TableName() string {
	return "work_records"
}
