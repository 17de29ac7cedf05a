package setting

import "time"

const KeyDailyRate = "daily_rate"

type AppSetting struct {
	Key       string `gorm:"column:setting_key;type:varchar(64);primaryKey"`
	Value     string `gorm:"column:setting_value;type:varchar(255);not null"`
	UpdatedAt time.Time
}

func (AppSetting) TableName() string {
	return "app_settings"
}
