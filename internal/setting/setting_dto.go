package setting

type UpdateDailyRateRequest struct {
	DailyRate string `json:"daily_rate" binding:"required"`
}

type DailyRateResponse struct {
	DailyRate string `json:"daily_rate"`
	IsDefault bool   `json:"is_default"`
}
