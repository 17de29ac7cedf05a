package employee

type CreateEmployeeRequest struct {
	Name           string `json:"name" binding:"required,max=120"`
	EmploymentType string `json:"employment_type" binding:"required,oneof=SALARIED DAILY_RATE"`
	PayBand        *int   `json:"pay_band" binding:"omitempty,min=1,max=4"`
}

type UpdateEmployeeRequest struct {
	Name           string `json:"name" binding:"required,max=120"`
	EmploymentType string `json:"employment_type" binding:"required,oneof=SALARIED DAILY_RATE"`
	PayBand        *int   `json:"pay_band" binding:"omitempty,min=1,max=4"`
	IsActive       *bool  `json:"is_active"`
}

type SetPayBandRequest struct {
	BaseAmount string `json:"base_amount" binding:"required"`
}

type EmployeeResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	EmploymentType string `json:"employment_type"`
	PayBand        *int   `json:"pay_band,omitempty"`
	IsActive       bool   `json:"is_active"`
}

type PayBandResponse struct {
	Band       int    `json:"band"`
	BaseAmount string `json:"base_amount"`
}

type EmployeePayBandResponse struct {
	EmployeeID int64 `json:"employee_id"`
	PayBand    *int  `json:"pay_band"`
}

type DeleteEmployeeResponse struct {
	Deleted     bool `json:"deleted"`
	Deactivated bool `json:"deactivated"`
}

type StatsResponse struct {
	Total     int64 `json:"total"`
	Salaried  int64 `json:"salaried"`
	DailyRate int64 `json:"daily_rate"`
	Inactive  int64 `json:"inactive"`
}
