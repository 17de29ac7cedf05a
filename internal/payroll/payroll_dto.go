package payroll

import "time"

type PeriodQuery struct {
	Year  int `form:"year" binding:"required,min=1900,max=9999"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

type EmployeePeriodQuery struct {
	EmployeeID int64 `form:"employee_id" binding:"required,min=1"`
	Year       int   `form:"year" binding:"required,min=1900,max=9999"`
	Month      int   `form:"month" binding:"required,min=1,max=12"`
}

// PayRequest pays the listed employees for one period. PaidBy is only used
// when the caller is not authenticated.
type PayRequest struct {
	EmployeeIDs   []int64 `json:"employee_ids" binding:"required,min=1,dive,min=1"`
	Year          int     `json:"year" binding:"required,min=1900,max=9999"`
	Month         int     `json:"month" binding:"required,min=1,max=12"`
	PaidBy        string  `json:"paid_by" binding:"omitempty,max=100"`
	PaymentMethod string  `json:"payment_method" binding:"required,max=50"`
	Reference     string  `json:"reference" binding:"omitempty,max=100"`
}

type PayrollRowResponse struct {
	EmployeeID     int64  `json:"employee_id"`
	Name           string `json:"name"`
	EmploymentType string `json:"employment_type"`
	PayBand        *int   `json:"pay_band"`
	BaseAmount     string `json:"base_amount"`
	VariableAmount string `json:"variable_amount"`
	TotalAmount    string `json:"total_amount"`
	Days           int    `json:"days"`
	Status         string `json:"status"`
	Frozen         bool   `json:"frozen"`
}

type PayResponse struct {
	Requested int `json:"requested"`
	Paid      int `json:"paid"`
	Skipped   int `json:"skipped"`
}

type StatusResponse struct {
	EmployeeID int64  `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Status     string `json:"status"`
}

type TotalPaidResponse struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	TotalPaid string `json:"total_paid"`
}

type SummaryResponse struct {
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	PaidTotal    string `json:"paid_total"`
	PendingTotal string `json:"pending_total"`
	GrandTotal   string `json:"grand_total"`
	PaidCount    int    `json:"paid_count"`
	PendingCount int    `json:"pending_count"`
}

type PaymentInfoResponse struct {
	SettlementID  int64     `json:"settlement_id"`
	PaidBy        string    `json:"paid_by"`
	PaidAt        time.Time `json:"paid_at"`
	PaymentMethod string    `json:"payment_method"`
	Reference     string    `json:"reference"`
	Amount        string    `json:"amount"`
}

type OvertimeSummaryResponse struct {
	EmployeeID     int64  `json:"employee_id"`
	Name           string `json:"name"`
	EmploymentType string `json:"employment_type"`
	WeekdayHours   string `json:"weekday_hours"`
	WeekendHours   string `json:"weekend_hours"`
	DaysWorked     int    `json:"days_worked"`
}
