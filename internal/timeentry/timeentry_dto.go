package timeentry

type CreateOvertimeEntryRequest struct {
	EmployeeID int64  `json:"employee_id" binding:"required,min=1"`
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"start_time" binding:"required"`
	EndTime    string `json:"end_time" binding:"required"`
}

type ListOvertimeEntriesQuery struct {
	EmployeeID int64 `form:"employee_id" binding:"required,min=1"`
	Year       int   `form:"year" binding:"required,min=1900,max=9999"`
	Month      int   `form:"month" binding:"required,min=1,max=12"`
}

type OvertimeEntryResponse struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Hours      string `json:"hours"`
}
