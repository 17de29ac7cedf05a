package workrecord

type SetDaysWorkedRequest struct {
	EmployeeID int64 `json:"employee_id" binding:"required,min=1"`
	Year       int   `json:"year" binding:"required,min=1900,max=9999"`
	Month      int   `json:"month" binding:"required,min=1,max=12"`
	DaysWorked *int  `json:"days_worked" binding:"required"`
}

type GetWorkRecordQuery struct {
	EmployeeID int64 `form:"employee_id" binding:"required,min=1"`
	Year       int   `form:"year" binding:"required,min=1900,max=9999"`
	Month      int   `form:"month" binding:"required,min=1,max=12"`
}

type WorkRecordResponse struct {
	EmployeeID  int64 `json:"employee_id"`
	Year        int   `json:"year"`
	Month       int   `json:"month"`
	DaysWorked  int   `json:"days_worked"`
	DaysInMonth int   `json:"days_in_month"`
}
