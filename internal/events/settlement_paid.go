package events

import "time"

const (
	SettlementPaidTopic     = "hr.payroll.settlement.paid.v1"
	SettlementPaidEventType = "settlement_paid"
)

// SettlementPaidEvent is published once per settlement that transitions to PAID.
// Amount is a decimal string with two fraction digits.
type SettlementPaidEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	SettlementID   int64     `json:"settlement_id"`
	EmployeeID     int64     `json:"employee_id"`
	Year           int       `json:"year"`
	Month          int       `json:"month"`
	EmploymentType string    `json:"employment_type"`
	PayBand        *int      `json:"pay_band,omitempty"`
	Amount         string    `json:"amount"`
	PaidBy         string    `json:"paid_by"`
	PaymentMethod  string    `json:"payment_method"`
	Reference      string    `json:"reference,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
