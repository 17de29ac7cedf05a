package payroll

import (
	"context"
	"sort"
	"time"

	"go-payroll/internal/shared/calendar"
	"go-payroll/internal/timeentry"

	"github.com/shopspring/decimal"
)

// OvertimeSource is the read side of the overtime store.
type OvertimeSource interface {
	FindByEmployeeAndPeriod(ctx context.Context, employeeID int64, year, month int) ([]timeentry.OvertimeEntry, error)
}

// DaysWorkedSource resolves the days-worked counter, 0 when none is stored.
type DaysWorkedSource interface {
	DaysWorked(ctx context.Context, employeeID int64, year, month int) (int, error)
}

// DailyHours is the overtime total recorded on one calendar date.
type DailyHours struct {
	Date    time.Time
	Hours   decimal.Decimal
	Weekend bool
}

type OvertimeTotals struct {
	WeekdayHours decimal.Decimal
	WeekendHours decimal.Decimal
}

// Aggregator reduces raw overtime entries and work records for a period. It
// never writes.
type Aggregator struct {
	entries OvertimeSource
	records DaysWorkedSource
}

func NewAggregator(entries OvertimeSource, records DaysWorkedSource) *Aggregator {
	return &Aggregator{entries: entries, records: records}
}

// DailyOvertime sums entry hours per date. Entries with a non-positive length
// are dropped. The result is ordered by date.
func (a *Aggregator) DailyOvertime(ctx context.Context, employeeID int64, year, month int) ([]DailyHours, error) {
	entries, err := a.entries.FindByEmployeeAndPeriod(ctx, employeeID, year, month)
	if err != nil {
		return nil, err
	}

	byDate := make(map[time.Time]decimal.Decimal)
	for _, e := range entries {
		if e.Minutes() <= 0 {
			continue
		}
		d := calendar.DateOnly(e.OvertimeDate)
		byDate[d] = byDate[d].Add(e.Hours())
	}

	days := make([]DailyHours, 0, len(byDate))
	for d, h := range byDate {
		days = append(days, DailyHours{Date: d, Hours: h, Weekend: calendar.IsWeekend(d)})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days, nil
}

func (a *Aggregator) AggregateOvertime(ctx context.Context, employeeID int64, year, month int) (OvertimeTotals, error) {
	days, err := a.DailyOvertime(ctx, employeeID, year, month)
	if err != nil {
		return OvertimeTotals{}, err
	}

	var totals OvertimeTotals
	for _, d := range days {
		if d.Weekend {
			totals.WeekendHours = totals.WeekendHours.Add(d.Hours)
		} else {
			totals.WeekdayHours = totals.WeekdayHours.Add(d.Hours)
		}
	}
	return totals, nil
}

func (a *Aggregator) DaysWorked(ctx context.Context, employeeID int64, year, month int) (int, error) {
	return a.records.DaysWorked(ctx, employeeID, year, month)
}
