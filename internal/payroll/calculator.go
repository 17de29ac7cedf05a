package payroll

import (
	"context"
	"fmt"

	"go-payroll/internal/employee"
	"go-payroll/internal/shared/calendar"

	"github.com/shopspring/decimal"
)

// Overtime pricing constants. The breakpoints are regulatory rates, not configuration.
var (
	monthlyHours = decimal.NewFromInt(173)

	weekdayFirstHourRate = decimal.NewFromFloat(1.5)
	weekdayLaterRate     = decimal.NewFromInt(2)

	weekendBaseRate   = decimal.NewFromInt(2)
	weekendEighthRate = decimal.NewFromInt(3)
	weekendLaterRate  = decimal.NewFromInt(4)

	hoursOne   = decimal.NewFromInt(1)
	hoursSeven = decimal.NewFromInt(7)
	hoursEight = decimal.NewFromInt(8)
)

// HourlyRate is the overtime reference rate: base / 173, or zero for a
// non-positive base.
func HourlyRate(base decimal.Decimal) decimal.Decimal {
	if !base.IsPositive() {
		return decimal.Zero
	}
	return base.Div(monthlyHours)
}

// WeekdayOvertimePay prices the total weekday hours of a single date.
func WeekdayOvertimePay(hours, rate decimal.Decimal) decimal.Decimal {
	if !hours.IsPositive() {
		return decimal.Zero
	}
	first := decimal.Min(hours, hoursOne)
	rest := decimal.Max(hours.Sub(hoursOne), decimal.Zero)
	return first.Mul(weekdayFirstHourRate).Add(rest.Mul(weekdayLaterRate)).Mul(rate)
}

// WeekendOvertimePay prices the total weekend hours of a single date: the
// first 7 hours at 2x, the 8th at 3x and every hour after that at 4x.
func WeekendOvertimePay(hours, rate decimal.Decimal) decimal.Decimal {
	if !hours.IsPositive() {
		return decimal.Zero
	}
	first := decimal.Min(hours, hoursSeven)
	eighth := decimal.Min(decimal.Max(hours.Sub(hoursSeven), decimal.Zero), hoursOne)
	rest := decimal.Max(hours.Sub(hoursEight), decimal.Zero)
	return first.Mul(weekendBaseRate).
		Add(eighth.Mul(weekendEighthRate)).
		Add(rest.Mul(weekendLaterRate)).
		Mul(rate)
}

// PeriodAggregates is the read model the calculators and the ledger price from.
type PeriodAggregates interface {
	DailyOvertime(ctx context.Context, employeeID int64, year, month int) ([]DailyHours, error)
	AggregateOvertime(ctx context.Context, employeeID int64, year, month int) (OvertimeTotals, error)
	DaysWorked(ctx context.Context, employeeID int64, year, month int) (int, error)
}

// Calculator computes gross pay for one employee. There is one
// implementation per employment category.
type Calculator interface {
	GrossPay(ctx context.Context, year, month int) (decimal.Decimal, error)
	Breakdown(ctx context.Context, total decimal.Decimal, year, month int) (Breakdown, error)
}

// NewCalculator picks the calculator for the employee's category. base is the
// pay-band amount and is ignored for daily-rate staff; dailyRate is ignored
// for salaried staff.
func NewCalculator(emp employee.Employee, base, dailyRate decimal.Decimal, agg PeriodAggregates) (Calculator, error) {
	switch emp.EmploymentType {
	case employee.CategorySalaried:
		return &salariedCalculator{employeeID: emp.ID, base: base, agg: agg}, nil
	case employee.CategoryDailyRate:
		return &dailyRateCalculator{employeeID: emp.ID, rate: dailyRate, agg: agg}, nil
	default:
		return nil, fmt.Errorf("unknown employment type %q", emp.EmploymentType)
	}
}

type salariedCalculator struct {
	employeeID int64
	base       decimal.Decimal
	agg        PeriodAggregates
}

func (c *salariedCalculator) GrossPay(ctx context.Context, year, month int) (decimal.Decimal, error) {
	days, err := c.agg.DailyOvertime(ctx, c.employeeID, year, month)
	if err != nil {
		return decimal.Zero, err
	}

	rate := HourlyRate(c.base)
	overtime := decimal.Zero
	for _, d := range days {
		if d.Weekend {
			overtime = overtime.Add(WeekendOvertimePay(d.Hours, rate))
		} else {
			overtime = overtime.Add(WeekdayOvertimePay(d.Hours, rate))
		}
	}
	return c.base.Add(overtime).Round(2), nil
}

func (c *salariedCalculator) Breakdown(_ context.Context, total decimal.Decimal, year, month int) (Breakdown, error) {
	return Breakdown{
		Base:     c.base,
		Variable: total.Sub(c.base),
		Days:     calendar.StandardWorkingDays(year, month),
	}, nil
}

type dailyRateCalculator struct {
	employeeID int64
	rate       decimal.Decimal
	agg        PeriodAggregates
}

func (c *dailyRateCalculator) GrossPay(ctx context.Context, year, month int) (decimal.Decimal, error) {
	days, err := c.agg.DaysWorked(ctx, c.employeeID, year, month)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromInt(int64(days)).Mul(c.rate).Round(2), nil
}

func (c *dailyRateCalculator) Breakdown(ctx context.Context, total decimal.Decimal, year, month int) (Breakdown, error) {
	days, err := c.agg.DaysWorked(ctx, c.employeeID, year, month)
	if err != nil {
		return Breakdown{}, err
	}
	if days == 0 {
		days = FrozenDays(total, c.rate)
	}
	return Breakdown{Base: total, Variable: decimal.Zero, Days: days}, nil
}

// FrozenDays recovers the days figure of a daily-rate total when no work
// record is left to read it from.
func FrozenDays(total, dailyRate decimal.Decimal) int {
	if !dailyRate.IsPositive() {
		return 0
	}
	return int(total.Div(dailyRate).Round(0).IntPart())
}
