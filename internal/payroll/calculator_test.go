package payroll_test

import (
	"context"
	"testing"
	"time"

	"go-payroll/internal/employee"
	"go-payroll/internal/payroll"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAggregates struct {
	daily []payroll.DailyHours
	days  int
}

func (f *fakeAggregates) DailyOvertime(context.Context, int64, int, int) ([]payroll.DailyHours, error) {
	return f.daily, nil
}

func (f *fakeAggregates) AggregateOvertime(context.Context, int64, int, int) (payroll.OvertimeTotals, error) {
	var totals payroll.OvertimeTotals
	for _, d := range f.daily {
		if d.Weekend {
			totals.WeekendHours = totals.WeekendHours.Add(d.Hours)
		} else {
			totals.WeekdayHours = totals.WeekdayHours.Add(d.Hours)
		}
	}
	return totals, nil
}

func (f *fakeAggregates) DaysWorked(context.Context, int64, int, int) (int, error) {
	return f.days, nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestHourlyRate(t *testing.T) {
	assert.Equal(t, "10000", payroll.HourlyRate(dec("1730000")).String())
	assert.True(t, payroll.HourlyRate(decimal.Zero).IsZero())
	assert.True(t, payroll.HourlyRate(dec("-5")).IsZero())
}

func TestWeekdayOvertimePay(t *testing.T) {
	rate := dec("10000")
	tests := []struct {
		hours string
		want  string
	}{
		{hours: "0", want: "0"},
		{hours: "0.5", want: "7500"},
		{hours: "1", want: "15000"},
		{hours: "3", want: "55000"},
		{hours: "4.25", want: "80000"},
	}
	for _, tt := range tests {
		t.Run(tt.hours, func(t *testing.T) {
			got := payroll.WeekdayOvertimePay(dec(tt.hours), rate)
			assert.True(t, dec(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestWeekendOvertimePay(t *testing.T) {
	rate := dec("10000")
	tests := []struct {
		hours string
		want  string
	}{
		{hours: "0", want: "0"},
		{hours: "2", want: "40000"},
		{hours: "7", want: "140000"},
		{hours: "7.5", want: "155000"},
		{hours: "8", want: "170000"},
		// 7h at 2x, the 8th hour at 3x, the 9th at 4x.
		{hours: "9", want: "210000"},
		{hours: "10", want: "250000"},
	}
	for _, tt := range tests {
		t.Run(tt.hours, func(t *testing.T) {
			got := payroll.WeekendOvertimePay(dec(tt.hours), rate)
			assert.True(t, dec(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestSalariedCalculator(t *testing.T) {
	agg := &fakeAggregates{daily: []payroll.DailyHours{
		{Date: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), Hours: dec("3")},
		{Date: time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC), Hours: dec("9"), Weekend: true},
	}}
	band := 1
	emp := employee.Employee{ID: 1, EmploymentType: employee.CategorySalaried, PayBand: &band}

	calc, err := payroll.NewCalculator(emp, dec("1730000"), dec("100000"), agg)
	require.NoError(t, err)

	total, err := calc.GrossPay(context.Background(), 2024, 6)
	require.NoError(t, err)
	assert.Equal(t, "1995000.00", total.StringFixed(2))

	b, err := calc.Breakdown(context.Background(), total, 2024, 6)
	require.NoError(t, err)
	assert.Equal(t, "1730000.00", b.Base.StringFixed(2))
	assert.Equal(t, "265000.00", b.Variable.StringFixed(2))
	assert.Equal(t, 20, b.Days)
}

func TestSalariedCalculator_NoOvertime(t *testing.T) {
	emp := employee.Employee{ID: 1, EmploymentType: employee.CategorySalaried}

	calc, err := payroll.NewCalculator(emp, dec("2500000"), decimal.Zero, &fakeAggregates{})
	require.NoError(t, err)

	total, err := calc.GrossPay(context.Background(), 2024, 2)
	require.NoError(t, err)
	assert.Equal(t, "2500000.00", total.StringFixed(2))
}

func TestDailyRateCalculator(t *testing.T) {
	emp := employee.Employee{ID: 2, EmploymentType: employee.CategoryDailyRate}

	calc, err := payroll.NewCalculator(emp, decimal.Zero, dec("100000"), &fakeAggregates{days: 18})
	require.NoError(t, err)

	total, err := calc.GrossPay(context.Background(), 2024, 6)
	require.NoError(t, err)
	assert.Equal(t, "1800000.00", total.StringFixed(2))

	b, err := calc.Breakdown(context.Background(), total, 2024, 6)
	require.NoError(t, err)
	assert.Equal(t, "1800000.00", b.Base.StringFixed(2))
	assert.True(t, b.Variable.IsZero())
	assert.Equal(t, 18, b.Days)
}

func TestDailyRateCalculator_BreakdownWithoutWorkRecord(t *testing.T) {
	emp := employee.Employee{ID: 2, EmploymentType: employee.CategoryDailyRate}

	calc, err := payroll.NewCalculator(emp, decimal.Zero, dec("100000"), &fakeAggregates{})
	require.NoError(t, err)

	b, err := calc.Breakdown(context.Background(), dec("500000"), 2024, 6)
	require.NoError(t, err)
	assert.Equal(t, 5, b.Days)
}

func TestFrozenDays(t *testing.T) {
	assert.Equal(t, 5, payroll.FrozenDays(dec("500000"), dec("100000")))
	assert.Equal(t, 3, payroll.FrozenDays(dec("250000"), dec("100000")))
	assert.Equal(t, 0, payroll.FrozenDays(dec("500000"), decimal.Zero))
}

func TestNewCalculator_UnknownCategory(t *testing.T) {
	_, err := payroll.NewCalculator(employee.Employee{EmploymentType: "CONTRACTOR"}, decimal.Zero, decimal.Zero, &fakeAggregates{})
	assert.Error(t, err)
}
