package pricing

import "github.com/rentvehicle/rentkit/pkg/money"

// Billing granularity shared by the calendar-based policies.
const (
	BillableHoursPerDay = 20
	DaysPerWeek         = 7
	DaysPerMonth        = 30
)

// Rate numerators retained after discount, out of 100.
const (
	weeklyRetained  = 85
	monthlyRetained = 75
)

// Policy prices a rental at a vehicle's hourly base rate.
type Policy interface {
	// Price returns the total for duration units at the given hourly rate.
	Price(rate money.Amount, duration int) money.Amount
	// Label is the policy name shown in quote descriptions.
	Label() string
	// Unit is the duration unit word used in prompts.
	Unit() string
}

// Policies returns the selectable policies in menu order.
func Policies() []Policy {
	return []Policy{Hourly{}, Daily{}, Weekly{}, Monthly{}}
}

// Hourly bills the base rate per hour with no discount.
type Hourly struct{}

func (Hourly) Price(rate money.Amount, duration int) money.Amount {
	return rate * money.Amount(duration)
}

func (Hourly) Label() string { return "Per Jam" }
func (Hourly) Unit() string  { return "jam" }

// Daily bills 20 billable hours per day.
type Daily struct{}

func (Daily) Price(rate money.Amount, duration int) money.Amount {
	return rate * money.Amount(duration) * BillableHoursPerDay
}

func (Daily) Label() string { return "Per Hari" }
func (Daily) Unit() string  { return "hari" }

// Weekly bills 7 daily-rate days per week, discounted 15%.
type Weekly struct{}

func (Weekly) Price(rate money.Amount, duration int) money.Amount {
	// 20*7*85 is divisible by 100, so the result is exact.
	return rate * money.Amount(duration) * BillableHoursPerDay * DaysPerWeek * weeklyRetained / 100
}

func (Weekly) Label() string { return "Per Minggu (Diskon 15%)" }
func (Weekly) Unit() string  { return "minggu" }

// Monthly bills 30 daily-rate days per month, discounted 25%.
type Monthly struct{}

func (Monthly) Price(rate money.Amount, duration int) money.Amount {
	// 20*30*75 is divisible by 100, so the result is exact.
	return rate * money.Amount(duration) * BillableHoursPerDay * DaysPerMonth * monthlyRetained / 100
}

func (Monthly) Label() string { return "Per Bulan (Diskon 25%)" }
func (Monthly) Unit() string  { return "bulan" }
