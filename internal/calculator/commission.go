package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// BaseSalary is the fixed monthly base salary paid regardless of profit.
	BaseSalary = 3500.0

	// Cost is the fixed monthly social insurance and overhead deduction.
	Cost = 1550.0

	// TaxRate is applied to the commission only, not to total income.
	TaxRate = 0.30
)

// Bracket is a contiguous profit range paid at a single commission rate.
// Lower is inclusive, Upper is exclusive; the last bracket has Upper = +Inf.
type Bracket struct {
	Lower float64
	Upper float64
	Rate  float64
}

// brackets must stay ordered, contiguous and start at 0.
var brackets = []Bracket{
	{Lower: 0, Upper: 10000, Rate: 0.05},
	{Lower: 10000, Upper: 25000, Rate: 0.073},
	{Lower: 25000, Upper: 40000, Rate: 0.138},
	{Lower: 40000, Upper: math.Inf(1), Rate: 0.21},
}

// Brackets returns a copy of the commission schedule in ascending order.
func Brackets() []Bracket {
	out := make([]Bracket, len(brackets))
	copy(out, brackets)
	return out
}

// Commission is the tiered commission for one profit figure.
type Commission struct {
	Commission float64
	Detail     []string
}

// Result is the full monthly payout derived from a profit figure.
type Result struct {
	BaseSalary float64
	Commission float64
	Tax        float64
	Cost       float64
	Final      float64
	Detail     []string
}

// ComputeCommission applies the bracket schedule progressively to profit.
// Each bracket whose lower bound is exceeded consumes up to its width of the
// remaining profit at its own rate and contributes one detail line.
//
// Zero, negative and NaN profit exceed no lower bound and yield zero
// commission with an empty detail trace.
func ComputeCommission(profit float64) Commission {
	result := Commission{Detail: []string{}}
	left := profit

	for _, b := range brackets {
		if !(profit > b.Lower) {
			continue
		}
		amount := math.Min(b.Upper-b.Lower, left)
		part := amount * b.Rate
		result.Commission += part
		result.Detail = append(result.Detail, detailLine(b, part))
		left -= amount
		if left <= 0 {
			break
		}
	}

	return result
}

// ComputeAll derives the complete payout for profit.
// Final = BaseSalary + Commission - Tax - Cost, with Tax = TaxRate * Commission.
func ComputeAll(profit float64) Result {
	c := ComputeCommission(profit)
	tax := TaxRate * c.Commission
	return Result{
		BaseSalary: BaseSalary,
		Commission: c.Commission,
		Tax:        tax,
		Cost:       Cost,
		Final:      BaseSalary + c.Commission - tax - Cost,
		Detail:     c.Detail,
	}
}

// ParseProfit converts user-entered text to a profit figure.
// Anything that is not a finite number is coerced to 0.
func ParseProfit(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// detailLine renders "<lower>～<upper>：<rate>% = <part>".
func detailLine(b Bracket, part float64) string {
	return fmt.Sprintf("%s～%s：%.1f%% = %.2f",
		formatBound(b.Lower), formatBound(b.Upper), b.Rate*100, part)
}

func formatBound(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
