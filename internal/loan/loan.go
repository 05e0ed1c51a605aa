// Package loan implements the car purchase affordability check based on
// the 20/3/8 heuristic: at least 20% down payment, at most 36 months of
// loan term, a monthly payment of at most 8% of gross monthly income.
package loan

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidInput = errors.New("income, car price and loan term must be larger than zero")

// Verdict is the overall result of the affordability check.
type Verdict string

const (
	VerdictPass    Verdict = "pass"    // All three rules pass
	VerdictWarning Verdict = "warning" // One or two rules pass
	VerdictFail    Verdict = "fail"    // No rule passes
)

// Thresholds of the 20/3/8 rule.
var (
	minDownPaymentPercent = decimal.NewFromInt(20)
	maxIncomePercent      = decimal.NewFromInt(8)
)

const maxLoanTermMonths = 36

var (
	oneHundred    = decimal.NewFromInt(100)
	twelveHundred = decimal.NewFromInt(1200)
)

// Input are the purchase parameters for an affordability evaluation.
type Input struct {
	GrossMonthlyIncome        decimal.Decimal `json:"grossMonthlyIncome" example:"6000"`
	CarPrice                  decimal.Decimal `json:"carPrice" example:"30000"`
	DownPaymentPercent        decimal.Decimal `json:"downPaymentPercent" example:"20"`
	LoanTermMonths            int             `json:"loanTermMonths" example:"36"`
	AnnualInterestRatePercent decimal.Decimal `json:"annualInterestRatePercent" example:"5.5"`
}

// Rules records which of the three rules pass.
type Rules struct {
	DownPayment bool `json:"downPayment" example:"true"` // Down payment is at least 20% of the price
	LoanTerm    bool `json:"loanTerm" example:"true"`    // Loan term is at most 36 months
	Income      bool `json:"income" example:"false"`     // Payment is at most 8% of gross monthly income
}

// Evaluation is the loan schedule summary plus the rule-based verdict.
type Evaluation struct {
	MonthlyPayment    decimal.Decimal `json:"monthlyPayment" example:"724.70"`
	TotalInterest     decimal.Decimal `json:"totalInterest" example:"2089.20"`
	TotalCost         decimal.Decimal `json:"totalCost" example:"32089.20"`
	DownPaymentAmount decimal.Decimal `json:"downPaymentAmount" example:"6000"`
	LoanAmount        decimal.Decimal `json:"loanAmount" example:"24000"`
	IncomePercent     decimal.Decimal `json:"incomePercent" example:"12.08"`
	RulesPassed       Rules           `json:"rulesPassed"`
	Verdict           Verdict         `json:"verdict" enums:"pass,warning,fail"`

	input Input
}

// Evaluate computes the loan schedule for the purchase and checks it
// against the 20/3/8 rule.
//
// A down payment above 100% is degenerate but accepted: the loan amount
// and payment turn negative or zero, which downstream handles fine. A zero
// interest rate is special-cased since the amortization formula divides by
// (1+r)^n - 1.
func Evaluate(input Input) (Evaluation, error) {
	if !input.GrossMonthlyIncome.IsPositive() || !input.CarPrice.IsPositive() || input.LoanTermMonths < 1 {
		return Evaluation{}, ErrInvalidInput
	}

	downPayment := input.CarPrice.Mul(input.DownPaymentPercent).Div(oneHundred)
	loanAmount := input.CarPrice.Sub(downPayment)
	term := decimal.NewFromInt(int64(input.LoanTermMonths))

	var monthlyPayment decimal.Decimal

	// An interest-free loan accrues exactly zero interest. Deriving it
	// from the payment would leave a residual since loan/term does not
	// terminate for most terms.
	totalInterest := decimal.Zero

	monthlyRate := input.AnnualInterestRatePercent.Div(twelveHundred)
	if monthlyRate.IsZero() {
		monthlyPayment = loanAmount.Div(term)
	} else {
		// L * r * (1+r)^n / ((1+r)^n - 1)
		compound := decimal.NewFromInt(1).Add(monthlyRate).Pow(term)
		monthlyPayment = loanAmount.Mul(monthlyRate).Mul(compound).Div(compound.Sub(decimal.NewFromInt(1)))
		totalInterest = monthlyPayment.Mul(term).Sub(loanAmount)
	}
	incomePercent := monthlyPayment.Div(input.GrossMonthlyIncome).Mul(oneHundred)

	rules := Rules{
		DownPayment: input.DownPaymentPercent.GreaterThanOrEqual(minDownPaymentPercent),
		LoanTerm:    input.LoanTermMonths <= maxLoanTermMonths,
		Income:      incomePercent.LessThanOrEqual(maxIncomePercent),
	}

	return Evaluation{
		MonthlyPayment:    monthlyPayment,
		TotalInterest:     totalInterest,
		TotalCost:         input.CarPrice.Add(totalInterest),
		DownPaymentAmount: downPayment,
		LoanAmount:        loanAmount,
		IncomePercent:     incomePercent,
		RulesPassed:       rules,
		Verdict:           verdict(rules),
		input:             input,
	}, nil
}

func verdict(rules Rules) Verdict {
	passed := 0
	for _, pass := range []bool{rules.DownPayment, rules.LoanTerm, rules.Income} {
		if pass {
			passed++
		}
	}

	switch passed {
	case 3:
		return VerdictPass
	case 0:
		return VerdictFail
	default:
		return VerdictWarning
	}
}

// Recommendations derives deterministic advice from the rules that failed.
// The result is part of the calculator's output contract even though it is
// prose.
func (e Evaluation) Recommendations() []string {
	recommendations := []string{}

	if !e.RulesPassed.DownPayment {
		target := e.input.CarPrice.Mul(decimal.NewFromFloat(0.2))
		recommendations = append(recommendations,
			fmt.Sprintf("Increase your down payment to at least $%s (20%% of the car price)", target.StringFixed(2)))
	}

	if !e.RulesPassed.LoanTerm {
		recommendations = append(recommendations,
			"Choose a loan term of 36 months or less to build equity faster")
	}

	if !e.RulesPassed.Income {
		// Invert the income-percent formula at the 8% threshold, holding
		// the loan term and down payment amount fixed.
		maxPayment := e.input.GrossMonthlyIncome.Mul(maxIncomePercent).Div(oneHundred)
		maxPrice := maxPayment.Mul(decimal.NewFromInt(int64(e.input.LoanTermMonths))).Add(e.DownPaymentAmount)
		recommendations = append(recommendations,
			fmt.Sprintf("Consider a car priced at $%s or less to stay within 8%% of your income", maxPrice.StringFixed(2)))
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			"You're following the 20/3/8 rule perfectly! This is a smart financial decision.")
	}

	return recommendations
}
