package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/ascent-finance/backend/internal/controllers/v1"
	"github.com/ascent-finance/backend/internal/models"
	"github.com/ascent-finance/backend/internal/types"
	"github.com/ascent-finance/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestDashboard() {
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		Description: "Salary",
		Type:        models.TypeIncome,
		Category:    "salary",
		Amount:      decimal.NewFromInt(3000),
		Date:        types.NewDate(2022, 4, 1),
	})
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		Description: "Rent",
		Category:    "housing",
		Amount:      decimal.NewFromInt(1200),
		Date:        types.NewDate(2022, 4, 1),
	})
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		Description: "Savings account",
		Category:    "savings",
		Amount:      decimal.NewFromInt(600),
		Date:        types.NewDate(2022, 4, 15),
	})

	r := test.Request(suite.T(), suite.ledger, http.MethodGet, "http://example.com/v1/dashboard?month=2022-04", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Income.Equal(decimal.NewFromInt(3000)))
	assert.True(suite.T(), response.Data.Expenses.Equal(decimal.NewFromInt(1800)))
	assert.True(suite.T(), response.Data.Balance.Equal(decimal.NewFromInt(1200)))
	assert.True(suite.T(), response.Data.SavingsRate.Equal(decimal.NewFromInt(20)), "600 of 3000 income went into savings")

	assert.Len(suite.T(), response.Recent, 3, "the dashboard lists the most recent transactions")
}

func (suite *TestSuiteStandard) TestDashboardRecentLimit() {
	for i := 0; i < 7; i++ {
		_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{
			Description: "Coffee",
			Amount:      decimal.NewFromInt(3),
			Date:        types.NewDate(2022, 4, 1+i),
		})
	}

	r := test.Request(suite.T(), suite.ledger, http.MethodGet, "http://example.com/v1/dashboard?month=2022-04", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Recent, 5, "at most five recent transactions are shown")
}

func (suite *TestSuiteStandard) TestDashboardEmptyMonth() {
	r := test.Request(suite.T(), suite.ledger, http.MethodGet, "http://example.com/v1/dashboard?month=1990-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Income.IsZero())
	assert.True(suite.T(), response.Data.SavingsRate.IsZero())
}

func (suite *TestSuiteStandard) TestDashboardInvalidMonth() {
	r := test.Request(suite.T(), suite.ledger, http.MethodGet, "http://example.com/v1/dashboard?month=whenever", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoryBreakdown() {
	categories := map[string]int64{
		"housing":        1200,
		"food":           400,
		"transportation": 90,
		"entertainment":  60,
		"utilities":      150,
		"shopping":       80,
	}

	for category, amount := range categories {
		_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{
			Description: category,
			Category:    category,
			Amount:      decimal.NewFromInt(amount),
			Date:        types.NewDate(2022, 4, 2),
		})
	}

	tests := []struct {
		name    string
		query   string
		entries int
	}{
		{"Default size", "month=2022-04", 5},
		{"Top 3", "month=2022-04&top=3", 3},
		{"Larger than category count", "month=2022-04&top=100", 6},
		{"Empty month", "month=1990-01", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.ledger, http.MethodGet, "http://example.com/v1/dashboard/breakdown?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BreakdownResponse
			test.DecodeResponse(t, &r, &response)
			assert.NotNil(t, response.Data)
			assert.Len(t, response.Data, tt.entries)
		})
	}

	r := test.Request(suite.T(), suite.ledger, http.MethodGet, "http://example.com/v1/dashboard/breakdown?month=2022-04&top=2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BreakdownResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "housing", response.Data[0].Category, "the breakdown is sorted by amount descending")
	assert.Equal(suite.T(), "food", response.Data[1].Category)
}

func (suite *TestSuiteStandard) TestDashboardOptions() {
	tests := []string{
		"http://example.com/v1/dashboard",
		"http://example.com/v1/dashboard/breakdown",
	}

	for _, path := range tests {
		r := test.Request(suite.T(), suite.ledger, http.MethodOptions, path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
	}
}
