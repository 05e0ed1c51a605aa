package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/ascent-finance/backend/internal/controllers/v1"
	"github.com/ascent-finance/backend/internal/models"
	"github.com/ascent-finance/backend/internal/types"
	"github.com/ascent-finance/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestTransaction(t *testing.T, editable v1.TransactionEditable, expectedStatus ...int) v1.TransactionResponse {
	if editable.Description == "" {
		editable.Description = "Test transaction"
	}
	if editable.Category == "" {
		editable.Category = "food"
	}
	if editable.Type == "" {
		editable.Type = models.TypeExpense
	}
	if editable.Date.IsZero() {
		editable.Date = types.NewDate(2022, 4, 2)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, suite.ledger, http.MethodPost, "http://example.com/v1/transactions", editable)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.TransactionResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	response := suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		Description: "Lunch",
		Amount:      decimal.NewFromFloat(14.03),
	})

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Lunch", response.Data.Description)
	assert.NotEqual(suite.T(), uuid.Nil, response.Data.ID)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/transactions/%s", response.Data.ID), response.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalid() {
	tests := []struct {
		name     string
		body     any
		expected string
	}{
		{"Empty body", "", "request body must not be empty"},
		{"Broken JSON", `{ broken`, "invalid"},
		{"Empty description", v1.TransactionEditable{Amount: decimal.NewFromInt(1), Category: "food", Type: models.TypeExpense, Date: types.NewDate(2022, 4, 2)}, models.ErrDescriptionEmpty.Error()},
		{"Negative amount", v1.TransactionEditable{Description: "Lunch", Amount: decimal.NewFromInt(-1), Category: "food", Type: models.TypeExpense, Date: types.NewDate(2022, 4, 2)}, models.ErrAmountNegative.Error()},
		{"Category invalid for type", v1.TransactionEditable{Description: "Salary", Amount: decimal.NewFromInt(1), Category: "food", Type: models.TypeIncome, Date: types.NewDate(2022, 4, 2)}, models.ErrCategoryInvalid.Error()},
		{"No date", v1.TransactionEditable{Description: "Lunch", Amount: decimal.NewFromInt(1), Category: "food", Type: models.TypeExpense}, models.ErrDateZero.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.ledger, http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.TransactionResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.expected)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetSingle() {
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{Description: "Lunch"})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing transaction", transaction.Data.ID.String(), http.StatusOK},
		{"No transaction with this ID", uuid.New().String(), http.StatusNotFound},
		{"Invalid ID", "definitely-not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.ledger, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetFiltered() {
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		Description: "Salary April",
		Type:        models.TypeIncome,
		Category:    "salary",
		Amount:      decimal.NewFromInt(3000),
		Date:        types.NewDate(2022, 4, 1),
	})
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		Description: "Weekly groceries",
		Category:    "food",
		Amount:      decimal.NewFromInt(50),
		Date:        types.NewDate(2022, 4, 2),
	})
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		Description: "Bus ticket",
		Category:    "transportation",
		Amount:      decimal.NewFromInt(3),
		Date:        types.NewDate(2022, 5, 2),
	})

	tests := []struct {
		name    string
		query   string
		matches int
	}{
		{"No filter", "", 3},
		{"Type income", "type=income", 1},
		{"Type expense", "type=expense", 2},
		{"Category", "category=food", 1},
		{"Date", "date=2022-04-02", 1},
		{"Month", "month=2022-04", 2},
		{"Description glob", "description=*groceries*", 1},
		{"Limit", "limit=2", 2},
		{"Nothing matches", "category=housing", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.ledger, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.matches)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetInvalidFilter() {
	tests := []struct {
		name  string
		query string
	}{
		{"Invalid type", "type=transfer"},
		{"Invalid month", "month=never"},
		{"Invalid date", "date=yesterday"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.ledger, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetSorted() {
	older := suite.createTestTransaction(suite.T(), v1.TransactionEditable{Description: "Older", Date: types.NewDate(2022, 4, 1)})
	newer := suite.createTestTransaction(suite.T(), v1.TransactionEditable{Description: "Newer", Date: types.NewDate(2022, 4, 3)})

	r := test.Request(suite.T(), suite.ledger, http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), newer.Data.ID, response.Data[0].ID)
	assert.Equal(suite.T(), older.Data.ID, response.Data[1].ID)
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		Description: "Lunhc",
		Amount:      decimal.NewFromFloat(14.03),
	})

	r := test.Request(suite.T(), suite.ledger, http.MethodPatch,
		fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.Data.ID),
		map[string]string{"description": "Lunch"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Lunch", response.Data.Description, "the description is updated")
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(14.03)), "fields missing from a partial body are kept")
	assert.Equal(suite.T(), transaction.Data.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestTransactionsUpdateInvalid() {
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{})

	tests := []struct {
		name   string
		id     string
		body   any
		status int
	}{
		{"Invalid body", transaction.Data.ID.String(), `{ broken`, http.StatusBadRequest},
		{"Invalid field value", transaction.Data.ID.String(), map[string]string{"description": ""}, http.StatusBadRequest},
		{"Unknown ID", uuid.New().String(), map[string]string{"description": "Lunch"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.ledger, http.MethodPatch, fmt.Sprintf("http://example.com/v1/transactions/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{Description: "Delete me"})

	r := test.Request(suite.T(), suite.ledger, http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), suite.ledger, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsDeleteBudgetID() {
	// Deleting a budget through the transaction endpoint must not work
	budget := suite.createTestBudget(suite.T(), v1.BudgetEditable{Category: "food", Amount: decimal.NewFromInt(300)})

	r := test.Request(suite.T(), suite.ledger, http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", budget.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), suite.ledger, http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestTransactionsOptions() {
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{})

	r := test.Request(suite.T(), suite.ledger, http.MethodOptions, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), suite.ledger, http.MethodOptions, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
}
