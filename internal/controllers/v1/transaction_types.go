package v1

import (
	"fmt"

	"github.com/ascent-finance/backend/internal/models"
	"github.com/ascent-finance/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Description string                 `json:"description" example:"Lunch"`                   // What the money was for
	Amount      decimal.Decimal        `json:"amount" example:"14.03" minimum:"0"`            // The amount, always >= 0
	Category    string                 `json:"category" example:"food"`                       // Category tag, must be valid for the type
	Type        models.TransactionType `json:"type" example:"expense" enums:"income,expense"` // income or expense
	Date        types.Date             `json:"date" example:"2022-04-02"`                     // Calendar date of the transaction
}

// model returns the store resource for the editable fields.
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Description: editable.Description,
		Amount:      editable.Amount,
		Category:    editable.Category,
		Type:        editable.Type,
		Date:        editable.Date,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.Transaction
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource.
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString("baseURL")

	return Transaction{
		Transaction: model,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`  // The Transaction data, if the request was successful
	Error *string      `json:"error"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`  // List of transactions
	Error *string       `json:"error"` // The error, if any occurred
}

// TransactionQueryFilter are the query parameters for the transaction
// listing. All of them are optional.
type TransactionQueryFilter struct {
	Type        string      `form:"type" example:"expense"`       // Filter by transaction type
	Category    string      `form:"category" example:"food"`      // Filter by category
	Date        types.Date  `form:"date" example:"2022-04-02"`    // Only transactions on this exact date
	Month       types.Month `form:"month" example:"2022-04"`      // Only transactions in this month
	Description string      `form:"description" example:"*lunch*"` // Glob pattern matched against the description
	Limit       int         `form:"limit" example:"5"`            // Maximum number of transactions to return, 0 for all
}
