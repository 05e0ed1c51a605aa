package ledger_test

import (
	"github.com/ascent-finance/backend/internal/ledger"
	"github.com/ascent-finance/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestRequestDeletionTransaction() {
	transaction := suite.createTestTransaction(models.Transaction{Description: "Impulse buy"})

	confirmation, err := suite.ledger.RequestDeletion(transaction.ID)
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), ledger.KindTransaction, confirmation.Kind)
	assert.Equal(suite.T(), transaction.ID, confirmation.ResourceID)
	assert.Contains(suite.T(), confirmation.Message, "Impulse buy")

	// Nothing is deleted until the confirmation
	_, err = suite.ledger.Transaction(transaction.ID)
	assert.Nil(suite.T(), err)

	require.Nil(suite.T(), suite.ledger.Confirm(confirmation.Token))

	_, err = suite.ledger.Transaction(transaction.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestRequestDeletionBudget() {
	budget := suite.createTestBudget(models.Budget{Category: "food", Amount: decimal.NewFromInt(300)})

	confirmation, err := suite.ledger.RequestDeletion(budget.ID)
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), ledger.KindBudget, confirmation.Kind)
	assert.Contains(suite.T(), confirmation.Message, "Food", "the message uses the display name of the category")

	require.Nil(suite.T(), suite.ledger.Confirm(confirmation.Token))

	_, err = suite.ledger.Budget(budget.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestRequestDeletionUnknownResource() {
	_, err := suite.ledger.RequestDeletion(uuid.New())
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCancelDeletion() {
	transaction := suite.createTestTransaction(models.Transaction{Description: "Keep me"})

	confirmation, err := suite.ledger.RequestDeletion(transaction.ID)
	require.Nil(suite.T(), err)

	require.Nil(suite.T(), suite.ledger.Cancel(confirmation.Token))

	_, err = suite.ledger.Transaction(transaction.ID)
	assert.Nil(suite.T(), err, "a canceled deletion must not delete")

	assert.ErrorIs(suite.T(), suite.ledger.Confirm(confirmation.Token), ledger.ErrConfirmationNotFound, "a canceled token is spent")
}

func (suite *TestSuiteStandard) TestConfirmTwice() {
	transaction := suite.createTestTransaction(models.Transaction{Description: "Delete me"})

	confirmation, err := suite.ledger.RequestDeletion(transaction.ID)
	require.Nil(suite.T(), err)

	require.Nil(suite.T(), suite.ledger.Confirm(confirmation.Token))
	assert.ErrorIs(suite.T(), suite.ledger.Confirm(confirmation.Token), ledger.ErrConfirmationNotFound, "a token can only be used once")
}

func (suite *TestSuiteStandard) TestConfirmUnknownToken() {
	assert.ErrorIs(suite.T(), suite.ledger.Confirm(uuid.New()), ledger.ErrConfirmationNotFound)
	assert.ErrorIs(suite.T(), suite.ledger.Cancel(uuid.New()), ledger.ErrConfirmationNotFound)
}

func (suite *TestSuiteStandard) TestConfirmAfterResourceGone() {
	transaction := suite.createTestTransaction(models.Transaction{Description: "Twice requested"})

	first, err := suite.ledger.RequestDeletion(transaction.ID)
	require.Nil(suite.T(), err)
	second, err := suite.ledger.RequestDeletion(transaction.ID)
	require.Nil(suite.T(), err)

	require.Nil(suite.T(), suite.ledger.Confirm(first.Token))

	// The second token is still valid, but the resource is already gone
	assert.ErrorIs(suite.T(), suite.ledger.Confirm(second.Token), models.ErrResourceNotFound)
}
