package ledger

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ascent-finance/backend/internal/models"
	"github.com/google/uuid"
)

var ErrConfirmationNotFound = errors.New("there is no pending confirmation for the token you specified")

// ResourceKind names the store a pending deletion targets.
type ResourceKind string

const (
	KindTransaction ResourceKind = "transaction"
	KindBudget      ResourceKind = "budget"
)

// Confirmation is a token for a destructive action that has been requested
// but not yet carried out. Deletion is a two-phase protocol: request it,
// then confirm or cancel with the token.
type Confirmation struct {
	Token      uuid.UUID    `json:"token"`
	ResourceID uuid.UUID    `json:"resourceId"`
	Kind       ResourceKind `json:"kind"`
	Message    string       `json:"message"`
}

type pendingDeletion struct {
	resourceID uuid.UUID
	kind       ResourceKind
}

// RequestDeletion starts the deletion of the resource with the given ID,
// searching the transaction store first, then the budget store. Nothing is
// removed until the returned confirmation token is confirmed.
func (l *Ledger) RequestDeletion(id uuid.UUID) (Confirmation, error) {
	if t, err := l.Transaction(id); err == nil {
		return l.addPending(id, KindTransaction,
			fmt.Sprintf("Are you sure you want to delete the transaction %q?", t.Description)), nil
	}

	if b, err := l.Budget(id); err == nil {
		return l.addPending(id, KindBudget,
			fmt.Sprintf("Are you sure you want to remove the budget for %s?", models.CategoryDisplayName(b.Category))), nil
	}

	return Confirmation{}, models.ErrResourceNotFound
}

func (l *Ledger) addPending(id uuid.UUID, kind ResourceKind, message string) Confirmation {
	confirmation := Confirmation{
		Token:      uuid.New(),
		ResourceID: id,
		Kind:       kind,
		Message:    message,
	}

	l.pending[confirmation.Token] = pendingDeletion{resourceID: id, kind: kind}
	return confirmation
}

// Confirm carries out the deletion the token was issued for. The token is
// spent afterwards, whether the deletion succeeded or not.
func (l *Ledger) Confirm(token uuid.UUID) error {
	pending, ok := l.pending[token]
	if !ok {
		return ErrConfirmationNotFound
	}
	delete(l.pending, token)

	switch pending.kind {
	case KindTransaction:
		i := slices.IndexFunc(l.transactions, func(t models.Transaction) bool { return t.ID == pending.resourceID })
		if i < 0 {
			return models.ErrResourceNotFound
		}
		l.transactions = slices.Delete(l.transactions, i, i+1)

	case KindBudget:
		i := slices.IndexFunc(l.budgets, func(b models.Budget) bool { return b.ID == pending.resourceID })
		if i < 0 {
			return models.ErrResourceNotFound
		}
		l.budgets = slices.Delete(l.budgets, i, i+1)
	}

	return l.persist()
}

// Cancel discards a pending deletion.
func (l *Ledger) Cancel(token uuid.UUID) error {
	if _, ok := l.pending[token]; !ok {
		return ErrConfirmationNotFound
	}

	delete(l.pending, token)
	return nil
}
