package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeTransfer   TransactionType = "transfer"
	TransactionTypePurchase   TransactionType = "purchase"
	TransactionTypeSale       TransactionType = "sale"
)

// TransactionTypes lists every selectable type, in display order.
func TransactionTypes() []TransactionType {
	return []TransactionType{
		TransactionTypeDeposit,
		TransactionTypeWithdrawal,
		TransactionTypeTransfer,
		TransactionTypePurchase,
		TransactionTypeSale,
	}
}

// Valid reports whether t is a member of the type enum.
func (t TransactionType) Valid() bool {
	for _, known := range TransactionTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// TransactionStatus represents the status of a transaction
type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "pending"
	TransactionStatusProcessing TransactionStatus = "processing"
	TransactionStatusCompleted  TransactionStatus = "completed"
	TransactionStatusCancelled  TransactionStatus = "cancelled"
	TransactionStatusRefunded   TransactionStatus = "refunded"
)

// TransactionStatuses lists every selectable status, in display order.
func TransactionStatuses() []TransactionStatus {
	return []TransactionStatus{
		TransactionStatusPending,
		TransactionStatusProcessing,
		TransactionStatusCompleted,
		TransactionStatusCancelled,
		TransactionStatusRefunded,
	}
}

// Valid reports whether s is a member of the status enum.
func (s TransactionStatus) Valid() bool {
	for _, known := range TransactionStatuses() {
		if s == known {
			return true
		}
	}
	return false
}

// Transaction represents a financial movement on the marketplace
type Transaction struct {
	ID          int64             `json:"id"`
	User        User              `json:"user"`
	GameAccount *GameAccount      `json:"gameAccount,omitempty"`
	Description string            `json:"description"`
	Amount      decimal.Decimal   `json:"amount"`
	Date        time.Time         `json:"date"`
	Type        TransactionType   `json:"type"`
	Status      TransactionStatus `json:"status"`
}

// TransactionDraft is the wire shape for creating or updating a
// transaction
type TransactionDraft struct {
	User        Ref               `json:"user"`
	GameAccount *Ref              `json:"gameAccount,omitempty"`
	Description string            `json:"description"`
	Amount      decimal.Decimal   `json:"amount"`
	Date        time.Time         `json:"date"`
	Type        TransactionType   `json:"type"`
	Status      TransactionStatus `json:"status"`
}

// Draft converts a read model into an editable draft
func (t Transaction) Draft() TransactionDraft {
	draft := TransactionDraft{
		User:        Ref{ID: t.User.ID},
		Description: t.Description,
		Amount:      t.Amount,
		Date:        t.Date,
		Type:        t.Type,
		Status:      t.Status,
	}
	if t.GameAccount != nil {
		draft.GameAccount = &Ref{ID: t.GameAccount.ID}
	}
	return draft
}

// TransactionGateway defines the remote interface for transactions
type TransactionGateway interface {
	Gateway[Transaction, TransactionDraft]
}
