package repository

import (
	"context"

	"pricefield/internal/domain/entity"
	"pricefield/internal/errors"
)

// Domain-specific errors for payment persistence.
var (
	// ErrPaymentNotFound is returned when a payment is not found.
	ErrPaymentNotFound = errors.New("payment not found")
)

// PaymentRepository defines the interface for the append-only payment ledger.
type PaymentRepository interface {
	// FindAll retrieves every payment record.
	FindAll(ctx context.Context) ([]*entity.Payment, error)

	// FindByID retrieves a payment by its unique id.
	FindByID(ctx context.Context, id string) (*entity.Payment, error)

	// FindByUser retrieves all payments for a user, newest first.
	FindByUser(ctx context.Context, userID string) ([]*entity.Payment, error)

	// Append stores a new payment record.
	Append(ctx context.Context, payment *entity.Payment) error
}
