package kv

import (
	"context"
	"sort"

	"pricefield/internal/domain/entity"
	domainerrors "pricefield/internal/domain/errors"
	"pricefield/internal/domain/repository"
)

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	store *Store
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(store *Store) repository.PaymentRepository {
	return &paymentRepository{store: store}
}

// FindAll retrieves every payment record.
func (repo *paymentRepository) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	var payments []*entity.Payment
	repo.store.Get(ctx, paymentsKey, &payments)

	return payments, nil
}

// FindByID retrieves a payment by its unique id.
func (repo *paymentRepository) FindByID(ctx context.Context, id string) (*entity.Payment, error) {
	payments, _ := repo.FindAll(ctx)
	for _, payment := range payments {
		if payment.ID == id {
			return payment, nil
		}
	}

	return nil, repository.ErrPaymentNotFound
}

// FindByUser retrieves all payments for a user, newest first.
func (repo *paymentRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Payment, error) {
	payments, _ := repo.FindAll(ctx)

	matched := make([]*entity.Payment, 0, len(payments))
	for _, payment := range payments {
		if payment.UserID == userID {
			matched = append(matched, payment)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return matched, nil
}

// Append stores a new payment record.
func (repo *paymentRepository) Append(ctx context.Context, payment *entity.Payment) error {
	payments, _ := repo.FindAll(ctx)
	payments = append(payments, payment)

	if err := repo.store.Set(ctx, paymentsKey, payments); err != nil {
		return domainerrors.NewStorageWriteError(err, "failed to append payment")
	}

	return nil
}
