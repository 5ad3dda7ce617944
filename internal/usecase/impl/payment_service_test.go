package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"pricefield/internal/domain/entity"
	domainerrors "pricefield/internal/domain/errors"
	"pricefield/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentService_RecordPayment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.seedUser(t, "user_1", entity.RoleShopOwner)

	payment, err := env.payments.RecordPayment(ctx, usecase.RecordPaymentInput{
		UserID:    user.ID,
		Type:      entity.PaymentTypeListingFee,
		Amount:    50,
		Reference: "listing prod_1",
	})
	require.NoError(t, err)
	assert.Equal(t, "TWD", payment.Currency)
	assert.Equal(t, env.clock.Now(), payment.CreatedAt)
}

func TestPaymentService_RecordPayment_Invalid(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.seedUser(t, "user_1", entity.RoleEndUser)

	_, err := env.payments.RecordPayment(ctx, usecase.RecordPaymentInput{
		UserID: user.ID, Type: entity.PaymentTypeOther, Amount: 0,
	})
	require.Error(t, err)

	_, err = env.payments.RecordPayment(ctx, usecase.RecordPaymentInput{
		UserID: "user_missing", Type: entity.PaymentTypeOther, Amount: 10,
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestPaymentService_ListNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.seedUser(t, "user_1", entity.RoleEndUser)

	_, err := env.payments.RecordPayment(ctx, usecase.RecordPaymentInput{
		UserID: user.ID, Type: entity.PaymentTypeOther, Amount: 10, Reference: "first",
	})
	require.NoError(t, err)
	env.clock.advance(time.Hour)
	_, err = env.payments.RecordPayment(ctx, usecase.RecordPaymentInput{
		UserID: user.ID, Type: entity.PaymentTypeOther, Amount: 20, Reference: "second",
	})
	require.NoError(t, err)

	payments, err := env.payments.ListUserPayments(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "second", payments[0].Reference)
	assert.Equal(t, "first", payments[1].Reference)
}

func TestPaymentService_GenerateInvoice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.seedUser(t, "user_1", entity.RoleEndUser)

	payment, err := env.payments.RecordPayment(ctx, usecase.RecordPaymentInput{
		UserID: user.ID, Type: entity.PaymentTypeSubscription, Amount: 99,
	})
	require.NoError(t, err)

	invoice, err := env.payments.GenerateInvoice(ctx, payment.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(invoice.InvoiceNumber, "INV-"))
	assert.Equal(t, payment.ID, invoice.PaymentID)
	assert.Equal(t, user.Name, invoice.UserName)
	assert.Equal(t, "Premium subscription", invoice.Description)
	assert.Equal(t, 99.0, invoice.Amount)
	assert.Equal(t, payment.CreatedAt, invoice.IssuedAt)

	// Regenerating yields the same number.
	again, err := env.payments.GenerateInvoice(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, invoice.InvoiceNumber, again.InvoiceNumber)
}

func TestPaymentService_GenerateInvoice_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.payments.GenerateInvoice(context.Background(), "pay_missing")
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotFound)
}
