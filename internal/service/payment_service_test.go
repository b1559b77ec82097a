package service

import (
	"context"
	"testing"

	"fitlife/fitness-backend/internal/domain"
	"fitlife/fitness-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakePaymentRepo struct {
	payments map[primitive.ObjectID]*domain.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[primitive.ObjectID]*domain.Payment)}
}

func (r *fakePaymentRepo) Create(_ context.Context, payment *domain.Payment) (primitive.ObjectID, error) {
	payment.ID = primitive.NewObjectID()
	stored := *payment
	r.payments[payment.ID] = &stored
	return payment.ID, nil
}

func (r *fakePaymentRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *p
	return &copy, nil
}

func (r *fakePaymentRepo) GetByUserID(_ context.Context, userID primitive.ObjectID) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range r.payments {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) SetStatus(_ context.Context, id primitive.ObjectID, status domain.PaymentStatus, transactionID string) (*domain.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.Status = status
	if transactionID != "" {
		p.TransactionID = transactionID
	}
	copy := *p
	return &copy, nil
}

var _ repository.PaymentRepository = (*fakePaymentRepo)(nil)

func newPaymentFixture(t *testing.T) (PaymentService, *domain.User) {
	t.Helper()
	users := newFakeUserRepo()
	user := &domain.User{FullName: "Asha Rao", Email: "asha@example.com", Role: domain.RoleUser}
	_, err := users.Create(context.Background(), user)
	require.NoError(t, err)
	return NewPaymentService(newFakePaymentRepo(), users), user
}

func TestRecordPayment(t *testing.T) {
	svc, user := newPaymentFixture(t)

	payment, err := svc.RecordPayment(context.Background(), user.ID, nil, 1499.0, domain.PayUPI)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, payment.Status)
	assert.Empty(t, payment.TransactionID)
}

func TestRecordPaymentValidation(t *testing.T) {
	svc, user := newPaymentFixture(t)
	ctx := context.Background()

	_, err := svc.RecordPayment(ctx, user.ID, nil, 0, domain.PayCash)
	assert.ErrorIs(t, err, ErrPaymentValidation)

	_, err = svc.RecordPayment(ctx, user.ID, nil, 100, domain.PaymentMethod("barter"))
	assert.ErrorIs(t, err, ErrPaymentValidation)
}

func TestCompletePaymentMintsTransactionRef(t *testing.T) {
	svc, user := newPaymentFixture(t)
	ctx := context.Background()

	payment, err := svc.RecordPayment(ctx, user.ID, nil, 1499.0, domain.PayCreditCard)
	require.NoError(t, err)

	completed, err := svc.UpdateStatus(ctx, payment.ID, domain.PaymentCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentCompleted, completed.Status)
	assert.NotEmpty(t, completed.TransactionID, "completed payments must carry a transaction reference")
}

func TestFailPaymentKeepsNoTransactionRef(t *testing.T) {
	svc, user := newPaymentFixture(t)
	ctx := context.Background()

	payment, err := svc.RecordPayment(ctx, user.ID, nil, 1499.0, domain.PayDebitCard)
	require.NoError(t, err)

	failed, err := svc.UpdateStatus(ctx, payment.ID, domain.PaymentFailed)
	require.NoError(t, err)
	assert.Empty(t, failed.TransactionID)
}

func TestUpdateStatusMissingPayment(t *testing.T) {
	svc, _ := newPaymentFixture(t)

	_, err := svc.UpdateStatus(context.Background(), primitive.NewObjectID(), domain.PaymentCompleted)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}
