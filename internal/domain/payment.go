package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentMethod enumerates accepted payment channels.
type PaymentMethod string

const (
	PayCreditCard PaymentMethod = "credit_card"
	PayDebitCard  PaymentMethod = "debit_card"
	PayNetBanking PaymentMethod = "net_banking"
	PayUPI        PaymentMethod = "upi"
	PayCash       PaymentMethod = "cash"
)

// PaymentStatus tracks a payment record's lifecycle.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment is a status record; no gateway integration happens here.
type Payment struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID  `bson:"userId" json:"userId"`
	TrainerID     *primitive.ObjectID `bson:"trainerId,omitempty" json:"trainerId,omitempty"`
	Amount        float64             `bson:"amount" json:"amount"`
	Method        PaymentMethod       `bson:"paymentMethod" json:"paymentMethod"`
	TransactionID string              `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Status        PaymentStatus       `bson:"status" json:"status"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// ValidPaymentMethod reports whether m is an accepted method.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PayCreditCard, PayDebitCard, PayNetBanking, PayUPI, PayCash:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}
