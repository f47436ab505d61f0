package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is the record inserted once per successful payment. It is never
// mutated or deleted through this surface.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CartID        string             `bson:"cartId" json:"cartId"`
	Email         string             `bson:"email" json:"email"`
	Amount        float64            `bson:"amount" json:"amount"`
	PaymentMethod string             `bson:"paymentMethod" json:"paymentMethod"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	// Both fields represent the same instant.
	PaidAtString string    `bson:"paid_at_string" json:"paid_at_string"`
	PaidAt       time.Time `bson:"paid_at" json:"paid_at"`
}

// PaymentRequest is the body of POST /payments.
type PaymentRequest struct {
	CartID        string  `json:"cartId"`
	Email         string  `json:"email"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	TransactionID string  `json:"transactionId"`
}

// PaymentIntentRequest is the body of POST /create-payment-intent.
// The amount is in the smallest currency unit.
type PaymentIntentRequest struct {
	AmountInCents int64 `json:"amountInCents"`
}
