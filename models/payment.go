package models

import "time"

type PaymentRequest struct {
	UserID   string `json:"userId"`
	Amount   int64  `json:"amount"` // minor units
	Currency string `json:"currency"`
	Method   string `json:"method"` // "card" or "cash"
}

type Invoice struct {
	InvoiceID string    `bson:"invoiceId" json:"invoiceId"`
	UserID    string    `bson:"userId" json:"userId"`
	Amount    int64     `bson:"amount" json:"amount"`
	Currency  string    `bson:"currency" json:"currency"`
	Method    string    `bson:"method" json:"method"`
	Status    string    `bson:"status" json:"status"` // "pending", "paid"
	PaymentID string    `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
