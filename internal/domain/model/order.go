package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentBank   PaymentMethod = "bank"
	PaymentMobile PaymentMethod = "mobile"
)

// BillingInfo is the checkout form as submitted. Card fields are empty
// unless the payment method is card.
type BillingInfo struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`

	CardNumber string `json:"cardNumber,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	CVV        string `json:"cvv,omitempty"`
	CardName   string `json:"cardName,omitempty"`
}

// Order is a completed checkout. Items and Total are the snapshot taken
// at submission time. Orders are append-only: never updated, never removed.
type Order struct {
	OrderNumber   string          `json:"orderNumber"`
	Items         []CartLineItem  `json:"items"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Billing       BillingInfo     `json:"billingInfo"`
	Date          time.Time       `json:"date"`
}
