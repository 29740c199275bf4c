package db

import (
	"database/sql"
	"time"
)

type User struct {
	ID        string
	ClerkID   sql.NullString
	Email     string
	FirstName sql.NullString
	LastName  sql.NullString
	FullName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserRole struct {
	UserID    string
	Role      string
	CreatedAt time.Time
}

type CartItem struct {
	ID          string
	SessionID   string
	ProductID   string
	ProductName string
	Size        string
	PriceCents  int64
	Quantity    int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Order struct {
	ID                      string
	StripeCheckoutSessionID sql.NullString
	StripePaymentIntentID   sql.NullString
	CustomerEmail           string
	CustomerName            string
	SubtotalCents           int64
	TaxCents                int64
	TotalCents              int64
	Status                  string
	CreatedAt               time.Time
}

type OrderItem struct {
	ID          string
	OrderID     string
	ProductName string
	Quantity    int64
	PriceCents  int64
	TotalCents  int64
}
