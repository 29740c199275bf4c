package db

import (
	"context"
	"database/sql"
)

const createOrder = `
INSERT INTO orders (
    id, stripe_checkout_session_id, stripe_payment_intent_id,
    customer_email, customer_name, subtotal_cents, tax_cents, total_cents, status
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, stripe_checkout_session_id, stripe_payment_intent_id,
    customer_email, customer_name, subtotal_cents, tax_cents, total_cents, status, created_at
`

type CreateOrderParams struct {
	ID                      string
	StripeCheckoutSessionID sql.NullString
	StripePaymentIntentID   sql.NullString
	CustomerEmail           string
	CustomerName            string
	SubtotalCents           int64
	TaxCents                int64
	TotalCents              int64
	Status                  string
}

func (q *Queries) CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error) {
	row := q.db.QueryRowContext(ctx, createOrder,
		arg.ID,
		arg.StripeCheckoutSessionID,
		arg.StripePaymentIntentID,
		arg.CustomerEmail,
		arg.CustomerName,
		arg.SubtotalCents,
		arg.TaxCents,
		arg.TotalCents,
		arg.Status,
	)
	var i Order
	err := row.Scan(
		&i.ID,
		&i.StripeCheckoutSessionID,
		&i.StripePaymentIntentID,
		&i.CustomerEmail,
		&i.CustomerName,
		&i.SubtotalCents,
		&i.TaxCents,
		&i.TotalCents,
		&i.Status,
		&i.CreatedAt,
	)
	return i, err
}

const getOrderByCheckoutSession = `
SELECT id, stripe_checkout_session_id, stripe_payment_intent_id,
    customer_email, customer_name, subtotal_cents, tax_cents, total_cents, status, created_at
FROM orders
WHERE stripe_checkout_session_id = ?
`

func (q *Queries) GetOrderByCheckoutSession(ctx context.Context, sessionID sql.NullString) (Order, error) {
	row := q.db.QueryRowContext(ctx, getOrderByCheckoutSession, sessionID)
	var i Order
	err := row.Scan(
		&i.ID,
		&i.StripeCheckoutSessionID,
		&i.StripePaymentIntentID,
		&i.CustomerEmail,
		&i.CustomerName,
		&i.SubtotalCents,
		&i.TaxCents,
		&i.TotalCents,
		&i.Status,
		&i.CreatedAt,
	)
	return i, err
}

const listRecentOrders = `
SELECT id, stripe_checkout_session_id, stripe_payment_intent_id,
    customer_email, customer_name, subtotal_cents, tax_cents, total_cents, status, created_at
FROM orders
ORDER BY created_at DESC
LIMIT ?
`

func (q *Queries) ListRecentOrders(ctx context.Context, limit int64) ([]Order, error) {
	rows, err := q.db.QueryContext(ctx, listRecentOrders, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Order
	for rows.Next() {
		var i Order
		if err := rows.Scan(
			&i.ID,
			&i.StripeCheckoutSessionID,
			&i.StripePaymentIntentID,
			&i.CustomerEmail,
			&i.CustomerName,
			&i.SubtotalCents,
			&i.TaxCents,
			&i.TotalCents,
			&i.Status,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createOrderItem = `
INSERT INTO order_items (id, order_id, product_name, quantity, price_cents, total_cents)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, order_id, product_name, quantity, price_cents, total_cents
`

type CreateOrderItemParams struct {
	ID          string
	OrderID     string
	ProductName string
	Quantity    int64
	PriceCents  int64
	TotalCents  int64
}

func (q *Queries) CreateOrderItem(ctx context.Context, arg CreateOrderItemParams) (OrderItem, error) {
	row := q.db.QueryRowContext(ctx, createOrderItem,
		arg.ID,
		arg.OrderID,
		arg.ProductName,
		arg.Quantity,
		arg.PriceCents,
		arg.TotalCents,
	)
	var i OrderItem
	err := row.Scan(
		&i.ID,
		&i.OrderID,
		&i.ProductName,
		&i.Quantity,
		&i.PriceCents,
		&i.TotalCents,
	)
	return i, err
}

const listOrderItems = `
SELECT id, order_id, product_name, quantity, price_cents, total_cents
FROM order_items
WHERE order_id = ?
`

func (q *Queries) ListOrderItems(ctx context.Context, orderID string) ([]OrderItem, error) {
	rows, err := q.db.QueryContext(ctx, listOrderItems, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OrderItem
	for rows.Next() {
		var i OrderItem
		if err := rows.Scan(
			&i.ID,
			&i.OrderID,
			&i.ProductName,
			&i.Quantity,
			&i.PriceCents,
			&i.TotalCents,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
