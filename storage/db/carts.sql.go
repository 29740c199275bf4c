package db

import (
	"context"
)

const getCartItem = `
SELECT id, session_id, product_id, product_name, size, price_cents, quantity, created_at, updated_at
FROM cart_items
WHERE session_id = ? AND product_id = ? AND size = ?
`

type GetCartItemParams struct {
	SessionID string
	ProductID string
	Size      string
}

func (q *Queries) GetCartItem(ctx context.Context, arg GetCartItemParams) (CartItem, error) {
	row := q.db.QueryRowContext(ctx, getCartItem, arg.SessionID, arg.ProductID, arg.Size)
	var i CartItem
	err := row.Scan(
		&i.ID,
		&i.SessionID,
		&i.ProductID,
		&i.ProductName,
		&i.Size,
		&i.PriceCents,
		&i.Quantity,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createCartItem = `
INSERT INTO cart_items (id, session_id, product_id, product_name, size, price_cents, quantity)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING id, session_id, product_id, product_name, size, price_cents, quantity, created_at, updated_at
`

type CreateCartItemParams struct {
	ID          string
	SessionID   string
	ProductID   string
	ProductName string
	Size        string
	PriceCents  int64
	Quantity    int64
}

func (q *Queries) CreateCartItem(ctx context.Context, arg CreateCartItemParams) (CartItem, error) {
	row := q.db.QueryRowContext(ctx, createCartItem,
		arg.ID,
		arg.SessionID,
		arg.ProductID,
		arg.ProductName,
		arg.Size,
		arg.PriceCents,
		arg.Quantity,
	)
	var i CartItem
	err := row.Scan(
		&i.ID,
		&i.SessionID,
		&i.ProductID,
		&i.ProductName,
		&i.Size,
		&i.PriceCents,
		&i.Quantity,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateCartItemQuantity = `
UPDATE cart_items
SET quantity = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`

type UpdateCartItemQuantityParams struct {
	Quantity int64
	ID       string
}

func (q *Queries) UpdateCartItemQuantity(ctx context.Context, arg UpdateCartItemQuantityParams) error {
	_, err := q.db.ExecContext(ctx, updateCartItemQuantity, arg.Quantity, arg.ID)
	return err
}

const deleteCartItem = `
DELETE FROM cart_items
WHERE id = ?
`

func (q *Queries) DeleteCartItem(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteCartItem, id)
	return err
}

const listCartItemsBySession = `
SELECT id, session_id, product_id, product_name, size, price_cents, quantity, created_at, updated_at
FROM cart_items
WHERE session_id = ?
ORDER BY created_at
`

func (q *Queries) ListCartItemsBySession(ctx context.Context, sessionID string) ([]CartItem, error) {
	rows, err := q.db.QueryContext(ctx, listCartItemsBySession, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CartItem
	for rows.Next() {
		var i CartItem
		if err := rows.Scan(
			&i.ID,
			&i.SessionID,
			&i.ProductID,
			&i.ProductName,
			&i.Size,
			&i.PriceCents,
			&i.Quantity,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const clearCartBySession = `
DELETE FROM cart_items
WHERE session_id = ?
`

func (q *Queries) ClearCartBySession(ctx context.Context, sessionID string) error {
	_, err := q.db.ExecContext(ctx, clearCartBySession, sessionID)
	return err
}
