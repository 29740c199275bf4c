package db

import (
	"context"
	"database/sql"
)

const createUser = `
INSERT INTO users (id, clerk_id, email, first_name, last_name, full_name)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, clerk_id, email, first_name, last_name, full_name, created_at, updated_at
`

type CreateUserParams struct {
	ID        string
	ClerkID   sql.NullString
	Email     string
	FirstName sql.NullString
	LastName  sql.NullString
	FullName  string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRowContext(ctx, createUser,
		arg.ID,
		arg.ClerkID,
		arg.Email,
		arg.FirstName,
		arg.LastName,
		arg.FullName,
	)
	var i User
	err := row.Scan(
		&i.ID,
		&i.ClerkID,
		&i.Email,
		&i.FirstName,
		&i.LastName,
		&i.FullName,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getUserByClerkID = `
SELECT id, clerk_id, email, first_name, last_name, full_name, created_at, updated_at
FROM users
WHERE clerk_id = ?
`

func (q *Queries) GetUserByClerkID(ctx context.Context, clerkID sql.NullString) (User, error) {
	row := q.db.QueryRowContext(ctx, getUserByClerkID, clerkID)
	var i User
	err := row.Scan(
		&i.ID,
		&i.ClerkID,
		&i.Email,
		&i.FirstName,
		&i.LastName,
		&i.FullName,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertUserByClerkID = `
INSERT INTO users (id, clerk_id, email, first_name, last_name, full_name)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (clerk_id) DO UPDATE SET
    email = excluded.email,
    first_name = excluded.first_name,
    last_name = excluded.last_name,
    full_name = excluded.full_name,
    updated_at = CURRENT_TIMESTAMP
RETURNING id, clerk_id, email, first_name, last_name, full_name, created_at, updated_at
`

type UpsertUserByClerkIDParams struct {
	ID        string
	ClerkID   sql.NullString
	Email     string
	FirstName sql.NullString
	LastName  sql.NullString
	FullName  string
}

func (q *Queries) UpsertUserByClerkID(ctx context.Context, arg UpsertUserByClerkIDParams) (User, error) {
	row := q.db.QueryRowContext(ctx, upsertUserByClerkID,
		arg.ID,
		arg.ClerkID,
		arg.Email,
		arg.FirstName,
		arg.LastName,
		arg.FullName,
	)
	var i User
	err := row.Scan(
		&i.ID,
		&i.ClerkID,
		&i.Email,
		&i.FirstName,
		&i.LastName,
		&i.FullName,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getUserRole = `
SELECT user_id, role, created_at
FROM user_roles
WHERE user_id = ?
`

func (q *Queries) GetUserRole(ctx context.Context, userID string) (UserRole, error) {
	row := q.db.QueryRowContext(ctx, getUserRole, userID)
	var i UserRole
	err := row.Scan(&i.UserID, &i.Role, &i.CreatedAt)
	return i, err
}

const setUserRole = `
INSERT INTO user_roles (user_id, role)
VALUES (?, ?)
ON CONFLICT (user_id) DO UPDATE SET role = excluded.role
`

type SetUserRoleParams struct {
	UserID string
	Role   string
}

func (q *Queries) SetUserRole(ctx context.Context, arg SetUserRoleParams) error {
	_, err := q.db.ExecContext(ctx, setUserRole, arg.UserID, arg.Role)
	return err
}
