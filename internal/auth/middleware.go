package auth

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/clerk/clerk-sdk-go/v2"
	clerkhttp "github.com/clerk/clerk-sdk-go/v2/http"
	"github.com/clerk/clerk-sdk-go/v2/user"
	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
	"github.com/tdstudios/storefront/storage"
	"github.com/tdstudios/storefront/storage/db"
)

// ClerkAuthMiddleware verifies the Clerk session token from the __session
// cookie (or Authorization header), syncs the user into the local database
// and populates the Echo context. Requests without a valid session continue
// as unauthenticated; gating happens in RequireRole.
func ClerkAuthMiddleware(store *storage.Storage) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractSessionToken(c.Request())
			if token == "" {
				c.Set(IsAuthenticatedKey, false)
				return next(c)
			}

			c.Request().Header.Set("Authorization", "Bearer "+token)

			done := make(chan error, 1)
			clerkMiddleware := clerkhttp.WithHeaderAuthorization()

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				claims, ok := clerk.SessionClaimsFromContext(r.Context())
				if !ok || claims == nil {
					done <- fmt.Errorf("invalid session")
					return
				}

				clerkUser, err := user.Get(context.Background(), claims.Subject)
				if err != nil {
					done <- fmt.Errorf("failed to fetch clerk user: %w", err)
					return
				}

				dbUser, err := syncUser(store, clerkUser)
				if err != nil {
					done <- err
					return
				}

				c.Set(DBUserKey, dbUser)
				c.Set(IsAuthenticatedKey, true)
				done <- nil
			})

			clerkMiddleware(handler).ServeHTTP(c.Response(), c.Request())

			if err := <-done; err != nil {
				slog.Warn("authentication failed", "error", err, "path", c.Request().URL.Path)
				c.Set(IsAuthenticatedKey, false)
				return next(c)
			}

			return next(c)
		}
	}
}

// extractSessionToken gets the Clerk session token from the __session
// cookie, falling back to the Authorization header for API requests.
func extractSessionToken(r *http.Request) string {
	cookie, err := r.Cookie("__session")
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

// syncUser upserts the Clerk user into the local users table.
func syncUser(store *storage.Storage, clerkUser *clerk.User) (*db.User, error) {
	ctx := context.Background()

	email := firstEmail(clerkUser)
	firstName := stringValue(clerkUser.FirstName)
	lastName := stringValue(clerkUser.LastName)

	userID := ulid.Make().String()
	if existing, err := store.Queries.GetUserByClerkID(ctx, toNullString(clerkUser.ID)); err == nil {
		userID = existing.ID
	}

	dbUser, err := store.Queries.UpsertUserByClerkID(ctx, db.UpsertUserByClerkIDParams{
		ID:        userID,
		ClerkID:   toNullString(clerkUser.ID),
		Email:     email,
		FirstName: toNullString(firstName),
		LastName:  toNullString(lastName),
		FullName:  buildFullName(firstName, lastName, email),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return &dbUser, nil
}

func firstEmail(clerkUser *clerk.User) string {
	if len(clerkUser.EmailAddresses) == 0 {
		return ""
	}
	primaryID := stringValue(clerkUser.PrimaryEmailAddressID)
	for _, email := range clerkUser.EmailAddresses {
		if email.ID == primaryID {
			return email.EmailAddress
		}
	}
	return clerkUser.EmailAddresses[0].EmailAddress
}

func buildFullName(firstName, lastName, email string) string {
	switch {
	case firstName != "" && lastName != "":
		return firstName + " " + lastName
	case firstName != "":
		return firstName
	case lastName != "":
		return lastName
	case email != "":
		return email
	default:
		return "Customer"
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
