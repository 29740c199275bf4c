package auth

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdstudios/storefront/storage"
	"github.com/tdstudios/storefront/storage/db"
)

func newTestQueries(t *testing.T) *db.Queries {
	t.Helper()
	_, queries, cleanup, err := storage.NewTestDB()
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return queries
}

func createUserWithRole(t *testing.T, queries *db.Queries, role string) db.User {
	t.Helper()
	ctx := context.Background()

	user, err := queries.CreateUser(ctx, db.CreateUserParams{
		ID:       ulid.Make().String(),
		Email:    "buyer@example.com",
		FullName: "Test Buyer",
		ClerkID:  sql.NullString{String: "clerk_" + ulid.Make().String(), Valid: true},
	})
	require.NoError(t, err)

	if role != "" {
		require.NoError(t, queries.SetUserRole(ctx, db.SetUserRoleParams{
			UserID: user.ID,
			Role:   role,
		}))
	}
	return user
}

func TestResolveRole_MissingRecordDefaultsToCustomer(t *testing.T) {
	queries := newTestQueries(t)
	user := createUserWithRole(t, queries, "")

	role, err := ResolveRole(context.Background(), queries, user.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleCustomer, role)
}

func TestResolveRole_ReturnsStoredRole(t *testing.T) {
	queries := newTestQueries(t)
	user := createUserWithRole(t, queries, RoleAdmin)

	role, err := ResolveRole(context.Background(), queries, user.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)
}

func TestRoleHome(t *testing.T) {
	assert.Equal(t, "/admin", RoleHome(RoleAdmin))
	assert.Equal(t, "/brand", RoleHome(RoleBrand))
	assert.Equal(t, "/shop", RoleHome(RoleCustomer))
	assert.Equal(t, "/shop", RoleHome("something-else"))
}

func gateRequest(t *testing.T, queries *db.Queries, required string, user *db.User) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(DBUserKey, user)
		c.Set(IsAuthenticatedKey, true)
	}

	handler := RequireRole(queries, required)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec
}

func TestRequireRole_Unauthenticated(t *testing.T) {
	queries := newTestQueries(t)

	rec := gateRequest(t, queries, RoleAdmin, nil)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, SignInPath, rec.Header().Get("Location"))
}

func TestRequireRole_MatchingRolePasses(t *testing.T) {
	queries := newTestQueries(t)
	user := createUserWithRole(t, queries, RoleAdmin)

	rec := gateRequest(t, queries, RoleAdmin, &user)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_MismatchRedirectsToRoleHome(t *testing.T) {
	queries := newTestQueries(t)

	brand := createUserWithRole(t, queries, RoleBrand)
	rec := gateRequest(t, queries, RoleAdmin, &brand)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/brand", rec.Header().Get("Location"))

	// no role record: treated as customer, sent to the shop
	norole := createUserWithRole(t, queries, "")
	rec = gateRequest(t, queries, RoleAdmin, &norole)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/shop", rec.Header().Get("Location"))
}
