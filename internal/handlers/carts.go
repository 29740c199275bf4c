package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
	"github.com/tdstudios/storefront/internal/cart"
)

// SessionCookieName is the cookie carrying the anonymous cart session ID.
const SessionCookieName = "td_session"

// getOrCreateSessionID returns the cart session ID from the session
// cookie, minting a new one when absent.
func getOrCreateSessionID(c echo.Context) (string, error) {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	sessionID := ulid.Make().String()
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int((7 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sessionID, nil
}

type CartHandler struct {
	carts *cart.Service
}

func NewCartHandler(carts *cart.Service) *CartHandler {
	return &CartHandler{carts: carts}
}

type AddCartItemRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size,omitempty"`
}

// HandleGetCart returns the session cart with its recomputed subtotal.
func (h *CartHandler) HandleGetCart(c echo.Context) error {
	sessionID, err := getOrCreateSessionID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Session error")
	}

	current, err := h.carts.Get(c.Request().Context(), sessionID)
	if err != nil {
		slog.Error("failed to fetch cart", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch cart")
	}
	return c.JSON(http.StatusOK, current)
}

// HandleAddItem adds one unit of a product to the cart.
func (h *CartHandler) HandleAddItem(c echo.Context) error {
	sessionID, err := getOrCreateSessionID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Session error")
	}

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.ProductID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "productId is required")
	}

	current, err := h.carts.Add(c.Request().Context(), sessionID, req.ProductID, req.Size)
	if err != nil {
		if errors.Is(err, cart.ErrUnknownProduct) {
			return echo.NewHTTPError(http.StatusBadRequest, "Unknown product")
		}
		if errors.Is(err, cart.ErrSizeRequired) {
			return echo.NewHTTPError(http.StatusBadRequest, "Please select a size")
		}
		slog.Error("failed to add cart item", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update cart")
	}
	return c.JSON(http.StatusOK, current)
}

// HandleRemoveItem removes one unit of a (product, size) line. Removing a
// line that is not in the cart succeeds without changing anything.
func (h *CartHandler) HandleRemoveItem(c echo.Context) error {
	sessionID, err := getOrCreateSessionID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Session error")
	}

	productID := c.Param("productId")
	size := c.QueryParam("size")

	current, err := h.carts.Remove(c.Request().Context(), sessionID, productID, size)
	if err != nil {
		slog.Error("failed to remove cart item", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update cart")
	}
	return c.JSON(http.StatusOK, current)
}

// HandleClearCart empties the session cart.
func (h *CartHandler) HandleClearCart(c echo.Context) error {
	sessionID, err := getOrCreateSessionID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Session error")
	}

	if err := h.carts.Clear(c.Request().Context(), sessionID); err != nil {
		slog.Error("failed to clear cart", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to clear cart")
	}
	return c.NoContent(http.StatusNoContent)
}
