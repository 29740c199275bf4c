package service

import (
	"log/slog"
	"net/http"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/labstack/echo/v4"
	"github.com/tdstudios/storefront/internal/auth"
	"github.com/tdstudios/storefront/internal/cart"
	"github.com/tdstudios/storefront/internal/handlers"
	"github.com/tdstudios/storefront/internal/relay"
	"github.com/tdstudios/storefront/storage"
)

type Service struct {
	storage *storage.Storage
	config  *Config

	carts              *cart.Service
	checkoutHandler    *handlers.CheckoutHandler
	webhookHandler     *handlers.WebhookHandler
	customOrderHandler *handlers.CustomOrderHandler
	cartHandler        *handlers.CartHandler
	productHandler     *handlers.ProductHandler
	sitemapHandler     *handlers.SitemapHandler
}

func New(store *storage.Storage, config *Config) *Service {
	carts := cart.NewService(store.Queries)
	relayClient := relay.NewClient(config.Relay.Endpoint)

	return &Service{
		storage:            store,
		config:             config,
		carts:              carts,
		checkoutHandler:    handlers.NewCheckoutHandler(config.Stripe.SecretKey, carts, config.Pricing.TaxRate, config.Pricing.DeliveryFeeCents),
		webhookHandler:     handlers.NewWebhookHandler(store.Queries, relayClient, config.Stripe.WebhookSecret),
		customOrderHandler: handlers.NewCustomOrderHandler(relayClient, config.Payments.CashTag),
		cartHandler:        handlers.NewCartHandler(carts),
		productHandler:     handlers.NewProductHandler(),
		sitemapHandler:     handlers.NewSitemapHandler(config.BaseURL),
	}
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	// Configure the default Clerk backend. Tests never call Clerk APIs so
	// an empty key is fine there.
	clerk.SetKey(s.config.Clerk.SecretKey)

	e.GET("/healthz", s.handleHealth)
	e.GET("/sitemap.xml", s.sitemapHandler.HandleSitemap)

	// Catalog
	e.GET("/api/products", s.productHandler.HandleListProducts)
	e.GET("/api/products/:id", s.productHandler.HandleGetProduct)
	e.GET("/api/custom/products", s.productHandler.HandleListCustomProducts)

	// Session cart
	e.GET("/api/cart", s.cartHandler.HandleGetCart)
	e.POST("/api/cart/items", s.cartHandler.HandleAddItem)
	e.DELETE("/api/cart/items/:productId", s.cartHandler.HandleRemoveItem)
	e.DELETE("/api/cart", s.cartHandler.HandleClearCart)

	// Gateway checkout
	e.POST("/api/checkout/session", s.checkoutHandler.HandleCreateSession)
	e.POST("/api/checkout/session-from-cart", s.checkoutHandler.HandleCreateSessionFromCart)
	e.GET("/success", s.handleCheckoutSuccess)
	e.GET("/cancel", s.handleCheckoutCancel)

	// Gateway webhook. The signature check inside the handler is the only
	// gate; no auth middleware may run before it.
	e.POST("/api/webhook", s.webhookHandler.HandleWebhook)

	// Manual quote/order path
	e.POST("/api/custom/orders", s.customOrderHandler.HandleSubmit)
	e.GET("/api/custom/payment-qr", s.customOrderHandler.HandlePaymentQR)

	// Everything past here sees the synced user when a session is present.
	withAuth := e.Group("")
	withAuth.Use(auth.ClerkAuthMiddleware(s.storage))

	withAuth.GET(auth.SignInPath, s.handleSignIn)
	withAuth.GET("/home", s.handleRoleHome)
	withAuth.GET("/api/me", s.handleMe)

	admin := withAuth.Group("/admin")
	admin.Use(auth.RequireRole(s.storage.Queries, auth.RoleAdmin))
	admin.GET("", s.handleAdminHome)
	admin.GET("/orders", s.handleAdminOrders)

	brand := withAuth.Group("/brand")
	brand.Use(auth.RequireRole(s.storage.Queries, auth.RoleBrand))
	brand.GET("", s.handleBrandHome)
}

func (s *Service) handleHealth(c echo.Context) error {
	if err := s.storage.DB().PingContext(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleCheckoutSuccess is the gateway's success redirect target. The
// session cart is cleared here, not in the webhook, so an abandoned
// payment leaves the cart intact.
func (s *Service) handleCheckoutSuccess(c echo.Context) error {
	if cookie, err := c.Cookie(handlers.SessionCookieName); err == nil && cookie.Value != "" {
		if err := s.carts.Clear(c.Request().Context(), cookie.Value); err != nil {
			slog.Error("failed to clear cart after checkout", "error", err)
		}
	}
	return c.Redirect(http.StatusFound, "/shop")
}

func (s *Service) handleCheckoutCancel(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/shop")
}

func (s *Service) handleSignIn(c echo.Context) error {
	if user, ok := auth.GetDBUser(c); ok {
		role, err := auth.ResolveRole(c.Request().Context(), s.storage.Queries, user.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to resolve role")
		}
		return c.Redirect(http.StatusFound, auth.RoleHome(role))
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "sign_in_required"})
}

// handleRoleHome routes a signed-in user to their role's landing page.
func (s *Service) handleRoleHome(c echo.Context) error {
	user, ok := auth.GetDBUser(c)
	if !ok {
		return c.Redirect(http.StatusFound, auth.SignInPath)
	}
	role, err := auth.ResolveRole(c.Request().Context(), s.storage.Queries, user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to resolve role")
	}
	return c.Redirect(http.StatusFound, auth.RoleHome(role))
}

func (s *Service) handleMe(c echo.Context) error {
	user, ok := auth.GetDBUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not signed in")
	}
	role, err := auth.ResolveRole(c.Request().Context(), s.storage.Queries, user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to resolve role")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":        user.ID,
		"email":     user.Email,
		"full_name": user.FullName,
		"role":      role,
	})
}

func (s *Service) handleAdminHome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"area": "admin"})
}

func (s *Service) handleAdminOrders(c echo.Context) error {
	orders, err := s.storage.Queries.ListRecentOrders(c.Request().Context(), 50)
	if err != nil {
		slog.Error("failed to list orders", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list orders")
	}

	out := make([]map[string]interface{}, 0, len(orders))
	for _, o := range orders {
		out = append(out, map[string]interface{}{
			"id":             o.ID,
			"customer_email": o.CustomerEmail,
			"customer_name":  o.CustomerName,
			"subtotal_cents": o.SubtotalCents,
			"tax_cents":      o.TaxCents,
			"total_cents":    o.TotalCents,
			"status":         o.Status,
			"created_at":     o.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"orders": out})
}

func (s *Service) handleBrandHome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"area": "brand"})
}
