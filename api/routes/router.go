package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/booknest/storefront/api/controllers"
	"github.com/booknest/storefront/api/middleware"
	"github.com/booknest/storefront/internal/catalog"
	"github.com/booknest/storefront/internal/session"
	"github.com/booknest/storefront/pkg/config"
	"github.com/booknest/storefront/pkg/logger"
)

// NewRouter wires every storefront route. metricsHandler is mounted at
// /metrics when non-nil.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	src *catalog.Source,
	registry *session.Registry,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, src, logg))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/books", controllers.CatalogBooks(src, logg))
			r.Get("/books/{bookId}", controllers.CatalogBook(src, logg))
			r.Get("/categories", controllers.CatalogCategories(src, logg))
			r.Get("/bestsellers", controllers.CatalogBestsellers(src, logg))
			r.Get("/new-arrivals", controllers.CatalogNewArrivals(src, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(registry, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartGet(logg))
				r.Post("/items", controllers.CartAddItem(logg))
				r.Put("/items/{bookId}", controllers.CartSetQuantity(logg))
				r.Delete("/items/{bookId}", controllers.CartRemoveItem(logg))
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", controllers.WishlistList(logg))
				r.Post("/{bookId}/toggle", controllers.WishlistToggle(logg))
				r.Post("/{bookId}/move-to-cart", controllers.WishlistMoveToCart(logg))
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Get("/", controllers.CheckoutGet(cfg.Checkout.QuoteCurrency(), logg))
				r.Post("/buy-now", controllers.CheckoutBuyNow(logg))
				r.Post("/cart", controllers.CheckoutCart(logg))
				r.Post("/submit", controllers.CheckoutSubmit(logg))
				r.Post("/cancel", controllers.CheckoutCancel(logg))
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.OrdersList(logg))
				r.Get("/{orderId}", controllers.OrdersGet(logg))
			})

			r.Route("/view", func(r chi.Router) {
				r.Get("/", controllers.ViewGet(logg))
				r.Post("/navigate", controllers.ViewNavigate(logg))
				r.Post("/home", controllers.ViewHome(logg))
				r.Put("/search", controllers.ViewSearch(logg))
				r.Put("/category", controllers.ViewCategory(logg))
				r.Get("/books", controllers.ViewBooks(logg))
				r.Get("/header", controllers.ViewHeader(logg))
			})

			r.Route("/account", func(r chi.Router) {
				r.Get("/", controllers.AccountGet(logg))
				r.Post("/sign-in", controllers.AccountSignIn(logg))
				r.Post("/sign-up", controllers.AccountSignUp(logg))
			})

			r.Post("/newsletter", controllers.NewsletterSubscribe(logg))
		})
	})

	return r
}
