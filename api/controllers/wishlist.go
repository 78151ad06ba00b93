package controllers

import (
	"net/http"

	"github.com/booknest/storefront/api/responses"
	"github.com/booknest/storefront/api/validators"
	"github.com/booknest/storefront/pkg/logger"
)

// WishlistList returns the wishlisted books in the order they were added.
func WishlistList(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := shopperSession(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, newBookList(s.Wishlist()))
	}
}

func WishlistToggle(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := shopperSession(w, r, logg)
		if !ok {
			return
		}
		bookID, err := validators.ParsePathInt(r, "bookId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, s.ToggleWishlist(r.Context(), bookID))
	}
}

// WishlistMoveToCart adds a wishlisted book to the cart and returns the cart.
func WishlistMoveToCart(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := shopperSession(w, r, logg)
		if !ok {
			return
		}
		bookID, err := validators.ParsePathInt(r, "bookId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, s.MoveWishlistToCart(r.Context(), bookID))
	}
}
