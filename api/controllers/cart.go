package controllers

import (
	"net/http"

	"github.com/booknest/storefront/api/responses"
	"github.com/booknest/storefront/api/validators"
	"github.com/booknest/storefront/pkg/logger"
)

type addCartItemRequest struct {
	BookID int `json:"book_id" validate:"required,min=1"`
}

type setCartQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

func CartGet(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := shopperSession(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, s.Cart())
	}
}

// CartAddItem adds one copy of a book. Unknown books leave the cart as is.
func CartAddItem(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := shopperSession(w, r, logg)
		if !ok {
			return
		}
		var req addCartItemRequest
		if err := validators.DecodeJSONBody(w, r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, s.AddToCart(r.Context(), req.BookID))
	}
}

// CartSetQuantity overwrites a line's quantity; values below 1 are ignored
// rather than removing the line.
func CartSetQuantity(logg *logger.Logger) http.HandlerFunc {
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
		var req setCartQuantityRequest
		if err := validators.DecodeJSONBody(w, r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, s.SetCartQuantity(r.Context(), bookID, *req.Quantity))
	}
}

func CartRemoveItem(logg *logger.Logger) http.HandlerFunc {
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
		responses.WriteSuccess(w, s.RemoveFromCart(r.Context(), bookID))
	}
}
