package controllers

import (
	"net/http"

	"github.com/booknest/storefront/api/responses"
	"github.com/booknest/storefront/api/validators"
	"github.com/booknest/storefront/internal/checkout"
	"github.com/booknest/storefront/internal/session"
	"github.com/booknest/storefront/pkg/enums"
	"github.com/booknest/storefront/pkg/logger"
)

type buyNowRequest struct {
	BookID int `json:"book_id" validate:"required,min=1"`
}

type checkoutResponse struct {
	session.CheckoutState
	Currency       enums.Currency        `json:"currency"`
	CurrencySymbol string                `json:"currency_symbol"`
	PaymentMethods []enums.PaymentMethod `json:"payment_methods"`
}

// CheckoutGet reports the workflow state and the accepted payment methods.
func CheckoutGet(currency enums.Currency, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := shopperSession(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, checkoutResponse{
			CheckoutState:  s.Checkout(),
			Currency:       currency,
			CurrencySymbol: currency.Symbol(),
			PaymentMethods: enums.PaymentMethods(),
		})
	}
}

func CheckoutBuyNow(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := shopperSession(w, r, logg)
		if !ok {
			return
		}
		var req buyNowRequest
		if err := validators.DecodeJSONBody(w, r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		state, err := s.BuyNow(r.Context(), req.BookID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, state)
	}
}

func CheckoutCart(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := shopperSession(w, r, logg)
		if !ok {
			return
		}
		state, err := s.CheckoutCart(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, state)
	}
}

// CheckoutSubmit places the order. It blocks while payment settles; the form
// is validated by the workflow so rejections are counted there.
func CheckoutSubmit(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := shopperSession(w, r, logg)
		if !ok {
			return
		}
		var req checkout.Submission
		if err := validators.DecodeJSON(w, r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		order, err := s.Submit(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

func CheckoutCancel(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := shopperSession(w, r, logg)
		if !ok {
			return
		}
		state, err := s.CancelCheckout(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, state)
	}
}
