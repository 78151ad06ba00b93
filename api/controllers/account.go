package controllers

import (
	"net/http"

	"github.com/booknest/storefront/api/responses"
	"github.com/booknest/storefront/api/validators"
	"github.com/booknest/storefront/internal/account"
	"github.com/booknest/storefront/pkg/logger"
)

func AccountSignIn(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := shopperSession(w, r, logg)
		if !ok {
			return
		}
		var req account.Credentials
		if err := validators.DecodeJSON(w, r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		profile, err := s.SignIn(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, profile)
	}
}

func AccountSignUp(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := shopperSession(w, r, logg)
		if !ok {
			return
		}
		var req account.Credentials
		if err := validators.DecodeJSON(w, r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		profile, err := s.SignUp(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, profile)
	}
}

func AccountGet(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := shopperSession(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, s.Account())
	}
}

// NewsletterSubscribe accepts an address containing "@" and shows the
// confirmation view.
func NewsletterSubscribe(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := shopperSession(w, r, logg)
		if !ok {
			return
		}
		var req account.NewsletterRequest
		if err := validators.DecodeJSON(w, r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		state, err := s.Subscribe(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, state)
	}
}
