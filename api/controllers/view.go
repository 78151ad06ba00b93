package controllers

import (
	"net/http"

	"github.com/booknest/storefront/api/responses"
	"github.com/booknest/storefront/api/validators"
	"github.com/booknest/storefront/internal/session"
	"github.com/booknest/storefront/pkg/logger"
)

type searchRequest struct {
	Query string `json:"query"`
}

type categoryRequest struct {
	Category string `json:"category"`
}

func ViewGet(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := shopperSession(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, s.View())
	}
}

// ViewNavigate switches screens. book-detail and checkout take book_id,
// order-confirmation takes order_id; omitting them is a 422.
func ViewNavigate(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := shopperSession(w, r, logg)
		if !ok {
			return
		}
		var req session.NavigateRequest
		if err := validators.DecodeJSONBody(w, r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		state, err := s.Navigate(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, state)
	}
}

func ViewHome(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := shopperSession(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, s.GoHome(r.Context()))
	}
}

func ViewSearch(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := shopperSession(w, r, logg)
		if !ok {
			return
		}
		var req searchRequest
		if err := validators.DecodeJSONBody(w, r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, s.SetSearchQuery(validators.SanitizeString(req.Query, validators.MaxQueryLen)))
	}
}

// ViewCategory selects the category filter. A blank name means "All". A name
// the catalog does not know is rejected with VALIDATION_ERROR and the current
// selection is kept; the public catalog routes treat the same name as an
// empty result instead.
func ViewCategory(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := shopperSession(w, r, logg)
		if !ok {
			return
		}
		var req categoryRequest
		if err := validators.DecodeJSONBody(w, r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		state, err := s.SelectCategory(req.Category)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, state)
	}
}

// ViewBooks lists the catalog narrowed by the session's search and category,
// optionally reordered by ?sort=.
func ViewBooks(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := shopperSession(w, r, logg)
		if !ok {
			return
		}
		order, err := validators.ParseBookSort(r, "sort")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newBookList(s.DisplayedBooks(order)))
	}
}

func ViewHeader(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := shopperSession(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, s.Header())
	}
}
