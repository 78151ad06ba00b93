package controllers

import (
	"net/http"
	"strings"

	"github.com/booknest/storefront/api/responses"
	"github.com/booknest/storefront/api/validators"
	"github.com/booknest/storefront/internal/catalog"
	pkgerrors "github.com/booknest/storefront/pkg/errors"
	"github.com/booknest/storefront/pkg/logger"
)

func catalogUnavailable(w http.ResponseWriter, r *http.Request, logg *logger.Logger) {
	responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
}

// CatalogBooks filters the catalog by ?category= then ?q=, optionally sorted
// by ?sort=. Unknown categories yield an empty list.
func CatalogBooks(src *catalog.Source, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if src == nil {
			catalogUnavailable(w, r, logg)
			return
		}
		order, err := validators.ParseBookSort(r, "sort")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		query := validators.SanitizeString(r.URL.Query().Get("q"), validators.MaxQueryLen)
		category := strings.TrimSpace(r.URL.Query().Get("category"))
		if category == "" {
			category = catalog.AllCategories
		}
		books := catalog.Sort(src.Filter(query, category), order)
		responses.WriteSuccess(w, newBookList(books))
	}
}

func CatalogBook(src *catalog.Source, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if src == nil {
			catalogUnavailable(w, r, logg)
			return
		}
		id, err := validators.ParsePathInt(r, "bookId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		book, ok := src.FindByID(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "book not found"))
			return
		}
		responses.WriteSuccess(w, book)
	}
}

func CatalogCategories(src *catalog.Source, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if src == nil {
			catalogUnavailable(w, r, logg)
			return
		}
		responses.WriteSuccess(w, map[string]any{"categories": src.Categories()})
	}
}

func CatalogBestsellers(src *catalog.Source, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if src == nil {
			catalogUnavailable(w, r, logg)
			return
		}
		responses.WriteSuccess(w, newBookList(src.Bestsellers()))
	}
}

func CatalogNewArrivals(src *catalog.Source, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if src == nil {
			catalogUnavailable(w, r, logg)
			return
		}
		responses.WriteSuccess(w, newBookList(src.NewArrivals()))
	}
}
