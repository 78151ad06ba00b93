package controllers

import (
	"net/http"

	"github.com/booknest/storefront/api/middleware"
	"github.com/booknest/storefront/api/responses"
	"github.com/booknest/storefront/internal/catalog"
	"github.com/booknest/storefront/internal/session"
	pkgerrors "github.com/booknest/storefront/pkg/errors"
	"github.com/booknest/storefront/pkg/logger"
)

// shopperSession fetches the session attached by middleware.Session, writing
// a 500 when the route was mounted without it.
func shopperSession(w http.ResponseWriter, r *http.Request, logg *logger.Logger) (*session.Session, bool) {
	s := middleware.SessionFromContext(r.Context())
	if s == nil {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shopper session unavailable"))
		return nil, false
	}
	return s, true
}

type bookList struct {
	Books []catalog.Book `json:"books"`
	Count int            `json:"count"`
}

func newBookList(books []catalog.Book) bookList {
	if books == nil {
		books = []catalog.Book{}
	}
	return bookList{Books: books, Count: len(books)}
}
