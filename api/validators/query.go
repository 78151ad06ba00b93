package validators

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/booknest/storefront/pkg/enums"
	pkgerrors "github.com/booknest/storefront/pkg/errors"
)

// ParseQueryInt reads an optional integer query parameter bounded by min and max.
func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.Invalid(key, "must be numeric")
	}
	if value < min || value > max {
		return 0, pkgerrors.Invalid(key, fmt.Sprintf("must be between %d and %d", min, max))
	}
	return value, nil
}

// ParsePathInt reads a positive integer chi URL parameter.
func ParsePathInt(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(chi.URLParam(r, key))
	if raw == "" {
		return 0, pkgerrors.Invalid(key, "is required")
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, pkgerrors.Invalid(key, "must be a positive integer")
	}
	return value, nil
}

// ParseBookSort reads an optional sort order; absent means catalog order.
func ParseBookSort(r *http.Request, key string) (enums.BookSort, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return "", nil
	}
	order, err := enums.ParseBookSort(raw)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown sort order").WithDetails(map[string]string{key: "unknown sort order"})
	}
	return order, nil
}
