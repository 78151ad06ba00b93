package controllers

import (
	"net/http"

	"github.com/booknest/storefront/api/responses"
	"github.com/booknest/storefront/internal/catalog"
	"github.com/booknest/storefront/pkg/config"
	pkgerrors "github.com/booknest/storefront/pkg/errors"
	"github.com/booknest/storefront/pkg/logger"
)

const envHeader = "X-Booknest-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready once the catalog has loaded with at least one book.
func HealthReady(cfg *config.Config, src *catalog.Source, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		if src == nil || src.Len() == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog not loaded"))
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"status":  "ready",
			"catalog": map[string]int{"books": src.Len(), "categories": len(src.Categories())},
		})
	}
}
