package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/pharma-erp/pharma-erp/internal/masterdata/categories"
	"github.com/pharma-erp/pharma-erp/internal/masterdata/generics"
	"github.com/pharma-erp/pharma-erp/internal/masterdata/manufacturers"
	"github.com/pharma-erp/pharma-erp/internal/masterdata/productgenerics"
	"github.com/pharma-erp/pharma-erp/internal/masterdata/products"
	"github.com/pharma-erp/pharma-erp/internal/masterdata/producttypes"
	"github.com/pharma-erp/pharma-erp/internal/masterdata/scheduletypes"
	"github.com/pharma-erp/pharma-erp/internal/masterdata/taxes"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger *slog.Logger
	Config *Config

	TaxHandler            *taxes.Handler
	ProductTypeHandler    *producttypes.Handler
	CategoryHandler       *categories.Handler
	ManufacturerHandler   *manufacturers.Handler
	ScheduleTypeHandler   *scheduletypes.Handler
	GenericHandler        *generics.Handler
	ProductHandler        *products.Handler
	ProductGenericHandler *productgenerics.Handler
}

// NewRouter constructs the chi.Router with service defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"ok","service":%q,"version":%q}`,
			params.Config.ServiceName, params.Config.ServiceVersion)
	})

	r.Route("/api/v1", func(r chi.Router) {
		params.TaxHandler.MountRoutes(r)
		params.ProductTypeHandler.MountRoutes(r)
		params.CategoryHandler.MountRoutes(r)
		params.ManufacturerHandler.MountRoutes(r)
		params.ScheduleTypeHandler.MountRoutes(r)
		params.GenericHandler.MountRoutes(r)
		params.ProductHandler.MountRoutes(r)
		params.ProductGenericHandler.MountRoutes(r)
	})

	return r
}
