package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vanari-rv/caravan-configurator/api/controllers"
	"github.com/vanari-rv/caravan-configurator/api/middleware"
	"github.com/vanari-rv/caravan-configurator/api/responses"
	authsvc "github.com/vanari-rv/caravan-configurator/internal/auth"
	"github.com/vanari-rv/caravan-configurator/internal/categories"
	"github.com/vanari-rv/caravan-configurator/internal/colors"
	configsvc "github.com/vanari-rv/caravan-configurator/internal/configurator"
	"github.com/vanari-rv/caravan-configurator/internal/modelimages"
	"github.com/vanari-rv/caravan-configurator/internal/options"
	"github.com/vanari-rv/caravan-configurator/internal/orders"
	"github.com/vanari-rv/caravan-configurator/internal/pdfrender"
	"github.com/vanari-rv/caravan-configurator/internal/themes"
	"github.com/vanari-rv/caravan-configurator/internal/uploads"
	"github.com/vanari-rv/caravan-configurator/internal/vehiclemodels"
	"github.com/vanari-rv/caravan-configurator/pkg/config"
	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
	"github.com/vanari-rv/caravan-configurator/pkg/logger"
	"github.com/vanari-rv/caravan-configurator/pkg/metrics"
)

// Deps bundles everything the router needs wired in.
type Deps struct {
	Config  *config.Config
	Logger  *logger.Logger
	Metrics *metrics.HTTPMetrics

	DB    controllers.Pinger
	Redis controllers.Pinger

	Auth         authsvc.Service
	Categories   categories.Service
	Colors       colors.Service
	Themes       themes.Service
	Models       vehiclemodels.Service
	Options      options.Service
	ModelImages  modelimages.Service
	Orders       orders.Service
	Configurator configsvc.Service
	Uploads      uploads.Service
	PDF          pdfrender.Service
}

// NewRouter assembles the full HTTP surface: public configurator and
// catalog reads, the admin panel's authenticated mutations, health,
// metrics, and static upload serving.
func NewRouter(d Deps) http.Handler {
	cfg := d.Config
	logg := d.Logger
	maxUploadMB := cfg.Uploads.MaxUploadMB
	frontendURL := cfg.App.FrontendURL

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(d.Metrics),
		middleware.MethodOverride,
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		err := pkgerrors.New(pkgerrors.CodeNotFound, "route not found").
			WithDetails(map[string]string{"home": "/"})
		responses.WriteError(r.Context(), logg, w, err)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "method not allowed"))
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, d.DB, d.Redis, logg))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{}))

	// Processed uploads are served straight off disk.
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Uploads.Dir))))

	// Public surface: everything the configurator and the shared
	// summary page need without logging in.
	r.Route("/api/configurator", func(r chi.Router) {
		r.Post("/sessions", controllers.StartConfiguratorSession(d.Configurator, logg))
		r.Get("/sessions/{sessionId}", controllers.GetConfiguratorSession(d.Configurator, logg))
		r.Post("/sessions/{sessionId}/advance", controllers.AdvanceConfiguratorSession(d.Configurator, logg))
		r.Post("/sessions/{sessionId}/back", controllers.BackConfiguratorSession(d.Configurator, logg))
		r.Get("/sessions/{sessionId}/catalog", controllers.GetConfiguratorStepCatalog(d.Configurator, logg))
		r.Get("/sessions/{sessionId}/price", controllers.GetConfiguratorPrice(d.Configurator, logg))
		r.Post("/sessions/{sessionId}/submit", controllers.SubmitConfiguratorSession(d.Configurator, logg))
		r.Get("/share", controllers.DecodeShareConfig(d.Configurator, logg))
		r.Get("/categories/{categoryId}/models", controllers.ListVehicleModelsByCategory(d.Models, logg))
	})

	r.Post("/api/password/email", controllers.SendPasswordEmail(d.Auth, logg))

	// Admin surface. Reads and writes both sit behind the bearer check;
	// the admin panel is the only consumer.
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(logg, d.Auth))

		r.Post("/logout", controllers.Logout(d.Auth, logg))

		// Resource mutations and reads alike belong to the admin panel,
		// so the whole group demands the admin role.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(authsvc.RoleAdmin, logg))

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", controllers.ListCategories(d.Categories, logg))
				r.Post("/", controllers.CreateCategory(d.Categories, logg))
				r.Post("/bulk-delete", controllers.BulkDeleteCategories(d.Categories, logg))
				r.Get("/{id}", controllers.GetCategory(d.Categories, logg))
				r.Put("/{id}", controllers.UpdateCategory(d.Categories, logg))
				r.Delete("/{id}", controllers.DeleteCategory(d.Categories, logg))
			})

			r.Route("/colors-types", func(r chi.Router) {
				r.Get("/", controllers.ListColorTypes(d.Colors, logg))
				r.Post("/", controllers.CreateColorType(d.Colors, logg))
				r.Post("/bulk-delete", controllers.BulkDeleteColorTypes(d.Colors, logg))
				r.Get("/{id}", controllers.GetColorType(d.Colors, logg))
				r.Put("/{id}", controllers.UpdateColorType(d.Colors, logg))
				r.Delete("/{id}", controllers.DeleteColorType(d.Colors, logg))
			})

			r.Route("/colors", func(r chi.Router) {
				r.Get("/", controllers.ListColors(d.Colors, logg))
				r.Post("/", controllers.CreateColor(d.Colors, d.Uploads, maxUploadMB, logg))
				r.Post("/bulk-delete", controllers.BulkDeleteColors(d.Colors, logg))
				r.Get("/{id}", controllers.GetColor(d.Colors, logg))
				r.Put("/{id}", controllers.UpdateColor(d.Colors, d.Uploads, maxUploadMB, logg))
				r.Delete("/{id}", controllers.DeleteColor(d.Colors, logg))
			})

			r.Route("/themes", func(r chi.Router) {
				r.Get("/", controllers.ListThemes(d.Themes, logg))
				r.Post("/", controllers.CreateTheme(d.Themes, d.Uploads, maxUploadMB, logg))
				r.Post("/bulk-delete", controllers.BulkDeleteThemes(d.Themes, logg))
				r.Get("/{id}", controllers.GetTheme(d.Themes, logg))
				r.Put("/{id}", controllers.UpdateTheme(d.Themes, d.Uploads, maxUploadMB, logg))
				r.Delete("/{id}", controllers.DeleteTheme(d.Themes, logg))
			})

			r.Route("/models", func(r chi.Router) {
				r.Get("/", controllers.ListVehicleModels(d.Models, logg))
				r.Post("/", controllers.CreateVehicleModel(d.Models, d.Uploads, maxUploadMB, logg))
				r.Post("/bulk-delete", controllers.BulkDeleteVehicleModels(d.Models, logg))
				r.Get("/{id}", controllers.GetVehicleModel(d.Models, logg))
				r.Put("/{id}", controllers.UpdateVehicleModel(d.Models, d.Uploads, maxUploadMB, logg))
				r.Delete("/{id}", controllers.DeleteVehicleModel(d.Models, logg))
			})

			// The admin client has always called these exact paths, misspellings
			// and the -wise-image suffixes included; they stay as-is so it keeps
			// working.
			r.Route("/addtional-options-category", func(r chi.Router) {
				r.Get("/", controllers.ListOptionCategories(d.Options, logg))
				r.Post("/", controllers.CreateOptionCategory(d.Options, logg))
				r.Post("/bulk-delete", controllers.BulkDeleteOptionCategories(d.Options, logg))
				r.Get("/{id}", controllers.GetOptionCategory(d.Options, logg))
				r.Put("/{id}", controllers.UpdateOptionCategory(d.Options, logg))
				r.Delete("/{id}", controllers.DeleteOptionCategory(d.Options, logg))
			})

			r.Route("/addtional-options", func(r chi.Router) {
				r.Get("/", controllers.ListOptions(d.Options, logg))
				r.Post("/", controllers.CreateOption(d.Options, logg))
				r.Post("/bulk-delete", controllers.BulkDeleteOptions(d.Options, logg))
				r.Get("/{id}", controllers.GetOption(d.Options, logg))
				r.Put("/{id}", controllers.UpdateOption(d.Options, logg))
				r.Delete("/{id}", controllers.DeleteOption(d.Options, logg))
			})

			r.Route("/model-color-wise-image", func(r chi.Router) {
				r.Get("/", controllers.ListModelColorImages(d.ModelImages, logg))
				r.Post("/", controllers.CreateModelColorImage(d.ModelImages, d.Uploads, maxUploadMB, logg))
				r.Post("/bulk-delete", controllers.BulkDeleteModelColorImages(d.ModelImages, logg))
				r.Get("/{id}", controllers.GetModelColorImage(d.ModelImages, logg))
				r.Put("/{id}", controllers.UpdateModelColorImage(d.ModelImages, d.Uploads, maxUploadMB, logg))
				r.Delete("/{id}", controllers.DeleteModelColorImage(d.ModelImages, logg))
			})

			r.Route("/model-theme-wise-image", func(r chi.Router) {
				r.Get("/", controllers.ListModelThemeImages(d.ModelImages, logg))
				r.Post("/", controllers.CreateModelThemeImage(d.ModelImages, d.Uploads, maxUploadMB, logg))
				r.Post("/bulk-delete", controllers.BulkDeleteModelThemeImages(d.ModelImages, logg))
				r.Get("/{id}", controllers.GetModelThemeImage(d.ModelImages, logg))
				r.Put("/{id}", controllers.UpdateModelThemeImage(d.ModelImages, d.Uploads, maxUploadMB, logg))
				r.Delete("/{id}", controllers.DeleteModelThemeImage(d.ModelImages, logg))
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.ListOrders(d.Orders, logg))
				r.Post("/bulk-delete", controllers.BulkDeleteOrders(d.Orders, logg))
				r.Get("/{id}", controllers.GetOrder(d.Orders, logg))
				r.Get("/{id}/summary", controllers.GetOrderSummary(d.Orders, frontendURL, logg))
				r.Get("/{id}/summary/pdf", controllers.DownloadOrderSummaryPDF(d.Orders, d.PDF, frontendURL, logg))
				r.Put("/{id}/status", controllers.UpdateOrderStatus(d.Orders, logg))
				r.Delete("/{id}", controllers.DeleteOrder(d.Orders, logg))
			})
		})
	})

	return r
}
