package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/staffbook/internal/config"
	"github.com/UnknownOlympus/staffbook/internal/metrics"
	"github.com/UnknownOlympus/staffbook/internal/models"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// EmployeeService is the application service behind the employee routes.
type EmployeeService interface {
	Create(ctx context.Context, employee models.Employee) (models.Employee, error)
	Get(ctx context.Context, identifier int64) (models.Employee, error)
	List(ctx context.Context) ([]models.Employee, error)
	Update(ctx context.Context, employee models.Employee) (models.Employee, error)
	Delete(ctx context.Context, identifier int64) error
}

// Deps groups everything the router needs.
type Deps struct {
	Log      *slog.Logger
	Staff    EmployeeService
	DB       DBPinger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

type handler struct {
	log   *slog.Logger
	staff EmployeeService
}

// NewRouter mounts the employee API, the HTML listing, the health check and the metrics endpoint.
func NewRouter(deps Deps) *mux.Router {
	hnd := &handler{log: deps.Log, staff: deps.Staff}

	router := mux.NewRouter().StrictSlash(true)
	router.Use(
		recoveryMiddleware(deps.Log),
		loggingMiddleware(deps.Log),
		metricsMiddleware(deps.Metrics),
	)

	api := router.PathPrefix("/api/employees").Subrouter()
	api.HandleFunc("", hnd.listEmployees).Methods(http.MethodGet)
	api.HandleFunc("", hnd.createEmployee).Methods(http.MethodPost)
	api.HandleFunc("/{id:[0-9]+}", hnd.getEmployee).Methods(http.MethodGet)
	api.HandleFunc("/{id:[0-9]+}", hnd.updateEmployee).Methods(http.MethodPut)
	api.HandleFunc("/{id:[0-9]+}", hnd.deleteEmployee).Methods(http.MethodDelete)

	router.HandleFunc("/employees", hnd.employeesPage).Methods(http.MethodGet)
	router.Handle("/healthz", NewHealthChecker(deps.DB, deps.Log)).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return router
}

// StartServer serves the handler until ctx is cancelled, then shuts the server down gracefully.
func StartServer(ctx context.Context, log *slog.Logger, handler http.Handler, cfg config.HTTPConfig) error {
	shutdownTimeout := 5 * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "Starting employee API", "port", cfg.Port)
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("employee API failed: %w", err)
	case <-ctx.Done():
		log.InfoContext(ctx, "Shutting down employee API")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down employee API: %w", err)
		}

		return nil
	}
}
