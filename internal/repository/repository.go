package repository

import (
	"context"
	"errors"
	"time"

	"github.com/UnknownOlympus/staffbook/internal/metrics"
	"github.com/UnknownOlympus/staffbook/internal/models"
)

// ErrEmployeeNotFound is returned when no employee row matches the identifier.
var ErrEmployeeNotFound = errors.New("employee not found")

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
type EmployeeRepoIface interface {
	SaveEmployee(ctx context.Context, employee models.Employee) (int64, error)
	UpdateEmployee(ctx context.Context, employee models.Employee) error
	GetEmployeeByID(ctx context.Context, identifier int64) (models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	DeleteEmployee(ctx context.Context, identifier int64) error
	CountEmployees(ctx context.Context) (int64, error)
}

func NewEmployeeRepository(db Database, metrics *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: metrics}
}

// observe records the duration of a query under the given label.
func (r *Repository) observe(queryType string, startTime time.Time) {
	r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(startTime).Seconds())
}
