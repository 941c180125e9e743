package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/UnknownOlympus/staffbook/internal/models"
	"github.com/jackc/pgx/v5"
)

// ErrEmployeeIDMissing is returned when an operation needs a stored employee but the identifier is unset.
var ErrEmployeeIDMissing = errors.New("employee id is not assigned")

// SaveEmployee inserts a new employee and returns the identifier assigned by the database.
// Any identifier already present on the employee is ignored.
func (r *Repository) SaveEmployee(ctx context.Context, employee models.Employee) (int64, error) {
	defer r.observe("save_employee", time.Now())

	query := `
		INSERT INTO employees (firstname, lastname, email, address, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`

	var identifier int64

	err := r.db.QueryRow(ctx, query,
		employee.Firstname, employee.Lastname, employee.Email, employee.Address, employee.Phone,
	).Scan(&identifier)
	if err != nil {
		return 0, fmt.Errorf("failed to save employee: %w", err)
	}

	return identifier, nil
}

// UpdateEmployee replaces the stored fields of an existing employee.
func (r *Repository) UpdateEmployee(ctx context.Context, employee models.Employee) error {
	identifier, ok := employee.IDValue()
	if !ok {
		return fmt.Errorf("failed to update employee data: %w", ErrEmployeeIDMissing)
	}

	defer r.observe("update_employee", time.Now())

	query := `
		UPDATE employees
		SET firstname = $2, lastname = $3, email = $4, address = $5, phone = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1;
	`

	tag, err := r.db.Exec(ctx, query,
		identifier, employee.Firstname, employee.Lastname, employee.Email, employee.Address, employee.Phone)
	if err != nil {
		return fmt.Errorf("failed to update employee data: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update employee data: %w", ErrEmployeeNotFound)
	}

	return nil
}

// GetEmployeeByID retrieves an employee from the database by their ID.
func (r *Repository) GetEmployeeByID(ctx context.Context, identifier int64) (models.Employee, error) {
	defer r.observe("get_employee_by_id", time.Now())

	query := `SELECT id, firstname, lastname, email, address, phone FROM employees WHERE id=$1`

	result, err := scanEmployee(r.db.QueryRow(ctx, query, identifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrEmployeeNotFound
		}
		return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return result, nil
}

// ListEmployees returns every stored employee ordered by identifier.
func (r *Repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	defer r.observe("list_employees", time.Now())

	query := `SELECT id, firstname, lastname, email, address, phone FROM employees ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		employee, scanErr := scanEmployee(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", scanErr)
		}
		employees = append(employees, employee)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}

	return employees, nil
}

// DeleteEmployee removes an employee by their ID.
func (r *Repository) DeleteEmployee(ctx context.Context, identifier int64) error {
	defer r.observe("delete_employee", time.Now())

	query := `DELETE FROM employees WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, identifier)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to delete employee: %w", ErrEmployeeNotFound)
	}

	return nil
}

// CountEmployees returns the number of stored employees.
func (r *Repository) CountEmployees(ctx context.Context) (int64, error) {
	defer r.observe("count_employees", time.Now())

	query := `SELECT COUNT(*) FROM employees`

	var count int64

	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var (
		result     models.Employee
		identifier int64
	)

	err := row.Scan(&identifier, &result.Firstname, &result.Lastname, &result.Email, &result.Address, &result.Phone)
	if err != nil {
		return models.Employee{}, err //nolint:wrapcheck // callers wrap with the operation name
	}

	result.SetID(identifier)

	return result, nil
}
