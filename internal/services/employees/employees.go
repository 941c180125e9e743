package employees

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"regexp"
	"sort"
	"strings"

	"github.com/UnknownOlympus/staffbook/internal/lib/logger/sl"
	"github.com/UnknownOlympus/staffbook/internal/metrics"
	"github.com/UnknownOlympus/staffbook/internal/models"
	"github.com/UnknownOlympus/staffbook/internal/repository"
)

var (
	// ErrInvalidEmployee is matched by every *ValidationError.
	ErrInvalidEmployee = errors.New("invalid employee")
	// ErrIDAssigned is returned when a new employee already carries an identifier.
	ErrIDAssigned = errors.New("employee id must not be set on create")
)

var e164Regex = regexp.MustCompile(`^\+?[0-9]\d{1,14}$`)

// ValidationError lists the fields that failed validation with the reason for each.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}

	return ErrInvalidEmployee.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidEmployee
}

type Staff struct {
	log     *slog.Logger
	repo    repository.EmployeeRepoIface
	metrics *metrics.Metrics
}

func NewStaff(log *slog.Logger, repo repository.EmployeeRepoIface, metrics *metrics.Metrics) *Staff {
	return &Staff{log: log, repo: repo, metrics: metrics}
}

func (s *Staff) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "employee"),
	)
}

// Create validates a new employee, stores it and returns it with the identifier assigned by storage.
func (s *Staff) Create(ctx context.Context, employee models.Employee) (models.Employee, error) {
	const opn = "Employee.Create"
	log := s.initLogger(opn)

	if employee.HasID() {
		return models.Employee{}, ErrIDAssigned
	}

	employee = normalize(employee)
	if err := Validate(employee); err != nil {
		log.DebugContext(ctx, "Rejected new employee", sl.Err(err))
		return models.Employee{}, err
	}

	identifier, err := s.repo.SaveEmployee(ctx, employee)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to save new employee %s %s: %w",
			employee.Firstname, employee.Lastname, err)
	}
	employee.SetID(identifier)

	s.metrics.EmployeesChanged.WithLabelValues("create").Inc()
	log.InfoContext(ctx, "Employee created", sl.Employee(employee))

	return employee, nil
}

// Get returns the employee stored under the identifier.
func (s *Staff) Get(ctx context.Context, identifier int64) (models.Employee, error) {
	employee, err := s.repo.GetEmployeeByID(ctx, identifier)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to get employee %d: %w", identifier, err)
	}

	return employee, nil
}

// List returns every stored employee.
func (s *Staff) List(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return employees, nil
}

// Update replaces the stored fields of an existing employee. An employee identical to the
// stored one is returned as is, without a write.
func (s *Staff) Update(ctx context.Context, employee models.Employee) (models.Employee, error) {
	const opn = "Employee.Update"
	log := s.initLogger(opn)

	identifier, ok := employee.IDValue()
	if !ok {
		return models.Employee{}, repository.ErrEmployeeIDMissing
	}

	employee = normalize(employee)
	if err := Validate(employee); err != nil {
		log.DebugContext(ctx, "Rejected employee update", sl.EmployeeID(identifier), sl.Err(err))
		return models.Employee{}, err
	}

	existed, existedEmployee := IsEmployeeExists(ctx, identifier, s.repo)
	if existed && existedEmployee.Equal(employee) {
		log.DebugContext(ctx, "employee is unchanged, skipped", sl.EmployeeID(identifier))
		return existedEmployee, nil
	}

	if err := s.repo.UpdateEmployee(ctx, employee); err != nil {
		return models.Employee{}, fmt.Errorf("failed to update employee: '%d': %w", identifier, err)
	}

	s.metrics.EmployeesChanged.WithLabelValues("update").Inc()
	log.InfoContext(ctx, "Employee updated", sl.Employee(employee))

	return employee, nil
}

// Delete removes the employee stored under the identifier.
func (s *Staff) Delete(ctx context.Context, identifier int64) error {
	const opn = "Employee.Delete"
	log := s.initLogger(opn)

	if err := s.repo.DeleteEmployee(ctx, identifier); err != nil {
		return fmt.Errorf("failed to delete employee %d: %w", identifier, err)
	}

	s.metrics.EmployeesChanged.WithLabelValues("delete").Inc()
	log.InfoContext(ctx, "Employee deleted", sl.EmployeeID(identifier))

	return nil
}

// Validate checks the fields the registry requires: both names present, and
// email and phone well formed when they are given.
func Validate(employee models.Employee) error {
	fields := make(map[string]string)

	if employee.Firstname == "" {
		fields["firstname"] = "required"
	}
	if employee.Lastname == "" {
		fields["lastname"] = "required"
	}

	isEmail, isPhone := ValidateEmployee(employee.Email, employee.Phone)
	if employee.Email != "" && !isEmail {
		fields["email"] = "not a valid address"
	}
	if employee.Phone != "" && !isPhone {
		fields["phone"] = "not a valid phone number"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	return nil
}

// ValidateEmployee validates the email and phone number of an employee.
func ValidateEmployee(email, phone string) (bool, bool) {
	return isValidEmail(email), isValidPhoneNumber(phone)
}

// IsEmployeeExists checks if an employee with the given ID exists in the repository.
func IsEmployeeExists(
	ctx context.Context,
	employeeID int64,
	repo repository.EmployeeRepoIface,
) (bool, models.Employee) {
	employee, err := repo.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return false, models.Employee{}
	}

	return true, employee
}

func normalize(employee models.Employee) models.Employee {
	employee.Firstname = strings.TrimSpace(employee.Firstname)
	employee.Lastname = strings.TrimSpace(employee.Lastname)
	employee.Email = strings.TrimSpace(employee.Email)
	employee.Address = strings.TrimSpace(employee.Address)
	employee.Phone = strings.TrimSpace(employee.Phone)

	return employee
}

// isValidEmail checks if the given email address is a bare address without a display name.
func isValidEmail(email string) bool {
	address, err := mail.ParseAddress(email)
	return err == nil && address.Address == email
}

// isValidPhoneNumber checks if a phone number is valid according to the E.164 format.
func isValidPhoneNumber(phone string) bool {
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")

	return e164Regex.MatchString(phone)
}
