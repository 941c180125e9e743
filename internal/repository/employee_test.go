package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/UnknownOlympus/staffbook/internal/metrics"
	"github.com/UnknownOlympus/staffbook/internal/models"
	"github.com/UnknownOlympus/staffbook/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const saveEmployeeQuery = `
		INSERT INTO employees (firstname, lastname, email, address, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`

const updateEmployeeQuery = `
		UPDATE employees
		SET firstname = $2, lastname = $3, email = $4, address = $5, phone = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1;
	`

const (
	getEmployeeByIDQuery = `SELECT id, firstname, lastname, email, address, phone FROM employees WHERE id=$1`
	listEmployeesQuery   = `SELECT id, firstname, lastname, email, address, phone FROM employees ORDER BY id`
	deleteEmployeeQuery  = `DELETE FROM employees WHERE id = $1`
	countEmployeesQuery  = `SELECT COUNT(*) FROM employees`
)

var employeeColumns = []string{"id", "firstname", "lastname", "email", "address", "phone"}

func newRepo(t *testing.T) (pgxmock.PgxPoolIface, repository.EmployeeRepoIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(mock.Close)

	return mock, repository.NewEmployeeRepository(mock, metrics.NewMetrics(prometheus.NewRegistry()))
}

func testEmployee() models.Employee {
	return models.NewEmployee(123, "Ada", "Lovelace", "ada@example.com", "1 Infinite Loop", "555-0100")
}

func TestSaveEmployee_QueryError(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)
	employee := testEmployee()

	mock.ExpectQuery(regexp.QuoteMeta(saveEmployeeQuery)).
		WithArgs(employee.Firstname, employee.Lastname, employee.Email, employee.Address, employee.Phone).
		WillReturnError(assert.AnError)

	identifier, err := repo.SaveEmployee(context.Background(), employee)

	require.Error(t, err)
	assert.Equal(t, "failed to save employee: "+assert.AnError.Error(), err.Error())
	assert.Zero(t, identifier)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveEmployee_Success(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)
	employee := models.Employee{Firstname: "Grace", Lastname: "Hopper", Email: "grace@example.com"}

	mock.ExpectQuery(regexp.QuoteMeta(saveEmployeeQuery)).
		WithArgs("Grace", "Hopper", "grace@example.com", "", "").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(77)))

	identifier, err := repo.SaveEmployee(context.Background(), employee)

	require.NoError(t, err)
	assert.Equal(t, int64(77), identifier)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEmployee_QueryError(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)
	employee := testEmployee()

	mock.ExpectExec(regexp.QuoteMeta(updateEmployeeQuery)).
		WithArgs(int64(123), employee.Firstname, employee.Lastname, employee.Email, employee.Address, employee.Phone).
		WillReturnError(assert.AnError)

	err := repo.UpdateEmployee(context.Background(), employee)

	require.Error(t, err)
	assert.Equal(t, "failed to update employee data: "+assert.AnError.Error(), err.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEmployee_Success(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)
	employee := testEmployee()

	mock.ExpectExec(regexp.QuoteMeta(updateEmployeeQuery)).
		WithArgs(int64(123), employee.Firstname, employee.Lastname, employee.Email, employee.Address, employee.Phone).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateEmployee(context.Background(), employee)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)
	employee := testEmployee()

	mock.ExpectExec(regexp.QuoteMeta(updateEmployeeQuery)).
		WithArgs(int64(123), employee.Firstname, employee.Lastname, employee.Email, employee.Address, employee.Phone).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateEmployee(context.Background(), employee)

	require.ErrorIs(t, err, repository.ErrEmployeeNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEmployee_MissingID(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	err := repo.UpdateEmployee(context.Background(), models.Employee{Firstname: "Grace"})

	require.ErrorIs(t, err, repository.ErrEmployeeIDMissing)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEmployeeByID_QueryError(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(getEmployeeByIDQuery)).
		WithArgs(int64(123)).
		WillReturnError(assert.AnError)

	actualEmployee, err := repo.GetEmployeeByID(context.Background(), 123)

	require.Error(t, err)
	require.EqualError(t, err, "failed to get employee by id: "+assert.AnError.Error())
	assert.Equal(t, models.Employee{}, actualEmployee)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEmployeeByID_NotFound(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(getEmployeeByIDQuery)).
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetEmployeeByID(context.Background(), 404)

	require.ErrorIs(t, err, repository.ErrEmployeeNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEmployeeByID_Success(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)
	expEmployee := testEmployee()

	expectedRows := pgxmock.NewRows(employeeColumns).
		AddRow(int64(123), expEmployee.Firstname, expEmployee.Lastname, expEmployee.Email,
			expEmployee.Address, expEmployee.Phone)

	mock.ExpectQuery(regexp.QuoteMeta(getEmployeeByIDQuery)).
		WithArgs(int64(123)).
		WillReturnRows(expectedRows)

	actualEmployee, err := repo.GetEmployeeByID(context.Background(), 123)

	require.NoError(t, err)
	assert.True(t, expEmployee.Equal(actualEmployee), "got %s", actualEmployee)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmployees_Success(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	expectedRows := pgxmock.NewRows(employeeColumns).
		AddRow(int64(1), "Ada", "Lovelace", "ada@example.com", "1 Infinite Loop", "555-0100").
		AddRow(int64(2), "Grace", "Hopper", "grace@example.com", "", "")

	mock.ExpectQuery(regexp.QuoteMeta(listEmployeesQuery)).WillReturnRows(expectedRows)

	employees, err := repo.ListEmployees(context.Background())

	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.True(t, employees[0].Equal(
		models.NewEmployee(1, "Ada", "Lovelace", "ada@example.com", "1 Infinite Loop", "555-0100")))
	assert.True(t, employees[1].Equal(models.NewEmployee(2, "Grace", "Hopper", "grace@example.com", "", "")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmployees_Empty(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(listEmployeesQuery)).WillReturnRows(pgxmock.NewRows(employeeColumns))

	employees, err := repo.ListEmployees(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, employees)
	assert.Empty(t, employees)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmployees_QueryError(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(listEmployeesQuery)).WillReturnError(assert.AnError)

	employees, err := repo.ListEmployees(context.Background())

	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "failed to list employees")
	assert.Nil(t, employees)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmployees_RowError(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	expectedRows := pgxmock.NewRows(employeeColumns).
		AddRow(int64(1), "Ada", "Lovelace", "ada@example.com", "1 Infinite Loop", "555-0100").
		RowError(0, assert.AnError)

	mock.ExpectQuery(regexp.QuoteMeta(listEmployeesQuery)).WillReturnRows(expectedRows)

	_, err := repo.ListEmployees(context.Background())

	require.ErrorIs(t, err, assert.AnError)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEmployee_Success(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteEmployeeQuery)).
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.DeleteEmployee(context.Background(), 5))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEmployee_NotFound(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteEmployeeQuery)).
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.DeleteEmployee(context.Background(), 5)

	require.ErrorIs(t, err, repository.ErrEmployeeNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEmployee_QueryError(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteEmployeeQuery)).
		WithArgs(int64(5)).
		WillReturnError(assert.AnError)

	err := repo.DeleteEmployee(context.Background(), 5)

	require.EqualError(t, err, "failed to delete employee: "+assert.AnError.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountEmployees(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(countEmployeesQuery)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	count, err := repo.CountEmployees(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountEmployees_QueryError(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(countEmployeesQuery)).WillReturnError(assert.AnError)

	_, err := repo.CountEmployees(context.Background())

	require.EqualError(t, err, "failed to count employees: "+assert.AnError.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}
