package sl

import (
	"log/slog"

	"github.com/UnknownOlympus/staffbook/internal/models"
)

// Err creates a slog.Attr with the given error. A nil error is logged as an empty string.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}

	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// EmployeeID creates a slog.Attr holding an employee identifier.
func EmployeeID(id int64) slog.Attr {
	return slog.Int64("employee_id", id)
}

// Employee groups the identifying fields of an employee. Address and phone are left out of logs.
func Employee(employee models.Employee) slog.Attr {
	attrs := []any{
		slog.String("firstname", employee.Firstname),
		slog.String("lastname", employee.Lastname),
	}
	if id, ok := employee.IDValue(); ok {
		attrs = append([]any{slog.Int64("id", id)}, attrs...)
	}

	return slog.Group("employee", attrs...)
}
