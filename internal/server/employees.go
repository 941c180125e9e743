package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/UnknownOlympus/staffbook/internal/lib/logger/sl"
	"github.com/UnknownOlympus/staffbook/internal/models"
	"github.com/UnknownOlympus/staffbook/internal/repository"
	"github.com/UnknownOlympus/staffbook/internal/services/employees"
	"github.com/gorilla/mux"
)

const maxBodyBytes = 1 << 20

func (h *handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	list, err := h.staff.List(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (h *handler) getEmployee(w http.ResponseWriter, r *http.Request) {
	identifier, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	employee, err := h.staff.Get(r.Context(), identifier)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, employee)
}

func (h *handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	employee, err := decodeEmployee(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.staff.Create(r.Context(), employee)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	identifier, _ := created.IDValue()
	w.Header().Set("Location", fmt.Sprintf("/api/employees/%d", identifier))
	writeJSON(w, http.StatusCreated, created)
}

func (h *handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	identifier, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	employee, err := decodeEmployee(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	employee.SetID(identifier)

	updated, err := h.staff.Update(r.Context(), employee)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	identifier, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err = h.staff.Delete(r.Context(), identifier); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeServiceError maps service errors onto HTTP statuses.
func (h *handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *employees.ValidationError

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: validationErr.Error(), Fields: validationErr.Fields})
	case errors.Is(err, employees.ErrIDAssigned), errors.Is(err, repository.ErrEmployeeIDMissing):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrEmployeeNotFound):
		writeError(w, http.StatusNotFound, repository.ErrEmployeeNotFound.Error())
	default:
		h.log.ErrorContext(r.Context(), "Employee request failed", "path", r.URL.Path, sl.Err(err))
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

func pathID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]

	identifier, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || identifier <= 0 {
		return 0, fmt.Errorf("invalid employee id %q", raw)
	}

	return identifier, nil
}

func decodeEmployee(w http.ResponseWriter, r *http.Request) (models.Employee, error) {
	var employee models.Employee

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&employee); err != nil {
		return models.Employee{}, fmt.Errorf("invalid employee payload: %w", err)
	}

	return employee, nil
}
