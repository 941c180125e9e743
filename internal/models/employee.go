package models

import (
	"fmt"
	"strconv"
)

// Employee represents an employee entity.
// The zero value is an employee with every field unset.
type Employee struct {
	ID        *int64 `json:"id"` // nil until storage assigns one
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

// NewEmployee builds an employee with every field set, in the order id, firstname,
// lastname, email, address, phone.
func NewEmployee(id int64, firstname, lastname, email, address, phone string) Employee {
	return Employee{
		ID:        &id,
		Firstname: firstname,
		Lastname:  lastname,
		Email:     email,
		Address:   address,
		Phone:     phone,
	}
}

// IDValue returns the identifier and whether it has been assigned.
func (e Employee) IDValue() (int64, bool) {
	if e.ID == nil {
		return 0, false
	}

	return *e.ID, true
}

// HasID reports whether the identifier has been assigned.
func (e Employee) HasID() bool {
	return e.ID != nil
}

// SetID assigns the identifier.
func (e *Employee) SetID(id int64) {
	e.ID = &id
}

// ClearID marks the identifier as unassigned.
func (e *Employee) ClearID() {
	e.ID = nil
}

// Equal reports whether both employees hold the same six field values.
func (e Employee) Equal(other Employee) bool {
	leftID, leftOK := e.IDValue()
	rightID, rightOK := other.IDValue()
	if leftOK != rightOK || leftID != rightID {
		return false
	}

	return e.Firstname == other.Firstname &&
		e.Lastname == other.Lastname &&
		e.Email == other.Email &&
		e.Address == other.Address &&
		e.Phone == other.Phone
}

func (e Employee) String() string {
	id := "null"
	if value, ok := e.IDValue(); ok {
		id = strconv.FormatInt(value, 10)
	}

	return fmt.Sprintf("Employee(id=%s, firstname=%s, lastname=%s, email=%s, address=%s, phone=%s)",
		id, e.Firstname, e.Lastname, e.Email, e.Address, e.Phone)
}
