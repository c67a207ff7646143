package domain

import (
	"errors"
	"strings"
)

var ErrEmptyName = errors.New("employee name is required")

// Employee represents a staff registry entry.
type Employee struct {
	ID   int64
	Name string
	Role string
}

// NewEmployee builds an employee ensuring required invariants.
func NewEmployee(id int64, name, role string) (*Employee, error) {
	employee := &Employee{ID: id, Role: strings.TrimSpace(role)}
	if err := employee.SetName(name); err != nil {
		return nil, err
	}
	return employee, nil
}

// SetName trims and validates the employee name.
func (e *Employee) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	e.Name = name
	return nil
}

// Validate re-applies core invariants for persistence.
func (e *Employee) Validate() error {
	e.Role = strings.TrimSpace(e.Role)
	return e.SetName(e.Name)
}
