package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyCPF       = errors.New("cpf is required")
	ErrEmptyFirstName = errors.New("first name is required")
)

// Client represents a registered customer.
type Client struct {
	ID        int64
	FirstName string
	LastName  string
	CPF       string
}

// NewClient builds a client ensuring required invariants.
func NewClient(id int64, firstName, lastName, cpf string) (*Client, error) {
	client := &Client{ID: id}
	if err := client.SetName(firstName, lastName); err != nil {
		return nil, err
	}
	if err := client.SetCPF(cpf); err != nil {
		return nil, err
	}
	return client, nil
}

// SetName trims and validates the client name.
func (c *Client) SetName(firstName, lastName string) error {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return ErrEmptyFirstName
	}
	c.FirstName = firstName
	c.LastName = strings.TrimSpace(lastName)
	return nil
}

// SetCPF trims and validates the national identifier.
func (c *Client) SetCPF(cpf string) error {
	cpf = strings.TrimSpace(cpf)
	if cpf == "" {
		return ErrEmptyCPF
	}
	c.CPF = cpf
	return nil
}

// Validate re-applies core invariants for persistence.
func (c *Client) Validate() error {
	if err := c.SetName(c.FirstName, c.LastName); err != nil {
		return err
	}
	return c.SetCPF(c.CPF)
}
