package directory

import (
	"context"
	"errors"

	clientports "github.com/vendasapp/vendas-api/internal/domains/clients/ports"
	"github.com/vendasapp/vendas-api/internal/domains/orders/domain"
	"github.com/vendasapp/vendas-api/internal/domains/orders/ports"
)

var _ ports.ClientDirectory = (*ClientDirectory)(nil)

// ClientDirectory resolves order client summaries through the clients context.
type ClientDirectory struct {
	clients clientports.Service
}

func NewClientDirectory(clients clientports.Service) *ClientDirectory {
	return &ClientDirectory{clients: clients}
}

// FindClient returns a nil summary when the client no longer exists; the
// order keeps rendering with a null client, matching the trust-on-write model.
func (d *ClientDirectory) FindClient(ctx context.Context, id int64) (*domain.ClientSummary, error) {
	client, err := d.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientports.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &domain.ClientSummary{
		ID:        client.ID,
		FirstName: client.FirstName,
		LastName:  client.LastName,
		CPF:       client.CPF,
	}, nil
}
