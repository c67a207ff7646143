package application

import "errors"

// ErrHasOrders blocks deletion while orders still reference the client.
var ErrHasOrders = errors.New("client has orders and cannot be deleted")
