package docref

import "context"

// Transactor runs a unit of work atomically. Service calls made with the
// context handed to fn take part in the unit of work.
type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
