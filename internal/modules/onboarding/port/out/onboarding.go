package out

import "context"

// FlagStore persists named booleans across restarts. Missing flags read as
// false.
type FlagStore interface {
	Get(ctx context.Context, name string) (bool, error)
	Set(ctx context.Context, name string, value bool) error
}
