package nextmatch

import "context"

// Store holds at most one NextMatch. Set replaces it wholesale.
type Store interface {
	Get(ctx context.Context) (NextMatch, bool, error)
	Set(ctx context.Context, next NextMatch) error
}
