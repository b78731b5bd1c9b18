package match

import "context"

// Repository describes match persistence needs from use cases.
// Update and Delete report whether a row with the id existed.
type Repository interface {
	List(ctx context.Context) ([]Match, error)
	Create(ctx context.Context, draft Draft) (int64, error)
	Update(ctx context.Context, id int64, draft Draft) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
