package domain

import "context"

// Repository is an ordered, whole-array persisted collection of records.
type Repository[T any] interface {
	List() []T
	Get(id string) (T, bool)
	Add(ctx context.Context, rec T) T
	Update(ctx context.Context, rec T) bool
	Delete(ctx context.Context, id string) bool
	Restore(ctx context.Context, items []T)
	UpdateWhere(ctx context.Context, fn func(T) (T, bool)) int
	Reload(ctx context.Context)
}
