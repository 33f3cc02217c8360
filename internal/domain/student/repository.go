package student

import "context"

// Repository defines the operations for persisting and retrieving Student profiles.
type Repository interface {
	// GetAll returns the rows stored for id; the slice is empty when there are none.
	GetAll(ctx context.Context, id int64) ([]Student, error)
	Insert(ctx context.Context, s *Student) error
	// Update overwrites name, grade, sphere and description. Unknown ids are not an error.
	Update(ctx context.Context, s *Student) error
	SetShow(ctx context.Context, id int64, show bool) error
}
