package teacher

import (
	"context"

	"mentor_matching/internal/domain/profile"
)

// Repository defines read access to teachers from a student's point of view.
// Teacher visibility is managed outside this module.
type Repository interface {
	// ListAvailable returns visible teachers that are neither the student
	// nor already matched with them.
	ListAvailable(ctx context.Context, studentID int64) ([]Card, error)
	// ListFiltered is ListAvailable restricted to the filter's grades and spheres.
	ListFiltered(ctx context.Context, filter profile.Filter, studentID int64) ([]Card, error)
	// IsAvailable reports whether the teacher is visible, is not the student
	// and is not yet matched with them.
	IsAvailable(ctx context.Context, teacherID, studentID int64) (bool, error)
	// GetProfile returns the stored profile; the slice is empty when id is unknown.
	GetProfile(ctx context.Context, id int64) ([]Profile, error)
	ListMatched(ctx context.Context, studentID int64) ([]MatchedTeacher, error)
}
