package match

import (
	"context"
	"database/sql"
)

// Match pairs a teacher with a student. The nicknames are snapshots taken
// when the match is made and are not kept in sync afterwards.
type Match struct {
	TeacherID       int64          `db:"id_teacher"`
	StudentID       int64          `db:"id_student"`
	TeacherNickname sql.NullString `db:"nick_teacher"`
	StudentNickname sql.NullString `db:"nick_student"`
}

// Repository appends match records. Matches are never updated or removed here.
type Repository interface {
	Create(ctx context.Context, m *Match) error
}
