package database

import (
	"context"

	"mentor_matching/internal/domain/match"

	"github.com/jmoiron/sqlx"
)

type PostgresMatchRepository struct {
	db *sqlx.DB
}

func NewPostgresMatchRepository(db *sqlx.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

// Create appends a match. Duplicate pairs are only rejected if the schema
// declares a unique constraint.
func (r *PostgresMatchRepository) Create(ctx context.Context, m *match.Match) error {
	query := `INSERT INTO teacher_student (id_teacher, id_student, nick_teacher, nick_student)
               VALUES ($1, $2, $3, $4)`

	return withConn(ctx, r.db, "insert match", func(conn *sqlx.Conn) error {
		_, err := conn.ExecContext(ctx, query, m.TeacherID, m.StudentID, m.TeacherNickname, m.StudentNickname)
		return err
	})
}
