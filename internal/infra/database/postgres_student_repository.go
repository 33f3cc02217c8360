package database

import (
	"context"

	"mentor_matching/internal/domain/student"

	"github.com/jmoiron/sqlx"
)

type PostgresStudentRepository struct {
	db *sqlx.DB
}

func NewPostgresStudentRepository(db *sqlx.DB) *PostgresStudentRepository {
	return &PostgresStudentRepository{db: db}
}

func (r *PostgresStudentRepository) GetAll(ctx context.Context, id int64) ([]student.Student, error) {
	query := `SELECT id, name, grade, sphere, description, show, nickname
               FROM student WHERE id = $1`

	students := make([]student.Student, 0)
	err := withConn(ctx, r.db, "get student", func(conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &students, query, id)
	})
	if err != nil {
		return nil, err
	}
	return students, nil
}

// Insert stores a new profile. When Show is NULL the column is left to the
// table default.
func (r *PostgresStudentRepository) Insert(ctx context.Context, s *student.Student) error {
	query := `INSERT INTO student (id, name, grade, sphere, description, nickname)
               VALUES ($1, $2, $3, $4, $5, $6)`
	args := []interface{}{s.ID, s.Name, s.Grade, s.Sphere, s.Bio, s.Nickname}
	if s.Show.Valid {
		query = `INSERT INTO student (id, name, grade, sphere, description, nickname, show)
               VALUES ($1, $2, $3, $4, $5, $6, $7)`
		args = append(args, s.Show.Bool)
	}

	return withConn(ctx, r.db, "insert student", func(conn *sqlx.Conn) error {
		_, err := conn.ExecContext(ctx, query, args...)
		return err
	})
}

func (r *PostgresStudentRepository) Update(ctx context.Context, s *student.Student) error {
	query := `UPDATE student
               SET name = $1, grade = $2, sphere = $3, description = $4
               WHERE id = $5`

	return withConn(ctx, r.db, "update student", func(conn *sqlx.Conn) error {
		_, err := conn.ExecContext(ctx, query, s.Name, s.Grade, s.Sphere, s.Bio, s.ID)
		return err
	})
}

func (r *PostgresStudentRepository) SetShow(ctx context.Context, id int64, show bool) error {
	query := `UPDATE student SET show = $1 WHERE id = $2`

	return withConn(ctx, r.db, "set student visibility", func(conn *sqlx.Conn) error {
		_, err := conn.ExecContext(ctx, query, show, id)
		return err
	})
}
