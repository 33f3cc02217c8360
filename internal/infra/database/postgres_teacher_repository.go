package database

import (
	"context"

	"mentor_matching/internal/domain/profile"
	"mentor_matching/internal/domain/teacher"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// notMatchedClause excludes the student themself and every teacher already
// paired with them. Self pairs in teacher_student are ignored.
const notMatchedClause = `show = TRUE
               AND id != $1
               AND NOT EXISTS (
                   SELECT 1 FROM teacher_student
                   WHERE teacher_student.id_teacher = teacher.id
                     AND teacher_student.id_student = $1
                     AND teacher_student.id_student != teacher_student.id_teacher
               )`

type PostgresTeacherRepository struct {
	db *sqlx.DB
}

func NewPostgresTeacherRepository(db *sqlx.DB) *PostgresTeacherRepository {
	return &PostgresTeacherRepository{db: db}
}

func (r *PostgresTeacherRepository) ListAvailable(ctx context.Context, studentID int64) ([]teacher.Card, error) {
	query := `SELECT id, name, grade, sphere, description
               FROM teacher
               WHERE ` + notMatchedClause

	cards := make([]teacher.Card, 0)
	err := withConn(ctx, r.db, "list available teachers", func(conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &cards, query, studentID)
	})
	if err != nil {
		return nil, err
	}
	return cards, nil
}

// ListFiltered matches a teacher when any tag of its grade column is in
// filter.Grades and any tag of its sphere column is in filter.Spheres.
// A filter that selects nothing returns an empty slice without a query.
func (r *PostgresTeacherRepository) ListFiltered(ctx context.Context, filter profile.Filter, studentID int64) ([]teacher.Card, error) {
	if filter.IsEmpty() {
		return []teacher.Card{}, nil
	}

	query := `SELECT id, name, grade, sphere, description
               FROM teacher
               WHERE regexp_split_to_array(grade, '\s*,\s*') && $2::text[]
               AND regexp_split_to_array(sphere, '\s*,\s*') && $3::text[]
               AND ` + notMatchedClause

	cards := make([]teacher.Card, 0)
	err := withConn(ctx, r.db, "list filtered teachers", func(conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &cards, query,
			studentID, pq.Array(filter.GradeValues()), pq.Array(filter.SphereValues()))
	})
	if err != nil {
		return nil, err
	}
	return cards, nil
}

// IsAvailable reports whether the teacher would appear in the student's
// ListAvailable listing.
func (r *PostgresTeacherRepository) IsAvailable(ctx context.Context, teacherID, studentID int64) (bool, error) {
	query := `SELECT EXISTS (
                   SELECT 1 FROM teacher
                   WHERE id = $2 AND ` + notMatchedClause + `
               )`

	var available bool
	err := withConn(ctx, r.db, "check teacher availability", func(conn *sqlx.Conn) error {
		return conn.GetContext(ctx, &available, query, studentID, teacherID)
	})
	if err != nil {
		return false, err
	}
	return available, nil
}

func (r *PostgresTeacherRepository) GetProfile(ctx context.Context, id int64) ([]teacher.Profile, error) {
	query := `SELECT name, grade, sphere, description, nickname
               FROM teacher WHERE id = $1`

	profiles := make([]teacher.Profile, 0)
	err := withConn(ctx, r.db, "get teacher profile", func(conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &profiles, query, id)
	})
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *PostgresTeacherRepository) ListMatched(ctx context.Context, studentID int64) ([]teacher.MatchedTeacher, error) {
	query := `SELECT name, grade, sphere, description, nickname
               FROM teacher
               WHERE EXISTS (
                   SELECT 1 FROM teacher_student
                   WHERE teacher_student.id_teacher = teacher.id
                     AND teacher_student.id_student = $1
                     AND teacher_student.id_student != teacher_student.id_teacher
               )`

	matched := make([]teacher.MatchedTeacher, 0)
	err := withConn(ctx, r.db, "list matched teachers", func(conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &matched, query, studentID)
	})
	if err != nil {
		return nil, err
	}
	for i := range matched {
		matched[i].Nickname = teacher.Mention(matched[i].Nickname)
	}
	return matched, nil
}
