package teacher

import "database/sql"

// Card is a teacher row as shown in a student's browse listing.
// Teacher rows are written by the teacher-side module, so the text columns
// other than name may be NULL.
type Card struct {
	ID     int64          `db:"id"`
	Name   string         `db:"name"`
	Grade  sql.NullString `db:"grade"`
	Sphere sql.NullString `db:"sphere"`
	Bio    sql.NullString `db:"description"`
}

// Profile is a teacher's public profile.
type Profile struct {
	Name     string         `db:"name"`
	Grade    sql.NullString `db:"grade"`
	Sphere   sql.NullString `db:"sphere"`
	Bio      sql.NullString `db:"description"`
	Nickname sql.NullString `db:"nickname"`
}

// MatchedTeacher is a teacher already paired with a student. Nickname
// carries the "@" mention prefix when the teacher has one.
type MatchedTeacher struct {
	Name        string         `db:"name"`
	Grade       sql.NullString `db:"grade"`
	Sphere      sql.NullString `db:"sphere"`
	Description sql.NullString `db:"description"`
	Nickname    sql.NullString `db:"nickname"`
}

// Mention renders a nickname as a chat mention. Unset or empty nicknames
// are returned unchanged.
func Mention(nickname sql.NullString) sql.NullString {
	if !nickname.Valid || nickname.String == "" {
		return nickname
	}
	return sql.NullString{String: "@" + nickname.String, Valid: true}
}
