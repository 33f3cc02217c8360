package student

import "database/sql"

// Student is a mentee profile. ID is the messaging-platform user id and is
// assigned by the caller. The nullable columns may be unset on rows written
// by older flows.
type Student struct {
	ID       int64          `db:"id"`
	Name     string         `db:"name"`
	Grade    sql.NullString `db:"grade"`
	Sphere   sql.NullString `db:"sphere"` // comma-joined sphere tags
	Bio      sql.NullString `db:"description"`
	Show     sql.NullBool   `db:"show"` // NULL until set on insert or toggled
	Nickname sql.NullString `db:"nickname"`
}
