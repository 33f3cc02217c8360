package app

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWiresPostgresRepositories(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	svc := New(sqlx.NewDb(db, "sqlmock"))

	mock.ExpectQuery(regexp.QuoteMeta("WHERE EXISTS")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"name", "grade", "sphere", "description", "nickname"}).
			AddRow("Tom", "Senior", "NLP", "mentor", "tom"))

	matched, err := svc.MyTeachers(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "@tom", matched[0].Nickname.String)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenFailsWithoutConfig(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_NAME", "")

	_, _, err := Open()
	assert.ErrorContains(t, err, "could not load configuration")
}
