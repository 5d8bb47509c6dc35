package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqliteDSN(t *testing.T) {
	cases := map[string]string{
		"/shynebeauty.db":                  "shynebeauty.db?_pragma=foreign_keys(1)",
		"//var/lib/shyne.db":               "/var/lib/shyne.db?_pragma=foreign_keys(1)",
		"file:t?mode=memory&cache=shared":  "file:t?mode=memory&cache=shared&_pragma=foreign_keys(1)",
		"/x.db?_pragma=foreign_keys(0)":    "x.db?_pragma=foreign_keys(0)",
		"/x.db?_pragma=busy_timeout(5000)": "x.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)",
	}
	for in, want := range cases {
		assert.Equal(t, want, sqliteDSN(in), in)
	}
}

func TestDialectorFor(t *testing.T) {
	d, isSqlite, err := dialectorFor("sqlite:///shynebeauty.db")
	require.NoError(t, err)
	assert.True(t, isSqlite)
	assert.Equal(t, "sqlite", d.Name())

	d, isSqlite, err = dialectorFor("mysql://u:p@tcp(localhost:3306)/shyne")
	require.NoError(t, err)
	assert.False(t, isSqlite)
	assert.Equal(t, "mysql", d.Name())

	_, _, err = dialectorFor("postgres://localhost/shyne")
	assert.True(t, errors.Is(err, ErrUnsupportedDatabaseURL))
}

func TestDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "")
	assert.Equal(t, DefaultDatabaseURL, DatabaseURL())

	t.Setenv("DB_USER", "shyne")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "shyne")
	assert.Equal(t, "mysql://shyne:pw@tcp(db.internal:3306)/shyne?parseTime=true", DatabaseURL())

	t.Setenv("DB_HOST", "/cloudsql/proj:region:inst")
	assert.Equal(t, "mysql://shyne:pw@unix(/cloudsql/proj:region:inst)/shyne?parseTime=true", DatabaseURL())

	t.Setenv("DATABASE_URL", "sqlite:///other.db")
	assert.Equal(t, "sqlite:///other.db", DatabaseURL())
}

func TestOpenDatabaseEnforcesForeignKeys(t *testing.T) {
	db, err := OpenDatabase("sqlite://file:fkcheck?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)
}
