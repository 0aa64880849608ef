package service

import (
	"context"
	"testing"

	"github.com/PlanetSoftweb/sppl/internal/middleware"
	"github.com/PlanetSoftweb/sppl/internal/store"
	users "github.com/PlanetSoftweb/sppl/internal/user"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database and applies migrations
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite3", "file::memory:")
	require.NoError(t, err, "Failed to connect to in-memory DB")

	// The in-memory database lives on a single connection.
	database.SetMaxOpenConns(1)

	_, err = database.Exec("PRAGMA foreign_keys = ON;")
	require.NoError(t, err)

	driver, err := sqlite3.WithInstance(database.DB, &sqlite3.Config{})
	require.NoError(t, err, "Failed to create migrate driver instance")

	m, err := migrate.NewWithDatabaseInstance(
		"file://../../migrations",
		"sqlite3",
		driver,
	)
	require.NoError(t, err, "Failed to create migrate instance")

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		require.NoError(t, err, "Failed to apply migrations")
	}

	return database
}

// seedUser inserts an account and returns a context carrying its id, the way
// the auth middleware does for real requests.
func seedUser(t *testing.T, db *sqlx.DB, email string) (context.Context, uuid.UUID) {
	t.Helper()

	userStore := store.NewUserStore(db)
	user := &users.User{
		ID:       uuid.New(),
		Email:    email,
		Username: email,
	}
	require.NoError(t, userStore.CreateUser(context.Background(), user))

	ctx := context.WithValue(context.Background(), middleware.UserIDKey, user.ID)
	return ctx, user.ID
}
