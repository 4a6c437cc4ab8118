package postgres_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/repository/postgres"
)

func TestUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(sqlmock.AnyArg(), "leo", "hash").
			WillReturnResult(sqlmock.NewResult(0, 1))

		user, err := repo.Create(ctx, "leo", "hash")
		assert.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "leo", user.Username)
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(sqlmock.AnyArg(), "leo", "hash").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "users_username_key"})

		user, err := repo.Create(ctx, "leo", "hash")
		assert.Nil(t, user)
		var dupErr *domain.DuplicateError
		assert.ErrorAs(t, err, &dupErr)
	})
}

func TestUserRepository_GetByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "username", "password"}).
			AddRow("user-1", "leo", "hash")

		mock.ExpectQuery("SELECT (.+) FROM users WHERE username").
			WithArgs("leo").
			WillReturnRows(rows)

		user, err := repo.GetByUsername(ctx, "leo")
		assert.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
	})

	t.Run("Absent", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE username").
			WithArgs("nobody").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password"}))

		user, err := repo.GetByUsername(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
