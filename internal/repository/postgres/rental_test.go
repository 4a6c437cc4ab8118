package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/repository/postgres"
)

func TestRentalRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rentedAt := time.Now()
		mock.ExpectExec("INSERT INTO rentals").
			WithArgs(sqlmock.AnyArg(), rentedAt, "friend-1", "tool-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		rental, err := repo.Create(ctx, "tool-1", "friend-1", rentedAt)
		assert.NoError(t, err)
		assert.NotEmpty(t, rental.ID)
		assert.True(t, rental.IsOpen())
		assert.Equal(t, "tool-1", rental.ToolID)
		assert.Equal(t, "friend-1", rental.FriendID)
	})

	t.Run("UniqueViolationMeansAlreadyRented", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO rentals").
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "friend-1", "tool-1").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "rentals_one_open_per_tool"})

		rental, err := repo.Create(ctx, "tool-1", "friend-1", time.Now())
		assert.Nil(t, rental)
		assert.ErrorIs(t, err, domain.ErrAlreadyRented)
	})
}

func TestRentalRepository_Close(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("ClosesOpenRental", func(t *testing.T) {
		returnedAt := time.Now()
		mock.ExpectExec("UPDATE rentals SET devolution_timestamp").
			WithArgs(returnedAt, "tool-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		affected, err := repo.Close(ctx, "tool-1", returnedAt)
		assert.NoError(t, err)
		assert.EqualValues(t, 1, affected)
	})

	t.Run("NoOpenRentalIsNoOp", func(t *testing.T) {
		mock.ExpectExec("UPDATE rentals SET devolution_timestamp").
			WithArgs(sqlmock.AnyArg(), "tool-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		affected, err := repo.Close(ctx, "tool-1", time.Now())
		assert.NoError(t, err)
		assert.Zero(t, affected)
	})
}

func TestRentalRepository_HasOpenRentalForTool(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Open", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("tool-1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		open, err := repo.HasOpenRentalForTool(ctx, "tool-1")
		assert.NoError(t, err)
		assert.True(t, open)
	})

	t.Run("NotOpen", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("tool-1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		open, err := repo.HasOpenRentalForTool(ctx, "tool-1")
		assert.NoError(t, err)
		assert.False(t, open)
	})
}

func TestRentalRepository_CountOpenByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(r.id\)`).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		count, err := repo.CountOpenByOwner(ctx, "user-1")
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestRentalRepository_RankFriendsByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("PositionsFollowSortOrder", func(t *testing.T) {
		// A and B tie at 3 all-time; the query breaks the tie by name, so A
		// comes back first and positions are assigned in row order.
		rows := sqlmock.NewRows([]string{"name", "social_security", "open_count", "all_time_count"}).
			AddRow("Alice", "111", 1, 3).
			AddRow("Bob", "222", 0, 3).
			AddRow("Carol", "333", 0, 1)

		mock.ExpectQuery("SELECT (.+) FROM friends f").
			WithArgs("user-1").
			WillReturnRows(rows)

		entries, err := repo.RankFriendsByOwner(ctx, "user-1")
		assert.NoError(t, err)
		assert.Len(t, entries, 3)
		assert.Equal(t, []int{1, 2, 3}, []int{entries[0].Position, entries[1].Position, entries[2].Position})
		assert.Equal(t, "Alice", entries[0].Name)
		assert.Equal(t, "Bob", entries[1].Name)
		assert.Equal(t, "Carol", entries[2].Name)
		assert.Equal(t, 3, entries[1].AllTimeCount)
		assert.Equal(t, 1, entries[0].OpenCount)
	})
}

func TestRentalRepository_ListByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("OpenAndClosed", func(t *testing.T) {
		rentedAt := time.Now().Add(-72 * time.Hour)
		returnedAt := time.Now().Add(-24 * time.Hour)
		rows := sqlmock.NewRows([]string{
			"id", "rental_timestamp", "devolution_timestamp", "friend_id", "tool_id",
			"brand", "name", "friend_name",
		}).
			AddRow("rental-2", time.Now(), nil, "friend-1", "tool-1", "Bosch", "Drill", "Alice").
			AddRow("rental-1", rentedAt, returnedAt, "friend-2", "tool-2", "Makita", "Saw", "Bob")

		mock.ExpectQuery("SELECT (.+) FROM rentals r").
			WithArgs("user-1").
			WillReturnRows(rows)

		entries, err := repo.ListByOwner(ctx, "user-1")
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.True(t, entries[0].Rental.IsOpen())
		assert.False(t, entries[1].Rental.IsOpen())
		assert.Equal(t, "Bob", entries[1].FriendName)
	})
}
