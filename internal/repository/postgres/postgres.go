package postgres

import (
	"database/sql"

	_ "github.com/lib/pq"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/logger"
	"toolshed-backend/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.FriendRepository
	repository.ToolRepository
	repository.RentalRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:               db,
		UserRepository:   NewUserRepository(db),
		FriendRepository: NewFriendRepository(db),
		ToolRepository:   NewToolRepository(db),
		RentalRepository: NewRentalRepository(db),
	}
}

// dataAccessErr logs a driver failure and wraps it so no store-specific
// error shape leaks past the repository boundary.
func dataAccessErr(op string, err error) error {
	logger.DatabaseError(op, err)
	return &domain.DataAccessError{Op: op, Err: err}
}
