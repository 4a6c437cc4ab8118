package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

// Create inserts an open rental. The rentals_one_open_per_tool partial
// unique index backs up the use-case precondition check; a violation here
// means another open rental won the race and surfaces as ErrAlreadyRented.
func (r *rentalRepository) Create(ctx context.Context, toolID, friendID string, rentalTimestamp time.Time) (*domain.Rental, error) {
	id := uuid.NewString()
	query := `INSERT INTO rentals (id, rental_timestamp, devolution_timestamp, friend_id, tool_id) VALUES ($1, $2, NULL, $3, $4)`
	if _, err := r.db.ExecContext(ctx, query, id, rentalTimestamp, friendID, toolID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, domain.ErrAlreadyRented
		}
		return nil, dataAccessErr("rentals.create", err)
	}
	return &domain.Rental{
		ID:              id,
		RentalTimestamp: rentalTimestamp,
		FriendID:        friendID,
		ToolID:          toolID,
	}, nil
}

// Close sets the devolution timestamp on the tool's open rental. The WHERE
// clause only matches a null devolution_timestamp, so a closed rental can
// never be re-closed; callers read rows affected to detect a no-op.
func (r *rentalRepository) Close(ctx context.Context, toolID string, devolutionTimestamp time.Time) (int64, error) {
	query := `UPDATE rentals SET devolution_timestamp = $1 WHERE tool_id = $2 AND devolution_timestamp IS NULL`
	res, err := r.db.ExecContext(ctx, query, devolutionTimestamp, toolID)
	if err != nil {
		return 0, dataAccessErr("rentals.close", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, dataAccessErr("rentals.close", err)
	}
	return affected, nil
}

func (r *rentalRepository) HasOpenRentalForTool(ctx context.Context, toolID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM rentals WHERE tool_id = $1 AND devolution_timestamp IS NULL)`
	if err := r.db.QueryRowContext(ctx, query, toolID).Scan(&exists); err != nil {
		return false, dataAccessErr("rentals.has_open_for_tool", err)
	}
	return exists, nil
}

func (r *rentalRepository) HasOpenRentalForFriend(ctx context.Context, friendID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM rentals WHERE friend_id = $1 AND devolution_timestamp IS NULL)`
	if err := r.db.QueryRowContext(ctx, query, friendID).Scan(&exists); err != nil {
		return false, dataAccessErr("rentals.has_open_for_friend", err)
	}
	return exists, nil
}

func (r *rentalRepository) CountOpenByOwner(ctx context.Context, userID string) (int, error) {
	var count int
	query := `
		SELECT COUNT(r.id)
		FROM rentals r
		JOIN tools t ON t.id = r.tool_id
		WHERE t.user_id = $1 AND r.devolution_timestamp IS NULL`
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, dataAccessErr("rentals.count_open_by_owner", err)
	}
	return count, nil
}

func (r *rentalRepository) ListByOwner(ctx context.Context, userID string) ([]domain.RentalHistoryEntry, error) {
	query := `
		SELECT
			r.id, r.rental_timestamp, r.devolution_timestamp, r.friend_id, r.tool_id,
			t.brand, t.name, f.name
		FROM rentals r
		JOIN tools t ON t.id = r.tool_id
		JOIN friends f ON f.id = r.friend_id
		WHERE t.user_id = $1
		ORDER BY r.rental_timestamp DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, dataAccessErr("rentals.list_by_owner", err)
	}
	defer rows.Close()

	var entries []domain.RentalHistoryEntry
	for rows.Next() {
		var (
			e          domain.RentalHistoryEntry
			returnedAt sql.NullTime
		)
		err := rows.Scan(
			&e.Rental.ID, &e.Rental.RentalTimestamp, &returnedAt,
			&e.Rental.FriendID, &e.Rental.ToolID,
			&e.ToolBrand, &e.ToolName, &e.FriendName,
		)
		if err != nil {
			return nil, dataAccessErr("rentals.list_by_owner", err)
		}
		if returnedAt.Valid {
			ts := returnedAt.Time
			e.Rental.DevolutionTimestamp = &ts
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, dataAccessErr("rentals.list_by_owner", err)
	}
	return entries, nil
}

// RankFriendsByOwner aggregates open and all-time loan counts per friend in
// a single query. Ordering is all-time count descending with name ascending
// as the tie-break, so the displayed rank is reproducible. Positions are
// assigned after the sort.
func (r *rentalRepository) RankFriendsByOwner(ctx context.Context, userID string) ([]domain.FriendRankEntry, error) {
	query := `
		SELECT
			f.name,
			f.social_security,
			COUNT(r.id) FILTER (WHERE r.devolution_timestamp IS NULL) AS open_count,
			COUNT(r.id) AS all_time_count
		FROM friends f
		LEFT JOIN rentals r ON r.friend_id = f.id
		WHERE f.user_id = $1
		GROUP BY f.id, f.name, f.social_security
		ORDER BY all_time_count DESC, f.name ASC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, dataAccessErr("rentals.rank_friends", err)
	}
	defer rows.Close()

	var entries []domain.FriendRankEntry
	for rows.Next() {
		var e domain.FriendRankEntry
		if err := rows.Scan(&e.Name, &e.SocialSecurity, &e.OpenCount, &e.AllTimeCount); err != nil {
			return nil, dataAccessErr("rentals.rank_friends", err)
		}
		e.Position = len(entries) + 1
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, dataAccessErr("rentals.rank_friends", err)
	}
	return entries, nil
}
