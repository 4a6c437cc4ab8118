package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/repository"
)

type toolRepository struct {
	db *sql.DB
}

func NewToolRepository(db *sql.DB) repository.ToolRepository {
	return &toolRepository{db: db}
}

// toolJoinColumns is the projection shared by GetByID and ListByUser: the
// tool row, its open rental (if any) and the friend holding it. The join
// predicate includes devolution_timestamp IS NULL, so at most one rental
// row matches per tool.
const toolJoinColumns = `
	t.id, t.brand, t.name, t.cost, t.user_id,
	r.id, r.rental_timestamp, r.devolution_timestamp,
	f.id, f.name, f.phone, f.social_security
`

const toolJoinFrom = `
	FROM tools t
	LEFT JOIN rentals r ON r.tool_id = t.id AND r.devolution_timestamp IS NULL
	LEFT JOIN friends f ON f.id = r.friend_id
`

func (r *toolRepository) Create(ctx context.Context, brand, name string, cost decimal.Decimal, userID string) (*domain.Tool, error) {
	id := uuid.NewString()
	query := `INSERT INTO tools (id, brand, name, cost, user_id) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(ctx, query, id, brand, name, cost, userID); err != nil {
		return nil, dataAccessErr("tools.create", err)
	}
	return &domain.Tool{ID: id, Brand: brand, Name: name, Cost: cost, UserID: userID}, nil
}

func (r *toolRepository) GetByID(ctx context.Context, id string) (*domain.Tool, error) {
	query := `SELECT ` + toolJoinColumns + toolJoinFrom + ` WHERE t.id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	tool, err := scanJoinedTool(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dataAccessErr("tools.get_by_id", err)
	}
	return tool, nil
}

func (r *toolRepository) ListByUser(ctx context.Context, userID string, rentedOnly bool) ([]domain.Tool, error) {
	query := `SELECT ` + toolJoinColumns + toolJoinFrom + ` WHERE t.user_id = $1`
	if rentedOnly {
		query += ` AND r.id IS NOT NULL`
	}
	query += ` ORDER BY t.name ASC, t.brand ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, dataAccessErr("tools.list_by_user", err)
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		tool, err := scanJoinedTool(rows)
		if err != nil {
			return nil, dataAccessErr("tools.list_by_user", err)
		}
		tools = append(tools, *tool)
	}
	if err := rows.Err(); err != nil {
		return nil, dataAccessErr("tools.list_by_user", err)
	}
	return tools, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanJoinedTool maps one flat joined row into a tool with an optional
// current rental. An open rental without a matching friend is a
// data-integrity failure, never silently dropped.
func scanJoinedTool(row rowScanner) (*domain.Tool, error) {
	var (
		t               domain.Tool
		rentalID        sql.NullString
		rentedAt        sql.NullTime
		returnedAt      sql.NullTime
		friendID        sql.NullString
		friendName      sql.NullString
		friendPhone     sql.NullString
		friendSocialSec sql.NullString
	)

	err := row.Scan(
		&t.ID, &t.Brand, &t.Name, &t.Cost, &t.UserID,
		&rentalID, &rentedAt, &returnedAt,
		&friendID, &friendName, &friendPhone, &friendSocialSec,
	)
	if err != nil {
		return nil, err
	}

	if !rentalID.Valid {
		return &t, nil
	}
	if !friendID.Valid {
		return nil, fmt.Errorf("open rental %s for tool %s has no friend row", rentalID.String, t.ID)
	}

	rental := &domain.Rental{
		ID:              rentalID.String,
		RentalTimestamp: rentedAt.Time,
		FriendID:        friendID.String,
		ToolID:          t.ID,
		Friend: &domain.Friend{
			ID:             friendID.String,
			Name:           friendName.String,
			Phone:          friendPhone.String,
			SocialSecurity: friendSocialSec.String,
			UserID:         t.UserID,
		},
	}
	if returnedAt.Valid {
		ts := returnedAt.Time
		rental.DevolutionTimestamp = &ts
	}
	t.CurrentRental = rental
	return &t, nil
}

func (r *toolRepository) ExistsByNameAndBrand(ctx context.Context, userID, name, brand string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM tools WHERE user_id = $1 AND name = $2 AND brand = $3)`
	if err := r.db.QueryRowContext(ctx, query, userID, name, brand).Scan(&exists); err != nil {
		return false, dataAccessErr("tools.exists_by_name_and_brand", err)
	}
	return exists, nil
}

func (r *toolRepository) Update(ctx context.Context, id, brand, name string, cost decimal.Decimal) (int64, error) {
	query := `UPDATE tools SET brand = $1, name = $2, cost = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, brand, name, cost, id)
	if err != nil {
		return 0, dataAccessErr("tools.update", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, dataAccessErr("tools.update", err)
	}
	return affected, nil
}

// Delete removes the tool row; rental history cascades at the store.
func (r *toolRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tools WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return dataAccessErr("tools.delete", err)
	}
	return nil
}

func (r *toolRepository) CountAndSumCostByUser(ctx context.Context, userID string) (int, decimal.Decimal, error) {
	var (
		count int
		sum   decimal.NullDecimal
	)
	query := `SELECT COUNT(id), SUM(cost) FROM tools WHERE user_id = $1`
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&count, &sum); err != nil {
		return 0, decimal.Zero, dataAccessErr("tools.count_and_sum_cost", err)
	}
	if !sum.Valid {
		return count, decimal.Zero, nil
	}
	return count, sum.Decimal, nil
}
