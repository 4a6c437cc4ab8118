package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/repository"
)

type friendRepository struct {
	db *sql.DB
}

func NewFriendRepository(db *sql.DB) repository.FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) Create(ctx context.Context, name, phone, socialSecurity, userID string) (*domain.Friend, error) {
	id := uuid.NewString()
	query := `INSERT INTO friends (id, name, phone, social_security, user_id) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(ctx, query, id, name, phone, socialSecurity, userID); err != nil {
		return nil, dataAccessErr("friends.create", err)
	}
	return &domain.Friend{
		ID:             id,
		Name:           name,
		Phone:          phone,
		SocialSecurity: socialSecurity,
		UserID:         userID,
	}, nil
}

func (r *friendRepository) GetByID(ctx context.Context, id string) (*domain.Friend, error) {
	f := &domain.Friend{}
	query := `SELECT id, name, phone, social_security, user_id FROM friends WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&f.ID, &f.Name, &f.Phone, &f.SocialSecurity, &f.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dataAccessErr("friends.get_by_id", err)
	}
	return f, nil
}

func (r *friendRepository) ListByUser(ctx context.Context, userID string) ([]domain.Friend, error) {
	query := `SELECT id, name, phone, social_security, user_id FROM friends WHERE user_id = $1 ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, dataAccessErr("friends.list_by_user", err)
	}
	defer rows.Close()

	var friends []domain.Friend
	for rows.Next() {
		var f domain.Friend
		if err := rows.Scan(&f.ID, &f.Name, &f.Phone, &f.SocialSecurity, &f.UserID); err != nil {
			return nil, dataAccessErr("friends.list_by_user", err)
		}
		friends = append(friends, f)
	}
	if err := rows.Err(); err != nil {
		return nil, dataAccessErr("friends.list_by_user", err)
	}
	return friends, nil
}

func (r *friendRepository) Update(ctx context.Context, id, name, phone, socialSecurity string) (int64, error) {
	query := `UPDATE friends SET name = $1, phone = $2, social_security = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, name, phone, socialSecurity, id)
	if err != nil {
		return 0, dataAccessErr("friends.update", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, dataAccessErr("friends.update", err)
	}
	return affected, nil
}

// Delete removes the friend row. Closed rental history goes with it via the
// store's cascade rule; the repository never deletes dependents itself.
func (r *friendRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM friends WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return dataAccessErr("friends.delete", err)
	}
	return nil
}

func (r *friendRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	query := `SELECT COUNT(id) FROM friends WHERE user_id = $1`
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, dataAccessErr("friends.count_by_user", err)
	}
	return count, nil
}
