package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domainErrors "github.com/GuiiMoreira/jobah-api/internal/domain/errors"
	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
)

type userRepository struct {
	q querier
}

const userColumns = `id, name, email, password_hash, kind, available_balance, average_rating, total_reviews, created_at`

func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	const query = `INSERT INTO users (id, name, email, password_hash, kind) VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	err := r.q.QueryRow(ctx, query, u.ID, u.Name, u.Email, u.PasswordHash, u.Kind).Scan(&u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1`, email)
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
}

func (r *userRepository) LockByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1 FOR UPDATE`, id)
}

func (r *userRepository) get(ctx context.Context, query string, arg any) (*model.User, error) {
	var u model.User
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Kind,
		&u.AvailableBalance, &u.Rating.Average, &u.Rating.Total, &u.CreatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *userRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating model.RatingAggregate) error {
	const query = `UPDATE users SET average_rating=$1, total_reviews=$2 WHERE id=$3`
	tag, err := r.q.Exec(ctx, query, rating.Average, rating.Total, id)
	if err != nil {
		return fmt.Errorf("update rating: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
