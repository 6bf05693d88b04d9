package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rideloop/ride-wallet/internal/logger"
	"github.com/rideloop/ride-wallet/internal/models"
)

// UserMemoryRepository keeps user accounts in memory for demo mode. It
// implements both the read and write sides consumed by the auth service.
type UserMemoryRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.UserDB
}

func NewUserMemoryRepository() *UserMemoryRepository {
	return &UserMemoryRepository{users: make(map[uuid.UUID]*models.UserDB)}
}

func (r *UserMemoryRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if username != nil && u.Username != *username {
			continue
		}
		if email != nil && u.Email != *email {
			continue
		}
		found := *u
		return &found, nil
	}
	return nil, nil
}

func (r *UserMemoryRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	found := *u
	return &found, nil
}

func (r *UserMemoryRepository) Save(ctx context.Context, user models.UserDB) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	r.users[user.UserID] = &user

	logger.Log.Infow("user saved", "user_id", user.UserID, "username", user.Username)
	return nil
}

// UserReadRepository reads user accounts from Postgres.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, name, phone, avatar,
		       is_driver, is_verified, rating, created_at, updated_at
		FROM users
		WHERE ($1::VARCHAR IS NULL OR username = $1)
		  AND ($2::VARCHAR IS NULL OR email = $2)
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, name, phone, avatar,
		       is_driver, is_verified, rating, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository writes user accounts to Postgres.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

func (r *UserWriteRepository) Save(ctx context.Context, user models.UserDB) error {
	query := `
		INSERT INTO users (user_id, username, email, password_hash, name, phone,
		                   avatar, is_driver, is_verified, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		ON CONFLICT (username) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    email = EXCLUDED.email,
		    name = EXCLUDED.name,
		    phone = EXCLUDED.phone,
		    updated_at = NOW()
	`
	args := []any{
		user.UserID, user.Username, user.Email, user.PasswordHash,
		user.Name, user.Phone, user.Avatar,
		user.IsDriver, user.IsVerified, user.Rating,
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{user.UserID, user.Username, user.Email},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
