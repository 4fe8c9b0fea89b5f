package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dashivam06/corerouter/internal/auth/domain"
)

// DB is the subset of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

var _ domain.UserRepository = (*PostgresRepository)(nil)

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, full_name, password_hash, profile_image, email_subscribed, status, role, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, email)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, email, full_name, password_hash, profile_image, email_subscribed, status, role, created_at, updated_at
		FROM users
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.FullName, &user.PasswordHash, &user.ProfileImage,
		&user.EmailSubscribed, &user.Status, &user.Role, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, email, full_name, password_hash, profile_image, email_subscribed, status, role, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `, user.ID, user.Email, user.FullName, user.PasswordHash, user.ProfileImage,
		user.EmailSubscribed, user.Status, user.Role, user.CreatedAt, user.UpdatedAt)

	return err
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1
	`, userID, passwordHash)

	return err
}

func (r *PostgresRepository) StoreUserToken(ctx context.Context, token *domain.UserToken) error {
	query := `INSERT INTO user_tokens (id, user_id, token_type, token_value, issued_at, expires_at, revoked)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		token.ID, token.UserID, token.Type, token.Value, token.IssuedAt, token.ExpiresAt, token.Revoked)

	return err
}

func (r *PostgresRepository) GetUserTokenByValue(ctx context.Context, value string) (*domain.UserToken, error) {
	query := `
		SELECT id, user_id, token_type, token_value, issued_at, expires_at, revoked
		FROM user_tokens
		WHERE token_value = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, value)

	var token domain.UserToken
	err := row.Scan(&token.ID, &token.UserID, &token.Type, &token.Value,
		&token.IssuedAt, &token.ExpiresAt, &token.Revoked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user token: %w", err)
	}

	return &token, nil
}

// Ledger rows are never deleted; revocation is the only mutation.
func (r *PostgresRepository) RevokeUserToken(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE user_tokens SET revoked = TRUE WHERE id = $1
	`, id)

	return err
}
