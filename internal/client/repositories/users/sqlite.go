package users

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/orwel/orwel-cli/internal/client/models"
	"github.com/orwel/orwel-cli/internal/dbx"
	"github.com/orwel/orwel-cli/internal/shared"
)

// SQLiteRepository implements Repository over a *sql.DB opened by
// internal/client/store.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a SQLiteRepository bound to db.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// SaveUser upserts by email. On conflict every mutable field is overwritten,
// except that an empty incoming password keeps the stored secret (remote
// fetches of a profile never carry the password). Non-empty secrets are
// stored as bcrypt hashes.
func (r *SQLiteRepository) SaveUser(ctx context.Context, u *models.User) error {
	secret := u.Password
	if secret != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("%w: hashing secret: %v", shared.ErrLocalStore, err)
		}
		secret = string(hash)
	}

	query := `INSERT INTO users (username, email, password, first_name, last_name, occupation, has_stocks)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(email) DO UPDATE SET
			username = excluded.username,
			password = CASE WHEN excluded.password = '' THEN users.password ELSE excluded.password END,
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			occupation = excluded.occupation,
			has_stocks = excluded.has_stocks
	`
	_, err := r.db.ExecContext(ctx, query,
		u.Username, u.Email, secret, u.FirstName, u.LastName, u.Occupation, boolToInt(u.HasStocks))
	if err != nil {
		return fmt.Errorf("%w: upsert user: %v", shared.ErrLocalStore, err)
	}
	return nil
}

// SaveTags replaces the user's tag set in one transaction: delete all rows,
// then insert the provided set. Blank entries are dropped.
func (r *SQLiteRepository) SaveTags(ctx context.Context, email string, tags []string) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		userID, err := userIDByEmail(ctx, tx, email)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM commodity_tags WHERE user_id = ?`, userID); err != nil {
			return err
		}

		for _, tag := range tags {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO commodity_tags (user_id, tag_name) VALUES (?, ?)`, userID, tag); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: save tags: %v", shared.ErrLocalStore, err)
	}
	return nil
}

// UserByEmail returns the cached user with their tag set hydrated.
func (r *SQLiteRepository) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.userByColumn(ctx, "email", email)
}

// UserByUsername returns the cached user with their tag set hydrated.
func (r *SQLiteRepository) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.userByColumn(ctx, "username", username)
}

func (r *SQLiteRepository) userByColumn(ctx context.Context, column, value string) (*models.User, error) {
	query := fmt.Sprintf(
		`SELECT id, username, email, first_name, last_name, occupation, has_stocks FROM users WHERE %s = ?`, column)
	row := r.db.QueryRowContext(ctx, query, value)

	u := &models.User{}
	var hasStocks int
	var firstName, lastName, occupation sql.NullString
	err := row.Scan(&u.ID, &u.Username, &u.Email, &firstName, &lastName, &occupation, &hasStocks)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: select user: %v", shared.ErrLocalStore, err)
	}
	u.FirstName = firstName.String
	u.LastName = lastName.String
	u.Occupation = occupation.String
	u.HasStocks = hasStocks == 1

	tags, err := r.tagsByUserID(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	u.CommodityTags = tags

	return u, nil
}

func (r *SQLiteRepository) tagsByUserID(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT tag_name FROM commodity_tags WHERE user_id = ? ORDER BY tag_name`, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: select tags: %v", shared.ErrLocalStore, err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("%w: scan tag: %v", shared.ErrLocalStore, err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate tags: %v", shared.ErrLocalStore, err)
	}
	return tags, nil
}

// SaveToken stores the last bearer token for the user.
func (r *SQLiteRepository) SaveToken(ctx context.Context, email, token string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET jwt_token = ? WHERE email = ?`, token, email)
	if err != nil {
		return fmt.Errorf("%w: save token: %v", shared.ErrLocalStore, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// VerifySecret compares secret against the stored credential. Hashed rows
// use bcrypt; legacy plain-text rows fall back to a constant-time equality
// check.
func (r *SQLiteRepository) VerifySecret(ctx context.Context, email, secret string) (bool, error) {
	var stored string
	err := r.db.QueryRowContext(ctx, `SELECT password FROM users WHERE email = ?`, email).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return false, shared.ErrNotFound
	}
	if err != nil {
		return false, fmt.Errorf("%w: select secret: %v", shared.ErrLocalStore, err)
	}

	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(secret)) == nil, nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(secret)) == 1, nil
}

func userIDByEmail(ctx context.Context, tx dbx.DBTX, email string) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, `SELECT id FROM users WHERE email = ?`, email).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, shared.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
