package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"kamion-client/internal/platform/obs"
	"strings"
	"time"
)

// SQLSessionStore is a SQL-backed map from bearer token to user id.
type SQLSessionStore struct {
	DB  *sql.DB
	Now func() time.Time
}

func NewSQLSessionStore(db *sql.DB) *SQLSessionStore {
	return &SQLSessionStore{DB: db, Now: time.Now}
}

// Store a token for userID, replacing any previous owner of the token.
func (s *SQLSessionStore) Put(ctx context.Context, token string, userID int) (err error) {
	defer obs.Time(ctx, "sessions.Put")(&err)

	if s.DB == nil {
		return errors.New("session store: db is nil")
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("insert session: token must not be empty")
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO sessions (token, user_id, created_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (token) DO UPDATE
	SET user_id = EXCLUDED.user_id,
		created_at = EXCLUDED.created_at;
	`, token, userID, s.Now().Unix())
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	return nil
}

// Lookup returns the user id owning token, or ok=false.
func (s *SQLSessionStore) Lookup(ctx context.Context, token string) (_ int, _ bool, err error) {
	defer obs.Time(ctx, "sessions.Lookup")(&err)

	if s.DB == nil {
		return 0, false, errors.New("session store: db is nil")
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return 0, false, nil
	}

	var userID int
	err = s.DB.QueryRowContext(ctx,
		`SELECT user_id FROM sessions WHERE token = $1;`, token,
	).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get session: query sessions table: %w", err)
	}

	return userID, true, nil
}
