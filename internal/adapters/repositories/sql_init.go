package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"kamion-client/internal/domain"
	"os"
	"strings"
)

// InitSchema creates the stub backend tables. The DDL is portable between
// SQLite and Postgres.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createUsersQuery := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGINT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		body TEXT NOT NULL
	);
	`

	createShipmentsQuery := `
	CREATE TABLE IF NOT EXISTS shipments (
		id BIGINT PRIMARY KEY,
		body TEXT NOT NULL
	);
	`

	createSessionsQuery := `
	CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		user_id BIGINT NOT NULL,
		created_at BIGINT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_sessions_user_id
	ON sessions(user_id);
	`

	statements := []string{
		createUsersQuery,
		createShipmentsQuery,
		createSessionsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// UserSeed is an account for the stub login endpoint.
type UserSeed struct {
	Password string          `json:"password"`
	User     domain.AuthUser `json:"user"`
}

// Seed is the fixture file layout.
type Seed struct {
	Users     []UserSeed        `json:"users"`
	Shipments []domain.Shipment `json:"shipments"`
}

// ReadSeed parses and validates a fixture file.
func ReadSeed(jsonPath string) (*Seed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed: read %q: %w", jsonPath, err)
	}

	var seed Seed
	if err := json.Unmarshal(bytes, &seed); err != nil {
		return nil, fmt.Errorf("seed: parse json: %w", err)
	}

	if err := seed.Validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

func (s *Seed) Validate() error {
	for i, u := range s.Users {
		if u.User.ID <= 0 {
			return fmt.Errorf("seed users: invalid id at index %d: %d", i+1, u.User.ID)
		}
		if strings.TrimSpace(u.User.Email) == "" {
			return fmt.Errorf("seed users: item at index %d: email cannot be empty", i+1)
		}
		if u.Password == "" {
			return fmt.Errorf("seed users: item at index %d: password cannot be empty", i+1)
		}
	}
	for i, sh := range s.Shipments {
		if sh.ID <= 0 {
			return fmt.Errorf("seed shipments: invalid id at index %d: %d", i+1, sh.ID)
		}
	}
	return nil
}

// SeedFromJSON loads the fixture file at jsonPath into db.
func SeedFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	seed, err := ReadSeed(jsonPath)
	if err != nil {
		return err
	}
	return Apply(ctx, db, seed)
}

// Apply upserts every user and shipment of seed in one transaction.
func Apply(ctx context.Context, db *sql.DB, seed *Seed) error {
	if db == nil {
		return errors.New("seed: DB is nil")
	}
	if err := seed.Validate(); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	userStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO users (id, email, password, body)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (id) DO UPDATE
	SET email = EXCLUDED.email,
		password = EXCLUDED.password,
		body = EXCLUDED.body;
	`)
	if err != nil {
		return fmt.Errorf("seed users: prepare insert: %w", err)
	}
	defer userStmt.Close()

	for _, u := range seed.Users {
		body, err := json.Marshal(u.User)
		if err != nil {
			return fmt.Errorf("seed users: encode id=%d: %w", u.User.ID, err)
		}
		email := strings.ToLower(strings.TrimSpace(u.User.Email))
		if _, err := userStmt.ExecContext(ctx, u.User.ID, email, u.Password, string(body)); err != nil {
			return fmt.Errorf("seed users: insert id=%d: %w", u.User.ID, err)
		}
	}

	shipmentStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO shipments (id, body)
	VALUES ($1, $2)
	ON CONFLICT (id) DO UPDATE
	SET body = EXCLUDED.body;
	`)
	if err != nil {
		return fmt.Errorf("seed shipments: prepare insert: %w", err)
	}
	defer shipmentStmt.Close()

	for _, sh := range seed.Shipments {
		body, err := json.Marshal(sh)
		if err != nil {
			return fmt.Errorf("seed shipments: encode id=%d: %w", sh.ID, err)
		}
		if _, err := shipmentStmt.ExecContext(ctx, sh.ID, string(body)); err != nil {
			return fmt.Errorf("seed shipments: insert id=%d: %w", sh.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit tx: %w", err)
	}

	return nil
}
