package repositories

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"kamion-client/internal/domain"
	"strings"
)

// SQL-backed implementation of the ShipmentRepository and UserRepository
// ports. Shipments and users are stored as JSON documents keyed by id.
type SQLRepository struct{ DB *sql.DB }

func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

// Return one page of shipments ordered by id plus the unpaged total.
func (s *SQLRepository) ListShipments(
	ctx context.Context,
	filterID int,
	offset int,
	limit int,
) ([]domain.Shipment, int, error) {
	if s.DB == nil {
		return nil, 0, errors.New("sql shipment repository: DB is nil")
	}

	where := ""
	args := []any{}
	if filterID != 0 {
		where = "WHERE id = $1"
		args = append(args, filterID)
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM shipments " + where
	if err := s.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("list shipments: count: %w", err)
	}

	n := len(args)
	query := fmt.Sprintf(`
	SELECT body
	FROM shipments
	%s
	ORDER BY id
	LIMIT $%d OFFSET $%d;
	`, where, n+1, n+2)
	args = append(args, limit, offset)

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list shipments: query shipments table: %w", err)
	}
	defer rows.Close()

	shipments := make([]domain.Shipment, 0, limit)
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, 0, fmt.Errorf("list shipments: scan row: %w", err)
		}
		var sh domain.Shipment
		if err := json.Unmarshal([]byte(body), &sh); err != nil {
			return nil, 0, fmt.Errorf("list shipments: decode body: %w", err)
		}
		shipments = append(shipments, sh)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list shipments: row iteration: %w", err)
	}

	return shipments, total, nil
}

// Authenticate returns the stored user when email and password match.
func (s *SQLRepository) Authenticate(
	ctx context.Context,
	email string,
	password string,
) (domain.AuthUser, bool, error) {
	if s.DB == nil {
		return domain.AuthUser{}, false, errors.New("sql user repository: DB is nil")
	}

	var stored, body string
	err := s.DB.QueryRowContext(ctx,
		`SELECT password, body FROM users WHERE email = $1;`,
		strings.ToLower(strings.TrimSpace(email)),
	).Scan(&stored, &body)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.AuthUser{}, false, nil
	}
	if err != nil {
		return domain.AuthUser{}, false, fmt.Errorf("authenticate: query users table: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		return domain.AuthUser{}, false, nil
	}

	var user domain.AuthUser
	if err := json.Unmarshal([]byte(body), &user); err != nil {
		return domain.AuthUser{}, false, fmt.Errorf("authenticate: decode body: %w", err)
	}
	return user, true, nil
}
