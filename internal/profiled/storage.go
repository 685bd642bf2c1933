// Package profiled implements the profile backend: a small HTTP API over
// postgres that stores the replicated user profiles the bot pushes.
package profiled

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// ErrExists is returned when inserting a profile for a user that already has
// one.
var ErrExists = errors.New("profile already exists")

const pgUniqueViolation = "23505"

// Record mirrors one row of the profiles table and doubles as the API wire
// format.
type Record struct {
	UserID       int64           `db:"user_id" json:"user_id"`
	DisplayName  string          `db:"display_name" json:"display_name"`
	Language     string          `db:"language" json:"language"`
	Registered   bool            `db:"registered" json:"registered"`
	Balance      decimal.Decimal `db:"balance" json:"balance"`
	TotalTrades  int             `db:"total_trades" json:"total_trades"`
	WinRate      float64         `db:"win_rate" json:"win_rate"`
	Transactions json.RawMessage `db:"transactions" json:"transactions"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

// Storage is the persistence boundary the HTTP server depends on.
type Storage interface {
	// Insert stores a new profile. ErrExists reports a duplicate user id.
	Insert(ctx context.Context, rec Record) error
	// Get returns the profile for a user, or (nil, nil) when absent.
	Get(ctx context.Context, userID int64) (*Record, error)
}

// PostgresStorage persists profiles in the profiles table.
type PostgresStorage struct {
	db *sqlx.DB
}

// NewPostgresStorage wraps an open connection pool.
func NewPostgresStorage(db *sqlx.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

const insertProfile = `
INSERT INTO profiles (user_id, display_name, language, registered, balance,
                      total_trades, win_rate, transactions, created_at)
VALUES (:user_id, :display_name, :language, :registered, :balance,
        :total_trades, :win_rate, :transactions, :created_at)`

const selectProfile = `
SELECT user_id, display_name, language, registered, balance,
       total_trades, win_rate, transactions, created_at
FROM profiles
WHERE user_id = $1`

func (s *PostgresStorage) Insert(ctx context.Context, rec Record) error {
	if rec.Transactions == nil {
		rec.Transactions = json.RawMessage("[]")
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.NamedExecContext(ctx, insertProfile, rec)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
		return ErrExists
	}
	return err
}

func (s *PostgresStorage) Get(ctx context.Context, userID int64) (*Record, error) {
	var rec Record
	err := s.db.GetContext(ctx, &rec, selectProfile, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
