package collector

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var (
	// ErrFailedToParseDBConfig indicates an invalid postgres connection string
	ErrFailedToParseDBConfig = errors.New("collector.invalid_db_config")

	// ErrDatabaseNotReady indicates all connection attempts failed
	ErrDatabaseNotReady = errors.New("collector.database_not_ready")

	// ErrFailedToApplyMigrations indicates the schema could not be migrated
	ErrFailedToApplyMigrations = errors.New("collector.migrations_failed")
)

// PostgresStorage implements Storage on a pgx connection pool. Event
// deduplication happens in the database: inserts conflict on the event id
// and do nothing, so redelivered events are absorbed without bookkeeping.
type PostgresStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresStorage connects to the database with retries and applies the
// embedded schema migrations before returning.
func NewPostgresStorage(ctx context.Context, databaseURL string, retryAttempts int, retryInterval time.Duration) (*PostgresStorage, error) {
	connConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseDBConfig, err)
	}

	var pool *pgxpool.Pool
	for i := range max(retryAttempts, 1) {
		pool, err = pgxpool.NewWithConfig(ctx, connConfig)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				break
			}
			pool.Close()
			pool = nil
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrDatabaseNotReady, ctx.Err())
		case <-time.After(time.Duration(i+1) * retryInterval):
		}
	}
	if pool == nil {
		return nil, errors.Join(ErrDatabaseNotReady, err)
	}

	if err := migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStorage{pool: pool}, nil
}

// migrate applies the embedded goose migrations, bridging the pgx pool to
// the database/sql interface goose expects.
func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer func(db *sql.DB) { _ = db.Close() }(db)

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	return nil
}

// SaveVisit inserts a visit; re-registration of a known token is a no-op.
func (s *PostgresStorage) SaveVisit(ctx context.Context, visit Visit) error {
	if visit.VisitToken == "" {
		return ErrInvalidVisit
	}
	if visit.StartedAt.IsZero() {
		visit.StartedAt = time.Now().UTC()
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO visits (visit_token, visitor_token, platform, landing_page, screen_width, screen_height, referrer, started_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)
		ON CONFLICT (visit_token) DO NOTHING`,
		visit.VisitToken, visit.VisitorToken, visit.Platform, visit.LandingPage,
		visit.ScreenWidth, visit.ScreenHeight, visit.Referrer, visit.StartedAt,
	)
	return err
}

// SaveEvents inserts events one by one, conflicting on id so redelivered
// events are dropped by the database.
func (s *PostgresStorage) SaveEvents(ctx context.Context, events []Event) error {
	for _, event := range events {
		if event.ID == "" || event.Name == "" {
			return ErrInvalidEvent
		}

		properties, err := json.Marshal(event.Properties)
		if err != nil {
			return errors.Join(ErrInvalidEvent, err)
		}

		if _, err := s.pool.Exec(ctx, `
			INSERT INTO events (id, name, properties, occurred_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`,
			event.ID, event.Name, properties, event.OccurredAt(),
		); err != nil {
			return err
		}
	}

	return nil
}

// Close releases the connection pool.
func (s *PostgresStorage) Close() {
	s.pool.Close()
}
