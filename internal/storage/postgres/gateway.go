package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Sathvikar01/Event-Management-System/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Gateway is the thin executor over authoritative storage. Statements issued
// outside a transaction are retried exactly once when the connection is safe to
// retry; inside a transaction no retry is attempted (the transaction is broken).
// The gateway never interprets domain rules.
type Gateway struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

func NewGateway(pool *pgxpool.Pool, log zerolog.Logger) *Gateway {
	return &Gateway{pool: pool, log: log.With().Str("component", "storage").Logger()}
}

func (g *Gateway) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, g.pool, fn)
}

func (g *Gateway) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	tag, err := g.pool.Exec(ctx, sql, args...)
	if err != nil && pgconn.SafeToRetry(err) {
		g.log.Warn().Err(err).Msg("connection lost, retrying statement once")
		tag, err = g.pool.Exec(ctx, sql, args...)
	}
	return tag, classifyConnFailure(err)
}

func (g *Gateway) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	rows, err := g.pool.Query(ctx, sql, args...)
	if err != nil && pgconn.SafeToRetry(err) {
		g.log.Warn().Err(err).Msg("connection lost, retrying query once")
		rows, err = g.pool.Query(ctx, sql, args...)
	}
	return rows, classifyConnFailure(err)
}

// QueryRow defers execution to Scan, where pgx surfaces single-row errors, so
// the row path gets the same retry-once and failure classification as Exec and
// Query.
func (g *Gateway) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return &retryingRow{g: g, ctx: ctx, sql: sql, args: args}
}

type retryingRow struct {
	g    *Gateway
	ctx  context.Context
	sql  string
	args []any
}

func (r *retryingRow) Scan(dest ...any) error {
	err := r.g.pool.QueryRow(r.ctx, r.sql, r.args...).Scan(dest...)
	if err != nil && pgconn.SafeToRetry(err) {
		r.g.log.Warn().Err(err).Msg("connection lost, retrying statement once")
		err = r.g.pool.QueryRow(r.ctx, r.sql, r.args...).Scan(dest...)
	}
	return classifyConnFailure(err)
}

// classifyConnFailure wraps failures where storage never answered in
// ErrStorageUnavailable so callers can fall back to the cached tier. A
// *pgconn.PgError means the server executed the statement and responded;
// pgx.ErrNoRows means it ran and found nothing; context errors belong to the
// caller. Everything else is a transport failure.
func classifyConnFailure(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
}

// CallRoutine invokes a server-side routine by name and scans its single result
// row into dst. A routine that does not exist reports ErrRoutineUnsupported,
// distinct from pgx.ErrNoRows for a routine that executed but returned nothing.
// Routine names are package-internal constants, never caller input.
func (g *Gateway) CallRoutine(ctx context.Context, name string, args []any, dst ...any) error {
	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	sql := fmt.Sprintf("SELECT * FROM %s(%s)", name, strings.Join(placeholders, ", "))

	err := g.QueryRow(ctx, sql, args...).Scan(dst...)
	if isUndefinedRoutine(err) {
		return domain.ErrRoutineUnsupported
	}
	return err
}
