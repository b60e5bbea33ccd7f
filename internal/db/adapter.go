package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrConstraint is the normalized unique-constraint violation. Both adapters
// translate their driver's duplicate-key error into it so callers never
// branch on the dialect.
var ErrConstraint = errors.New("constraint_violation")

// QueryAdapter presents one logical query surface regardless of the SQL
// dialect behind it. All queries are written with `?` placeholders (the MySQL
// convention); the Postgres adapter rewrites them to $1..$N before execution.
type QueryAdapter interface {
	Exec(ctx context.Context, query string, args ...any) (sql.Result, error)
	Query(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) *sql.Row

	// InsertIgnore builds the dialect's duplicate-tolerant insert for the
	// given table. conflictCols name the unique key the insert may collide
	// on (Postgres needs an explicit conflict target).
	InsertIgnore(table string, columns []string, conflictCols []string) string

	Dialect() string
	DB() *sql.DB
}

// --------------------------------------------------
// MySQL (local development)
// --------------------------------------------------

type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (a *MySQLAdapter) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := a.db.ExecContext(ctx, query, args...)
	return res, normalizeMySQLErr(err)
}

func (a *MySQLAdapter) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := a.db.QueryContext(ctx, query, args...)
	return rows, normalizeMySQLErr(err)
}

func (a *MySQLAdapter) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return a.db.QueryRowContext(ctx, query, args...)
}

func (a *MySQLAdapter) InsertIgnore(table string, columns []string, _ []string) string {
	return fmt.Sprintf(
		"INSERT IGNORE INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(columns, ", "),
		placeholders(len(columns)),
	)
}

func (a *MySQLAdapter) Dialect() string { return "mysql" }
func (a *MySQLAdapter) DB() *sql.DB     { return a.db }

func normalizeMySQLErr(err error) error {
	if err == nil {
		return nil
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	}
	return err
}

// --------------------------------------------------
// Postgres (hosted)
// --------------------------------------------------

type PostgresAdapter struct {
	db *sql.DB
}

func NewPostgresAdapter(db *sql.DB) *PostgresAdapter {
	return &PostgresAdapter{db: db}
}

func (a *PostgresAdapter) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := a.db.ExecContext(ctx, RewritePlaceholders(query), args...)
	return res, normalizePgErr(err)
}

func (a *PostgresAdapter) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := a.db.QueryContext(ctx, RewritePlaceholders(query), args...)
	return rows, normalizePgErr(err)
}

func (a *PostgresAdapter) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return a.db.QueryRowContext(ctx, RewritePlaceholders(query), args...)
}

func (a *PostgresAdapter) InsertIgnore(table string, columns []string, conflictCols []string) string {
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO NOTHING",
		table,
		strings.Join(columns, ", "),
		placeholders(len(columns)),
		strings.Join(conflictCols, ", "),
	)
}

func (a *PostgresAdapter) Dialect() string { return "postgres" }
func (a *PostgresAdapter) DB() *sql.DB     { return a.db }

func normalizePgErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	}
	return err
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

// RewritePlaceholders converts `?` markers to numbered $1..$N parameters,
// preserving order and count. Markers inside single-quoted literals are left
// alone.
func RewritePlaceholders(query string) string {
	if !strings.Contains(query, "?") {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	inLiteral := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inLiteral = !inLiteral
			b.WriteByte(c)
		case c == '?' && !inLiteral:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
