package sqlitestore

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// pool is a fixed-size set of SQLite connections, each prepared with the
// standard pragmas and the task schema. Connections are not safe for
// concurrent use; take one, use it, put it back.
type pool struct {
	inner  *sqlitex.Pool
	logger *slog.Logger
	path   string
}

var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA synchronous=NORMAL",
	"PRAGMA busy_timeout=5000",
	"PRAGMA foreign_keys=OFF",
	"PRAGMA temp_store=MEMORY",
}

func openPool(path string, size int, logger *slog.Logger) (*pool, error) {
	inner, err := sqlitex.NewPool(path, sqlitex.PoolOptions{
		PoolSize:    size,
		PrepareConn: prepareConnection,
	})
	if err != nil {
		return nil, fmt.Errorf("sqlitestore: opening %s: %w", path, err)
	}
	logger.Info("sqlite pool opened", "path", path, "pool_size", size)
	return &pool{inner: inner, logger: logger, path: path}, nil
}

func (p *pool) take(ctx context.Context) (*sqlite.Conn, error) {
	conn, err := p.inner.Take(ctx)
	if err != nil {
		return nil, fmt.Errorf("sqlitestore: take: %w", err)
	}
	return conn, nil
}

func (p *pool) put(conn *sqlite.Conn) { p.inner.Put(conn) }

// close blocks until every borrowed connection is returned.
func (p *pool) close() error {
	if err := p.inner.Close(); err != nil {
		p.logger.Error("sqlite pool close error", "path", p.path, "error", err)
		return fmt.Errorf("sqlitestore: closing %s: %w", p.path, err)
	}
	p.logger.Info("sqlite pool closed", "path", p.path)
	return nil
}

// prepareConnection runs once per connection, on first use.
func prepareConnection(conn *sqlite.Conn) error {
	for _, pragma := range pragmas {
		if err := sqlitex.ExecuteTransient(conn, pragma, nil); err != nil {
			return fmt.Errorf("sqlitestore: %s: %w", pragma, err)
		}
	}
	if err := conn.CreateFunction("fold", foldFunction); err != nil {
		return fmt.Errorf("sqlitestore: register fold: %w", err)
	}
	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		return fmt.Errorf("sqlitestore: schema: %w", err)
	}
	return nil
}

// foldFunction lower-cases its text argument with Go's Unicode tables.
// SQLite's own lower() and LIKE only fold ASCII.
var foldFunction = &sqlite.FunctionImpl{
	NArgs:         1,
	Deterministic: true,
	Scalar: func(ctx sqlite.Context, args []sqlite.Value) (sqlite.Value, error) {
		if args[0].Type() == sqlite.TypeNull {
			return sqlite.Value{}, nil
		}
		return sqlite.TextValue(strings.ToLower(args[0].Text())), nil
	},
}
