// Package sqlitestore implements store.Store on a local SQLite file.
//
// Timestamps are stored as Unix microseconds so range predicates compare
// integers and every year from 1 to 9999 fits. Substring predicates use
// LIKE over both sides passed through fold, a Go lower-casing function
// registered on each connection, so matching ignores case for all
// letters and not only ASCII.
package sqlitestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/idilsaglam/worklog/internal/clock"
	"github.com/idilsaglam/worklog/internal/model"
	"github.com/idilsaglam/worklog/internal/store"
)

// AUTOINCREMENT keeps deleted ids from being handed out again.
const schema = `
CREATE TABLE IF NOT EXISTS task (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	employee   TEXT    NOT NULL,
	duration   INTEGER NOT NULL CHECK (duration >= 1),
	title      TEXT    NOT NULL,
	notes      TEXT    NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS task_employee ON task (employee);
CREATE INDEX IF NOT EXISTS task_created_at ON task (created_at);
`

const taskColumns = "id, employee, duration, title, notes, created_at"

// Config holds the parameters for opening a Store.
type Config struct {
	// Path is the database file. Its parent directory must exist.
	Path string

	// PoolSize defaults to 2. One interactive session needs one
	// connection; the second keeps an export from blocking behind it.
	PoolSize int

	// Clock stamps created_at when the caller leaves it zero.
	// Defaults to clock.Real().
	Clock clock.Clock

	// Logger defaults to a discarding logger.
	Logger *slog.Logger
}

// Store is a SQLite-backed store.Store.
type Store struct {
	pool   *pool
	clock  clock.Clock
	logger *slog.Logger
}

var _ store.Store = (*Store)(nil)

// Open opens (creating if needed) the database at cfg.Path and makes sure
// the task table exists before returning.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlitestore: Path is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.Real()
	}
	size := cfg.PoolSize
	if size <= 0 {
		size = 2
	}

	p, err := openPool(cfg.Path, size, logger)
	if err != nil {
		return nil, err
	}

	// Connections are prepared lazily; take one now so a broken file or
	// schema fails at startup instead of at the first prompt.
	conn, err := p.take(ctx)
	if err != nil {
		p.close()
		return nil, err
	}
	p.put(conn)

	return &Store{pool: p, clock: clk, logger: logger}, nil
}

// Close closes the underlying pool.
func (s *Store) Close() error {
	return s.pool.close()
}

// Create inserts t and returns its new id. A zero CreatedAt is stamped
// from the store's clock.
func (s *Store) Create(ctx context.Context, t model.NewTask) (int64, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	created := t.CreatedAt
	if created.IsZero() {
		created = s.clock.Now()
	}

	conn, err := s.pool.take(ctx)
	if err != nil {
		return 0, err
	}
	defer s.pool.put(conn)

	err = sqlitex.Execute(conn,
		"INSERT INTO task (employee, duration, title, notes, created_at) VALUES (?, ?, ?, ?, ?)",
		&sqlitex.ExecOptions{
			Args: []any{t.Employee, int64(t.Duration), t.Title, t.Notes, created.UnixMicro()},
		})
	if err != nil {
		return 0, fmt.Errorf("sqlitestore: insert task: %w", err)
	}
	return conn.LastInsertRowID(), nil
}

// Get returns the task with id, or store.ErrNotFound.
func (s *Store) Get(ctx context.Context, id int64) (model.Task, error) {
	tasks, err := s.query(ctx, "SELECT "+taskColumns+" FROM task WHERE id = ?", []any{id})
	if err != nil {
		return model.Task{}, err
	}
	if len(tasks) == 0 {
		return model.Task{}, fmt.Errorf("task %d: %w", id, store.ErrNotFound)
	}
	return tasks[0], nil
}

// Update applies u to the task with the given id. An id that no longer
// exists is reported as store.ErrNotFound.
func (s *Store) Update(ctx context.Context, id int64, u model.Update) error {
	if u.IsEmpty() {
		return nil
	}
	if err := u.Validate(); err != nil {
		return err
	}

	var sets []string
	var args []any
	if u.Employee != nil {
		sets = append(sets, "employee = ?")
		args = append(args, *u.Employee)
	}
	if u.Duration != nil {
		sets = append(sets, "duration = ?")
		args = append(args, int64(*u.Duration))
	}
	if u.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *u.Title)
	}
	if u.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *u.Notes)
	}
	if u.CreatedAt != nil {
		sets = append(sets, "created_at = ?")
		args = append(args, u.CreatedAt.UnixMicro())
	}
	args = append(args, id)

	conn, err := s.pool.take(ctx)
	if err != nil {
		return err
	}
	defer s.pool.put(conn)

	query := "UPDATE task SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{Args: args}); err != nil {
		return fmt.Errorf("sqlitestore: update task %d: %w", id, err)
	}
	if conn.Changes() == 0 {
		return fmt.Errorf("task %d: %w", id, store.ErrNotFound)
	}
	return nil
}

// Delete removes the task with id, or reports store.ErrNotFound.
func (s *Store) Delete(ctx context.Context, id int64) error {
	conn, err := s.pool.take(ctx)
	if err != nil {
		return err
	}
	defer s.pool.put(conn)

	err = sqlitex.Execute(conn, "DELETE FROM task WHERE id = ?", &sqlitex.ExecOptions{Args: []any{id}})
	if err != nil {
		return fmt.Errorf("sqlitestore: delete task %d: %w", id, err)
	}
	if conn.Changes() == 0 {
		return fmt.Errorf("task %d: %w", id, store.ErrNotFound)
	}
	return nil
}

func (s *Store) All(ctx context.Context) ([]model.Task, error) {
	return s.Select(ctx)
}

// Employees returns distinct employee names matching preds, ordered by
// the first task logged under each name.
func (s *Store) Employees(ctx context.Context, preds ...store.Predicate) ([]string, error) {
	where, args, err := whereClause(preds)
	if err != nil {
		return nil, err
	}

	conn, err := s.pool.take(ctx)
	if err != nil {
		return nil, err
	}
	defer s.pool.put(conn)

	var names []string
	err = sqlitex.Execute(conn,
		"SELECT employee FROM task"+where+" GROUP BY employee ORDER BY MIN(id)",
		&sqlitex.ExecOptions{
			Args: args,
			ResultFunc: func(stmt *sqlite.Stmt) error {
				names = append(names, stmt.ColumnText(0))
				return nil
			},
		})
	if err != nil {
		return nil, fmt.Errorf("sqlitestore: select employees: %w", err)
	}
	return names, nil
}

// Select returns the tasks matching every predicate in insertion order.
func (s *Store) Select(ctx context.Context, preds ...store.Predicate) ([]model.Task, error) {
	where, args, err := whereClause(preds)
	if err != nil {
		return nil, err
	}
	return s.query(ctx, "SELECT "+taskColumns+" FROM task"+where+" ORDER BY id", args)
}

// Count returns the number of stored tasks.
func (s *Store) Count(ctx context.Context) (int, error) {
	conn, err := s.pool.take(ctx)
	if err != nil {
		return 0, err
	}
	defer s.pool.put(conn)

	var n int
	err = sqlitex.Execute(conn, "SELECT COUNT(*) FROM task", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			n = stmt.ColumnInt(0)
			return nil
		},
	})
	if err != nil {
		return 0, fmt.Errorf("sqlitestore: count tasks: %w", err)
	}
	return n, nil
}

func (s *Store) query(ctx context.Context, query string, args []any) ([]model.Task, error) {
	conn, err := s.pool.take(ctx)
	if err != nil {
		return nil, err
	}
	defer s.pool.put(conn)

	var tasks []model.Task
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			tasks = append(tasks, scanTask(stmt))
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("sqlitestore: query tasks: %w", err)
	}
	return tasks, nil
}

func scanTask(stmt *sqlite.Stmt) model.Task {
	return model.Task{
		ID:        stmt.ColumnInt64(0),
		Employee:  stmt.ColumnText(1),
		Duration:  stmt.ColumnInt(2),
		Title:     stmt.ColumnText(3),
		Notes:     stmt.ColumnText(4),
		CreatedAt: time.UnixMicro(stmt.ColumnInt64(5)),
	}
}

func whereClause(preds []store.Predicate) (string, []any, error) {
	var conditions []string
	var args []any
	for _, p := range preds {
		switch p.Op {
		case store.OpEmployeeEquals:
			conditions = append(conditions, "employee = ?")
			args = append(args, p.Text)
		case store.OpEmployeeContains:
			conditions = append(conditions, `fold(employee) LIKE fold(?) ESCAPE '\'`)
			args = append(args, likePattern(p.Text))
		case store.OpDurationEquals:
			conditions = append(conditions, "duration = ?")
			args = append(args, int64(p.Number))
		case store.OpKeyword:
			conditions = append(conditions, `(fold(title) LIKE fold(?) ESCAPE '\' OR fold(notes) LIKE fold(?) ESCAPE '\')`)
			pattern := likePattern(p.Text)
			args = append(args, pattern, pattern)
		case store.OpCreatedBetween:
			conditions = append(conditions, "created_at BETWEEN ? AND ?")
			args = append(args, p.From.UnixMicro(), p.To.UnixMicro())
		default:
			return "", nil, fmt.Errorf("sqlitestore: unknown predicate op %d", p.Op)
		}
	}
	if len(conditions) == 0 {
		return "", nil, nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps s for a "contains" match with LIKE metacharacters
// taken literally.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
