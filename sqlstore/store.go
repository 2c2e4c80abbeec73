// SPDX-License-Identifier: MIT

package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" driver

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/katalvlaran/fixmat/shape"
	"github.com/katalvlaran/fixmat/traits"
)

const schema = `
create table if not exists matrices (
	name  text    not null primary key,
	kind  text    not null,
	nrows integer not null,
	ncols integer not null
);
create table if not exists cells (
	name  text    not null,
	i     integer not null,
	j     integer not null,
	value         not null,
	primary key (name, i, j)
);`

// Store is a SQLite-backed collection of named matrices.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at dsn, e.g. a file
// path or ":memory:", and ensures the schema exists.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlstore.Open(%s): %w", dsn, err)
	}
	// A single connection keeps ":memory:" databases alive and serializes writers.
	db.SetMaxOpenConns(1)
	if _, err = db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlstore.Open(%s): %w", dsn, err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores src under name, replacing any previous matrix of that name.
// src is read completely before the transaction starts.
func Put[E traits.Number, R, C shape.Dim](ctx context.Context, s *Store, name string, src traits.Reader[E, R, C]) error {
	if name == "" {
		return ErrEmptyName
	}
	staged, err := matrix.CloneMatrix[E, R, C](src)
	if err != nil {
		return fmt.Errorf("sqlstore.Put(%s): %w", name, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlstore.Put(%s): %w", name, err)
	}
	if err = putTx(ctx, tx, name, staged); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("sqlstore.Put(%s): %w", name, err)
	}

	return tx.Commit()
}

func putTx[E traits.Number, R, C shape.Dim](ctx context.Context, tx *sql.Tx, name string, m *matrix.Matrix[E, R, C]) error {
	kind := traits.KindOf[E]()
	if _, err := tx.ExecContext(ctx, `delete from cells where name = ?`, name); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`insert or replace into matrices (name, kind, nrows, ncols) values (?, ?, ?, ?)`,
		name, kind.String(), m.Rows(), m.Cols()); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `insert into cells (name, i, j, value) values (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	m.Do(func(i, j int, v E) bool {
		_, err = stmt.ExecContext(ctx, name, i, j, cellValue(kind, v))
		return err == nil
	})

	return err
}

// cellValue maps an element onto the driver's INTEGER or REAL storage.
func cellValue[E traits.Number](kind traits.Kind, v E) any {
	if kind.IsFloat() {
		return float64(v)
	}

	return int64(v)
}

// Get loads the matrix stored under name as an R×C matrix of E.
//
// Errors:
//   - ErrNotFound when name is unknown.
//   - ErrKindMismatch / ErrDimensionMismatch when the stored header differs.
//   - ErrCorrupt when cells are missing or outside the shape.
func Get[E traits.Number, R, C shape.Dim](ctx context.Context, s *Store, name string) (*matrix.Matrix[E, R, C], error) {
	m, err := matrix.New[E, R, C]()
	if err != nil {
		return nil, err
	}
	kind := traits.KindOf[E]()

	var (
		stored       string
		nrows, ncols int
	)
	err = s.db.QueryRowContext(ctx, `select kind, nrows, ncols from matrices where name = ?`, name).
		Scan(&stored, &nrows, &ncols)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("sqlstore.Get(%s): %w", name, ErrNotFound)
	case err != nil:
		return nil, fmt.Errorf("sqlstore.Get(%s): %w", name, err)
	case stored != kind.String():
		return nil, fmt.Errorf("sqlstore.Get(%s): stored %s, want %s: %w", name, stored, kind, ErrKindMismatch)
	}
	if err = matrix.ValidateSameShape(shape.Shape{Rows: nrows, Cols: ncols}, m.Shape()); err != nil {
		return nil, fmt.Errorf("sqlstore.Get(%s): %w", name, err)
	}

	if err = readCells(ctx, s.db, name, kind, m); err != nil {
		return nil, fmt.Errorf("sqlstore.Get(%s): %w", name, err)
	}

	return m, nil
}

func readCells[E traits.Number, R, C shape.Dim](ctx context.Context, db *sql.DB, name string, kind traits.Kind, m *matrix.Matrix[E, R, C]) error {
	rows, err := db.QueryContext(ctx, `select i, j, value from cells where name = ? order by i, j`, name)
	if err != nil {
		return err
	}
	defer rows.Close()

	var n, i, j int
	for rows.Next() {
		var v E
		if kind.IsFloat() {
			var f float64
			err = rows.Scan(&i, &j, &f)
			v = E(f)
		} else {
			var k int64
			err = rows.Scan(&i, &j, &k)
			v = E(k)
		}
		if err != nil {
			return err
		}
		if err = m.Set(i, j, v); err != nil {
			return fmt.Errorf("cell (%d,%d): %w", i, j, ErrCorrupt)
		}
		n++
	}
	if err = rows.Err(); err != nil {
		return err
	}
	if n != m.Shape().Elements() {
		return fmt.Errorf("%d of %d cells: %w", n, m.Shape().Elements(), ErrCorrupt)
	}

	return nil
}

// Names lists the stored matrix names in ascending order.
func (s *Store) Names(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `select name from matrices order by name`)
	if err != nil {
		return nil, fmt.Errorf("sqlstore.Names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("sqlstore.Names: %w", err)
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// Delete removes the matrix stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlstore.Delete(%s): %w", name, err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `delete from matrices where name = ?`, name)
	if err != nil {
		return fmt.Errorf("sqlstore.Delete(%s): %w", name, err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("sqlstore.Delete(%s): %w", name, err)
	} else if n == 0 {
		return fmt.Errorf("sqlstore.Delete(%s): %w", name, ErrNotFound)
	}
	if _, err = tx.ExecContext(ctx, `delete from cells where name = ?`, name); err != nil {
		return fmt.Errorf("sqlstore.Delete(%s): %w", name, err)
	}

	return tx.Commit()
}
