package charsheet

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/charsheet/pkg/pg"
)

const (
	existsEmailQuery   = `SELECT EXISTS (SELECT 1 FROM registered_emails WHERE email = $1)`
	registerEmailQuery = `INSERT INTO registered_emails (email) VALUES ($1)`
)

// pgxConn is the subset of *pgxpool.Pool used by PostgresDirectory.
type pgxConn interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresDirectory keeps registered addresses in the registered_emails table
// created by the db migrations.
type PostgresDirectory struct {
	conn pgxConn
}

func NewPostgresDirectory(conn pgxConn) *PostgresDirectory {
	return &PostgresDirectory{conn: conn}
}

func (d *PostgresDirectory) Exists(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := d.conn.QueryRow(ctx, existsEmailQuery, canonicalEmail(email)).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Register inserts each address. Addresses already present are skipped.
func (d *PostgresDirectory) Register(ctx context.Context, emails ...string) error {
	for _, e := range emails {
		if e = canonicalEmail(e); e == "" {
			continue
		}
		if _, err := d.conn.Exec(ctx, registerEmailQuery, e); err != nil && !pg.IsDuplicateKeyError(err) {
			return err
		}
	}
	return nil
}
