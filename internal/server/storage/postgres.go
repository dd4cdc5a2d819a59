package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lockify/internal/common"
	"github.com/dmitrijs2005/lockify/internal/dbx"
	"github.com/dmitrijs2005/lockify/internal/server/models"
	"github.com/dmitrijs2005/lockify/internal/server/storage/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresSnapshotter stores the snapshot in two tables: users (one row per
// user, ordered by position) and user_counter (a single row).
type PostgresSnapshotter struct {
	db *sql.DB
}

func NewPostgresSnapshotter(db *sql.DB) *PostgresSnapshotter {
	return &PostgresSnapshotter{db: db}
}

// OpenPostgres connects through the pgx stdlib driver and applies migrations.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresSnapshotter, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	p := NewPostgresSnapshotter(db)
	if err := p.RunMigrations(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return p, nil
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func (p *PostgresSnapshotter) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, p.db, ".")
}

func (p *PostgresSnapshotter) Close() error {
	return p.db.Close()
}

func (p *PostgresSnapshotter) Load(ctx context.Context) (*Snapshot, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT id, email, password, role FROM users
		 ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("%w: select users: %v", common.ErrorPersistence, err)
	}
	defer rows.Close()

	s := &Snapshot{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordDigest, &u.Role); err != nil {
			return nil, fmt.Errorf("%w: scan user: %v", common.ErrorPersistence, err)
		}
		s.Users = append(s.Users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate users: %v", common.ErrorPersistence, err)
	}

	err = p.db.QueryRowContext(ctx, `SELECT counter FROM user_counter WHERE singleton`).Scan(&s.Counter)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: select counter: %v", common.ErrorPersistence, err)
	}

	return s, nil
}

// Save rewrites both tables in one transaction.
func (p *PostgresSnapshotter) Save(ctx context.Context, s *Snapshot) error {
	err := dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM users`); err != nil {
			return fmt.Errorf("delete users: %w", err)
		}

		err := dbx.ExecEach(ctx, tx,
			`INSERT INTO users (id, position, email, password, role)
			 VALUES ($1, $2, $3, $4, $5)`,
			len(s.Users), func(i int) []any {
				u := s.Users[i]
				return []any{u.ID, i, u.Email, u.PasswordDigest, u.Role}
			})
		if err != nil {
			return fmt.Errorf("insert users: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO user_counter (singleton, counter) VALUES (TRUE, $1)
			 ON CONFLICT (singleton) DO UPDATE SET counter = EXCLUDED.counter`,
			s.Counter)
		if err != nil {
			return fmt.Errorf("upsert counter: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorPersistence, err)
	}
	return nil
}
