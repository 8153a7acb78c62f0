package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/parasearch/internal/client/migrations"
	"github.com/dmitrijs2005/parasearch/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/parasearch/internal/dbx"

	_ "modernc.org/sqlite"
)

// OpenDatabase opens (creating if needed) the SQLite file at dsn and applies
// the embedded migrations.
func OpenDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	// a single connection keeps ":memory:" databases coherent and serialises writes
	db.SetMaxOpenConns(1)

	if err := migrations.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// SQLiteStore keeps the credential in the metadata table.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

func (s *SQLiteStore) Get(ctx context.Context) (string, bool, error) {
	v, found, err := metadata.NewSQLiteRepository(s.db).Get(ctx, keyAccessToken)
	if err != nil {
		return "", false, err
	}
	if !found || len(v) == 0 {
		return "", false, nil
	}
	return string(v), true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	savedAt := s.now().UTC().Format(time.RFC3339)

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyAccessToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, keySavedAt, []byte(savedAt))
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, keyAccessToken, keySavedAt)
	})
}

func (s *SQLiteStore) Load(ctx context.Context) (Credential, bool, error) {
	token, found, err := s.Get(ctx)
	if err != nil || !found {
		return Credential{}, found, err
	}

	c := Credential{Token: token}

	raw, ok, err := metadata.NewSQLiteRepository(s.db).Get(ctx, keySavedAt)
	if err != nil {
		return Credential{}, false, err
	}
	if ok {
		// a malformed timestamp only loses the display value
		if t, perr := time.Parse(time.RFC3339, string(raw)); perr == nil {
			c.SavedAt = t
		}
	}
	return c, true, nil
}
