package session

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"
)

const tokensTable = "session_tokens"

// SQLiteStore persiste os tokens em um arquivo SQLite local
type SQLiteStore struct {
	conn *sql.DB
	path string
}

// OpenSQLiteStore abre (ou cria) o banco de sessão no caminho informado
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("erro ao criar diretório da sessão: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir banco da sessão: %w", err)
	}

	// sqlite aceita apenas um escritor por vez
	conn.SetMaxOpenConns(1)

	store := &SQLiteStore{conn: conn, path: path}
	if err := store.initSchema(); err != nil {
		conn.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS session_tokens (
		name TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);`

	if _, err := s.conn.Exec(schema); err != nil {
		return fmt.Errorf("erro ao criar schema da sessão: %w", err)
	}

	return nil
}

// Path devolve o caminho do arquivo do banco
func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := squirrel.
		Select("value").
		From(tokensTable).
		Where(squirrel.Eq{"name": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var value string
	err = s.conn.QueryRowContext(ctx, query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("erro ao ler token %s: %w", key, err)
	}

	return value, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	query, args, err := squirrel.
		Insert(tokensTable).
		Columns("name", "value", "updated_at").
		Values(key, value, time.Now().Unix()).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar token %s: %w", key, err)
	}

	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	query, args, err := squirrel.
		Delete(tokensTable).
		Where(squirrel.Eq{"name": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao remover token %s: %w", key, err)
	}

	return nil
}
