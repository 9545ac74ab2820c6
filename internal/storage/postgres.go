package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"ledger-service/internal/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresStore keeps documents in a Postgres table, sheets as JSONB.
type PostgresStore struct {
	db *sql.DB

	schemaOnce sync.Once
	schemaErr  error
}

// NewPostgres opens and pings the database behind dsn.
func NewPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir banco de documentos: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("falha ao conectar ao banco de documentos: %w", err)
	}
	s := &PostgresStore{db: db}
	if err := s.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	s.schemaOnce.Do(func() {
		_, err := s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS ledger_documents (
  id TEXT PRIMARY KEY,
  company_id TEXT NOT NULL UNIQUE,
  sheets JSONB NOT NULL DEFAULT '[]'::jsonb,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);
`)
		if err != nil {
			s.schemaErr = fmt.Errorf("falha ao criar tabela de documentos: %w", err)
		}
	})
	return s.schemaErr
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*domain.Document, error) {
	var (
		doc    domain.Document
		sheets []byte
	)
	if err := row.Scan(&doc.ID, &doc.CompanyID, &sheets, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("falha ao ler documento: %w", err)
	}
	if err := json.Unmarshal(sheets, &doc.Sheets); err != nil {
		return nil, fmt.Errorf("planilhas do documento %s corrompidas: %w", doc.ID, err)
	}
	return &doc, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (*domain.Document, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, company_id, sheets, created_at, updated_at
FROM ledger_documents WHERE id = $1`, strings.TrimSpace(id))
	return scanDocument(row)
}

func (s *PostgresStore) GetByCompany(ctx context.Context, companyID string) (*domain.Document, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, company_id, sheets, created_at, updated_at
FROM ledger_documents WHERE company_id = $1`, strings.TrimSpace(companyID))
	return scanDocument(row)
}

func (s *PostgresStore) Save(ctx context.Context, doc *domain.Document) error {
	if doc == nil || strings.TrimSpace(doc.ID) == "" {
		return fmt.Errorf("documento sem identificador")
	}
	sheets, err := json.Marshal(doc.Sheets)
	if err != nil {
		return fmt.Errorf("falha ao serializar planilhas: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO ledger_documents (id, company_id, sheets, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id)
DO UPDATE SET company_id=EXCLUDED.company_id,
  sheets=EXCLUDED.sheets,
  updated_at=EXCLUDED.updated_at`,
		doc.ID, doc.CompanyID, sheets, doc.CreatedAt, doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("falha ao salvar documento %s: %w", doc.ID, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
