package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/pkg/apperrors"
	"github.com/yigit/recruitment/internal/pkg/logger"
)

// IDocumentRepository defines document persistence
type IDocumentRepository interface {
	Create(ctx context.Context, d *models.Document) error
	GetByID(ctx context.Context, id int64) (*models.Document, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]*models.Document, error)
	Verify(ctx context.Context, id, verifierID int64, at time.Time) (*models.Document, error)
	Delete(ctx context.Context, id int64) error
}

// DocumentRepository handles database operations for candidate documents
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

const documentColumns = "id, candidate_id, document_type, file_name, file_path, uploaded_at, verified, verified_at, verified_by"

func scanDocument(row pgx.Row) (*models.Document, error) {
	var d models.Document
	err := row.Scan(&d.ID, &d.CandidateID, &d.DocumentType, &d.FileName, &d.FilePath,
		&d.UploadedAt, &d.Verified, &d.VerifiedAt, &d.VerifiedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, err
	}
	return &d, nil
}

// Create inserts a document row. Repeated uploads of one type are kept as history.
func (r *DocumentRepository) Create(ctx context.Context, d *models.Document) error {
	sql, args, err := squirrel.Insert("documents").
		Columns("candidate_id", "document_type", "file_name", "file_path").
		Values(d.CandidateID, d.DocumentType, d.FileName, d.FilePath).
		Suffix("RETURNING id, uploaded_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create document SQL")
		return err
	}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&d.ID, &d.UploadedAt); err != nil {
		logger.Error().Err(err).Int64("candidateID", d.CandidateID).Msg("Error executing create document query")
		return err
	}
	return nil
}

// GetByID retrieves a document by ID
func (r *DocumentRepository) GetByID(ctx context.Context, id int64) (*models.Document, error) {
	return scanDocument(r.db.QueryRow(ctx, "SELECT "+documentColumns+" FROM documents WHERE id = $1", id))
}

// ListByCandidate returns a candidate's documents, newest upload first
func (r *DocumentRepository) ListByCandidate(ctx context.Context, candidateID int64) ([]*models.Document, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+documentColumns+" FROM documents WHERE candidate_id = $1 ORDER BY uploaded_at DESC, id DESC",
		candidateID)
	if err != nil {
		logger.Error().Err(err).Int64("candidateID", candidateID).Msg("Error listing documents")
		return nil, err
	}
	defer rows.Close()

	docs := []*models.Document{}
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// Verify marks a document verified by verifierID. Re-verifying rewrites the same fields.
func (r *DocumentRepository) Verify(ctx context.Context, id, verifierID int64, at time.Time) (*models.Document, error) {
	return scanDocument(r.db.QueryRow(ctx, `
		UPDATE documents SET verified = TRUE, verified_at = $2, verified_by = $3
		WHERE id = $1
		RETURNING `+documentColumns, id, at, verifierID))
}

// Delete removes the document row
func (r *DocumentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Int64("documentID", id).Msg("Error deleting document")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDocumentNotFound
	}
	return nil
}
