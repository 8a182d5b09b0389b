package document

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/alfassih/praxis_backend/internal/repo"
	entdocument "github.com/alfassih/praxis_backend/internal/repo/document"
	entpatient "github.com/alfassih/praxis_backend/internal/repo/patient"
	"github.com/alfassih/praxis_backend/pkg/storage"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UploadRequest struct {
	PatientID    uuid.UUID
	Title        string
	DocumentType *string
	Description  *string

	// OriginalName is the client-side filename; only its extension is
	// kept, the stored name is a fresh UUID.
	OriginalName string
	ContentType  string
	Size         int64
	Body         io.Reader
}

type Download struct {
	Document *repo.Document
	Body     io.ReadCloser

	// URL is set instead of Body when the storage backend hands out
	// presigned links.
	URL string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Upload(ctx context.Context, req UploadRequest) (*repo.Document, error)
	GetByID(ctx context.Context, documentID uuid.UUID) (*repo.Document, error)
	ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*repo.Document, error)

	// Download returns either a streaming body or a presigned URL,
	// depending on the storage backend. The caller must close Body
	// when it is non-nil.
	Download(ctx context.Context, documentID uuid.UUID) (*Download, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type documentService struct {
	db    *repo.Client
	store storage.Store
}

func New(db *repo.Client, store storage.Store) Service {
	return &documentService{db: db, store: store}
}

// storageKey builds the stored filename: a random UUID with the upload's
// extension preserved so downloads keep a meaningful type.
func storageKey(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return uuid.New().String() + ext
}

func (s *documentService) Upload(ctx context.Context, req UploadRequest) (*repo.Document, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, ErrTitleRequired
	}
	if req.Body == nil || req.Size <= 0 {
		return nil, ErrEmptyFile
	}

	exists, err := s.db.Patient.Query().Where(entpatient.ID(req.PatientID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !exists {
		return nil, ErrPatientNotFound
	}

	key := storageKey(req.OriginalName)

	if err := s.store.Put(ctx, key, req.ContentType, req.Body, req.Size); err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}

	doc, err := s.db.Document.Create().
		SetPatientID(req.PatientID).
		SetTitle(req.Title).
		SetNillableDocumentType(req.DocumentType).
		SetNillableDescription(req.Description).
		SetFilename(key).
		Save(ctx)
	if err != nil {
		// The row failed, don't leave the file behind.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			slog.Warn("failed to clean up file after create failure", "key", key, "error", delErr)
		}
		return nil, fmt.Errorf("create document: %w", err)
	}

	return doc, nil
}

func (s *documentService) GetByID(ctx context.Context, documentID uuid.UUID) (*repo.Document, error) {
	doc, err := s.db.Document.Get(ctx, documentID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

func (s *documentService) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*repo.Document, error) {
	exists, err := s.db.Patient.Query().Where(entpatient.ID(patientID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !exists {
		return nil, ErrPatientNotFound
	}

	docs, err := s.db.Document.Query().
		Where(entdocument.PatientID(patientID)).
		Order(entdocument.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

func (s *documentService) Download(ctx context.Context, documentID uuid.UUID) (*Download, error) {
	doc, err := s.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if p, ok := s.store.(storage.Presigner); ok {
		url, err := p.PresignDownload(ctx, doc.Filename)
		if err != nil {
			return nil, fmt.Errorf("presign download: %w", err)
		}
		return &Download{Document: doc, URL: url}, nil
	}

	body, err := s.store.Open(ctx, doc.Filename)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("open file: %w", err)
	}

	return &Download{Document: doc, Body: body}, nil
}
