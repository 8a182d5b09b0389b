package document

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfassih/praxis_backend/internal/repo"
	"github.com/alfassih/praxis_backend/internal/repo/enttest"
	"github.com/alfassih/praxis_backend/pkg/storage"
)

func newTestService(t *testing.T) (Service, *repo.Client, uuid.UUID) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })

	store, err := storage.NewLocalStore(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)

	p, err := client.Patient.Create().SetFirstName("Jane").SetLastName("Doe").Save(context.Background())
	require.NoError(t, err)

	return New(client, store), client, p.ID
}

func uploadReq(patientID uuid.UUID, name, content string) UploadRequest {
	return UploadRequest{
		PatientID:    patientID,
		Title:        "Intake Form",
		OriginalName: name,
		ContentType:  "application/octet-stream",
		Size:         int64(len(content)),
		Body:         strings.NewReader(content),
	}
}

func TestUploadPreservesExtension(t *testing.T) {
	svc, _, patientID := newTestService(t)
	ctx := context.Background()

	doc, err := svc.Upload(ctx, uploadReq(patientID, "Scan Of REPORT.PDF", "pdf bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(doc.Filename, ".pdf"), "stored name keeps the lowercased extension, got %q", doc.Filename)
	assert.NotContains(t, doc.Filename, "REPORT", "stored name must not leak the client filename")

	stem := strings.TrimSuffix(doc.Filename, ".pdf")
	_, err = uuid.Parse(stem)
	assert.NoError(t, err, "stored name stem is a UUID, got %q", stem)
}

func TestUploadAndDownloadRoundTrip(t *testing.T) {
	svc, _, patientID := newTestService(t)
	ctx := context.Background()

	content := "exact bytes, please"
	doc, err := svc.Upload(ctx, uploadReq(patientID, "notes.txt", content))
	require.NoError(t, err)

	dl, err := svc.Download(ctx, doc.ID)
	require.NoError(t, err)
	require.NotNil(t, dl.Body)
	defer dl.Body.Close()

	got, err := io.ReadAll(dl.Body)
	require.NoError(t, err)
	assert.True(t, bytes.Equal([]byte(content), got), "downloaded bytes differ from uploaded bytes")
	assert.Equal(t, doc.ID, dl.Document.ID)
	assert.Empty(t, dl.URL)
}

func TestUploadValidation(t *testing.T) {
	svc, _, patientID := newTestService(t)
	ctx := context.Background()

	req := uploadReq(patientID, "notes.txt", "x")
	req.Title = "   "
	_, err := svc.Upload(ctx, req)
	assert.ErrorIs(t, err, ErrTitleRequired)

	req = uploadReq(patientID, "notes.txt", "")
	_, err = svc.Upload(ctx, req)
	assert.ErrorIs(t, err, ErrEmptyFile)

	req = uploadReq(uuid.New(), "notes.txt", "x")
	_, err = svc.Upload(ctx, req)
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestListForPatient(t *testing.T) {
	svc, _, patientID := newTestService(t)
	ctx := context.Background()

	first, err := svc.Upload(ctx, uploadReq(patientID, "a.txt", "a"))
	require.NoError(t, err)
	second, err := svc.Upload(ctx, uploadReq(patientID, "b.txt", "b"))
	require.NoError(t, err)

	docs, err := svc.ListForPatient(ctx, patientID)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	ids := []uuid.UUID{docs[0].ID, docs[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)

	_, err = svc.ListForPatient(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestDownloadMissingDocument(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Download(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

// wrappingStore reports missing objects through a wrapped sentinel, the
// way any backend adding context with %w would.
type wrappingStore struct {
	storage.Store
}

func (s wrappingStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return nil, fmt.Errorf("backend: open %q: %w", key, storage.ErrNotFound)
}

func TestDownloadMapsWrappedStorageNotFound(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })

	ctx := context.Background()
	p, err := client.Patient.Create().SetFirstName("Jane").SetLastName("Doe").Save(ctx)
	require.NoError(t, err)
	doc, err := client.Document.Create().
		SetPatientID(p.ID).
		SetTitle("Intake Form").
		SetFilename("gone.pdf").
		Save(ctx)
	require.NoError(t, err)

	svc := New(client, wrappingStore{})

	_, err = svc.Download(ctx, doc.ID)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}
