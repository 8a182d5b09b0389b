package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/alfassih/praxis_backend/internal/service/document"
)

type DocumentHandler struct {
	svc document.Service
}

func NewDocumentHandler(svc document.Service) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

func mapDocumentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, document.ErrDocumentNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, document.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, document.ErrTitleRequired), errors.Is(err, document.ErrEmptyFile):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /patients/:id/documents  (multipart/form-data)
func (h *DocumentHandler) Upload(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "cannot read uploaded file")
	}
	defer f.Close()

	req := document.UploadRequest{
		PatientID:    patientID,
		Title:        c.FormValue("title"),
		OriginalName: fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Size:         fileHeader.Size,
		Body:         f,
	}
	if v := c.FormValue("document_type"); v != "" {
		req.DocumentType = &v
	}
	if v := c.FormValue("description"); v != "" {
		req.Description = &v
	}

	doc, err := h.svc.Upload(c.Context(), req)
	if err != nil {
		return mapDocumentError(c, err)
	}

	return created(c, doc)
}

// GET /patients/:id/documents
func (h *DocumentHandler) ListForPatient(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	docs, err := h.svc.ListForPatient(c.Context(), patientID)
	if err != nil {
		return mapDocumentError(c, err)
	}

	return ok(c, docs)
}

// GET /documents/:id
func (h *DocumentHandler) Get(c fiber.Ctx) error {
	documentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid document id")
	}

	doc, err := h.svc.GetByID(c.Context(), documentID)
	if err != nil {
		return mapDocumentError(c, err)
	}

	return ok(c, doc)
}

// GET /documents/:id/download
func (h *DocumentHandler) Download(c fiber.Ctx) error {
	documentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid document id")
	}

	dl, err := h.svc.Download(c.Context(), documentID)
	if err != nil {
		return mapDocumentError(c, err)
	}

	// Object storage hands out a presigned link; local storage streams.
	if dl.URL != "" {
		return c.Redirect().Status(fiber.StatusTemporaryRedirect).To(dl.URL)
	}

	c.Set("Content-Disposition", `attachment; filename="`+dl.Document.Filename+`"`)
	return c.SendStream(dl.Body)
}
