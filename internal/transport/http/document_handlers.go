package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/codesync/codesync-server/internal/store"
)

// DocumentHandlers provides HTTP handlers for document CRUD endpoints.
type DocumentHandlers struct {
	store store.Store
	log   *zerolog.Logger
}

// NewDocumentHandlers creates a new document handlers instance.
func NewDocumentHandlers(st store.Store, logger *zerolog.Logger) *DocumentHandlers {
	return &DocumentHandlers{
		store: st,
		log:   logger,
	}
}

// CreateDocumentRequest represents the create document request body.
type CreateDocumentRequest struct {
	Title    string `json:"title"`
	Language string `json:"language"`
	Content  string `json:"content"`
}

// UpdateDocumentRequest represents the update document request body.
// Absent fields are left unchanged.
type UpdateDocumentRequest struct {
	Title    *string `json:"title"`
	Language *string `json:"language"`
	Content  *string `json:"content"`
}

// DocumentResponse represents a document in API responses.
type DocumentResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Language  string `json:"language"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

func documentResponse(doc *store.Document) DocumentResponse {
	return DocumentResponse{
		ID:        doc.ID,
		Title:     doc.Title,
		Language:  doc.Language,
		Content:   doc.Content,
		CreatedAt: doc.CreatedAt.Format(time.RFC3339),
		UpdatedAt: doc.UpdatedAt.Format(time.RFC3339),
	}
}

// List returns all documents ordered by recency.
// GET /api/documents
func (h *DocumentHandlers) List(c *gin.Context) {
	docs, err := h.store.ListDocuments(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list documents")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	out := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, documentResponse(doc))
	}
	c.JSON(http.StatusOK, out)
}

// Get returns a single document.
// GET /api/documents/:id
func (h *DocumentHandlers) Get(c *gin.Context) {
	doc, err := h.store.GetDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "document not found"})
			return
		}
		h.log.Error().Err(err).Str("document_id", c.Param("id")).Msg("failed to get document")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, documentResponse(doc))
}

// Create creates a new document.
// POST /api/documents
func (h *DocumentHandlers) Create(c *gin.Context) {
	var req CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid create document request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	doc, err := h.store.CreateDocument(c.Request.Context(), req.Title, req.Language, req.Content)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to create document")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	h.log.Info().Str("document_id", doc.ID).Str("title", doc.Title).Msg("document created")
	c.JSON(http.StatusCreated, documentResponse(doc))
}

// Update applies a partial update to a document.
// PUT /api/documents/:id
func (h *DocumentHandlers) Update(c *gin.Context) {
	var req UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid update document request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	doc, err := h.store.UpdateDocument(c.Request.Context(), c.Param("id"), store.UpdateDocumentParams{
		Title:    req.Title,
		Language: req.Language,
		Content:  req.Content,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "document not found"})
			return
		}
		h.log.Error().Err(err).Str("document_id", c.Param("id")).Msg("failed to update document")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, documentResponse(doc))
}

// Delete removes a document.
// DELETE /api/documents/:id
func (h *DocumentHandlers) Delete(c *gin.Context) {
	if err := h.store.DeleteDocument(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "document not found"})
			return
		}
		h.log.Error().Err(err).Str("document_id", c.Param("id")).Msg("failed to delete document")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "document deleted successfully"})
}
