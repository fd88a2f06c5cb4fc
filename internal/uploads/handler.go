package uploads

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codexiv-backend/internal/shared/server/respond"
	"codexiv-backend/internal/shared/storage/object"
	"codexiv-backend/internal/shared/telemetry"
)

// allowed upload namespaces, matching the content collections that carry
// image references.
var allowedKinds = map[string]bool{
	"project": true,
	"team":    true,
	"blog":    true,
}

// Handler accepts image uploads for content documents.
type Handler struct {
	Store    object.ObjectStore
	MaxBytes int64
}

func NewHandler(store object.ObjectStore, maxBytes int64) *Handler {
	return &Handler{Store: store, MaxBytes: maxBytes}
}

// RegisterAdminRoutes attaches the upload endpoints.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/uploads/:kind", h.upload)
	rg.DELETE("/uploads/*key", h.remove)
}

type uploadResponse struct {
	FileRef string `json:"fileRef"`
	ViewURL string `json:"viewUrl"`
}

func (h *Handler) upload(c *gin.Context) {
	kind := c.Param("kind")
	if !allowedKinds[kind] {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unknown upload kind", nil)
		return
	}
	if h.MaxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxBytes)
	}
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "missing or oversized image field", nil)
		return
	}
	defer file.Close()

	key, size, mimeType, err := h.Store.Save(c.Request.Context(), kind, header.Filename, file)
	if err != nil {
		telemetry.Error("uploads.save_failed", map[string]any{"kind": kind, "error": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store upload", nil)
		return
	}
	telemetry.Info("uploads.saved", map[string]any{
		"kind": kind,
		"key":  key,
		"size": size,
		"mime": mimeType,
	})
	respond.JSON(c, http.StatusCreated, uploadResponse{FileRef: key, ViewURL: h.Store.ViewURL(key)})
}

func (h *Handler) remove(c *gin.Context) {
	key := c.Param("key")
	if len(key) > 0 && key[0] == '/' {
		key = key[1:]
	}
	if key == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "missing storage key", nil)
		return
	}
	if err := h.Store.Delete(c.Request.Context(), key); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete file", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"ok": true})
}
