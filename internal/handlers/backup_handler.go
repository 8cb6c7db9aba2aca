package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-pos/internal/httpresp"
	"github.com/BruksfildServices01/salon-pos/internal/usecase/backup"
)

type BackupHandler struct {
	backup *backup.Backup
}

func NewBackupHandler(b *backup.Backup) *BackupHandler {
	return &BackupHandler{backup: b}
}

// Export downloads every collection as one JSON document.
func (h *BackupHandler) Export(c *gin.Context) {
	doc := h.backup.Export()

	c.Header("Content-Disposition", `attachment; filename="`+h.backup.FileName(doc.ExportedAt)+`"`)
	c.IndentedJSON(200, doc)
}

// Import replaces the stored data with an uploaded document. It only
// applies with ?confirm=true, after the document has been validated.
func (h *BackupHandler) Import(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		invalidRequest(c)
		return
	}

	summary, err := h.backup.Import(c.Request.Context(), raw, c.Query("confirm") == "true")
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, summary)
}

// Archive uploads an export to the configured bucket.
func (h *BackupHandler) Archive(c *gin.Context) {
	location, err := h.backup.Archive(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"location": location})
}
