package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sarang-church/backend/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves downloadable snapshots of the news list for the
// church office (bulletin printing, archiving).
type ExportHandler struct {
	store NewsStore
}

func NewExportHandler(store NewsStore) *ExportHandler {
	return &ExportHandler{store: store}
}

// Download handles GET /api/news/export?format=xlsx.
func (h *ExportHandler) Download(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("news export read failed")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "read failed"})
		return
	}

	switch format := c.DefaultQuery("format", "xlsx"); format {
	case "xlsx":
		data, err := services.NewsToExcel(items)
		if err != nil {
			logrus.WithError(err).Error("xlsx export failed")
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "export failed"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="news.xlsx"`)
		c.Data(http.StatusOK, xlsxContentType, data)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unsupported format: " + format})
	}
}
