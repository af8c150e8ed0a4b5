package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/datvbard/landprice/internal/config"
	"github.com/datvbard/landprice/internal/parser"
	"github.com/datvbard/landprice/internal/store"
)

// Handler nhóm các endpoint của pipeline import
type Handler struct {
	store *store.Store
	cfg   *config.AppConfig
}

// NewHandler tạo handler
func NewHandler(st *store.Store, cfg *config.AppConfig) *Handler {
	return &Handler{store: st, cfg: cfg}
}

// RegisterRoutes đăng ký các route của API
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/status", h.Status)

	admin := rg.Group("/admin")
	{
		admin.POST("/import/preview", h.Preview)
		admin.POST("/import", h.Import)
		admin.DELETE("/clear-districts", h.ClearDistricts)
	}
}

// Status kiểm tra dịch vụ còn sống
// GET /api/status
func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Preview xem trước nội dung workbook trước khi import
// POST /api/admin/import/preview
func (h *Handler) Preview(c *gin.Context) {
	data, _, ok := h.readUpload(c)
	if !ok {
		return
	}

	p := parser.NewParser()
	p.SetPreviewRows(h.cfg.Import.PreviewRows)

	preview, err := p.Preview(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File Excel không hợp lệ"})
		return
	}

	c.JSON(http.StatusOK, preview)
}

// ClearDistricts xóa toàn bộ cây quận/huyện -> đường -> đoạn đường
// DELETE /api/admin/clear-districts
func (h *Handler) ClearDistricts(c *gin.Context) {
	result, err := h.store.ClearDistricts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xóa dữ liệu"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"deleted": result,
	})
}

// readUpload đọc file upload vào bộ nhớ
func (h *Handler) readUpload(c *gin.Context) ([]byte, string, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Không tìm thấy file upload"})
		return nil, "", false
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể đọc file upload"})
		return nil, "", false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể đọc file upload"})
		return nil, "", false
	}

	return data, fileHeader.Filename, true
}
