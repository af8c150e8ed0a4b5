package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/datvbard/landprice/internal/config"
	"github.com/datvbard/landprice/internal/parser"
	"github.com/datvbard/landprice/internal/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	st, err := store.New(filepath.Join(t.TempDir(), "landprice.db"))
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	router := gin.New()
	NewHandler(st, config.DefaultConfig()).RegisterRoutes(router.Group("/api"))
	return router, st
}

func sampleWorkbook(t *testing.T) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Quận 1"); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	rows := [][]interface{}{
		{"tên đường", "từ", "đến", "giá min"},
		{"Lê Lợi", "A", "B", 50000000},
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Quận 1", cell, &rows[i]); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func uploadRequest(t *testing.T, method, url string, data []byte, fields map[string]string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "bang_gia.xlsx")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestStatus(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}
}

func TestPreview(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, http.MethodPost, "/api/admin/import/preview", sampleWorkbook(t), nil))

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d (%s)", w.Code, w.Body.String())
	}

	var preview parser.WorkbookPreview
	if err := json.Unmarshal(w.Body.Bytes(), &preview); err != nil {
		t.Fatalf("decode preview: %v", err)
	}
	if !preview.IsValid {
		t.Fatalf("expected valid preview: %+v", preview.Errors)
	}
	if len(preview.Sheets) != 1 || preview.Sheets[0].Type != parser.SheetTypeDistrict {
		t.Fatalf("unexpected sheets: %+v", preview.Sheets)
	}
}

func TestPreview_MissingFile(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/admin/import/preview", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", w.Code)
	}
}

func TestPreview_InvalidWorkbook(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, http.MethodPost, "/api/admin/import/preview", []byte("không phải Excel"), nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d (%s)", w.Code, w.Body.String())
	}
}

func TestImport_StreamsProgressAndResult(t *testing.T) {
	router, st := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, http.MethodPost, "/api/admin/import", sampleWorkbook(t), nil))

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d (%s)", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("unexpected content type: %q", ct)
	}

	var types []string
	for _, line := range strings.Split(w.Body.String(), "\n") {
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var event struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &event); err != nil {
			t.Fatalf("decode event: %v (%s)", err, line)
		}
		types = append(types, event.Type)
	}

	if len(types) < 2 {
		t.Fatalf("expected progress and result events, got %v", types)
	}
	if types[len(types)-1] != "result" {
		t.Fatalf("expected final result event, got %v", types)
	}
	for _, typ := range types[:len(types)-1] {
		if typ != "progress" {
			t.Fatalf("unexpected event type: %v", types)
		}
	}

	segments, err := st.CountSegments()
	if err != nil {
		t.Fatalf("count segments: %v", err)
	}
	if segments != 1 {
		t.Fatalf("unexpected segment count: %d", segments)
	}
}

func TestClearDistricts(t *testing.T) {
	router, st := newTestRouter(t)

	districtID, err := st.InsertDistrict("quan_1", "1", 999)
	if err != nil {
		t.Fatalf("insert district: %v", err)
	}
	if _, err := st.InsertStreet(districtID, "le_loi", "Lê Lợi"); err != nil {
		t.Fatalf("insert street: %v", err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/admin/clear-districts", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d (%s)", w.Code, w.Body.String())
	}

	count, err := st.CountDistricts()
	if err != nil || count != 0 {
		t.Fatalf("districts remain: %d (%v)", count, err)
	}
}
