package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/datvbard/landprice/internal/importer"
	"github.com/datvbard/landprice/internal/parser"
)

// importEvent một sự kiện trên luồng SSE của import
type importEvent struct {
	Type      string      `json:"type"` // progress/result
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// Import bóc tách rồi import workbook, trả tiến độ qua SSE
// POST /api/admin/import
func (h *Handler) Import(c *gin.Context) {
	data, filename, ok := h.readUpload(c)
	if !ok {
		return
	}

	clearExisting := c.DefaultPostForm("clearExisting", "false") == "true"

	parsed, err := parser.NewParser().Parse(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File Excel không hợp lệ"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không hỗ trợ streaming"})
		return
	}

	// The importer's callback is synchronous; buffer events and drop
	// when full so a slow client never stalls the import.
	events := make(chan importEvent, 100)

	go func() {
		defer close(events)

		result := importer.New(h.store).Import(parsed, importer.Options{
			Filename:      filename,
			ClearExisting: clearExisting,
		}, func(p importer.Progress) {
			sendEvent(events, importEvent{Type: "progress", Data: p, Timestamp: time.Now()})
		})

		events <- importEvent{Type: "result", Data: result, Timestamp: time.Now()}
	}()

	for event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			continue
		}
		fmt.Fprintf(c.Writer, "data: %s\n\n", payload)
		flusher.Flush()
	}
}

// sendEvent đẩy sự kiện vào kênh, bỏ qua khi kênh đầy
func sendEvent(ch chan importEvent, event importEvent) {
	select {
	case ch <- event:
	default:
	}
}
