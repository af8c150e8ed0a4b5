package importer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxCodeLen = 50

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)

// stripDiacritics tách dấu (NFD) rồi loại bỏ các ký tự dấu kết hợp
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// GenerateCode sinh mã định danh từ tên quận/huyện hoặc tên đường:
// bỏ dấu tiếng Việt, chữ thường, gom các ký tự không phải chữ/số thành
// một dấu gạch dưới, cắt còn tối đa 50 ký tự.
// Deterministic but not collision-proof; the store's natural-key
// uniqueness is the real guard.
func GenerateCode(name string) string {
	stripped, _, err := transform.String(stripDiacritics, name)
	if err != nil {
		stripped = name
	}
	stripped = strings.ToLower(stripped)
	// đ không mang dấu kết hợp nên NFD không tách được
	stripped = strings.ReplaceAll(stripped, "đ", "d")

	code := nonAlnumRe.ReplaceAllString(stripped, "_")
	code = strings.Trim(code, "_")
	if len(code) > maxCodeLen {
		code = strings.Trim(code[:maxCodeLen], "_")
	}
	return code
}
