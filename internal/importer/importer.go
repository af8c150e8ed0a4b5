package importer

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/datvbard/landprice/internal/parser"
	"github.com/datvbard/landprice/internal/store"
)

// Stage giai đoạn của một lần import
type Stage string

const (
	StageDistricts    Stage = "districts"
	StageCoefficients Stage = "coefficients"
	StageDone         Stage = "done"
)

// Bản ghi tạo mới qua import xếp sau dữ liệu đã biên tập tay
const defaultSortOrder = 999

// Progress một sự kiện tiến độ, chỉ mang tính quan sát.
// The callback runs synchronously inside the import loop and must be
// fast; ignoring every event yields an identical end state.
type Progress struct {
	Stage   Stage  `json:"stage"`
	Current int    `json:"current"`
	Total   int    `json:"total"`
	Message string `json:"message"`
}

// ProgressFunc callback nhận sự kiện tiến độ, có thể nil
type ProgressFunc func(Progress)

// Stats số lượng bản ghi tạo mới/cập nhật theo từng loại.
// Coefficients carry a single counter for both paths, the way the
// admin screens have always reported them.
type Stats struct {
	DistrictsCreated    int `json:"districtsCreated"`
	DistrictsUpdated    int `json:"districtsUpdated"`
	StreetsCreated      int `json:"streetsCreated"`
	StreetsUpdated      int `json:"streetsUpdated"`
	SegmentsCreated     int `json:"segmentsCreated"`
	SegmentsUpdated     int `json:"segmentsUpdated"`
	CoefficientsUpdated int `json:"coefficientsUpdated"`
}

// Result kết quả một lần import.
// Success is simply "no errors"; partial writes stay committed because
// the run is a best-effort batch, not a transaction.
type Result struct {
	Success bool     `json:"success"`
	Stats   Stats    `json:"stats"`
	Errors  []string `json:"errors"`
}

// Options tùy chọn cho một lần import
type Options struct {
	Filename      string // tên file gốc, ghi vào import_logs
	ClearExisting bool   // xóa cây quận/huyện hiện có trước khi import
}

// Importer đối soát dữ liệu đã bóc tách với database
type Importer struct {
	store *store.Store
}

// New tạo importer
func New(st *store.Store) *Importer {
	return &Importer{store: st}
}

// Import ghi dữ liệu đã bóc tách vào database theo thứ tự
// quận/huyện -> hệ số, upsert theo khóa tự nhiên.
// Every write is attempted exactly once; a failed entity is recorded and
// skipped while its siblings continue. Re-running the same workbook is
// idempotent.
func (im *Importer) Import(data *parser.ParsedExcel, opts Options, onProgress ProgressFunc) (result *Result) {
	result = &Result{
		Errors: append([]string(nil), data.Errors...),
	}

	defer func() {
		if r := recover(); r != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Lỗi hệ thống: %v", r))
			result.Success = false
		}
		im.recordRun(opts.Filename, result)
	}()

	if opts.ClearExisting {
		if _, err := im.store.ClearDistricts(); err != nil {
			result.Errors = append(result.Errors, "Không thể xóa dữ liệu cũ")
		}
	}

	total := len(data.Districts)
	for i, district := range data.Districts {
		im.notify(onProgress, Progress{
			Stage:   StageDistricts,
			Current: i + 1,
			Total:   total,
			Message: fmt.Sprintf("Đang xử lý %s...", district.DistrictName),
		})
		im.importDistrict(district, result)
	}

	im.notify(onProgress, Progress{
		Stage:   StageCoefficients,
		Current: 0,
		Total:   5,
		Message: "Đang cập nhật hệ số...",
	})
	im.importCoefficients(&data.Coefficients, result, onProgress)

	im.notify(onProgress, Progress{
		Stage:   StageDone,
		Current: 1,
		Total:   1,
		Message: "Hoàn thành!",
	})

	result.Success = len(result.Errors) == 0
	return result
}

// importDistrict xử lý một quận/huyện cùng toàn bộ đường và đoạn đường
func (im *Importer) importDistrict(district parser.ParsedDistrict, result *Result) {
	districtID, found, err := im.store.FindDistrictIDByName(district.DistrictName)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Không thể tạo quận/huyện: %s", district.DistrictName))
		return
	}

	if found {
		result.Stats.DistrictsUpdated++
	} else {
		id, err := im.store.InsertDistrict(GenerateCode(district.DistrictName), district.DistrictName, defaultSortOrder)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Không thể tạo quận/huyện: %s", district.DistrictName))
			return
		}
		districtID = id
		result.Stats.DistrictsCreated++
	}

	for _, group := range groupSegmentsByStreet(district.Segments) {
		im.importStreet(districtID, group.name, group.segments, result)
	}
}

// streetGroup các đoạn của cùng một tên đường, giữ thứ tự xuất hiện
type streetGroup struct {
	name     string
	segments []parser.ParsedSegment
}

// groupSegmentsByStreet gom đoạn đường theo tên đường.
// Groups replay in first-seen order so street creation order matches the
// sheet.
func groupSegmentsByStreet(segments []parser.ParsedSegment) []streetGroup {
	var groups []streetGroup
	index := make(map[string]int)

	for _, seg := range segments {
		i, ok := index[seg.StreetName]
		if !ok {
			i = len(groups)
			index[seg.StreetName] = i
			groups = append(groups, streetGroup{name: seg.StreetName})
		}
		groups[i].segments = append(groups[i].segments, seg)
	}

	return groups
}

// importStreet xử lý một đường cùng các đoạn của nó
func (im *Importer) importStreet(districtID int64, streetName string, segments []parser.ParsedSegment, result *Result) {
	streetID, found, err := im.store.FindStreetID(districtID, streetName)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Không thể tạo đường: %s", streetName))
		return
	}

	if found {
		result.Stats.StreetsUpdated++
	} else {
		id, err := im.store.InsertStreet(districtID, GenerateCode(streetName), streetName)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Không thể tạo đường: %s", streetName))
			return
		}
		streetID = id
		result.Stats.StreetsCreated++
	}

	for _, seg := range segments {
		segmentKey := seg.SegmentFrom + "-" + seg.SegmentTo
		prices := store.SegmentPrices{
			BasePriceMin:      seg.BasePriceMin,
			BasePriceMax:      seg.BasePriceMax,
			GovernmentPrice:   seg.GovernmentPrice,
			AdjustmentCoefMin: seg.AdjustmentCoefMin,
			AdjustmentCoefMax: seg.AdjustmentCoefMax,
		}

		segmentID, found, err := im.store.FindSegmentID(streetID, seg.SegmentFrom, seg.SegmentTo)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Không thể cập nhật đoạn: %s (%s)", streetName, segmentKey))
			continue
		}

		if found {
			if err := im.store.UpdateSegmentPrices(segmentID, prices); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("Không thể cập nhật đoạn: %s (%s)", streetName, segmentKey))
			} else {
				result.Stats.SegmentsUpdated++
			}
		} else {
			if err := im.store.InsertSegment(streetID, seg.SegmentFrom, seg.SegmentTo, prices); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("Không thể tạo đoạn: %s (%s)", streetName, segmentKey))
			} else {
				result.Stats.SegmentsCreated++
			}
		}
	}
}

// coefficientRow một hệ số đã quy về dạng cột -> giá trị
type coefficientRow struct {
	code   string
	fields map[string]interface{}
}

// importCoefficients xử lý 5 loại hệ số theo thứ tự cố định
func (im *Importer) importCoefficients(c *parser.ParsedCoefficients, result *Result, onProgress ProgressFunc) {
	kinds := []struct {
		table string
		label string
		rows  []coefficientRow
	}{
		{store.TableLandTypeCoefficients, "Loại đất", landTypeRows(c.LandTypes)},
		{store.TableLocationCoefficients, "Vị trí", locationRows(c.Locations)},
		{store.TableAreaCoefficients, "Diện tích", areaRows(c.Areas)},
		{store.TableDepthCoefficients, "Chiều sâu", depthRows(c.Depths)},
		{store.TableFengShuiCoefficients, "Phong thủy", fengShuiRows(c.FengShuis)},
	}

	for i, kind := range kinds {
		im.notify(onProgress, Progress{
			Stage:   StageCoefficients,
			Current: i + 1,
			Total:   len(kinds),
			Message: fmt.Sprintf("Đang cập nhật hệ số %s...", kind.label),
		})

		for _, row := range kind.rows {
			im.upsertCoefficient(kind.table, row, result)
		}
	}
}

// upsertCoefficient cập nhật hoặc thêm mới một hệ số theo mã
func (im *Importer) upsertCoefficient(table string, row coefficientRow, result *Result) {
	id, found, err := im.store.FindCoefficientIDByCode(table, row.code)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Không thể cập nhật hệ số: %s", row.code))
		return
	}

	if found {
		if err := im.store.UpdateCoefficient(table, id, row.fields); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Không thể cập nhật hệ số: %s", row.code))
			return
		}
	} else {
		fields := make(map[string]interface{}, len(row.fields)+2)
		for k, v := range row.fields {
			fields[k] = v
		}
		fields["code"] = row.code
		fields["sort_order"] = defaultSortOrder
		if err := im.store.InsertCoefficient(table, fields); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Không thể tạo hệ số: %s", row.code))
			return
		}
	}

	result.Stats.CoefficientsUpdated++
}

func landTypeRows(items []parser.LandTypeCoefficient) []coefficientRow {
	rows := make([]coefficientRow, 0, len(items))
	for _, c := range items {
		fields := map[string]interface{}{
			"name":        c.Name,
			"coefficient": c.Coefficient,
		}
		if c.Description != "" {
			fields["description"] = c.Description
		}
		rows = append(rows, coefficientRow{code: c.Code, fields: fields})
	}
	return rows
}

func locationRows(items []parser.LocationCoefficient) []coefficientRow {
	rows := make([]coefficientRow, 0, len(items))
	for _, c := range items {
		fields := map[string]interface{}{
			"name":        c.Name,
			"coefficient": c.Coefficient,
			"width_min":   c.WidthMin,
			"width_max":   c.WidthMax,
		}
		if c.Description != "" {
			fields["description"] = c.Description
		}
		rows = append(rows, coefficientRow{code: c.Code, fields: fields})
	}
	return rows
}

func areaRows(items []parser.AreaCoefficient) []coefficientRow {
	rows := make([]coefficientRow, 0, len(items))
	for _, c := range items {
		rows = append(rows, coefficientRow{code: c.Code, fields: map[string]interface{}{
			"name":        c.Name,
			"coefficient": c.Coefficient,
			"area_min":    c.AreaMin,
			"area_max":    c.AreaMax,
		}})
	}
	return rows
}

func depthRows(items []parser.DepthCoefficient) []coefficientRow {
	rows := make([]coefficientRow, 0, len(items))
	for _, c := range items {
		rows = append(rows, coefficientRow{code: c.Code, fields: map[string]interface{}{
			"name":        c.Name,
			"coefficient": c.Coefficient,
			"depth_min":   c.DepthMin,
			"depth_max":   c.DepthMax,
		}})
	}
	return rows
}

func fengShuiRows(items []parser.FengShuiCoefficient) []coefficientRow {
	rows := make([]coefficientRow, 0, len(items))
	for _, c := range items {
		fields := map[string]interface{}{
			"name":        c.Name,
			"coefficient": c.Coefficient,
		}
		if c.Description != "" {
			fields["description"] = c.Description
		}
		rows = append(rows, coefficientRow{code: c.Code, fields: fields})
	}
	return rows
}

// recordRun ghi một dòng import_logs cho lần chạy này.
// Logging failure never affects the import result.
func (im *Importer) recordRun(filename string, result *Result) {
	stats, err := json.Marshal(result.Stats)
	if err != nil {
		stats = []byte("{}")
	}

	entry := &store.ImportLog{
		ID:         uuid.NewString(),
		Filename:   filename,
		Stats:      string(stats),
		ErrorCount: len(result.Errors),
		Success:    result.Success,
	}
	if err := im.store.InsertImportLog(entry); err != nil {
		log.Printf("ghi import log thất bại: %v", err)
	}
}

// notify gọi callback tiến độ nếu có
func (im *Importer) notify(onProgress ProgressFunc, p Progress) {
	if onProgress != nil {
		onProgress(p)
	}
}
