package parser

// Sentinel trên của các khoảng áp dụng: một khoảng không ghi rõ
// hoạt động như "khớp mọi giá trị".
const (
	maxWidthSentinel = 999
	maxAreaSentinel  = 99999
	maxDepthSentinel = 999
)

// resolveCoefficientBase bóc các trường chung của một dòng hệ số.
// Rows missing either code or name are dropped silently; coefficient
// sheets are assumed cleaner than district sheets.
func resolveCoefficientBase(row Row, nameCandidates []string) (CoefficientBase, bool) {
	code, okCode := findValue(row, colCode)
	name, okName := findValue(row, nameCandidates)
	if !okCode || !okName {
		return CoefficientBase{}, false
	}

	coefficient, ok := findNumber(row, colCoefficient)
	if !ok {
		coefficient = 1
	}

	return CoefficientBase{Code: code, Name: name, Coefficient: coefficient}, true
}

// parseLandTypeSheet bóc tách sheet hệ số loại đất
func parseLandTypeSheet(rows []Row) []LandTypeCoefficient {
	var out []LandTypeCoefficient
	for _, row := range rows {
		base, ok := resolveCoefficientBase(row, []string{"tên", "loại đất", "name", "ten"})
		if !ok {
			continue
		}
		description, _ := findValue(row, colDescription)

		out = append(out, LandTypeCoefficient{
			CoefficientBase: base,
			Description:     description,
		})
	}
	return out
}

// parseLocationSheet bóc tách sheet hệ số vị trí
func parseLocationSheet(rows []Row) []LocationCoefficient {
	var out []LocationCoefficient
	for _, row := range rows {
		base, ok := resolveCoefficientBase(row, []string{"tên", "vị trí", "name", "ten"})
		if !ok {
			continue
		}
		description, _ := findValue(row, colDescription)
		widthMin, ok := findNumber(row, []string{"độ rộng min", "width_min", "do_rong_min"})
		if !ok {
			widthMin = 0
		}
		widthMax, ok := findNumber(row, []string{"độ rộng max", "width_max", "do_rong_max"})
		if !ok {
			widthMax = maxWidthSentinel
		}

		out = append(out, LocationCoefficient{
			CoefficientBase: base,
			Description:     description,
			WidthMin:        widthMin,
			WidthMax:        widthMax,
		})
	}
	return out
}

// parseAreaSheet bóc tách sheet hệ số diện tích
func parseAreaSheet(rows []Row) []AreaCoefficient {
	var out []AreaCoefficient
	for _, row := range rows {
		base, ok := resolveCoefficientBase(row, []string{"tên", "name", "ten"})
		if !ok {
			continue
		}
		areaMin, ok := findNumber(row, []string{"diện tích min", "area_min", "dien_tich_min"})
		if !ok {
			areaMin = 0
		}
		areaMax, ok := findNumber(row, []string{"diện tích max", "area_max", "dien_tich_max"})
		if !ok {
			areaMax = maxAreaSentinel
		}

		out = append(out, AreaCoefficient{
			CoefficientBase: base,
			AreaMin:         areaMin,
			AreaMax:         areaMax,
		})
	}
	return out
}

// parseDepthSheet bóc tách sheet hệ số chiều sâu
func parseDepthSheet(rows []Row) []DepthCoefficient {
	var out []DepthCoefficient
	for _, row := range rows {
		base, ok := resolveCoefficientBase(row, []string{"tên", "name", "ten"})
		if !ok {
			continue
		}
		depthMin, ok := findNumber(row, []string{"chiều sâu min", "depth_min", "chieu_sau_min"})
		if !ok {
			depthMin = 0
		}
		depthMax, ok := findNumber(row, []string{"chiều sâu max", "depth_max", "chieu_sau_max"})
		if !ok {
			depthMax = maxDepthSentinel
		}

		out = append(out, DepthCoefficient{
			CoefficientBase: base,
			DepthMin:        depthMin,
			DepthMax:        depthMax,
		})
	}
	return out
}

// parseFengShuiSheet bóc tách sheet hệ số phong thủy
func parseFengShuiSheet(rows []Row) []FengShuiCoefficient {
	var out []FengShuiCoefficient
	for _, row := range rows {
		base, ok := resolveCoefficientBase(row, []string{"tên", "name", "ten"})
		if !ok {
			continue
		}
		description, _ := findValue(row, colDescription)

		out = append(out, FengShuiCoefficient{
			CoefficientBase: base,
			Description:     description,
		})
	}
	return out
}
