package service

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"autoviz-server/internal/common"
	"autoviz-server/internal/consts"
	"autoviz-server/internal/logger"

	"github.com/xuri/excelize/v2"
)

var errLegacyXLS = errors.New("legacy xls format")

// SheetPreview 单个工作表的预览数据
type SheetPreview struct {
	Name    string           `json:"name"`
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

// Columns 读取上传文件首个工作表的表头，不落盘
func (s *SheetService) Columns(file *multipart.FileHeader) ([]string, error) {
	ext, err := s.upload.Validate(file)
	if err != nil {
		return nil, err
	}
	src, err := file.Open()
	if err != nil {
		return nil, common.NewValidationError("无法打开上传的文件")
	}
	defer func() { _ = src.Close() }()

	sheets, err := readSheets(src, ext, 1)
	if err != nil {
		return nil, sheetParseError(err)
	}
	if len(sheets) == 0 || len(sheets[0].Columns) == 0 {
		return nil, common.NewValidationError("表格中没有表头")
	}
	return sheets[0].Columns, nil
}

// Preview 解析已存储的表格，每个工作表最多返回 MaxSheetPreviewRows 行
func (s *SheetService) Preview(path string) ([]SheetPreview, error) {
	f, err := os.Open(path)
	if err != nil {
		logger.Errorf("打开表格文件失败 %s: %v", path, err)
		return nil, common.NewNotFoundError("数据文件不存在")
	}
	defer func() { _ = f.Close() }()

	sheets, err := readSheets(f, strings.ToLower(filepath.Ext(path)), consts.MaxSheetPreviewRows)
	if err != nil {
		return nil, sheetParseError(err)
	}
	return sheets, nil
}

func sheetParseError(err error) error {
	if errors.Is(err, errLegacyXLS) {
		return common.NewValidationError("暂不支持解析 xls 格式，请另存为 xlsx")
	}
	logger.Warningf("解析表格失败: %v", err)
	return common.NewValidationError("表格解析失败")
}

func readSheets(r io.Reader, ext string, maxRows int) ([]SheetPreview, error) {
	switch ext {
	case ".csv":
		sheet, err := readCSV(r, maxRows)
		if err != nil {
			return nil, err
		}
		return []SheetPreview{sheet}, nil
	case ".xlsx":
		return readXLSX(r, maxRows)
	case ".xls":
		return nil, errLegacyXLS
	default:
		return nil, errors.New("unsupported sheet extension " + ext)
	}
}

func readCSV(r io.Reader, maxRows int) (SheetPreview, error) {
	br := bufio.NewReader(r)
	// 去掉 UTF-8 BOM
	if b, err := br.Peek(3); err == nil && string(b) == "\xef\xbb\xbf" {
		_, _ = br.Discard(3)
	}
	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	sheet := SheetPreview{Name: "Sheet1", Rows: []map[string]any{}}
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return sheet, nil
	}
	if err != nil {
		return sheet, err
	}
	sheet.Columns = normalizeHeader(header)

	for len(sheet.Rows) < maxRows {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return sheet, err
		}
		sheet.Rows = append(sheet.Rows, rowToMap(sheet.Columns, record))
	}
	return sheet, nil
}

func readXLSX(r io.Reader, maxRows int) ([]SheetPreview, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var sheets []SheetPreview
	for _, name := range f.GetSheetList() {
		sheet, err := readXLSXSheet(f, name, maxRows)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

func readXLSXSheet(f *excelize.File, name string, maxRows int) (SheetPreview, error) {
	sheet := SheetPreview{Name: name, Rows: []map[string]any{}}
	rows, err := f.Rows(name)
	if err != nil {
		return sheet, err
	}
	defer func() { _ = rows.Close() }()

	first := true
	for rows.Next() {
		cols, err := rows.Columns()
		if err != nil {
			return sheet, err
		}
		if first {
			sheet.Columns = normalizeHeader(cols)
			first = false
			continue
		}
		if len(sheet.Rows) >= maxRows {
			break
		}
		sheet.Rows = append(sheet.Rows, rowToMap(sheet.Columns, cols))
	}
	return sheet, rows.Error()
}

// normalizeHeader 去除空白，空表头以 __EMPTY_n 命名，重复表头追加 _n
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			h = "__EMPTY"
		}
		if n, ok := seen[h]; ok {
			seen[h] = n + 1
			h = h + "_" + strconv.Itoa(n)
		} else {
			seen[h] = 1
		}
		out[i] = h
	}
	return out
}

func rowToMap(columns, record []string) map[string]any {
	row := make(map[string]any, len(columns))
	for i, col := range columns {
		if i < len(record) && record[i] != "" {
			row[col] = record[i]
		} else {
			row[col] = nil
		}
	}
	return row
}
