// Package workbook reads supplier cost workbooks into raw cost rows. The
// layouts are non-standard: title rows, blank separators, two-row wrapped
// headers and the supplier name floating somewhere above the header block, so
// everything here is heuristic and tolerant. A sheet that doesn't look like a
// cost list simply yields no rows.
package workbook

import (
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Klue7/abc-erp-clean/internal/domain"
)

// Flattened header labels the cost columns are resolved by. Item code and
// description are positional (columns 0 and 1) and not label-matched.
const (
	labelItemCode  = "ITEM CODE"
	labelUnitCost  = "COST PRICE UNIT COST"
	labelBag       = "BAG"
	labelLoading   = "LOADING FEE"
	labelTransport = "TRANSPORT PER TON"
	labelTotal     = "TOTAL COST"
)

const supplierUnknown = "UNKNOWN"

// supplierScanRows bounds how far above the header block the supplier name
// is searched for.
const supplierScanRows = 5

// defaultCost is what absent or non-numeric cost cells coerce to.
const defaultCost = 0

type Reader struct {
	f *excelize.File
}

func Open(path string) (*Reader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &Reader{f: f}, nil
}

func OpenReader(r io.Reader) (*Reader, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	return &Reader{f: f}, nil
}

func (r *Reader) Close() error {
	return r.f.Close()
}

// CostRows extracts raw cost rows from every sheet. Sheets without a header
// block are skipped; rows with an empty item code are skipped. Neither is an
// error.
func (r *Reader) CostRows() ([]domain.RawCostRow, error) {
	var out []domain.RawCostRow
	for _, sheet := range r.f.GetSheetList() {
		rows, err := r.f.GetRows(sheet)
		if err != nil {
			return nil, err
		}

		headerIdx := findHeaderStart(rows)
		if headerIdx < 0 {
			continue
		}
		headers := mergeTwoRowHeaders(rows, headerIdx)
		idx := headerIndex(headers)

		supplier := findSupplierAbove(rows, headerIdx)
		category := strings.TrimSpace(sheet)

		colUnit := idx[labelUnitCost]
		colBag := idx[labelBag]
		colLoading := idx[labelLoading]
		colTransport := idx[labelTransport]
		colTotal := idx[labelTotal]

		// Data starts two rows down, past the merged second header line.
		for i := headerIdx + 2; i < len(rows); i++ {
			row := rows[i]
			itemCode := strings.TrimSpace(cell(row, 0))
			if itemCode == "" {
				continue
			}

			raw := domain.RawCostRow{
				Sheet:            sheet,
				Supplier:         supplier,
				Category:         category,
				ItemCode:         itemCode,
				Description:      strings.TrimSpace(cell(row, 1)),
				UnitCost:         cellFloat(row, colUnit),
				BagCost:          cellFloat(row, colBag),
				LoadingFee:       cellFloat(row, colLoading),
				TransportPerUnit: cellFloat(row, colTransport),
			}
			if total, ok := parseFloat(cell(row, colTotal)); ok {
				raw.TotalCostProvided = &total
			}
			out = append(out, raw)
		}
	}
	return out, nil
}

// SpecRows returns the first sheet of a specs workbook as header row plus
// data rows, trimmed but otherwise untouched.
func (r *Reader) SpecRows() ([]string, [][]string, error) {
	sheets := r.f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, nil
	}
	rows, err := r.f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}
	return headers, rows[1:], nil
}

// findHeaderStart locates the first row whose first cell is ITEM CODE.
// Returns -1 when the sheet has no header block.
func findHeaderStart(rows [][]string) int {
	for i, row := range rows {
		if strings.ToUpper(strings.TrimSpace(cell(row, 0))) == labelItemCode {
			return i
		}
	}
	return -1
}

// mergeTwoRowHeaders flattens the header row and the row beneath it into one
// label per column, tolerating unit labels wrapped onto a second line.
func mergeTwoRowHeaders(rows [][]string, headerIdx int) []string {
	top := rows[headerIdx]
	var bottom []string
	if headerIdx+1 < len(rows) {
		bottom = rows[headerIdx+1]
	}
	width := len(top)
	if len(bottom) > width {
		width = len(bottom)
	}
	headers := make([]string, width)
	for c := 0; c < width; c++ {
		merged := strings.TrimSpace(cell(top, c) + " " + cell(bottom, c))
		merged = strings.Join(strings.Fields(merged), " ")
		headers[c] = strings.ToUpper(merged)
	}
	return headers
}

// findSupplierAbove scans up to supplierScanRows rows above the header for
// the nearest row whose first cell is non-empty and entirely uppercase (the
// supplier name convention in these workbooks).
func findSupplierAbove(rows [][]string, headerIdx int) string {
	bottom := headerIdx - supplierScanRows
	if bottom < 0 {
		bottom = 0
	}
	for i := headerIdx - 1; i >= bottom; i-- {
		a := strings.TrimSpace(cell(rows[i], 0))
		if a != "" && a == strings.ToUpper(a) && a != labelItemCode {
			return a
		}
	}
	return supplierUnknown
}

// headerIndex maps flattened header text to column index. Missing labels
// resolve to -1, a valid "column absent" state.
func headerIndex(headers []string) map[string]int {
	m := map[string]int{
		labelUnitCost:  -1,
		labelBag:       -1,
		labelLoading:   -1,
		labelTransport: -1,
		labelTotal:     -1,
	}
	for i, h := range headers {
		if _, want := m[h]; want {
			m[h] = i
		}
	}
	return m
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// cellFloat coerces a cost cell, defaulting absent or non-numeric values.
func cellFloat(row []string, col int) float64 {
	v, ok := parseFloat(cell(row, col))
	if !ok {
		return defaultCost
	}
	return v
}
