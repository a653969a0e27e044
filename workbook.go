package gridpaint

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"
)

// Workbook reads CellConfig snapshots out of an xlsx file. It plays the
// external data store: values, styles, merges and sheet geometry come from
// the workbook, the pipeline only reads them.
type Workbook struct {
	file *excelize.File

	mu         sync.Mutex
	styles     map[int]*excelize.Style // style ID → decoded style
	merges     map[string][]AreaRef    // sheet → merged ranges
	hiddenRows map[string]map[int]bool // sheet → 0-based hidden rows
}

// NewWorkbook wraps an open excelize file.
func NewWorkbook(f *excelize.File) *Workbook {
	return &Workbook{
		file:       f,
		styles:     make(map[int]*excelize.Style),
		merges:     make(map[string][]AreaRef),
		hiddenRows: make(map[string]map[int]bool),
	}
}

// OpenWorkbook opens an xlsx file from disk.
func OpenWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", path, err)
	}
	return NewWorkbook(f), nil
}

// File returns the underlying excelize file.
func (wb *Workbook) File() *excelize.File {
	return wb.file
}

// Close closes the underlying excelize file.
func (wb *Workbook) Close() error {
	return wb.file.Close()
}

// ReadRange reads every cell of an area such as "Sheet1!A1:D10", row-major.
// Geometry is relative to the area's top-left corner. A range without a
// sheet name reads the first sheet.
func (wb *Workbook) ReadRange(ref string) ([]CellConfig, AreaRef, error) {
	area, err := ParseAreaRef(ref)
	if err != nil {
		return nil, AreaRef{}, err
	}
	if area.First.Sheet == "" {
		sheets := wb.file.GetSheetList()
		if len(sheets) == 0 {
			return nil, AreaRef{}, fmt.Errorf("workbook has no sheets")
		}
		area.First.Sheet, area.Last.Sheet = sheets[0], sheets[0]
	}
	sheet := area.First.Sheet

	colX := make([]float64, area.Cols()+1)
	for c := 0; c < area.Cols(); c++ {
		w, err := wb.colWidth(sheet, area.First.Col+c)
		if err != nil {
			return nil, AreaRef{}, err
		}
		colX[c+1] = colX[c] + w
	}
	rowY := make([]float64, area.Rows()+1)
	for r := 0; r < area.Rows(); r++ {
		h, err := wb.rowHeight(sheet, area.First.Row+r)
		if err != nil {
			return nil, AreaRef{}, err
		}
		rowY[r+1] = rowY[r] + h
	}

	cells := make([]CellConfig, 0, area.Rows()*area.Cols())
	for r := 0; r < area.Rows(); r++ {
		for c := 0; c < area.Cols(); c++ {
			ref := CellRef{Sheet: sheet, Row: area.First.Row + r, Col: area.First.Col + c}
			cfg, err := wb.ReadCell(ref)
			if err != nil {
				return nil, AreaRef{}, err
			}
			cfg.Geometry.X = colX[c]
			cfg.Geometry.Y = rowY[r]
			cells = append(cells, cfg)
		}
	}
	return cells, area, nil
}

// ReadCell reads one cell. Geometry carries the cell's size (the span of
// the whole region for a merge anchor) with X and Y left at zero.
func (wb *Workbook) ReadCell(ref CellRef) (CellConfig, error) {
	sheet := ref.Sheet
	name := ref.CellName()
	var cfg CellConfig

	hidden, err := wb.isHidden(sheet, ref)
	if err != nil {
		return CellConfig{}, err
	}
	region, anchor, err := wb.mergeAt(sheet, ref)
	if err != nil {
		return CellConfig{}, err
	}
	if region != nil && !anchor {
		hidden = true
	}
	cfg.IsMergedCell = region != nil && anchor
	cfg.IsHidden = hidden

	span := AreaRef{First: ref, Last: ref}
	if cfg.IsMergedCell {
		span = *region
	}
	if cfg.Geometry, err = wb.spanSize(sheet, span); err != nil {
		return CellConfig{}, err
	}

	styleID, err := wb.file.GetCellStyle(sheet, name)
	if err != nil {
		return CellConfig{}, fmt.Errorf("read style of %s: %w", ref, err)
	}
	style, err := wb.style(styleID)
	if err != nil {
		return CellConfig{}, err
	}
	if err := wb.readValue(&cfg, ref, style); err != nil {
		return CellConfig{}, err
	}
	applyStyle(&cfg, style)
	return cfg, nil
}

// readValue sets Value, Datatype and the number format knobs.
func (wb *Workbook) readValue(cfg *CellConfig, ref CellRef, style *excelize.Style) error {
	sheet, name := ref.Sheet, ref.CellName()
	typ, err := wb.file.GetCellType(sheet, name)
	if err != nil {
		return fmt.Errorf("read type of %s: %w", ref, err)
	}
	raw, err := wb.file.GetCellValue(sheet, name, excelize.Options{RawCellValue: true})
	if err != nil {
		return fmt.Errorf("read value of %s: %w", ref, err)
	}

	applyNumFmt(cfg, style)
	switch typ {
	case excelize.CellTypeBool:
		cfg.Datatype = Boolean
		cfg.Value = raw == "1" || strings.EqualFold(raw, "true")
		return nil
	case excelize.CellTypeDate:
		cfg.Datatype = Date
		cfg.Value = raw
		return nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeError:
		cfg.Value = raw
	default:
		if raw == "" {
			cfg.Value = nil
		} else if n, err := strconv.ParseFloat(raw, 64); err == nil {
			if cfg.Datatype != Date {
				cfg.Datatype = Number
			}
			cfg.Value = n
			return nil
		} else {
			cfg.Value = raw
		}
	}

	cfg.Datatype = Text
	link, _, err := wb.file.GetCellHyperLink(sheet, name)
	if err != nil {
		return fmt.Errorf("read hyperlink of %s: %w", ref, err)
	}
	if link {
		cfg.Datatype = Hyperlink
	}
	return nil
}

// applyNumFmt maps built-in number format IDs and custom codes onto
// FormatSpec. Date formats flag the datatype as Date.
func applyNumFmt(cfg *CellConfig, style *excelize.Style) {
	two, zero := 2, 0
	switch id := style.NumFmt; {
	case id == 1 || id == 3:
		cfg.Format.Decimals = &zero
	case id == 2 || id == 4:
		cfg.Format.Decimals = &two
	case id == 5 || id == 6:
		cfg.Format.Currency, cfg.Format.Decimals = true, &zero
	case id == 7 || id == 8:
		cfg.Format.Currency, cfg.Format.Decimals = true, &two
	case id == 9:
		cfg.Format.Percent, cfg.Format.Decimals = true, &zero
	case id == 10:
		cfg.Format.Percent, cfg.Format.Decimals = true, &two
	case (id >= 14 && id <= 22) || (id >= 45 && id <= 47):
		cfg.Datatype = Date
	}
	if style.DecimalPlaces != nil {
		d := *style.DecimalPlaces
		cfg.Format.Decimals = &d
	}
	if style.CustomNumFmt != nil && *style.CustomNumFmt != "" {
		code := *style.CustomNumFmt
		cfg.Format.Pattern = code
		if strings.Contains(code, "%") {
			cfg.Format.Percent = true
		}
	}
}

// applyStyle copies font, fill, border and alignment attributes.
func applyStyle(cfg *CellConfig, style *excelize.Style) {
	if f := style.Font; f != nil {
		cfg.Style = StyleFlags{
			Bold:      f.Bold,
			Italic:    f.Italic,
			Underline: f.Underline != "" && f.Underline != "none",
			Strike:    f.Strike,
		}
		cfg.Color = xlsxColor(f.Color)
		cfg.FontFamily = f.Family
		if f.Size > 0 {
			cfg.FontSize = f.Size * 96 / 72
		}
	}
	if style.Fill.Type == "pattern" && style.Fill.Pattern == 1 && len(style.Fill.Color) > 0 {
		cfg.Fill = xlsxColor(style.Fill.Color[0])
	} else if style.Fill.Type == "gradient" && len(style.Fill.Color) > 0 {
		cfg.Fill = xlsxColor(style.Fill.Color[0])
	}
	for _, b := range style.Border {
		border := xlsxBorder(b)
		if border == nil {
			continue
		}
		switch b.Type {
		case "top":
			cfg.Borders.Top = border
		case "right":
			cfg.Borders.Right = border
		case "bottom":
			cfg.Borders.Bottom = border
		case "left":
			cfg.Borders.Left = border
		}
	}
	if a := style.Alignment; a != nil {
		switch a.Horizontal {
		case "left", "justify", "fill":
			cfg.HorizontalAlign = AlignLeft
		case "center", "centerContinuous", "distributed":
			cfg.HorizontalAlign = AlignCenter
		case "right":
			cfg.HorizontalAlign = AlignRight
		}
		switch a.Vertical {
		case "top":
			cfg.VerticalAlign = AlignTop
		case "center", "justify", "distributed":
			cfg.VerticalAlign = AlignMiddle
		case "bottom":
			cfg.VerticalAlign = AlignBottom
		}
		if a.WrapText {
			cfg.Wrap = WrapWord
		}
	}
}

// xlsxBorder maps an excelize border style index to width and dash.
func xlsxBorder(b excelize.Border) *Border {
	var width float64
	var dash []float64
	switch b.Style {
	case 0:
		return nil
	case 1:
		width = 1
	case 2:
		width = 2
	case 3:
		width, dash = 1, []float64{4, 2}
	case 4:
		width, dash = 1, []float64{1, 1}
	case 5, 6:
		width = 3
	case 7:
		width = 0.5
	case 8:
		width, dash = 2, []float64{4, 2}
	case 9, 11:
		width, dash = 1, []float64{4, 2, 1, 2}
	case 10, 12, 13:
		width, dash = 2, []float64{4, 2, 1, 2}
	default:
		width = 1
	}
	c := xlsxColor(b.Color)
	if c == "" {
		c = "#000000"
	}
	return &Border{Color: c, Width: width, Dash: dash}
}

// xlsxColor converts "RRGGBB" or "AARRGGBB" to "#rrggbb".
func xlsxColor(c string) string {
	c = strings.TrimPrefix(strings.TrimSpace(c), "#")
	switch len(c) {
	case 8:
		c = c[2:]
	case 6:
	default:
		return ""
	}
	return "#" + strings.ToLower(c)
}

func (wb *Workbook) style(id int) (*excelize.Style, error) {
	wb.mu.Lock()
	defer wb.mu.Unlock()
	if s, ok := wb.styles[id]; ok {
		return s, nil
	}
	s, err := wb.file.GetStyle(id)
	if err != nil {
		return nil, fmt.Errorf("read style %d: %w", id, err)
	}
	wb.styles[id] = s
	return s, nil
}

// mergeAt returns the merged region containing ref, if any, and whether ref
// is its top-left anchor.
func (wb *Workbook) mergeAt(sheet string, ref CellRef) (*AreaRef, bool, error) {
	areas, err := wb.sheetMerges(sheet)
	if err != nil {
		return nil, false, err
	}
	for i := range areas {
		if areas[i].Contains(ref) {
			a := areas[i]
			return &a, a.First.Row == ref.Row && a.First.Col == ref.Col, nil
		}
	}
	return nil, false, nil
}

func (wb *Workbook) sheetMerges(sheet string) ([]AreaRef, error) {
	wb.mu.Lock()
	defer wb.mu.Unlock()
	if areas, ok := wb.merges[sheet]; ok {
		return areas, nil
	}
	mcs, err := wb.file.GetMergeCells(sheet)
	if err != nil {
		return nil, fmt.Errorf("read merged cells of %q: %w", sheet, err)
	}
	areas := make([]AreaRef, 0, len(mcs))
	for _, mc := range mcs {
		area, err := ParseAreaRef(mc.GetStartAxis() + ":" + mc.GetEndAxis())
		if err != nil {
			return nil, fmt.Errorf("parse merged range on %q: %w", sheet, err)
		}
		area.First.Sheet, area.Last.Sheet = sheet, sheet
		areas = append(areas, area)
	}
	wb.merges[sheet] = areas
	return areas, nil
}

func (wb *Workbook) isHidden(sheet string, ref CellRef) (bool, error) {
	colVisible, err := wb.file.GetColVisible(sheet, ColToName(ref.Col))
	if err != nil {
		return false, fmt.Errorf("read column visibility of %s: %w", ref, err)
	}
	rows, err := wb.sheetHiddenRows(sheet)
	if err != nil {
		return false, err
	}
	return !colVisible || rows[ref.Row], nil
}

func (wb *Workbook) sheetHiddenRows(sheet string) (map[int]bool, error) {
	wb.mu.Lock()
	defer wb.mu.Unlock()
	if hidden, ok := wb.hiddenRows[sheet]; ok {
		return hidden, nil
	}
	rows, err := wb.file.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows of %q: %w", sheet, err)
	}
	defer rows.Close()
	hidden := make(map[int]bool)
	for i := 0; rows.Next(); i++ {
		if rows.GetRowOpts().Hidden {
			hidden[i] = true
		}
	}
	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("read rows of %q: %w", sheet, err)
	}
	wb.hiddenRows[sheet] = hidden
	return hidden, nil
}

// spanSize sums column widths and row heights over area, in pixels.
func (wb *Workbook) spanSize(sheet string, area AreaRef) (Rect, error) {
	var r Rect
	for c := area.First.Col; c <= area.Last.Col; c++ {
		w, err := wb.colWidth(sheet, c)
		if err != nil {
			return Rect{}, err
		}
		r.Width += w
	}
	for row := area.First.Row; row <= area.Last.Row; row++ {
		h, err := wb.rowHeight(sheet, row)
		if err != nil {
			return Rect{}, err
		}
		r.Height += h
	}
	return r, nil
}

// colWidth converts an Excel column width (in characters) to pixels using
// the 7px maximum digit width of the default font.
func (wb *Workbook) colWidth(sheet string, col int) (float64, error) {
	w, err := wb.file.GetColWidth(sheet, ColToName(col))
	if err != nil {
		return 0, fmt.Errorf("read width of column %s on %q: %w", ColToName(col), sheet, err)
	}
	const digit = 7.0
	return math.Trunc((256*w+math.Trunc(128/digit))/256*digit), nil
}

// rowHeight converts a row height in points to pixels.
func (wb *Workbook) rowHeight(sheet string, row int) (float64, error) {
	h, err := wb.file.GetRowHeight(sheet, row+1)
	if err != nil {
		return 0, fmt.Errorf("read height of row %d on %q: %w", row+1, sheet, err)
	}
	return math.Round(h * 96 / 72), nil
}
