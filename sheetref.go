package gridpaint

import (
	"fmt"
	"strconv"
	"strings"
)

// Worksheet limits, matching excelize. The last column is XFD.
const (
	MaxColumns = 16384
	MaxRows    = 1048576
)

// CellRef addresses one worksheet cell. Row and Col are 0-based.
type CellRef struct {
	Sheet string
	Row   int
	Col   int
}

// ParseCellRef parses "A1", "Sheet1!B5", "'My Sheet'!$C$3".
func ParseCellRef(s string) (CellRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CellRef{}, fmt.Errorf("empty cell reference")
	}
	var sheet string
	name := s
	if idx := strings.LastIndex(s, "!"); idx >= 0 {
		sheet = strings.Trim(s[:idx], "'")
		name = s[idx+1:]
	}
	name = strings.ReplaceAll(name, "$", "")

	i := 0
	for i < len(name) && isLetter(name[i]) {
		i++
	}
	if i == 0 || i == len(name) {
		return CellRef{}, fmt.Errorf("invalid cell reference %q", s)
	}
	col, err := NameToCol(name[:i])
	if err != nil {
		return CellRef{}, fmt.Errorf("invalid cell reference %q: %w", s, err)
	}
	row, err := strconv.Atoi(name[i:])
	if err != nil || row < 1 || row > MaxRows {
		return CellRef{}, fmt.Errorf("invalid row in cell reference %q", s)
	}
	return CellRef{Sheet: sheet, Row: row - 1, Col: col}, nil
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// String formats the ref as "Sheet1!A1", or "A1" without a sheet.
func (c CellRef) String() string {
	if c.Sheet != "" {
		return c.Sheet + "!" + c.CellName()
	}
	return c.CellName()
}

// CellName returns the A1-style name without the sheet.
func (c CellRef) CellName() string {
	return ColToName(c.Col) + strconv.Itoa(c.Row+1)
}

// ColToName converts a 0-based column index to letters: 0→"A", 26→"AA".
func ColToName(col int) string {
	var b []byte
	for col++; col > 0; col /= 26 {
		col--
		b = append([]byte{byte('A' + col%26)}, b...)
	}
	return string(b)
}

// NameToCol converts column letters to a 0-based index: "A"→0, "AA"→26.
// Columns past XFD are rejected.
func NameToCol(name string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("empty column name")
	}
	if len(name) > 3 {
		return 0, fmt.Errorf("column %q exceeds %s", name, ColToName(MaxColumns-1))
	}
	col := 0
	for _, ch := range strings.ToUpper(name) {
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("invalid column name %q", name)
		}
		col = col*26 + int(ch-'A') + 1
	}
	if col > MaxColumns {
		return 0, fmt.Errorf("column %q exceeds %s", name, ColToName(MaxColumns-1))
	}
	return col - 1, nil
}

// AreaRef is an inclusive rectangular range of cells on one sheet.
type AreaRef struct {
	First CellRef
	Last  CellRef
}

// ParseAreaRef parses "A1:C5" or "Sheet1!A1:C5". A single cell reference is
// accepted as a one-cell area. Corners are reordered so First is top-left.
func ParseAreaRef(s string) (AreaRef, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	first, err := ParseCellRef(parts[0])
	if err != nil {
		return AreaRef{}, fmt.Errorf("invalid area reference %q: %w", s, err)
	}
	last := first
	if len(parts) == 2 {
		last, err = ParseCellRef(parts[1])
		if err != nil {
			return AreaRef{}, fmt.Errorf("invalid area reference %q: %w", s, err)
		}
		if last.Sheet == "" {
			last.Sheet = first.Sheet
		}
	}
	if first.Row > last.Row {
		first.Row, last.Row = last.Row, first.Row
	}
	if first.Col > last.Col {
		first.Col, last.Col = last.Col, first.Col
	}
	return AreaRef{First: first, Last: last}, nil
}

// String formats the area as "Sheet1!A1:C5" or "A1:C5".
func (a AreaRef) String() string {
	if a.First.Sheet != "" {
		return a.First.Sheet + "!" + a.First.CellName() + ":" + a.Last.CellName()
	}
	return a.First.CellName() + ":" + a.Last.CellName()
}

// Rows and Cols return the area's dimensions.
func (a AreaRef) Rows() int { return a.Last.Row - a.First.Row + 1 }
func (a AreaRef) Cols() int { return a.Last.Col - a.First.Col + 1 }

// CellAt returns the i-th cell of the area in row-major order.
func (a AreaRef) CellAt(i int) CellRef {
	cols := a.Cols()
	return CellRef{Sheet: a.First.Sheet, Row: a.First.Row + i/cols, Col: a.First.Col + i%cols}
}

// Contains reports whether ref lies inside the area. Sheets are compared
// only when both are set.
func (a AreaRef) Contains(ref CellRef) bool {
	if a.First.Sheet != "" && ref.Sheet != "" && a.First.Sheet != ref.Sheet {
		return false
	}
	return ref.Row >= a.First.Row && ref.Row <= a.Last.Row &&
		ref.Col >= a.First.Col && ref.Col <= a.Last.Col
}
