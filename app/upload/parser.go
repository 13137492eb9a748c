// Package upload turns an admin-uploaded tabular file into point rows.
// Supported formats: CSV, TSV and a JSON array of objects. Excel files
// are recognized but handed off to external tooling, so they fail with a
// ParseError here.
package upload

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// Row is one parsed point entry: the contract between the parser and the
// importer.
type Row struct {
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Points    int    `json:"points"`
	ValidDays int    `json:"valid_days"`
}

// ParseError marks malformed input, as opposed to an I/O failure while
// reading it. Handlers map it to a 400.
type ParseError struct{ msg string }

func (e *ParseError) Error() string { return e.msg }

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{msg: fmt.Sprintf(format, args...)}
}

// Parse dispatches on the file extension.
func Parse(filename string, r io.Reader) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseDelimited(r, ',')
	case ".tsv":
		return parseDelimited(r, '\t')
	case ".json":
		return parseJSON(r)
	case ".xlsx", ".xls":
		return nil, parseErrorf("excel parsing is not supported, export to csv first")
	default:
		return nil, parseErrorf("unsupported file format %q, expected .csv, .tsv or .json", filepath.Ext(filename))
	}
}

// column indexes resolved from the header row
type columns struct {
	userID, userName, points, validDays int
}

func resolveColumns(header []string) (columns, error) {
	cols := columns{userID: -1, userName: -1, points: -1, validDays: -1}
	for i, name := range header {
		switch normalize(name) {
		case "userid":
			cols.userID = i
		case "username":
			cols.userName = i
		case "points", "totalpoints":
			cols.points = i
		case "validdays":
			cols.validDays = i
		}
	}
	var missing []string
	if cols.userID < 0 {
		missing = append(missing, "user_id")
	}
	if cols.points < 0 {
		missing = append(missing, "points")
	}
	if len(missing) > 0 {
		return cols, parseErrorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimPrefix(name, "\ufeff")
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(name)
}

func parseDelimited(r io.Reader, comma rune) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, parseErrorf("empty file")
	}
	if err != nil {
		return nil, parseErrorf("bad header row: %v", err)
	}
	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, parseErrorf("line %d: %v", line, err)
		}
		row, err := rowFromRecord(rec, cols, line)
		if err != nil {
			return nil, err
		}
		if row.UserID == "" {
			continue // blank line
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func rowFromRecord(rec []string, cols columns, line int) (Row, error) {
	field := func(i int) string {
		if i < 0 || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	row := Row{UserID: field(cols.userID), UserName: field(cols.userName)}
	if row.UserID == "" {
		return row, nil
	}
	var err error
	if row.Points, err = strconv.Atoi(field(cols.points)); err != nil {
		return row, parseErrorf("line %d: points is not a number: %q", line, field(cols.points))
	}
	if v := field(cols.validDays); v != "" {
		if row.ValidDays, err = strconv.Atoi(v); err != nil {
			return row, parseErrorf("line %d: valid_days is not a number: %q", line, v)
		}
	}
	return row, nil
}

func parseJSON(r io.Reader) ([]Row, error) {
	var raw []struct {
		UserID    string          `json:"user_id"`
		UserName  string          `json:"user_name"`
		Points    json.RawMessage `json:"points"`
		ValidDays json.RawMessage `json:"valid_days"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, parseErrorf("invalid json: %v", err)
	}
	rows := make([]Row, 0, len(raw))
	for i, item := range raw {
		if item.UserID == "" {
			return nil, parseErrorf("entry %d: missing user_id", i)
		}
		row := Row{UserID: item.UserID, UserName: item.UserName}
		var err error
		if row.Points, err = intField(item.Points); err != nil {
			return nil, parseErrorf("entry %d: points is not a number", i)
		}
		if len(item.ValidDays) > 0 {
			if row.ValidDays, err = intField(item.ValidDays); err != nil {
				return nil, parseErrorf("entry %d: valid_days is not a number", i)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// intField accepts both 5 and "5"; exported spreadsheets are sloppy about
// numeric cells.
func intField(raw json.RawMessage) (int, error) {
	if len(raw) == 0 {
		return 0, fmt.Errorf("missing")
	}
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	return strconv.Atoi(s)
}
