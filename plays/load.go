package plays

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
)

var requiredColumns = []string{"down", "ytg", "field_pos", "player", "action", "completed", "yds", "converted"}

const (
	NotesMissing    = "Notes file not found. Please check the file path."
	NotesUnreadable = "Notes file could not be read past this point"
)

type LoadOptions struct {
	// Quarterback is the player key tagged RolePasser.
	Quarterback string
}

// Load reads a game's play file.
func Load(path string, opts LoadOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingInputError{Path: path}
		}
		return nil, err
	}
	defer f.Close()

	t, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t.Source = path
	return t, nil
}

// Read parses CSV play rows. Columns are located by header name; extra columns
// (including a leading unnamed index column) are ignored.
func Read(r io.Reader, opts LoadOptions) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty file", ErrMalformedInput)
		}
		return nil, fmt.Errorf("%w: reading header: %v", ErrMalformedInput, err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrMalformedInput, c)
		}
	}
	_, hasContributed := cols["contributed"]

	// rows must reach the last required column; trailing extras are ignored
	width := 0
	for _, c := range requiredColumns {
		width = max(width, cols[c]+1)
	}

	t := &Table{HasContributed: hasContributed}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedInput, line, err)
		}
		if blank(rec) {
			continue
		}

		if len(rec) < width {
			return nil, fmt.Errorf("%w: line %d: %d fields, want at least %d", ErrMalformedInput, line, len(rec), width)
		}

		row := rowReader{rec: rec, cols: cols, line: line}
		p := PlayRecord{
			Index:         len(t.Plays),
			Down:          row.intField("down", 1, 4),
			YardsToGo:     row.intField("ytg", 0, 100),
			FieldPosition: row.intField("field_pos", 0, 100),
			Player:        row.field("player"),
			Action:        Action(row.field("action")),
			Completed:     row.boolField("completed"),
			Yards:         row.floatField("yds"),
			Converted:     row.boolField("converted"),
			Contributed:   row.boolField("contributed"),
			Opponent:      row.field("opp"),
		}
		if row.err != nil {
			return nil, row.err
		}
		if p.Player == opts.Quarterback && opts.Quarterback != "" {
			p.Role = RolePasser
		}
		t.Plays = append(t.Plays, p)
	}
	return t, nil
}

// LoadNotes returns one trimmed note per line. A missing file yields a single
// placeholder note instead of an error.
func LoadNotes(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return []string{NotesMissing}
	}
	defer f.Close()

	var notes []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		notes = append(notes, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		notes = append(notes, fmt.Sprintf("%s: %v", NotesUnreadable, err))
	}
	return notes
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// rowReader keeps the first conversion error so a row can be read field by field.
type rowReader struct {
	rec  []string
	cols map[string]int
	line int
	err  error
}

func (r *rowReader) field(col string) string {
	i, ok := r.cols[col]
	if !ok || i >= len(r.rec) {
		return ""
	}
	return strings.TrimSpace(r.rec[i])
}

func (r *rowReader) fail(col, v string) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: line %d: column %q: bad value %q", ErrMalformedInput, r.line, col, v)
	}
}

// floatField reads a required number; an empty cell is an error.
func (r *rowReader) floatField(col string) float64 {
	v := r.field(col)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		r.fail(col, v)
		return 0
	}
	return f
}

// intField reads a whole number within [lo, hi]. "3.0" is accepted, "2.5" is not.
func (r *rowReader) intField(col string, lo, hi int) int {
	v := r.field(col)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f != math.Trunc(f) || f < float64(lo) || f > float64(hi) {
		r.fail(col, v)
		return 0
	}
	return int(f)
}

func (r *rowReader) boolField(col string) bool {
	v := r.field(col)
	if v == "" {
		return false
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f != 0
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.fail(col, v)
	}
	return b
}
