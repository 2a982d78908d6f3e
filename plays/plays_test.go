package plays

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"film-room/assert"
)

const sampleCSV = `,down,ytg,field_pos,player,action,completed,yds,converted,contributed,opp
0,1,10,25,haynes,rush,False,3.0,False,1,FSU
1,2,7,28,king,rec,True,12.0,True,1,FSU
2,1,10,55,singleton,rec,False,0.0,False,0,FSU
3,3,4,82,haynes,rush,,-2,False,0,FSU
4,1,10,90,king,rush,False,6,True,1,FSU
`

func TestRead(t *testing.T) {
	tbl, err := Read(strings.NewReader(sampleCSV), LoadOptions{Quarterback: "king"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assert.Equal(t, len(tbl.Plays), 5)
	assert.Equal(t, tbl.HasContributed, true)

	p := tbl.Plays[1]
	assert.Equal(t, p.Index, 1)
	assert.Equal(t, p.Down, 2)
	assert.Equal(t, p.YardsToGo, 7)
	assert.Equal(t, p.FieldPosition, 28)
	assert.Equal(t, p.Player, "king")
	assert.Equal(t, p.Action, ActionPass)
	assert.Equal(t, p.Completed, true)
	assert.Equal(t, p.Yards, 12.0)
	assert.Equal(t, p.Converted, true)
	assert.Equal(t, p.Contributed, true)
	assert.Equal(t, p.Opponent, "FSU")
	assert.Equal(t, p.Role, RolePasser)

	assert.Equal(t, tbl.Plays[0].Role, RoleSkillPlayer)
	assert.Equal(t, tbl.Plays[3].Yards, -2.0)
	assert.Equal(t, tbl.Plays[3].Completed, false)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{name: "Empty", csv: ""},
		{name: "Missing Column", csv: "down,ytg,field_pos,player,action,completed,yds\n1,10,25,a,rush,False,3\n"},
		{name: "Bad Number", csv: "down,ytg,field_pos,player,action,completed,yds,converted\n1,10,x,a,rush,False,3,False\n"},
		{name: "Bad Bool", csv: "down,ytg,field_pos,player,action,completed,yds,converted\n1,10,25,a,rush,maybe,3,False\n"},
		{name: "Truncated Row", csv: "down,ytg,field_pos,player,action,completed,yds,converted\n1,10,25,a,rush,False,4,False\n2,7\n"},
		{name: "Empty Yards", csv: "down,ytg,field_pos,player,action,completed,yds,converted\n1,10,30,b,rush,False,,False\n"},
		{name: "Empty Down", csv: "down,ytg,field_pos,player,action,completed,yds,converted\n,10,30,b,rush,False,3,False\n"},
		{name: "Fractional Down", csv: "down,ytg,field_pos,player,action,completed,yds,converted\n2.5,10,30,b,rush,False,3,False\n"},
		{name: "Fifth Down", csv: "down,ytg,field_pos,player,action,completed,yds,converted\n5,10,30,b,rush,False,3,False\n"},
		{name: "Field Position Past Goal", csv: "down,ytg,field_pos,player,action,completed,yds,converted\n1,10,101,b,rush,False,3,False\n"},
		{name: "Negative Field Position", csv: "down,ytg,field_pos,player,action,completed,yds,converted\n1,10,-1,b,rush,False,3,False\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.csv), LoadOptions{})
			assert.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestReadWholeNumberText(t *testing.T) {
	csv := "down,ytg,field_pos,player,action,completed,yds,converted,extra\n3.0,4,100,a,rush,False,1.5,True,x\n"
	tbl, err := Read(strings.NewReader(csv), LoadOptions{})
	assert.NilError(t, err)
	assert.Equal(t, tbl.Plays[0].Down, 3)
	assert.Equal(t, tbl.Plays[0].FieldPosition, 100)
	assert.Equal(t, tbl.Plays[0].Yards, 1.5)
}

func TestReadWithoutOptionalColumns(t *testing.T) {
	csv := "down,ytg,field_pos,player,action,completed,yds,converted\n1,10,25,a,rush,False,3,False\n\n"
	tbl, err := Read(strings.NewReader(csv), LoadOptions{})
	assert.NilError(t, err)
	assert.Equal(t, tbl.HasContributed, false)
	assert.Equal(t, len(tbl.Plays), 1)
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "NOPE-GT-01-01-24-PLAYS")
	_, err := Load(path, LoadOptions{})

	assert.ErrorIs(t, err, ErrMissingInput)
	var missing *MissingInputError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingInputError, got %T", err)
	}
	assert.Equal(t, missing.Path, path)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "FSU-GT-08-24-24-PLAYS")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	tbl, err := Load(path, LoadOptions{Quarterback: "king"})
	assert.NilError(t, err)
	assert.Equal(t, tbl.Source, path)
	assert.Equal(t, len(tbl.Plays), 5)
}

func TestLoadNotes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("  first note\nsecond note  \n"), 0o644); err != nil {
		t.Fatal(err)
	}

	assert.StringSliceEqual(t, LoadNotes(path), []string{"first note", "second note"})
	assert.StringSliceEqual(t, LoadNotes(filepath.Join(dir, "missing.txt")), []string{NotesMissing})
}

func TestLoadNotesLongLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	content := "first note\n" + strings.Repeat("x", 70*1024) + "\nlast note\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	notes := LoadNotes(path)
	assert.Equal(t, len(notes), 2)
	assert.Equal(t, notes[0], "first note")
	assert.StringContains(t, notes[1], NotesUnreadable)
}

func TestParseGameFile(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		ok       bool
		opponent string
		slug     string
	}{
		{name: "FSU", path: "./data/FSU-GT-08-24-24-PLAYS", ok: true, opponent: "FSU", slug: "fsu-2024-08-24"},
		{name: "With Extension", path: "GAST-GT-08-31-24-PLAYS.csv", ok: true, opponent: "GAST", slug: "gast-2024-08-31"},
		{name: "Bad Date", path: "FSU-GT-13-40-24-PLAYS", ok: false},
		{name: "Not Plays", path: "FSU-GT-08-24-24-NOTES", ok: false},
		{name: "Short", path: "notes.txt", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, ok := ParseGameFile(tt.path)
			assert.Equal(t, ok, tt.ok)
			if !ok {
				return
			}
			assert.Equal(t, g.Opponent, tt.opponent)
			assert.Equal(t, g.Team, "GT")
			assert.Equal(t, g.Slug(), tt.slug)
		})
	}

	g, _ := ParseGameFile("FSU-GT-08-24-24-PLAYS")
	assert.Equal(t, g.Date, time.Date(2024, time.August, 24, 0, 0, 0, 0, time.UTC))
}
