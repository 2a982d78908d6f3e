package plays

import (
	"path/filepath"
	"strings"
	"time"
)

// GameFile is what a conventionally named play file says about its game,
// e.g. "FSU-GT-08-24-24-PLAYS" is GT against FSU on 2024-08-24.
type GameFile struct {
	Name     string
	Opponent string
	Team     string
	Date     time.Time
}

// Slug is the URL key for the game: lower-case opponent and date.
func (g GameFile) Slug() string {
	return strings.ToLower(g.Opponent) + "-" + g.Date.Format("2006-01-02")
}

// ParseGameFile parses <OPP>-<TEAM>-MM-DD-YY-PLAYS. Extensions are ignored.
func ParseGameFile(path string) (GameFile, bool) {
	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	parts := strings.Split(stem, "-")
	if len(parts) != 6 || !strings.EqualFold(parts[5], "PLAYS") {
		return GameFile{}, false
	}
	if parts[0] == "" || parts[1] == "" {
		return GameFile{}, false
	}

	date, err := time.Parse("01-02-06", strings.Join(parts[2:5], "-"))
	if err != nil {
		return GameFile{}, false
	}

	return GameFile{
		Name:     name,
		Opponent: strings.ToUpper(parts[0]),
		Team:     strings.ToUpper(parts[1]),
		Date:     date,
	}, true
}
