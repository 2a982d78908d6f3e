package plays

// Action is the play type recorded in the action column.
type Action string

const (
	ActionPass Action = "rec"
	ActionRush Action = "rush"
)

// Role separates the quarterback from everyone else. It is resolved once at load.
type Role int

const (
	RoleSkillPlayer Role = iota
	RolePasser
)

func (r Role) String() string {
	if r == RolePasser {
		return "passer"
	}
	return "skill"
}

// PlayRecord is one offensive play. Index is the position in the game file.
type PlayRecord struct {
	Index         int     `json:"index"`
	Down          int     `json:"down"`
	YardsToGo     int     `json:"ytg"`
	FieldPosition int     `json:"field_pos"`
	Player        string  `json:"player"`
	Action        Action  `json:"action"`
	Completed     bool    `json:"completed"`
	Yards         float64 `json:"yds"`
	Converted     bool    `json:"converted"`
	Contributed   bool    `json:"contributed"`
	Opponent      string  `json:"opp,omitempty"`
	Role          Role    `json:"-"`
}

// Efficient reports whether the play gained more than 5 yards or converted.
func (p PlayRecord) Efficient() bool {
	return p.Yards > 5 || p.Converted
}

// PlaySet is an ordered subsequence of a game's plays.
type PlaySet []PlayRecord

// Table is a loaded game file.
type Table struct {
	Source         string
	Plays          PlaySet
	HasContributed bool
}
