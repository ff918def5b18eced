package tetris

// Command is one token of the external command alphabet (§4.G). The
// literal values are part of the wire contract and must not change.
type Command string

const (
	CmdMoveLeft   Command = "move_left"
	CmdMoveRight  Command = "move_right"
	CmdSonicLeft  Command = "sonic_left"
	CmdSonicRight Command = "sonic_right"
	CmdDrop       Command = "drop"
	CmdSonicDrop  Command = "sonic_drop"
	CmdRotateCW   Command = "rotate_cw"
	CmdRotateCCW  Command = "rotate_ccw"
	CmdHold       Command = "hold"
	CmdHardDrop   Command = "hard_drop"
)

var validCommands = map[Command]bool{
	CmdMoveLeft:   true,
	CmdMoveRight:  true,
	CmdSonicLeft:  true,
	CmdSonicRight: true,
	CmdDrop:       true,
	CmdSonicDrop:  true,
	CmdRotateCW:   true,
	CmdRotateCCW:  true,
	CmdHold:       true,
	CmdHardDrop:   true,
}

// Event is the tagged union of state-machine notifications. EventType
// identifies the variant; only the matching accessor fields are
// meaningful.
type Event struct {
	EventType EventType `json:"type"`

	// PiecePlaced
	Initial PieceData `json:"initial,omitempty"`
	Final   PieceData `json:"final,omitempty"`

	// Clear
	Name          ClearName `json:"name,omitempty"`
	AllSpin       bool      `json:"all_spin,omitempty"`
	B2B           bool      `json:"b2b,omitempty"`
	Combo         int       `json:"combo,omitempty"`
	PC            bool      `json:"pc,omitempty"`
	Attack        int           `json:"attack,omitempty"`
	Cancelled     int           `json:"cancelled,omitempty"`
	Piece         PieceData     `json:"piece,omitempty"`
	ClearedLines  []ClearedLine `json:"cleared_lines,omitempty"`

	// DamageTanked
	HoleIndices []int `json:"hole_indices,omitempty"`
}

// EventType is the discriminant of Event, matching §6's snake_case type
// strings exactly.
type EventType string

const (
	EventPiecePlaced  EventType = "piece_placed"
	EventClear        EventType = "clear"
	EventDamageTanked EventType = "damage_tanked"
	EventGameOver     EventType = "game_over"
)
