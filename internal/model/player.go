package model

// PlayerKind distinguishes how a player chooses moves
type PlayerKind string

const (
	PlayerKindHuman    PlayerKind = "human"
	PlayerKindComputer PlayerKind = "computer"
)

// ComputerName is the display name given to the computer opponent
const ComputerName = "Computer"

// Player describes a game participant
type Player struct {
	Name string
	Mark Mark
	Kind PlayerKind
}

// IsComputer returns true for the random-move opponent
func (p Player) IsComputer() bool {
	return p.Kind == PlayerKindComputer
}
