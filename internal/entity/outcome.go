package entity

type State uint8

const (
	StateInProgress State = iota
	StateDraw
	StateWinner
)

// Outcome is the classification of a board position. A winner mark is
// only carried by StateWinner, so the zero value means in progress.
type Outcome struct {
	state  State
	winner Mark
}

func InProgress() Outcome {
	return Outcome{state: StateInProgress}
}

func Draw() Outcome {
	return Outcome{state: StateDraw}
}

func Winner(mark Mark) Outcome {
	return Outcome{state: StateWinner, winner: mark}
}

func (that Outcome) State() State {
	return that.state
}

// Winner - returns the winning mark and true, or Empty and false when nobody has won.
func (that Outcome) Winner() (Mark, bool) {
	if that.state != StateWinner {
		return Empty, false
	}
	return that.winner, true
}

func (that Outcome) IsFinished() bool {
	return that.state != StateInProgress
}

func (that Outcome) String() string {
	switch that.state {
	case StateDraw:
		return "draw"
	case StateWinner:
		return "winner " + that.winner.String()
	default:
		return "in progress"
	}
}
