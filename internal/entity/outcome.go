package entity

import "fmt"

const (
	InProgress Outcome = iota
	XWins
	OWins
	Tie
)

var outcomeNames = map[Outcome]string{
	InProgress: "in_progress",
	XWins:      "x_wins",
	OWins:      "o_wins",
	Tie:        "tie",
}

// Outcome is the state of a game: in progress, or one of the three absorbing results.
type Outcome int

// WinOutcome returns the outcome in which side has won.
func WinOutcome(side Side) Outcome {
	if side == X {
		return XWins
	}
	return OWins
}

func (that Outcome) IsEnded() bool {
	return that != InProgress
}

// Message is the text shown to the players when the game ends.
func (that Outcome) Message() string {
	switch that {
	case XWins:
		return "Player X wins!"
	case OWins:
		return "Player O wins!"
	case Tie:
		return "It's a tie!"
	default:
		return ""
	}
}

func (that Outcome) String() string {
	return outcomeNames[that]
}

func (that Outcome) MarshalText() ([]byte, error) {
	name, ok := outcomeNames[that]
	if !ok {
		return nil, fmt.Errorf("unknown outcome %d", int(that))
	}
	return []byte(name), nil
}

func (that *Outcome) UnmarshalText(text []byte) error {
	for outcome, name := range outcomeNames {
		if name == string(text) {
			*that = outcome
			return nil
		}
	}

	return fmt.Errorf("unknown outcome %q", text)
}
