package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

const (
	// PlayerVsComputer - human plays X, the computer plays O.
	PlayerVsComputer Mode = "pvc"
	// PlayerVsPlayer - two humans share the console.
	PlayerVsPlayer Mode = "pvp"
	// ComputerVsComputer - the computer plays both sides.
	ComputerVsComputer Mode = "cvc"
)

// Difficulty is a named search depth tier.
type Difficulty string

func ParseDifficulty(value string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(value))); d {
	case Easy, Medium, Hard:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, value)
	}
}

type Mode string

func ParseMode(value string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(value))); m {
	case PlayerVsComputer, PlayerVsPlayer, ComputerVsComputer:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownMode, value)
	}
}

// IsComputer reports whether side is played by the computer in this mode.
func (that Mode) IsComputer(side Side) bool {
	switch that {
	case ComputerVsComputer:
		return true
	case PlayerVsComputer:
		return side == O
	default:
		return false
	}
}

// HasComputer reports whether any side needs a search depth.
func (that Mode) HasComputer() bool {
	return that.IsComputer(X) || that.IsComputer(O)
}
