package torus

import "strings"

// Direction is a 4-bit mask; diagonals are the OR of two cardinal bits
type Direction uint8

const (
	None  Direction = 0x00
	Up    Direction = 0x01
	Down  Direction = 0x02
	Left  Direction = 0x04
	Right Direction = 0x08

	UpLeft    = Up | Left
	UpRight   = Up | Right
	DownLeft  = Down | Left
	DownRight = Down | Right

	mask = Up | Down | Left | Right
)

// Cardinals lists the four single-bit directions in tie-break order
var Cardinals = [4]Direction{Up, Down, Left, Right}

// Effective strips cancelling pairs (Up+Down, Left+Right)
func (dir Direction) Effective() Direction {
	dir &= mask
	if dir&Up != 0 && dir&Down != 0 {
		dir &^= Up | Down
	}
	if dir&Left != 0 && dir&Right != 0 {
		dir &^= Left | Right
	}
	return dir
}

// Inverse swaps Up/Down and Left/Right bits
func (dir Direction) Inverse() Direction {
	var inv Direction
	if dir&Up != 0 {
		inv |= Down
	}
	if dir&Down != 0 {
		inv |= Up
	}
	if dir&Left != 0 {
		inv |= Right
	}
	if dir&Right != 0 {
		inv |= Left
	}
	return inv
}

// IsCardinal reports whether exactly one bit is set
func (dir Direction) IsCardinal() bool {
	return dir == Up || dir == Down || dir == Left || dir == Right
}

// Components splits dir into its cardinal bits in Up, Down, Left, Right order
func (dir Direction) Components() []Direction {
	out := make([]Direction, 0, 2)
	for _, c := range Cardinals {
		if dir&c != 0 {
			out = append(out, c)
		}
	}
	return out
}

// StopDirection is the facing kept when movement stops after dir was requested.
// Diagonals face sideways; anything else faces up.
func StopDirection(dir Direction) Direction {
	switch dir {
	case Up, Down, Left, Right:
		return dir
	case UpLeft, DownLeft:
		return Left
	case UpRight, DownRight:
		return Right
	default:
		return Up
	}
}

func (dir Direction) String() string {
	if dir&mask == None {
		return "none"
	}
	names := make([]string, 0, 2)
	if dir&Up != 0 {
		names = append(names, "up")
	}
	if dir&Down != 0 {
		names = append(names, "down")
	}
	if dir&Left != 0 {
		names = append(names, "left")
	}
	if dir&Right != 0 {
		names = append(names, "right")
	}
	return strings.Join(names, "+")
}
