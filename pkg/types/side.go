package types

// Side identifies one leg of the gait cycle.
type Side int

const (
	Left Side = iota
	Right
)

// String returns the string representation of a Side.
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseSide converts a configuration string into a Side.
func ParseSide(s string) (Side, bool) {
	switch s {
	case "left":
		return Left, true
	case "right":
		return Right, true
	default:
		return Left, false
	}
}
