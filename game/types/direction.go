package types

// Direction is a cardinal heading
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

var directionNames = [...]string{"none", "up", "right", "down", "left"}

func (d Direction) String() string {
	if d < None || d > Left {
		return "invalid"
	}
	return directionNames[d]
}

// Valid reports whether d is one of the four movement directions
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// Opposite returns the reverse heading, None stays None
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// IsOpposite reports whether a and b point in exactly reverse directions
func IsOpposite(a, b Direction) bool {
	return a != None && b != None && a.Opposite() == b
}

// TurnLeft rotates 90 degrees counter-clockwise
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	case Left:
		return Down
	default:
		return d
	}
}

// TurnRight rotates 90 degrees clockwise
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return d
	}
}

// Step converts the direction into a movement vector of the given length.
// Screen coordinates: Y grows downwards.
func (d Direction) Step(length float64) Vector2 {
	switch d {
	case Up:
		return Vector2{X: 0, Y: -length}
	case Right:
		return Vector2{X: length, Y: 0}
	case Down:
		return Vector2{X: 0, Y: length}
	case Left:
		return Vector2{X: -length, Y: 0}
	default:
		return Vector2{}
	}
}

// DirectionOf maps a step vector back to its heading
func DirectionOf(v Vector2) Direction {
	switch {
	case v.Y < 0:
		return Up
	case v.X > 0:
		return Right
	case v.Y > 0:
		return Down
	case v.X < 0:
		return Left
	default:
		return None
	}
}
