package recycling

// InputKind classifies a player input in field coordinates.
type InputKind int

const (
	DragBegin InputKind = iota // Grab the trash under (X, Y)
	DragMove                   // Move the grab point to (X, Y)
	DragEnd                    // Let go
)

// String returns a human-readable name for the input kind.
func (k InputKind) String() string {
	switch k {
	case DragBegin:
		return "DragBegin"
	case DragMove:
		return "DragMove"
	case DragEnd:
		return "DragEnd"
	default:
		return "Unknown"
	}
}

// Input is one pointer action. X and Y are ignored for DragEnd.
type Input struct {
	Kind InputKind
	X, Y float64
}

// Begin returns a DragBegin input.
func Begin(x, y float64) Input { return Input{Kind: DragBegin, X: x, Y: y} }

// Move returns a DragMove input.
func Move(x, y float64) Input { return Input{Kind: DragMove, X: x, Y: y} }

// End returns a DragEnd input.
func End() Input { return Input{Kind: DragEnd} }
