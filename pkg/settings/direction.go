package settings

// Direction is the side a drop shadow falls towards.
type Direction string

const (
	BottomRight Direction = "bottom_right"
	Bottom      Direction = "bottom"
	BottomLeft  Direction = "bottom_left"
	Left        Direction = "left"
	Center      Direction = "center"
	TopLeft     Direction = "top_left"
	Top         Direction = "top"
	TopRight    Direction = "top_right"
	Right       Direction = "right"
	Custom      Direction = "custom"
)

// Coords returns the unit offset of the shadow. Center, custom and unknown
// directions produce no offset.
func (d Direction) Coords() (x, y float64) {
	switch d {
	case BottomRight:
		return 1, 1
	case Bottom:
		return 0, 1
	case BottomLeft:
		return -1, 1
	case Left:
		return -1, 0
	case TopLeft:
		return -1, -1
	case Top:
		return 0, -1
	case TopRight:
		return 1, -1
	case Right:
		return 1, 0
	}
	return 0, 0
}
