package game

// Canvas is the drawing surface World and its entities render onto.
// Coordinates are playfield units; implementations scale as needed.
type Canvas interface {
	ClearRect(x, y, w, h float64)
	SetFillStyle(color string)
	FillRect(x, y, w, h float64)
	FillCircle(x, y, r float64)
	StrokeLine(x1, y1, x2, y2 float64)
}
