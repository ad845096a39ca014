package cutmarks

// Buffer kept around each mark when deriving safe-zone margins, in pixels.
const markBuffer = 20

// computeSafeZone derives the keep-out rectangle from the validated marks.
//
// With no marks the zone is conservative: a uniform margin of 5% of the
// smaller dimension. With marks, each mark pushes the margin of its nearest
// edge past the mark by a 20px buffer, and every margin is floored at 2% of
// the smaller dimension.
func computeSafeZone(marks []Mark, width, height int) SafeZone {
	w := float64(width)
	h := float64(height)

	if len(marks) == 0 {
		margin := min(w, h) * 0.05
		return SafeZone{
			X:      margin,
			Y:      margin,
			Width:  w - 2*margin,
			Height: h - 2*margin,
			Margins: Margins{
				Top: margin, Bottom: margin, Left: margin, Right: margin,
			},
		}
	}

	floor := min(w, h) * 0.02
	m := Margins{Top: floor, Bottom: floor, Left: floor, Right: floor}

	for _, mark := range marks {
		x := float64(mark.Position.X)
		y := float64(mark.Position.Y)

		// Attribute the mark to its nearest edge and push that margin
		// past it.
		switch min(x, y, w-x, h-y) {
		case y:
			m.Top = max(m.Top, y+markBuffer)
		case h - y:
			m.Bottom = max(m.Bottom, h-y+markBuffer)
		case x:
			m.Left = max(m.Left, x+markBuffer)
		default:
			m.Right = max(m.Right, w-x+markBuffer)
		}
	}

	return SafeZone{
		X:       m.Left,
		Y:       m.Top,
		Width:   w - m.Left - m.Right,
		Height:  h - m.Top - m.Bottom,
		Margins: m,
	}
}
