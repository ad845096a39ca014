package cutmarks

import (
	"image"
	"math"
	"sort"
)

// Fixed per-kind confidences. A corner cross (two perpendicular segments)
// is hard to produce by accident; a lone edge tick is not.
const (
	confCornerCross        = 0.8
	confRegistrationCircle = 0.7
	confEdgeLine           = 0.6
)

// Detector locates cut and registration marks on a rendered page image.
// The zero value uses the standard print-mark radius range (3-20px).
type Detector struct {
	// MinCircleRadius and MaxCircleRadius bound the registration-circle
	// search in pixels. Zero values select the defaults 3 and 20.
	MinCircleRadius int
	MaxCircleRadius int
}

// Detect analyzes a page image and returns the validated marks plus the
// derived safe zone.
//
// Detect never fails hard: a nil or empty image, or any internal panic,
// yields an empty Result with the conservative default safe zone. The
// returned error is reserved for future use and is currently always nil.
func (d *Detector) Detect(img image.Image) (res *Result, err error) {
	var width, height int
	if img != nil {
		width = img.Bounds().Dx()
		height = img.Bounds().Dy()
	}

	defer func() {
		if r := recover(); r != nil {
			res = emptyResult(width, height)
			err = nil
		}
	}()

	if width <= 0 || height <= 0 {
		return emptyResult(width, height), nil
	}

	edges := detectEdges(img, width, height)

	marks := detectCornerCrosses(edges, width, height)
	marks = append(marks, detectEdgeTicks(edges, width, height)...)
	marks = append(marks, d.detectRegistrationCircles(edges, width, height)...)

	validated := validateMarks(marks, width, height)

	return &Result{
		Detected:   len(validated) > 0,
		Marks:      validated,
		SafeZone:   computeSafeZone(validated, width, height),
		PageWidth:  width,
		PageHeight: height,
	}, nil
}

func emptyResult(width, height int) *Result {
	return &Result{
		Marks:      []Mark{},
		SafeZone:   computeSafeZone(nil, width, height),
		PageWidth:  width,
		PageHeight: height,
	}
}

// detectCornerCrosses searches the four corner windows (10% of the smaller
// page dimension) for a cross pattern: one horizontal and one vertical edge
// run, each long enough to be a deliberate trim mark. The two runs are
// perpendicular by construction, matching the classic corner cross.
func detectCornerCrosses(edges [][]bool, width, height int) []Mark {
	window := min(width, height) / 10
	if window < 4 {
		return nil
	}

	minSegment := 10
	if window < 2*minSegment {
		minSegment = max(3, window/2)
	}

	corners := []struct {
		x, y int
	}{
		{0, 0},
		{width - window, 0},
		{0, height - window},
		{width - window, height - window},
	}

	marks := make([]Mark, 0, 4)
	for i, c := range corners {
		hRun := longestHorizontalRun(edges, c.x, c.y, window, window)
		vRun := longestVerticalRun(edges, c.x, c.y, window, window)

		if hRun >= minSegment && vRun >= minSegment {
			marks = append(marks, Mark{
				Type:       TypeCornerCross,
				Position:   Point{X: c.x + window/2, Y: c.y + window/2},
				Confidence: confCornerCross,
				Corner:     i,
			})
		}
	}
	return marks
}

// detectEdgeTicks searches the 20px bands along each page edge for short
// tick marks perpendicular to that edge: vertical runs in the top/bottom
// bands, horizontal runs in the left/right bands. Nearby candidates from
// adjacent scan lines are merged into a single mark.
func detectEdgeTicks(edges [][]bool, width, height int) []Mark {
	const bandDepth = 20
	const minTick = 5

	band := min(bandDepth, min(width, height)/4)
	if band < minTick {
		return nil
	}

	marks := make([]Mark, 0)

	// Top and bottom bands: vertical ticks, one candidate per column.
	for _, b := range []struct {
		name string
		y0   int
	}{{"top", 0}, {"bottom", height - band}} {
		var cand []Point
		for x := 0; x < width; x++ {
			if run, mid := verticalRunAt(edges, x, b.y0, band); run >= minTick {
				cand = append(cand, Point{X: x, Y: mid})
			}
		}
		for _, p := range mergeClose(cand) {
			marks = append(marks, Mark{
				Type:       TypeEdgeLine,
				Position:   p,
				Confidence: confEdgeLine,
				Edge:       b.name,
			})
		}
	}

	// Left and right bands: horizontal ticks, one candidate per row.
	for _, b := range []struct {
		name string
		x0   int
	}{{"left", 0}, {"right", width - band}} {
		var cand []Point
		for y := 0; y < height; y++ {
			if run, mid := horizontalRunAt(edges, b.x0, y, band); run >= minTick {
				cand = append(cand, Point{X: mid, Y: y})
			}
		}
		for _, p := range mergeClose(cand) {
			marks = append(marks, Mark{
				Type:       TypeEdgeLine,
				Position:   p,
				Confidence: confEdgeLine,
				Edge:       b.name,
			})
		}
	}

	return marks
}

// detectRegistrationCircles runs a Hough circle transform over the radius
// range and keeps circles close to a page edge (within 10% of the smaller
// dimension), where registration marks live.
//
// For each radius, edge pixels vote for potential centers every 10° around
// themselves. A center needs votes from roughly 60% of its circumference
// and must be a local maximum in the accumulator.
func (d *Detector) detectRegistrationCircles(edges [][]bool, width, height int) []Mark {
	minRadius := d.MinCircleRadius
	if minRadius <= 0 {
		minRadius = 3
	}
	maxRadius := d.MaxCircleRadius
	if maxRadius <= 0 {
		maxRadius = 20
	}
	if maxRadius >= min(width, height)/2 {
		maxRadius = min(width, height)/2 - 1
	}

	edgeZone := float64(min(width, height)) * 0.1

	type circle struct {
		x, y, r, votes int
	}
	var circles []circle

	for radius := minRadius; radius <= maxRadius; radius++ {
		accumulator := make([][]int, height)
		for y := range accumulator {
			accumulator[y] = make([]int, width)
		}

		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if !edges[y][x] {
					continue
				}
				for angle := 0; angle < 360; angle += 10 {
					rad := float64(angle) * math.Pi / 180
					cx := x - int(float64(radius)*math.Cos(rad))
					cy := y - int(float64(radius)*math.Sin(rad))
					if cx >= 0 && cx < width && cy >= 0 && cy < height {
						accumulator[cy][cx]++
					}
				}
			}
		}

		threshold := int(float64(2*radius) * 0.6)
		for y := radius; y < height-radius; y++ {
			for x := radius; x < width-radius; x++ {
				if accumulator[y][x] < threshold {
					continue
				}
				if !isLocalMax(accumulator, x, y, width, height) {
					continue
				}
				edgeDist := float64(min(x, y, width-x, height-y))
				if edgeDist >= edgeZone {
					continue
				}
				circles = append(circles, circle{x: x, y: y, r: radius, votes: accumulator[y][x]})
			}
		}
	}

	// Merge duplicates: keep the strongest detection among overlapping
	// centers.
	sort.Slice(circles, func(i, j int) bool { return circles[i].votes > circles[j].votes })

	marks := make([]Mark, 0, len(circles))
	for _, c := range circles {
		dup := false
		for _, m := range marks {
			dx := float64(c.x - m.Position.X)
			dy := float64(c.y - m.Position.Y)
			if math.Sqrt(dx*dx+dy*dy) < float64(c.r+m.Radius)/2 {
				dup = true
				break
			}
		}
		if !dup {
			marks = append(marks, Mark{
				Type:       TypeRegistrationCircle,
				Position:   Point{X: c.x, Y: c.y},
				Confidence: confRegistrationCircle,
				Radius:     c.r,
			})
		}
	}
	return marks
}

// validateMarks filters implausible detections:
//   - positions must fall inside the image
//   - corner crosses must sit within 15% of the smaller dimension from an edge
//   - registration circles must keep a radius in [3, 20]
//   - everything else needs confidence above 0.5
func validateMarks(marks []Mark, width, height int) []Mark {
	validated := make([]Mark, 0, len(marks))
	for _, m := range marks {
		x, y := m.Position.X, m.Position.Y
		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}

		switch m.Type {
		case TypeCornerCross:
			edgeDist := min(x, y, width-x, height-y)
			if float64(edgeDist) < float64(min(width, height))*0.15 {
				validated = append(validated, m)
			}
		case TypeRegistrationCircle:
			if m.Radius >= 3 && m.Radius <= 20 {
				validated = append(validated, m)
			}
		default:
			if m.Confidence > 0.5 {
				validated = append(validated, m)
			}
		}
	}
	return validated
}

// detectEdges performs simple gradient-based edge detection.
//
// Pixels where the grayscale difference to the right or lower neighbor
// exceeds 30 are marked as edges. Border pixels are never edges.
func detectEdges(img image.Image, width, height int) [][]bool {
	bounds := img.Bounds()
	const threshold = 30.0

	edges := make([][]bool, height)
	for y := 0; y < height; y++ {
		edges[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				continue
			}

			c := grayValue(img, x+bounds.Min.X, y+bounds.Min.Y)
			cx := grayValue(img, x+1+bounds.Min.X, y+bounds.Min.Y)
			cy := grayValue(img, x+bounds.Min.X, y+1+bounds.Min.Y)

			dx := math.Abs(float64(c) - float64(cx))
			dy := math.Abs(float64(c) - float64(cy))

			if dx > threshold || dy > threshold {
				edges[y][x] = true
			}
		}
	}
	return edges
}

// grayValue converts a pixel to grayscale using ITU-R BT.601 luminance weights.
func grayValue(img image.Image, x, y int) uint8 {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(float64(r>>8)*0.299 + float64(g>>8)*0.587 + float64(b>>8)*0.114)
}

// longestHorizontalRun returns the longest run of consecutive edge pixels
// found in any row of the given window.
func longestHorizontalRun(edges [][]bool, x0, y0, w, h int) int {
	best := 0
	for y := y0; y < y0+h; y++ {
		run := 0
		for x := x0; x < x0+w; x++ {
			if edges[y][x] {
				run++
				if run > best {
					best = run
				}
			} else {
				run = 0
			}
		}
	}
	return best
}

// longestVerticalRun returns the longest run of consecutive edge pixels
// found in any column of the given window.
func longestVerticalRun(edges [][]bool, x0, y0, w, h int) int {
	best := 0
	for x := x0; x < x0+w; x++ {
		run := 0
		for y := y0; y < y0+h; y++ {
			if edges[y][x] {
				run++
				if run > best {
					best = run
				}
			} else {
				run = 0
			}
		}
	}
	return best
}

// verticalRunAt returns the longest vertical edge run in column x between
// y0 and y0+depth, plus the run's midpoint row.
func verticalRunAt(edges [][]bool, x, y0, depth int) (length, mid int) {
	run, start := 0, 0
	for y := y0; y < y0+depth; y++ {
		if edges[y][x] {
			if run == 0 {
				start = y
			}
			run++
			if run > length {
				length = run
				mid = start + run/2
			}
		} else {
			run = 0
		}
	}
	return length, mid
}

// horizontalRunAt returns the longest horizontal edge run in row y between
// x0 and x0+depth, plus the run's midpoint column.
func horizontalRunAt(edges [][]bool, x0, y, depth int) (length, mid int) {
	run, start := 0, 0
	for x := x0; x < x0+depth; x++ {
		if edges[y][x] {
			if run == 0 {
				start = x
			}
			run++
			if run > length {
				length = run
				mid = start + run/2
			}
		} else {
			run = 0
		}
	}
	return length, mid
}

// mergeClose collapses candidate points from adjacent scan lines into one
// mark per physical tick. Points within 3px of an existing group join it;
// the group's first point wins.
func mergeClose(points []Point) []Point {
	merged := make([]Point, 0, len(points))
	for _, p := range points {
		grouped := false
		for _, m := range merged {
			if abs(p.X-m.X) <= 3 && abs(p.Y-m.Y) <= 3 {
				grouped = true
				break
			}
		}
		if !grouped {
			merged = append(merged, p)
		}
	}
	return merged
}

// isLocalMax reports whether the accumulator cell at (x, y) dominates its
// 5-neighborhood.
func isLocalMax(accumulator [][]int, x, y, width, height int) bool {
	for dy := -5; dy <= 5; dy++ {
		for dx := -5; dx <= 5; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx >= 0 && nx < width && ny >= 0 && ny < height {
				if accumulator[ny][nx] > accumulator[y][x] {
					return false
				}
			}
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
