package cutmarks

// Type identifies the kind of a detected cut mark.
type Type string

const (
	// TypeCornerCross is a cross-hair trim mark near a page corner.
	TypeCornerCross Type = "corner_cross"

	// TypeEdgeLine is a short tick mark along a page edge.
	TypeEdgeLine Type = "edge_line"

	// TypeRegistrationCircle is a circular registration mark near an edge.
	TypeRegistrationCircle Type = "registration_circle"
)

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// Mark is a single detected cut or registration mark.
type Mark struct {
	// Type is the mark kind.
	Type Type `json:"type"`

	// Position is the mark's center in page-image pixels.
	Position Point `json:"position"`

	// Confidence indicates detection quality (0.0 to 1.0), fixed per kind.
	Confidence float64 `json:"confidence"`

	// Corner is the corner index for corner crosses:
	// 0=top-left, 1=top-right, 2=bottom-left, 3=bottom-right.
	Corner int `json:"corner,omitempty"`

	// Edge names the page edge for edge lines: "top", "bottom", "left", "right".
	Edge string `json:"edge,omitempty"`

	// Radius is the detected radius for registration circles, in pixels.
	Radius int `json:"radius,omitempty"`
}

// Margins holds per-edge keep-out distances in pixels.
type Margins struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// SafeZone is the interior rectangle that border content may occupy
// without covering any detected mark.
type SafeZone struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Margins Margins `json:"margins"`
}

// Result contains everything found on one page image.
type Result struct {
	// Detected is true when at least one validated mark was found.
	Detected bool `json:"detected"`

	// Marks is the list of validated marks.
	Marks []Mark `json:"marks"`

	// SafeZone is the derived keep-out rectangle.
	SafeZone SafeZone `json:"safe_zone"`

	// PageWidth and PageHeight record the analyzed image size in pixels.
	PageWidth  int `json:"page_width"`
	PageHeight int `json:"page_height"`
}
