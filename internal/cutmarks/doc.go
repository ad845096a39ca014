// Package cutmarks detects printer's cut marks and registration marks on
// rendered PDF pages.
//
// Professional print PDFs often carry trim decorations outside the artwork:
// corner crosses marking the trim box, short ticks along the page edges, and
// circular registration marks used for color alignment. Border augmentation
// must not paint over these, so this package locates them and derives a safe
// zone the rest of the pipeline can honor.
//
// # Mark Kinds
//
// Three kinds of marks are recognized:
//
//   - Corner crosses: two roughly perpendicular line segments inside the
//     corner windows (10% of the page from each corner)
//   - Edge lines: short tick marks inside the 20px bands along each edge
//   - Registration circles: circular marks (radius 3-20px) near an edge,
//     found with a Hough circle transform
//
// # Detection Pipeline
//
// Detection follows the usual pipeline:
//
//  1. Edge Detection: grayscale gradient thresholding produces a binary
//     edge map
//  2. Per-kind scans: corner windows, edge bands, and the circle
//     accumulator are each searched independently
//  3. Validation: marks outside their plausible regions or below the
//     confidence floor are discarded
//  4. Safe Zone: per-edge margins are derived from the surviving marks
//
// # Confidence Scores
//
// Each mark kind carries a fixed confidence reflecting how unambiguous the
// pattern is:
//   - 0.8 = corner cross (two perpendicular segments rarely occur by chance)
//   - 0.7 = registration circle
//   - 0.6 = edge line (short ticks are easy to confuse with content)
//
// # Failure Behavior
//
// Detection never blocks page processing. Any internal failure yields an
// empty Result with Detected=false; callers fall back to the conservative
// default safe zone.
package cutmarks
