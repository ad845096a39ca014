// Package border synthesizes seamless bleed margins around raster images.
//
// The central operation is Generate, which takes a source image and a Config
// and returns a larger raster: the source pixels sit untouched in the center
// and the surrounding margin is filled from the source's own edge content so
// that the printed bleed area appears continuous with the artwork.
//
// # Fill methods
//
// Four interchangeable strategies share the same geometry contract:
//
//   - MethodEdgeStretch: replicates a thin strip of edge pixels outward.
//     Each output line in a border band maps back to one of the S outermost
//     source lines via integer index scaling. Corners stretch a dedicated
//     S×S corner patch. This is the non-failing baseline every other method
//     falls back to.
//   - MethodSmartFill: content-aware fill of the border band by masked
//     diffusion, seeded from the edge pixels. Falls back to edge-stretch on
//     any failure.
//   - MethodGradientFade: samples only the outermost source row/column per
//     band line and applies a very mild fade (at most 10% darkening).
//     Corners reuse the edge-stretch corner algorithm, unfaded.
//   - MethodSolidColor: flat canvas in a configured color with the source
//     pasted in the center.
//
// # Geometry contract
//
// For border width B pixels (derived from Config.BorderWidthMM at
// Config.OutputDPI), the output of every strategy measures (W+2B)×(H+2B)
// and output[B:B+H, B:B+W] is byte-identical to the NRGBA-normalized
// source. The source image is never mutated.
//
// # Units
//
// All physical sizes enter as millimeters and are converted with
// MMToPixels. PDF point placement uses MMToPoints, a separate constant;
// the two unit systems must not be conflated.
//
// # Error handling
//
// Configuration problems (unknown method, non-positive widths) resolve to
// defaults and never surface. Strategy failures, including panics, degrade
// to edge-stretch. The only hard error is ErrEmptyImage for a nil or
// zero-dimension source.
//
// # Concurrency
//
// Generate is a pure, synchronous computation with no shared state; it is
// safe to call concurrently on independent images.
package border
