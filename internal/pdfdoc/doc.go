// Package pdfdoc reads and augments PDF documents for border processing.
//
// The package is a thin layer over pdfcpu. It locates the dominant raster
// image on each page (the "center image"), decodes its pixels for the
// border engine, and writes the generated border content back as a
// background image watermark. The original page objects are never
// modified: the border layer sits behind the existing content, so the
// source image and any printer's marks keep their exact bytes and
// positions.
//
// # Geometry
//
// PDF pages use points (1/72 inch) with the origin at the bottom-left and
// Y increasing upward. Image placements are recovered from the page
// content stream: each Do of an image XObject paints the unit square
// transformed by the current transformation matrix, so the placement
// rectangle is the CTM applied to the unit square.
//
// # Supported rasters
//
// Center-image decoding handles DCTDecode (JPEG) streams and
// flate-compressed DeviceRGB / DeviceGray rasters at 8 bits per
// component. Pages whose dominant image uses another encoding are
// skipped with a log line rather than failing the document.
package pdfdoc
