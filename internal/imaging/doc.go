// Package imaging provides the pixel-access side of the audit: decoding
// uploaded screenshots, reporting their metadata, and extracting raw pixel
// data for rectangular regions.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner,
// X increasing rightward and Y increasing downward. Regions are given as
// model.Rect values covering [X, X+W) by [Y, Y+H).
//
// # Supported Formats
//
// PNG, JPEG and GIF through the standard library, plus BMP, TIFF and WebP
// through golang.org/x/image. The format is detected from the content, not
// from a file name.
//
// # Raw Samples
//
// Raster.Extract returns non-premultiplied RGBA bytes, four per pixel,
// row-major. Callers that only need color read the first three bytes of
// each pixel.
//
// # Thread Safety
//
// A Raster never mutates its decoded image, so one Raster may be shared by
// several goroutines. The audit pipeline still extracts sequentially.
package imaging
