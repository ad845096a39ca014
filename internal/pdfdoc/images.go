package pdfdoc

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// xImage describes one image XObject from a page's resource dictionary.
type xImage struct {
	name       string
	widthPx    int
	heightPx   int
	filter     string
	colorSpace string
	sd         types.StreamDict
}

// deref resolves an indirect reference; direct objects pass through.
func deref(ctx *model.Context, obj types.Object) (types.Object, error) {
	if ind, ok := obj.(types.IndirectRef); ok {
		return ctx.Dereference(ind)
	}
	return obj, nil
}

// pageImages collects the image XObjects reachable from the page's
// resources, keyed by resource name as used by Do operators.
func pageImages(ctx *model.Context, pageDict types.Dict) (map[string]xImage, error) {
	images := make(map[string]xImage)

	resObj, found := pageDict.Find("Resources")
	if !found {
		return images, nil
	}
	resObj, err := deref(ctx, resObj)
	if err != nil {
		return nil, fmt.Errorf("dereferencing resources: %w", err)
	}
	resDict, ok := resObj.(types.Dict)
	if !ok {
		return images, nil
	}

	xoObj, found := resDict.Find("XObject")
	if !found {
		return images, nil
	}
	xoObj, err = deref(ctx, xoObj)
	if err != nil {
		return nil, fmt.Errorf("dereferencing xobjects: %w", err)
	}
	xoDict, ok := xoObj.(types.Dict)
	if !ok {
		return images, nil
	}

	for name, obj := range xoDict {
		obj, err := deref(ctx, obj)
		if err != nil {
			continue
		}
		sd, ok := obj.(types.StreamDict)
		if !ok {
			continue
		}
		if subtype := nameEntry(sd.Dict, "Subtype"); subtype != "Image" {
			continue
		}

		img := xImage{
			name:       name,
			widthPx:    intEntry(sd.Dict, "Width"),
			heightPx:   intEntry(sd.Dict, "Height"),
			filter:     filterName(ctx, sd.Dict),
			colorSpace: nameEntry(sd.Dict, "ColorSpace"),
			sd:         sd,
		}
		images[name] = img
	}
	return images, nil
}

// decodeRaster turns an image XObject into pixels.
//
// DCTDecode streams are standard JPEG and decode from the raw bytes.
// Flate (or unfiltered) streams are decompressed and reassembled for
// 8-bit DeviceRGB and DeviceGray. Anything else is unsupported.
func decodeRaster(x xImage) (image.Image, error) {
	switch x.filter {
	case "DCTDecode":
		img, err := jpeg.Decode(bytes.NewReader(x.sd.Raw))
		if err != nil {
			return nil, fmt.Errorf("decoding JPEG image %s: %w", x.name, err)
		}
		return img, nil

	case "FlateDecode", "":
		sd := x.sd
		if len(sd.Content) == 0 && len(sd.Raw) > 0 {
			if err := sd.Decode(); err != nil {
				return nil, fmt.Errorf("inflating image %s: %w", x.name, err)
			}
		}
		switch x.colorSpace {
		case "DeviceRGB":
			return rasterFromComponents(sd.Content, x.widthPx, x.heightPx, 3)
		case "DeviceGray":
			return rasterFromComponents(sd.Content, x.widthPx, x.heightPx, 1)
		default:
			return nil, fmt.Errorf("image %s: unsupported color space %q", x.name, x.colorSpace)
		}

	default:
		return nil, fmt.Errorf("image %s: unsupported filter %q", x.name, x.filter)
	}
}

// rasterFromComponents assembles an NRGBA image from packed 8-bit
// samples: 3 components for RGB, 1 for grayscale.
func rasterFromComponents(data []byte, width, height, comps int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid raster dimensions %dx%d", width, height)
	}
	if comps != 1 && comps != 3 {
		return nil, fmt.Errorf("unsupported component count %d", comps)
	}
	if len(data) < width*height*comps {
		return nil, fmt.Errorf("raster data truncated: have %d bytes, need %d",
			len(data), width*height*comps)
	}

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		src := y * width * comps
		dst := out.PixOffset(0, y)
		for x := 0; x < width; x++ {
			var r, g, b uint8
			if comps == 3 {
				r = data[src]
				g = data[src+1]
				b = data[src+2]
			} else {
				r = data[src]
				g = r
				b = r
			}
			out.Pix[dst] = r
			out.Pix[dst+1] = g
			out.Pix[dst+2] = b
			out.Pix[dst+3] = 255
			src += comps
			dst += 4
		}
	}
	return out, nil
}

// pageContent concatenates a page's decoded content streams.
func pageContent(ctx *model.Context, pageDict types.Dict) ([]byte, error) {
	contents, found := pageDict.Find("Contents")
	if !found {
		return nil, nil
	}
	streams, err := contentStreams(ctx, contents)
	if err != nil {
		return nil, err
	}

	var all []byte
	for _, s := range streams {
		all = append(all, s...)
		all = append(all, '\n')
	}
	return all, nil
}

// contentStreams resolves the Contents entry, which may be a single
// stream, an array of streams, or indirect references to either.
func contentStreams(ctx *model.Context, contents types.Object) ([][]byte, error) {
	switch obj := contents.(type) {
	case types.IndirectRef:
		resolved, err := ctx.Dereference(obj)
		if err != nil {
			return nil, fmt.Errorf("dereferencing contents: %w", err)
		}
		return contentStreams(ctx, resolved)

	case types.StreamDict:
		if len(obj.Content) == 0 && len(obj.Raw) > 0 {
			if err := obj.Decode(); err != nil {
				return nil, fmt.Errorf("decoding content stream: %w", err)
			}
		}
		if len(obj.Content) == 0 {
			return nil, nil
		}
		return [][]byte{obj.Content}, nil

	case types.Array:
		var streams [][]byte
		for _, item := range obj {
			s, err := contentStreams(ctx, item)
			if err != nil {
				continue
			}
			streams = append(streams, s...)
		}
		return streams, nil

	default:
		return nil, nil
	}
}

// nameEntry returns a dictionary name entry without the leading slash, or
// "" when absent or not a name.
func nameEntry(d types.Dict, key string) string {
	obj, found := d.Find(key)
	if !found {
		return ""
	}
	if name, ok := obj.(types.Name); ok {
		return name.Value()
	}
	return ""
}

// intEntry returns an integer dictionary entry, or 0 when absent.
func intEntry(d types.Dict, key string) int {
	obj, found := d.Find(key)
	if !found {
		return 0
	}
	if n, ok := obj.(types.Integer); ok {
		return n.Value()
	}
	return 0
}

// filterName resolves the first filter applied to a stream. The Filter
// entry may be a single name, an array of names, or indirect.
func filterName(ctx *model.Context, d types.Dict) string {
	obj, found := d.Find("Filter")
	if !found {
		return ""
	}
	obj, err := deref(ctx, obj)
	if err != nil {
		return ""
	}

	switch v := obj.(type) {
	case types.Name:
		return v.Value()
	case types.Array:
		if len(v) > 0 {
			if name, ok := v[0].(types.Name); ok {
				return name.Value()
			}
		}
	}
	return ""
}
