//go:build linux

package x11

import (
	"fmt"
	"image"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/mj1618/winfind/internal/platform"
)

// Capture grabs the contents of w with GetImage. Only 24 and 32 bit
// TrueColor visuals are supported.
func (t *Toolkit) Capture(w platform.Window) (image.Image, error) {
	if w == nil {
		return nil, fmt.Errorf("no window to capture")
	}
	conn := t.conn.XUtil.Conn()
	drawable := xproto.Drawable(w.ID())

	geom, err := xproto.GetGeometry(conn, drawable).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get geometry of window 0x%x: %w", uint32(w.ID()), err)
	}
	if geom.Width == 0 || geom.Height == 0 {
		return nil, fmt.Errorf("window 0x%x has no visible area", uint32(w.ID()))
	}

	reply, err := xproto.GetImage(conn, xproto.ImageFormatZPixmap, drawable,
		0, 0, geom.Width, geom.Height, 0xffffffff).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to capture window 0x%x: %w", uint32(w.ID()), err)
	}
	return bgrxToRGBA(reply.Depth, int(geom.Width), int(geom.Height), reply.Data)
}

// bgrxToRGBA converts ZPixmap data (4 bytes per pixel, little-endian BGRX)
// into an opaque RGBA image.
func bgrxToRGBA(depth byte, width, height int, data []byte) (*image.RGBA, error) {
	if depth != 24 && depth != 32 {
		return nil, fmt.Errorf("unsupported visual depth %d", depth)
	}
	if len(data) < width*height*4 {
		return nil, fmt.Errorf("short image data: got %d bytes for %dx%d", len(data), width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		src := data[i*4 : i*4+4]
		dst := img.Pix[i*4 : i*4+4]
		dst[0] = src[2]
		dst[1] = src[1]
		dst[2] = src[0]
		dst[3] = 0xff
	}
	return img, nil
}
