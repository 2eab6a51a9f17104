package dataset

import (
	"image"
	"os"

	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

// ThumbHeight is the gallery strip height in px.
const ThumbHeight = 96

// Photo is a decoded zone photo plus its strip thumbnail. File is the
// manifest file name, so callers can find the original bytes on disk.
type Photo struct {
	File    string
	Caption string
	Img     image.Image
	Thumb   image.Image
}

// LoadPhotos decodes every manifest photo present on disk for a zone.
// Missing or undecodable files are skipped; the gallery just shows
// fewer photos.
func LoadPhotos(l Layout, m *Manifest, zone string) []Photo {
	var out []Photo
	for _, meta := range m.ForZone(zone) {
		f, err := os.Open(l.ImagePath(zone, meta.File))
		if err != nil {
			continue
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			continue
		}
		out = append(out, Photo{
			File:    meta.File,
			Caption: meta.Caption,
			Img:     img,
			Thumb:   Thumbnail(img, ThumbHeight),
		})
	}
	return out
}

// Thumbnail scales an image down to the given height, keeping aspect.
// Images already small enough pass through untouched.
func Thumbnail(img image.Image, height int) image.Image {
	b := img.Bounds()
	if b.Dy() <= height {
		return img
	}
	w := b.Dx() * height / b.Dy()
	if w < 1 {
		w = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
