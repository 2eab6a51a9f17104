package state

import "github.com/RoroDev2023/RizzTheGrid/internal/dataset"

// GalleryState holds the photo strip of the selected zone and the
// lightbox overlay on top of it.
type GalleryState struct {
	Zone     string
	Photos   []dataset.Photo
	Lightbox int    // index into Photos, -1 when closed
	Summary  string // describe text for the lightbox photo
	Busy     bool   // a describe request is in flight
}

// Show installs the photo strip for a zone and closes any lightbox.
func (g *GalleryState) Show(zone string, photos []dataset.Photo) {
	g.Zone = zone
	g.Photos = photos
	g.Lightbox = -1
	g.Summary = ""
	g.Busy = false
}

// Clear empties the strip.
func (g *GalleryState) Clear() {
	g.Show("", nil)
}

// Open opens the lightbox on photo i. Out-of-range indexes are ignored.
func (g *GalleryState) Open(i int) {
	if i < 0 || i >= len(g.Photos) {
		return
	}
	g.Lightbox = i
	g.Summary = ""
	g.Busy = false
}

// Close closes the lightbox.
func (g *GalleryState) Close() {
	g.Lightbox = -1
	g.Summary = ""
	g.Busy = false
}

// Step moves the lightbox by delta photos, clamped to the strip. The
// summary and busy flag belong to one photo, so moving drops them.
func (g *GalleryState) Step(delta int) {
	if g.Lightbox < 0 || len(g.Photos) == 0 {
		return
	}
	i := g.Lightbox + delta
	if i < 0 {
		i = 0
	}
	if i >= len(g.Photos) {
		i = len(g.Photos) - 1
	}
	if i != g.Lightbox {
		g.Lightbox = i
		g.Summary = ""
		g.Busy = false
	}
}

// Current returns the lightbox photo, if one is open.
func (g *GalleryState) Current() (dataset.Photo, bool) {
	if g.Lightbox < 0 || g.Lightbox >= len(g.Photos) {
		return dataset.Photo{}, false
	}
	return g.Photos[g.Lightbox], true
}
