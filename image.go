package cloudview

import (
	"fmt"
	"image"
	"io/fs"

	// Decoders for resource images. png, jpeg and gif cover most assets;
	// bmp and webp come from x/image.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImageKind identifies where a cloud image comes from. Exactly one kind is
// active on a view at a time.
type ImageKind uint8

const (
	ImageDefault  ImageKind = iota // built-in procedural cloud
	ImageResource                  // named file decoded from the view's resource filesystem
	ImageBitmap                    // caller-owned *ebiten.Image, drawn as is
	ImageDrawable                  // caller-owned image.Image, uploaded on first draw
)

func (k ImageKind) String() string {
	switch k {
	case ImageDefault:
		return "default"
	case ImageResource:
		return "resource"
	case ImageBitmap:
		return "bitmap"
	case ImageDrawable:
		return "drawable"
	default:
		return fmt.Sprintf("ImageKind(%d)", k)
	}
}

// ImageSource is the image a cloud is drawn with. Sources are immutable once
// built and may be shared by any number of clouds; the GPU texture is created
// lazily on first draw and cached on the source.
type ImageSource struct {
	kind ImageKind
	name string
	img  image.Image
	tex  *ebiten.Image
}

// defaultCloudResolution is the side length, in pixels, of the procedural
// cloud texture. Clouds are scaled to their size at draw time.
const defaultCloudResolution = 256

var defaultSource = &ImageSource{kind: ImageDefault, name: "cloud"}

// DefaultImage returns the shared built-in cloud image source.
func DefaultImage() *ImageSource {
	return defaultSource
}

// BitmapImage wraps an ebiten image. Panics if img is nil.
func BitmapImage(img *ebiten.Image) *ImageSource {
	if img == nil {
		panic("cloudview: nil bitmap image")
	}
	return &ImageSource{kind: ImageBitmap, tex: img}
}

// DrawableImage wraps a CPU-side image. Panics if img is nil.
func DrawableImage(img image.Image) *ImageSource {
	if img == nil {
		panic("cloudview: nil drawable image")
	}
	return &ImageSource{kind: ImageDrawable, img: img}
}

// LoadResourceImage decodes the named file from fsys.
func LoadResourceImage(fsys fs.FS, name string) (*ImageSource, error) {
	if fsys == nil {
		return nil, fmt.Errorf("cloudview: load image resource %q: no resource filesystem", name)
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("cloudview: load image resource: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("cloudview: decode image resource %q: %w", name, err)
	}
	return &ImageSource{kind: ImageResource, name: name, img: img}, nil
}

// Kind returns which kind of source this is.
func (s *ImageSource) Kind() ImageKind {
	return s.kind
}

// Name returns the resource name for ImageResource sources, "cloud" for the
// default image, and "" otherwise.
func (s *ImageSource) Name() string {
	return s.name
}

// Image returns the CPU-side image, rendering the default cloud if needed.
// Returns nil for bitmap sources.
func (s *ImageSource) Image() image.Image {
	if s.kind == ImageDefault && s.img == nil {
		s.img = renderDefaultCloud(defaultCloudResolution)
	}
	return s.img
}

// texture returns the GPU image for drawing, uploading it on first use.
func (s *ImageSource) texture() *ebiten.Image {
	if s.tex != nil {
		return s.tex
	}
	img := s.Image()
	if img == nil {
		return nil
	}
	s.tex = ebiten.NewImageFromImage(img)
	return s.tex
}

// renderDefaultCloud draws a flat white cumulus with a soft grey underside
// on a transparent size×size canvas.
func renderDefaultCloud(size int) image.Image {
	dc := gg.NewContext(size, size)
	s := float64(size)

	puffs := func(dy float64) {
		dc.DrawRoundedRectangle(s*0.10, s*0.50+dy, s*0.80, s*0.22, s*0.11)
		dc.DrawCircle(s*0.32, s*0.52+dy, s*0.17)
		dc.DrawCircle(s*0.52, s*0.42+dy, s*0.22)
		dc.DrawCircle(s*0.71, s*0.54+dy, s*0.15)
		dc.Fill()
	}

	dc.SetRGBA(0.82, 0.87, 0.93, 1)
	puffs(s * 0.03)
	dc.SetRGBA(1, 1, 1, 1)
	puffs(0)

	return dc.Image()
}
