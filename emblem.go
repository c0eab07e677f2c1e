package folio

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/user-none/folio/style"
)

// iconSizes are the icon variants handed to the window system.
var iconSizes = []int{48, 32, 16}

// BuildWindowIcon renders the dot-and-ring mark at the standard icon
// sizes in the current theme's colors. The mark is rasterized once at a
// large size on the CPU and scaled down, so every variant keeps smooth
// edges.
func BuildWindowIcon() []image.Image {
	master := drawEmblem(256)
	icons := make([]image.Image, 0, len(iconSizes))
	for _, size := range iconSizes {
		dst := image.NewRGBA(image.Rect(0, 0, size, size))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), master, master.Bounds(), xdraw.Over, nil)
		icons = append(icons, dst)
	}
	return icons
}

// drawEmblem rasterizes the mark: a theme-colored plate carrying the
// same dot and ring the cursor draws.
func drawEmblem(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	center := float64(size) / 2
	plateR := float64(size) * 0.48
	ringR := float64(size) * 0.30
	ringW := float64(size) * 0.06
	dotR := float64(size) * 0.10

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			dist := math.Sqrt(dx*dx + dy*dy)

			var c color.NRGBA
			switch {
			case dist <= dotR:
				c = style.Accent
			case dist >= ringR-ringW/2 && dist <= ringR+ringW/2:
				c = style.Accent
			case dist <= plateR:
				c = style.Background
			default:
				continue
			}
			img.Set(x, y, c)
		}
	}
	return img
}
