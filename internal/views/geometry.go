package views

import (
	"math"

	"fyne.io/fyne/v2"

	"losnot/internal/config"
)

// resizeLayout stacks its objects like container.NewStack and reports every
// size change, which is how a window resize reaches us.
type resizeLayout struct {
	last     fyne.Size
	onResize func(fyne.Size)
}

func (l *resizeLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(size)
	}

	if size == l.last {
		return
	}
	l.last = size
	if l.onResize != nil {
		l.onResize(size)
	}
}

func (l *resizeLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	minSize := fyne.NewSize(0, 0)
	for _, o := range objects {
		minSize = minSize.Max(o.MinSize())
	}
	return minSize
}

// SizeOf converts a stored geometry to a window size.
func SizeOf(g config.Geometry) fyne.Size {
	return fyne.NewSize(float32(g.Width), float32(g.Height))
}

// WithSize returns g with its width and height taken from size.
func WithSize(g config.Geometry, size fyne.Size) config.Geometry {
	g.Width = int(math.Round(float64(size.Width)))
	g.Height = int(math.Round(float64(size.Height)))
	return g
}
