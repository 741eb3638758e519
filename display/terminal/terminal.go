package terminal

import (
	"context"
	"image"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"
)

const halfBlock = '▀'

// Terminal paints frames into a terminal using half-block cells, two
// pixels per cell.
type Terminal struct {
	screen tcell.Screen
	buf    *image.RGBA
}

// NewTerminal wraps an initialised screen.
func NewTerminal(screen tcell.Screen) *Terminal {
	t := new(Terminal)
	t.screen = screen
	return t
}

// Show scales the frame to the screen and displays it.
func (t *Terminal) Show(img *image.RGBA) error {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil
	}

	if t.buf == nil || t.buf.Bounds().Dx() != cols || t.buf.Bounds().Dy() != rows*2 {
		t.buf = image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	}
	draw.ApproxBiLinear.Scale(t.buf, t.buf.Bounds(), img, img.Bounds(), draw.Src, nil)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := t.buf.RGBAAt(x, y*2)
			bottom := t.buf.RGBAAt(x, y*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			t.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}

	t.screen.Show()
	return nil
}

// WaitForKey blocks until a key is pressed or ctx is cancelled.
func (t *Terminal) WaitForKey(ctx context.Context) {
	keys := make(chan struct{})
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev.(type) {
			case *tcell.EventKey:
				close(keys)
				return
			case *tcell.EventResize:
				t.screen.Sync()
			}
		}
	}()

	select {
	case <-ctx.Done():
	case <-keys:
	}
}
