package window

import (
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Window shows frames in a desktop window. It is both an ebiten.Game and a
// stream.Sink; frames may be shown from any goroutine.
type Window struct {
	width  int
	height int

	mu    sync.Mutex
	pix   []byte
	dirty bool

	canvas *ebiten.Image
}

// NewWindow creates a window for width x height frames.
func NewWindow(width int, height int) *Window {
	w := new(Window)
	w.width = width
	w.height = height
	w.pix = make([]byte, width*height*4)
	return w
}

// Show stores the frame for the next Draw.
func (w *Window) Show(img *image.RGBA) error {
	w.mu.Lock()
	copy(w.pix, img.Pix)
	w.dirty = true
	w.mu.Unlock()
	return nil
}

func (w *Window) Update() error {
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	if w.canvas == nil {
		w.canvas = ebiten.NewImage(w.width, w.height)
	}

	w.mu.Lock()
	if w.dirty {
		w.canvas.WritePixels(w.pix)
		w.dirty = false
	}
	w.mu.Unlock()

	screen.DrawImage(w.canvas, nil)
}

func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

// Run opens the window and blocks until the user closes it.
func (w *Window) Run(title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w.width, w.height)
	return ebiten.RunGame(w)
}
