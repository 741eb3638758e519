package terminal

import (
	"context"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(40, 12)
	t.Cleanup(screen.Fini)
	return screen
}

func TestShowScalesToScreen(t *testing.T) {
	screen := newScreen(t)
	term := NewTerminal(screen)

	img := image.NewRGBA(image.Rect(0, 0, 800, 600))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	if err := term.Show(img); err != nil {
		t.Fatal(err)
	}

	if term.buf.Bounds().Dx() != 40 || term.buf.Bounds().Dy() != 24 {
		t.Errorf("Expected a 40x24 pixel buffer, got %v", term.buf.Bounds())
	}
	if got := term.buf.RGBAAt(20, 12); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Expected white after scaling, got %v", got)
	}
}

func TestShowFollowsResize(t *testing.T) {
	screen := newScreen(t)
	term := NewTerminal(screen)
	img := image.NewRGBA(image.Rect(0, 0, 80, 60))

	term.Show(img)
	screen.SetSize(20, 5)
	term.Show(img)
	if term.buf.Bounds().Dx() != 20 || term.buf.Bounds().Dy() != 10 {
		t.Errorf("Expected the buffer to follow the screen size, got %v", term.buf.Bounds())
	}
}

func TestWaitForKey(t *testing.T) {
	screen := newScreen(t)
	term := NewTerminal(screen)

	done := make(chan struct{})
	go func() {
		term.WaitForKey(context.Background())
		close(done)
	}()

	screen.PostEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected WaitForKey to return after a key press")
	}
}

func TestWaitForKeyCancelled(t *testing.T) {
	screen := newScreen(t)
	term := NewTerminal(screen)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	term.WaitForKey(ctx)
}
