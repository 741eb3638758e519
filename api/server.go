package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"os"
	"sync"
	"time"
)

// Api serves the most recently presented frame as a PNG.
type Api struct {
	mu     sync.RWMutex
	latest []byte
	mux    *http.ServeMux
}

func NewApi() *Api {
	a := new(Api)
	a.mux = http.NewServeMux()
	a.mux.HandleFunc("/frame.png", a.handleFrame)
	return a
}

// Show encodes the frame and keeps it for the next request.
func (a *Api) Show(img *image.RGBA) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}

	a.mu.Lock()
	a.latest = buf.Bytes()
	a.mu.Unlock()
	return nil
}

func (a *Api) handleFrame(w http.ResponseWriter, r *http.Request) {
	a.mu.RLock()
	frame := a.latest
	a.mu.RUnlock()

	if frame == nil {
		http.Error(w, "no frame yet", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(frame)
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

// Serve listens on addr until ctx is cancelled.
func (a *Api) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: a}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("Listening on %s...", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// WritePNG saves img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
