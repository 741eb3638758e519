package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/gdamore/tcell/v2"
	"github.com/matt-g-everett/starfall/api"
	"github.com/matt-g-everett/starfall/display/terminal"
	"github.com/matt-g-everett/starfall/display/window"
	"github.com/matt-g-everett/starfall/stream"
	"gopkg.in/yaml.v2"
)

const title = "Starfall"

type app struct {
	Config stream.Config
	Client mqtt.Client
	Raster *stream.Raster
	rng    *rand.Rand
}

func newApp() *app {
	a := new(app)
	a.Config = stream.DefaultConfig()
	return a
}

func (a *app) readConfig(configPath string, required bool) error {
	f, err := os.Open(configPath)
	if errors.Is(err, os.ErrNotExist) && !required {
		log.Printf("No config at %s, using defaults", configPath)
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&a.Config); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
}

func (a *app) connect() error {
	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("starfall").
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)

	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	return nil
}

// animate runs the scheduler to completion, leaving the final frame on the sinks.
func (a *app) animate(ctx context.Context) error {
	scheduler, err := stream.NewScheduler(a.Config, a.rng, a.Raster)
	if err != nil {
		return err
	}

	ticker := time.NewTicker(time.Duration(a.Config.FrameMs) * time.Millisecond)
	defer ticker.Stop()

	if err := scheduler.Run(ctx, ticker.C); err != nil {
		return err
	}

	if a.Config.Snapshot != "" {
		if err := api.WritePNG(a.Config.Snapshot, a.Raster.Snapshot()); err != nil {
			return err
		}
		log.Printf("Wrote %s", a.Config.Snapshot)
	}
	return nil
}

func main() {
	mqtt.ERROR = log.New(os.Stderr, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	output := flag.String("output", "", "Override the configured output: window, terminal or headless.")
	flag.Parse()

	a := newApp()
	required := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			required = true
		}
	})
	if err := a.readConfig(*configPath, required); err != nil {
		log.Fatalf("Reading config: %v", err)
	}
	if *output != "" {
		a.Config.Output = *output
	}
	if err := a.Config.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	log.Printf("Config: %+v", a.Config)

	seed := a.Config.Seed
	if seed == 0 {
		seed = time.Now().UTC().UnixNano()
	}
	a.rng = rand.New(rand.NewSource(seed))

	background, _ := stream.HexToRGB(a.Config.Canvas.Background)
	a.Raster = stream.NewRaster(a.Config.Canvas.Width, a.Config.Canvas.Height, background)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.Config.Mqtt.URL != "" {
		if err := a.connect(); err != nil {
			log.Fatalf("Connecting to %s: %v", a.Config.Mqtt.URL, err)
		}
		defer a.Client.Disconnect(250)
		a.Raster.AddSink(stream.NewStreamer(a.Config, a.Client))
	}

	if a.Config.HTTP.Addr != "" {
		server := api.NewApi()
		a.Raster.AddSink(server)
		go func() {
			if err := server.Serve(ctx, a.Config.HTTP.Addr); err != nil {
				log.Printf("HTTP server: %v", err)
			}
		}()
	}

	switch a.Config.Output {
	case stream.OutputWindow:
		win := window.NewWindow(a.Config.Canvas.Width, a.Config.Canvas.Height)
		a.Raster.AddSink(win)
		go func() {
			if err := a.animate(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("Animation: %v", err)
			}
		}()
		if err := win.Run(title); err != nil {
			log.Fatalf("Window: %v", err)
		}

	case stream.OutputTerminal:
		screen, err := tcell.NewScreen()
		if err != nil {
			log.Fatalf("Terminal: %v", err)
		}
		if err := screen.Init(); err != nil {
			log.Fatalf("Terminal: %v", err)
		}
		defer screen.Fini()

		if a.Config.Log != "" {
			f, err := os.OpenFile(a.Config.Log, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				screen.Fini()
				log.Fatalf("Opening log: %v", err)
			}
			defer f.Close()
			log.SetOutput(f)
		} else {
			log.SetOutput(io.Discard)
		}
		mqtt.ERROR = log.Default()

		term := terminal.NewTerminal(screen)
		a.Raster.AddSink(term)
		go func() {
			if err := a.animate(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("Animation: %v", err)
			}
		}()
		term.WaitForKey(ctx)

	case stream.OutputHeadless:
		if err := a.animate(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatalf("Animation: %v", err)
		}
		log.Println("Animation finished, holding final frame until interrupted")
		<-ctx.Done()
	}
}
