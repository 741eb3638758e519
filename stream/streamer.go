package stream

import (
	"fmt"
	"image"

	"github.com/eclipse/paho.mqtt.golang"
)

// Publisher is the part of an MQTT client the Streamer needs.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Streamer streams RGB data frames to an LED matrix over MQTT.
type Streamer struct {
	client Publisher
	topic  string
	width  int
	height int
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client Publisher) *Streamer {
	s := new(Streamer)
	s.client = client
	s.topic = config.Mqtt.Topics.Stream
	s.width = config.Mqtt.Width
	s.height = config.Mqtt.Height
	return s
}

// Show scales the frame to the matrix and publishes it.
func (s *Streamer) Show(img *image.RGBA) error {
	f := NewFrame(img, s.width, s.height)
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}

	token := s.client.Publish(s.topic, 2, false, b)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish frame to %s: %w", s.topic, err)
	}
	return nil
}
