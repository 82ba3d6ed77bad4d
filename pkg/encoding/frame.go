// Package encoding serializes live-update frames pushed to websocket
// subscribers.
package encoding

import (
	"encoding/json"
	"time"
)

// Frame is one timestamped payload on the live channel.
type Frame[T any] struct {
	At   time.Time `json:"at"`
	Data T         `json:"data"`
}

// FrameCodec converts frames to and from their JSON wire form.
type FrameCodec[T any] struct{}

func (FrameCodec[T]) Encode(at time.Time, data T) (string, error) {
	b, err := json.Marshal(Frame[T]{At: at, Data: data})
	return string(b), err
}

func (FrameCodec[T]) Decode(payload string) (Frame[T], error) {
	var f Frame[T]
	err := json.Unmarshal([]byte(payload), &f)
	return f, err
}
