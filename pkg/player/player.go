// Package player wraps the video playback element the overlay layer
// sits on. It treats the stream as opaque: load a source URL, control
// play/pause/volume, observe events. No decoding happens here.
package player

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"
)

type State int

const (
	StateStopped State = iota
	StatePlaying
	StatePaused
)

type EventType int

const (
	EventLoad EventType = iota
	EventError
	EventPlay
	EventPause
)

type Event struct {
	Type   EventType
	Source string
	Err    error
}

type Player struct {
	httpClient *http.Client

	mu      sync.Mutex
	source  string
	state   State
	volume  float64
	onEvent func(Event)
}

func New() *Player {
	return &Player{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		volume:     1,
	}
}

// OnEvent registers the single event callback. Events fire
// synchronously from the call that caused them.
func (p *Player) OnEvent(handler func(Event)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onEvent = handler
}

// Load points the player at a source URL after probing that it is
// reachable. Failure emits an error event and leaves the previous
// source in place.
func (p *Player) Load(ctx context.Context, url string) error {
	if err := p.CheckSource(ctx, url); err != nil {
		p.emit(Event{Type: EventError, Source: url, Err: err})
		return err
	}

	p.mu.Lock()
	p.source = url
	p.state = StateStopped
	p.mu.Unlock()

	p.emit(Event{Type: EventLoad, Source: url})
	return nil
}

// CheckSource probes a URL without changing player state. The renderer
// uses the same probe for overlay image sources.
func (p *Player) CheckSource(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return fmt.Errorf("invalid source url: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("source unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("source returned status %d", resp.StatusCode)
	}
	return nil
}

// Probe satisfies the renderer's image prober.
func (p *Player) Probe(ctx context.Context, url string) error {
	return p.CheckSource(ctx, url)
}

func (p *Player) Play() {
	p.mu.Lock()
	if p.source == "" || p.state == StatePlaying {
		p.mu.Unlock()
		return
	}
	p.state = StatePlaying
	source := p.source
	p.mu.Unlock()

	p.emit(Event{Type: EventPlay, Source: source})
}

func (p *Player) Pause() {
	p.mu.Lock()
	if p.state != StatePlaying {
		p.mu.Unlock()
		return
	}
	p.state = StatePaused
	source := p.source
	p.mu.Unlock()

	p.emit(Event{Type: EventPause, Source: source})
}

// SetVolume clamps to [0,1].
func (p *Player) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	p.mu.Lock()
	p.volume = volume
	p.mu.Unlock()
}

func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Player) Source() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.source
}

func (p *Player) emit(event Event) {
	p.mu.Lock()
	handler := p.onEvent
	p.mu.Unlock()
	if handler != nil {
		handler(event)
	}
}
