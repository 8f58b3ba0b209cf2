package audio

import (
	"fmt"
	"math"
	"time"

	"gridsnake/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog/log"
)

// SoundType identifies a sound effect
type SoundType int

const (
	SoundEat SoundType = iota
	SoundSpeedUp
	SoundGameOver
)

func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundSpeedUp:
		return "speed_up"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

type tone struct {
	freq float64
	dur  time.Duration
}

var sounds = map[SoundType][]tone{
	SoundEat:      {{freq: 880, dur: 60 * time.Millisecond}},
	SoundSpeedUp:  {{freq: 660, dur: 70 * time.Millisecond}, {freq: 990, dur: 90 * time.Millisecond}},
	SoundGameOver: {{freq: 330, dur: 150 * time.Millisecond}, {freq: 247, dur: 150 * time.Millisecond}, {freq: 165, dur: 300 * time.Millisecond}},
}

// Config controls the sound effects.
type Config struct {
	Enabled    bool
	Volume     float64 // 0.0 - 1.0
	SampleRate int
}

func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     0.5,
		SampleRate: 44100,
	}
}

// Player plays tone effects through the system speaker. Without a device
// it stays silent; the game runs either way.
type Player struct {
	cfg         Config
	sampleRate  beep.SampleRate
	initialized bool
	muted       bool
}

func NewPlayer(cfg Config) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	return &Player{
		cfg:        cfg,
		sampleRate: beep.SampleRate(cfg.SampleRate),
		muted:      !cfg.Enabled,
	}
}

// Init opens the speaker. An error means the player stays silent.
func (p *Player) Init() error {
	if !p.cfg.Enabled || p.initialized {
		return nil
	}
	if err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.initialized = true
	return nil
}

// Play queues a sound and reports whether it was sent to the speaker.
func (p *Player) Play(st SoundType) bool {
	if !p.initialized || p.muted {
		return false
	}
	s, err := buildSound(p.sampleRate, st, p.cfg.Volume)
	if err != nil {
		log.Debug().Err(err).Str("sound", st.String()).Msg("build sound")
		return false
	}
	speaker.Play(s)
	return true
}

// OnEvent plays whatever a tick calls for.
func (p *Player) OnEvent(ev game.Event) {
	switch {
	case ev.Over:
		p.Play(SoundGameOver)
	case ev.SpeedUp:
		p.Play(SoundSpeedUp)
	case ev.Ate:
		p.Play(SoundEat)
	}
}

// ToggleMute flips mute and returns true if sound is now on.
func (p *Player) ToggleMute() bool {
	p.muted = !p.muted
	return !p.muted
}

func (p *Player) IsMuted() bool {
	return p.muted
}

func (p *Player) Close() {
	if p.initialized {
		speaker.Close()
		p.initialized = false
	}
}

func buildSound(sr beep.SampleRate, st SoundType, volume float64) (beep.Streamer, error) {
	tones, ok := sounds[st]
	if !ok {
		return nil, fmt.Errorf("unknown sound %d", st)
	}

	parts := make([]beep.Streamer, 0, len(tones))
	for _, tn := range tones {
		sine, err := generators.SineTone(sr, tn.freq)
		if err != nil {
			return nil, fmt.Errorf("sine %.0fHz: %w", tn.freq, err)
		}
		parts = append(parts, beep.Take(sr.N(tn.dur), sine))
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   gain(volume),
		Silent:   volume <= 0,
	}, nil
}

// gain converts a linear 0-1 volume into a base-2 exponent.
func gain(volume float64) float64 {
	if volume <= 0 {
		return 0
	}
	if volume > 1 {
		volume = 1
	}
	return math.Log2(volume)
}
