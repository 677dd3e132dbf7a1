package synth

import (
	"encoding/binary"
	"errors"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = beep.SampleRate(44100)

var ErrClosed = errors.New("synth: engine closed")

// Engine mixes the sustained bed, the pulse and one-shot sweeps. The ebiten
// audio player pulls PCM from it on its own goroutine, so every mutation goes
// through mu.
type Engine struct {
	mu     sync.Mutex
	log    *slog.Logger
	params Params
	rate   beep.SampleRate

	mixer   *beep.Mixer
	master  *effects.Volume
	ambient *tone
	drone   *tone
	pulse   *tone

	player *audio.Player
	closed bool
}

func NewEngine(p Params, muted bool, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		log:    logger,
		params: p,
		rate:   SampleRate,
		mixer:  &beep.Mixer{},
	}
	e.ambient = newTone(WaveSine, e.rate, Voice{Freq: p.AmbientFreq, Gain: p.AmbientGain})
	e.drone = newTone(WaveSaw, e.rate, Voice{Freq: p.DroneFreq, Gain: p.DroneGain})
	e.mixer.Add(e.ambient, e.drone)
	e.master = newVolume(e.mixer, p.MasterVolume, muted)
	return e
}

func newVolume(s beep.Streamer, vol float64, muted bool) *effects.Volume {
	if muted || vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Start acquires the ebiten audio context and begins playback. On failure
// the engine keeps running silently and the error is returned for logging.
func (e *Engine) Start() (err error) {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}
	if e.player != nil {
		e.mu.Unlock()
		return nil
	}
	e.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			err = errors.New("synth: audio device unavailable")
		}
	}()

	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(int(e.rate))
	}
	player, err := ctx.NewPlayerF32(&pcmReader{e: e})
	if err != nil {
		return err
	}
	player.SetBufferSize(100 * time.Millisecond)
	player.Play()

	e.mu.Lock()
	e.player = player
	e.mu.Unlock()
	return nil
}

// Close stops playback and drops every voice. Close is idempotent.
func (e *Engine) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	e.mixer.Clear()
	p := e.player
	e.player = nil
	e.mu.Unlock()

	if p != nil {
		return p.Close()
	}
	return nil
}

// Playing reports whether an audio device is attached.
func (e *Engine) Playing() bool {
	if e == nil {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.player != nil
}

func (e *Engine) SetParams(p Params) {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.params = p
}

func (e *Engine) SetMuted(muted bool) {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	vol := e.params.MasterVolume
	e.master.Silent = muted || vol <= 0
	if !e.master.Silent {
		e.master.Volume = math.Log2(vol)
	}
}

func (e *Engine) SetAmbient(s AmbientState) {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ambient.set(s.Ambient)
	e.drone.set(s.Drone)
}

// RestartPulse replaces the running pulse with a fresh one from phase zero.
func (e *Engine) RestartPulse() {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	if e.pulse != nil {
		e.pulse.stopped = true
	}
	p := e.params
	e.pulse = newTone(WaveTriangle, e.rate, Voice{Freq: p.PulseFreq, Gain: p.PulseGain})
	e.pulse.lfoRate = p.PulseLFORate
	e.pulse.lfoAmp = p.PulseLFODepth
	e.mixer.Add(e.pulse)
}

func (e *Engine) StopPulse() {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pulse != nil {
		e.pulse.stopped = true
		e.pulse = nil
	}
}

func (e *Engine) PlayWhoosh() {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.playSweep(e.params.Whoosh, e.params.Whoosh.Duration)
}

func (e *Engine) PlayCue(c Cue) {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.params.Cues[c]
	if !ok {
		e.log.Debug("unknown cue", "cue", string(c))
		return
	}
	e.playSweep(s, e.params.CueLife)
}

func (e *Engine) playSweep(s Sweep, life time.Duration) {
	if e.closed || life <= 0 {
		return
	}
	e.mixer.Add(beep.Take(e.rate.N(life), newSweep(s, e.rate)))
}

// Voices returns the number of streamers currently in the mix.
func (e *Engine) Voices() int {
	if e == nil {
		return 0
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mixer.Len()
}

// Render fills samples with the next block of the mix. Gaps left by the
// mixer are zeroed.
func (e *Engine) Render(samples [][2]float64) {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	if !e.closed {
		n, _ = e.master.Stream(samples)
	}
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
}

// pcmReader adapts the engine to ebiten's float32 little-endian stereo
// stream format.
type pcmReader struct {
	e   *Engine
	buf [][2]float64
}

const bytesPerFrame = 8

func (r *pcmReader) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}
	if cap(r.buf) < frames {
		r.buf = make([][2]float64, frames)
	}
	buf := r.buf[:frames]
	r.e.Render(buf)
	for i, s := range buf {
		off := i * bytesPerFrame
		binary.LittleEndian.PutUint32(p[off:], math.Float32bits(float32(s[0])))
		binary.LittleEndian.PutUint32(p[off+4:], math.Float32bits(float32(s[1])))
	}
	return frames * bytesPerFrame, nil
}
