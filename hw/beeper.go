package hw

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/arl/blip"
	"github.com/veandco/go-sdl2/sdl"

	"chirp8/emu/log"
)

const (
	sampleRate = 44100
	clockRate  = 1000000 // synthesis clock
	beepHz     = 440
	halfWave   = clockRate / (2 * beepHz)
	amplitude  = 6000

	maxClocksPerFrame = clockRate / 10
)

// Beeper turns the engine sound timer into the classic single-tone buzzer:
// a square wave plays for as long as the timer is nonzero. The wave is
// synthesized through a band-limited blip buffer and queued to SDL audio.
type Beeper struct {
	buf *blip.Buffer
	dev sdl.AudioDeviceID
	out []int16

	high  bool
	phase int // clocks into the current half wave
	last  time.Time
}

func NewBeeper() (*Beeper, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("failed to initialize SDL audio: %s", err)
	}

	spec := sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  1024,
	}
	dev, err := sdl.OpenAudioDevice("", false, &spec, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio device: %s", err)
	}
	sdl.PauseAudioDevice(dev, false)

	buf := blip.NewBuffer(sampleRate / 10)
	buf.SetRates(clockRate, sampleRate)

	return &Beeper{
		buf: buf,
		dev: dev,
		out: make([]int16, sampleRate/10),
	}, nil
}

// RunFrame synthesizes the audio elapsed since the previous call. With
// active false the stream keeps running with silence so timing stays
// continuous.
func (b *Beeper) RunFrame(active bool) {
	now := time.Now()
	if b.last.IsZero() {
		b.last = now
	}
	clocks := int(now.Sub(b.last) * clockRate / time.Second)
	b.last = now
	if clocks <= 0 {
		return
	}
	if clocks > maxClocksPerFrame {
		// After a stall, don't synthesize the whole gap.
		clocks = maxClocksPerFrame
	}

	if active {
		for t := halfWave - b.phase; t < clocks; t += halfWave {
			delta := int32(2 * amplitude)
			if b.high {
				delta = -delta
			}
			b.buf.AddDelta(uint64(t), delta)
			b.high = !b.high
		}
		b.phase = (b.phase + clocks) % halfWave
	} else if b.high {
		// Sound just stopped mid-wave, settle back to silence.
		b.buf.AddDelta(0, -2*amplitude)
		b.high = false
		b.phase = 0
	}
	b.buf.EndFrame(clocks)

	avail := min(b.buf.SamplesAvailable(), len(b.out))
	n := b.buf.ReadSamples(b.out[:avail], avail, blip.Mono)
	if n == 0 {
		return
	}

	raw := unsafe.Slice((*byte)(unsafe.Pointer(&b.out[0])), n*2)
	if err := sdl.QueueAudio(b.dev, raw); err != nil {
		log.ModSound.Debugf("failed to queue audio buffer: %v", err)
	}
}

func (b *Beeper) Close() {
	sdl.CloseAudioDevice(b.dev)
}
