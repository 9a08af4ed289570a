// Package sound plays short procedurally synthesized effect cues through
// the system audio device. Everything is generated at startup; there are
// no asset files. A nil *Player is valid and silently drops every cue, so
// callers never need to branch on whether audio is available.
package sound

import (
	"io"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 0 // float32 little-endian samples
)

// Cue identifies one effect.
type Cue int

const (
	CueShoot Cue = iota
	CueExplosion
	CueHit
	CuePickup
	CueLevelUp
	CueGameOver
)

// Player owns the audio context and the pre-rendered sample buffers.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	cues   map[Cue][]byte
	volume float64
}

// NewPlayer initializes the audio device and renders all cue buffers.
// Returns an error when no audio device is available; callers typically
// log it and continue with a nil player.
func NewPlayer(volume float64) (*Player, error) {
	ctx, ready, err := oto.NewContext(sampleRate, channelCount, bitDepth)
	if err != nil {
		return nil, err
	}
	p := &Player{
		ctx:    ctx,
		ready:  ready,
		volume: clampF(volume, 0, 1),
		cues: map[Cue][]byte{
			CueShoot:     genShoot(),
			CueExplosion: genExplosion(),
			CueHit:       genHit(),
			CuePickup:    genPickup(),
			CueLevelUp:   genLevelUp(),
			CueGameOver:  genGameOver(),
		},
	}
	return p, nil
}

// Play fires a cue asynchronously. Safe on a nil receiver and before the
// device has finished initializing; both cases drop the cue.
func (p *Player) Play(cue Cue) {
	if p == nil || p.volume <= 0 {
		return
	}
	select {
	case <-p.ready:
	default:
		return
	}
	samples := p.cues[cue]
	if len(samples) == 0 {
		return
	}
	go func() {
		player := p.ctx.NewPlayer(&sampleReader{data: samples})
		player.SetVolume(p.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type sampleReader struct {
	data []byte
	pos  int
}

func (r *sampleReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
