package audio

import (
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/rs/zerolog"
)

// VoiceSetting reports whether voice prompts are enabled.
type VoiceSetting interface {
	VoiceEnabled() bool
}

// Output plays decoded audio.
type Output interface {
	Play(streamer beep.Streamer, format beep.Format) error
}

// Player plays voice prompts stored as <promptID>.mp3 files.
type Player struct {
	assets   fs.FS
	settings VoiceSetting
	output   Output
	logger   zerolog.Logger

	mu      sync.Mutex
	buffers map[string]*beep.Buffer
}

// NewPlayer creates a Player. A nil output plays through the system speaker.
func NewPlayer(assets fs.FS, settings VoiceSetting, output Output, logger zerolog.Logger) *Player {
	if output == nil {
		output = &SpeakerOutput{}
	}
	return &Player{
		assets:   assets,
		settings: settings,
		output:   output,
		logger:   logger,
		buffers:  make(map[string]*beep.Buffer),
	}
}

// Play starts the prompt and returns immediately. Failures are logged.
func (player *Player) Play(promptID string) {
	if player.settings != nil && !player.settings.VoiceEnabled() {
		return
	}
	if promptID == "" {
		return
	}

	buffer, err := player.load(promptID)
	if err != nil {
		player.logger.Warn().Err(err).Str("prompt", promptID).Msg("voice prompt unavailable")
		return
	}
	if err := player.output.Play(buffer.Streamer(0, buffer.Len()), buffer.Format()); err != nil {
		player.logger.Warn().Err(err).Str("prompt", promptID).Msg("play voice prompt")
	}
}

func (player *Player) load(promptID string) (*beep.Buffer, error) {
	player.mu.Lock()
	defer player.mu.Unlock()

	if buffer, ok := player.buffers[promptID]; ok {
		return buffer, nil
	}
	if player.assets == nil {
		return nil, fmt.Errorf("no audio assets configured")
	}

	name := promptID + ".mp3"
	file, err := player.assets.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	// mp3.Decode takes ownership of the file and closes it with the streamer.
	streamer, format, err := mp3.Decode(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	player.buffers[promptID] = buffer
	return buffer, nil
}

// SpeakerOutput plays through beep's speaker, initialised on first use.
type SpeakerOutput struct {
	once sync.Once
	rate beep.SampleRate
	err  error
}

// Play implements Output.
func (output *SpeakerOutput) Play(streamer beep.Streamer, format beep.Format) error {
	output.once.Do(func() {
		output.rate = format.SampleRate
		output.err = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
	})
	if output.err != nil {
		return fmt.Errorf("init speaker: %w", output.err)
	}
	if format.SampleRate != output.rate {
		streamer = beep.Resample(4, format.SampleRate, output.rate, streamer)
	}
	speaker.Play(streamer)
	return nil
}
