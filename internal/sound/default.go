package sound

import (
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
)

const sampleRate = beep.SampleRate(44100)

// DefaultPlayer decodes every sample in the asset directory up front and
// plays them fire-and-forget through one shared speaker.
type DefaultPlayer struct {
	Directory string

	buffers map[string]*beep.Buffer
}

func (p *DefaultPlayer) Init() error {
	p.buffers = map[string]*beep.Buffer{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); nil != err {
		return err
	}
	if p.Directory == "" {
		return nil
	}
	return filepath.Walk(p.Directory, func(fp string, info os.FileInfo, err error) error {
		if nil != err || info.IsDir() {
			return nil
		}
		ext := path.Ext(info.Name())
		switch ext {
		case ".mp3", ".ogg":
		default:
			return nil
		}
		key := strings.TrimSuffix(info.Name(), ext)
		if err := p.load(key, fp, ext); nil != err {
			// A bad asset costs one sound, not the game
			log.Println("unable to load sound asset", fp, err)
		}
		return nil
	})
}

func (p *DefaultPlayer) load(key, file, ext string) error {
	f, err := os.Open(file)
	if nil != err {
		return err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	if ext == ".ogg" {
		streamer, format, err = vorbis.Decode(f)
	} else {
		streamer, format, err = mp3.Decode(f)
	}
	if nil != err {
		f.Close()
		return err
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: format.NumChannels,
		Precision:   format.Precision,
	})
	buffer.Append(beep.Resample(4, format.SampleRate, sampleRate, streamer))
	p.buffers[key] = buffer
	return nil
}

func (p *DefaultPlayer) Deinit() {
	speaker.Clear()
}

func (p *DefaultPlayer) Play(key string) {
	buffer, ok := p.buffers[key]
	if !ok {
		log.Println("missing sound asset", key)
		return
	}
	speaker.Play(buffer.Streamer(0, buffer.Len()))
}
