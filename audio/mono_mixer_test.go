// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/loudcut/internal/audiotest"
)

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 1, 100, 0.5)
	mixer := NewMonoMixer(src)

	if mixer.Channels() != 1 {
		t.Errorf("MonoMixer.Channels() = %d, want 1", mixer.Channels())
	}

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 10 {
		t.Errorf("ReadSamples() n = %d, want 10", n)
	}

	for i := range n {
		if buf[i] != 0.5 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestMonoMixer_Averages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		want     float32
	}{
		{"stereo", 2, 0.5},
		{"three channels", 3, 0.2},
		{"quad", 4, 0.25},
		{"5.1", 6, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewMockSource(8000, tt.channels, 50, func(_ int, ch int) float32 {
				switch tt.channels {
				case 2:
					return []float32{0.4, 0.6}[ch]
				case 3:
					return float32(ch) * 0.2
				default:
					if ch%2 == 0 {
						return 0
					}
					return 0.5
				}
			})
			mixer := NewMonoMixer(src)

			buf := make([]float32, 20)
			n, err := mixer.ReadSamples(buf)
			if err != nil {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if n != 20 {
				t.Fatalf("ReadSamples() n = %d, want 20", n)
			}

			for i := range n {
				if math.Abs(float64(buf[i]-tt.want)) > 1e-6 {
					t.Fatalf("buf[%d] = %v, want %v", i, buf[i], tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 2, 15, 0.1)
	mixer := NewMonoMixer(src)

	buf := make([]float32, 10)
	total := 0
	for {
		n, err := mixer.ReadSamples(buf)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if total != 15 {
		t.Errorf("read %d mono frames, want 15", total)
	}
}

func TestMonoMixer_EmptyBuffer(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 10))

	n, err := mixer.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestMonoMixer_PropagatesErrors(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 2, 100, 0.3).WithFailure(0)
	mixer := NewMonoMixer(src)

	_, err := mixer.ReadSamples(make([]float32, 10))
	if !errors.Is(err, audiotest.ErrInjected) {
		t.Errorf("ReadSamples() error = %v, want %v", err, audiotest.ErrInjected)
	}
}

func TestMonoMixer_PreservesMetadataAndCloses(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(44100, 2, 10)
	mixer := NewMonoMixer(src)

	if mixer.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", mixer.SampleRate())
	}
	if mixer.BufSize() != src.BufSize() {
		t.Errorf("BufSize() = %d, want %d", mixer.BufSize(), src.BufSize())
	}

	if err := mixer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Close() did not close the wrapped source")
	}
}

func BenchmarkMonoMixer_StereoToMono(b *testing.B) {
	src := audiotest.NewSineSource(48000, 2, math.MaxInt32, 440)
	mixer := NewMonoMixer(src)
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		_, _ = mixer.ReadSamples(buf)
	}
}
