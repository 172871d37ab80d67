// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"slices"
	"testing"
	"time"
)

func mustTrack(t *testing.T, samples []float32, rate int) *Track {
	t.Helper()

	tr, err := NewTrack(samples, rate, time.Millisecond)
	if err != nil {
		t.Fatalf("NewTrack() error = %v", err)
	}
	return tr
}

func TestBuilder_EmptyIsIdentity(t *testing.T) {
	t.Parallel()

	b := NewBuilder(1000, time.Millisecond)
	tr, err := b.Track()
	if err != nil {
		t.Fatalf("Track() error = %v", err)
	}
	if tr.Len() != 0 {
		t.Errorf("empty builder Len() = %d, want 0", tr.Len())
	}
}

func TestBuilder_AppendIsAssociative(t *testing.T) {
	t.Parallel()

	a := mustTrack(t, []float32{1, 2}, 1000)
	b := mustTrack(t, []float32{3}, 1000)
	c := mustTrack(t, []float32{4, 5, 6}, 1000)

	left := NewBuilder(1000, time.Millisecond)
	for _, tr := range []*Track{a, b} {
		if err := left.Append(tr); err != nil {
			t.Fatal(err)
		}
	}
	ab, _ := left.Track()
	outer := NewBuilder(1000, time.Millisecond)
	_ = outer.Append(ab)
	_ = outer.Append(c)
	abc1, _ := outer.Track()

	right := NewBuilder(1000, time.Millisecond)
	_ = right.Append(b)
	_ = right.Append(c)
	bc, _ := right.Track()
	outer2 := NewBuilder(1000, time.Millisecond)
	_ = outer2.Append(a)
	_ = outer2.Append(bc)
	abc2, _ := outer2.Track()

	want := []float32{1, 2, 3, 4, 5, 6}
	if !slices.Equal(abc1.Samples(), want) || !slices.Equal(abc2.Samples(), want) {
		t.Errorf("(ab)c = %v, a(bc) = %v, want %v", abc1.Samples(), abc2.Samples(), want)
	}
}

func TestBuilder_AppendCopies(t *testing.T) {
	t.Parallel()

	src := []float32{1, 2, 3, 4}
	tr := mustTrack(t, src, 1000)
	part, err := tr.Slice(0, 2)
	if err != nil {
		t.Fatal(err)
	}

	b := NewBuilder(1000, time.Millisecond)
	b.Grow(10)
	if err := b.Append(part); err != nil {
		t.Fatal(err)
	}
	if err := b.Append(part); err != nil {
		t.Fatal(err)
	}

	if b.Frames() != 4 {
		t.Errorf("Frames() = %d, want 4", b.Frames())
	}
	if !slices.Equal(src, []float32{1, 2, 3, 4}) {
		t.Errorf("source samples changed to %v", src)
	}
}

func TestBuilder_FormatMismatch(t *testing.T) {
	t.Parallel()

	b := NewBuilder(1000, time.Millisecond)

	if err := b.Append(mustTrack(t, []float32{1}, 2000)); !errors.Is(err, ErrFormatMismatch) {
		t.Errorf("Append(other rate) error = %v, want %v", err, ErrFormatMismatch)
	}

	other, err := NewTrack([]float32{1}, 1000, 2*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Append(other); !errors.Is(err, ErrFormatMismatch) {
		t.Errorf("Append(other unit) error = %v, want %v", err, ErrFormatMismatch)
	}
}

func TestBuilder_TrackOwnsSamples(t *testing.T) {
	t.Parallel()

	src := []float32{1, 2, 3, 4}
	tr := mustTrack(t, src, 1000)

	b := tr.Builder()
	if err := b.Append(tr); err != nil {
		t.Fatal(err)
	}
	out, err := b.Track()
	if err != nil {
		t.Fatal(err)
	}

	if &out.samples[0] == &tr.samples[0] {
		t.Fatal("built track shares the source backing array")
	}

	src[0] = 9
	if out.samples[0] != 1 {
		t.Errorf("built track sample = %v after source write, want 1", out.samples[0])
	}
}

func TestBuilder_LenIsSumOfParts(t *testing.T) {
	t.Parallel()

	// Slices of 1 ms at 44.1 kHz are 44 or 45 frames wide.
	tr := mustTrack(t, make([]float32, 4410), 44100)

	b := tr.Builder()
	for _, r := range [][2]int{{0, 3}, {17, 18}, {40, 100}} {
		part, err := tr.Slice(r[0], r[1])
		if err != nil {
			t.Fatal(err)
		}
		if err := b.Append(part); err != nil {
			t.Fatal(err)
		}
	}

	out, err := b.Track()
	if err != nil {
		t.Fatal(err)
	}
	if out.Len() != 64 {
		t.Errorf("Len() = %d, want 64", out.Len())
	}
	for i := range out.Len() {
		_ = out.Volume(i)
	}
}
