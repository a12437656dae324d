package ngramdist

import (
	"bytes"
	"testing"
)

// TestProfileRestorationExact verifies the comparator's core invariant:
// after every Distance call the table is bit-identical to its post-profiling
// state, including buckets that wrapped below zero during the scan.
func TestProfileRestorationExact(t *testing.T) {
	for _, alphabet := range []Alphabet{ASCII, UTF8} {
		t.Run(alphabet.String(), func(t *testing.T) {
			m := MustNew(alphabet)
			p := m.NewProfile([]byte("needle with some grams"))
			snapshot := *p.table

			haystacks := [][]byte{
				[]byte("needle with some grams"),
				[]byte("entirely unrelated content"),
				// Repeated grams force the same bucket through zero several
				// times, exercising wraparound in both directions.
				bytes.Repeat([]byte("a"), 300),
				bytes.Repeat([]byte("needle "), 50),
				{},
			}
			for _, h := range haystacks {
				p.Distance(h)
				if *p.table != snapshot {
					t.Fatalf("table not restored after scanning %q", truncateForLog(h))
				}
			}
		})
	}
}

// TestProfileWraparound scans against an empty profile: every counter starts
// at zero, goes negative (wrapping), and must return to exactly zero.
func TestProfileWraparound(t *testing.T) {
	m := MustNew(ASCII)
	p := m.NewProfile(nil)
	if p.Grams() != 0 {
		t.Fatalf("empty needle grams = %d, want 0", p.Grams())
	}

	haystack := bytes.Repeat([]byte("ab"), 100)
	if got := p.Distance(haystack); got != 1 {
		t.Fatalf("Distance = %v, want 1", got)
	}
	var zero [tableSize]uint16
	if *p.table != zero {
		t.Fatal("table not all-zero after scan against empty profile")
	}
}

func TestProfileRepeatedCalls(t *testing.T) {
	m := MustNew(UTF8)
	p := m.NewProfile([]byte("повторение мать учения"))
	haystack := []byte("повторение")
	first := p.Distance(haystack)
	for i := 0; i < 3; i++ {
		if got := p.Distance(haystack); got != first {
			t.Fatalf("call %d: Distance = %v, want %v", i+2, got, first)
		}
	}
}

func TestProfileGramsRepeatedNeedle(t *testing.T) {
	// "aaaaaa" has three "aaaa" grams in one bucket; the count is a
	// multiset count, not a set count.
	m := MustNew(ASCII)
	p := m.NewProfile([]byte("aaaaaa"))
	if p.Grams() != 3 {
		t.Fatalf("grams = %d, want 3", p.Grams())
	}
	// A haystack with the same three grams matches exactly.
	if got := p.Distance([]byte("aaaaaa")); got != 0 {
		t.Fatalf("Distance = %v, want 0", got)
	}
	// One extra repetition: distance 1, grams 3+4.
	want := float32(1) / float32(7)
	if got := p.Distance([]byte("aaaaaaa")); !approxEqual(got, want) {
		t.Fatalf("Distance = %v, want %v", got, want)
	}
}

func truncateForLog(b []byte) string {
	if len(b) > 40 {
		return string(b[:40]) + "..."
	}
	return string(b)
}
