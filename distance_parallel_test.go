package ngramdist

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

func TestDistanceBatchParallelMatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	haystacks := make([][]byte, 500)
	for i := range haystacks {
		haystacks[i] = randomInput(rng, 200, true)
	}
	needle := []byte("the quick brown fox")

	for _, alphabet := range []Alphabet{ASCII, UTF8} {
		m := MustNew(alphabet)
		want := m.DistanceBatch(haystacks, needle)
		for _, workers := range []int{1, 2, 3, 7, 16, 1000} {
			t.Run(fmt.Sprintf("%s_workers_%d", alphabet, workers), func(t *testing.T) {
				got, err := m.DistanceBatchParallel(context.Background(), haystacks, needle, workers)
				if err != nil {
					t.Fatalf("DistanceBatchParallel: %v", err)
				}
				if len(got) != len(want) {
					t.Fatalf("length = %d, want %d", len(got), len(want))
				}
				for i := range want {
					if got[i] != want[i] {
						t.Fatalf("row %d: parallel %v != serial %v", i, got[i], want[i])
					}
				}
			})
		}
	}
}

func TestDistanceBatchParallelEmpty(t *testing.T) {
	m := MustNew(ASCII)
	got, err := m.DistanceBatchParallel(context.Background(), nil, []byte("abcd"), 4)
	if err != nil {
		t.Fatalf("DistanceBatchParallel: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("length = %d, want 0", len(got))
	}
}

func TestDistanceBatchParallelInvalidWorkers(t *testing.T) {
	m := MustNew(ASCII)
	for _, workers := range []int{0, -1} {
		_, err := m.DistanceBatchParallel(context.Background(), [][]byte{[]byte("abcd")}, []byte("abcd"), workers)
		if !errors.Is(err, ErrInvalidWorkers) {
			t.Errorf("workers=%d: err = %v, want ErrInvalidWorkers", workers, err)
		}
	}
}

func TestDistanceBatchParallelCanceled(t *testing.T) {
	m := MustNew(ASCII)
	haystacks := make([][]byte, 10000)
	for i := range haystacks {
		haystacks[i] = []byte("some haystack content here")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		_, err := m.DistanceBatchParallel(ctx, haystacks, []byte("needle!!"), workers)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("workers=%d: err = %v, want context.Canceled", workers, err)
		}
	}
}
