// Bench measures ngramdist scoring throughput against a synthetic or
// file-backed corpus of haystacks.
//
// Usage:
//
//	go run ./cmd/bench -needle "hello world" -count 1000000
//	go run ./cmd/bench -needle "привет" -alphabet utf8 -ci -corpus /usr/share/dict/words
//
// Flags:
//
//	-needle    Needle string (default: "the quick brown fox")
//	-corpus    Path to a corpus file; one haystack per line, memory-mapped.
//	           When unset, a synthetic corpus is generated.
//	-count     Synthetic corpus size (default: 1,000,000)
//	-maxlen    Maximum synthetic haystack length in bytes (default: 64)
//	-seed      Synthetic corpus seed (default: 0x1234)
//	-alphabet  ascii or utf8 (default: ascii)
//	-ci        Case-insensitive mode (default: false)
//	-workers   Worker goroutines for the parallel phase; 0 skips it
package main

import (
	"bufio"
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/edsrzf/mmap-go"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"

	"github.com/fuzzdex/ngramdist"
	"github.com/fuzzdex/ngramdist/internal/crc"
)

const letters = "abcdefghijklmnopqrstuvwxyz ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// generateCorpus builds count pseudo-random strings. Each string gets an
// independent murmur3-derived seed so the corpus is reproducible and
// insensitive to generation order.
func generateCorpus(count, maxLen int, seed uint32) [][]byte {
	if maxLen < 1 {
		maxLen = 1
	}
	corpus := make([][]byte, count)
	var idx [8]byte
	for i := range corpus {
		binary.LittleEndian.PutUint64(idx[:], uint64(i))
		state := murmur3.Sum64WithSeed(idx[:], seed)
		n := int(state%uint64(maxLen)) + 1
		s := make([]byte, n)
		for j := range s {
			// xorshift64
			state ^= state << 13
			state ^= state >> 7
			state ^= state << 17
			s[j] = letters[state%uint64(len(letters))]
		}
		corpus[i] = s
	}
	return corpus
}

// loadCorpus memory-maps path and splits it into lines without copying.
// The mmap region stays referenced by the returned slices for the lifetime
// of the process, so it is never unmapped here.
func loadCorpus(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}

	var corpus [][]byte
	start := 0
	for i, b := range data {
		if b == '\n' {
			if i > start {
				corpus = append(corpus, data[start:i])
			}
			start = i + 1
		}
	}
	if start < len(data) {
		corpus = append(corpus, data[start:])
	}
	return corpus, nil
}

func main() {
	needleFlag := flag.String("needle", "the quick brown fox", "needle string")
	corpusFlag := flag.String("corpus", "", "corpus file (one haystack per line); empty = synthetic")
	countFlag := flag.Int("count", 1_000_000, "synthetic corpus size")
	maxLenFlag := flag.Int("maxlen", 64, "max synthetic haystack length")
	seedFlag := flag.Uint("seed", 0x1234, "synthetic corpus seed")
	alphabetFlag := flag.String("alphabet", "ascii", "alphabet: ascii or utf8")
	ciFlag := flag.Bool("ci", false, "case-insensitive mode")
	workersFlag := flag.Int("workers", 0, "workers for the parallel phase (0 = skip)")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	flag.Parse()

	var alphabet ngramdist.Alphabet
	switch *alphabetFlag {
	case "ascii":
		alphabet = ngramdist.ASCII
	case "utf8":
		alphabet = ngramdist.UTF8
	default:
		fmt.Printf("Unknown alphabet: %s (use 'ascii' or 'utf8')\n", *alphabetFlag)
		return
	}
	var opts []ngramdist.Option
	if *ciFlag {
		opts = append(opts, ngramdist.WithCaseInsensitive())
	}
	metric, err := ngramdist.New(alphabet, opts...)
	if err != nil {
		fmt.Printf("New failed: %v\n", err)
		return
	}

	var corpus [][]byte
	if *corpusFlag != "" {
		fmt.Printf("Mapping corpus %s...\n", *corpusFlag)
		corpus, err = loadCorpus(*corpusFlag)
		if err != nil {
			fmt.Printf("Load corpus failed: %v\n", err)
			return
		}
	} else {
		fmt.Println("Generating corpus...")
		corpus = generateCorpus(*countFlag, *maxLenFlag, uint32(*seedFlag))
	}
	if len(corpus) == 0 {
		fmt.Println("Empty corpus")
		return
	}

	var totalBytes int
	unique := make(map[uint64]struct{}, len(corpus))
	for _, h := range corpus {
		totalBytes += len(h)
		unique[xxhash.Sum64(h)] = struct{}{}
	}

	// Baseline: plain hashing of the same bytes, to contextualize scoring
	// throughput against the cost of just touching the corpus.
	hashStart := time.Now()
	var sink uint64
	for _, h := range corpus {
		sink ^= xxh3.Hash(h)
	}
	hashDuration := time.Since(hashStart)

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Printf("could not create CPU profile: %v\n", err)
			return
		}
		defer func() { _ = f.Close() }()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("could not start CPU profile: %v\n", err)
			return
		}
		defer pprof.StopCPUProfile()
	}

	needle := []byte(*needleFlag)

	fmt.Println("Scoring (single-threaded)...")
	scoreStart := time.Now()
	scores := metric.DistanceBatch(corpus, needle)
	scoreDuration := time.Since(scoreStart)

	var parallelDuration time.Duration
	if *workersFlag > 0 {
		fmt.Printf("Scoring (%d workers)...\n", *workersFlag)
		parallelStart := time.Now()
		if _, err := metric.DistanceBatchParallel(context.Background(), corpus, needle, *workersFlag); err != nil {
			fmt.Printf("Parallel scoring failed: %v\n", err)
			return
		}
		parallelDuration = time.Since(parallelStart)
	}

	var best float32 = 2
	bestIdx := 0
	for i, s := range scores {
		if s < best {
			best, bestIdx = s, i
		}
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	fmt.Fprintf(w, "\nMetric:            %s\n", metric)
	fmt.Fprintf(w, "Hardware CRC32:    %v\n", crc.Hardware)
	fmt.Fprintf(w, "Haystacks:         %d (%d unique, %.1f MB)\n", len(corpus), len(unique), float64(totalBytes)/1e6)
	fmt.Fprintf(w, "Needle grams:      %d\n", metric.NewProfile(needle).Grams())
	fmt.Fprintf(w, "Hash baseline:     %6.2f M/sec (xxh3, sink %x)\n", rate(len(corpus), hashDuration), sink&0xF)
	fmt.Fprintf(w, "Score throughput:  %6.2f M/sec (%.1f MB/sec)\n", rate(len(corpus), scoreDuration), float64(totalBytes)/1e6/scoreDuration.Seconds())
	if parallelDuration > 0 {
		fmt.Fprintf(w, "Parallel:          %6.2f M/sec (%d workers)\n", rate(len(corpus), parallelDuration), *workersFlag)
	}
	fmt.Fprintf(w, "Best match:        score %.4f at row %d: %q\n", best, bestIdx, truncate(corpus[bestIdx], 60))
}

func rate(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / d.Seconds() / 1e6
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
