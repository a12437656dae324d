package ngramdist

import "fmt"

const (
	// tableSize is the number of hash buckets in a needle profile. Every
	// n-gram is identified only by its 16-bit hash, so the table covers the
	// whole hash space and fits in L2 cache.
	tableSize = 1 << 16

	// MaxHaystackLen is the haystack size cap in bytes. Longer haystacks are
	// reported as maximally dissimilar (score 1.0) without being scanned.
	MaxHaystackLen = 1 << 15

	// readBatch is how many codepoint slots a single reader call fills past
	// the carried context.
	readBatch = 16

	// windowCap is the sliding window capacity: one read batch plus the
	// maximum carried context (gram length 4 minus one).
	windowCap = readBatch + 4 - 1
)

// Metric is an n-gram distance metric for one fixed configuration of
// alphabet, case mode and gram length.
//
// A Metric is stateless and safe for concurrent use; all mutable state lives
// in the Profile created per needle.
type Metric struct {
	alphabet Alphabet
	n        int
	fold     bool
	codec    codec
}

// New creates a Metric for the given alphabet.
//
// Returns ErrUnknownAlphabet or ErrInvalidGramLength if the configuration is
// outside the supported set.
func New(alphabet Alphabet, opts ...Option) (*Metric, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	n := cfg.gramLength
	if n == 0 {
		n = alphabet.defaultGramLength()
	}

	c, err := newCodec(alphabet, n, cfg.caseInsensitive)
	if err != nil {
		return nil, err
	}

	return &Metric{
		alphabet: alphabet,
		n:        n,
		fold:     cfg.caseInsensitive,
		codec:    c,
	}, nil
}

// MustNew is like New but panics on a configuration error. Intended for the
// common case where the configuration is static.
func MustNew(alphabet Alphabet, opts ...Option) *Metric {
	m, err := New(alphabet, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Alphabet returns the metric's alphabet.
func (m *Metric) Alphabet() Alphabet { return m.alphabet }

// GramLength returns the metric's gram length (3 or 4).
func (m *Metric) GramLength() int { return m.n }

// CaseInsensitive reports whether the metric folds case before hashing.
func (m *Metric) CaseInsensitive() bool { return m.fold }

// String returns a short description like "ascii/4" or "utf8/3/fold".
func (m *Metric) String() string {
	if m.fold {
		return fmt.Sprintf("%s/%d/fold", m.alphabet, m.n)
	}
	return fmt.Sprintf("%s/%d", m.alphabet, m.n)
}
