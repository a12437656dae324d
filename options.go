package ngramdist

// Option is a functional option for configuring a Metric.
type Option func(*config)

type config struct {
	gramLength      int // 0 means the alphabet default
	caseInsensitive bool
}

func defaultConfig() *config {
	return &config{}
}

// WithCaseInsensitive enables case folding before hashing.
//
// For ASCII this is an exact ASCII lowercase fold. For UTF8 it is the
// approximate bit-clear fold documented on Alphabet.
func WithCaseInsensitive() Option {
	return func(c *config) {
		c.caseInsensitive = true
	}
}

// WithGramLength overrides the alphabet's default gram length.
//
// ASCII supports 3 and 4; UTF8 supports only 3. New returns
// ErrInvalidGramLength for anything else: the bucket hashes are defined over
// at most four window bytes (ASCII) or exactly three codepoints (UTF8), and
// widening them would change every existing score.
func WithGramLength(n int) Option {
	return func(c *config) {
		c.gramLength = n
	}
}
