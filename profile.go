package ngramdist

// Profile is a needle profiled into a bucket counter table, ready to be
// compared against any number of haystacks.
//
// The table holds one 16-bit counter per bucket. Counters are stored
// unsigned but interpreted as signed during comparison: haystack scans
// decrement them through zero and rely on modular wraparound, then restore
// every touched bucket, so the table always returns to the needle-only state
// between haystacks. The table is allocated once per Profile (128 KiB) and
// never reset.
//
// # Thread Safety
//
// A Profile is NOT safe for concurrent use: Distance mutates the table and
// only restores it on return. To compare haystacks in parallel, give each
// goroutine its own Profile for the same needle (see DistanceBatchParallel).
type Profile struct {
	m     *Metric
	table *[tableSize]uint16
	grams int
}

// NewProfile consumes the needle once and returns its profile. A needle
// shorter than the gram length produces an empty profile (zero grams).
func (m *Metric) NewProfile(needle []byte) *Profile {
	p := &Profile{
		m:     m,
		table: new([tableSize]uint16),
	}
	p.grams = p.populate(needle)
	return p
}

// Grams returns the needle's total n-gram count.
func (p *Profile) Grams() int { return p.grams }

// Metric returns the metric this profile was built with.
func (p *Profile) Metric() *Metric { return p.m }

// populate slides the reader across the whole needle, incrementing one
// bucket per full window, and returns the total gram count.
//
// The first n−1 slots of a fresh window never form a complete gram: on the
// first read they are uninitialized context, on later reads their grams were
// counted by the previous batch. The scan index therefore starts at n−1 once
// and restarts at 0 for every following batch, where those slots are valid
// carried context.
func (p *Profile) populate(needle []byte) int {
	n := p.m.n
	if len(needle) < n {
		return 0
	}

	var cp [windowCap]uint32
	pos := 0
	found := p.m.codec.read(cp[:], &pos, needle)
	i := n - 1
	total := -(n - 1)
	for {
		total += found - n + 1
		for ; i+n <= found; i++ {
			p.table[p.m.codec.hash(cp[i:])]++
		}
		if pos >= len(needle) {
			break
		}
		i = 0
		found = p.m.codec.read(cp[:], &pos, needle)
	}
	// A multi-byte needle can pass the byte-length check yet decode to fewer
	// than n codepoints, leaving the count negative. Zero grams is the
	// defined result.
	return max(total, 0)
}
