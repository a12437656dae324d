package ngramdist

// smallTouchedLen is the inline touched-bucket capacity. Haystacks up to
// this many bytes (and therefore at most this many grams) record touched
// buckets without a heap allocation; longer ones fall back to a heap slice.
const smallTouchedLen = 256

// scan compares one haystack against the profiled table, updating the
// running distance in place, and returns the haystack's gram count. The
// table's logical contents are unchanged on return.
//
// Per gram hash h, in input order:
//
//  1. If the counter at h is positive under signed interpretation — a needle
//     gram not yet claimed by this haystack — the distance decreases by one;
//     otherwise it increases by one.
//  2. The counter at h is decremented with 16-bit wraparound.
//  3. h is appended to the touched-bucket log.
//
// After the scan every logged bucket is re-incremented once per log entry,
// exactly undoing step 2 regardless of how many times each bucket was
// touched. Callers must enforce MaxHaystackLen before calling; the scan
// itself accepts any length.
func (p *Profile) scan(haystack []byte, distance *int) int {
	n := p.m.n

	var small [smallTouchedLen]uint16
	touched := small[:0]
	if len(haystack) > smallTouchedLen {
		touched = make([]uint16, 0, len(haystack))
	}

	var cp [windowCap]uint32
	pos := 0
	found := p.m.codec.read(cp[:], &pos, haystack)
	i := n - 1
	grams := 0
	for {
		for ; i+n <= found; i++ {
			h := p.m.codec.hash(cp[i:])
			if int16(p.table[h]) > 0 {
				*distance--
			} else {
				*distance++
			}
			p.table[h]--
			touched = append(touched, h)
			grams++
		}
		if pos >= len(haystack) {
			break
		}
		i = 0
		found = p.m.codec.read(cp[:], &pos, haystack)
	}

	// Restore the table to its needle-only state.
	for _, h := range touched {
		p.table[h]++
	}
	return grams
}
