package ngramdist

// Distance returns the n-gram distance score between a haystack and a
// needle: 0 for identical gram multisets, 1 for fully dissimilar. Haystacks
// longer than MaxHaystackLen score 1 without being scanned.
//
// The needle is profiled on every call. To compare many haystacks against
// one needle, use DistanceBatch or NewProfile.
func (m *Metric) Distance(haystack, needle []byte) float32 {
	return m.NewProfile(needle).Distance(haystack)
}

// Distance scores one haystack against the profiled needle. The profile's
// table is mutated during the scan and fully restored before returning, so
// calls may be repeated and interleaved with other haystacks.
func (p *Profile) Distance(haystack []byte) float32 {
	if len(haystack) > MaxHaystackLen {
		return 1
	}
	distance := p.grams
	haystackGrams := p.scan(haystack, &distance)
	return float32(distance) / float32(max(p.grams+haystackGrams, 1))
}

// DistanceBatch scores every haystack against one needle, profiling the
// needle once. The result has one score per haystack, in input order.
func (m *Metric) DistanceBatch(haystacks [][]byte, needle []byte) []float32 {
	out := make([]float32, len(haystacks))
	p := m.NewProfile(needle)
	for i, h := range haystacks {
		out[i] = p.Distance(h)
	}
	return out
}

// DistanceOffsets scores rows packed in a flat buffer with ascending end
// offsets: row i is data[offsets[i-1]:offsets[i]] (row 0 starts at 0). This
// is the columnar-storage shape; it avoids materializing per-row slices.
//
// offsets must be ascending and bounded by len(data); rows of zero length
// are valid and contribute zero grams.
func (m *Metric) DistanceOffsets(data []byte, offsets []int, needle []byte) []float32 {
	out := make([]float32, len(offsets))
	p := m.NewProfile(needle)
	prev := 0
	for i, end := range offsets {
		out[i] = p.Distance(data[prev:end])
		prev = end
	}
	return out
}
