// Package ngramdist implements a streaming, fixed-memory approximate string
// similarity metric based on n-gram multiset comparison.
//
// The metric estimates how dissimilar a haystack string is from a needle
// string by comparing the multisets of their overlapping n-grams. N-grams are
// never materialized: each one is reduced to a 16-bit hash bucket and counted
// in a fixed 65536-entry table. Collisions are accepted as approximation
// noise. A score of 0 means the n-gram multisets are identical (up to hash
// collisions), 1 means fully dissimilar.
//
// # Basic Usage
//
// One-shot comparison:
//
//	m := ngramdist.MustNew(ngramdist.ASCII)
//	score := m.Distance([]byte("hello world"), []byte("hello"))
//
// Comparing many haystacks against one needle profiles the needle once and
// reuses its counter table for every haystack:
//
//	scores := m.DistanceBatch(haystacks, needle)
//
// For repeated batches with the same needle, build the profile explicitly:
//
//	p := m.NewProfile(needle)
//	for _, h := range haystacks {
//	    score := p.Distance(h)
//	}
//
// # Configuration
//
// A Metric is configured at construction from a closed set of variants:
// alphabet (ASCII or UTF8), case sensitivity, and gram length. The four
// canonical configurations mirror the ngramDistance function family:
//
//	ngramdist.MustNew(ngramdist.ASCII)                                  // 4-grams over raw bytes
//	ngramdist.MustNew(ngramdist.ASCII, ngramdist.WithCaseInsensitive()) // ASCII lowercase fold
//	ngramdist.MustNew(ngramdist.UTF8)                                   // 3-grams over decoded scalars
//	ngramdist.MustNew(ngramdist.UTF8, ngramdist.WithCaseInsensitive())  // approximate UTF-8 fold
//
// The UTF-8 case fold is deliberately approximate: it clears one bit per
// source byte, which folds ASCII and most Cyrillic letters but is not a
// general Unicode case fold. See Alphabet for details.
//
// # Limits
//
// Haystacks longer than MaxHaystackLen (32 KiB) are reported as maximally
// dissimilar (score 1.0) without being scanned. Inputs shorter than the gram
// length contribute zero n-grams.
//
// # Package Structure
//
//   - Public API: metric.go (New, Metric), distance.go (Distance,
//     DistanceBatch, DistanceOffsets), profile.go (Profile)
//   - Configuration: options.go (Option, With* functions), alphabet.go
//   - Core scan: compare.go (incremental distance and table restoration)
//   - Codepoint readers and hashes: codec.go, codec_ascii.go, codec_utf8.go
//   - Parallel batches: distance_parallel.go (DistanceBatchParallel)
//   - Checksum primitive: internal/crc (raw CRC32-C accumulate)
package ngramdist
