// Package segment applies trie branch offsets to words, producing
// morpheme-segmented output in both reading directions: the forward pass
// surfaces suffix-like structure, the reversed pass prefix-like structure.
package segment // import "morphseg.io/morphseg/segment"

import (
	"fmt"
	"strings"

	"fortio.org/log"
	"fortio.org/sets"
	"github.com/rivo/uniseg"
	"morphseg.io/morphseg/trie"
)

// DefaultDelimiter separates morphemes in segmented output.
const DefaultDelimiter = "-"

type Options struct {
	// MinStemLength suppresses every boundary offset below it: the first
	// MinStemLength bytes of a word are an unsegmentable stem.
	MinStemLength int
	// Delimiter between morphemes, DefaultDelimiter if empty.
	Delimiter string
}

// Result pairs a word with its two segmentations. Forward and Backward hold
// the retained boundary offsets, both expressed as byte offsets into Word
// (the reversed pass is complemented back to the original orientation).
type Result struct {
	Word     string
	LTR      string
	RTL      string
	Forward  sets.Set[int]
	Backward sets.Set[int]
}

// Reverse returns s with its grapheme clusters in reverse order, so
// combining marks stay attached to their base characters and the byte
// length is preserved.
func Reverse(s string) string {
	return uniseg.ReverseString(s)
}

// Split cuts word at every boundary offset that clears the minimum stem
// length, in ascending order. If nothing survives the filter the whole word
// comes back as a single stem.
func Split(word string, offsets sets.Set[int], minStem int) []string {
	return cut(word, keep(offsets, minStem))
}

// keep filters a boundary set to the offsets at or past the minimum stem
// length. Each offset is tested on its own.
func keep(offsets sets.Set[int], minStem int) sets.Set[int] {
	kept := sets.New[int]()
	for o := range offsets {
		if o >= minStem {
			kept.Add(o)
		}
	}
	return kept
}

// cut slices word at the given offsets. Offsets outside (0, len(word)) are
// ignored rather than trusted.
func cut(word string, offsets sets.Set[int]) []string {
	pieces := make([]string, 0, offsets.Len()+1)
	prev := 0
	for _, o := range sets.Sort(offsets) {
		if o <= prev || o >= len(word) {
			continue
		}
		pieces = append(pieces, word[prev:o])
		prev = o
	}
	return append(pieces, word[prev:])
}

// complement maps offsets found on the reversed word back to the original
// orientation.
func complement(offsets sets.Set[int], length int) sets.Set[int] {
	out := sets.New[int]()
	for o := range offsets {
		out.Add(length - o)
	}
	return out
}

// Run executes the full pipeline: build one trie over the words as given and
// one over their reversals, extract branch offsets from each, filter by the
// minimum stem length, and cut every word both ways. The two passes share
// one direction-agnostic core; only the reversal adapter differs.
func Run(words []string, opts Options) ([]Result, error) {
	if opts.MinStemLength <= 0 {
		return nil, fmt.Errorf("minimum stem length must be positive, got %d", opts.MinStemLength)
	}
	delim := opts.Delimiter
	if delim == "" {
		delim = DefaultDelimiter
	}
	longest := 0
	for _, w := range words {
		if len(w) > longest {
			longest = len(w)
		}
	}
	if len(words) > 0 && opts.MinStemLength >= longest {
		return nil, fmt.Errorf("minimum stem length %d suppresses every boundary (longest word is %d bytes)",
			opts.MinStemLength, longest)
	}
	forward := trie.New()
	backward := trie.New()
	reversed := make([]string, len(words))
	for i, w := range words {
		if err := forward.Insert(w); err != nil {
			return nil, fmt.Errorf("word %d: %w", i+1, err)
		}
		reversed[i] = Reverse(w)
		if err := backward.Insert(reversed[i]); err != nil {
			return nil, fmt.Errorf("word %d: %w", i+1, err)
		}
	}
	log.Debugf("Built tries for %d words: %d forward nodes, %d backward nodes",
		forward.NumWords(), forward.NumNodes(), backward.NumNodes())
	results := make([]Result, len(words))
	for i, w := range words {
		fwd := keep(forward.Boundaries(w), opts.MinStemLength)
		// The minimum stem length applies in the reversed orientation (the
		// stem of the reversed word is the ending of the original), then the
		// surviving offsets map back by length complement.
		bwd := complement(keep(backward.Boundaries(reversed[i]), opts.MinStemLength), len(w))
		results[i] = Result{
			Word:     w,
			LTR:      strings.Join(cut(w, fwd), delim),
			RTL:      strings.Join(cut(w, bwd), delim),
			Forward:  fwd,
			Backward: bwd,
		}
	}
	return results, nil
}
