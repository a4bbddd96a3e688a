// Package stats reduces per-word segmentation results into run-level
// statistics: morphemes-per-word ratios, their spread, and how often each
// discovered fragment occurs across the corpus. It is a stateless consumer
// of the segmenter's output, the algorithmic core carries no counters.
package stats // import "morphseg.io/morphseg/stats"

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"fortio.org/sets"
	"morphseg.io/morphseg/corpus"
	"morphseg.io/morphseg/segment"
)

// Direction aggregates one reading direction.
type Direction struct {
	// MorphemesPerWord is the mean number of pieces per word.
	MorphemesPerWord float64
	// Stdev is the population standard deviation of pieces per word.
	Stdev float64
	// Fragments counts how often each morpheme fragment occurs.
	Fragments corpus.Counts
	// MeanOccurrence and StdevOccurrence describe the Fragments counts.
	MeanOccurrence  float64
	StdevOccurrence float64
}

type Summary struct {
	Words    int
	LTR, RTL Direction
	// CombinedRatio is the mean of the two per-direction ratios,
	// CombinedStdev the population stdev over both directions' counts.
	CombinedRatio float64
	CombinedStdev float64
	// Boundaries is the number of retained boundary offsets over the whole
	// run, DistinctPositions how many distinct offsets they fall on.
	Boundaries        int
	DistinctPositions int
}

// Summarize reduces segmentation results. delim must be the delimiter the
// results were produced with.
func Summarize(results []segment.Result, delim string) Summary {
	if delim == "" {
		delim = segment.DefaultDelimiter
	}
	s := Summary{
		Words: len(results),
		LTR:   Direction{Fragments: corpus.Counts{}},
		RTL:   Direction{Fragments: corpus.Counts{}},
	}
	ltrCounts := make([]float64, 0, len(results))
	rtlCounts := make([]float64, 0, len(results))
	positions := sets.New[int]()
	for _, r := range results {
		ltr := strings.Split(r.LTR, delim)
		rtl := strings.Split(r.RTL, delim)
		ltrCounts = append(ltrCounts, float64(len(ltr)))
		rtlCounts = append(rtlCounts, float64(len(rtl)))
		for _, m := range ltr {
			s.LTR.Fragments[m]++
		}
		for _, m := range rtl {
			s.RTL.Fragments[m]++
		}
		s.Boundaries += r.Forward.Len() + r.Backward.Len()
		for o := range r.Forward {
			positions.Add(o)
		}
		for o := range r.Backward {
			positions.Add(o)
		}
	}
	s.DistinctPositions = positions.Len()
	s.LTR.MorphemesPerWord = mean(ltrCounts)
	s.RTL.MorphemesPerWord = mean(rtlCounts)
	s.LTR.Stdev = pstdev(ltrCounts)
	s.RTL.Stdev = pstdev(rtlCounts)
	s.CombinedRatio = mean([]float64{s.LTR.MorphemesPerWord, s.RTL.MorphemesPerWord})
	s.CombinedStdev = pstdev(append(append([]float64{}, ltrCounts...), rtlCounts...))
	s.LTR.MeanOccurrence, s.LTR.StdevOccurrence = occurrence(s.LTR.Fragments)
	s.RTL.MeanOccurrence, s.RTL.StdevOccurrence = occurrence(s.RTL.Fragments)
	return s
}

func occurrence(fragments corpus.Counts) (float64, float64) {
	xs := make([]float64, 0, len(fragments))
	for _, n := range fragments {
		xs = append(xs, float64(n))
	}
	return mean(xs), pstdev(xs)
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// pstdev is the population standard deviation (the reference output divides
// by N, not N-1).
func pstdev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	mu := mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - mu
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)))
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// Write emits the run-level report.
func (s Summary) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w, `%d words, %d boundaries discovered (%d distinct positions)

Morphemes per word:
left-to-right: %.2f
right-to-left: %.2f
combined morpheme-per-word ratio: %.2f

Standard deviation:
left-to-right: %.2f
right-to-left: %.2f
combined: %.2f

coefficient of variation (stdev / morpheme ratio): %.2f

each morpheme occurs on average:
left-to-right: %.2f times
right-to-left: %.2f times

Standard deviation of the occurrence of individual morphemes:
left-to-right: %.2f
right-to-left: %.2f

coefficient of variation:
left-to-right: %.2f
right-to-left: %.2f
`,
		s.Words, s.Boundaries, s.DistinctPositions,
		s.LTR.MorphemesPerWord, s.RTL.MorphemesPerWord, s.CombinedRatio,
		s.LTR.Stdev, s.RTL.Stdev, s.CombinedStdev,
		ratio(s.CombinedStdev, s.CombinedRatio),
		s.LTR.MeanOccurrence, s.RTL.MeanOccurrence,
		s.LTR.StdevOccurrence, s.RTL.StdevOccurrence,
		ratio(s.LTR.StdevOccurrence, s.LTR.MeanOccurrence),
		ratio(s.RTL.StdevOccurrence, s.RTL.MeanOccurrence))
	return err
}

// WriteSegmentations lists every word segmented, one direction after the
// other, in the order the results came in.
func WriteSegmentations(w io.Writer, results []segment.Result) error {
	if _, err := fmt.Fprintf(w, "Left-to-right:\n"); err != nil {
		return err
	}
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.LTR); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\nright-to-left:\n"); err != nil {
		return err
	}
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.RTL); err != nil {
			return err
		}
	}
	return nil
}

// EndingReport describes how a candidate ending behaves in a corpus: which
// words carry it, and which other corpus words extend one of the bare stems
// left after stripping it.
type EndingReport struct {
	Ending        string
	TotalTokens   int
	EndingTokens  int
	MatchedTokens int
	// Matches maps each bare stem to the corpus words that start with it
	// without carrying the ending.
	Matches map[string][]string
}

// Endings analyzes one candidate ending against a frequency table.
func Endings(counts corpus.Counts, ending string) EndingReport {
	r := EndingReport{
		Ending:      ending,
		TotalTokens: counts.Tokens(),
		Matches:     map[string][]string{},
	}
	var stems []string
	for w, n := range counts {
		if w != ending && strings.HasSuffix(w, ending) {
			r.EndingTokens += n
			stems = append(stems, strings.TrimSuffix(w, ending))
		}
	}
	sort.Strings(stems)
	matched := sets.New[string]()
	for w := range counts {
		if strings.HasSuffix(w, ending) {
			continue
		}
		for _, stem := range stems {
			if strings.HasPrefix(w, stem) {
				r.Matches[stem] = append(r.Matches[stem], w)
				matched.Add(w)
			}
		}
	}
	for _, words := range r.Matches {
		sort.Strings(words)
	}
	for w := range matched {
		r.MatchedTokens += counts[w]
	}
	return r
}

func (r EndingReport) Write(w io.Writer) error {
	pct := func(n int) float64 {
		return 100 * ratio(float64(n), float64(r.TotalTokens))
	}
	_, err := fmt.Fprintf(w, "length of corpus: %d words\nwords that end with %s: %d (%.2f%% of total)\nmatching words without %s: %d (%.2f%% of total)\n",
		r.TotalTokens, r.Ending, r.EndingTokens, pct(r.EndingTokens),
		r.Ending, r.MatchedTokens, pct(r.MatchedTokens))
	if err != nil {
		return err
	}
	stems := make([]string, 0, len(r.Matches))
	for stem := range r.Matches {
		stems = append(stems, stem)
	}
	sort.Strings(stems)
	for _, stem := range stems {
		if _, err := fmt.Fprintf(w, "%s: %s\n", stem, strings.Join(r.Matches[stem], ", ")); err != nil {
			return err
		}
	}
	return nil
}
