package segment_test

import (
	"slices"
	"strings"
	"testing"

	"fortio.org/sets"
	"morphseg.io/morphseg/segment"
)

var corpus = []string{"walk", "walked", "walking", "talk", "talked"}

func TestRun_Scenario(t *testing.T) {
	results, err := segment.Run(corpus, segment.Options{MinStemLength: 4})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	want := map[string]string{
		"walk":    "walk",
		"walked":  "walk-ed",
		"walking": "walk-ing",
		"talk":    "talk",
		"talked":  "talk-ed",
	}
	for _, r := range results {
		if r.LTR != want[r.Word] {
			t.Errorf("LTR segmentation of %q = %q, want %q", r.Word, r.LTR, want[r.Word])
		}
	}
}

func TestRun_RoundTrip(t *testing.T) {
	words := []string{"walk", "walked", "walking", "talk", "talked", "unwalkable", "zebra", "prewalk", "pretalk"}
	results, err := segment.Run(words, segment.Options{MinStemLength: 4, Delimiter: "+"})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	for _, r := range results {
		if got := strings.ReplaceAll(r.LTR, "+", ""); got != r.Word {
			t.Errorf("LTR round trip of %q gave %q", r.Word, got)
		}
		if got := strings.ReplaceAll(r.RTL, "+", ""); got != r.Word {
			t.Errorf("RTL round trip of %q gave %q", r.Word, got)
		}
	}
}

func TestRun_StemLengthFilter(t *testing.T) {
	const minStem = 4
	results, err := segment.Run(corpus, segment.Options{MinStemLength: minStem})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	for _, r := range results {
		for o := range r.Forward {
			if o < minStem {
				t.Errorf("Forward boundary %d of %q is below the minimum stem length", o, r.Word)
			}
			if o <= 0 || o >= len(r.Word) {
				t.Errorf("Forward boundary %d of %q is not interior", o, r.Word)
			}
		}
		for o := range r.Backward {
			// Backward offsets are stored in the original orientation, the
			// stem they protect is the word ending.
			if len(r.Word)-o < minStem {
				t.Errorf("Backward boundary %d of %q leaves an ending shorter than the minimum stem", o, r.Word)
			}
			if o <= 0 || o >= len(r.Word) {
				t.Errorf("Backward boundary %d of %q is not interior", o, r.Word)
			}
		}
	}
}

// Running the forward pass on a fully reversed corpus must mirror the
// backward pass on the original corpus, offset by length complement.
func TestRun_DirectionalSymmetry(t *testing.T) {
	reversed := make([]string, len(corpus))
	for i, w := range corpus {
		reversed[i] = segment.Reverse(w)
	}
	orig, err := segment.Run(corpus, segment.Options{MinStemLength: 4})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	mirror, err := segment.Run(reversed, segment.Options{MinStemLength: 4})
	if err != nil {
		t.Fatalf("Run on reversed corpus failed: %v", err)
	}
	for i, r := range orig {
		m := mirror[i]
		comp := sets.New[int]()
		for o := range m.Forward {
			comp.Add(len(r.Word) - o)
		}
		if !slices.Equal(sets.Sort(comp), sets.Sort(r.Backward)) {
			t.Errorf("Backward boundaries of %q = %v, want complement of forward-on-reversed %v",
				r.Word, sets.Sort(r.Backward), sets.Sort(m.Forward))
		}
	}
}

func TestRun_UnsegmentableWord(t *testing.T) {
	words := append([]string{"zebra"}, corpus...)
	results, err := segment.Run(words, segment.Options{MinStemLength: 4})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if results[0].Word != "zebra" || results[0].LTR != "zebra" || results[0].RTL != "zebra" {
		t.Errorf("Expected 'zebra' unsegmented in both directions, got %q / %q", results[0].LTR, results[0].RTL)
	}
}

func TestRun_SingleWordCorpus(t *testing.T) {
	results, err := segment.Run([]string{"aardvark"}, segment.Options{MinStemLength: 4})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	r := results[0]
	if r.LTR != "aardvark" || r.RTL != "aardvark" {
		t.Errorf("Single-word corpus segmented: %q / %q", r.LTR, r.RTL)
	}
	if r.Forward.Len() != 0 || r.Backward.Len() != 0 {
		t.Errorf("Single-word corpus produced boundaries: %v / %v", r.Forward, r.Backward)
	}
}

func TestRun_ConfigErrors(t *testing.T) {
	if _, err := segment.Run(corpus, segment.Options{MinStemLength: 0}); err == nil {
		t.Error("Expected an error for a zero minimum stem length")
	}
	if _, err := segment.Run(corpus, segment.Options{MinStemLength: -3}); err == nil {
		t.Error("Expected an error for a negative minimum stem length")
	}
	// 7 bytes is the length of the longest word, every boundary would be
	// suppressed.
	if _, err := segment.Run(corpus, segment.Options{MinStemLength: 7}); err == nil {
		t.Error("Expected an error when the minimum stem length suppresses all boundaries")
	}
	if _, err := segment.Run([]string{"walk", ""}, segment.Options{MinStemLength: 2}); err == nil {
		t.Error("Expected an error for an empty word in the list")
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		word    string
		offsets []int
		minStem int
		want    []string
	}{
		{"unhappily", []int{2, 7}, 4, []string{"unhappi", "ly"}},
		{"unhappily", []int{2, 7}, 2, []string{"un", "happi", "ly"}},
		{"unhappily", []int{2}, 4, []string{"unhappily"}},
		{"walked", []int{4}, 4, []string{"walk", "ed"}},
		{"walked", nil, 4, []string{"walked"}},
	}
	for _, tt := range tests {
		got := segment.Split(tt.word, sets.New(tt.offsets...), tt.minStem)
		if !slices.Equal(got, tt.want) {
			t.Errorf("Split(%q, %v, %d) = %v, want %v", tt.word, tt.offsets, tt.minStem, got, tt.want)
		}
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"walked", "deklaw"},
		{"", ""},
		{"a", "a"},
		// The combining acute accent must stay attached to its base letter.
		{"éta", "até"},
	}
	for _, tt := range tests {
		if got := segment.Reverse(tt.in); got != tt.want {
			t.Errorf("Reverse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
