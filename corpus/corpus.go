// Package corpus reads and writes the word lists fed to the segmenter:
// plain one-word-per-line files and dx1 frequency lists (word, count pairs
// with # comment lines). It also builds frequency lists from running text.
package corpus // import "morphseg.io/morphseg/corpus"

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"fortio.org/log"
	"fortio.org/sets"
)

// Counts is a word frequency table.
type Counts map[string]int

type Options struct {
	// Casefold lowercases every word before anything else.
	Casefold bool
	// MinLength drops words shorter than this many bytes, 0 keeps everything.
	// Words shorter than the minimum stem length can never be segmented, the
	// reference pipeline excludes them up front.
	MinLength int
}

// Open returns a reader for path, with "-" meaning stdin. The closer is a
// no-op for stdin.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// ReadFile loads a corpus, dispatching on the extension: .dx1 files are
// frequency lists, anything else one word per line. "-" reads stdin.
// The returned words are distinct and sorted.
func ReadFile(path string, opts Options) ([]string, error) {
	counts, err := ReadFileCounts(path, opts)
	if err != nil {
		return nil, err
	}
	return counts.Words(), nil
}

// ReadFileCounts loads a corpus as a frequency table. Plain word lists get a
// count of one per occurrence.
func ReadFileCounts(path string, opts Options) (Counts, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	if strings.HasSuffix(path, ".dx1") {
		return ReadDX1(r, opts)
	}
	counts := Counts{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if opts.Casefold {
			w = strings.ToLower(w)
		}
		if w == "" || len(w) < opts.MinLength {
			continue
		}
		counts[w]++
	}
	return counts, sc.Err()
}

// ReadWords reads a plain word list, one word per line, and returns the
// distinct words sorted.
func ReadWords(r io.Reader, opts Options) ([]string, error) {
	seen := sets.New[string]()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if opts.Casefold {
			w = strings.ToLower(w)
		}
		if w == "" || len(w) < opts.MinLength {
			continue
		}
		seen.Add(w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return sets.Sort(seen), nil
}

// ReadDX1 parses a dx1 frequency list: one "word count" pair per line,
// whitespace separated, lines starting with # are comments. Malformed lines
// are skipped, the same word on several lines accumulates.
func ReadDX1(r io.Reader, opts Options) (Counts, error) {
	counts := Counts{}
	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			log.Debugf("dx1 line %d: no count, skipping %q", lineNum, line)
			continue
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			log.Debugf("dx1 line %d: bad count %q, skipping", lineNum, fields[1])
			continue
		}
		w := fields[0]
		if opts.Casefold {
			w = strings.ToLower(w)
		}
		if len(w) < opts.MinLength {
			continue
		}
		counts[w] += n
	}
	return counts, sc.Err()
}

// Words returns the distinct words of the table, sorted.
func (c Counts) Words() []string {
	words := make([]string, 0, len(c))
	for w := range c {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Tokens returns the total token count (sum of all frequencies).
func (c Counts) Tokens() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// WriteDX1 writes the table as a dx1 frequency list, most frequent first
// (alphabetical among ties), preceded by one # line per comment.
func WriteDX1(w io.Writer, counts Counts, comments ...string) error {
	for _, c := range comments {
		if _, err := fmt.Fprintf(w, "# %s\n", c); err != nil {
			return err
		}
	}
	words := counts.Words()
	sort.SliceStable(words, func(i, j int) bool {
		return counts[words[i]] > counts[words[j]]
	})
	for _, word := range words {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", word, counts[word]); err != nil {
			return err
		}
	}
	return nil
}

var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Build tokenizes running text into a frequency table, counting every
// letter/digit run as one token.
func Build(r io.Reader, opts Options) (Counts, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	counts := Counts{}
	for _, w := range wordRe.FindAllString(string(data), -1) {
		if opts.Casefold {
			w = strings.ToLower(w)
		}
		if len(w) < opts.MinLength {
			continue
		}
		counts[w]++
	}
	log.Debugf("Built corpus of %d distinct words, %d tokens", len(counts), counts.Tokens())
	return counts, nil
}
