// Morphseg segments the words of a corpus into candidate morphemes by
// finding the branch points of a Patricia trie built over the vocabulary,
// reading the words both left-to-right and right-to-left.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"fortio.org/cli"
	"fortio.org/log"
	"fortio.org/struct2env"
	"morphseg.io/morphseg/corpus"
	"morphseg.io/morphseg/segment"
	"morphseg.io/morphseg/stats"
)

func main() {
	os.Exit(Main())
}

type Config struct {
	MinLength int
	Delimiter string
}

var config = Config{}

func EnvHelp(w io.Writer) {
	res, _ := struct2env.StructToEnvVars(config)
	str := struct2env.ToShellWithPrefix("MORPHSEG_", res, true)
	fmt.Fprintln(w, "# Morphseg environment variables:")
	fmt.Fprint(w, str)
}

func Main() int {
	minDefault := 4
	delimDefault := segment.DefaultDelimiter
	cli.EnvHelpFuncs = append(cli.EnvHelpFuncs, EnvHelp)
	errs := struct2env.SetFromEnv("MORPHSEG_", &config)
	if len(errs) > 0 {
		log.Errf("Error setting config from env: %v", errs)
	}
	if config.MinLength != 0 {
		minDefault = config.MinLength
	}
	if config.Delimiter != "" {
		delimDefault = config.Delimiter
	}
	minLength := flag.Int("min", minDefault,
		"minimum stem `length` in bytes, boundaries closer to the word start stay in the stem")
	outputFile := flag.String("o", "", "write output to `file` instead of stdout")
	delim := flag.String("delim", delimDefault, "morpheme `delimiter` in segmented output")
	noCasefold := flag.Bool("no-casefold", false, "keep the corpus case as is instead of lowercasing")
	keepShort := flag.Bool("keep-short", false,
		"keep words shorter than the minimum stem length (they are never segmented)")
	makeCorpus := flag.String("make-corpus", "",
		"tokenize the input as running text, write a dx1 frequency list to `file` and exit")
	ending := flag.String("ending", "",
		"report which corpus words carry `suffix` and which extend its bare stems, instead of segmenting")

	cli.ArgsHelp = "corpus file (.dx1 or one word per line) or - for stdin"
	cli.MinArgs = 1
	cli.MaxArgs = 1
	cli.Main()
	file := flag.Arg(0)
	if *makeCorpus != "" {
		return runMakeCorpus(file, *makeCorpus, corpus.Options{Casefold: !*noCasefold})
	}
	out := io.Writer(os.Stdout)
	if *outputFile != "" {
		f, err := os.Create(*outputFile)
		if err != nil {
			return log.FErrf("Can't create output file: %v", err)
		}
		defer f.Close()
		out = f
	}
	opts := corpus.Options{Casefold: !*noCasefold}
	if !*keepShort {
		opts.MinLength = *minLength
	}
	if *ending != "" {
		return runEndings(out, file, *ending, corpus.Options{Casefold: !*noCasefold})
	}
	return runSegment(out, file, *minLength, *delim, opts)
}

func runSegment(out io.Writer, file string, minLength int, delim string, opts corpus.Options) int {
	words, err := corpus.ReadFile(file, opts)
	if err != nil {
		return log.FErrf("Can't read corpus %s: %v", file, err)
	}
	log.Infof("Read %d words from %s", len(words), file)
	results, err := segment.Run(words, segment.Options{MinStemLength: minLength, Delimiter: delim})
	if err != nil {
		return log.FErrf("Segmentation failed: %v", err)
	}
	summary := stats.Summarize(results, delim)
	if err = summary.Write(out); err != nil {
		return log.FErrf("Can't write report: %v", err)
	}
	if _, err = fmt.Fprintln(out); err != nil {
		return log.FErrf("Can't write report: %v", err)
	}
	if err = stats.WriteSegmentations(out, results); err != nil {
		return log.FErrf("Can't write segmentations: %v", err)
	}
	log.Infof("All done")
	return 0
}

func runMakeCorpus(file, output string, opts corpus.Options) int {
	in, err := corpus.Open(file)
	if err != nil {
		return log.FErrf("Can't read input %s: %v", file, err)
	}
	defer in.Close()
	counts, err := corpus.Build(in, opts)
	if err != nil {
		return log.FErrf("Can't build corpus from %s: %v", file, err)
	}
	f, err := os.Create(output)
	if err != nil {
		return log.FErrf("Can't create corpus file: %v", err)
	}
	defer f.Close()
	if err = corpus.WriteDX1(f, counts, fmt.Sprintf("from '%s'", file)); err != nil {
		return log.FErrf("Can't write corpus file: %v", err)
	}
	log.Infof("Wrote %d distinct words (%d tokens) to %s", len(counts), counts.Tokens(), output)
	return 0
}

func runEndings(out io.Writer, file, ending string, opts corpus.Options) int {
	counts, err := corpus.ReadFileCounts(file, opts)
	if err != nil {
		return log.FErrf("Can't read corpus %s: %v", file, err)
	}
	report := stats.Endings(counts, ending)
	if err = report.Write(out); err != nil {
		return log.FErrf("Can't write ending report: %v", err)
	}
	return 0
}
