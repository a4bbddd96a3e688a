package main_test

import (
	"os"
	"testing"

	"fortio.org/testscript"
	main "morphseg.io/morphseg"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"morphseg": main.Main,
	}))
}

func TestMorphsegCli(t *testing.T) {
	testscript.Run(t, testscript.Params{Dir: "testdata"})
}
