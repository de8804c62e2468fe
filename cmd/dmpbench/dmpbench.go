// Command dmpbench stress-tests the diff and patch engines against large
// inputs under a CPU, memory or wall-clock (fgprof) profiler, to find hot paths
// before they show up as latency in a caller.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/felixge/fgprof"
	"github.com/pkg/profile"

	dmp "github.com/synctext/dmp"
)

func main() {
	mode := "cpu"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	var stop interface{ Stop() }
	switch mode {
	case "cpu":
		stop = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	case "mem":
		stop = profile.Start(profile.MemProfile, profile.ProfilePath("."))
	case "fgprof":
		fgprofFile, err := os.Create("fgprof.pprof")
		if err != nil {
			log.Fatalf("dmpbench: creating fgprof output: %v", err)
		}
		defer fgprofFile.Close()
		stopFgprof := fgprof.Start(fgprofFile, fgprof.FormatPprof)
		defer func() {
			if err := stopFgprof(); err != nil {
				log.Printf("dmpbench: stopping fgprof: %v", err)
			}
		}()
	default:
		log.Fatalf("dmpbench: unknown mode %q (want cpu, mem, or fgprof)", mode)
	}
	if stop != nil {
		defer stop.Stop()
	}

	config := dmp.NewDefaultConfig()
	text1 := strings.Repeat("the quick brown fox jumps over the lazy dog. ", 4000)
	text2 := strings.Replace(text1, "lazy dog", "eager cat", -1)

	start := time.Now()
	diffs := config.Diff(text1, text2, true)
	diffs = config.DiffCleanupSemantic(diffs)
	patches := config.PatchMake(text1, diffs)
	result, applied := config.PatchApply(patches, text1)
	elapsed := time.Since(start)

	ok := 0
	for _, a := range applied {
		if a {
			ok++
		}
	}
	if result != text2 {
		log.Fatalf("dmpbench: patch application did not reproduce text2")
	}
	fmt.Printf("diffs=%d patches=%d applied=%d/%d elapsed=%s\n",
		len(diffs), len(patches), ok, len(applied), elapsed)
}
