// Command dmptool exposes diff/match/patch as a CLI over files, for ad-hoc
// inspection and scripting.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	dmp "github.com/synctext/dmp"
)

var CLI struct {
	Diff struct {
		BeforeFile *os.File `arg help:"Original file."`
		AfterFile  *os.File `arg help:"Modified file."`
		Html       bool     `help:"Render the diff as HTML instead of ANSI color."`
		Semantic   bool     `help:"Run semantic cleanup before printing."`
	} `cmd help:"Diff two files and print the result."`

	Match struct {
		TextFile *os.File `arg help:"File to search within."`
		Pattern  string   `arg help:"Fuzzy pattern to locate."`
		Loc      int      `help:"Expected location of the match." default:"0"`
	} `cmd help:"Locate pattern in a text file using fuzzy Bitap matching."`

	Patch struct {
		BeforeFile *os.File `arg help:"Base file the patch was computed against."`
		PatchFile  *os.File `arg help:"Patch file in unidiff-like text form."`
	} `cmd help:"Apply a patch file to a base file."`

	Make struct {
		BeforeFile *os.File `arg help:"Original file."`
		AfterFile  *os.File `arg help:"Modified file."`
	} `cmd help:"Compute a patch turning before into after, and print it."`
}

func main() {
	ctx := kong.Parse(&CLI)
	config := dmp.NewDefaultConfig()
	switch ctx.Command() {
	case "diff <before-file> <after-file>":
		before := readAll(CLI.Diff.BeforeFile)
		after := readAll(CLI.Diff.AfterFile)
		diffs := config.Diff(before, after, true)
		if CLI.Diff.Semantic {
			diffs = config.DiffCleanupSemantic(diffs)
		}
		if CLI.Diff.Html {
			fmt.Println(config.DiffPrettyHtml(diffs))
		} else {
			fmt.Println(config.DiffPrettyText(diffs))
		}
	case "match <text-file> <pattern>":
		text := readAll(CLI.Match.TextFile)
		loc := config.Match(text, CLI.Match.Pattern, CLI.Match.Loc)
		if loc == -1 {
			fmt.Fprintln(os.Stderr, "no match found")
			os.Exit(1)
		}
		fmt.Println(loc)
	case "patch <before-file> <patch-file>":
		before := readAll(CLI.Patch.BeforeFile)
		patchText := readAll(CLI.Patch.PatchFile)
		patches, err := config.PatchFromText(patchText)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid patch: %s\n", err)
			os.Exit(1)
		}
		result, applied := config.PatchApply(patches, before)
		for i, ok := range applied {
			if !ok {
				fmt.Fprintf(os.Stderr, "patch %d did not apply cleanly\n", i)
			}
		}
		fmt.Print(result)
	case "make <before-file> <after-file>":
		before := readAll(CLI.Make.BeforeFile)
		after := readAll(CLI.Make.AfterFile)
		patches := config.PatchMake(before, after)
		fmt.Print(config.PatchToText(patches))
	default:
		panic(ctx.Command())
	}
}

func readAll(f *os.File) string {
	b, err := io.ReadAll(f)
	if err != nil {
		panic(err)
	}
	return string(b)
}
