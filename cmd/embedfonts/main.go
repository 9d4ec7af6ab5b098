/*
Command embedfonts creates the embedded-fonts module of a client application
from font subset descriptions.

Usage:

	embedfonts -i <fonts_dir> -o <dst_file> [-namespace fontomas.embedded_fonts] config.yml...

Every config names a source font, which is expected at <fonts_dir>/<fontname>.ttf.
Glyphs not present in a source font are reported and left out. Any other error
aborts the run with exit code 1, without writing the destination file.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/embedfonts/bundle"
	"github.com/npillmayer/embedfonts/core"
	"github.com/npillmayer/embedfonts/core/fontconfig"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'embedfonts.cli'
func tracer() tracing.Trace {
	return tracing.Select("embedfonts.cli")
}

var traceKeys = []string{
	"embedfonts.cli",
	"embedfonts.config",
	"embedfonts.fonts",
	"embedfonts.resources",
	"embedfonts.bundle",
}

type cliArgs struct {
	fontsDir  string
	dstFile   string
	namespace string
	tlevel    string
	configs   []string
}

func main() {
	initDisplay()
	args, err := parseArgs(os.Args[0], os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		pterm.Error.WithWriter(os.Stderr).Println(err.Error())
		os.Exit(1)
	}
	conf := testconfig.Conf{
		"tracing.adapter":   "go",
		bundle.KeyNamespace: args.namespace,
	}
	for _, key := range traceKeys {
		conf["trace."+key] = args.tlevel
	}
	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Fprintf(os.Stderr, "error configuring tracing\n")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	os.Exit(run(args, conf, os.Stderr))
}

// We use pterm for moderately fancy output, on stderr.
func initDisplay() {
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  " Warning",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func parseArgs(cmd string, argv []string) (*cliArgs, error) {
	args := &cliArgs{}
	flags := flag.NewFlagSet(cmd, flag.ContinueOnError)
	flags.StringVar(&args.fontsDir, "i", "", "Input fonts directory")
	flags.StringVar(&args.fontsDir, "fonts_dir", "", "Input fonts directory")
	flags.StringVar(&args.dstFile, "o", "", "Output js file")
	flags.StringVar(&args.dstFile, "dst_file", "", "Output js file")
	flags.StringVar(&args.namespace, "namespace", bundle.DefaultNamespace, "Namespace entry to assign the fonts to")
	flags.StringVar(&args.tlevel, "trace", "Error", "Trace level [Debug|Info|Error]")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: %s -i fonts_dir -o dst_file [flags] config.yml...\n", cmd)
		fmt.Fprintf(flags.Output(), "flags must come before the config files\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(argv); err != nil {
		return nil, err
	}
	args.configs = flags.Args()
	for _, c := range args.configs {
		if strings.HasPrefix(c, "-") {
			return nil, fmt.Errorf("flag %s after config files; flags must come before the config files", c)
		}
	}
	switch {
	case args.fontsDir == "":
		return nil, errors.New("fonts directory is required (-i)")
	case args.dstFile == "":
		return nil, errors.New("output file is required (-o)")
	case len(args.configs) == 0:
		return nil, errors.New("at least one config file is required")
	}
	return args, nil
}

// run builds and writes the bundle and returns the exit code. Diagnostics go
// to stderr, one line each.
func run(args *cliArgs, conf testconfig.Conf, stderr io.Writer) int {
	warn := pterm.Warning.WithWriter(stderr)
	b := bundle.NewBuilder(args.fontsDir, bundle.OptionsFrom(conf))
	result, err := b.Build(args.configs)
	if err != nil {
		reportError(stderr, err)
		return 1
	}
	for _, w := range result.Warnings {
		warn.Printfln("%s: %s", w.Fontname, w.Detail())
	}
	if err := result.WriteFile(args.dstFile); err != nil {
		reportError(stderr, err)
		return 1
	}
	tracer().Infof("%d fonts written to %s", len(result.Fragments), args.dstFile)
	return 0
}

func reportError(w io.Writer, err error) {
	core.ReportError(w, err)
	var dup *fontconfig.DuplicateCodesError
	if errors.As(err, &dup) {
		printer := pterm.Error.WithWriter(w)
		for _, line := range dup.Lines() {
			printer.Println(line)
		}
	}
}
