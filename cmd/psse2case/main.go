// psse2case is a CLI tool that converts PSS/E RAW power-flow files into a
// normalized case and writes it as a MATPOWER .m file, CSV tables or an
// Excel workbook, chosen by the output file's extension.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/avaropoint/psse2case/caseformat"
	"github.com/avaropoint/psse2case/parsers/psse"
)

// usage prints command-line help to stderr.
func usage() {
	fmt.Fprintf(os.Stderr, `psse2case
Convert PSS/E RAW power-flow data to a normalized case file

Usage:
  psse2case [options] input_file

Options:
`)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Supported RAW format revisions: %v (default %d when the file
header carries no usable revision).

The output format is chosen by the output file extension:
`, psse.SupportedRevisions, psse.DefaultRevision)
	for _, w := range caseformat.All() {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", strings.Join(w.Extensions(), " "), w.Name())
	}
	fmt.Fprintf(os.Stderr, `
Examples:
  psse2case bench.raw
  psse2case -o bench.xlsx -v bench.raw
  psse2case -r 31 -s space bench.raw
`)
}

func main() {
	var (
		output    = flag.String("o", "", "write the case to `FILE` (default: input with a .m extension)")
		revision  = flag.Int("r", 0, "RAW format `revision`; determined from the file header when omitted")
		separator = flag.String("s", "", "data item separator, 'comma' or 'space'; determined from the file header when omitted")
		verbose   = flag.Bool("v", false, "print more information")
		debug     = flag.Bool("d", false, "print debug information")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	infile := flag.Arg(0)

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if *verbose {
		cfg.Level.SetLevel(zap.InfoLevel)
	}
	if *debug {
		cfg.Level.SetLevel(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "psse2case: building logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	var sep byte
	switch *separator {
	case "":
	case "comma":
		sep = ','
	case "space":
		sep = ' '
	default:
		sugar.Warnf("Invalid delimiter [%s].", *separator)
	}

	c, err := psse.ParseFile(infile, &psse.Options{
		Revision:  *revision,
		Delimiter: sep,
		Logger:    sugar,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "psse2case: %v\n", err)
		os.Exit(1)
	}

	outfile := *output
	if outfile == "" {
		outfile = strings.TrimSuffix(infile, filepath.Ext(infile)) + ".m"
	}
	writer, err := caseformat.ForPath(outfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "psse2case: %v\n", err)
		os.Exit(1)
	}

	fd, err := os.Create(outfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "psse2case: creating %s: %v\n", outfile, err)
		os.Exit(1)
	}
	if err := writer.Write(fd, c); err != nil {
		fd.Close()
		fmt.Fprintf(os.Stderr, "psse2case: writing %s: %v\n", outfile, err)
		os.Exit(1)
	}
	if err := fd.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "psse2case: closing %s: %v\n", outfile, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%s): %d buses, %d generators, %d branches, baseMVA %g\n",
		outfile, writer.Name(), len(c.Bus), len(c.Gen), len(c.Branch), c.BaseMVA)
}
