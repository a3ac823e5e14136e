// Package main provides histstat, a command-line tool that bins columns of
// numbers into a multi-dimensional histogram, optionally marginalizes it
// onto a subset of axes, and prints the cell table together with summary
// statistics of the raw sample.
//
// Usage:
//
//	histstat -axes axes.yaml [-keep 0,2] [-inner] [data.txt]
//
// The axes file is yaml:
//
//	axes:
//	  - name: pt
//	    kind: regular
//	    bins: 10
//	    lo: 0
//	    hi: 100
//	  - name: charge
//	    kind: category
//	    labels: [-1, 1]
//
// Each input line carries one whitespace-separated value per axis. With no
// data file, input is read from stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/stats"

	"github.com/scigolib/histogram"
)

func main() {
	axesPath := flag.String("axes", "", "yaml file defining the axes (required)")
	keepFlag := flag.String("keep", "", "comma-separated axis positions to keep; empty keeps all")
	inner := flag.Bool("inner", false, "print only regular bins, hiding underflow/overflow slots")
	flag.Parse()

	if *axesPath == "" {
		fmt.Println("Usage: histstat -axes <axes.yaml> [flags] [data file]")
		fmt.Println("Flags:")
		flag.PrintDefaults()
		return
	}

	cfgFile, err := os.Open(*axesPath)
	if err != nil {
		log.Fatalf("Failed to open axes file: %v", err)
	}
	cfg, err := loadConfig(cfgFile)
	_ = cfgFile.Close()
	if err != nil {
		log.Fatalf("Failed to load axes file: %v", err)
	}

	axes, err := cfg.buildAxes()
	if err != nil {
		log.Fatalf("Failed to build axes: %v", err)
	}

	in := os.Stdin
	if args := flag.Args(); len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalf("Failed to open data file: %v", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Printf("Failed to close data file: %v", err)
			}
		}()
		in = f
	}

	h, err := histogram.New[int64](axes...)
	if err != nil {
		log.Fatalf("Failed to build histogram: %v", err)
	}

	columns, err := fillFromReader(h, in)
	if err != nil {
		log.Fatalf("Failed to read data: %v", err)
	}

	keep, err := parseKeep(*keepFlag, h.Rank())
	if err != nil {
		log.Fatalf("Failed to parse -keep: %v", err)
	}

	p, err := histogram.Project(h, keep)
	if err != nil {
		log.Fatalf("Failed to project: %v", err)
	}

	cov := histogram.CoverAll
	if *inner {
		cov = histogram.CoverInner
	}

	names := make([]string, len(keep))
	for i, k := range keep {
		names[i] = cfg.axisName(k)
	}
	printCells(p, names, cov)

	fmt.Println()
	for k, col := range columns {
		printSummary(cfg.axisName(k), col)
	}
}

// fillFromReader fills h with one sample per input line and returns the raw
// values per column for the summary statistics.
func fillFromReader(h *histogram.Histogram[int64], r io.Reader) ([][]float64, error) {
	columns := make([][]float64, h.Rank())
	xs := make([]float64, h.Rank())

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != h.Rank() {
			return nil, fmt.Errorf("line %d has %d values for %d axes", line, len(fields), h.Rank())
		}
		for i, field := range fields {
			x, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad value %q: %w", line, field, err)
			}
			xs[i] = x
			columns[i] = append(columns[i], x)
		}
		if err := histogram.Fill(h, xs...); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}
	return columns, nil
}

// printCells prints one line per non-empty cell: the signed bin index along
// each kept axis, then the count.
func printCells(h *histogram.Histogram[int64], names []string, cov histogram.Coverage) {
	fmt.Printf("cells (%s):\n", strings.Join(names, ", "))

	total := int64(0)
	for it := histogram.Cells(h, cov); it.Next(); {
		v := it.Value()
		total += v
		if v == 0 {
			continue
		}
		bins := make([]string, h.Rank())
		for k := range bins {
			bins[k] = formatBin(h.Axis(k), it.Bin(k))
		}
		fmt.Printf("  (%s): %d\n", strings.Join(bins, ", "), v)
	}
	fmt.Printf("total: %d\n", total)
}

// formatBin renders a signed bin index, naming the flow slots.
func formatBin(a histogram.Axis, bin int) string {
	switch {
	case bin < 0:
		return "under"
	case bin >= a.Size():
		return "over"
	default:
		return strconv.Itoa(bin)
	}
}

// printSummary prints sample statistics for one input column.
func printSummary(name string, xs []float64) {
	if len(xs) == 0 {
		fmt.Printf("%s: no samples\n", name)
		return
	}

	sample := stats.Sample{Xs: xs}
	min, max := sample.Bounds()
	fmt.Printf("%s: n=%d mean=%g stddev=%g median=%g min=%g max=%g\n",
		name, len(xs), stats.Mean(xs), stats.StdDev(xs), sample.Quantile(0.5), min, max)
}
