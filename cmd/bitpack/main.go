package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/bitpack"
	"github.com/wippyai/bitpack/inspect"
)

func main() {
	var (
		widthsArg   = flag.String("widths", "", "Comma-separated field widths in bits (e.g. 8,9)")
		prefArg     = flag.String("pref", "small", "Storage preference: fast or small")
		rawArg      = flag.Uint64("raw", 0, "Seed the record from a raw storage value")
		setArg      = flag.String("set", "", "Field assignments to apply (e.g. 0=255,1=3)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *widthsArg == "" {
		fmt.Fprintln(os.Stderr, "Usage: bitpack -widths 8,9 [-pref small] [-raw N] [-set 0=255,1=3]")
		fmt.Fprintln(os.Stderr, "       bitpack -widths 8,9 -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			bitpack.SetLogger(logger)
			defer logger.Sync()
		}
	}

	if err := run(*widthsArg, *prefArg, *rawArg, *setArg, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(widthsStr, prefStr string, raw uint64, setStr string, interactive bool) error {
	widths, err := parseWidths(widthsStr)
	if err != nil {
		return err
	}

	pref, err := parsePref(prefStr)
	if err != nil {
		return err
	}

	l, err := bitpack.New(pref, widths...)
	if err != nil {
		return err
	}

	if interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode requires a terminal")
		}
		return runInteractive(l, raw)
	}

	rec, err := bitpack.NewRecordFrom[uint64](l, raw)
	if err != nil {
		return err
	}

	if setStr != "" {
		if err := applySets(&rec, setStr); err != nil {
			return err
		}
	}

	fmt.Print(inspect.Describe(l))
	fmt.Printf("\nraw:  %#x\n", rec.Raw())
	if l.NumFields() > 0 {
		fmt.Printf("bits: %s\n\nvalues:\n", inspect.BitString(l, rec.Raw()))
		for _, fv := range inspect.Record(rec) {
			fmt.Printf("  %d = %d (%#x)\n", fv.Index, fv.Value, fv.Value)
		}
	}
	return nil
}

func parseWidths(s string) ([]uint, error) {
	parts := strings.Split(s, ",")
	widths := make([]uint, 0, len(parts))
	for _, p := range parts {
		w, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad width %q: %w", p, err)
		}
		widths = append(widths, uint(w))
	}
	return widths, nil
}

func parsePref(s string) (bitpack.Preference, error) {
	switch strings.ToLower(s) {
	case "fast":
		return bitpack.Fast, nil
	case "small":
		return bitpack.Small, nil
	}
	return 0, fmt.Errorf("bad preference %q (want fast or small)", s)
}

func applySets(rec *bitpack.Record[uint64], setStr string) error {
	for _, assign := range strings.Split(setStr, ",") {
		idxStr, valStr, ok := strings.Cut(strings.TrimSpace(assign), "=")
		if !ok {
			return fmt.Errorf("bad assignment %q (want index=value)", assign)
		}
		idx, err := strconv.Atoi(idxStr)
		if err != nil {
			return fmt.Errorf("bad field index %q: %w", idxStr, err)
		}
		if idx < 0 || idx >= rec.Layout().NumFields() {
			return fmt.Errorf("field index %d out of range (layout has %d fields)",
				idx, rec.Layout().NumFields())
		}
		val, err := strconv.ParseUint(valStr, 0, 64)
		if err != nil {
			return fmt.Errorf("bad value %q: %w", valStr, err)
		}
		rec.Set(idx, val)
	}
	return nil
}
