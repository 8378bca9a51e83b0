package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ducminhle1904/crypto-signal-engine/pkg/data"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

func main() {
	var (
		// Single-symbol backward compatible flag
		symbol = flag.String("symbol", "BTCUSDT", "Symbol to generate (e.g. BTCUSDT)")

		// Multi options
		symbols = flag.String("symbols", "", "Comma-separated list of symbols (overrides -symbol if provided)")
		count   = flag.Int("count", 100, "Snapshots per symbol")
		outdir  = flag.String("outdir", "data", "Directory to write snapshot files")
		format  = flag.String("format", "ndjson", "Output format (ndjson, json)")
	)

	flag.Parse()

	// Build symbol list
	symList := []string{}
	if strings.TrimSpace(*symbols) != "" {
		for _, s := range strings.Split(*symbols, ",") {
			ss := strings.ToUpper(strings.TrimSpace(s))
			if ss != "" {
				symList = append(symList, ss)
			}
		}
	} else {
		symList = []string{strings.ToUpper(strings.TrimSpace(*symbol))}
	}

	if *count <= 0 {
		log.Fatalf("❌ -count must be positive, got %d", *count)
	}
	if *format != "ndjson" && *format != "json" {
		log.Fatalf("❌ Unknown format %q (use ndjson or json)", *format)
	}

	if err := os.MkdirAll(*outdir, 0755); err != nil {
		log.Fatalf("❌ Could not create %s: %v", *outdir, err)
	}

	for _, sym := range symList {
		snaps := data.GenerateSampleSnapshots(sym, *count)

		path := filepath.Join(*outdir, fmt.Sprintf("%s.%s", sym, *format))
		if err := writeSnapshots(path, snaps, *format); err != nil {
			log.Fatalf("❌ Failed to write %s: %v", path, err)
		}

		log.Printf("✅ Wrote %d snapshots to %s", len(snaps), path)
	}
}

func writeSnapshots(path string, snaps []*types.IndicatorSnapshot, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	if format == "json" {
		enc.SetIndent("", "  ")
		return enc.Encode(snaps)
	}

	// One JSON object per line
	for _, snap := range snaps {
		if err := enc.Encode(snap); err != nil {
			return err
		}
	}
	return nil
}
