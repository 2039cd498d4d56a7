// Command pkmgdata repacks a directory previously extracted by
// exmgdata back into an MgData (.mbl) archive, using its entries.json
// sidecar to recover the original entry layout and ordering.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"

	"github.com/hatoba/marbletk/mgdata"
)

func main() {
	patch := flag.Bool("patch", false, "leave entry records other than offset/size untouched")
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: pkmgdata [-patch] <input-dir> <output-archive>")
		os.Exit(1)
	}
	if err := run(flag.Arg(0), flag.Arg(1), *patch); err != nil {
		fmt.Fprintln(os.Stderr, "pkmgdata:", err)
		os.Exit(1)
	}
}

func run(inputDir, outputPath string, patch bool) error {
	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	cmdutil.HandleSignals(cancel, os.Interrupt)

	sidecarBytes, err := os.ReadFile(filepath.Join(inputDir, "entries.json"))
	if err != nil {
		return err
	}
	var sc mgdata.Sidecar
	if err := json.Unmarshal(sidecarBytes, &sc); err != nil {
		return fmt.Errorf("entries.json: %w", err)
	}

	errs := errors.M{}
	files := make(map[string][]byte, len(sc.Entries))
	for _, e := range sc.Entries {
		data, err := os.ReadFile(filepath.Join(inputDir, e.Name))
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			errs.Append(err)
			continue
		}
		files[e.Name] = data
	}
	if err := errs.Err(); err != nil {
		return err
	}

	archive, err := mgdata.BuildArchive(sc, files, patch)
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, archive, 0o644)
}
