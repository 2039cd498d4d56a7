// Command exmgdata extracts an MgData (.mbl) archive into a directory,
// alongside an entries.json sidecar that records the archive's entry
// layout and raw per-entry records so the directory can later be
// repacked with pkmgdata.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"github.com/schollz/progressbar/v2"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/hatoba/marbletk/mgdata"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: exmgdata <archive> <output-dir>")
		os.Exit(1)
	}
	if err := run(os.Args[1], os.Args[2]); err != nil {
		fmt.Fprintln(os.Stderr, "exmgdata:", err)
		os.Exit(1)
	}
}

func run(archivePath, outputDir string) error {
	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	cmdutil.HandleSignals(cancel, os.Interrupt)

	data, err := os.ReadFile(archivePath)
	if err != nil {
		return err
	}

	arc, err := mgdata.ReadArchive(data, mgdata.DefaultPresets)
	if err != nil {
		return fmt.Errorf("%s: %w", archivePath, err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if terminal.IsTerminal(int(os.Stdout.Fd())) {
		bar = progressbar.New(len(arc.Entries))
	}

	sc := mgdata.Sidecar{Parameters: arc.Params}
	errs := errors.M{}
	for _, e := range arc.Entries {
		payload, err := mgdata.ExtractPayload(data, e, arc.Params.Key)
		if err != nil {
			errs.Append(fmt.Errorf("%s: %w", e.Name, err))
		} else if err := os.WriteFile(filepath.Join(outputDir, e.Name), payload, 0o644); err != nil {
			errs.Append(err)
		}
		sc.Entries = append(sc.Entries, mgdata.SidecarEntry{Name: e.Name, Raw: e.Raw})
		if bar != nil {
			bar.Add(1)
		}
	}

	sidecar, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		errs.Append(err)
	} else if err := os.WriteFile(filepath.Join(outputDir, "entries.json"), sidecar, 0o644); err != nil {
		errs.Append(err)
	}

	return errs.Err()
}
