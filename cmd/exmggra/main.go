// Command exmggra extracts an mg_gra (.mbl) image archive into a
// directory, inflating any zlib-wrapped payload along the way.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"github.com/schollz/progressbar/v2"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/hatoba/marbletk/mggra"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: exmggra <archive> <output-dir>")
		os.Exit(1)
	}
	if err := run(os.Args[1], os.Args[2]); err != nil {
		fmt.Fprintln(os.Stderr, "exmggra:", err)
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

	arc, err := mggra.ReadArchive(data, filepath.Base(archivePath))
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

	errs := errors.M{}
	for _, e := range arc.Entries {
		payload, err := mggra.ExtractPayload(data, e)
		if err != nil {
			errs.Append(fmt.Errorf("%s: %w", e.Name, err))
		} else if err := os.WriteFile(filepath.Join(outputDir, e.Name), payload, 0o644); err != nil {
			errs.Append(err)
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	return errs.Err()
}
