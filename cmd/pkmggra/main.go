// Command pkmggra packs every regular file in a directory (one level,
// non-recursive) into an mg_gra (.mbl) image archive. Each file's name
// without extension becomes its index entry name.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"

	"github.com/hatoba/marbletk/mggra"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: pkmggra <input-dir> <output-archive>")
		os.Exit(1)
	}
	if err := run(os.Args[1], os.Args[2]); err != nil {
		fmt.Fprintln(os.Stderr, "pkmggra:", err)
		os.Exit(1)
	}
}

func run(inputDir, outputPath string) error {
	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	cmdutil.HandleSignals(cancel, os.Interrupt)

	dirEntries, err := os.ReadDir(inputDir)
	if err != nil {
		return err
	}

	errs := errors.M{}
	var files []mggra.WriteEntry
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(inputDir, de.Name()))
		if err != nil {
			errs.Append(err)
			continue
		}
		name := strings.TrimSuffix(de.Name(), filepath.Ext(de.Name()))
		files = append(files, mggra.WriteEntry{Name: name, Data: data})
	}
	if err := errs.Err(); err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found in directory: %s", inputDir)
	}

	return os.WriteFile(outputPath, mggra.BuildArchive(files), 0o644)
}
