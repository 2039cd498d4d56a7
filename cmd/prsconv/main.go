// Command prsconv converts image pixel data between BMP and PRS
// container formats in either direction.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"cloudeng.io/cmdutil"

	"github.com/hatoba/marbletk/bmpio"
	"github.com/hatoba/marbletk/prs"
)

func main() {
	delta := flag.Bool("delta", true, "apply the reversible per-channel delta filter before compressing")
	flag.Parse()
	if flag.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "usage: prsconv [-delta] bmp2prs|prs2bmp <input> <output>")
		os.Exit(1)
	}

	var err error
	switch mode := flag.Arg(0); mode {
	case "bmp2prs":
		err = bmp2prs(flag.Arg(1), flag.Arg(2), *delta)
	case "prs2bmp":
		err = prs2bmp(flag.Arg(1), flag.Arg(2))
	default:
		err = fmt.Errorf("unknown mode %q, want bmp2prs or prs2bmp", mode)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "prsconv:", err)
		os.Exit(1)
	}
}

func bmp2prs(inPath, outPath string, useDelta bool) error {
	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	cmdutil.HandleSignals(cancel, os.Interrupt)

	f, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer f.Close()

	pixels, width, height, bpp, err := bmpio.Decode(f)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return prs.EncodeImage(out, pixels, uint16(width), uint16(height), byte(bpp), useDelta)
}

func prs2bmp(inPath, outPath string) error {
	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	cmdutil.HandleSignals(cancel, os.Interrupt)

	f, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer f.Close()

	pixels, h, err := prs.DecodeImage(f)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := bmpio.Encode(&buf, pixels, int(h.Width), int(h.Height), int(h.BytesPerPx)); err != nil {
		return err
	}
	return os.WriteFile(outPath, buf.Bytes(), 0o644)
}
