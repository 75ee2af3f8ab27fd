// Package cli implements the solus command-line surface: encode, decode
// and show subcommands over the steg codec and the image I/O layer.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goodieshq/solus/internal/imaging"
	"github.com/goodieshq/solus/internal/payload"
	"github.com/goodieshq/solus/internal/steg"
)

// Process exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// errUsage marks failures caused by bad invocation rather than by the
// codec or I/O.
var errUsage = errors.New("usage error")

// Run dispatches the solus subcommands and returns the process exit
// code. Failures are reported on stderr with the failure kind's message.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return ExitUsage
	}

	var err error
	switch args[0] {
	case "encode", "e":
		err = runEncode(args[1:], stdout, stderr)
	case "decode", "d":
		err = runDecode(args[1:], stdout, stderr)
	case "show", "s":
		err = runShow(args[1:], stdout, stderr)
	case "help", "--help", "-h":
		usage(stdout)
		return ExitOK
	default:
		fmt.Fprintf(stderr, "solus: unknown command %q\n", args[0])
		usage(stderr)
		return ExitUsage
	}

	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, flag.ErrHelp):
		return ExitOK
	case errors.Is(err, errUsage):
		return ExitUsage
	default:
		fmt.Fprintf(stderr, "solus: %v\n", err)
		return ExitError
	}
}

// parse runs the flag set and folds its errors into the exit-code
// classification. The flag package has already printed the message.
func parse(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return errUsage
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: solus <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  encode  Hide data in the low bits of an image")
	fmt.Fprintln(w, "  decode  Recover data hidden in an image")
	fmt.Fprintln(w, "  show    Print an image's pixel matrix")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'solus <command> -h' for command options.")
}

func runEncode(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	img := fs.String("img", "", "image file in which to hide the data (required)")
	out := fs.String("out", "", "output image path (default: <img>_enc.png)")
	bits := fs.Int("bits", 1, "least-significant bits used per channel (1-7)")
	xor := fs.String("xor", "", "XOR key used to obfuscate the data")
	literal := fs.String("string", "", "string payload to encode")
	file := fs.String("file", "", "file whose contents to encode")
	compress := fs.Bool("zstd", false, "zstd-compress the payload before encoding")
	level := fs.Int("compression", imaging.DefaultCompression, "output PNG compression (0-9)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *img == "" {
		fmt.Fprintln(stderr, "encode: -img is required")
		return errUsage
	}

	src := payload.Source{Literal: *literal, File: *file}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "string" {
			src.HasLiteral = true
		}
	})
	data, err := src.Read()
	if err != nil {
		fmt.Fprintf(stderr, "encode: %v\n", err)
		return errUsage
	}
	if *compress {
		data = payload.Compress(data)
	}

	var key []byte
	if *xor != "" {
		key = []byte(*xor)
	}

	loaded, err := imaging.Load(*img)
	if err != nil {
		return err
	}
	if err := steg.Encode(imaging.Grid(loaded), data, *bits, key); err != nil {
		return err
	}

	dst := *out
	if dst == "" {
		dst = strings.TrimSuffix(*img, filepath.Ext(*img)) + "_enc.png"
	}
	if !strings.EqualFold(filepath.Ext(dst), ".png") {
		dst += ".png"
	}
	written, err := imaging.Save(loaded, dst, *level)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "encoded %d bytes into %s\n", len(data), written)
	return nil
}

func runDecode(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	img := fs.String("img", "", "image file to extract data from (required)")
	out := fs.String("out", "", "file to write the recovered data to (required)")
	xor := fs.String("xor", "", "XOR key used to de-obfuscate the data")
	compress := fs.Bool("zstd", false, "zstd-decompress the payload after decoding")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *img == "" || *out == "" {
		fmt.Fprintln(stderr, "decode: -img and -out are required")
		return errUsage
	}

	var key []byte
	if *xor != "" {
		key = []byte(*xor)
	}

	loaded, err := imaging.Load(*img)
	if err != nil {
		return err
	}
	data, err := steg.Decode(imaging.Grid(loaded), key)
	if err != nil {
		return err
	}
	if *compress {
		if data, err = payload.Decompress(data); err != nil {
			return err
		}
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(stdout, "decoded %d bytes to %s\n", len(data), *out)
	return nil
}

func runShow(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(stderr)
	img := fs.String("img", "", "image file to display (required)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *img == "" {
		fmt.Fprintln(stderr, "show: -img is required")
		return errUsage
	}

	loaded, err := imaging.Load(*img)
	if err != nil {
		return err
	}
	return imaging.Show(stdout, loaded)
}
