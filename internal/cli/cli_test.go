package cli

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goodieshq/solus/internal/imaging"
)

// writeTestImage saves a deterministic 16x16 cover image and returns its
// path.
func writeTestImage(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for i := range img.Pix {
		if i%4 == 3 {
			img.Pix[i] = 255
		} else {
			img.Pix[i] = uint8(i * 13)
		}
	}
	path, err := imaging.Save(img, filepath.Join(dir, "cover.png"), imaging.DefaultCompression)
	if err != nil {
		t.Fatalf("failed to save cover image: %v", err)
	}
	return path
}

// run invokes Run with captured output streams.
func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code = Run(args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cover := writeTestImage(t, dir)
	enc := filepath.Join(dir, "enc.png")
	out := filepath.Join(dir, "out.bin")

	code, stdout, stderr := run(t, "encode", "-img", cover, "-out", enc, "-string", "top secret")
	if code != ExitOK {
		t.Fatalf("encode exited %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "encoded 10 bytes") {
		t.Errorf("unexpected encode output: %q", stdout)
	}

	code, _, stderr = run(t, "decode", "-img", enc, "-out", out)
	if code != ExitOK {
		t.Fatalf("decode exited %d: %s", code, stderr)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "top secret" {
		t.Errorf("got %q, want %q", got, "top secret")
	}
}

func TestEncodeDecodeWithKeyAndCompression(t *testing.T) {
	dir := t.TempDir()
	cover := writeTestImage(t, dir)
	enc := filepath.Join(dir, "enc.png")
	out := filepath.Join(dir, "out.bin")
	payload := strings.Repeat("confidential ", 8)

	code, _, stderr := run(t, "encode",
		"-img", cover, "-out", enc, "-bits", "3", "-xor", "hunter2", "-zstd",
		"-string", payload)
	if code != ExitOK {
		t.Fatalf("encode exited %d: %s", code, stderr)
	}

	code, _, stderr = run(t, "decode", "-img", enc, "-out", out, "-xor", "hunter2", "-zstd")
	if code != ExitOK {
		t.Fatalf("decode exited %d: %s", code, stderr)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != payload {
		t.Errorf("got %q, want %q", got, payload)
	}
}

func TestEncodeFromFileDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	cover := writeTestImage(t, dir)
	src := filepath.Join(dir, "payload.bin")
	want := []byte{0, 1, 2, 3, 0xFF}
	if err := os.WriteFile(src, want, 0o644); err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := run(t, "encode", "-img", cover, "-file", src)
	if code != ExitOK {
		t.Fatalf("encode exited %d: %s", code, stderr)
	}
	enc := filepath.Join(dir, "cover_enc.png")
	if !strings.Contains(stdout, enc) {
		t.Errorf("default output path not reported: %q", stdout)
	}

	out := filepath.Join(dir, "out.bin")
	if code, _, stderr = run(t, "decode", "-img", enc, "-out", out); code != ExitOK {
		t.Fatalf("decode exited %d: %s", code, stderr)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDecodeMissingKey(t *testing.T) {
	dir := t.TempDir()
	cover := writeTestImage(t, dir)
	enc := filepath.Join(dir, "enc.png")

	if code, _, stderr := run(t, "encode", "-img", cover, "-out", enc, "-xor", "k", "-string", "x"); code != ExitOK {
		t.Fatalf("encode exited %d: %s", code, stderr)
	}

	code, _, stderr := run(t, "decode", "-img", enc, "-out", filepath.Join(dir, "out"))
	if code != ExitError {
		t.Fatalf("decode exited %d, want %d", code, ExitError)
	}
	if !strings.Contains(stderr, "xor key") {
		t.Errorf("failure kind not surfaced: %q", stderr)
	}
}

func TestDecodeNonEncodedImage(t *testing.T) {
	dir := t.TempDir()
	cover := writeTestImage(t, dir)

	code, _, stderr := run(t, "decode", "-img", cover, "-out", filepath.Join(dir, "out"))
	if code != ExitError {
		t.Fatalf("decode exited %d, want %d", code, ExitError)
	}
	if stderr == "" {
		t.Error("no failure reported on stderr")
	}
}

func TestShow(t *testing.T) {
	dir := t.TempDir()
	cover := writeTestImage(t, dir)

	code, stdout, stderr := run(t, "show", "-img", cover)
	if code != ExitOK {
		t.Fatalf("show exited %d: %s", code, stderr)
	}
	if !strings.HasPrefix(stdout, "16x16\n") {
		t.Errorf("unexpected show output: %q", stdout[:min(len(stdout), 40)])
	}
}

func TestUsageErrors(t *testing.T) {
	cases := [][]string{
		{},
		{"frobnicate"},
		{"encode"},
		{"encode", "-img", "x.png"}, // no payload source
		{"decode", "-img", "x.png"}, // no -out
		{"show"},
	}
	for _, args := range cases {
		if code, _, _ := run(t, args...); code != ExitUsage {
			t.Errorf("args %v: exited %d, want %d", args, code, ExitUsage)
		}
	}
}
