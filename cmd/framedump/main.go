// Command framedump loads an image into an ImageFrame and prints its layout.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/imageframe"
)

func main() {
	var (
		align   = flag.Int("align", imageframe.DefaultAlignmentBoundary, "row alignment boundary in bytes")
		output  = flag.String("out", "", "write tightly packed pixel bytes to this file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: framedump [-align n] [-out file] [-v] image")
		os.Exit(2)
	}

	if *verbose {
		imageframe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(flag.Arg(0), *align, *output); err != nil {
		log.Fatalf("framedump: %v", err)
	}
}

func run(path string, align int, output string) error {
	src, err := decode(path)
	if err != nil {
		return err
	}

	f, err := imageframe.FromImage(src, imageframe.WithAlignment(align))
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := printLayout(f); err != nil {
		return err
	}
	if output == "" {
		return nil
	}

	size, err := f.PixelDataSizeStoredContiguously()
	if err != nil {
		return err
	}
	pixels, err := f.CopyToByteBuffer(size)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, pixels, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	log.Printf("Wrote %d bytes to %s\n", len(pixels), output)
	return nil
}

func decode(path string) (image.Image, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	img, kind, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	log.Printf("Decoded %s (%s)\n", path, kind)
	return img, nil
}

func printLayout(f *imageframe.ImageFrame) error {
	format, _ := f.Format()
	width, _ := f.Width()
	height, _ := f.Height()
	step, _ := f.WidthStep()
	size, _ := f.PixelDataSize()
	contiguous, _ := f.IsContiguous()

	channels, err := f.NumberOfChannels()
	if err != nil {
		return err
	}
	depth, err := f.ByteDepth()
	if err != nil {
		return err
	}
	tight, err := f.PixelDataSizeStoredContiguously()
	if err != nil {
		return err
	}

	fmt.Printf("format:     %v\n", format)
	fmt.Printf("size:       %dx%d\n", width, height)
	fmt.Printf("channels:   %d x %d byte(s)\n", channels, depth)
	fmt.Printf("width step: %d\n", step)
	fmt.Printf("buffer:     %d bytes (%d packed)\n", size, tight)
	fmt.Printf("contiguous: %v\n", contiguous)
	for _, b := range []int{16, 32, 64, imageframe.CacheLineAlignment} {
		ok, err := f.IsAligned(b)
		if err != nil {
			return err
		}
		fmt.Printf("aligned %-3d %v\n", b, ok)
	}
	return nil
}
