// Command m6502mem renders a byte range of a 64k memory image as a
// grayscale bitmap, one pixel per byte, for spotting large-scale patterns
// (cleared regions, tables, screen memory) that a hex dump makes hard to
// see at a glance.
package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"golang.org/x/image/bmp"

	"github.com/urfave/cli/v2"
)

func render(img []byte, start, length, width int) *image.Gray {
	height := (length + width - 1) / width
	out := image.NewGray(image.Rect(0, 0, width, height))
	for i := 0; i < length; i++ {
		addr := start + i
		if addr >= len(img) {
			break
		}
		x, y := i%width, i/width
		out.SetGray(x, y, color.Gray{Y: img[addr]})
	}
	return out
}

func main() {
	app := &cli.App{
		Name:      "m6502mem",
		Usage:     "render a range of a 64k memory image as a grayscale bitmap",
		ArgsUsage: "<memory-image-file> <output.bmp>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "start", Usage: "starting address", Value: 0},
			&cli.IntFlag{Name: "length", Usage: "number of bytes to render", Value: 65536},
			&cli.IntFlag{Name: "width", Usage: "pixels per row", Value: 256},
		},
		Action: func(ctx *cli.Context) error {
			if ctx.Args().Len() != 2 {
				return cli.Exit("exactly two arguments are required: input and output paths", 1)
			}
			in, out := ctx.Args().Get(0), ctx.Args().Get(1)

			img, err := os.ReadFile(in)
			if err != nil {
				return cli.Exit(fmt.Errorf("reading %s: %w", in, err), 1)
			}

			bitmap := render(img, ctx.Int("start"), ctx.Int("length"), ctx.Int("width"))

			f, err := os.Create(out)
			if err != nil {
				return cli.Exit(fmt.Errorf("creating %s: %w", out, err), 1)
			}
			defer f.Close()
			if err := bmp.Encode(f, bitmap); err != nil {
				return cli.Exit(fmt.Errorf("encoding %s: %w", out, err), 1)
			}
			fmt.Printf("wrote %s\n", out)
			return nil
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
