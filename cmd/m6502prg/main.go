// Command m6502prg converts a raw program image into a runnable 64k memory
// dump: a little-endian load-address header followed by the program bytes
// is placed at its load address, a JSR to the given start PC is written at
// a launch stub, and the reset vector is pointed at that stub. The result
// can be fed directly to m6502run.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

const (
	// launchStub is where the generated JSR-and-spin-forever bootstrap
	// lives. It is arbitrary as long as it doesn't collide with the
	// program being loaded.
	launchStub = 0xFFF0
)

func convert(inPath string, startPC int) ([]byte, error) {
	b, err := os.ReadFile(inPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", inPath, err)
	}
	if len(b) < 2 {
		return nil, fmt.Errorf("%s is too short to contain a load-address header", inPath)
	}

	out := make([]byte, 65536)
	addr := int(b[0]) | int(b[1])<<8
	payload := b[2:]

	max := 65536 - addr
	if len(payload) > max {
		log.Printf("payload of length %d at offset 0x%.4X truncated to fit 64k", len(payload), addr)
		payload = payload[:max]
	}
	copy(out[addr:], payload)

	out[launchStub] = 0x20 // JSR startPC
	out[launchStub+1] = byte(startPC)
	out[launchStub+2] = byte(startPC >> 8)
	out[launchStub+3] = 0x4C // JMP launchStub+3 (spin forever)
	out[launchStub+4] = byte((launchStub + 3) & 0xFF)
	out[launchStub+5] = byte((launchStub + 3) >> 8)

	out[0xFFFC] = byte(launchStub)
	out[0xFFFD] = byte(launchStub >> 8)

	return out, nil
}

func main() {
	app := &cli.App{
		Name:      "m6502prg",
		Usage:     "convert a load-address-prefixed program image into a runnable 64k memory dump",
		ArgsUsage: "<input-file>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "start-pc",
				Usage: "address to JSR to on launch",
				Value: 0x0000,
			},
		},
		Action: func(ctx *cli.Context) error {
			if ctx.Args().Len() != 1 {
				return cli.Exit("exactly one input file is required", 1)
			}
			in := ctx.Args().First()
			out, err := convert(in, ctx.Int("start-pc"))
			if err != nil {
				return cli.Exit(err, 1)
			}
			outPath := in + ".bin"
			if err := os.WriteFile(outPath, out, 0o644); err != nil {
				return cli.Exit(fmt.Errorf("writing %s: %w", outPath, err), 1)
			}
			fmt.Printf("wrote %s\n", outPath)
			return nil
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
