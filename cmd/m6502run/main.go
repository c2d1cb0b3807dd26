// Command m6502run loads a 64k memory image, starts a CPU at the image's
// reset vector, and runs it to a cycle budget (or forever, one budget-sized slice at a time,
// until the program halts on an illegal opcode). With -trace it disassembles
// and prints every instruction as it executes.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/sixtwofive/m6502/cpu"
	"github.com/sixtwofive/m6502/disassemble"
	"github.com/sixtwofive/m6502/memory"
)

func run(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return cli.Exit("an input memory image is required", 1)
	}
	img, err := os.ReadFile(path)
	if err != nil {
		return cli.Exit(fmt.Errorf("reading %s: %w", path, err), 1)
	}
	if len(img) != memory.Size {
		return cli.Exit(fmt.Errorf("%s is %d bytes, want exactly %d", path, len(img), memory.Size), 1)
	}

	mem := memory.New()
	for i, b := range img {
		mem.Write(uint16(i), b)
	}

	c, err := cpu.New(cpu.NMOS)
	if err != nil {
		return cli.Exit(err, 1)
	}

	// Reset is not called: it zeroes memory, which would erase the image
	// just loaded. PC is taken from the image's own reset vector instead;
	// the other registers keep the zero values New gives them.
	lo, hi := img[cpu.ResetVector], img[cpu.ResetVector+1]
	c.PC = uint16(hi)<<8 | uint16(lo)

	trace := ctx.Bool("trace")
	budget := ctx.Int("budget")
	quantum := ctx.Int("quantum")
	if quantum <= 0 {
		quantum = 1000
	}
	if trace {
		// A budget of 1 runs exactly one instruction per Execute call.
		quantum = 1
	}

	spent := 0
	for budget <= 0 || spent < budget {
		if trace {
			text, _ := disassemble.Step(c.PC, mem)
			fmt.Println(text)
		}
		used, err := c.Execute(quantum, mem)
		spent += used
		if err != nil {
			c.PrintStatus()
			return cli.Exit(err, 1)
		}
	}
	c.PrintStatus()
	return nil
}

func main() {
	app := &cli.App{
		Name:      "m6502run",
		Usage:     "run a 6502 memory image",
		ArgsUsage: "<memory-image-file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "print each instruction as it executes",
			},
			&cli.IntFlag{
				Name:  "budget",
				Usage: "total cycle budget; 0 runs until an illegal opcode is hit",
				Value: 0,
			},
			&cli.IntFlag{
				Name:  "quantum",
				Usage: "cycles per Execute call (ignored with -trace, which runs one instruction per call)",
				Value: 1000,
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
