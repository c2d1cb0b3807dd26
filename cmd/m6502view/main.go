// Command m6502view runs a 6502 program against the classic 32x32
// pixel-at-$0200 framebuffer convention (one byte per pixel at $0200-$05FF,
// a fixed 16-color palette, keys 'w'/'a'/'s'/'d' polled back through $FF)
// and displays it live in an SDL2 window, scaled up for visibility.
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/sixtwofive/m6502/cpu"
	"github.com/sixtwofive/m6502/memory"
)

const (
	screenDim   = 32
	scale       = 16
	windowDim   = screenDim * scale
	framebuffer = 0x0200
	keyPort     = 0x00FF
	randomPort  = 0x00FE

	cyclesPerFrame = 3000
	targetFPS      = 60
)

// palette is the classic 16-color 6502 pixel demo palette, one byte value
// (0x0-0xF) per framebuffer cell.
var palette = [16]uint32{
	0xFF000000, 0xFFFFFFFF, 0xFF880000, 0xFFAAFFEE,
	0xFFCC44CC, 0xFF00CC55, 0xFF0000AA, 0xFFEEEE77,
	0xFFDD8855, 0xFF664400, 0xFFFF7777, 0xFF333333,
	0xFF777777, 0xFFAAFF66, 0xFF0088FF, 0xFFBBBBBB,
}

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <memory-image-file>", os.Args[0])
	}

	img, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("reading %s: %v", os.Args[1], err)
	}
	if len(img) != memory.Size {
		log.Fatalf("%s is %d bytes, want exactly %d", os.Args[1], len(img), memory.Size)
	}

	mem := memory.New()
	for i, b := range img {
		mem.Write(uint16(i), b)
	}

	c, err := cpu.New(cpu.NMOS)
	if err != nil {
		log.Fatal(err)
	}
	lo, hi := img[cpu.ResetVector], img[cpu.ResetVector+1]
	c.PC = uint16(hi)<<8 | uint16(lo)

	runtime.LockOSThread()
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		log.Fatal(err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("m6502view", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		windowDim, windowDim, sdl.WINDOW_SHOWN)
	if err != nil {
		log.Fatal(err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		log.Fatal(err)
	}
	defer renderer.Destroy()

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, screenDim, screenDim)
	if err != nil {
		log.Fatal(err)
	}
	defer texture.Destroy()

	frameTime := time.Second / targetFPS
	pixels := make([]uint32, screenDim*screenDim)
	running := true

	for running {
		frameStart := time.Now()

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if e.State != sdl.PRESSED {
					continue
				}
				switch e.Keysym.Sym {
				case sdl.K_w:
					mem.Write(keyPort, 'w')
				case sdl.K_a:
					mem.Write(keyPort, 'a')
				case sdl.K_s:
					mem.Write(keyPort, 's')
				case sdl.K_d:
					mem.Write(keyPort, 'd')
				case sdl.K_ESCAPE:
					running = false
				}
			}
		}

		mem.Write(randomPort, uint8(time.Now().UnixNano()))

		if _, err := c.Execute(cyclesPerFrame, mem); err != nil {
			log.Printf("halted: %v", err)
			running = false
		}

		for i := 0; i < screenDim*screenDim; i++ {
			pixels[i] = palette[mem.Read(uint16(framebuffer+i))&0x0F]
		}
		texture.Update(nil, unsafe.Pointer(&pixels[0]), screenDim*4)

		renderer.Clear()
		renderer.Copy(texture, nil, nil)
		renderer.Present()

		if elapsed := time.Since(frameStart); elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}
	fmt.Println("done")
}
