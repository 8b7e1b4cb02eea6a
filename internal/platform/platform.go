// Package platform provides the SDL host shell of the emulator: a window
// displaying the framebuffer and the handling of window events. It owns no
// emulator state; the application loop passes framebuffer snapshots in.
package platform

import (
	"fmt"
	"unsafe"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "chip8emu"

// Colors of the two pixel states, RGBA8888.
const (
	colorOn  = 0xFFFFFFFF
	colorOff = 0x000000FF
)

// Platform owns the SDL window, renderer and the streaming texture the
// framebuffer is rendered into. SDL scales the 64x32 texture to the window
// size automatically.
type Platform struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

// New initializes SDL and creates a window scaled by the given factor.
func New(scale int) (*Platform, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("initializing SDL: %w", err)
	}

	winWidth := int32(chip8.ScreenWidth * scale)
	winHeight := int32(chip8.ScreenHeight * scale)

	window, err := sdl.CreateWindow(windowTitle, sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED, winWidth, winHeight, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		_ = window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGBA8888,
		sdl.TEXTUREACCESS_STREAMING, chip8.ScreenWidth, chip8.ScreenHeight)
	if err != nil {
		_ = renderer.Destroy()
		_ = window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("creating texture: %w", err)
	}

	return &Platform{
		window:   window,
		renderer: renderer,
		texture:  texture,
	}, nil
}

// Close releases all SDL resources.
func (p *Platform) Close() {
	_ = p.texture.Destroy()
	_ = p.renderer.Destroy()
	_ = p.window.Destroy()
	sdl.Quit()
}

// ProcessEvents drains pending window events and reports whether the user
// requested to quit, either by closing the window or pressing Escape.
func (p *Platform) ProcessEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.KeyboardEvent:
			if t.Type == sdl.KEYDOWN && t.Keysym.Sym == sdl.K_ESCAPE {
				return true
			}
		}
	}
	return false
}

// Render draws a framebuffer snapshot into the window.
func (p *Platform) Render(rows [chip8.ScreenHeight]uint64) error {
	var pixels [chip8.ScreenHeight * chip8.ScreenWidth]uint32

	index := 0
	for _, row := range rows {
		for col := 0; col < chip8.ScreenWidth; col++ {
			color := uint32(colorOff)
			if row&(1<<(63-col)) != 0 {
				color = colorOn
			}
			pixels[index] = color
			index++
		}
	}

	if err := p.texture.Update(nil, unsafe.Pointer(&pixels[0]), chip8.ScreenWidth*4); err != nil {
		return fmt.Errorf("updating texture: %w", err)
	}
	if err := p.renderer.Clear(); err != nil {
		return fmt.Errorf("clearing renderer: %w", err)
	}
	if err := p.renderer.Copy(p.texture, nil, nil); err != nil {
		return fmt.Errorf("copying texture: %w", err)
	}
	p.renderer.Present()
	return nil
}
