// Package app provides the main application helper for the emulator.
// It wires the ROM loader, the emulator core, the diagnostic sink and the
// host shell together and owns the pacing of the instruction steps.
package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/chip8emu/internal/platform"
	"github.com/retroenv/retrogolib/log"
)

// Run loads the ROM and drives the emulator until the context is canceled,
// the window is closed or the headless step budget is exhausted.
func Run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	rom, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("reading ROM file %s: %w", opts.Input, err)
	}

	logs := &chip8.Log{}
	emu, err := chip8.New(rom, logs)
	if err != nil {
		return fmt.Errorf("loading ROM %s: %w", opts.Input, err)
	}

	logger.Info("ROM loaded",
		log.String("file", opts.Input),
		log.Int("size", len(rom)),
	)
	drainDiagnostics(logger, logs)

	if opts.Steps > 0 {
		return runHeadless(ctx, logger, opts, emu, logs)
	}
	return runWindow(ctx, logger, opts, emu, logs)
}

// step advances the machine one instruction and forwards the buffered
// diagnostics to the logger. It returns the structural error of the step,
// if any.
func step(logger *log.Logger, opts options.Program, emu *chip8.Emulator, logs *chip8.Log) error {
	if opts.Trace {
		logger.Debug(emu.Trace())
	}

	err := emu.Step(logs)
	drainDiagnostics(logger, logs)
	return err
}

func drainDiagnostics(logger *log.Logger, logs *chip8.Log) {
	for _, entry := range logs.Drain() {
		logger.Warn(entry)
	}
}

// runHeadless executes the configured number of steps without a window.
func runHeadless(ctx context.Context, logger *log.Logger, opts options.Program,
	emu *chip8.Emulator, logs *chip8.Log) error {

	for i := 0; i < opts.Steps; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := step(logger, opts, emu, logs); err != nil {
			return fmt.Errorf("stepping emulator: %w", err)
		}
	}

	if opts.Dump {
		fmt.Print(renderText(emu.Screen().Rows()))
	}
	return nil
}

// runWindow opens the host window and steps the emulator at the configured
// rate. A structural bounds violation halts stepping but keeps the window
// open so the last framebuffer state stays visible.
func runWindow(ctx context.Context, logger *log.Logger, opts options.Program,
	emu *chip8.Emulator, logs *chip8.Log) error {

	host, err := platform.New(opts.Scale)
	if err != nil {
		return fmt.Errorf("creating host window: %w", err)
	}
	defer host.Close()

	if err := host.Render(emu.Screen().Rows()); err != nil {
		return fmt.Errorf("rendering framebuffer: %w", err)
	}
	rendered := emu.Screen().Version()

	ticker := time.NewTicker(time.Second / time.Duration(opts.Rate))
	defer ticker.Stop()

	var stepErr error
	for {
		if host.ProcessEvents() {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			if stepErr == nil {
				if stepErr = step(logger, opts, emu, logs); stepErr != nil {
					logger.Error("Emulator halted", log.Err(stepErr))
				}
			}

			if version := emu.Screen().Version(); version != rendered {
				if err := host.Render(emu.Screen().Rows()); err != nil {
					return fmt.Errorf("rendering framebuffer: %w", err)
				}
				rendered = version
			}
		}
	}
}

// renderText returns the framebuffer as lines of text, one character per
// pixel, for the headless dump output.
func renderText(rows [chip8.ScreenHeight]uint64) string {
	var sb strings.Builder
	for _, row := range rows {
		for col := 0; col < chip8.ScreenWidth; col++ {
			if row&(1<<(63-col)) != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
