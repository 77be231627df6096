// ABOUTME: Entry point for the trimmer
// ABOUTME: Loads config and the source, then runs the TUI or the line prompt
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Resonate-Protocol/trimmer/internal/config"
	"github.com/Resonate-Protocol/trimmer/internal/repl"
	"github.com/Resonate-Protocol/trimmer/internal/session"
	"github.com/Resonate-Protocol/trimmer/internal/ui"
	"github.com/Resonate-Protocol/trimmer/internal/version"
	"github.com/Resonate-Protocol/trimmer/pkg/audio/codec"
	"github.com/Resonate-Protocol/trimmer/pkg/audio/output"
	"github.com/spf13/pflag"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "trimmer: %v\n", err)
		os.Exit(2)
	}

	if cfg.ShowVersion {
		fmt.Println(version.String())
		return
	}

	if err := run(cfg); err != nil {
		log.Printf("Exiting: %v", err)
		fmt.Fprintf(os.Stderr, "trimmer: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	// Set up logging
	f, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error opening log file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if cfg.NoTUI {
		// Line prompt owns stdout; logs go to stderr and file
		log.SetOutput(io.MultiWriter(os.Stderr, f))
	} else {
		// TUI mode: log only to file
		log.SetOutput(f)
	}

	log.Printf("Starting %s", version.String())

	device := openDevice(cfg)
	defer func() {
		if err := device.Close(); err != nil {
			log.Printf("Error closing output: %v", err)
		}
	}()

	s, err := session.Open(cfg.Source, session.Config{
		Registry:  codec.Default(),
		Device:    device,
		ExportExt: cfg.ExportFormat,
	})
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if !cfg.NoTUI {
		return ui.Run(s, cfg.Width)
	}

	done := make(chan error, 1)
	go func() {
		done <- repl.New(s, os.Stdin, os.Stdout, cfg.Width).Run()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("input failed: %w", err)
		}
	case <-sigChan:
		log.Printf("Shutdown signal received")
	}

	log.Printf("Trimmer stopped")
	return nil
}

// openDevice returns the sound card output, or a silent device with -no-audio
func openDevice(cfg *config.Config) output.Device {
	if cfg.NoAudio {
		log.Printf("Audio disabled; using silent output")
		return output.NewNull(nil)
	}
	return output.NewOto(cfg.DeviceRate, cfg.Volume)
}
