// Command game runs The Emberstone Legacy in the terminal.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"emberstone/internal/chronicle"
	"emberstone/internal/cli"
	"emberstone/internal/config"
	"emberstone/internal/game"
	"emberstone/internal/item"
	"emberstone/internal/logger"
	"emberstone/internal/rng"
	"emberstone/internal/story"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "emberstone:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logw := io.Writer(io.Discard)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logw = f
	}
	log := logger.New(logw, cfg.LogLevel, cfg.LogFormat)

	reg, err := item.LoadRegistry(filepath.Join(cfg.ContentDir, "items.yaml"))
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}
	bst, err := game.LoadBestiary(filepath.Join(cfg.ContentDir, "enemies.yaml"))
	if err != nil {
		return fmt.Errorf("load enemies: %w", err)
	}
	s, err := story.Load(filepath.Join(cfg.ContentDir, "emberstone.yaml"))
	if err != nil {
		return fmt.Errorf("load story: %w", err)
	}
	if err := s.Validate(reg, bst); err != nil {
		return fmt.Errorf("content: %w", err)
	}
	log.Info("content loaded", "story", s.Title, "nodes", len(s.Nodes))

	p := cli.NewPrompter(os.Stdin, os.Stdout, cfg.TextDelay)
	p.Say("=== The Emberstone Legacy ===", "")

	pl, err := p.CreateCharacter(reg)
	if err != nil {
		return err
	}
	log.Info("character created", "name", pl.Name, "class", pl.Class.String())

	journal := &chronicle.Journal{Hero: pl.Name, Class: pl.Class.String()}
	runner := &cli.Runner{
		Story:    s,
		Registry: reg,
		Bestiary: bst,
		Prompter: p,
		Roller:   rng.New(cfg.Seed),
		Log:      log,
		Journal:  journal,
	}
	ending, err := runner.Run(pl)
	if err != nil {
		return err
	}
	journal.Ending = endingTitle(ending)

	if cfg.Chronicle != "" {
		b, err := chronicle.Generate(journal)
		if err != nil {
			return fmt.Errorf("chronicle: %w", err)
		}
		if err := os.WriteFile(cfg.Chronicle, b, 0o600); err != nil {
			return fmt.Errorf("write chronicle: %w", err)
		}
		p.Sayf("Your chronicle was written to %s.", cfg.Chronicle)
	}

	p.Say("", "Thank you for playing!")
	return nil
}

func endingTitle(tag string) string {
	switch tag {
	case story.EndingGood:
		return "Path of the Sage"
	case story.EndingNeutral:
		return "Path of the Victor"
	case story.EndingBad:
		return "Path of the Tyrant"
	default:
		return "Game Over"
	}
}
