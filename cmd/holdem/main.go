package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/nabilervatra/minipokersolver/internal/cli"
)

type CLI struct {
	Mode             int   `short:"m" help:"0 = interactive, 1 = auto-simulate 10 hands." default:"0"`
	ControlledPlayer int   `short:"p" help:"Player index the human controls in interactive mode." default:"0"`
	Seed             int64 `short:"s" help:"Seed for the engine's random generator." default:"1337"`
	StartingStack    int   `help:"Starting stack for both players." default:"1000"`
	SmallBlind       int   `help:"Small blind." default:"5"`
	BigBlind         int   `help:"Big blind." default:"10"`
}

func main() {
	var c CLI
	kong.Parse(&c)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "holdem",
	})

	cfg := cli.Config{
		Mode:             c.Mode,
		ControlledPlayer: c.ControlledPlayer,
		Seed:             c.Seed,
		StartingStack:    c.StartingStack,
		SmallBlind:       c.SmallBlind,
		BigBlind:         c.BigBlind,
	}

	var err error
	switch c.Mode {
	case 0:
		err = cli.RunInteractive(cfg, os.Stdin, os.Stdout, logger)
	case 1:
		err = cli.RunSimulate(cfg, os.Stdout, logger)
	default:
		err = fmt.Errorf("unknown mode %d", c.Mode)
	}

	if err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}
