package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/rprtr258/todayiwill/internal/cmds"
)

// Version is overridden at build time with -ldflags "-X main.Version=..."
var Version = "0.6.0"

func main() {
	level := &slog.LevelVar{}
	level.Set(slog.LevelWarn)

	env := &cmds.Env{
		Logger:  slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
		Level:   level,
		Stdin:   os.Stdin,
		Version: Version,
	}

	app := &cli.App{
		Name:     "todayiwill",
		Usage:    "A CLI for remembering what you need to do today",
		Version:  Version,
		Flags:    cmds.GlobalFlags,
		Before:   cmds.Setup(env),
		Commands: cmds.Commands(env),
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}
