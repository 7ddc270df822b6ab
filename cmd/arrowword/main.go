// Copyright 2025 The arrowword Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the arrowword grid server and CLI application.

arrowword lays out a word list as an arrowword grid: words cross each other at
shared letters, alternating between horizontal and down, and the grid grows
as words run off its edges. Placement is greedy and deterministic, the same
list always gives the same grid.

# Usage

Start the msgpack server on stdin/stdout:

	arrowword

Build one grid from a word list file and print it:

	arrowword -words words.txt

Collect words interactively:

	arrowword -c

# Word lists

Plain text lists hold one word per line, optionally followed by a hint
after a tab, semicolon or comma. TOML lists use [[entry]] tables with word
and hint keys, msgpack lists an array of {"w", "h"} maps.

	chair;something to sit on
	cardboard
	speaker;makes the noise

# Configuration

The config file is created with defaults at ~/.config/arrowword/config.toml:

	[engine]
	case = "lower"
	empty = "_"
	scan = "crossable"
	skip_unplaceable = false
	cache_size = 32

	[dict]
	max_words = 200
	min_length = 2
	max_length = 32
	allow_duplicates = false

	[cli]
	color = true
	show_hints = true
	show_unplaced = true

Flags given on the command line override the file.

# IPC Protocol

See package server. In short, a request carries the words,

	{"id": "req1", "words": [{"w": "chair"}, {"w": "cardboard"}]}

and the response the grid rows with every word's anchor:

	{"id": "req1", "grid": ["cardboard", "h________", ...], "placed": [...], "state": "done"}

# Command Line Flags

	-config string
	    Path to a config file (default ~/.config/arrowword/config.toml)
	-words string
	    Build one grid from this word list and exit
	-c  Run the interactive CLI instead of the server
	-d  Enable debug mode with detailed logging
	-logfmt string
	    Log format: text, json or logfmt
	-case string
	    Case policy: lower, upper or preserve
	-scan string
	    Intersection scan: crossable or letters
	-skip
	    Leave out words that cannot cross anything instead of stopping
	-no-color
	    Plain grid output
	-rebuild-config
	    Rewrite the default config file and exit
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/arrowword/internal/cli"
	"github.com/bastiangx/arrowword/internal/logger"
	"github.com/bastiangx/arrowword/pkg/config"
	"github.com/bastiangx/arrowword/pkg/generator"
	"github.com/bastiangx/arrowword/pkg/layout"
	"github.com/bastiangx/arrowword/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "arrowword"
	gh      = "https://github.com/bastiangx/arrowword"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main only manages the flow, the work happens in the generator, the server
// and the cli packages.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a config file")
	wordsPath := flag.String("words", "", "Build one grid from this word list and exit")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- collect words interactively")
	logFormat := flag.String("logfmt", "text", "Log format: text, json or logfmt")
	casePolicy := flag.String("case", "", "Case policy: lower, upper or preserve")
	scan := flag.String("scan", "", "Intersection scan: crossable or letters")
	skip := flag.Bool("skip", false, "Leave out words that cannot cross anything")
	noColor := flag.Bool("no-color", false, "Plain grid output")
	rebuild := flag.Bool("rebuild-config", false, "Rewrite the default config file and exit")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}
	log.SetFormatter(logger.ParseFormatter(*logFormat))

	if *rebuild {
		if err := config.RebuildConfigFile(); err != nil {
			log.Fatalf("Failed to rebuild config: %v", err)
		}
		log.Print("Config rebuilt", "path", config.GetActiveConfigPath(""))
		return
	}

	appConfig, usedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(usedPath))

	if *casePolicy != "" {
		appConfig.Engine.Case = *casePolicy
	}
	if *scan != "" {
		appConfig.Engine.Scan = *scan
	}
	if *skip {
		appConfig.Engine.SkipUnplaceable = true
	}
	if *noColor {
		appConfig.CLI.Color = false
	}

	genLogger := logger.NewWithConfig(os.Stderr, "gen", log.GetLevel(), false, *debugMode, logger.ParseFormatter(*logFormat))
	gen, err := generator.NewGenerator(appConfig, genLogger)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if *wordsPath != "" {
		os.Exit(buildOnce(gen, appConfig, *wordsPath))
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		render := cli.NewRenderer(os.Stdout, appConfig.CLI)
		inputHandler := cli.NewInputHandler(gen, render, os.Stdin, os.Stdout)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	showStartupInfo(usedPath)
	srv := server.NewServer(gen, os.Stdin, os.Stdout, logger.New("ipc"))
	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// buildOnce prints the grid of one word list. A stuck layout still prints
// what was placed and exits with status 2.
func buildOnce(gen *generator.Generator, cfg *config.Config, path string) int {
	p, err := gen.GenerateFile(path)
	if p == nil {
		log.Errorf("Failed to build grid: %v", err)
		return 1
	}
	fmt.Println(cli.NewRenderer(os.Stdout, cfg.CLI).Puzzle(p))
	if errors.Is(err, layout.ErrNoIntersection) {
		log.Error("Layout stuck", "err", err)
		return 2
	}
	return 0
}

func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ arrowword ] Lays word lists out as arrowword grids")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(configPath string) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("%s %s", AppName, Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("config: ( %s )", config.GetActiveConfigPath(configPath))
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
