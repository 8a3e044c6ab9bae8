// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/choria-io/boila"
	"github.com/choria-io/fisk"
	"go.uber.org/zap"
)

var (
	configFile   string
	templateFile string
	engineString string
	debug        bool
	version      string
)

func main() {
	app := fisk.New("boila", "Generates HTML boilerplate interactively")
	app.Version(version)

	app.Help = `
Asks a few questions about an HTML document and renders a boilerplate from the answers.

The result can be copied to the clipboard or saved to disk.
`
	app.Flag("config", "Loads settings from a YAML file").PlaceHolder("FILE").ExistingFileVar(&configFile)
	app.Flag("template", "Renders a custom template").PlaceHolder("FILE").ExistingFileVar(&templateFile)
	app.Flag("engine", "The template engine to use (jet, go)").EnumVar(&engineString, "jet", "go")
	app.Flag("debug", "Enables debug logging").BoolVar(&debug)
	app.Action(runAction)

	_, err := app.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return log.Sugar(), nil
}

func runAction(_ *fisk.ParseContext) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg := &boila.Config{}
	if configFile != "" {
		cfg, err = boila.LoadConfig(configFile)
		if err != nil {
			return err
		}
		log.Debugf("Loaded configuration from %s", configFile)
	}

	if templateFile != "" {
		cfg.TemplateFile = templateFile
	}
	if engineString != "" {
		cfg.Engine = engineString
	}

	b, err := boila.New(*cfg)
	if err != nil {
		return err
	}
	b.Logger(log)

	err = b.Run()
	if err != nil {
		log.Debugf("Run failed: %v", err)
		return err
	}

	return nil
}
