// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package boila interactively builds HTML boilerplate documents. The user
// answers questions about the document, the answers are rendered through a
// template and the result is printed, copied to the clipboard or saved.
package boila

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/choria-io/boila/forms"
	"github.com/choria-io/boila/internal/output"
	"github.com/choria-io/boila/internal/questions"
	"gopkg.in/yaml.v3"
)

// Config configures a boila run
type Config struct {
	// TemplateFile renders a custom template instead of the built in one
	TemplateFile string `yaml:"template"`
	// Engine is the template engine to use, go or jet, defaults to go
	Engine string `yaml:"engine"`
	// Sets a custom template delimiter, only valid with a custom template
	CustomLeftDelimiter string `yaml:"left_delimiter"`
	// Sets a custom template delimiter, only valid with a custom template
	CustomRightDelimiter string `yaml:"right_delimiter"`
	// Post configures post-processing of saved files using filepath globs
	Post []map[string]string `yaml:"post"`
	// Defaults overrides the default answers offered for questions
	Defaults questions.Defaults `yaml:"defaults"`
}

// Logger receives debug and progress messages
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
}

// Prompter asks the user questions
type Prompter interface {
	Ask(qs []forms.Question) (forms.Answers, error)
	Confirm(message string, dflt bool) (bool, error)
}

// Clipboard receives copied documents
type Clipboard interface {
	WriteAll(text string) error
}

// LoadConfig reads a YAML configuration file
func LoadConfig(file string) (*Config, error) {
	cb, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(cb, cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", file, err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if (cfg.CustomLeftDelimiter == "") != (cfg.CustomRightDelimiter == "") {
		return fmt.Errorf("both left and right delimiters are required")
	}

	if cfg.CustomLeftDelimiter != "" && cfg.TemplateFile == "" {
		return fmt.Errorf("custom delimiters require a custom template")
	}

	if cfg.TemplateFile != "" {
		_, err := os.Stat(cfg.TemplateFile)
		if err != nil {
			return fmt.Errorf("cannot read template: %w", err)
		}
	}

	for _, p := range cfg.Post {
		for g := range p {
			_, err := filepath.Match(g, "")
			if err != nil {
				return fmt.Errorf("invalid post processing pattern %q: %w", g, err)
			}
		}
	}

	return nil
}

// Option configures a Boila instance
type Option func(*Boila)

// WithPrompter replaces the interactive terminal prompter
func WithPrompter(p Prompter) Option {
	return func(b *Boila) {
		b.prompt = p
	}
}

// WithOutput sets where the document and messages are written, defaults to stdout
func WithOutput(w io.Writer) Option {
	return func(b *Boila) {
		b.out = w
	}
}

// WithClipboard replaces the system clipboard
func WithClipboard(c Clipboard) Option {
	return func(b *Boila) {
		b.clip = c
	}
}

// Boila runs the question, render and delivery flow
type Boila struct {
	cfg      *Config
	renderer *Renderer
	prompt   Prompter
	clip     Clipboard
	out      io.Writer
	log      Logger
}

// New creates a new instance
func New(cfg Config, opts ...Option) (*Boila, error) {
	err := validateConfig(&cfg)
	if err != nil {
		return nil, err
	}

	r, err := NewRenderer(cfg)
	if err != nil {
		return nil, err
	}

	b := &Boila{
		cfg:      &cfg,
		renderer: r,
		prompt:   forms.New(),
		out:      os.Stdout,
	}

	for _, o := range opts {
		o(b)
	}

	return b, nil
}

// Logger configures a logger to use, no logging is done without this
func (b *Boila) Logger(log Logger) {
	b.log = log
	b.renderer.Logger(log)
}

// Compile loads the configured template, or the built in one, and compiles it
func (b *Boila) Compile() (RenderFunc, error) {
	if b.cfg.TemplateFile == "" {
		name, body, err := b.renderer.DefaultTemplate()
		if err != nil {
			return nil, err
		}

		return b.renderer.Compile(name, body)
	}

	body, err := os.ReadFile(b.cfg.TemplateFile)
	if err != nil {
		return nil, err
	}

	return b.renderer.Compile(filepath.Base(b.cfg.TemplateFile), body)
}

// Render renders answers to the primary questions into a document
func (b *Boila) Render(answers forms.Answers) (string, error) {
	render, err := b.Compile()
	if err != nil {
		return "", err
	}

	return render(NewRenderContext(answers))
}

// Run asks the document questions, prints the rendered document and then
// performs the follow up action the user picks
func (b *Boila) Run() error {
	render, err := b.Compile()
	if err != nil {
		return err
	}

	answers, err := b.prompt.Ask(questions.Primary(b.cfg.Defaults))
	if err != nil {
		return err
	}

	if b.log != nil {
		b.log.Debugf("Collected answers: %v", answers)
	}

	doc, err := render(NewRenderContext(answers))
	if err != nil {
		return err
	}

	fmt.Fprintln(b.out)
	fmt.Fprintln(b.out, forms.ColorMarkup("{bold}Your boilerplate:{/bold}"))
	fmt.Fprintln(b.out)
	fmt.Fprintln(b.out, doc)
	fmt.Fprintln(b.out)

	followUp, err := b.prompt.Ask(questions.FollowUp(b.cfg.Defaults))
	if err != nil {
		return err
	}

	opts := []output.Option{
		output.WithOutput(b.out),
		output.WithPost(b.cfg.Post),
	}
	if b.clip != nil {
		opts = append(opts, output.WithClipboard(b.clip))
	}
	if b.log != nil {
		opts = append(opts, output.WithLogger(b.log))
	}

	err = output.New(b.prompt, opts...).Dispatch(doc, followUp)
	if err != nil {
		return err
	}

	fmt.Fprintf(b.out, "Thanks for using %s!\n", PackageName)

	return nil
}
