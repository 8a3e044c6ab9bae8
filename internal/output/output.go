// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package output delivers a rendered document according to the follow up
// answers: nothing, a clipboard copy or a file on disk.
package output

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/choria-io/boila/forms"
	"github.com/choria-io/boila/internal/questions"
	"github.com/kballard/go-shellquote"
)

// Logger receives debug and progress messages
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
}

// Clipboard receives copied documents
type Clipboard interface {
	WriteAll(text string) error
}

// Confirmer asks yes/no questions
type Confirmer interface {
	Confirm(message string, dflt bool) (bool, error)
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithClipboard replaces the system clipboard
func WithClipboard(c Clipboard) Option {
	return func(d *Dispatcher) {
		d.clip = c
	}
}

// WithOutput sets where status messages are written, defaults to stdout
func WithOutput(w io.Writer) Option {
	return func(d *Dispatcher) {
		d.out = w
	}
}

// WithPost configures commands to run on saved files whose base name matches
// the glob key, {} in a command is replaced by the file path
func WithPost(post []map[string]string) Option {
	return func(d *Dispatcher) {
		d.post = post
	}
}

// WithLogger sets a logger, no logging is done without this
func WithLogger(log Logger) Option {
	return func(d *Dispatcher) {
		d.log = log
	}
}

// Dispatcher performs the follow up action for a rendered document
type Dispatcher struct {
	prompt Confirmer
	clip   Clipboard
	out    io.Writer
	post   []map[string]string
	log    Logger
}

// New creates a Dispatcher that uses prompt to confirm overwriting files
func New(prompt Confirmer, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		prompt: prompt,
		clip:   systemClipboard{},
		out:    os.Stdout,
	}

	for _, o := range opts {
		o(d)
	}

	return d
}

// Dispatch copies or saves output based on the next action answer, any other
// action does nothing
func (d *Dispatcher) Dispatch(output string, answers forms.Answers) error {
	action, _ := answers.Int(questions.NextAction)

	switch action {
	case questions.ActionCopy:
		return d.Copy(output)

	case questions.ActionSave:
		_, err := d.Save(output, TargetPath(answers))
		return err

	default:
		if d.log != nil {
			d.log.Debugf("No further action requested")
		}

		return nil
	}
}

// TargetPath is the path joined with the file name when one was asked for,
// otherwise the path itself
func TargetPath(answers forms.Answers) string {
	if answers.Has(questions.Filename) {
		return filepath.Join(answers.String(questions.Path), answers.String(questions.Filename))
	}

	return answers.String(questions.Path)
}

// Copy writes output to the clipboard
func (d *Dispatcher) Copy(output string) error {
	err := d.clip.WriteAll(output)
	if err != nil {
		return err
	}

	fmt.Fprintln(d.out, forms.ColorMarkup("{green}Successfully copied boilerplate to clipboard!{/green}"))

	return nil
}

// Save writes output to target, asking before replacing an existing file.
// It reports false without error when the user declines to overwrite.
func (d *Dispatcher) Save(output string, target string) (bool, error) {
	if _, err := os.Stat(target); err == nil {
		ok, err := d.prompt.Confirm("File already exists. Overwrite?", true)
		if err != nil {
			return false, err
		}

		if !ok {
			if d.log != nil {
				d.log.Debugf("Not overwriting %s", target)
			}

			return false, nil
		}
	}

	err := os.WriteFile(target, []byte(output), 0644)
	if err != nil {
		return false, err
	}

	if d.log != nil {
		d.log.Infof("Wrote %d bytes to %s", len(output), target)
	}

	err = d.postFile(target)
	if err != nil {
		return true, err
	}

	fmt.Fprintf(d.out, "%s \"%s\"\n", forms.ColorMarkup("{green}Successfully saved boilerplate to{/green}"), target)

	return true, nil
}

func (d *Dispatcher) postFile(f string) error {
	for _, p := range d.post {
		for g, v := range p {
			matched, err := filepath.Match(g, filepath.Base(f))
			if err != nil {
				return err
			}

			if !matched {
				continue
			}

			parts, err := shellquote.Split(v)
			if err != nil {
				return err
			}
			if len(parts) == 0 {
				return fmt.Errorf("empty post processing command for %s", g)
			}

			cmd := parts[0]
			var args []string
			hasPlaceholder := false
			for _, p := range parts[1:] {
				if strings.Contains(p, "{}") {
					args = append(args, strings.ReplaceAll(p, "{}", f))
					hasPlaceholder = true
				} else {
					args = append(args, p)
				}
			}

			if !hasPlaceholder {
				args = append(args, f)
			}

			if d.log != nil {
				d.log.Infof("Post processing using: %s %s", cmd, strings.Join(args, " "))
			}

			out, err := exec.Command(cmd, args...).CombinedOutput()
			if err != nil {
				return fmt.Errorf("failed to post process %s\nerror: %w\noutput: %q", f, err, out)
			}
		}
	}

	return nil
}
