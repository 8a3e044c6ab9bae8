// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package forms implements interactive terminal question flows that collect
// user input into a flat Answers map. Questions are typed records (confirm,
// input, list, checkbox) that are asked in order; each may carry a visibility
// predicate, a default producer and a computed choice list that only see the
// answers given to earlier questions.
package forms

//go:generate mockgen -source forms.go -destination mock_test.go -package forms -typed

import (
	"errors"
	"fmt"
	"maps"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Surveyor abstracts the survey library for testability.
type Surveyor interface {
	AskOne(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error
}

type defaultSurveyor struct{}

func (d *defaultSurveyor) AskOne(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
	return survey.AskOne(p, response, opts...)
}

// ErrInterrupted is returned when the user aborts a prompt with Ctrl-C
var ErrInterrupted = errors.New("interrupted")

// ErrNotTerminal is returned when stdin or stdout is not a terminal
var ErrNotTerminal = errors.New("can only ask questions on a valid terminal")

// Type constants identify question types
const (
	ConfirmType  = "confirm"
	InputType    = "input"
	ListType     = "list"
	CheckboxType = "checkbox"
)

// Choice is a single option of a list or checkbox question. Value is the answer
// stored for list questions and defaults to Name. Checked pre-selects the option
// in checkbox questions.
type Choice struct {
	Name    string
	Value   any
	Checked bool
}

func (c Choice) value() any {
	if c.Value == nil {
		return c.Name
	}

	return c.Value
}

// Question defines a single prompt. When, DefaultFunc and ChoicesFunc receive a
// snapshot of the answers collected for earlier questions only.
type Question struct {
	Name        string
	Type        string
	Message     string
	Help        string
	Default     any
	DefaultFunc func(Answers) any
	Choices     []Choice
	ChoicesFunc func(Answers) []Choice
	When        func(Answers) bool
}

func (q Question) defaultValue(prior Answers) any {
	if q.DefaultFunc != nil {
		return q.DefaultFunc(prior)
	}

	return q.Default
}

func (q Question) choices(prior Answers) []Choice {
	if q.ChoicesFunc != nil {
		return q.ChoicesFunc(prior)
	}

	return q.Choices
}

// Option configures a Processor
type Option func(*Processor)

// WithSurveyor sets the prompt implementation, mainly used in tests
func WithSurveyor(s Surveyor) Option {
	return func(p *Processor) {
		p.surveyor = s
	}
}

// WithIsTerminal overrides terminal detection
func WithIsTerminal(f func() bool) Option {
	return func(p *Processor) {
		p.isTerminal = f
	}
}

// Processor asks questions interactively
type Processor struct {
	surveyor   Surveyor
	isTerminal func() bool
}

// New creates a Processor that prompts on the controlling terminal
func New(opts ...Option) *Processor {
	p := &Processor{
		surveyor:   &defaultSurveyor{},
		isTerminal: isTerminal,
	}

	for _, o := range opts {
		o(p)
	}

	return p
}

// Ask creates a Processor using opts and asks qs
func Ask(qs []Question, opts ...Option) (Answers, error) {
	return New(opts...).Ask(qs)
}

// Ask presents qs in order and returns the collected answers. Questions whose
// When predicate is false are skipped and have no key in the result.
func (p *Processor) Ask(qs []Question) (Answers, error) {
	if !p.isTerminal() {
		return nil, ErrNotTerminal
	}

	if len(qs) == 0 {
		return nil, fmt.Errorf("no questions defined")
	}

	answers := Answers{}

	for _, q := range qs {
		prior := maps.Clone(answers)

		if q.When != nil && !q.When(prior) {
			continue
		}

		val, err := p.askQuestion(q, prior)
		if err != nil {
			return nil, err
		}

		answers[q.Name] = val
	}

	return answers, nil
}

// Confirm asks a single yes/no question
func (p *Processor) Confirm(message string, dflt bool) (bool, error) {
	ans, err := p.Ask([]Question{{Name: "confirm", Type: ConfirmType, Message: message, Default: dflt}})
	if err != nil {
		return false, err
	}

	return ans.Bool("confirm"), nil
}

func (p *Processor) askQuestion(q Question, prior Answers) (any, error) {
	var val any
	var err error

	switch q.Type {
	case ConfirmType:
		val, err = p.askConfirm(q, prior)
	case InputType, "":
		val, err = p.askInput(q, prior)
	case ListType:
		val, err = p.askList(q, prior)
	case CheckboxType:
		val, err = p.askCheckbox(q, prior)
	default:
		return nil, fmt.Errorf("unsupported question type %q", q.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", q.Name, translateSurveyErr(err))
	}

	return val, nil
}

func (p *Processor) askConfirm(q Question, prior Answers) (bool, error) {
	dflt, _ := q.defaultValue(prior).(bool)
	ans := dflt

	err := p.surveyor.AskOne(&survey.Confirm{
		Message: ColorMarkup(q.Message),
		Help:    q.Help,
		Default: dflt,
	}, &ans)

	return ans, err
}

func (p *Processor) askInput(q Question, prior Answers) (string, error) {
	var dflt string
	if d := q.defaultValue(prior); d != nil {
		dflt = fmt.Sprint(d)
	}

	var ans string

	err := p.surveyor.AskOne(&survey.Input{
		Message: ColorMarkup(q.Message),
		Help:    q.Help,
		Default: dflt,
	}, &ans)

	return ans, err
}

func (p *Processor) askList(q Question, prior Answers) (any, error) {
	choices := q.choices(prior)
	if len(choices) == 0 {
		return nil, fmt.Errorf("no choices defined")
	}

	prompt := &survey.Select{
		Message: ColorMarkup(q.Message),
		Help:    q.Help,
		Options: choiceNames(choices),
	}

	if d := q.defaultValue(prior); d != nil {
		for _, c := range choices {
			if c.value() == d {
				prompt.Default = c.Name
				break
			}
		}
	}

	var ans string
	err := p.surveyor.AskOne(prompt, &ans)
	if err != nil {
		return nil, err
	}

	for _, c := range choices {
		if c.Name == ans {
			return c.value(), nil
		}
	}

	return nil, fmt.Errorf("invalid choice %q", ans)
}

func (p *Processor) askCheckbox(q Question, prior Answers) ([]string, error) {
	choices := q.choices(prior)
	if len(choices) == 0 {
		return nil, fmt.Errorf("no choices defined")
	}

	prompt := &survey.MultiSelect{
		Message: ColorMarkup(q.Message),
		Help:    q.Help,
		Options: choiceNames(choices),
	}

	var checked []string
	for _, c := range choices {
		if c.Checked {
			checked = append(checked, c.Name)
		}
	}
	if len(checked) > 0 {
		prompt.Default = checked
	}

	ans := []string{}
	err := p.surveyor.AskOne(prompt, &ans)
	if err != nil {
		return nil, err
	}

	names := choiceNames(choices)
	for _, a := range ans {
		if !isOneOf(a, names...) {
			return nil, fmt.Errorf("invalid choice %q", a)
		}
	}

	return ans, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}

	return err
}

func choiceNames(choices []Choice) []string {
	names := make([]string, len(choices))
	for i, c := range choices {
		names[i] = c.Name
	}

	return names
}
