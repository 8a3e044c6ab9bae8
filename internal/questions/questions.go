// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package questions holds the question flows used to describe a document and
// to decide what to do with the rendered result.
package questions

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/choria-io/boila/forms"
	"github.com/choria-io/boila/internal/locale"
)

// Answer keys
const (
	HasLang           = "hasLang"
	Lang              = "lang"
	MetaTags          = "metaTags"
	Title             = "title"
	HasStyleTag       = "hasStyleTag"
	StyleTagHref      = "styleTagHref"
	HasScriptTag      = "hasScriptTag"
	ScriptTagLocation = "scriptTagLocation"
	ScriptTagSrc      = "scriptTagSrc"
	ScriptTagAttrs    = "scriptTagAttrs"

	NextAction = "nextAction"
	Path       = "path"
	Filename   = "filename"
)

// Script tag placements
const (
	LocationHead = iota
	LocationBodyStart
	LocationBodyEnd
)

// Follow up actions
const (
	ActionFinished = iota
	ActionCopy
	ActionSave
)

// Meta tags offered for inclusion
const (
	MetaCharset   = `<meta charset="UTF-8">`
	MetaViewport  = `<meta name="viewport" content="width=device-width, initial-scale=1.0">`
	MetaCompatIE  = `<meta http-equiv="X-UA-Compatible" content="ie=edge">`
	AttrModule    = `type="module"`
	AttrAsync     = `async`
	AttrDefer     = `defer`
	DefaultTitle  = "Untitled"
	DefaultStyle  = "/dist/main.css"
	DefaultScript = "/dist/main.js"
	DefaultFile   = "index.html"
)

// Defaults overrides the default answers offered to the user, empty values
// use the built in defaults
type Defaults struct {
	Lang       string `yaml:"lang"`
	Title      string `yaml:"title"`
	Stylesheet string `yaml:"stylesheet"`
	Script     string `yaml:"script"`
	Filename   string `yaml:"filename"`
}

func orDefault(v string, dflt string) string {
	if strings.TrimSpace(v) == "" {
		return dflt
	}

	return v
}

func answered(key string) func(forms.Answers) bool {
	return func(a forms.Answers) bool {
		return a.Bool(key)
	}
}

func isSave(a forms.Answers) bool {
	action, ok := a.Int(NextAction)
	return ok && action == ActionSave
}

// Primary is the ordered list of questions describing the document
func Primary(d Defaults) []forms.Question {
	return []forms.Question{
		{
			Name:    HasLang,
			Type:    forms.ConfirmType,
			Message: "Include language?",
			Default: true,
		},
		{
			Name:    Lang,
			Type:    forms.InputType,
			Message: "Document language:",
			DefaultFunc: func(forms.Answers) any {
				return orDefault(d.Lang, locale.Resolve())
			},
			When: answered(HasLang),
		},
		{
			Name:    MetaTags,
			Type:    forms.CheckboxType,
			Message: "Include meta tags:",
			Choices: []forms.Choice{
				{Name: MetaCharset, Checked: true},
				{Name: MetaViewport, Checked: true},
				{Name: MetaCompatIE, Checked: false},
			},
		},
		{
			Name:    Title,
			Type:    forms.InputType,
			Message: "Document title:",
			Default: orDefault(d.Title, DefaultTitle),
		},
		{
			Name:    HasStyleTag,
			Type:    forms.ConfirmType,
			Message: "Include a stylesheet?",
			Default: false,
		},
		{
			Name:    StyleTagHref,
			Type:    forms.InputType,
			Message: "Stylesheet path:",
			Default: orDefault(d.Stylesheet, DefaultStyle),
			When:    answered(HasStyleTag),
		},
		{
			Name:    HasScriptTag,
			Type:    forms.ConfirmType,
			Message: "Include a script?",
			Default: false,
		},
		{
			Name:    ScriptTagLocation,
			Type:    forms.ListType,
			Message: "Script location:",
			Choices: []forms.Choice{
				{Name: "In the <head>", Value: LocationHead},
				{Name: "At the start of <body>", Value: LocationBodyStart},
				{Name: "At the end of <body>", Value: LocationBodyEnd},
			},
			When: answered(HasScriptTag),
		},
		{
			Name:    ScriptTagSrc,
			Type:    forms.InputType,
			Message: "Script path:",
			Default: orDefault(d.Script, DefaultScript),
			When:    answered(HasScriptTag),
		},
		{
			Name:        ScriptTagAttrs,
			Type:        forms.CheckboxType,
			Message:     "Script attributes:",
			ChoicesFunc: ScriptAttributeChoices,
			When:        answered(HasScriptTag),
		},
	}
}

// ScriptAttributeChoices pre-selects type="module" for .mjs scripts and defer
// for scripts placed before the end of the body
func ScriptAttributeChoices(a forms.Answers) []forms.Choice {
	location, hasLocation := a.Int(ScriptTagLocation)
	src := strings.ToLower(strings.TrimSpace(a.String(ScriptTagSrc)))

	return []forms.Choice{
		{Name: AttrModule, Checked: strings.HasSuffix(src, ".mjs")},
		{Name: AttrAsync, Checked: false},
		{Name: AttrDefer, Checked: hasLocation && (location == LocationHead || location == LocationBodyStart)},
	}
}

// FollowUp is the ordered list of questions asked after rendering
func FollowUp(d Defaults) []forms.Question {
	return []forms.Question{
		{
			Name:    NextAction,
			Type:    forms.ListType,
			Message: "What would you like to do next?",
			Choices: []forms.Choice{
				{Name: "I'm finished", Value: ActionFinished},
				{Name: "Copy to the clipboard", Value: ActionCopy},
				{Name: "Save to disk", Value: ActionSave},
			},
		},
		{
			Name:    Path,
			Type:    forms.InputType,
			Message: "Output path:",
			DefaultFunc: func(forms.Answers) any {
				cwd, err := os.Getwd()
				if err != nil {
					return "."
				}
				return cwd
			},
			When: isSave,
		},
		{
			Name:    Filename,
			Type:    forms.InputType,
			Message: "File name:",
			Default: orDefault(d.Filename, DefaultFile),
			When: func(a forms.Answers) bool {
				return isSave(a) && NeedsFileName(a.String(Path))
			},
		},
	}
}

// NeedsFileName reports whether p looks like a directory rather than a file,
// that is when either its base name or its extension is blank
func NeedsFileName(p string) bool {
	base := filepath.Base(p)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)

	return strings.TrimSpace(name) == "" || strings.TrimSpace(ext) == ""
}
