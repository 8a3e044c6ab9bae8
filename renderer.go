// Copyright (c) 2023-2024, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package boila

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"reflect"
	"text/template"

	"github.com/CloudyKit/jet/v6"
	"github.com/Masterminds/sprig/v3"
)

// Template engine names
const (
	EngineGo  = "go"
	EngineJet = "jet"
)

type engineType int

const (
	engineGoTemplate engineType = iota
	engineJet
)

//go:embed templates
var templates embed.FS

// RenderFunc renders a compiled template against a render context
type RenderFunc func(data map[string]any) (string, error)

// Renderer compiles document templates using Go templates or Jet
type Renderer struct {
	engine engineType
	left   string
	right  string
	log    Logger
}

// NewRenderer creates a renderer for the engine and delimiters in cfg
func NewRenderer(cfg Config) (*Renderer, error) {
	r := &Renderer{
		left:  cfg.CustomLeftDelimiter,
		right: cfg.CustomRightDelimiter,
	}

	switch cfg.Engine {
	case EngineGo, "":
		r.engine = engineGoTemplate
	case EngineJet:
		r.engine = engineJet
	default:
		return nil, fmt.Errorf("unknown template engine %q", cfg.Engine)
	}

	return r, nil
}

// Logger configures a logger to use, no logging is done without this
func (r *Renderer) Logger(log Logger) {
	r.log = log
}

// DefaultTemplate returns the name and body of the built in template for the engine
func (r *Renderer) DefaultTemplate() (string, []byte, error) {
	name := "templates/boilerplate.html.tmpl"
	if r.engine == engineJet {
		name = "templates/boilerplate.html.jet"
	}

	body, err := templates.ReadFile(name)
	if err != nil {
		return "", nil, err
	}

	return name, body, nil
}

// Compile parses tmpl and returns a function rendering it
func (r *Renderer) Compile(name string, tmpl []byte) (RenderFunc, error) {
	if r.log != nil {
		r.log.Debugf("Compiling template %s", name)
	}

	switch r.engine {
	case engineJet:
		return r.compileJet(name, tmpl)
	default:
		return r.compileGoTempl(name, tmpl)
	}
}

// ShouldShowScriptTag is true when enabled is truthy and the chosen script
// location equals the location being rendered
func ShouldShowScriptTag(enabled any, location any, thisLocation any) bool {
	if !truthy(enabled) {
		return false
	}

	l, ok := toInt(location)
	if !ok {
		return false
	}

	t, ok := toInt(thisLocation)
	if !ok {
		return false
	}

	return l == t
}

func escape(v any) string {
	return html.EscapeString(fmt.Sprint(v))
}

func (r *Renderer) templateFuncs() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	funcs["shouldShowScriptTag"] = ShouldShowScriptTag
	funcs["escape"] = escape

	return funcs
}

func (r *Renderer) jetTemplateFuncs() map[string]jet.Func {
	funcs := make(map[string]jet.Func)
	funcs["shouldShowScriptTag"] = func(args jet.Arguments) reflect.Value {
		args.RequireNumOfArguments("shouldShowScriptTag", 3, 3)

		return reflect.ValueOf(ShouldShowScriptTag(argValue(args.Get(0)), argValue(args.Get(1)), argValue(args.Get(2))))
	}

	funcs["escape"] = func(args jet.Arguments) reflect.Value {
		args.RequireNumOfArguments("escape", 1, 1)

		return reflect.ValueOf(escape(argValue(args.Get(0))))
	}

	return funcs
}

func (r *Renderer) compileGoTempl(name string, tmpl []byte) (RenderFunc, error) {
	templ := template.New(name).Funcs(r.templateFuncs())

	if r.left != "" && r.right != "" {
		templ.Delims(r.left, r.right)
	}

	templ, err := templ.Parse(string(tmpl))
	if err != nil {
		return nil, fmt.Errorf("parsing template %v failed: %w", name, err)
	}

	return func(data map[string]any) (string, error) {
		buf := bytes.NewBuffer([]byte{})
		err := templ.Execute(buf, data)
		if err != nil {
			return "", err
		}

		return buf.String(), nil
	}, nil
}

func (r *Renderer) compileJet(name string, tmpl []byte) (RenderFunc, error) {
	loader := jet.NewInMemLoader()
	loader.Set(name, string(tmpl))

	opts := []jet.Option{jet.WithSafeWriter(nil)}
	if r.left != "" && r.right != "" {
		opts = append(opts, jet.WithDelims(r.left, r.right))
	}

	set := jet.NewSet(loader, opts...)

	for k, fn := range r.jetTemplateFuncs() {
		set.AddGlobalFunc(k, fn)
	}

	t, err := set.GetTemplate(name)
	if err != nil {
		return nil, fmt.Errorf("parsing template %v failed: %w", name, err)
	}

	return func(data map[string]any) (string, error) {
		vars := make(jet.VarMap)
		for k, v := range data {
			if v != nil {
				vars.Set(k, v)
			}
		}

		buf := bytes.NewBuffer([]byte{})
		err := t.Execute(buf, vars, data)
		if err != nil {
			return "", err
		}

		return buf.String(), nil
	}, nil
}

func argValue(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}

	return v.Interface()
}

func truthy(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return false
	}

	return !rv.IsZero()
}

func toInt(v any) (int, bool) {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != float64(int(f)) {
			return 0, false
		}
		return int(f), true
	default:
		return 0, false
	}
}
