// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package gen

import (
	"text/template"
)

var embeddedTemplate = template.Must(template.New("embedded").Parse(
	`// Code generated by embd. DO NOT EDIT.

//go:build !{{ .Tag }}

package {{ .Package }}

import (
	_ "embed"
	"sync"

	"github.com/aibor/embd"
)

//go:embed {{ .ArchiveFile }}
var {{ .Var }}Archive string

var {{ .Var }}Once = sync.OnceValue(func() *embd.{{ .Type }} {
	return embd.{{ .Loader }}({{ .Var }}Archive)
})

// {{ .Name }} returns the {{ .Description }} {{ printf "%q" .Target }} embedded
// into the binary.
func {{ .Name }}() *embd.{{ .Type }} {
	return {{ .Var }}Once()
}
`))

var liveTemplate = template.Must(template.New("live").Parse(
	`// Code generated by embd. DO NOT EDIT.

//go:build {{ .Tag }}

package {{ .Package }}

import "github.com/aibor/embd"

// {{ .Name }} reads the {{ .Description }} {{ printf "%q" .Target }} from disk
// on every call.
func {{ .Name }}() *embd.{{ .Type }} {
	return embd.{{ .LiveFunc }}({{ printf "%q" .Target }})
}
`))

type templateData struct {
	Tag         string
	Package     string
	Name        string
	Var         string
	Type        string
	Loader      string
	LiveFunc    string
	Description string
	ArchiveFile string
	Target      string
}
