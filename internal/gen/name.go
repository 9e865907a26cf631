// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package gen

import (
	"go/token"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NameFor derives an exported accessor name from the base name of path.
//
// Runs of characters that are neither letters nor digits separate words, each
// of which is capitalized: "static-files" becomes "StaticFiles". A leading
// digit is prefixed with "Embd".
func NameFor(path string) string {
	words := strings.FieldsFunc(filepath.Base(path), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var name strings.Builder

	for _, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		name.WriteString(string(runes))
	}

	switch {
	case name.Len() == 0:
		return "Embd"
	case !unicode.IsLetter([]rune(name.String())[0]):
		return "Embd" + name.String()
	default:
		return name.String()
	}
}

func unexported(name string) string {
	first, size := utf8.DecodeRuneInString(name)

	return string(unicode.ToLower(first)) + name[size:]
}

// OutputBase returns the default output file base name for the accessor name.
func OutputBase(name string) string {
	return strings.ToLower(name) + "_embd"
}

func validateIdentifiers(pkg, name string) error {
	if pkg == "" {
		return ErrEmptyPackage
	}

	if !token.IsIdentifier(pkg) {
		return &IdentifierError{Kind: "package", Name: pkg}
	}

	if !token.IsIdentifier(name) || !token.IsExported(name) {
		return &IdentifierError{Kind: "accessor", Name: name}
	}

	return nil
}

// IdentifierError is returned for invalid package or accessor names.
type IdentifierError struct {
	Kind string
	Name string
}

func (e *IdentifierError) Error() string {
	return e.Kind + " name " + e.Name + ": " + ErrInvalidIdentifier.Error()
}

func (e *IdentifierError) Unwrap() error {
	return ErrInvalidIdentifier
}
