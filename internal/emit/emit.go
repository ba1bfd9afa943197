// Copyright 2024 genftype Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package emit renders a file type table as source code implementing
// mode_to_ftype.
package emit

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"genftype/internal/artifacts"
	"genftype/internal/common"
	"genftype/internal/ftype"
)

// Language is a target language for generated code.
type Language int

const (
	LanguageUnspecified Language = iota
	LanguageC
	LanguageD
	LanguagePerl
)

// Languages lists the supported output languages.
func Languages() []Language {
	return []Language{LanguageC, LanguageD, LanguagePerl}
}

func (l Language) String() string {
	switch l {
	case LanguageC:
		return "C"
	case LanguageD:
		return "D"
	case LanguagePerl:
		return "perl"
	default:
		return "unspecified"
	}
}

// ParseLanguage returns the language with the given name, ignoring case.
func ParseLanguage(name string) (Language, error) {
	if name == "" {
		return LanguageUnspecified, common.ErrNoLanguage
	}
	for _, l := range Languages() {
		if strings.EqualFold(name, l.String()) {
			return l, nil
		}
	}
	return LanguageUnspecified, fmt.Errorf("%w, '%s'", common.ErrUnknownLanguage, name)
}

// LanguageNames returns the supported names joined for help text.
func LanguageNames() string {
	names := make([]string, 0, len(Languages()))
	for _, l := range Languages() {
		names = append(names, l.String())
	}
	return strings.Join(names, ", ")
}

// Params is everything an emitter needs from the table build.
type Params struct {
	Table    ftype.Table
	Mask     ftype.Mask
	Platform string
	Verbose  bool // prefix INFO comments
}

type templateData struct {
	Table    string
	Size     int
	Mask     uint32
	Shift    uint
	Platform string
	Verbose  bool
}

var funcs = template.FuncMap{
	"hex": func(v uint32) string { return fmt.Sprintf("0x%x", v) },
}

// templates holds one template per language, named "<language>.tmpl".
var templates = template.Must(template.New("").Funcs(funcs).ParseFS(artifacts.Templates, "templates/*.tmpl"))

// Emit writes the code for lang to w.
func Emit(w io.Writer, lang Language, p Params) error {
	var quote func(ftype.Table) string
	switch lang {
	case LanguageC:
		quote = quoteC
	case LanguageD:
		quote = quoteD
	case LanguagePerl:
		quote = quotePerl
	case LanguageUnspecified:
		return common.ErrNoLanguage
	default:
		return fmt.Errorf("%w, %d", common.ErrUnknownLanguage, int(lang))
	}

	tmpl := templates.Lookup(templateName(lang))
	if tmpl == nil {
		return fmt.Errorf("no %s template", lang)
	}

	data := templateData{
		Table:    quote(p.Table),
		Size:     p.Table.Size(),
		Mask:     p.Mask.Raw,
		Shift:    p.Mask.Shift,
		Platform: p.Platform,
		Verbose:  p.Verbose,
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to write %s code: %w", lang, err)
	}
	return nil
}

func templateName(lang Language) string {
	return strings.ToLower(lang.String()) + ".tmpl"
}
