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

// Package platform provides the file type mask and type constants a decoding
// table is built from: the host's compile-time values, embedded profiles of
// other platforms, or a profile file.
package platform

import (
	"fmt"
	"io/fs"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"genftype/internal/artifacts"
	"genftype/internal/common"
	"genftype/internal/ftype"
)

// HostName selects the constants compiled into the running binary.
const HostName = "host"

// Platform is the file type layout of one operating system.
type Platform struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Mask        uint32            `yaml:"mask"`
	Constants   map[string]uint32 `yaml:"constants"`
}

// Assignments returns the platform's type constants in priority order.
func (p *Platform) Assignments() []ftype.Assignment {
	return ftype.Assignments(p.Constants)
}

// Host returns the platform the binary was compiled for.
func Host() *Platform {
	mask, constants := hostConstants()
	return &Platform{
		Name:        HostName,
		Description: fmt.Sprintf("compiled-in constants (%s/%s)", runtime.GOOS, runtime.GOARCH),
		Mask:        mask,
		Constants:   constants,
	}
}

// Parse decodes a YAML profile and validates its constant names.
func Parse(data []byte) (*Platform, error) {
	var p Platform
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse platform profile: %w", err)
	}
	for name := range p.Constants {
		if _, ok := ftype.LookupType(name); !ok {
			return nil, fmt.Errorf("%w: %s", common.ErrUnknownConstant, name)
		}
	}
	return &p, nil
}

// LoadFile reads a profile from fsys. A profile without a name is named
// after its file.
func LoadFile(fsys afero.Fs, filename string) (*Platform, error) {
	filename = common.ExpandHome(filename)
	data, err := afero.ReadFile(fsys, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read platform profile: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if p.Name == "" {
		p.Name = common.StemName(filename)
	}
	return p, nil
}

// Builtin returns the embedded profile with the given name. HostName returns
// Host().
func Builtin(name string) (*Platform, error) {
	if name == "" || name == HostName {
		return Host(), nil
	}
	data, err := fs.ReadFile(artifacts.Platforms, "platforms/"+name+".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrUnknownPlatform, name)
	}
	p, err := Parse(data)
	if err != nil {
		// Embedded profiles are part of the binary.
		panic("failed to parse embedded platform profile " + name + ": " + err.Error())
	}
	return p, nil
}

// Names lists the embedded profiles in sorted order. HostName is not
// included.
func Names() []string {
	entries, err := fs.ReadDir(artifacts.Platforms, "platforms")
	if err != nil {
		panic("failed to list embedded platform profiles: " + err.Error())
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Resolve picks the platform for a run: a profile file if given, otherwise
// the named profile.
func Resolve(fsys afero.Fs, name, filename string) (*Platform, error) {
	if filename != "" {
		return LoadFile(fsys, filename)
	}
	return Builtin(name)
}
