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

// Package ftype builds the table that decodes the file type field of a mode
// word into the one-character mnemonic used by ls -l.
package ftype

// Unknown is the mnemonic of table slots no known file type maps to.
const Unknown = '?'

// TypeSpec describes a file type constant and the mnemonic it decodes to.
type TypeSpec struct {
	Name        string // constant name, e.g. S_IFDIR
	Mnemonic    byte
	Description string
}

// KnownTypes is the priority order of file type constants. When two
// constants share a table slot, the one listed first keeps it.
var KnownTypes = []TypeSpec{
	{Name: "S_IFIFO", Mnemonic: 'p', Description: "named pipe"},
	{Name: "S_IFCHR", Mnemonic: 'c', Description: "character device"},
	{Name: "S_IFDIR", Mnemonic: 'd', Description: "directory"},
	{Name: "S_IFBLK", Mnemonic: 'b', Description: "block device"},
	{Name: "S_IFREG", Mnemonic: '-', Description: "regular file"},
	{Name: "S_IFLNK", Mnemonic: 'l', Description: "symbolic link"},
	{Name: "S_IFSOCK", Mnemonic: 's', Description: "socket"},
	{Name: "S_IFDOOR", Mnemonic: 'D', Description: "door"},
	{Name: "S_IFPORT", Mnemonic: 'E', Description: "event port"},
	{Name: "S_IFWHT", Mnemonic: 'w', Description: "whiteout"},
	{Name: "S_IFNWK", Mnemonic: 'n', Description: "network special"},
}

// LookupType returns the TypeSpec with the given constant name.
func LookupType(name string) (TypeSpec, bool) {
	for _, spec := range KnownTypes {
		if spec.Name == name {
			return spec, true
		}
	}
	return TypeSpec{}, false
}

// Assignment binds a known file type to its value on a platform.
type Assignment struct {
	TypeSpec
	Value uint32
}

// Assignments returns one Assignment per constant defined in values, in
// KnownTypes order. Constants missing from values are skipped.
func Assignments(values map[string]uint32) []Assignment {
	var out []Assignment
	for _, spec := range KnownTypes {
		if v, ok := values[spec.Name]; ok {
			out = append(out, Assignment{TypeSpec: spec, Value: v})
		}
	}
	return out
}
