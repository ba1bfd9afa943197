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

package ftype

import (
	"bytes"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"genftype/internal/common"
)

// Table maps a type field value to its mnemonic.
type Table []byte

// NewTable returns a table of size slots, all Unknown.
func NewTable(size int) Table {
	return Table(bytes.Repeat([]byte{Unknown}, size))
}

// Collision is returned by Assign when the slot already holds a mnemonic.
type Collision struct {
	Position uint32
	Incoming byte
	Existing byte
	Name     string // constant that lost the slot, empty when unknown
}

func (c *Collision) Error() string {
	return fmt.Sprintf("collision, position %d, '%c' vs '%c'", c.Position, c.Incoming, c.Existing)
}

// Assign stores mnemonic at pos unless the slot is already taken.
// A taken slot is left unchanged and a *Collision is returned.
func (t Table) Assign(pos uint32, mnemonic byte) error {
	if uint64(pos) >= uint64(len(t)) {
		return fmt.Errorf("%w: position %d, table size %d", common.ErrPositionOutOfRange, pos, len(t))
	}
	if existing := t[pos]; existing != Unknown {
		return &Collision{Position: pos, Incoming: mnemonic, Existing: existing}
	}
	t[pos] = mnemonic
	return nil
}

// Build creates the decoding table for m. Assignments are applied in order,
// so earlier ones win collisions. Collisions are logged and returned but do
// not stop the build. Rules are applied last.
func Build(m Mask, assignments []Assignment, rules []Rule) (Table, []Collision, error) {
	table := NewTable(m.TableSize())
	var collisions []Collision

	for _, a := range assignments {
		pos := m.Position(a.Value)
		err := table.Assign(pos, a.Mnemonic)
		if err == nil {
			continue
		}
		var c *Collision
		if !errors.As(err, &c) {
			return nil, nil, fmt.Errorf("%s (0x%x): %w", a.Name, a.Value, err)
		}
		c.Name = a.Name
		log.WithFields(log.Fields{
			"position": c.Position,
			"incoming": string(c.Incoming),
			"existing": string(c.Existing),
			"constant": c.Name,
		}).Error(c.Error())
		collisions = append(collisions, *c)
	}

	table.Translate(rules)
	return table, collisions, nil
}

// Lookup returns the mnemonic of a mode word.
func (t Table) Lookup(m Mask, mode uint32) byte {
	pos := m.Extract(mode)
	if uint64(pos) >= uint64(len(t)) {
		return Unknown
	}
	return t[pos]
}

// Size returns the number of slots.
func (t Table) Size() int {
	return len(t)
}

func (t Table) String() string {
	return string(t)
}
