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
	"fmt"
	"math/bits"

	"genftype/internal/common"
)

// MaxFieldBits is the widest type field a table is built for. A wider field
// would need a table of more than 64Ki slots.
const MaxFieldBits = 16

// Mask is an analyzed file type mask (S_IFMT).
type Mask struct {
	Raw   uint32 // mask as defined by the platform
	Shift uint   // trailing zero bits of Raw
	Field uint32 // Raw >> Shift, all ones from bit 0
}

// MaskError reports a type mask that is not a single run of 1 bits.
type MaskError struct {
	Raw uint32
}

func (e *MaskError) Error() string {
	return fmt.Sprintf("S_IFMT = 0x%x: %v", e.Raw, common.ErrMaskNotSimple)
}

func (e *MaskError) Unwrap() error {
	return common.ErrMaskNotSimple
}

// AnalyzeMask computes the shift and field of a type mask.
// The mask must be a simple mask: a single run of contiguous 1 bits, so the
// type field can be extracted with one AND and one shift.
func AnalyzeMask(raw uint32) (Mask, error) {
	if raw == 0 {
		return Mask{}, &MaskError{Raw: raw}
	}

	field := raw
	var shift uint
	for field&1 == 0 {
		field >>= 1
		shift++
	}

	if !isSimple(field) {
		return Mask{}, &MaskError{Raw: raw}
	}
	if field > 1<<MaxFieldBits-1 {
		return Mask{}, fmt.Errorf("S_IFMT = 0x%x: %w (%d bits, at most %d)",
			raw, common.ErrMaskTooWide, bits.Len32(field), MaxFieldBits)
	}

	return Mask{Raw: raw, Shift: shift, Field: field}, nil
}

// isSimple reports whether field+1 is a power of two.
// Computed in 64 bits so an all-ones 32-bit field does not wrap.
func isSimple(field uint32) bool {
	n := uint64(field) + 1
	return n&(n-1) == 0
}

// TableSize is the number of slots needed to index every field value.
// It is at most 1<<MaxFieldBits for a Mask returned by AnalyzeMask.
func (m Mask) TableSize() int {
	return int(m.Field) + 1
}

// Position returns the table slot of a type constant.
func (m Mask) Position(value uint32) uint32 {
	return value >> m.Shift
}

// Extract isolates the type field of a mode word.
func (m Mask) Extract(mode uint32) uint32 {
	return (mode & m.Raw) >> m.Shift
}
