package ftype

import (
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genftype/internal/common"
)

func posixMask(t *testing.T) Mask {
	t.Helper()
	m, err := AnalyzeMask(0xF000)
	require.NoError(t, err)
	return m
}

func TestNewTable(t *testing.T) {
	t.Parallel()

	table := NewTable(16)
	assert.Equal(t, 16, table.Size())
	for i, c := range table {
		assert.Equal(t, byte(Unknown), c, "slot %d", i)
	}
}

func TestTableAssign(t *testing.T) {
	t.Parallel()

	t.Run("empty slot", func(t *testing.T) {
		t.Parallel()
		table := NewTable(4)
		require.NoError(t, table.Assign(2, 'd'))
		assert.Equal(t, "??d?", table.String())
	})

	t.Run("taken slot keeps first mnemonic", func(t *testing.T) {
		t.Parallel()
		table := NewTable(4)
		require.NoError(t, table.Assign(2, 'd'))

		err := table.Assign(2, 'x')
		var c *Collision
		require.True(t, errors.As(err, &c))
		assert.Equal(t, uint32(2), c.Position)
		assert.Equal(t, byte('x'), c.Incoming)
		assert.Equal(t, byte('d'), c.Existing)
		assert.Equal(t, "collision, position 2, 'x' vs 'd'", c.Error())
		assert.Equal(t, "??d?", table.String())
	})

	t.Run("out of range", func(t *testing.T) {
		t.Parallel()
		table := NewTable(4)
		err := table.Assign(4, 'd')
		assert.True(t, errors.Is(err, common.ErrPositionOutOfRange))
		assert.Equal(t, "????", table.String())
	})
}

func TestBuildPosixScenario(t *testing.T) {
	m := posixMask(t)
	assignments := Assignments(map[string]uint32{
		"S_IFREG": 0x8000,
		"S_IFDIR": 0x4000,
		"S_IFLNK": 0xA000,
	})

	table, collisions, err := Build(m, assignments, nil)
	require.NoError(t, err)
	assert.Empty(t, collisions)

	assert.Equal(t, uint(12), m.Shift)
	require.Equal(t, 16, table.Size())
	for i, c := range table {
		switch i {
		case 8:
			assert.Equal(t, byte('-'), c)
		case 4:
			assert.Equal(t, byte('d'), c)
		case 10:
			assert.Equal(t, byte('l'), c)
		default:
			assert.Equal(t, byte(Unknown), c, "slot %d", i)
		}
	}
	assert.Equal(t, "????d???-?l?????", table.String())
}

func TestBuildFullPosix(t *testing.T) {
	m := posixMask(t)
	assignments := Assignments(map[string]uint32{
		"S_IFIFO":  0x1000,
		"S_IFCHR":  0x2000,
		"S_IFDIR":  0x4000,
		"S_IFBLK":  0x6000,
		"S_IFREG":  0x8000,
		"S_IFLNK":  0xA000,
		"S_IFSOCK": 0xC000,
	})

	table, collisions, err := Build(m, assignments, nil)
	require.NoError(t, err)
	assert.Empty(t, collisions)
	assert.Equal(t, "?pc?d?b?-?l?s???", table.String())

	assert.Equal(t, byte('d'), table.Lookup(m, 0o40755))
	assert.Equal(t, byte('-'), table.Lookup(m, 0o100644))
	assert.Equal(t, byte('s'), table.Lookup(m, 0o140777))
	assert.Equal(t, byte(Unknown), table.Lookup(m, 0o170000))
}

func TestBuildCollision(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	m := posixMask(t)
	// S_IFWHT and S_IFPORT share 0xE000; S_IFPORT is checked first.
	assignments := Assignments(map[string]uint32{
		"S_IFDIR":  0x4000,
		"S_IFPORT": 0xE000,
		"S_IFWHT":  0xE000,
	})

	table, collisions, err := Build(m, assignments, nil)
	require.NoError(t, err)
	assert.Equal(t, byte('E'), table[0xE])
	assert.Equal(t, byte('d'), table[0x4])

	require.Len(t, collisions, 1)
	assert.Equal(t, Collision{Position: 0xE, Incoming: 'w', Existing: 'E', Name: "S_IFWHT"}, collisions[0])

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "collision, position 14, 'w' vs 'E'", entry.Message)
	assert.Equal(t, "S_IFWHT", entry.Data["constant"])
}

func TestBuildCollisionFollowsPriorityNotMapOrder(t *testing.T) {
	m := posixMask(t)
	// Listed in reverse priority; the table still honours KnownTypes.
	assignments := []Assignment{
		{TypeSpec: mustType(t, "S_IFREG"), Value: 0x8000},
		{TypeSpec: mustType(t, "S_IFDIR"), Value: 0x8000},
	}
	table, collisions, err := Build(m, assignments, nil)
	require.NoError(t, err)
	assert.Equal(t, byte('-'), table[8], "explicit slice order decides")
	require.Len(t, collisions, 1)

	ordered := Assignments(map[string]uint32{"S_IFREG": 0x8000, "S_IFDIR": 0x8000})
	table, collisions, err = Build(m, ordered, nil)
	require.NoError(t, err)
	assert.Equal(t, byte('d'), table[8], "S_IFDIR precedes S_IFREG")
	require.Len(t, collisions, 1)
	assert.Equal(t, "S_IFREG", collisions[0].Name)
}

func TestBuildOutOfRange(t *testing.T) {
	m := posixMask(t)
	assignments := Assignments(map[string]uint32{"S_IFDIR": 0x14000})

	table, _, err := Build(m, assignments, nil)
	require.Error(t, err)
	assert.Nil(t, table)
	assert.True(t, errors.Is(err, common.ErrPositionOutOfRange))
	assert.True(t, strings.HasPrefix(err.Error(), "S_IFDIR (0x14000)"))
}

func TestBuildWithTranslation(t *testing.T) {
	m := posixMask(t)
	assignments := Assignments(map[string]uint32{
		"S_IFREG": 0x8000,
		"S_IFDIR": 0x4000,
		"S_IFLNK": 0xA000,
	})
	rules, err := ParseRules("dD")
	require.NoError(t, err)

	table, _, err := Build(m, assignments, rules)
	require.NoError(t, err)
	assert.Equal(t, "????D???-?l?????", table.String())
}

func TestKnownTypesOrder(t *testing.T) {
	t.Parallel()

	names := make([]string, 0, len(KnownTypes))
	mnemonics := make([]byte, 0, len(KnownTypes))
	for _, spec := range KnownTypes {
		names = append(names, spec.Name)
		mnemonics = append(mnemonics, spec.Mnemonic)
	}
	assert.Equal(t, []string{
		"S_IFIFO", "S_IFCHR", "S_IFDIR", "S_IFBLK", "S_IFREG", "S_IFLNK",
		"S_IFSOCK", "S_IFDOOR", "S_IFPORT", "S_IFWHT", "S_IFNWK",
	}, names)
	assert.Equal(t, "pcdb-lsDEwn", string(mnemonics))
}

func TestAssignmentsSkipsUndefined(t *testing.T) {
	t.Parallel()

	got := Assignments(map[string]uint32{"S_IFSOCK": 0xC000, "S_IFIFO": 0x1000})
	require.Len(t, got, 2)
	assert.Equal(t, "S_IFIFO", got[0].Name)
	assert.Equal(t, "S_IFSOCK", got[1].Name)
	assert.Empty(t, Assignments(nil))
}

func mustType(t *testing.T, name string) TypeSpec {
	t.Helper()
	spec, ok := LookupType(name)
	require.True(t, ok, name)
	return spec
}
