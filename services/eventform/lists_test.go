package eventform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRuleIgnoresWhitespace(t *testing.T) {
	d := NewDraft()
	assert.False(t, d.AddRule(""))
	assert.False(t, d.AddRule("   "))
	assert.False(t, d.AddRule("\t\n"))
	assert.Empty(t, d.Rules)

	assert.True(t, d.AddRule("  bring your own ball  "))
	assert.Equal(t, []string{"bring your own ball"}, d.Rules)
}

func TestAddEquipmentIgnoresWhitespace(t *testing.T) {
	d := NewDraft()
	assert.False(t, d.AddEquipment("   ", true))
	assert.Empty(t, d.Equipment)

	assert.True(t, d.AddEquipment("shin guards", true))
	assert.True(t, d.AddEquipment("water bottle", false))
	assert.Equal(t, []EquipmentItem{
		{Item: "shin guards", Required: true},
		{Item: "water bottle", Required: false},
	}, d.Equipment)
}

func TestListsKeepOrderAndDuplicates(t *testing.T) {
	d := NewDraft()
	d.AddRule("no slide tackles")
	d.AddRule("no slide tackles")
	assert.Equal(t, []string{"no slide tackles", "no slide tackles"}, d.Rules)
}

func TestRemoveRuleReindexes(t *testing.T) {
	d := NewDraft()
	d.AddRule("A")
	d.AddRule("B")
	d.AddRule("C")

	require.NoError(t, d.RemoveRule(0))
	assert.Equal(t, []string{"B", "C"}, d.Rules)

	assert.True(t, d.AddRule("D"))
	assert.Equal(t, []string{"B", "C", "D"}, d.Rules)

	assert.Error(t, d.RemoveRule(3))
	assert.Error(t, d.RemoveRule(-1))
}

func TestRemoveEquipmentReindexes(t *testing.T) {
	d := NewDraft()
	d.AddEquipment("A", false)
	d.AddEquipment("B", true)
	d.AddEquipment("C", false)

	require.NoError(t, d.RemoveEquipment(1))
	require.Len(t, d.Equipment, 2)
	assert.Equal(t, "A", d.Equipment[0].Item)
	assert.Equal(t, "C", d.Equipment[1].Item)
}

func TestMutationsFireRevalidateHook(t *testing.T) {
	d := NewDraft()
	calls := 0
	d.SetRevalidateHook(func(*Draft) { calls++ })

	d.AddRule("A")                 // 1
	d.AddRule("  ")                // no mutation, no call
	require.NoError(t, d.RemoveRule(0)) // 2
	d.AddEquipment("ball", true)   // 3
	require.NoError(t, d.RemoveEquipment(0)) // 4

	assert.Equal(t, 4, calls)
}
