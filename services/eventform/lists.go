package eventform

import (
	"fmt"
	"strings"
)

// AddRule appends a rule iff the trimmed text is non-empty; whitespace-only
// input is a no-op. Returns whether the rule was added.
func (d *Draft) AddRule(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	d.Rules = append(d.Rules, trimmed)
	d.notify()
	return true
}

// RemoveRule removes the rule at the given index, reindexing the rest.
func (d *Draft) RemoveRule(index int) error {
	if index < 0 || index >= len(d.Rules) {
		return fmt.Errorf("rule index %d out of range", index)
	}
	d.Rules = append(d.Rules[:index], d.Rules[index+1:]...)
	d.notify()
	return nil
}

// AddEquipment appends an equipment entry iff the trimmed item name is
// non-empty; whitespace-only input is a no-op.
func (d *Draft) AddEquipment(item string, required bool) bool {
	trimmed := strings.TrimSpace(item)
	if trimmed == "" {
		return false
	}
	d.Equipment = append(d.Equipment, EquipmentItem{Item: trimmed, Required: required})
	d.notify()
	return true
}

// RemoveEquipment removes the equipment entry at the given index.
func (d *Draft) RemoveEquipment(index int) error {
	if index < 0 || index >= len(d.Equipment) {
		return fmt.Errorf("equipment index %d out of range", index)
	}
	d.Equipment = append(d.Equipment[:index], d.Equipment[index+1:]...)
	d.notify()
	return nil
}
