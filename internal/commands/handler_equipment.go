package commands

import (
	"fmt"

	"github.com/nightgrid/neonmud/internal/game"
)

// slotForItem maps equippable items to their slot. Consumables and
// mission items map to "" and cannot be worn.
var slotForItem = map[string]string{
	"Neon Blade": game.SlotWeapon,
	"Katana":     game.SlotWeapon,
	"Cyberdeck":  game.SlotHands,
	"Armor Vest": game.SlotBody,
	"Holo Cloak": game.SlotAccessory,
}

func (i *Interpreter) equip(p *game.Player, item string) (string, error) {
	if item == "" {
		return "", NewUserError("Specify an item to equip.")
	}
	held := p.FindItem(item)
	if held == "" {
		return "", Userf("You don't have %s.", item)
	}
	slot := slotForItem[held]
	if slot == "" {
		return "", Userf("%s cannot be equipped.", held)
	}

	prev := p.Equipment[slot]
	p.Equipment[slot] = held
	p.RemoveItem(held)
	if prev != "" {
		p.Inventory = append(p.Inventory, prev)
		applyEquipDelta(p, slot, prev, -1)
	}
	applyEquipDelta(p, slot, held, +1)

	i.equipEvent(p, game.EquipChange{Action: "equip", Slot: slot, Item: held})
	return fmt.Sprintf("You equip %s on your %s.", held, slot), nil
}

func (i *Interpreter) unequip(p *game.Player, slot string) (string, error) {
	if slot == "" {
		return "", NewUserError("Specify a slot to unequip (e.g., weapon).")
	}
	if !game.ValidSlot(slot) {
		return "", NewUserError("Invalid slot. Try weapon, hands, head, body, legs, feet, offhand, accessory.")
	}
	item := p.Equipment[slot]
	if item == "" {
		return "", Userf("Nothing equipped on %s.", slot)
	}

	applyEquipDelta(p, slot, item, -1)
	p.Inventory = append(p.Inventory, item)
	p.Equipment[slot] = ""

	i.equipEvent(p, game.EquipChange{Action: "unequip", Slot: slot, Item: item})
	return fmt.Sprintf("You unequip %s from your %s.", item, slot), nil
}

// applyEquipDelta applies the small stat bonus some gear carries.
// sign +1 applies it, -1 reverses it with a floor of 1.
func applyEquipDelta(p *game.Player, slot, item string, sign int) {
	switch {
	case slot == game.SlotWeapon && item == "Neon Blade":
		p.Stats.Strength = max(1, p.Stats.Strength+2*sign)
	case slot == game.SlotHands && item == "Cyberdeck":
		p.Stats.Tech = max(1, p.Stats.Tech+2*sign)
	}
}
