package game

// EquipChange describes an equip or unequip for relay to a UI.
type EquipChange struct {
	Action string `json:"action"` // "equip" or "unequip"
	Slot   string `json:"slot"`
	Item   string `json:"item"`
}

// EventSink receives side-effect signals from command handling for
// relay to the external layer. Implementations must tolerate being
// called from any session goroutine. A nil sink is valid everywhere;
// callers check before publishing.
type EventSink interface {
	// WorldEvent records an ad hoc event line for the player's
	// timeline (e.g. "Cleared a hard alley boss.").
	WorldEvent(playerKey, text string)

	// EquipEvent records an equipment change.
	EquipEvent(playerKey string, change EquipChange)
}
