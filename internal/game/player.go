package game

import (
	"strings"
	"sync"
)

// Equipment slot identifiers. Every player carries all slots; an empty
// string means nothing is equipped there.
const (
	SlotWeapon    = "weapon"
	SlotHands     = "hands"
	SlotHead      = "head"
	SlotBody      = "body"
	SlotLegs      = "legs"
	SlotFeet      = "feet"
	SlotOffhand   = "offhand"
	SlotAccessory = "accessory"
)

var EquipSlots = []string{SlotWeapon, SlotHands, SlotHead, SlotBody, SlotLegs, SlotFeet, SlotOffhand, SlotAccessory}

// ValidSlot reports whether name is a recognized equipment slot.
func ValidSlot(name string) bool {
	for _, s := range EquipSlots {
		if s == name {
			return true
		}
	}
	return false
}

// QuestStatus is the lifecycle state of a ledger entry. Absence of an
// entry means the mission is still on offer. The progression is
// monotonic: accepted -> completed, never backwards.
type QuestStatus string

const (
	QuestAccepted  QuestStatus = "accepted"
	QuestCompleted QuestStatus = "completed"
)

// QuestEntry records one mission in a player's ledger.
type QuestEntry struct {
	Status QuestStatus `json:"status"`
	Giver  string      `json:"giver"`
	Title  string      `json:"title"`
}

// Encounter is a player's single active fight. A nil Encounter means
// the player is not engaged.
type Encounter struct {
	Opponent string `json:"opponent"`
	HP       int    `json:"hp"`
}

// Stats are the player's core attributes, each clamped to [0, 100].
type Stats struct {
	HP        int `json:"hp"`
	Energy    int `json:"energy"`
	Endurance int `json:"endurance"`
	Willpower int `json:"willpower"`
	Strength  int `json:"strength"`
	Tech      int `json:"tech"`
	Speed     int `json:"speed"`
}

// Player is the full per-player record. Only the player's own session
// goroutine mutates these fields; the mu guard covers the regeneration
// worker, which is the one background writer.
type Player struct {
	mu sync.Mutex

	// Account is the stable identity key used for instance ownership
	// and persistence. Empty for unauthenticated sessions.
	Account string `json:"-"`

	// Address is the remote address, used as an identity fallback.
	Address string `json:"-"`

	// SessionId is an ephemeral last-resort identity key. It cannot
	// survive a reconnect; see Key.
	SessionId string `json:"-"`

	Name        string                 `json:"name"`
	CurrentRoom string                 `json:"current_room"`
	Inventory   []string               `json:"inventory"`
	Equipment   map[string]string      `json:"equipment"`
	Quests      map[string]*QuestEntry `json:"quests"`
	Stats       Stats                  `json:"stats"`
	Level       int                    `json:"level"`
	XP          int                    `json:"xp"`
	XPMax       int                    `json:"xp_max"`
	Credits     int                    `json:"credits"`

	Encounter *Encounter `json:"-"`

	// AttackBoost is a fractional attack bonus from consumables.
	AttackBoost float64 `json:"attack_boost,omitempty"`
	RedEyeUsed  bool    `json:"red_eye_used,omitempty"`

	// LastDefeated names the opponent a search can loot.
	LastDefeated string `json:"-"`

	// LastOffer marks a street offer from the previous look that a
	// take can claim (currently only the Red Eye vial).
	LastOffer string `json:"-"`
}

// NewPlayer creates a player with fully defaulted fields standing in
// the given room.
func NewPlayer(name, room string) *Player {
	p := &Player{
		Name:        name,
		CurrentRoom: room,
	}
	p.Normalize()
	return p
}

// Normalize fills any zero-valued field with its default. Loaded save
// records from older versions may lack fields; this keeps them usable
// instead of crashing on a nil map.
func (p *Player) Normalize() {
	if p.Inventory == nil {
		p.Inventory = []string{}
	}
	if p.Equipment == nil {
		p.Equipment = make(map[string]string, len(EquipSlots))
	}
	for _, slot := range EquipSlots {
		if _, ok := p.Equipment[slot]; !ok {
			p.Equipment[slot] = ""
		}
	}
	if p.Quests == nil {
		p.Quests = make(map[string]*QuestEntry)
	}
	if p.Stats == (Stats{}) {
		p.Stats = Stats{HP: 100, Energy: 100, Endurance: 100, Willpower: 100, Strength: 10, Tech: 10, Speed: 10}
	}
	if p.Level == 0 {
		p.Level = 1
	}
	if p.XPMax == 0 {
		p.XPMax = 100
	}
}

// Validate satisfies storage.ValidatingSpec.
func (p *Player) Validate() error {
	return nil
}

// Key returns the identity key used for instance ownership and saves:
// account name, else remote address, else the ephemeral session id.
// The last fallback is not stable across reconnects.
func (p *Player) Key() string {
	if p.Account != "" {
		return p.Account
	}
	if p.Address != "" {
		return p.Address
	}
	return p.SessionId
}

// Attack returns the player's effective attack stat: strength scaled
// by any consumable boost.
func (p *Player) Attack() int {
	atk := float64(p.Stats.Strength) * (1.0 + p.AttackBoost)
	return int(atk)
}

// InFight reports whether the player has an active encounter.
func (p *Player) InFight() bool {
	return p.Encounter != nil && p.Encounter.HP > 0
}

// HasItem reports whether the inventory holds a case-insensitive match
// for name.
func (p *Player) HasItem(name string) bool {
	return p.FindItem(name) != ""
}

// FindItem returns the inventory's stored spelling of a
// case-insensitive item name, or "" when absent.
func (p *Player) FindItem(name string) string {
	for _, it := range p.Inventory {
		if strings.EqualFold(it, name) {
			return it
		}
	}
	return ""
}

// RemoveItem removes exactly one unit of a case-insensitive item
// match. It reports whether anything was removed.
func (p *Player) RemoveItem(name string) bool {
	for i, it := range p.Inventory {
		if strings.EqualFold(it, name) {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// GainXP adds xp and applies level-ups: the level increments, the
// overflow carries into the new level, and the threshold scales by 1.2.
// It returns the number of levels gained.
func (p *Player) GainXP(xp int) int {
	p.XP += xp
	levels := 0
	for p.XP >= p.XPMax {
		p.Level++
		p.XP -= p.XPMax
		p.XPMax = int(float64(p.XPMax) * 1.2)
		levels++
	}
	return levels
}

// Regenerate heals hp, endurance, and willpower toward 100 by amount.
// Safe to call from the regeneration worker.
func (p *Player) Regenerate(amount int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Stats.HP = clampStat(p.Stats.HP + amount)
	p.Stats.Endurance = clampStat(p.Stats.Endurance + amount)
	p.Stats.Willpower = clampStat(p.Stats.Willpower + amount)
}

func clampStat(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ClampStat bounds a stat value to [0, 100].
func ClampStat(v int) int { return clampStat(v) }
