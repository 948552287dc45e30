package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nightgrid/neonmud/internal/game"
	"github.com/nightgrid/neonmud/internal/quest"
	"github.com/nightgrid/neonmud/internal/world"
)

// findNPC matches a token against the NPCs in the room, exact name or
// role first, then substring.
func findNPC(npcs []world.NPC, token string) (world.NPC, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return world.NPC{}, false
	}
	for _, npc := range npcs {
		if token == strings.ToLower(npc.Name) || token == strings.ToLower(npc.Role) {
			return npc, true
		}
	}
	for _, npc := range npcs {
		if strings.Contains(strings.ToLower(npc.Name), token) || strings.Contains(strings.ToLower(npc.Role), token) {
			return npc, true
		}
	}
	return world.NPC{}, false
}

// offer pairs a present NPC with the contract they give out.
type offer struct {
	npc     world.NPC
	mission quest.Mission
}

// offeredHere lists the contracts offered by NPCs in the room.
func offeredHere(npcs []world.NPC) []offer {
	var out []offer
	for _, npc := range npcs {
		if m, ok := quest.ForNPC(npc.Name); ok {
			out = append(out, offer{npc: npc, mission: m})
		}
	}
	return out
}

func questStatus(p *game.Player, missionId string) game.QuestStatus {
	if entry := p.Quests[missionId]; entry != nil {
		return entry.Status
	}
	return ""
}

func (i *Interpreter) talk(p *game.Player, token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", NewUserError("Talk to whom?")
	}
	npcs := i.world.NPCs(p.CurrentRoom)
	if len(npcs) == 0 {
		return "", NewUserError("No one seems interested in talking.")
	}
	npc, ok := findNPC(npcs, token)
	if !ok {
		names := make([]string, len(npcs))
		for idx, n := range npcs {
			names[idx] = n.Name
		}
		return "", Userf("You don't see %s. NPCs here: %s", strings.ToLower(token), strings.Join(names, ", "))
	}

	if m, ok := quest.ForNPC(npc.Name); ok {
		return i.talkMission(p, npc, m), nil
	}

	switch npc.Role {
	case "Bartender", "Vendor", "Fence", "Attendant":
		return fmt.Sprintf("%s (%s): 'For sale - try: shop'", npc.Name, npc.Role), nil
	case "Receptionist", "Concierge":
		return fmt.Sprintf("%s (%s) nods politely. 'Welcome. Mind the security drones.'", npc.Name, npc.Role), nil
	case "DJ":
		return fmt.Sprintf("%s (DJ) barely hears you over the bass. Lights flare in response.", npc.Name), nil
	}
	return fmt.Sprintf("%s (%s) acknowledges you with a curt nod.", npc.Name, npc.Role), nil
}

func (i *Interpreter) talkMission(p *game.Player, npc world.NPC, m quest.Mission) string {
	hintLine := ""
	if m.Hint != "" {
		hintLine = "\nHint: " + m.Hint
	}
	switch questStatus(p, m.Id) {
	case game.QuestCompleted:
		return fmt.Sprintf("%s (%s): %s", npc.Name, npc.Role, quest.Line(m, quest.StageCompleted))
	case game.QuestAccepted:
		if p.HasItem(m.RequiredItem) {
			return fmt.Sprintf("%s (%s): %s\nTurn-in: %s - type `turnin %s`",
				npc.Name, npc.Role, quest.Line(m, quest.StageReady), m.Title, m.Id)
		}
		return fmt.Sprintf("%s (%s): %s%s\nNeed: %s.",
			npc.Name, npc.Role, quest.Line(m, quest.StageReminder), hintLine, m.RequiredItem)
	}
	return fmt.Sprintf("%s (%s): %s%s\nNeed: %s. Reward: %d cr, %d XP.\nType `accept %s` to accept.",
		npc.Name, npc.Role, quest.Line(m, quest.StageOffer), hintLine,
		m.RequiredItem, m.RewardCredits, m.RewardXP, m.Id)
}

func (i *Interpreter) accept(p *game.Player, token string) (string, error) {
	if token == "" {
		return "", NewUserError("Accept what? Try `accept <mission_id>`.")
	}
	available := offeredHere(i.world.NPCs(p.CurrentRoom))
	var npc world.NPC
	var m quest.Mission
	found := false
	for _, o := range available {
		if token == strings.ToLower(o.mission.Id) || token == strings.ToLower(o.npc.Name) {
			npc, m, found = o.npc, o.mission, true
			break
		}
	}
	if !found {
		if len(available) == 0 {
			return "", NewUserError("No missions available here. Try `talk <npc>` somewhere else.")
		}
		ids := make([]string, 0, len(available))
		for _, o := range available {
			ids = append(ids, o.mission.Id)
		}
		sort.Strings(ids)
		return "", Userf("Unknown mission. Available here: %s", strings.Join(ids, ", "))
	}

	switch questStatus(p, m.Id) {
	case game.QuestCompleted:
		return "", NewUserError("You already completed that mission.")
	case game.QuestAccepted:
		return "", NewUserError("You already accepted that mission.")
	}

	p.Quests[m.Id] = &game.QuestEntry{Status: game.QuestAccepted, Giver: npc.Name, Title: m.Title}

	hintLine := ""
	if m.Hint != "" {
		hintLine = "\nHint: " + m.Hint
	}
	return fmt.Sprintf("%s: %s\nNeed: %s.%s", npc.Name, quest.Line(m, quest.StageAccepted), m.RequiredItem, hintLine), nil
}

func (i *Interpreter) turnIn(p *game.Player, token string) (string, error) {
	if token == "" {
		return "", NewUserError("Turn in what? Try `turnin <mission_id>`.")
	}
	available := offeredHere(i.world.NPCs(p.CurrentRoom))
	var npc world.NPC
	var m quest.Mission
	found := false
	for _, o := range available {
		if token == strings.ToLower(o.mission.Id) || token == strings.ToLower(o.npc.Name) {
			npc, m, found = o.npc, o.mission, true
			break
		}
	}
	if !found {
		return "", NewUserError("No matching mission to turn in here.")
	}
	if questStatus(p, m.Id) != game.QuestAccepted {
		return "", NewUserError("You haven't accepted that mission yet.")
	}
	if !p.RemoveItem(m.RequiredItem) {
		return "", Userf("You still need: %s.", m.RequiredItem)
	}

	p.XP += m.RewardXP
	p.Credits += m.RewardCredits
	p.Quests[m.Id] = &game.QuestEntry{Status: game.QuestCompleted, Giver: npc.Name, Title: m.Title}

	i.worldEvent(p, fmt.Sprintf("Closed a contract: %s.", m.Title))
	return fmt.Sprintf("%s: %s\nMission complete: %s! (+%d cr, +%d XP)",
		npc.Name, quest.Line(m, quest.StageSuccess), m.Title, m.RewardCredits, m.RewardXP), nil
}

func (i *Interpreter) listQuests(p *game.Player) (string, error) {
	if len(p.Quests) == 0 {
		return "You have no active missions. Try `talk <npc>` to find work.", nil
	}
	ids := make([]string, 0, len(p.Quests))
	for id := range p.Quests {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var active, done []string
	for _, id := range ids {
		entry := p.Quests[id]
		line := fmt.Sprintf("%s: %s (from %s) [%s]", id, entry.Title, entry.Giver, entry.Status)
		if entry.Status == game.QuestCompleted {
			done = append(done, line)
		} else {
			active = append(active, line)
		}
	}

	var parts []string
	if len(active) > 0 {
		parts = append(parts, "Active:\n"+strings.Join(active, "\n"))
	}
	if len(done) > 0 {
		parts = append(parts, "Completed:\n"+strings.Join(done, "\n"))
	}
	return strings.Join(parts, "\n\n"), nil
}
