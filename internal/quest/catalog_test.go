package quest

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestForNPC(t *testing.T) {
	tests := map[string]struct {
		npc   string
		expId string
		found bool
	}{
		"lowercase":     {npc: "rook", expId: "rook_chip_run", found: true},
		"mixed case":    {npc: "Rook", expId: "rook_chip_run", found: true},
		"two words":     {npc: "Doc Kira", expId: "kira_stabilizer", found: true},
		"non-giver npc": {npc: "Mox", found: false},
		"unknown":       {npc: "nobody", found: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m, ok := ForNPC(tt.npc)
			testutil.AssertEqual(t, "found", ok, tt.found)
			if ok {
				testutil.AssertEqual(t, "mission id", m.Id, tt.expId)
			}
		})
	}
}

func TestById(t *testing.T) {
	m, ok := ById("cipher_red_eye")
	testutil.AssertEqual(t, "found", ok, true)
	testutil.AssertEqual(t, "required item", m.RequiredItem, "Vial of Red Eye")

	_, ok = ById("no_such_mission")
	testutil.AssertEqual(t, "missing", ok, false)
}

func TestCatalogComplete(t *testing.T) {
	for giver, m := range catalog {
		if m.Id == "" || m.Title == "" || m.RequiredItem == "" {
			t.Errorf("giver %q mission is missing core fields: %+v", giver, m)
		}
		if m.RewardXP <= 0 || m.RewardCredits <= 0 {
			t.Errorf("giver %q mission has no reward", giver)
		}
	}
}

func TestLineStages(t *testing.T) {
	m, _ := ById("rook_chip_run")

	tests := map[string]struct {
		stage    Stage
		contains string
	}{
		"offer":     {stage: StageOffer, contains: "I need a chip moved off-grid"},
		"accepted":  {stage: StageAccepted, contains: "Quiet hands"},
		"reminder":  {stage: StageReminder, contains: "bring me data"},
		"ready":     {stage: StageReady, contains: "Slide it over"},
		"success":   {stage: StageSuccess, contains: "Clean work"},
		"completed": {stage: StageCompleted, contains: "Keep moving"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			line := Line(m, tt.stage)
			if !strings.Contains(line, tt.contains) {
				t.Fatalf("stage %s line %q missing %q", tt.stage, line, tt.contains)
			}
		})
	}
}

func TestLineFallbacks(t *testing.T) {
	m := Mission{
		Id:          "test_run",
		Title:       "Test Run",
		Description: "Fetch the thing.",
	}

	offer := Line(m, StageOffer)
	if !strings.Contains(offer, "Test Run") || !strings.Contains(offer, "Fetch the thing.") {
		t.Fatalf("offer fallback should combine title and description, got %q", offer)
	}

	ready := Line(m, StageReady)
	testutil.AssertEqual(t, "ready fallback", ready, "You got it? Hand it over.")

	completed := Line(m, StageCompleted)
	testutil.AssertEqual(t, "completed fallback", completed, "We're square. Come back later.")
}
