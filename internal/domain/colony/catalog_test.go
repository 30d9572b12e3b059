package colony

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCatalogTableIsVerbatim(t *testing.T) {
	want := []CraftDefinition{
		{ID: "scavengingTools", Name: "Scavenging Tools", Cost: map[Resource]int{"minerals": 10}},
		{ID: "emergencyBeacon", Name: "Emergency Beacon", Cost: map[Resource]int{"energy": 15, "minerals": 5}, Prereq: []CraftID{"scavengingTools"}},
		{ID: "primitiveWeapons", Name: "Primitive Weapons", Cost: map[Resource]int{"minerals": 20, "organics": 5}, Prereq: []CraftID{"scavengingTools"}},
		{ID: "solarCollector", Name: "Solar Collector", Cost: map[Resource]int{"minerals": 25}},
		{ID: "batteryBank", Name: "Battery Bank", Cost: map[Resource]int{"minerals": 30, "energy": 20}, Prereq: []CraftID{"solarCollector"}},
		{ID: "recyclingStation", Name: "Recycling Station", Cost: map[Resource]int{"energy": 20, "minerals": 10}, Prereq: []CraftID{"solarCollector"}},
		{ID: "basicAlloys", Name: "Basic Alloys (Complete Stage 1)", Cost: map[Resource]int{"energy": 50, "minerals": 50, "organics": 25}, Prereq: []CraftID{"recyclingStation", "batteryBank"}},
	}
	if diff := cmp.Diff(want, Crafts()); diff != "" {
		t.Fatalf("catalog mismatch (-want +got):\n%s", diff)
	}
	for _, def := range Crafts() {
		if _, ok := craftEffects[def.ID]; !ok {
			t.Fatalf("craft %s has no effect", def.ID)
		}
	}
}

func TestCanAffordTreatsUnknownResourceAsFailure(t *testing.T) {
	s := NewState()
	s.Ledger.Minerals = 100
	if !s.CanAfford(map[Resource]int{ResourceMinerals: 100}) {
		t.Fatalf("expected exact balance to be affordable")
	}
	if s.CanAfford(map[Resource]int{ResourceMinerals: 101}) {
		t.Fatalf("expected shortfall to fail")
	}
	if s.CanAfford(map[Resource]int{"alloys": 0}) {
		t.Fatalf("expected unknown resource key to fail")
	}
}

func TestCraftScavengingToolsFromFreshState(t *testing.T) {
	s := NewState()
	s.Ledger.Minerals = 10
	def, _ := LookupCraft(CraftScavengingTools)

	out := Craft(&s, def)
	if out.Code != ResultOK {
		t.Fatalf("expected OK, got %s", out.Code)
	}
	if !s.Items[CraftScavengingTools] {
		t.Fatalf("expected scavengingTools owned")
	}
	if s.Ledger.Minerals != 0 {
		t.Fatalf("expected minerals 0, got %d", s.Ledger.Minerals)
	}
	if s.Ledger.GatherMinerals != 2 || s.Ledger.GatherOrganics != 2 {
		t.Fatalf("expected rates 2/2, got %d/%d", s.Ledger.GatherMinerals, s.Ledger.GatherOrganics)
	}
	if len(out.Entries) != 1 {
		t.Fatalf("expected exactly one message, got %+v", out.Entries)
	}
}

func TestCraftRejectionLeavesLedgerUnchanged(t *testing.T) {
	for _, def := range Crafts() {
		s := NewState()
		s.Ledger.Energy = 50
		s.Ledger.Minerals = 50
		s.Ledger.Organics = 25
		first := Craft(&s, def)
		if first.Code != ResultOK {
			t.Fatalf("%s: expected first craft to succeed, got %s", def.ID, first.Code)
		}
		if s.GameOver {
			continue
		}
		// drain whatever the first purchase left so the repeat is unaffordable
		for r := range def.Cost {
			_ = s.add(r, -1000)
		}
		before := s.Clone()
		second := Craft(&s, def)
		if second.Code != ResultRejected {
			t.Fatalf("%s: expected rejection, got %s", def.ID, second.Code)
		}
		if diff := cmp.Diff(before, s); diff != "" {
			t.Fatalf("%s: rejected craft changed state (-before +after):\n%s", def.ID, diff)
		}
		if len(second.Entries) != 1 || second.Entries[0].Text != MsgResourcesLow {
			t.Fatalf("%s: expected resources low message, got %+v", def.ID, second.Entries)
		}
	}
}

func TestCraftDoesNotEnforcePrerequisites(t *testing.T) {
	s := NewState()
	s.Ledger.Energy = 20
	s.Ledger.Minerals = 30
	def, _ := LookupCraft(CraftBatteryBank)
	if s.HasPrereq(def) {
		t.Fatalf("expected battery bank to be locked without solar collector")
	}
	out := Craft(&s, def)
	if out.Code != ResultOK {
		t.Fatalf("expected affordable locked craft to succeed, got %s", out.Code)
	}
	if s.Ledger.EnergyCap != 150 {
		t.Fatalf("expected cap 150, got %d", s.Ledger.EnergyCap)
	}
}

func TestHasPrereqRequiresAllIDs(t *testing.T) {
	s := NewState()
	def, _ := LookupCraft(CraftBasicAlloys)
	s.MarkItem(CraftRecyclingStation)
	if s.HasPrereq(def) {
		t.Fatalf("expected missing battery bank to lock basic alloys")
	}
	s.MarkItem(CraftBatteryBank)
	if !s.HasPrereq(def) {
		t.Fatalf("expected basic alloys unlocked")
	}
}

func TestCraftEffects(t *testing.T) {
	s := NewState()
	s.Ledger.Energy = 50
	s.Ledger.Minerals = 500
	s.Ledger.Organics = 100
	s.UpdateGatherRates(2, 3)

	for _, id := range []CraftID{CraftSolarCollector, CraftSolarCollector, CraftRecyclingStation} {
		def, _ := LookupCraft(id)
		if out := Craft(&s, def); out.Code != ResultOK {
			t.Fatalf("%s: expected OK, got %s", id, out.Code)
		}
		s.Ledger.Energy = 50
	}
	if s.Built.SolarCollectors != 2 {
		t.Fatalf("expected two collectors, got %d", s.Built.SolarCollectors)
	}
	if s.Ledger.GatherMinerals != 4 || s.Ledger.GatherOrganics != 3 {
		t.Fatalf("expected rates 4/3, got %d/%d", s.Ledger.GatherMinerals, s.Ledger.GatherOrganics)
	}
}

func TestCraftIsNoOpWhenGameOver(t *testing.T) {
	s := NewState()
	s.Ledger.Minerals = 100
	s.GameOver = true
	def, _ := LookupCraft(CraftSolarCollector)
	out := Craft(&s, def)
	if out.Code != ResultGameOver || len(out.Entries) != 0 {
		t.Fatalf("expected silent game over no-op, got %+v", out)
	}
	if s.Ledger.Minerals != 100 || s.Items[CraftSolarCollector] {
		t.Fatalf("expected no state change")
	}
}
