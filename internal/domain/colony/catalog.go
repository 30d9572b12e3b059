package colony

import "errors"

var ErrUnknownCraft = errors.New("unknown craft")

type CraftID string

const (
	CraftScavengingTools  CraftID = "scavengingTools"
	CraftEmergencyBeacon  CraftID = "emergencyBeacon"
	CraftPrimitiveWeapons CraftID = "primitiveWeapons"
	CraftSolarCollector   CraftID = "solarCollector"
	CraftBatteryBank      CraftID = "batteryBank"
	CraftRecyclingStation CraftID = "recyclingStation"
	CraftBasicAlloys      CraftID = "basicAlloys"
)

type CraftDefinition struct {
	ID     CraftID          `json:"id"`
	Name   string           `json:"name"`
	Cost   map[Resource]int `json:"cost"`
	Prereq []CraftID        `json:"prereq"`
}

// Mutator is the slice of session state a craft effect may touch.
type Mutator interface {
	UpdateGatherRates(minerals, organics int)
	GatherRates() (minerals, organics int)
	AddSolarCollector()
	IncreaseEnergyCap(amount int)
	CompleteStage()
}

// Effect applies a permanent upgrade and returns the narrative line to log.
type Effect func(m Mutator) string

var craftDefs = []CraftDefinition{
	{ID: CraftScavengingTools, Name: "Scavenging Tools", Cost: map[Resource]int{ResourceMinerals: 10}},
	{ID: CraftEmergencyBeacon, Name: "Emergency Beacon", Cost: map[Resource]int{ResourceEnergy: 15, ResourceMinerals: 5}, Prereq: []CraftID{CraftScavengingTools}},
	{ID: CraftPrimitiveWeapons, Name: "Primitive Weapons", Cost: map[Resource]int{ResourceMinerals: 20, ResourceOrganics: 5}, Prereq: []CraftID{CraftScavengingTools}},
	{ID: CraftSolarCollector, Name: "Solar Collector", Cost: map[Resource]int{ResourceMinerals: 25}},
	{ID: CraftBatteryBank, Name: "Battery Bank", Cost: map[Resource]int{ResourceMinerals: 30, ResourceEnergy: 20}, Prereq: []CraftID{CraftSolarCollector}},
	{ID: CraftRecyclingStation, Name: "Recycling Station", Cost: map[Resource]int{ResourceEnergy: 20, ResourceMinerals: 10}, Prereq: []CraftID{CraftSolarCollector}},
	{ID: CraftBasicAlloys, Name: "Basic Alloys (Complete Stage 1)", Cost: map[Resource]int{ResourceEnergy: 50, ResourceMinerals: 50, ResourceOrganics: 25}, Prereq: []CraftID{CraftRecyclingStation, CraftBatteryBank}},
}

var craftEffects = map[CraftID]Effect{
	CraftScavengingTools: func(m Mutator) string {
		m.UpdateGatherRates(2, 2)
		return "The improvised tools speed up gathering."
	},
	CraftEmergencyBeacon: func(Mutator) string {
		return "A faint signal pulses into the sky... will anyone hear it?"
	},
	CraftPrimitiveWeapons: func(Mutator) string {
		return "Crude weapons fashioned. Wildlife encounters will be safer."
	},
	CraftSolarCollector: func(m Mutator) string {
		m.AddSolarCollector()
		return "Solar panels deployed. Passive energy begins to flow."
	},
	CraftBatteryBank: func(m Mutator) string {
		m.IncreaseEnergyCap(100)
		return "Additional batteries increase energy storage."
	},
	CraftRecyclingStation: func(m Mutator) string {
		_, organics := m.GatherRates()
		m.UpdateGatherRates(4, organics)
		return "Debris processing enabled. Minerals production boosted."
	},
	CraftBasicAlloys: func(m Mutator) string {
		m.CompleteStage()
		return "Alloys forged! Stage 1 complete – a settlement beckons..."
	},
}

// Crafts returns the catalog in display order.
func Crafts() []CraftDefinition {
	out := make([]CraftDefinition, len(craftDefs))
	copy(out, craftDefs)
	return out
}

func LookupCraft(id CraftID) (CraftDefinition, bool) {
	for _, def := range craftDefs {
		if def.ID == id {
			return def, true
		}
	}
	return CraftDefinition{}, false
}

// CanAfford fails on any cost key the ledger does not hold.
func (s *State) CanAfford(cost map[Resource]int) bool {
	for r, qty := range cost {
		have, ok := s.Amount(r)
		if !ok || have < qty {
			return false
		}
	}
	return true
}

func (s *State) HasPrereq(def CraftDefinition) bool {
	for _, id := range def.Prereq {
		if !s.Items[id] {
			return false
		}
	}
	return true
}

func (s *State) Pay(cost map[Resource]int) {
	for r, qty := range cost {
		_ = s.add(r, -qty)
	}
}

type CraftOutcome struct {
	Code    ResultCode
	Entries []Entry
}

// Craft buys def if the ledger covers its cost. Prerequisites are not checked
// here; gating them is up to the caller via HasPrereq.
func Craft(s *State, def CraftDefinition) CraftOutcome {
	if s.GameOver {
		return CraftOutcome{Code: ResultGameOver}
	}
	if !s.CanAfford(def.Cost) {
		return CraftOutcome{Code: ResultRejected, Entries: []Entry{Message(MsgResourcesLow)}}
	}
	s.Pay(def.Cost)
	s.MarkItem(def.ID)
	out := CraftOutcome{Code: ResultOK}
	if effect, ok := craftEffects[def.ID]; ok {
		if text := effect(s); text != "" {
			out.Entries = append(out.Entries, Message(text))
		}
	}
	out.Entries = append(out.Entries, CheckEvents(s)...)
	return out
}
