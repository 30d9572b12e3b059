package colony

import "fmt"

func NewState() State {
	return State{
		Ledger: Ledger{
			Energy:         InitialEnergy,
			EnergyCap:      InitialEnergyCap,
			Minerals:       InitialMinerals,
			Organics:       InitialOrganics,
			GatherMinerals: InitialGatherMinerals,
			GatherOrganics: InitialGatherOrganics,
		},
		Items: map[CraftID]bool{},
		Days:  StartDay,
	}
}

// AddEnergy clamps to the cap from above only.
func (s *State) AddEnergy(amount int) {
	s.Ledger.Energy = min(s.Ledger.EnergyCap, s.Ledger.Energy+amount)
}

// ConsumeEnergy has no floor so the drain tick can observe a negative value.
func (s *State) ConsumeEnergy(amount int) {
	s.Ledger.Energy -= amount
}

func (s *State) ConsumeFood(amount int) {
	s.Ledger.Organics -= amount
}

func (s *State) IncrementDay() {
	s.Days++
}

func (s *State) EnergyFull() bool {
	return s.Ledger.Energy >= s.Ledger.EnergyCap
}

func (s *State) UpdateGatherRates(minerals, organics int) {
	s.Ledger.GatherMinerals = minerals
	s.Ledger.GatherOrganics = organics
}

func (s *State) GatherRates() (minerals, organics int) {
	return s.Ledger.GatherMinerals, s.Ledger.GatherOrganics
}

func (s *State) AddSolarCollector() {
	s.Built.SolarCollectors++
}

func (s *State) IncreaseEnergyCap(amount int) {
	s.Ledger.EnergyCap += amount
}

func (s *State) CompleteStage() {
	s.StageComplete = true
}

func (s *State) HasItem(id CraftID) bool {
	return s.Items[id]
}

func (s *State) MarkItem(id CraftID) {
	if s.Items == nil {
		s.Items = map[CraftID]bool{}
	}
	s.Items[id] = true
}

// Amount reports the ledger balance of a resource. ok is false for names the
// ledger does not hold.
func (s *State) Amount(r Resource) (int, bool) {
	switch r {
	case ResourceEnergy:
		return s.Ledger.Energy, true
	case ResourceMinerals:
		return s.Ledger.Minerals, true
	case ResourceOrganics:
		return s.Ledger.Organics, true
	default:
		return 0, false
	}
}

func (s *State) add(r Resource, delta int) error {
	switch r {
	case ResourceEnergy:
		s.Ledger.Energy += delta
	case ResourceMinerals:
		s.Ledger.Minerals += delta
	case ResourceOrganics:
		s.Ledger.Organics += delta
	default:
		return fmt.Errorf("unknown resource %q", r)
	}
	return nil
}

// Yield adds a gather yield to minerals or organics without clamping.
func (s *State) Yield(r Resource, amount int) error {
	if r == ResourceEnergy {
		return fmt.Errorf("energy is not yielded by gather rate")
	}
	return s.add(r, amount)
}

// StealOrganics removes up to limit organics and reports how many were taken.
func (s *State) StealOrganics(limit int) int {
	stolen := min(s.Ledger.Organics, limit)
	if stolen < 0 {
		stolen = 0
	}
	s.Ledger.Organics -= stolen
	return stolen
}

func (s State) Clone() State {
	out := s
	out.Items = make(map[CraftID]bool, len(s.Items))
	for k, v := range s.Items {
		out.Items[k] = v
	}
	return out
}
