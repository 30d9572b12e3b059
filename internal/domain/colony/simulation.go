package colony

import (
	"errors"
	"fmt"
)

var ErrUnknownResource = errors.New("unknown resource")

type GatherOptions struct {
	// Draw returns a uniform value in [0,1) for the wildlife roll.
	Draw func() float64
	// AdvanceDay also moves the day counter on every counted gather.
	AdvanceDay bool
}

type GatherOutcome struct {
	Code    ResultCode
	Counted bool
	Entries []Entry
}

// Gather resolves one manual gather action.
func Gather(s *State, r Resource, opts GatherOptions) (GatherOutcome, error) {
	if _, ok := ParseResource(string(r)); !ok {
		return GatherOutcome{}, fmt.Errorf("%w: %q", ErrUnknownResource, r)
	}
	if s.GameOver {
		return GatherOutcome{Code: ResultGameOver}, nil
	}

	out := GatherOutcome{Code: ResultOK}
	if r == ResourceEnergy {
		if s.EnergyFull() {
			return GatherOutcome{Code: ResultRejected, Entries: []Entry{Message(MsgEnergyFull)}}, nil
		}
		s.AddEnergy(EnergyPerGather)
	} else if entry, hit := resolveWildlife(s, opts.Draw); hit {
		out.Code = ResultEncounter
		out.Entries = append(out.Entries, entry)
	} else {
		minerals, organics := s.GatherRates()
		amount := minerals
		if r == ResourceOrganics {
			amount = organics
		}
		if err := s.Yield(r, amount); err != nil {
			return GatherOutcome{}, err
		}
	}

	s.TotalGathered++
	if opts.AdvanceDay {
		s.IncrementDay()
	}
	out.Counted = true
	out.Entries = append(out.Entries, CheckEvents(s)...)
	return out, nil
}

func resolveWildlife(s *State, draw func() float64) (Entry, bool) {
	if draw == nil || draw() >= WildlifeEncounterChance {
		return Entry{}, false
	}
	if s.HasItem(CraftPrimitiveWeapons) {
		return Message(MsgPredatorRepelled), true
	}
	stolen := s.StealOrganics(MaxOrganicsStolen)
	return Entry{
		Text:     fmt.Sprintf("A predator steals %d food from your stores!", stolen),
		Severity: SeverityDanger,
	}, true
}

// TicksFrozen reports whether periodic ticks must skip this round.
func (s *State) TicksFrozen() bool {
	return s.GameOver || s.Paused
}

// SolarTick returns the energy produced by built collectors.
func SolarTick(s *State) int {
	if s.Built.SolarCollectors <= 0 {
		return 0
	}
	produced := EnergyPerCollector * s.Built.SolarCollectors
	s.AddEnergy(produced)
	return produced
}

// DrainTick reports true when energy went below zero.
func DrainTick(s *State) bool {
	s.ConsumeEnergy(DrainPerTick)
	return s.Ledger.Energy < 0
}

// HungerTick feeds the survivor for a day; it reports true when there was
// nothing to eat.
func HungerTick(s *State) bool {
	if s.Ledger.Organics <= 0 {
		return true
	}
	s.ConsumeFood(FoodPerHungerTick)
	s.IncrementDay()
	return false
}

// MarkGameOver is one-way; it returns false if the session was already over.
func (s *State) MarkGameOver(reason string) bool {
	if s.GameOver {
		return false
	}
	s.GameOver = true
	s.GameOverReason = reason
	return true
}
