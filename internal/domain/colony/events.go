package colony

// CheckEvents fires each one-shot narrative trigger at most once, in a fixed
// order, and returns the entries produced. Safe to call redundantly.
func CheckEvents(s *State) []Entry {
	var out []Entry
	if s.TotalGathered >= MemoryGatherThreshold && !s.MemoryShown {
		s.MemoryShown = true
		out = append(out, Entry{Text: MsgMemoryFragment, Severity: SeverityNarrative})
	}
	if s.Items[CraftSolarCollector] && !s.AriaWarned {
		s.AriaWarned = true
		out = append(out, Entry{Text: MsgAriaWarning, Severity: SeverityNarrative})
	}
	if s.StageComplete && !s.FinishShown {
		s.FinishShown = true
		// soft win: freezes ticks and gathers without a game-over reason
		s.GameOver = true
		out = append(out, Message(MsgStageComplete))
	}
	return out
}
