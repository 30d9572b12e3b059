package colony

type Resource string

const (
	ResourceEnergy   Resource = "energy"
	ResourceMinerals Resource = "minerals"
	ResourceOrganics Resource = "organics"
)

func ParseResource(raw string) (Resource, bool) {
	switch Resource(raw) {
	case ResourceEnergy, ResourceMinerals, ResourceOrganics:
		return Resource(raw), true
	default:
		return "", false
	}
}

type Ledger struct {
	Energy         int `json:"energy"`
	EnergyCap      int `json:"energy_cap"`
	Minerals       int `json:"minerals"`
	Organics       int `json:"organics"`
	GatherMinerals int `json:"gather_minerals"`
	GatherOrganics int `json:"gather_organics"`
}

type Built struct {
	SolarCollectors int `json:"solar_collectors"`
}

// State is the whole in-memory playthrough. Items is append-only.
type State struct {
	Ledger         Ledger           `json:"ledger"`
	Items          map[CraftID]bool `json:"items"`
	Built          Built            `json:"built"`
	TotalGathered  int              `json:"total_gathered"`
	Days           int              `json:"days"`
	GameOver       bool             `json:"game_over"`
	GameOverReason string           `json:"game_over_reason,omitempty"`
	StageComplete  bool             `json:"stage_complete"`
	MemoryShown    bool             `json:"memory_shown"`
	AriaWarned     bool             `json:"aria_warned"`
	FinishShown    bool             `json:"finish_shown"`
	Paused         bool             `json:"paused"`
}

type Severity string

const (
	SeverityDefault   Severity = "msg"
	SeverityDanger    Severity = "danger"
	SeverityNarrative Severity = "narrative"
	SeverityGameOver  Severity = "gameover"
)

// Entry is one line of the player-facing message log.
type Entry struct {
	Text     string   `json:"text"`
	Severity Severity `json:"severity"`
}

func Message(text string) Entry {
	return Entry{Text: text, Severity: SeverityDefault}
}

type ResultCode string

const (
	ResultOK          ResultCode = "OK"
	ResultRejected    ResultCode = "REJECTED"
	ResultEncounter   ResultCode = "ENCOUNTER"
	ResultGameOver    ResultCode = "GAME_OVER"
	ResultTickSkipped ResultCode = "TICK_SKIPPED"
)
