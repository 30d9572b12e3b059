package colony

const (
	InitialEnergy         = 10
	InitialEnergyCap      = 50
	InitialMinerals       = 0
	InitialOrganics       = 3
	InitialGatherMinerals = 1
	InitialGatherOrganics = 1
	StartDay              = 1

	SolarTickUnits  = 1000
	DrainTickUnits  = 5000
	HungerTickUnits = 10000

	WildlifeEncounterChance = 0.05
	MaxOrganicsStolen       = 3
	MemoryGatherThreshold   = 50

	EnergyPerCollector = 2
	DrainPerTick       = 1
	FoodPerHungerTick  = 1
	EnergyPerGather    = 1
)

const (
	MsgEnergyDepleted   = "Life‑support failed after energy depletion."
	MsgStarved          = "You starved to death."
	MsgMemoryFragment   = "Memory Fragment: A flash – the Athena breaking apart above the planet..."
	MsgAriaWarning      = `ARIA: "Unexplained energy signature detected nearby..."`
	MsgStageComplete    = "Congratulations. You survived the wilds and laid the foundations for a future colony!"
	MsgResourcesLow     = "Not enough resources"
	MsgEnergyFull       = "Energy stores full."
	MsgPredatorRepelled = "A predator lunges, but you drive it off with your weapons."
	MsgWelcome          = "Gather food (Organics) and watch out for predators."
)
