package builder

// Constructor names used to prefix errors.
const (
	MethodChain                  = "Chain"
	MethodFanOut                 = "FanOut"
	MethodRandomNetwork          = "RandomNetwork"
	MethodMarkOutbreaks          = "MarkOutbreaks"
	MethodRandomOutbreaks        = "RandomOutbreaks"
	MethodMarkObserved           = "MarkObserved"
	MethodMarkCrossContamination = "MarkCrossContamination"
	MethodMarkKillContamination  = "MarkKillContamination"
)

// Minimum sizes.
const (
	// MinChainStations is the smallest chain with a delivery.
	MinChainStations = 2
	// MinFanOutCustomers is the smallest fan-out with a delivery.
	MinFanOutCustomers = 1
	// MinRandomNetworkStations is the smallest network with a possible delivery.
	MinRandomNetworkStations = 2
)

const (
	minProbability = 0.0
	maxProbability = 1.0
)
