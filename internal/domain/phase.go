package domain

// Phase - глобальная фаза игровой сессии.
type Phase uint8

const (
	PhaseStart Phase = iota
	PhaseExploration
	PhaseNight
	PhaseDiscussion
	PhaseVoting
	PhaseExtraction
	PhaseResults
)

var phaseNames = map[Phase]string{
	PhaseStart:       "start",
	PhaseExploration: "exploration",
	PhaseNight:       "night",
	PhaseDiscussion:  "discussion",
	PhaseVoting:      "voting",
	PhaseExtraction:  "extraction",
	PhaseResults:     "results",
}

func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "unknown"
}

// Role - скрытая роль игрока в социальной части игры.
type Role uint8

const (
	RoleUnassigned Role = iota
	RoleInnocent
	RoleCorrupted
)

func (r Role) String() string {
	switch r {
	case RoleInnocent:
		return "innocent"
	case RoleCorrupted:
		return "corrupted"
	default:
		return "unassigned"
	}
}
