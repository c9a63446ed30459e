package domain

import "fmt"

type AccountType string

const (
	AccountTypeEpic AccountType = "epic"
	AccountTypePSN  AccountType = "psn"
	AccountTypeXBL  AccountType = "xbl"
)

var AccountTypes = []AccountType{AccountTypeEpic, AccountTypePSN, AccountTypeXBL}

func ParseAccountType(s string) (AccountType, error) {
	for _, t := range AccountTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown account type %q", s)
}

type TimeWindow string

const (
	TimeWindowSeason   TimeWindow = "season"
	TimeWindowLifetime TimeWindow = "lifetime"
)

type Lookup struct {
	Identifier  string
	AccountType AccountType
	IsAccountID bool
}

type StatsQuery struct {
	Lookup
	TimeWindow TimeWindow
}

type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeSummary       // ratios computed upstream
	ShapeCounter       // raw counters only
)

func (s Shape) String() string {
	switch s {
	case ShapeSummary:
		return "summary"
	case ShapeCounter:
		return "counter"
	default:
		return "unknown"
	}
}

type ModeStats struct {
	Wins          int
	Matches       int
	Kills         int
	MinutesPlayed int
	WinRate       float64 // fraction in [0,1]
	KD            float64
}

type ModeResult struct {
	Mode  string
	Stats ModeStats
}

type Summary struct {
	Shape           Shape
	Name            string
	AccountLevel    int
	BattlePassLevel int
	TimeWindow      TimeWindow // empty when the upstream has no window concept
	Overall         *ModeStats
	Modes           []ModeResult
}
