package httpapi

import "github.com/nabilervatra/minipokersolver/internal/holdem"

// stateDTO is the bit-exact JSON shape for holdem.State.
type stateDTO struct {
	Street       int        `json:"street"`
	StreetName   string     `json:"street_name"`
	Pot          int        `json:"pot"`
	Stacks       [2]int     `json:"stacks"`
	ToAct        int        `json:"to_act"`
	BetToCall    int        `json:"bet_to_call"`
	LastBetSize  int        `json:"last_bet_size"`
	CommittedTotal [2]int   `json:"committed_total"`
	HoleCards    [2][2]int  `json:"hole_cards"`
	Board        []int      `json:"board"`
	History      []actionDTO `json:"history"`
	IsTerminal   bool       `json:"is_terminal"`
}

type actionDTO struct {
	Player       int    `json:"player"`
	Type         string `json:"type"`
	Amount       int    `json:"amount"`
	ToCallBefore int    `json:"to_call_before"`
	Street       int    `json:"street"`
}

type terminalDTO struct {
	IsTerminal bool   `json:"is_terminal"`
	Winner     int    `json:"winner"`
	ChipDelta  [2]int `json:"chip_delta"`
	Reason     string `json:"reason"`
}

func toStateDTO(s *holdem.State) stateDTO {
	board := make([]int, len(s.Board))
	for i, c := range s.Board {
		board[i] = int(c)
	}
	history := make([]actionDTO, len(s.History))
	for i, a := range s.History {
		history[i] = toActionDTO(a)
	}
	return stateDTO{
		Street:         int(s.Street),
		StreetName:     s.Street.String(),
		Pot:            s.Pot,
		Stacks:         s.Stacks,
		ToAct:          s.ToAct,
		BetToCall:      s.BetToCall,
		LastBetSize:    s.LastBetSize,
		CommittedTotal: s.CommittedTotal,
		HoleCards: [2][2]int{
			{int(s.HoleCards[0][0]), int(s.HoleCards[0][1])},
			{int(s.HoleCards[1][0]), int(s.HoleCards[1][1])},
		},
		Board:      board,
		History:    history,
		IsTerminal: s.Street == holdem.Terminal,
	}
}

func toActionDTO(a holdem.Action) actionDTO {
	return actionDTO{
		Player:       a.Player,
		Type:         a.Type.String(),
		Amount:       a.Amount,
		ToCallBefore: a.ToCallBefore,
		Street:       int(a.Street),
	}
}

func toActionDTOs(actions []holdem.Action) []actionDTO {
	out := make([]actionDTO, len(actions))
	for i, a := range actions {
		out[i] = toActionDTO(a)
	}
	return out
}

func toTerminalDTO(r holdem.TerminalResult) terminalDTO {
	return terminalDTO{
		IsTerminal: r.IsTerminal,
		Winner:     r.Winner,
		ChipDelta:  r.ChipDelta,
		Reason:     r.Reason,
	}
}
