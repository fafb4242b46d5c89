package converter

import (
	"fruit_trio/internal/api/dto/game"
	"fruit_trio/internal/model"
)

func ToStateResponse(state model.SessionState, reels [model.ReelCount]model.Reel, assets model.Assets) game.StateResponse {
	out := game.StateResponse{
		Balance:     state.Balance.String(),
		Bet:         state.Bet.StringFixed(2),
		WinUsed:     state.WinUsed,
		Spinning:    state.Spinning,
		OverlayOpen: state.OverlayOpen,
		CanSpin:     state.CanSpin(),
	}
	for i, r := range reels {
		out.Reels[i].State = string(r.State)
		for row, s := range r.Cells {
			out.Reels[i].Cells[row] = game.Cell{
				Symbol: string(s),
				Image:  assets.SymbolImage(s),
			}
		}
	}
	return out
}

func ToSpinResponse(out model.SpinOutcome) game.SpinResponse {
	res := game.SpinResponse{
		ForcedWin:   out.ForcedWin,
		Bet:         out.Bet.StringFixed(2),
		Payout:      out.Payout.String(),
		Balance:     out.Balance.String(),
		Highlighted: out.Highlighted,
	}
	for i, triple := range out.Result {
		for row, s := range triple {
			res.Result[i][row] = string(s)
		}
	}
	return res
}
