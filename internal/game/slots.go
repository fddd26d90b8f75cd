package game

// Symbol is one slot reel face.
type Symbol string

const (
	SymbolCherry  Symbol = "cherry"
	SymbolLemon   Symbol = "lemon"
	SymbolOrange  Symbol = "orange"
	SymbolGrape   Symbol = "grape"
	SymbolDiamond Symbol = "diamond"
	SymbolSeven   Symbol = "seven"
	SymbolStar    Symbol = "star"
)

// Symbols is the fixed reel alphabet; each reel draws uniformly from it.
var Symbols = []Symbol{SymbolCherry, SymbolLemon, SymbolOrange, SymbolGrape, SymbolDiamond, SymbolSeven, SymbolStar}

// Slots wager bounds: player-chosen within [10, min(100, balance)] in steps
// of 10. The balance cap is enforced by the debit itself.
const (
	SlotsMinBet  int64 = 10
	SlotsMaxBet  int64 = 100
	SlotsBetStep int64 = 10
)

// DrawReels draws three independent symbols.
func DrawReels(src DrawSource) [3]Symbol {
	var reels [3]Symbol
	for i := range reels {
		reels[i] = Symbols[src.Intn(len(Symbols))]
	}
	return reels
}

type SlotsResult struct {
	Name       string
	Multiplier int64
}

// EvaluateReels classifies a reel triple. Three equal symbols pay by symbol
// tier; a single adjacent pair (reel0==reel1 or reel1==reel2) pays x2;
// anything else pays nothing.
func EvaluateReels(reels [3]Symbol) SlotsResult {
	if reels[0] == reels[1] && reels[1] == reels[2] {
		switch reels[0] {
		case SymbolDiamond:
			return SlotsResult{Name: "triple_diamond", Multiplier: 100}
		case SymbolSeven:
			return SlotsResult{Name: "triple_seven", Multiplier: 50}
		case SymbolStar:
			return SlotsResult{Name: "triple_star", Multiplier: 25}
		default:
			return SlotsResult{Name: "triple", Multiplier: 10}
		}
	}
	if reels[0] == reels[1] || reels[1] == reels[2] {
		return SlotsResult{Name: "pair", Multiplier: 2}
	}
	return SlotsResult{Name: "nothing", Multiplier: 0}
}

// ValidSlotsBet reports whether the player-chosen wager is inside the fixed
// bounds and step. The affordability check belongs to the balance store.
func ValidSlotsBet(amount int64) bool {
	return amount >= SlotsMinBet && amount <= SlotsMaxBet && amount%SlotsBetStep == 0
}
