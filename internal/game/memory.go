package game

import "errors"

// MemoryBet is the fixed wager for one memory board.
const MemoryBet int64 = 20

const memoryPairs = 8

// MemorySymbols are the eight card kinds; each appears exactly twice on a
// 16-cell board.
var MemorySymbols = []Symbol{
	SymbolCherry, SymbolLemon, SymbolOrange, SymbolGrape,
	SymbolDiamond, SymbolSeven, SymbolStar, "bell",
}

var (
	ErrInvalidCell  = errors.New("invalid_cell")
	ErrCellRevealed = errors.New("cell_revealed")
	ErrBoardDone    = errors.New("board_done")
)

type memoryCell struct {
	symbol  Symbol
	matched bool
}

// MemoryBoard is one in-flight memory round: 8 symbol pairs in shuffled
// order, flipped two at a time. A mismatched pair stays face-up until the
// next flip, mirroring the reveal delay the presentation layer shows.
type MemoryBoard struct {
	cells   []memoryCell
	open    []int
	moves   int
	matched int
}

func NewMemoryBoard(src DrawSource) *MemoryBoard {
	cells := make([]memoryCell, 0, 2*memoryPairs)
	for _, s := range MemorySymbols {
		cells = append(cells, memoryCell{symbol: s}, memoryCell{symbol: s})
	}
	shuffle(src, len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})
	return &MemoryBoard{cells: cells}
}

type FlipResult struct {
	Index        int
	Symbol       Symbol
	PairResolved bool
	PairMatched  bool
	Moves        int
	Completed    bool
}

// Flip reveals one cell. The second flip of a pair resolves it: a match
// stays revealed permanently, a mismatch reverts before the next flip.
func (b *MemoryBoard) Flip(i int) (FlipResult, error) {
	if b.Completed() {
		return FlipResult{}, ErrBoardDone
	}
	if i < 0 || i >= len(b.cells) {
		return FlipResult{}, ErrInvalidCell
	}
	if len(b.open) == 2 {
		// previous mismatched pair flips back now
		b.open = b.open[:0]
	}
	if b.cells[i].matched {
		return FlipResult{}, ErrCellRevealed
	}
	for _, o := range b.open {
		if o == i {
			return FlipResult{}, ErrCellRevealed
		}
	}
	b.open = append(b.open, i)
	res := FlipResult{Index: i, Symbol: b.cells[i].symbol}
	if len(b.open) == 2 {
		b.moves++
		res.PairResolved = true
		a, c := b.open[0], b.open[1]
		if b.cells[a].symbol == b.cells[c].symbol {
			b.cells[a].matched = true
			b.cells[c].matched = true
			b.matched++
			b.open = b.open[:0]
			res.PairMatched = true
		}
	}
	res.Moves = b.moves
	res.Completed = b.Completed()
	return res, nil
}

func (b *MemoryBoard) Moves() int { return b.moves }

func (b *MemoryBoard) Completed() bool { return b.matched == memoryPairs }

// Revealed lists the currently face-up cells: matched pairs plus any
// unresolved flips.
func (b *MemoryBoard) Revealed() map[int]Symbol {
	out := make(map[int]Symbol)
	for i, c := range b.cells {
		if c.matched {
			out[i] = c.symbol
		}
	}
	for _, o := range b.open {
		out[o] = b.cells[o].symbol
	}
	return out
}

func (b *MemoryBoard) Size() int { return len(b.cells) }

// MemoryPayout pays triple the wager degraded by 5 per move, floored at
// returning the wager once the board is completed.
func MemoryPayout(wager int64, moves int) int64 {
	amount := 3*wager - 5*int64(moves)
	if amount < wager {
		return wager
	}
	return amount
}
