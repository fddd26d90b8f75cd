package game

import "sort"

type HandResult struct {
	Name       string
	Multiplier int64
}

// EvaluateHand classifies a five-card draw hand against the fixed payout
// table. Only pairs of jacks or better pay; lower pairs and high cards lose.
func EvaluateHand(cards [5]Card) HandResult {
	counts := map[Rank]int{}
	suits := map[Suit]int{}
	ranks := make([]int, 0, 5)
	for _, c := range cards {
		counts[c.Rank]++
		suits[c.Suit]++
		ranks = append(ranks, int(c.Rank))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	isFlush := len(suits) == 1
	isStraight := straightHand(ranks)

	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(groups)))

	switch {
	case isFlush && isStraight:
		return HandResult{Name: "straight_flush", Multiplier: 50}
	case groups[0] == 4:
		return HandResult{Name: "four_of_a_kind", Multiplier: 25}
	case groups[0] == 3 && groups[1] == 2:
		return HandResult{Name: "full_house", Multiplier: 9}
	case isFlush:
		return HandResult{Name: "flush", Multiplier: 6}
	case isStraight:
		return HandResult{Name: "straight", Multiplier: 4}
	case groups[0] == 3:
		return HandResult{Name: "three_of_a_kind", Multiplier: 3}
	case groups[0] == 2 && groups[1] == 2:
		return HandResult{Name: "two_pair", Multiplier: 2}
	case groups[0] == 2:
		for r, n := range counts {
			if n == 2 && r >= Jack {
				return HandResult{Name: "jacks_or_better", Multiplier: 1}
			}
		}
	}
	return HandResult{Name: "nothing", Multiplier: 0}
}

// straightHand reports whether the five distinct-or-not ranks form a run.
// The wheel A-2-3-4-5 counts even though the ace sorts high.
func straightHand(ranks []int) bool {
	seen := map[int]bool{}
	for _, r := range ranks {
		if seen[r] {
			return false
		}
		seen[r] = true
	}
	if ranks[0]-ranks[4] == 4 {
		return true
	}
	// Wheel: A,5,4,3,2 after descending sort
	return ranks[0] == int(Ace) && ranks[1] == 5 && ranks[4] == 2
}
