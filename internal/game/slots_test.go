package game

import "testing"

// scriptSource replays a fixed list of draw results.
type scriptSource struct {
	vals []int
	i    int
}

func (s *scriptSource) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

// identitySource makes Fisher-Yates a no-op: Intn(n) == n-1 keeps every
// element in place.
type identitySource struct{}

func (identitySource) Intn(n int) int { return n - 1 }

func TestEvaluateReels(t *testing.T) {
	tests := []struct {
		name           string
		reels          [3]Symbol
		wantName       string
		wantMultiplier int64
	}{
		{name: "triple diamond", reels: [3]Symbol{SymbolDiamond, SymbolDiamond, SymbolDiamond}, wantName: "triple_diamond", wantMultiplier: 100},
		{name: "triple seven", reels: [3]Symbol{SymbolSeven, SymbolSeven, SymbolSeven}, wantName: "triple_seven", wantMultiplier: 50},
		{name: "triple star", reels: [3]Symbol{SymbolStar, SymbolStar, SymbolStar}, wantName: "triple_star", wantMultiplier: 25},
		{name: "plain triple", reels: [3]Symbol{SymbolCherry, SymbolCherry, SymbolCherry}, wantName: "triple", wantMultiplier: 10},
		{name: "left pair", reels: [3]Symbol{SymbolCherry, SymbolCherry, SymbolLemon}, wantName: "pair", wantMultiplier: 2},
		{name: "right pair", reels: [3]Symbol{SymbolLemon, SymbolCherry, SymbolCherry}, wantName: "pair", wantMultiplier: 2},
		{name: "split symbols lose", reels: [3]Symbol{SymbolCherry, SymbolLemon, SymbolCherry}, wantName: "nothing", wantMultiplier: 0},
		{name: "all different", reels: [3]Symbol{SymbolCherry, SymbolLemon, SymbolOrange}, wantName: "nothing", wantMultiplier: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := EvaluateReels(tt.reels)
			if res.Name != tt.wantName {
				t.Fatalf("name = %q, want %q", res.Name, tt.wantName)
			}
			if res.Multiplier != tt.wantMultiplier {
				t.Fatalf("multiplier = %d, want %d", res.Multiplier, tt.wantMultiplier)
			}
		})
	}
}

func TestDrawReelsScripted(t *testing.T) {
	src := &scriptSource{vals: []int{4, 4, 4}}
	reels := DrawReels(src)
	want := [3]Symbol{SymbolDiamond, SymbolDiamond, SymbolDiamond}
	if reels != want {
		t.Fatalf("reels = %v, want %v", reels, want)
	}
}

func TestDrawReelsStayInAlphabet(t *testing.T) {
	src := NewSeededDrawSource(42)
	for i := 0; i < 100; i++ {
		reels := DrawReels(src)
		for _, s := range reels {
			found := false
			for _, known := range Symbols {
				if s == known {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("unknown symbol %q", s)
			}
		}
	}
}

func TestValidSlotsBet(t *testing.T) {
	tests := []struct {
		amount int64
		want   bool
	}{
		{10, true},
		{100, true},
		{50, true},
		{0, false},
		{5, false},
		{15, false},
		{110, false},
		{-10, false},
	}
	for _, tt := range tests {
		if got := ValidSlotsBet(tt.amount); got != tt.want {
			t.Fatalf("ValidSlotsBet(%d) = %v, want %v", tt.amount, got, tt.want)
		}
	}
}
