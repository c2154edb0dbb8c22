package layout

import (
	"sort"
	"testing"
)

func checkPlan(t *testing.T, plan []int, total int) {
	t.Helper()
	if len(plan) < 2 {
		t.Fatalf("plan too short: %v", plan)
	}
	if plan[0] != 0 {
		t.Errorf("plan starts at %d, want 0", plan[0])
	}
	if plan[len(plan)-1] != total {
		t.Errorf("plan ends at %d, want %d", plan[len(plan)-1], total)
	}
	if !sort.IntsAreSorted(plan) {
		t.Errorf("plan not ascending: %v", plan)
	}
	for i := 1; i < len(plan); i++ {
		if plan[i] == plan[i-1] {
			t.Errorf("duplicate coordinate %d in plan %v", plan[i], plan)
		}
	}
}

func TestOptimizer_Score(t *testing.T) {
	opt := NewOptimizer(16.0 / 9.0)
	if got := opt.Score(1600, 900); got != 0 {
		t.Errorf("Score(1600, 900) = %v, want 0", got)
	}
	if got := opt.Score(900, 1600); got <= 0 {
		t.Errorf("Score(900, 1600) = %v, want > 0", got)
	}
}

func TestOptimizer_SinglePage(t *testing.T) {
	opt := NewOptimizer(16.0 / 9.0)

	// Everything fits on one page: total <= breadth * ratio.
	plan := opt.FindOptimalCuts(500, 900, []int{100, 200, 300}, 0, false)
	checkPlan(t, plan, 500)
	if len(plan) != 2 {
		t.Errorf("plan = %v, want [0 500]", plan)
	}
}

func TestOptimizer_GreedyFill(t *testing.T) {
	opt := NewOptimizer(16.0 / 9.0)

	// breadth 300, ideal = int(300 * 16/9) = 533. The largest candidate
	// within (0, 533] is 505, then the 495-long remainder closes the
	// plan.
	plan := opt.FindOptimalCuts(1000, 300, []int{505}, 0, false)
	checkPlan(t, plan, 1000)
	want := []int{0, 505, 1000}
	if len(plan) != len(want) {
		t.Fatalf("plan = %v, want %v", plan, want)
	}
	for i := range want {
		if plan[i] != want[i] {
			t.Fatalf("plan = %v, want %v", plan, want)
		}
	}
}

func TestOptimizer_PrefersLargestWithinIdeal(t *testing.T) {
	opt := NewOptimizer(1.0)

	// ideal = 100. Candidates 40, 80, 120: the greedy takes 80, not 40.
	plan := opt.FindOptimalCuts(300, 100, []int{40, 80, 120}, 0, false)
	checkPlan(t, plan, 300)
	if plan[1] != 80 {
		t.Errorf("first cut = %d, want 80 (largest candidate within ideal)", plan[1])
	}
}

func TestOptimizer_OverflowFallback(t *testing.T) {
	opt := NewOptimizer(1.0)

	// ideal = 100 but the nearest candidate is 150. The page must
	// overflow; the plan takes the least-overflowing candidate rather
	// than skipping to a later one.
	plan := opt.FindOptimalCuts(400, 100, []int{150, 350}, 0, false)
	checkPlan(t, plan, 400)
	if plan[1] != 150 {
		t.Errorf("first cut = %d, want 150 (smallest overflowing candidate)", plan[1])
	}
}

func TestOptimizer_NoOverflowWhenAvoidable(t *testing.T) {
	opt := NewOptimizer(1.0)

	// ideal = 100 with candidates every 30 pixels. No page may exceed
	// 100 because a candidate within the ideal always exists.
	var candidates []int
	for c := 30; c < 600; c += 30 {
		candidates = append(candidates, c)
	}
	plan := opt.FindOptimalCuts(600, 100, candidates, 0, false)
	checkPlan(t, plan, 600)
	for i := 1; i < len(plan); i++ {
		if got := plan[i] - plan[i-1]; got > 100 {
			t.Errorf("page %d has extent %d, want <= 100", i, got)
		}
	}
}

func TestOptimizer_IdealOverride(t *testing.T) {
	opt := NewOptimizer(16.0 / 9.0)

	// The override wins over the ratio-derived ideal.
	plan := opt.FindOptimalCuts(300, 1000, []int{90, 180, 270}, 100, false)
	checkPlan(t, plan, 300)
	if plan[1] != 90 {
		t.Errorf("first cut = %d, want 90 under ideal override 100", plan[1])
	}
}

func TestOptimizer_NoCandidates(t *testing.T) {
	opt := NewOptimizer(1.0)

	plan := opt.FindOptimalCuts(500, 100, nil, 0, false)
	checkPlan(t, plan, 500)
	if len(plan) != 2 {
		t.Errorf("plan = %v, want [0 500] with no candidates", plan)
	}
}

func TestOptimizer_ReverseMirrorsForward(t *testing.T) {
	opt := NewOptimizer(1.0)

	total := 700
	candidates := []int{100, 250, 330, 480, 600}

	// Mirrored candidates must produce the mirrored plan.
	forward := opt.FindOptimalCuts(total, 100, candidates, 0, false)

	mirrored := make([]int, len(candidates))
	for i, c := range candidates {
		mirrored[len(candidates)-1-i] = total - c
	}
	reverse := opt.FindOptimalCuts(total, 100, mirrored, 0, true)
	checkPlan(t, reverse, total)

	if len(forward) != len(reverse) {
		t.Fatalf("forward %v and reverse %v differ in length", forward, reverse)
	}
	for i := range forward {
		if want := total - forward[len(forward)-1-i]; reverse[i] != want {
			t.Fatalf("reverse plan %v is not the mirror of forward plan %v", reverse, forward)
		}
	}
}

func TestOptimizer_ReverseRemainderFirst(t *testing.T) {
	opt := NewOptimizer(1.0)

	// ideal = 100, total = 250, candidates at every 50. Forward leaves
	// the 50-long remainder last; reverse leaves it first.
	candidates := []int{50, 100, 150, 200}

	forward := opt.FindOptimalCuts(250, 100, candidates, 0, false)
	if got := forward[len(forward)-1] - forward[len(forward)-2]; got != 50 {
		t.Errorf("forward remainder = %d, want 50 (plan %v)", got, forward)
	}

	reverse := opt.FindOptimalCuts(250, 100, candidates, 0, true)
	checkPlan(t, reverse, 250)
	if got := reverse[1] - reverse[0]; got != 50 {
		t.Errorf("reverse remainder = %d, want 50 (plan %v)", got, reverse)
	}
}

func TestOptimizer_IgnoresOutOfRangeCandidates(t *testing.T) {
	opt := NewOptimizer(1.0)

	plan := opt.FindOptimalCuts(200, 100, []int{-5, 0, 90, 200, 900}, 0, false)
	checkPlan(t, plan, 200)
	if plan[1] != 90 {
		t.Errorf("first cut = %d, want 90", plan[1])
	}
}
