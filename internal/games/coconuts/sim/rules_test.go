package sim

import "testing"

var allKinds = []Kind{KindBeach, KindCrab, KindCoconut, KindLaser}

func TestHitRelation(t *testing.T) {
	expected := map[hitPair]Outcome{
		{KindBeach, KindCoconut}: OutcomeBeached,
		{KindCrab, KindCoconut}:  OutcomeDamage,
		{KindLaser, KindCoconut}: OutcomeDestroyed,
	}

	for _, hitter := range allKinds {
		for _, target := range allKinds {
			want, wantOK := expected[hitPair{hitter, target}]

			if got := CanHit(hitter, target); got != wantOK {
				t.Errorf("CanHit(%s, %s) = %v, expected %v", hitter, target, got, wantOK)
			}
			got, ok := OutcomeFor(hitter, target)
			if ok != wantOK || got != want {
				t.Errorf("OutcomeFor(%s, %s) = (%s, %v), expected (%s, %v)",
					hitter, target, got, ok, want, wantOK)
			}
		}
	}
}

func TestNothingHitsNonHittable(t *testing.T) {
	for _, hitter := range allKinds {
		for _, target := range allKinds {
			if CanHit(hitter, target) && !target.Hittable() {
				t.Errorf("%s can hit %s, which is not hittable", hitter, target)
			}
		}
	}
}

func TestHitterPriority(t *testing.T) {
	want := []Kind{KindCrab, KindLaser, KindBeach}
	if len(HitterPriority) != len(want) {
		t.Fatalf("len(HitterPriority) = %d, expected %d", len(HitterPriority), len(want))
	}
	for i := range want {
		if HitterPriority[i] != want[i] {
			t.Errorf("HitterPriority[%d] = %s, expected %s", i, HitterPriority[i], want[i])
		}
	}
}
