package procgen

import (
	"math"
	"math/rand"
	"testing"
)

func TestCountUsesMagnitude(t *testing.T) {
	for c, rule := range DefaultRules() {
		t.Run(string(c), func(t *testing.T) {
			neg, pos := rule.Count(-73), rule.Count(73)
			if neg != pos {
				t.Fatalf("count(-73)=%d count(73)=%d", neg, pos)
			}
			if pos < rule.Base {
				t.Fatalf("count %d below base %d", pos, rule.Base)
			}
			if got := rule.Count(0); got != rule.Base {
				t.Fatalf("count(0)=%d want base %d", got, rule.Base)
			}
		})
	}
}

func TestCountTable(t *testing.T) {
	rules := DefaultRules()
	tests := []struct {
		category Category
		zoom     float64
		want     int
	}{
		{CategoryGalaxy, 60, 11},
		{CategoryNebula, 60, 7},
		{CategoryPlanet, 60, 7},
		{CategoryBlackHole, 60, 3},
		{CategoryBlackHole, 39.9, 2},
		{CategoryGalaxy, -73, 11},
	}
	for _, tc := range tests {
		t.Run(string(tc.category), func(t *testing.T) {
			if got := rules[tc.category].Count(tc.zoom); got != tc.want {
				t.Fatalf("count(%v)=%d want %d", tc.zoom, got, tc.want)
			}
		})
	}
}

func TestSpawnerMemoizesByBucket(t *testing.T) {
	rule := DefaultRules()[CategoryGalaxy]
	s := NewSpawner(rule, rand.New(rand.NewSource(7)))

	first, changed := s.Records(21)
	if !changed || s.Generation() != 1 {
		t.Fatalf("first call should generate, changed=%v gen=%d", changed, s.Generation())
	}

	same, changed := s.Records(28)
	if changed || s.Generation() != 1 {
		t.Fatalf("21->28 stays in bucket 1, changed=%v gen=%d", changed, s.Generation())
	}
	if &same[0] != &first[0] {
		t.Fatalf("expected the cached slice to be returned")
	}

	next, changed := s.Records(42)
	if !changed || s.Generation() != 2 {
		t.Fatalf("21->42 crosses into bucket 2, changed=%v gen=%d", changed, s.Generation())
	}
	if len(next) != rule.Count(42) {
		t.Fatalf("len=%d want %d", len(next), rule.Count(42))
	}
	if next[0].Position == first[0].Position {
		t.Fatalf("regenerated records should use fresh randomness")
	}
}

func TestSpawnerSetRuleForcesRegeneration(t *testing.T) {
	rule := DefaultRules()[CategoryPlanet]
	s := NewSpawner(rule, rand.New(rand.NewSource(3)))
	s.Records(10)
	rule.Base = 9
	s.SetRule(rule)
	recs, changed := s.Records(10)
	if !changed || len(recs) != 9 {
		t.Fatalf("changed=%v len=%d", changed, len(recs))
	}
}

func TestSpawnerResetRegeneratesAtSameBucket(t *testing.T) {
	tests := []struct {
		name  string
		reset func(*Set)
	}{
		{name: "spawner", reset: func(set *Set) { set.Spawner(CategoryGalaxy).Reset() }},
		{name: "set", reset: func(set *Set) { set.Reset() }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			set := NewSet(DefaultRules(), rand.New(rand.NewSource(11)))
			sp := set.Spawner(CategoryGalaxy)
			first, _ := sp.Records(51)
			kept := append([]Record(nil), first...)

			tc.reset(set)
			again, changed := sp.Records(51)
			if !changed || sp.Generation() != 2 {
				t.Fatalf("expected regeneration after reset, changed=%v gen=%d", changed, sp.Generation())
			}
			if sp.Bucket() != 2 || len(again) != len(kept) {
				t.Fatalf("bucket=%d len=%d want bucket 2 len %d", sp.Bucket(), len(again), len(kept))
			}
			same := true
			for i := range kept {
				if again[i].Position != kept[i].Position {
					same = false
				}
			}
			if same {
				t.Fatal("expected fresh positions after reset")
			}
		})
	}
}

func TestGeneratePlacement(t *testing.T) {
	rules := DefaultRules()
	rng := rand.New(rand.NewSource(11))
	for _, c := range Categories {
		rule := rules[c]
		t.Run(string(c), func(t *testing.T) {
			recs := Generate(rule, 12, rng)
			step := rule.AngleStepDeg * math.Pi / 180
			for i, r := range recs {
				if r.Index != i || r.Category != c {
					t.Fatalf("record %d mislabeled: %+v", i, r)
				}
				radius := math.Abs(r.Position.X() / math.Cos(float64(i)*step))
				if math.Abs(math.Cos(float64(i)*step)) > 0.1 && (radius < rule.RadiusMin-1e-9 || radius > rule.RadiusMin+rule.RadiusJitter+1e-9) {
					t.Fatalf("record %d radius %v outside range", i, radius)
				}
				if math.Abs(r.Position.Y()) > rule.HeightSpread/2 {
					t.Fatalf("record %d height %v outside spread", i, r.Position.Y())
				}
				base := rule.DepthStart + float64(i)*rule.DepthStep
				if r.Position.Z() > base || r.Position.Z() < base-rule.DepthJitter {
					t.Fatalf("record %d depth %v outside [%v,%v]", i, r.Position.Z(), base-rule.DepthJitter, base)
				}
			}
		})
	}
}

func TestDecorateRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	rules := DefaultRules()
	orange, violet := AccretionColors()

	for _, r := range Generate(rules[CategoryPlanet], 50, rng) {
		if r.Size < 0.5 || r.Size > 2 || r.Spin < 0.001 || r.Spin > 0.004 || r.Emissive != 0.2 {
			t.Fatalf("planet out of range: %+v", r)
		}
	}
	for _, r := range Generate(rules[CategoryBlackHole], 50, rng) {
		if r.Size < 1 || r.Size > 3 || (r.Color != orange && r.Color != violet) {
			t.Fatalf("black hole out of range: %+v", r)
		}
	}
	for _, r := range Generate(rules[CategoryGalaxy], 50, rng) {
		if r.Scale < 0.4 || r.Scale > 1.2 {
			t.Fatalf("galaxy scale out of range: %+v", r)
		}
	}
}

func TestRuleValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Rule)
		wantErr bool
	}{
		{"default", func(*Rule) {}, false},
		{"zero_bucket", func(r *Rule) { r.BucketSize = 0 }, true},
		{"zero_base", func(r *Rule) { r.Base = 0 }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := DefaultRules()[CategoryNebula]
			tc.mutate(&r)
			if err := r.Validate(); (err != nil) != tc.wantErr {
				t.Fatalf("err=%v wantErr=%v", err, tc.wantErr)
			}
		})
	}
}
