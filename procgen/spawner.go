package procgen

import "math/rand"

// Spawner memoizes a category's records by bucket index. Records are kept
// until the bucket changes, then replaced wholesale with fresh randomness.
type Spawner struct {
	rule       Rule
	rng        *rand.Rand
	bucket     int
	primed     bool
	records    []Record
	generation int
}

func NewSpawner(rule Rule, rng *rand.Rand) *Spawner {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Spawner{rule: rule, rng: rng}
}

// Records returns the set for zoom and whether it was regenerated by this
// call. The returned slice must not be modified.
func (s *Spawner) Records(zoom float64) ([]Record, bool) {
	if s == nil {
		return nil, false
	}
	bucket := s.rule.BucketIndex(zoom)
	if s.primed && bucket == s.bucket {
		return s.records, false
	}
	s.bucket = bucket
	s.primed = true
	s.records = Generate(s.rule, s.rule.Count(zoom), s.rng)
	s.generation++
	return s.records, true
}

// SetRule swaps the rule and forces regeneration on the next call.
func (s *Spawner) SetRule(rule Rule) {
	if s == nil {
		return
	}
	s.rule = rule
	s.primed = false
}

// Reset drops the memo so the next call generates fresh records even at the
// same bucket.
func (s *Spawner) Reset() {
	if s == nil {
		return
	}
	s.primed = false
	s.records = nil
}

func (s *Spawner) Rule() Rule {
	if s == nil {
		return Rule{}
	}
	return s.rule
}

// Bucket returns the bucket index of the current records.
func (s *Spawner) Bucket() int {
	if s == nil {
		return 0
	}
	return s.bucket
}

// Generation counts regenerations since construction.
func (s *Spawner) Generation() int {
	if s == nil {
		return 0
	}
	return s.generation
}

// Set groups one spawner per category over a shared random source.
type Set struct {
	spawners map[Category]*Spawner
}

func NewSet(rules map[Category]Rule, rng *rand.Rand) *Set {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	set := &Set{spawners: make(map[Category]*Spawner, len(rules))}
	for _, c := range Categories {
		rule, ok := rules[c]
		if !ok {
			continue
		}
		set.spawners[c] = NewSpawner(rule, rng)
	}
	return set
}

func (s *Set) Spawner(c Category) *Spawner {
	if s == nil {
		return nil
	}
	return s.spawners[c]
}

// SetRules replaces the rules of existing spawners.
func (s *Set) SetRules(rules map[Category]Rule) {
	if s == nil {
		return
	}
	for c, sp := range s.spawners {
		if rule, ok := rules[c]; ok {
			sp.SetRule(rule)
		}
	}
}

// Reset drops every spawner's memo.
func (s *Set) Reset() {
	if s == nil {
		return
	}
	for _, sp := range s.spawners {
		sp.Reset()
	}
}
