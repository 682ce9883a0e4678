package physics

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Defaults for deciding between a full re-sort and an incremental repair.
const (
	DefaultResortThreshold = 5.0
	DefaultMaxCountDelta   = 5
)

// Pair is a candidate collision pair produced by the broad phase. A is
// always dynamic.
type Pair struct {
	A, B Entity
}

// BroadPhaseStats describes the most recent Update and pair generation.
type BroadPhaseStats struct {
	UpdateTime         time.Duration
	PairGenerationTime time.Duration
	DynamicEntityCount int
	StaticEntityCount  int
	ChecksPerformed    int
	ChecksSaved        int
	PotentialPairs     int
	DidFullSort        bool
}

func (s BroadPhaseStats) TotalTime() time.Duration {
	return s.UpdateTime + s.PairGenerationTime
}

// CompressionRatio is the fraction of the possible pair checks skipped by
// the sweep, in [0, 1].
func (s BroadPhaseStats) CompressionRatio() float64 {
	total := s.ChecksPerformed + s.ChecksSaved
	if total == 0 {
		return 0
	}
	return float64(s.ChecksSaved) / float64(total)
}

func (s BroadPhaseStats) String() string {
	sort := "incremental"
	if s.DidFullSort {
		sort = "full"
	}
	return fmt.Sprintf("BroadPhase: %d dynamic, %d static, %d pairs, %d checks (%d saved, %.1f%%), %s sort, update %v, pairs %v",
		s.DynamicEntityCount, s.StaticEntityCount, s.PotentialPairs,
		s.ChecksPerformed, s.ChecksSaved, s.CompressionRatio()*100, sort,
		s.UpdateTime, s.PairGenerationTime)
}

// BroadPhaseCollisionDetector is a sweep and prune on the X axis. Dynamic
// entities are kept sorted by AABB min X between frames and repaired with
// insertion sort when little has moved; statics are tested against every
// dynamic entity.
type BroadPhaseCollisionDetector struct {
	sortedDynamic   []Entity
	statics         []Entity
	lastPositions   map[string]rl.Vector3
	resortThreshold float32
	maxCountDelta   int
	firstFrame      bool

	stats BroadPhaseStats
	log   *zap.Logger
}

type BroadPhaseOption func(*BroadPhaseCollisionDetector)

// WithResortThreshold sets how far a single entity may move in one frame
// before the next Update does a full sort.
func WithResortThreshold(d float32) BroadPhaseOption {
	return func(b *BroadPhaseCollisionDetector) { b.resortThreshold = d }
}

// WithMaxCountDelta sets how many dynamic entities may appear or vanish
// between frames before the next Update does a full sort.
func WithMaxCountDelta(n int) BroadPhaseOption {
	return func(b *BroadPhaseCollisionDetector) { b.maxCountDelta = n }
}

func WithBroadPhaseLogger(l *zap.Logger) BroadPhaseOption {
	return func(b *BroadPhaseCollisionDetector) { b.log = l }
}

func NewBroadPhaseCollisionDetector(opts ...BroadPhaseOption) *BroadPhaseCollisionDetector {
	b := &BroadPhaseCollisionDetector{
		lastPositions:   make(map[string]rl.Vector3),
		resortThreshold: DefaultResortThreshold,
		maxCountDelta:   DefaultMaxCountDelta,
		firstFrame:      true,
		log:             zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

type sortKey struct {
	e    Entity
	minX float32
}

// Update partitions entities into static and dynamic sets and brings the
// dynamic list back into min X order.
func (b *BroadPhaseCollisionDetector) Update(entities []Entity) {
	start := time.Now()

	b.statics = b.statics[:0]
	dynamic := make([]Entity, 0, len(entities))
	for _, e := range entities {
		if e.Body().IsStatic() {
			b.statics = append(b.statics, e)
		} else {
			dynamic = append(dynamic, e)
		}
	}

	b.stats.DidFullSort = false
	if len(dynamic) == 0 {
		b.sortedDynamic = b.sortedDynamic[:0]
		clear(b.lastPositions)
	} else if full, reason := b.shouldPerformFullSort(dynamic); full {
		b.fullSort(dynamic)
		b.stats.DidFullSort = true
		b.log.Debug("broad phase full sort",
			zap.String("reason", reason),
			zap.Int("dynamic", len(dynamic)))
	} else {
		b.incrementalSort(dynamic)
	}

	clear(b.lastPositions)
	for _, e := range b.sortedDynamic {
		b.lastPositions[e.ID()] = e.Position()
	}
	b.firstFrame = false

	b.stats.DynamicEntityCount = len(b.sortedDynamic)
	b.stats.StaticEntityCount = len(b.statics)
	b.stats.UpdateTime = time.Since(start)
}

func (b *BroadPhaseCollisionDetector) shouldPerformFullSort(dynamic []Entity) (bool, string) {
	if b.firstFrame {
		return true, "first frame"
	}
	if len(b.sortedDynamic) == 0 {
		return true, "empty list"
	}
	if delta := len(dynamic) - len(b.sortedDynamic); delta > b.maxCountDelta || -delta > b.maxCountDelta {
		return true, "entity count changed"
	}
	if b.hasUntracked(dynamic) {
		return true, "new entity"
	}
	if b.maxDisplacement(dynamic) > b.resortThreshold {
		return true, "large movement"
	}
	return false, ""
}

func (b *BroadPhaseCollisionDetector) fullSort(dynamic []Entity) {
	keys := make([]sortKey, len(dynamic))
	for i, e := range dynamic {
		keys[i] = sortKey{e: e, minX: e.AABB().Min.X}
	}
	slices.SortStableFunc(keys, func(x, y sortKey) int {
		return cmp.Compare(x.minX, y.minX)
	})
	b.storeSorted(keys)
}

// incrementalSort drops entities that vanished, inserts new ones at their
// min X position and repairs the remaining disorder with one insertion sort.
func (b *BroadPhaseCollisionDetector) incrementalSort(dynamic []Entity) {
	current := make(map[string]Entity, len(dynamic))
	for _, e := range dynamic {
		current[e.ID()] = e
	}

	keys := make([]sortKey, 0, len(dynamic))
	kept := make(map[string]bool, len(b.sortedDynamic))
	for _, old := range b.sortedDynamic {
		e, ok := current[old.ID()]
		if !ok || kept[old.ID()] {
			continue
		}
		kept[old.ID()] = true
		keys = append(keys, sortKey{e: e, minX: e.AABB().Min.X})
	}

	for _, e := range dynamic {
		if kept[e.ID()] {
			continue
		}
		kept[e.ID()] = true
		k := sortKey{e: e, minX: e.AABB().Min.X}
		at := len(keys)
		for i := range keys {
			if keys[i].minX > k.minX {
				at = i
				break
			}
		}
		keys = slices.Insert(keys, at, k)
	}

	for i := 1; i < len(keys); i++ {
		k := keys[i]
		j := i - 1
		for j >= 0 && keys[j].minX > k.minX {
			keys[j+1] = keys[j]
			j--
		}
		keys[j+1] = k
	}
	b.storeSorted(keys)
}

func (b *BroadPhaseCollisionDetector) storeSorted(keys []sortKey) {
	b.sortedDynamic = b.sortedDynamic[:0]
	for _, k := range keys {
		b.sortedDynamic = append(b.sortedDynamic, k.e)
	}
}

// PotentialCollisionPairs sweeps the sorted dynamic list and tests every
// dynamic entity against every static one. The result is a superset of the
// pairs whose boxes overlap.
func (b *BroadPhaseCollisionDetector) PotentialCollisionPairs() []Pair {
	start := time.Now()

	boxes := make([]AABB, len(b.sortedDynamic))
	for i, e := range b.sortedDynamic {
		boxes[i] = e.AABB()
	}
	staticBoxes := make([]AABB, len(b.statics))
	for i, s := range b.statics {
		staticBoxes[i] = s.AABB()
	}

	var pairs []Pair
	performed := 0
	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			performed++
			if boxes[j].Min.X > boxes[i].Max.X {
				break
			}
			if boxes[i].Overlaps(boxes[j]) {
				pairs = append(pairs, Pair{A: b.sortedDynamic[i], B: b.sortedDynamic[j]})
			}
		}
		for k := range staticBoxes {
			performed++
			if boxes[i].Overlaps(staticBoxes[k]) {
				pairs = append(pairs, Pair{A: b.sortedDynamic[i], B: b.statics[k]})
			}
		}
	}

	n, s := len(boxes), len(staticBoxes)
	b.stats.ChecksPerformed = performed
	b.stats.ChecksSaved = n*(n-1)/2 + n*s - performed
	b.stats.PotentialPairs = len(pairs)
	b.stats.PairGenerationTime = time.Since(start)
	return pairs
}

func (b *BroadPhaseCollisionDetector) Stats() BroadPhaseStats {
	return b.stats
}

// Statistics returns the check counters of the last pair generation.
func (b *BroadPhaseCollisionDetector) Statistics() (checks, saved int) {
	return b.stats.ChecksPerformed, b.stats.ChecksSaved
}

// Sorted returns a copy of the dynamic entities in min X order.
func (b *BroadPhaseCollisionDetector) Sorted() []Entity {
	return slices.Clone(b.sortedDynamic)
}

// Reset forgets all frame-to-frame state so the next Update does a full sort.
func (b *BroadPhaseCollisionDetector) Reset() {
	b.sortedDynamic = nil
	b.statics = nil
	clear(b.lastPositions)
	b.firstFrame = true
	b.stats = BroadPhaseStats{}
}

func (b *BroadPhaseCollisionDetector) String() string {
	return b.stats.String()
}

// maxDisplacement reports the largest movement of any tracked entity since
// the last Update.
// hasUntracked reports whether any entity has no position recorded by the
// previous update.
func (b *BroadPhaseCollisionDetector) hasUntracked(entities []Entity) bool {
	for _, e := range entities {
		if _, ok := b.lastPositions[e.ID()]; !ok {
			return true
		}
	}
	return false
}

func (b *BroadPhaseCollisionDetector) maxDisplacement(entities []Entity) float32 {
	var largest float32
	for _, e := range entities {
		if last, ok := b.lastPositions[e.ID()]; ok {
			largest = math32.Max(largest, rl.Vector3Distance(e.Position(), last))
		}
	}
	return largest
}
