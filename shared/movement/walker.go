// Package movement walks an agent along a navgrid path one segment at a time.
// The walker never blocks: every call to Tick advances it by one simulation
// step and returns, which is what lets a caller cancel or replace a walk
// between any two steps.
package movement

import (
	"github.com/automoto/tilechase/shared/gamemath"
	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	dmath "github.com/yohamta/donburi/features/math"
)

// onSegmentTolerance is how far, in world units, a walker may sit off the
// first segment of a new path and still resume along it.
const onSegmentTolerance = 1e-6

// Walker interpolates a position along a path. Each segment lasts
// SecondsPerUnit times its length; the walker snaps onto the segment's end
// when the segment finishes so no floating error carries over.
type Walker struct {
	path           navgrid.Path
	segment        int
	tween          *gween.Tween
	from, to       dmath.Vec2
	secondsPerUnit float64

	position dmath.Vec2
	yaw      float64
	walking  bool
	reached  *navgrid.Waypoint
}

func NewWalker(position dmath.Vec2) *Walker {
	return &Walker{position: position}
}

func (w *Walker) Position() dmath.Vec2 { return w.position }

// Yaw is the heading in radians, measured from +X.
func (w *Walker) Yaw() float64 { return w.yaw }

func (w *Walker) Walking() bool { return w.walking }

// Reached is the last waypoint the walker stood on, or nil before the first
// walk.
func (w *Walker) Reached() *navgrid.Waypoint { return w.reached }

// Path is the walk in progress, nil when idle.
func (w *Walker) Path() navgrid.Path { return w.path }

// Remaining returns the waypoints not yet reached.
func (w *Walker) Remaining() navgrid.Path {
	if !w.walking || w.segment+1 >= len(w.path) {
		return nil
	}
	return w.path[w.segment+1:]
}

// Place moves an idle walker without animating, e.g. on spawn.
func (w *Walker) Place(pos dmath.Vec2) {
	w.position = pos
}

// Face sets the heading towards target unless target is at the current
// position.
func (w *Walker) Face(target dmath.Vec2) {
	if yaw, ok := gamemath.Yaw(w.position, target); ok {
		w.yaw = yaw
	}
}

// Start replaces any walk in progress with path. An empty path leaves the
// walker idle and returns false.
//
// The walk begins where the walker stands. If that is part way along the
// first segment it carries on from there; anywhere else off the first
// waypoint it walks back onto that waypoint first.
func (w *Walker) Start(path navgrid.Path, secondsPerUnit float64) bool {
	w.Cancel()
	if len(path) == 0 {
		return false
	}
	w.path = path
	w.segment = 0
	w.secondsPerUnit = secondsPerUnit
	w.walking = true

	first := path[0].Position()
	onFirst := w.position == first ||
		len(path) > 1 && gamemath.OnSegment(w.position, first, path[1].Position(), onSegmentTolerance)
	if onFirst {
		w.reached = path[0]
	} else {
		// Segment -1 leads from the current position onto path[0].
		w.segment = -1
	}
	return true
}

// Cancel drops the rest of the walk. The walker stays where it was last
// drawn; it is not snapped to a waypoint.
func (w *Walker) Cancel() {
	w.path = nil
	w.segment = 0
	w.tween = nil
	w.walking = false
}

// Tick advances the walk by dt seconds and reports whether the final
// waypoint was reached during this step. A segment that finishes ends the
// step; the next one starts on the following tick.
func (w *Walker) Tick(dt float64) (arrived bool) {
	if !w.walking {
		return false
	}

	for w.tween == nil {
		if w.arrive() {
			return true
		}
		w.beginSegment()
	}

	frac, done := w.tween.Update(float32(dt))
	if !done {
		w.position = gamemath.Lerp(w.from, w.to, float64(frac))
		return false
	}
	w.finishSegment()
	return w.arrive()
}

// arrive ends the walk once the last waypoint has been reached.
func (w *Walker) arrive() bool {
	if w.segment < len(w.path)-1 {
		return false
	}
	w.path = nil
	w.walking = false
	return true
}

// beginSegment turns towards the next waypoint and sets up its tween. A
// segment with no length is completed at once and leaves no tween.
func (w *Walker) beginSegment() {
	next := w.path[w.segment+1]
	w.from, w.to = w.position, next.Position()
	if yaw, ok := gamemath.Yaw(w.from, w.to); ok {
		w.yaw = yaw
	}

	duration := w.secondsPerUnit * gamemath.Distance(w.from, w.to)
	if duration <= 0 {
		w.finishSegment()
		return
	}
	w.tween = gween.New(0, 1, float32(duration), ease.Linear)
}

func (w *Walker) finishSegment() {
	w.position = w.to
	w.tween = nil
	w.segment++
	w.reached = w.path[w.segment]
}
