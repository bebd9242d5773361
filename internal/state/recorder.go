package state

import (
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Recorder is the gesture state machine: it is either idle or recording
// exactly one in-progress stroke. Committed strokes land on the Board it
// was constructed with.
type Recorder struct {
	mu     sync.RWMutex
	board  *Board
	active *Stroke
}

func NewRecorder(b *Board) *Recorder {
	return &Recorder{board: b}
}

// Start begins a new stroke at p and reports whether it did. A second
// pointer going down while a gesture is already in progress is rejected.
func (r *Recorder) Start(p Point) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active != nil {
		return false
	}
	r.active = &Stroke{ID: uuid.NewString(), Points: []Point{p}}
	return true
}

// Move appends a sample to the active stroke. No-op while idle. Every
// sample is kept; nothing is decimated.
func (r *Recorder) Move(p Point) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active == nil {
		return
	}
	r.active.Points = append(r.active.Points, p)
}

// End finishes the active gesture. A gesture with fewer than two samples
// is discarded, so a tap leaves the board untouched. Otherwise the stroke
// is stamped with c and width, the values the controls hold at release
// time rather than at stroke start, and committed to the board.
func (r *Recorder) End(c color.NRGBA, width float32) (Stroke, bool) {
	r.mu.Lock()
	s := r.active
	r.active = nil
	r.mu.Unlock()

	if s == nil {
		return Stroke{}, false
	}
	if len(s.Points) < 2 {
		log.Printf("[recorder] stroke %s discarded (%d points)", s.ID, len(s.Points))
		return Stroke{}, false
	}
	s.Color = c
	s.Width = width
	s.Time = time.Now()
	r.board.Append(*s)
	return *s, true
}

// Cancel drops the active gesture, if any, without committing it.
func (r *Recorder) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active != nil {
		log.Printf("[recorder] stroke %s cancelled", r.active.ID)
		r.active = nil
	}
}

// Drawing reports whether a gesture is in progress.
func (r *Recorder) Drawing() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active != nil
}

// ActivePoints returns a copy of the in-progress stroke's samples, or nil
// while idle.
func (r *Recorder) ActivePoints() []Point {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.active == nil {
		return nil
	}
	pts := make([]Point, len(r.active.Points))
	copy(pts, r.active.Points)
	return pts
}
