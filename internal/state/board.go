package state

import (
	"log"
	"sync"
)

// Board holds the committed strokes in drawing order, which is also the
// order they are painted in. The widget reads it for painting and the
// exporters read it for output, so access is guarded.
type Board struct {
	mu      sync.RWMutex
	strokes []Stroke
}

func NewBoard() *Board {
	return &Board{strokes: make([]Stroke, 0)}
}

// Append adds a committed stroke to the end of the history.
func (b *Board) Append(s Stroke) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.strokes = append(b.strokes, s)
	log.Printf("[board] stroke %s committed (%d points, %d total)", s.ID, len(s.Points), len(b.strokes))
}

// UndoLast removes the most recently committed stroke and reports whether
// anything was removed. Undo on an empty board is a no-op.
func (b *Board) UndoLast() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.strokes) == 0 {
		return false
	}
	last := b.strokes[len(b.strokes)-1]
	b.strokes = b.strokes[:len(b.strokes)-1]
	log.Printf("[board] stroke %s undone (%d remain)", last.ID, len(b.strokes))
	return true
}

// Clear drops every committed stroke and returns how many were removed.
func (b *Board) Clear() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := len(b.strokes)
	b.strokes = make([]Stroke, 0)
	if n > 0 {
		log.Printf("[board] cleared %d strokes", n)
	}
	return n
}

// Strokes returns a copy of the history, oldest first.
func (b *Board) Strokes() []Stroke {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Stroke, len(b.strokes))
	copy(out, b.strokes)
	return out
}

// Len reports how many strokes are committed.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.strokes)
}
