package actor

// RemovalStrategy decides how a duplicate actor is taken out of its
// world. Live simulation uses ImmediateRemoval; editing sessions can
// install a strategy that keeps editor bookkeeping (selection, dirty
// state) consistent, see the editor package.
type RemovalStrategy interface {
	Remove(w *World, a Actor)
}

// ImmediateRemoval destroys the duplicate on the spot.
type ImmediateRemoval struct{}

func (ImmediateRemoval) Remove(w *World, a Actor) {
	w.Destroy(a)
}
