package actor

// FinalKinder lets an actor type override whether its kind is a terminal
// comparison boundary. When a kind is terminal, every kind below it is
// treated as the same singleton for duplicate comparison.
//
// The method is only ever invoked on the kind's canonical representative,
// never on a spawned instance, so it must behave as a pure function of
// the type. By default a kind is terminal iff it is not abstract.
type FinalKinder interface {
	IsFinalKind() bool
}

// terminal evaluates the boundary predicate for a single kind.
func (k *Kind) terminal() bool {
	if fk, ok := k.rep.(FinalKinder); ok {
		return fk.IsFinalKind()
	}
	return !k.abstract
}

// FinalKind resolves the boundary kind used for duplicate comparison:
// the highest ancestor (root first) whose terminal predicate holds.
// Two actors are duplicates of one another iff their kinds resolve to
// the same final kind.
//
// A nil result means the hierarchy has no terminal boundary at all,
// which is a configuration error; callers leave such actors unmanaged.
func (k *Kind) FinalKind() *Kind {
	var chain []*Kind
	for it := k; it != nil; it = it.parent {
		chain = append(chain, it)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].terminal() {
			return chain[i]
		}
	}
	return nil
}
