package browse

import (
	"strconv"
	"sync"
)

// Sequencer hands out increasing tickets per (user, view). Only the holder of
// the most recent ticket may update the user's visible state once its fetch
// completes.
type Sequencer struct {
	mu     sync.Mutex
	latest map[string]uint64
}

func NewSequencer() *Sequencer {
	return &Sequencer{latest: make(map[string]uint64)}
}

type Ticket struct {
	seq *Sequencer
	key string
	n   uint64
}

// Begin issues a ticket that supersedes every earlier ticket for the same user
// and view.
func (s *Sequencer) Begin(userID int64, view string) Ticket {
	key := view + ":" + strconv.FormatInt(userID, 10)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest[key]++
	return Ticket{seq: s, key: key, n: s.latest[key]}
}

// IsLatest reports whether no newer ticket has been issued. The zero Ticket is
// always latest.
func (t Ticket) IsLatest() bool {
	if t.seq == nil {
		return true
	}
	t.seq.mu.Lock()
	defer t.seq.mu.Unlock()
	return t.seq.latest[t.key] == t.n
}
