package arena

import (
	"fmt"
	"slices"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/tetris"
)

// SessionID identifies a session within an arena. Zero is never issued.
type SessionID uint32

// Arena hosts many independent sessions that share one configuration.
// Like a single session it is driven from one goroutine.
type Arena struct {
	cfg      tetris.Config
	nextID   SessionID
	sessions *intmap.Map[SessionID, *tetris.Session]
}

// Stats aggregates the state of every session in an arena.
type Stats struct {
	Sessions int
	Running  int
	Paused   int
	Over     int
	Lines    int
	Locks    int
	Ticks    uint64
}

// New validates cfg and returns an empty arena.
func New(cfg tetris.Config) (*Arena, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}

	return &Arena{
		cfg:      cfg,
		nextID:   1,
		sessions: intmap.New[SessionID, *tetris.Session](64),
	}, nil
}

// Spawn starts a session seeded with seed and returns its id.
func (a *Arena) Spawn(seed uint64) SessionID {
	cfg := a.cfg
	cfg.Seed = seed

	// cfg was validated in New and the seed does not affect validity
	session, err := tetris.NewSession(cfg)
	if err != nil {
		panic(err)
	}

	id := a.nextID
	a.nextID++
	a.sessions.Put(id, session)
	return id
}

func (a *Arena) Get(id SessionID) (*tetris.Session, bool) {
	return a.sessions.Get(id)
}

// Remove closes and forgets the session. It reports whether id was known.
func (a *Arena) Remove(id SessionID) bool {
	session, ok := a.sessions.Get(id)
	if !ok {
		return false
	}
	session.Close()
	return a.sessions.Del(id)
}

func (a *Arena) Len() int {
	return a.sessions.Len()
}

// Dispatch applies cmd to one session. Unknown ids report false.
func (a *Arena) Dispatch(id SessionID, cmd tetris.Command) bool {
	session, ok := a.sessions.Get(id)
	if !ok {
		return false
	}
	return session.Apply(cmd)
}

// Step advances every session by the same elapsed wall time and returns the
// total number of ticks executed.
func (a *Arena) Step(elapsed float64) int {
	total := 0
	a.sessions.ForEach(func(_ SessionID, session *tetris.Session) bool {
		total += session.Step(elapsed)
		return true
	})
	return total
}

// IDs returns every live session id in ascending order.
func (a *Arena) IDs() []SessionID {
	ids := make([]SessionID, 0, a.sessions.Len())
	a.sessions.ForEach(func(id SessionID, _ *tetris.Session) bool {
		ids = append(ids, id)
		return true
	})
	slices.Sort(ids)
	return ids
}

// All yields sessions in ascending id order.
func (a *Arena) All() func(yield func(SessionID, *tetris.Session) bool) {
	return func(yield func(SessionID, *tetris.Session) bool) {
		for _, id := range a.IDs() {
			session, ok := a.sessions.Get(id)
			if !ok {
				continue
			}
			if !yield(id, session) {
				return
			}
		}
	}
}

func (a *Arena) Stats() Stats {
	stats := Stats{Sessions: a.sessions.Len()}
	a.sessions.ForEach(func(_ SessionID, session *tetris.Session) bool {
		switch session.State() {
		case tetris.Running:
			stats.Running++
		case tetris.Paused:
			stats.Paused++
		case tetris.GameOver:
			stats.Over++
		}
		stats.Lines += session.Lines()
		stats.Locks += session.Locks()
		stats.Ticks += session.Ticks()
		return true
	})
	return stats
}

// Close stops every session and empties the arena.
func (a *Arena) Close() {
	a.sessions.ForEach(func(_ SessionID, session *tetris.Session) bool {
		session.Close()
		return true
	})
	a.sessions.Clear()
}
