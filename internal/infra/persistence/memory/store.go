// Package memory is an in-process storage driver for development and tests.
// Data lives only as long as the process.
package memory

import (
	"context"
	"sync"
	"time"

	"todoapi/internal/domain/entity"

	"github.com/google/uuid"
)

// Store holds identities and todos behind one RWMutex. Repositories created by a
// transaction run while the store is already write-locked.
type Store struct {
	mu    sync.RWMutex
	state state
	now   func() time.Time
}

type state struct {
	identities map[uuid.UUID]*entity.Identity
	emails     map[string]uuid.UUID
	todos      map[uuid.UUID]*todoRecord
	seq        uint64
}

type todoRecord struct {
	todo entity.Todo
	seq  uint64 // creation order
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		state: state{
			identities: make(map[uuid.UUID]*entity.Identity),
			emails:     make(map[string]uuid.UUID),
			todos:      make(map[uuid.UUID]*todoRecord),
		},
		now: time.Now,
	}
}

func (s *Store) view(ctx context.Context, locked bool, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !locked {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}

	return fn(&s.state)
}

func (s *Store) update(ctx context.Context, locked bool, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !locked {
		s.mu.Lock()
		defer s.mu.Unlock()
	}

	return fn(&s.state)
}

func (st *state) clone() state {
	cp := state{
		identities: make(map[uuid.UUID]*entity.Identity, len(st.identities)),
		emails:     make(map[string]uuid.UUID, len(st.emails)),
		todos:      make(map[uuid.UUID]*todoRecord, len(st.todos)),
		seq:        st.seq,
	}
	for id, identity := range st.identities {
		cp.identities[id] = cloneIdentity(identity)
	}
	for email, id := range st.emails {
		cp.emails[email] = id
	}
	for id, rec := range st.todos {
		cp.todos[id] = &todoRecord{todo: *cloneTodo(&rec.todo), seq: rec.seq}
	}

	return cp
}

func cloneIdentity(src *entity.Identity) *entity.Identity {
	cp := *src
	cp.Tokens = append([]entity.IdentityToken(nil), src.Tokens...)

	return &cp
}

func cloneTodo(src *entity.Todo) *entity.Todo {
	cp := *src
	if src.CompletedAt != nil {
		at := *src.CompletedAt
		cp.CompletedAt = &at
	}

	return &cp
}
