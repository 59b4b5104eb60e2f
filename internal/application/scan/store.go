package scan

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bin-inventory-api/pkg/logger"
)

// SessionStore sesiones de escaneo abiertas, en memoria. Las inactivas más de ttl se descartan.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	lookup   StatusLookup
	opts     []Option
	ttl      time.Duration
	log      *logger.Logger
	now      func() time.Time
}

// NewSessionStore crea el almacén. opts se aplica a cada sesión nueva.
func NewSessionStore(lookup StatusLookup, ttl time.Duration, log *logger.Logger, opts ...Option) *SessionStore {
	if log == nil {
		log = logger.Nop()
	}
	return &SessionStore{
		sessions: make(map[uuid.UUID]*Session),
		lookup:   lookup,
		opts:     opts,
		ttl:      ttl,
		log:      log,
		now:      time.Now,
	}
}

// Create abre una sesión nueva.
func (st *SessionStore) Create() (uuid.UUID, *Session) {
	id := uuid.New()
	s := NewSession(st.lookup, st.opts...)
	s.now = st.now
	s.touched = st.now()

	st.mu.Lock()
	st.sessions[id] = s
	st.mu.Unlock()
	return id, s
}

// Transient sesión con las mismas opciones que no se registra en el almacén (vista previa sin estado).
func (st *SessionStore) Transient() *Session {
	return NewSession(st.lookup, st.opts...)
}

// Get devuelve la sesión o ErrSessionNotFound (también si expiró).
func (st *SessionStore) Get(id uuid.UUID) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if st.expired(s) {
		delete(st.sessions, id)
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete descarta la sesión.
func (st *SessionStore) Delete(id uuid.UUID) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len número de sesiones abiertas.
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *SessionStore) expired(s *Session) bool {
	return st.ttl > 0 && st.now().Sub(s.LastActivity()) > st.ttl
}

// Sweep elimina las sesiones expiradas y devuelve cuántas quitó.
func (st *SessionStore) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	n := 0
	for id, s := range st.sessions {
		if st.expired(s) {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}

// Run barre periódicamente hasta que ctx se cancele.
func (st *SessionStore) Run(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := st.Sweep(); n > 0 {
				st.log.Info().Int("expired", n).Int("open", st.Len()).Msg("sesiones de escaneo expiradas")
			}
		}
	}
}
