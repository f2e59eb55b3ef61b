package web

import (
	"crypto/rand"
	"encoding/hex"
	"sync"

	"wander/internal/models/response_models"
)

const sessionCookie = "wander_session"

// TripSnapshot is the planner-to-results handoff: the full response plus the
// request parameters the result panels still need (booking links, save form).
type TripSnapshot struct {
	Result    *response_models.TripResponse
	Country   string
	Locations string
	Days      int
	Origin    string
	StartDate string
}

// Session is one browser's state: the current trip, credentials, and the
// open chat transcript.
type Session struct {
	mu       sync.Mutex
	trip     *TripSnapshot
	token    string
	user     *response_models.UserResponse
	chat     *Transcript
	planning *StageCycler
}

// StartPlanning swaps in a fresh stage cycler for an in-flight plan call,
// stopping any previous one.
func (s *Session) StartPlanning(c *StageCycler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.planning != nil {
		s.planning.Stop()
	}
	s.planning = c
}

// FinishPlanning stops and detaches the cycler. Called on success and on
// failure alike.
func (s *Session) FinishPlanning() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.planning != nil {
		s.planning.Stop()
		s.planning = nil
	}
}

// PlanningStage returns the current progress label, or "" when no plan call
// is outstanding.
func (s *Session) PlanningStage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.planning == nil {
		return ""
	}
	return s.planning.Current()
}

// SetTrip overwrites any previous snapshot; planning again replaces the old
// trip rather than accumulating.
func (s *Session) SetTrip(t *TripSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trip = t
	s.chat = nil
}

// Trip returns the current snapshot, or nil. Nil is the defined empty state:
// the results page shows a call-to-action back to the planner.
func (s *Session) Trip() *TripSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trip
}

func (s *Session) SetAuth(token string, user *response_models.UserResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
}

func (s *Session) Auth() (token string, user *response_models.UserResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.user
}

func (s *Session) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// Logout clears credentials only; the planned trip survives so the user does
// not lose their results.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
}

// Chat returns the session transcript, seeding the greeting on first open.
func (s *Session) Chat() *Transcript {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chat == nil {
		s.chat = NewTranscript()
	}
	return s.chat
}

// SessionStore keeps sessions in memory keyed by an opaque cookie value.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Get returns the session for an id, creating it when unknown. An empty or
// forged id still yields a working (fresh) session.
func (st *SessionStore) Get(id string) (*Session, string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if id != "" {
		if s, ok := st.sessions[id]; ok {
			return s, id
		}
	}
	id = newSessionID()
	s := &Session{}
	st.sessions[id] = s
	return s, id
}

func newSessionID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b[:])
}
