package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MalithSamaradiwakara/frontend/internal/model"
	"github.com/rs/zerolog"
)

// memHash is an in-memory hashStore double.
type memHash struct {
	data map[string]map[string]string
	err  error
}

func newMemHash() *memHash {
	return &memHash{data: make(map[string]map[string]string)}
}

func (m *memHash) SetAll(_ context.Context, key string, fields map[string]string, _ time.Duration) error {
	if m.err != nil {
		return m.err
	}
	cp := make(map[string]string, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	m.data[key] = cp
	return nil
}

func (m *memHash) GetAll(_ context.Context, key string) (map[string]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	// Redis returns an empty hash for missing keys, not an error.
	if m.data[key] == nil {
		return map[string]string{}, nil
	}
	return m.data[key], nil
}

func (m *memHash) SetField(_ context.Context, key, field, value string) error {
	if m.err != nil {
		return m.err
	}
	if m.data[key] == nil {
		m.data[key] = make(map[string]string)
	}
	m.data[key][field] = value
	return nil
}

func (m *memHash) Delete(_ context.Context, key string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.data, key)
	return nil
}

func newTestStore(kv hashStore) *Store {
	return &Store{kv: kv, ttl: time.Hour, log: zerolog.Nop()}
}

func TestEstablishAndCurrent(t *testing.T) {
	store := newTestStore(newMemHash())
	ctx := context.Background()

	sid, err := store.Establish(ctx, model.SessionSeed{
		ActorID:     "u-1",
		Role:        "Student",
		DisplayName: "Amal",
		Token:       "jwt-token",
	})
	if err != nil {
		t.Fatalf("Establish: %v", err)
	}
	if sid == "" {
		t.Fatal("Establish returned empty sid")
	}

	snap := store.Current(ctx, sid)
	if snap.Anonymous() {
		t.Fatal("established session reads as anonymous")
	}
	if snap.ActorID != "u-1" || snap.Role != model.RoleStudent || snap.DisplayName != "Amal" || snap.Token != "jwt-token" {
		t.Errorf("snapshot = %+v", snap)
	}
	if snap.StudentID != "" {
		t.Errorf("StudentID = %q before secondary lookup", snap.StudentID)
	}
}

func TestEstablishRejectsMalformedSeed(t *testing.T) {
	kv := newMemHash()
	store := newTestStore(kv)
	ctx := context.Background()

	seeds := []model.SessionSeed{
		{Role: "Student"},                        // no actor id
		{ActorID: "u-1"},                         // no role
		{ActorID: "u-1", Role: "SomethingWeird"}, // unknown role collapses to anonymous
	}
	for _, seed := range seeds {
		if _, err := store.Establish(ctx, seed); !errors.Is(err, ErrMalformedSession) {
			t.Errorf("Establish(%+v) err = %v, want ErrMalformedSession", seed, err)
		}
	}
	if len(kv.data) != 0 {
		t.Error("malformed seed wrote session state")
	}
}

func TestSetStudentID(t *testing.T) {
	store := newTestStore(newMemHash())
	ctx := context.Background()

	sid, err := store.Establish(ctx, model.SessionSeed{ActorID: "u-2", Role: "Student"})
	if err != nil {
		t.Fatalf("Establish: %v", err)
	}
	if err := store.SetStudentID(ctx, sid, "42"); err != nil {
		t.Fatalf("SetStudentID: %v", err)
	}
	if got := store.Current(ctx, sid).StudentID; got != "42" {
		t.Errorf("StudentID = %q, want 42", got)
	}
}

func TestCurrentDegradesToAnonymous(t *testing.T) {
	ctx := context.Background()

	t.Run("empty sid", func(t *testing.T) {
		store := newTestStore(newMemHash())
		if snap := store.Current(ctx, ""); !snap.Anonymous() || snap.Role != model.RoleAnonymous {
			t.Errorf("snapshot = %+v", snap)
		}
	})

	t.Run("missing session", func(t *testing.T) {
		store := newTestStore(newMemHash())
		if snap := store.Current(ctx, "no-such-sid"); !snap.Anonymous() {
			t.Errorf("snapshot = %+v", snap)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		kv := newMemHash()
		kv.err = errors.New("connection refused")
		store := newTestStore(kv)
		if snap := store.Current(ctx, "any"); !snap.Anonymous() {
			t.Errorf("snapshot = %+v", snap)
		}
	})
}

func TestCurrentRoleAndActorID(t *testing.T) {
	store := newTestStore(newMemHash())
	ctx := context.Background()

	sid, err := store.Establish(ctx, model.SessionSeed{ActorID: "a-9", Role: "Admin"})
	if err != nil {
		t.Fatalf("Establish: %v", err)
	}
	if got := store.CurrentRole(ctx, sid); got != model.RoleAdmin {
		t.Errorf("CurrentRole = %v, want Admin", got)
	}
	if got := store.CurrentActorID(ctx, sid); got != "a-9" {
		t.Errorf("CurrentActorID = %q, want a-9", got)
	}
	if got := store.CurrentRole(ctx, "missing"); got != model.RoleAnonymous {
		t.Errorf("CurrentRole(missing) = %v, want Anonymous", got)
	}
	if got := store.CurrentActorID(ctx, "missing"); got != "" {
		t.Errorf("CurrentActorID(missing) = %q, want empty", got)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	store := newTestStore(newMemHash())
	ctx := context.Background()

	sid, err := store.Establish(ctx, model.SessionSeed{ActorID: "u-3", Role: "Teacher"})
	if err != nil {
		t.Fatalf("Establish: %v", err)
	}

	store.Clear(ctx, sid)
	if snap := store.Current(ctx, sid); !snap.Anonymous() {
		t.Errorf("cleared session still reads %+v", snap)
	}

	// Clearing again, and clearing sessions that never existed, must not
	// panic or change observable state.
	store.Clear(ctx, sid)
	store.Clear(ctx, "never-existed")
	store.Clear(ctx, "")

	if snap := store.Current(ctx, sid); !snap.Anonymous() {
		t.Errorf("session reappeared after repeated clears: %+v", snap)
	}
}

func TestClearSwallowsStorageFailure(t *testing.T) {
	kv := newMemHash()
	store := newTestStore(kv)
	ctx := context.Background()

	sid, err := store.Establish(ctx, model.SessionSeed{ActorID: "u-4", Role: "Student"})
	if err != nil {
		t.Fatalf("Establish: %v", err)
	}

	kv.err = errors.New("connection reset")
	store.Clear(ctx, sid) // must not panic

	// With storage failing, reads also degrade to anonymous.
	if snap := store.Current(ctx, sid); !snap.Anonymous() {
		t.Errorf("snapshot = %+v", snap)
	}
}
