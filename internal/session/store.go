package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MalithSamaradiwakara/frontend/internal/model"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ErrMalformedSession is returned when a login response is missing the
// fields a session cannot exist without.
var ErrMalformedSession = errors.New("login response missing actor id or role")

// Field keys of the session hash. These mirror the storage contract the
// rest of the product was built against, so they must not be renamed.
const (
	fieldUserID    = "userId"
	fieldUserType  = "userType"
	fieldUserName  = "userName"
	fieldToken     = "token"
	fieldStudentID = "studentId"
)

// Snapshot is a point-in-time read of one session. Role is Anonymous when
// no session exists; StudentID is populated only for students whose
// secondary lookup succeeded.
type Snapshot struct {
	ActorID     string
	Role        model.Role
	DisplayName string
	Token       string
	StudentID   string
}

// Anonymous reports whether the snapshot carries no authenticated actor.
func (s Snapshot) Anonymous() bool {
	return s.ActorID == ""
}

// hashStore is the minimal key-value surface the store needs. Satisfied by
// redisHash in production and by an in-memory double in tests.
type hashStore interface {
	SetAll(ctx context.Context, key string, fields map[string]string, ttl time.Duration) error
	GetAll(ctx context.Context, key string) (map[string]string, error)
	SetField(ctx context.Context, key, field, value string) error
	Delete(ctx context.Context, key string) error
}

// Store is the single source of truth for "who is acting right now".
// Reads degrade to Anonymous on storage failure; Clear is idempotent and
// never fails from the caller's point of view.
type Store struct {
	kv  hashStore
	ttl time.Duration
	log zerolog.Logger
}

// NewStore creates a Redis-backed session store.
func NewStore(rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *Store {
	return &Store{kv: redisHash{rdb}, ttl: ttl, log: log}
}

// Establish creates a session from a login response and returns its id.
// ActorID and Role must both be present; anything else fails with
// ErrMalformedSession before any state is written.
func (s *Store) Establish(ctx context.Context, seed model.SessionSeed) (string, error) {
	if seed.ActorID == "" || seed.Role == "" {
		return "", ErrMalformedSession
	}
	role := model.ParseRole(seed.Role)
	if !role.Authenticated() {
		return "", ErrMalformedSession
	}

	sid := uuid.New().String()
	fields := map[string]string{
		fieldUserID:   seed.ActorID,
		fieldUserType: string(role),
		fieldUserName: seed.DisplayName,
	}
	if seed.Token != "" {
		fields[fieldToken] = seed.Token
	}

	if err := s.kv.SetAll(ctx, sessionKey(sid), fields, s.ttl); err != nil {
		return "", fmt.Errorf("persist session: %w", err)
	}
	return sid, nil
}

// SetStudentID records the secondary lookup result on an existing session.
// Best effort: the session stays valid without it.
func (s *Store) SetStudentID(ctx context.Context, sid, studentID string) error {
	if sid == "" || studentID == "" {
		return nil
	}
	return s.kv.SetField(ctx, sessionKey(sid), fieldStudentID, studentID)
}

// Current returns the full session snapshot. Missing sessions and storage
// failures both read as Anonymous; failures are logged, not surfaced.
func (s *Store) Current(ctx context.Context, sid string) Snapshot {
	if sid == "" {
		return Snapshot{Role: model.RoleAnonymous}
	}
	fields, err := s.kv.GetAll(ctx, sessionKey(sid))
	if err != nil {
		s.log.Warn().Err(err).Msg("session read failed, treating as anonymous")
		return Snapshot{Role: model.RoleAnonymous}
	}
	// Absence of userId is the canonical logged-out signal.
	if fields[fieldUserID] == "" {
		return Snapshot{Role: model.RoleAnonymous}
	}
	return Snapshot{
		ActorID:     fields[fieldUserID],
		Role:        model.ParseRole(fields[fieldUserType]),
		DisplayName: fields[fieldUserName],
		Token:       fields[fieldToken],
		StudentID:   fields[fieldStudentID],
	}
}

// CurrentRole returns the session's role, or Anonymous if nothing is
// persisted. Never fails.
func (s *Store) CurrentRole(ctx context.Context, sid string) model.Role {
	return s.Current(ctx, sid).Role
}

// CurrentActorID returns the persisted actor id, or "" when logged out.
func (s *Store) CurrentActorID(ctx context.Context, sid string) string {
	return s.Current(ctx, sid).ActorID
}

// Clear removes all session state. Idempotent: clearing a missing session
// is a no-op, and a storage failure still leaves the caller observing
// Anonymous on the next read.
func (s *Store) Clear(ctx context.Context, sid string) {
	if sid == "" {
		return
	}
	if err := s.kv.Delete(ctx, sessionKey(sid)); err != nil {
		s.log.Warn().Err(err).Msg("session clear failed")
	}
}

func sessionKey(sid string) string {
	return "session:" + sid
}

// redisHash adapts *redis.Client to the hashStore surface.
type redisHash struct {
	rdb *redis.Client
}

func (r redisHash) SetAll(ctx context.Context, key string, fields map[string]string, ttl time.Duration) error {
	pipe := r.rdb.TxPipeline()
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	pipe.HSet(ctx, key, args...)
	pipe.Expire(ctx, key, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (r redisHash) GetAll(ctx context.Context, key string) (map[string]string, error) {
	return r.rdb.HGetAll(ctx, key).Result()
}

func (r redisHash) SetField(ctx context.Context, key, field, value string) error {
	return r.rdb.HSet(ctx, key, field, value).Err()
}

func (r redisHash) Delete(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, key).Err()
}
