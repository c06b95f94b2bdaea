package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"coursecatalog/internal/auth"
	"coursecatalog/internal/model"
	"coursecatalog/internal/repository/memory"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type recordingEmitter struct {
	mu     sync.Mutex
	events []model.CatalogEvent
}

func (r *recordingEmitter) Emit(_ context.Context, evt model.CatalogEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
}

func (r *recordingEmitter) types() []model.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	store      *memory.Store
	events     *recordingEmitter
	tokens     *auth.TokenManager
	users      UserService
	authn      AuthService
	categories CategoryService
	courses    CourseService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.New()
	events := &recordingEmitter{}
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	tokens := auth.NewTokenManager("test-secret", time.Minute, time.Hour)
	return &fixture{
		store:      store,
		events:     events,
		tokens:     tokens,
		users:      NewUserService(store.Users(), hasher),
		authn:      NewAuthService(store.Users(), hasher, tokens, false),
		categories: NewCategoryService(store.Categories(), events),
		courses:    NewCourseService(store.Courses(), store.Categories(), events),
	}
}

func (f *fixture) register(t *testing.T, username string) *model.Identity {
	t.Helper()
	u, err := f.users.Register(context.Background(), RegisterInput{
		Username: username,
		Email:    username + "@x.com",
		Password: "pw123",
	})
	require.NoError(t, err)
	return &model.Identity{UserID: u.ID, Username: u.Username}
}
