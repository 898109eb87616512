package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"azmedical/internal/domain/model"
	infra "azmedical/internal/infra/repository"
	"azmedical/internal/store"
)

func TestSession_RoundTrip(t *testing.T) {
	s := store.NewMemoryStore()
	sessions := infra.NewSessionStoreRepository(s, zap.NewNop())

	user := model.UserProfile{
		ID:    "1",
		Name:  "Əli Məmmədov",
		Email: "ali@example.com",
		Type:  model.AccountRegular,
	}
	sessions.Set(user, "mock_token_abc")

	got := sessions.Get()
	assert.True(t, got.IsAuthenticated)
	require.NotNil(t, got.User)
	assert.Equal(t, user, *got.User)
	assert.Equal(t, "mock_token_abc", got.Token)
}

func TestSession_ClearRemovesBothKeys(t *testing.T) {
	s := store.NewMemoryStore()
	sessions := infra.NewSessionStoreRepository(s, zap.NewNop())

	sessions.Set(model.UserProfile{ID: "1", Name: "A", Email: "a@b.az"}, "tok")
	sessions.Clear()

	got := sessions.Get()
	assert.False(t, got.IsAuthenticated)
	assert.Nil(t, got.User)
	assert.Empty(t, got.Token)

	_, ok := s.Get(store.KeyAuthToken)
	assert.False(t, ok)
	_, ok = s.Get(store.KeyUser)
	assert.False(t, ok)
}

func TestSession_AuthenticatedFollowsTokenPresence(t *testing.T) {
	s := store.NewMemoryStore()
	sessions := infra.NewSessionStoreRepository(s, zap.NewNop())

	assert.False(t, sessions.Get().IsAuthenticated)

	s.Set(store.KeyAuthToken, "")
	assert.False(t, sessions.Get().IsAuthenticated)

	s.Set(store.KeyAuthToken, "tok")
	assert.True(t, sessions.Get().IsAuthenticated)
}

func TestSession_CorruptProfileReadsAsNil(t *testing.T) {
	s := store.NewMemoryStore()
	sessions := infra.NewSessionStoreRepository(s, zap.NewNop())

	s.Set(store.KeyAuthToken, "tok")
	s.Set(store.KeyUser, "{broken")

	got := sessions.Get()
	assert.True(t, got.IsAuthenticated)
	assert.Nil(t, got.User)
}

func TestSocialSupportVariant(t *testing.T) {
	s := store.NewMemoryStore()
	sessions := infra.NewSessionStoreRepository(s, zap.NewNop())

	sessions.Set(model.UserProfile{
		ID:       "social-1",
		Name:     "Sosial Yardım İstifadəçisi",
		Email:    "sosial@azmedical.az",
		Type:     model.AccountSocialSupport,
		Category: model.SupportAssistance,
	}, "tok")

	got := sessions.Get()
	require.NotNil(t, got.User)
	assert.True(t, got.User.IsSocialSupport())
	assert.Equal(t, model.SupportAssistance, got.User.Category)
}
