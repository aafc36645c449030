package session

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitness_backend/internal/feature/auth/domain/entity"
	"fitness_backend/internal/feature/auth/usecase"
)

// keyOnlyMatcher はSETコマンドの値とTTL（実行時刻依存）を無視し、
// コマンド名とキーのみを比較するredismock用マッチャーです。
func keyOnlyMatcher(expected, actual []interface{}) error {
	if len(expected) < 2 || len(actual) < 2 {
		return fmt.Errorf("unexpected command shape: %v", actual)
	}
	if expected[0] != actual[0] || expected[1] != actual[1] {
		return fmt.Errorf("expected %v %v, got %v %v", expected[0], expected[1], actual[0], actual[1])
	}
	return nil
}

// createTestSession creates a session entity for testing.
func createTestSession(id string, userID uint, expiresIn time.Duration) *entity.Session {
	now := time.Now()
	return &entity.Session{
		ID:        id,
		UserID:    userID,
		UserAgent: "test-agent",
		IPAddress: "127.0.0.1",
		CreatedAt: now,
		ExpiresAt: now.Add(expiresIn),
	}
}

func TestNewSessionRedis(t *testing.T) {
	client, _ := redismock.NewClientMock()
	repo := NewSessionRedis(client, "session")

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.client, "client is nil")
	assert.Equal(t, "session", repo.prefix)
}

func TestSessionRedis_Create(t *testing.T) {
	t.Run("success: create session", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := NewSessionRedis(client, "session")
		session := createTestSession("session-001", 1, 7*24*time.Hour)

		mock.CustomMatch(keyOnlyMatcher).
			ExpectSet(repo.sessionKey(session.ID), nil, time.Minute).SetVal("OK")

		err := repo.Create(context.Background(), session)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure: expired session is rejected without touching Redis", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := NewSessionRedis(client, "session")
		session := createTestSession("expired-session", 1, -1*time.Hour)

		err := repo.Create(context.Background(), session)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSessionRedis_FindByID(t *testing.T) {
	t.Run("success: find session", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := NewSessionRedis(client, "session")
		session := createTestSession("find-session-id", 42, 7*24*time.Hour)
		data, err := json.Marshal(session)
		require.NoError(t, err)

		mock.ExpectGet(repo.sessionKey(session.ID)).SetVal(string(data))

		found, err := repo.FindByID(context.Background(), session.ID)

		require.NoError(t, err)
		assert.Equal(t, session.ID, found.ID)
		assert.Equal(t, session.UserID, found.UserID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure: session not found", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := NewSessionRedis(client, "session")

		mock.ExpectGet(repo.sessionKey("nonexistent-id")).RedisNil()

		_, err := repo.FindByID(context.Background(), "nonexistent-id")

		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure: corrupt session data", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := NewSessionRedis(client, "session")

		mock.ExpectGet(repo.sessionKey("corrupt-id")).SetVal("not json")

		_, err := repo.FindByID(context.Background(), "corrupt-id")

		assert.Error(t, err)
	})
}

func TestSessionRedis_Revoke(t *testing.T) {
	t.Run("success: revoke marks the session and keeps it readable", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := NewSessionRedis(client, "session")
		session := createTestSession("revoke-session-id", 7, 7*24*time.Hour)
		data, err := json.Marshal(session)
		require.NoError(t, err)

		mock.ExpectGet(repo.sessionKey(session.ID)).SetVal(string(data))
		mock.CustomMatch(keyOnlyMatcher).
			ExpectSet(repo.sessionKey(session.ID), nil, time.Minute).SetVal("OK")

		err = repo.Revoke(context.Background(), session.ID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure: revoking an unknown session", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := NewSessionRedis(client, "session")

		mock.ExpectGet(repo.sessionKey("unknown")).RedisNil()

		err := repo.Revoke(context.Background(), "unknown")

		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})
}
