package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edu-cockpit/cockpit/ent"
	"github.com/edu-cockpit/cockpit/ent/chathistory"
	testdb "github.com/edu-cockpit/cockpit/test/database"
)

func newHistoryFixture(t *testing.T) (*ChatHistoryService, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return NewChatHistoryService(client.Client), client.Client
}

// seedMessage writes one chat row with an explicit timestamp so ordering
// assertions are deterministic.
func seedMessage(t *testing.T, client *ent.Client, adminID int, sessionID string, role chathistory.Role, content string, at time.Time) *ent.ChatHistory {
	t.Helper()
	row, err := client.ChatHistory.Create().
		SetAdminID(adminID).
		SetSessionID(sessionID).
		SetRole(role).
		SetContent(content).
		SetCreatedAt(at).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestLastUserMessages(t *testing.T) {
	svc, client := newHistoryFixture(t)
	ctx := context.Background()
	base := time.Now().Add(-time.Hour).Truncate(time.Millisecond)

	for i := 0; i < 6; i++ {
		seedMessage(t, client, 7, "sess-1", chathistory.RoleUser,
			fmt.Sprintf("问题%d", i), base.Add(time.Duration(i)*time.Minute))
		seedMessage(t, client, 7, "sess-1", chathistory.RoleAssistant,
			fmt.Sprintf("回答%d", i), base.Add(time.Duration(i)*time.Minute+time.Second))
	}
	// Noise: another admin and another session.
	seedMessage(t, client, 8, "sess-1", chathistory.RoleUser, "别人的问题", base)
	seedMessage(t, client, 7, "sess-2", chathistory.RoleUser, "别的会话", base)

	got, err := svc.LastUserMessages(ctx, 7, "sess-1", 4)
	require.NoError(t, err)

	// Last four user messages, oldest first; assistant rows excluded.
	assert.Equal(t, []string{"问题2", "问题3", "问题4", "问题5"}, got)

	t.Run("empty session id is a no-op", func(t *testing.T) {
		got, err := svc.LastUserMessages(ctx, 7, "", 4)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("soft deleted rows are invisible", func(t *testing.T) {
		_, err := client.ChatHistory.Update().
			Where(chathistory.SessionID("sess-1")).
			SetIsDeleted(true).
			Save(ctx)
		require.NoError(t, err)

		got, err := svc.LastUserMessages(ctx, 7, "sess-1", 4)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestListSessions(t *testing.T) {
	svc, client := newHistoryFixture(t)
	ctx := context.Background()
	base := time.Now().Add(-2 * time.Hour).Truncate(time.Millisecond)

	// sess-a: older activity. First user message is longer than the
	// preview window.
	seedMessage(t, client, 7, "sess-a", chathistory.RoleUser, "统计22级男生各班人数", base)
	seedMessage(t, client, 7, "sess-a", chathistory.RoleAssistant, "好的", base.Add(time.Second))

	// sess-b: newer activity, short first message.
	seedMessage(t, client, 7, "sess-b", chathistory.RoleUser, "你好", base.Add(time.Hour))
	seedMessage(t, client, 7, "sess-b", chathistory.RoleAssistant, "您好！", base.Add(time.Hour+time.Second))

	// Another admin never shows up.
	seedMessage(t, client, 8, "sess-c", chathistory.RoleUser, "无关", base)

	previews, total, err := svc.ListSessions(ctx, 7, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, previews, 2)

	// Newest activity first.
	assert.Equal(t, "sess-b", previews[0].SessionID)
	assert.Equal(t, "你好", previews[0].Preview)
	assert.Equal(t, 2, previews[0].MessageCount)

	assert.Equal(t, "sess-a", previews[1].SessionID)
	assert.Equal(t, "统计22级男生…", previews[1].Preview)

	t.Run("pagination", func(t *testing.T) {
		page, total, err := svc.ListSessions(ctx, 7, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, page, 1)
		assert.Equal(t, "sess-a", page[0].SessionID)
	})

	t.Run("offset beyond total", func(t *testing.T) {
		page, total, err := svc.ListSessions(ctx, 7, 10, 20)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Empty(t, page)
	})

	t.Run("validation", func(t *testing.T) {
		_, _, err := svc.ListSessions(ctx, 7, -1, 20)
		assert.True(t, IsValidationError(err))
		_, _, err = svc.ListSessions(ctx, 7, 0, 0)
		assert.True(t, IsValidationError(err))
	})
}

func TestListMessages(t *testing.T) {
	svc, client := newHistoryFixture(t)
	ctx := context.Background()
	base := time.Now().Add(-time.Hour).Truncate(time.Millisecond)

	seedMessage(t, client, 7, "sess-1", chathistory.RoleUser, "你好", base)
	seedMessage(t, client, 7, "sess-1", chathistory.RoleAssistant, "您好！", base.Add(time.Second))
	seedMessage(t, client, 7, "sess-1", chathistory.RoleUser, "统计人数", base.Add(2*time.Second))

	messages, total, err := svc.ListMessages(ctx, 7, "sess-1", 0, 20)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, messages, 3)

	assert.Equal(t, "user", messages[0].Role)
	assert.Equal(t, "你好", messages[0].Content)
	assert.Equal(t, "assistant", messages[1].Role)
	assert.Equal(t, "统计人数", messages[2].Content)

	t.Run("pagination window", func(t *testing.T) {
		page, total, err := svc.ListMessages(ctx, 7, "sess-1", 1, 1)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, page, 1)
		assert.Equal(t, "您好！", page[0].Content)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, _, err := svc.ListMessages(ctx, 7, "missing", 0, 20)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("other admin cannot read the session", func(t *testing.T) {
		_, _, err := svc.ListMessages(ctx, 8, "sess-1", 0, 20)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		_, _, err := svc.ListMessages(ctx, 7, "", 0, 20)
		assert.True(t, IsValidationError(err))
	})
}

func TestDeleteSession(t *testing.T) {
	svc, client := newHistoryFixture(t)
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	seedMessage(t, client, 7, "sess-1", chathistory.RoleUser, "你好", base)
	seedMessage(t, client, 7, "sess-2", chathistory.RoleUser, "别的会话", base)

	require.NoError(t, svc.DeleteSession(ctx, 7, "sess-1"))

	_, _, err := svc.ListMessages(ctx, 7, "sess-1", 0, 20)
	assert.ErrorIs(t, err, ErrNotFound)

	// The other session is untouched.
	_, total, err := svc.ListMessages(ctx, 7, "sess-2", 0, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	t.Run("deleting again reports not found", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteSession(ctx, 7, "sess-1"), ErrNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		assert.True(t, IsValidationError(svc.DeleteSession(ctx, 7, "")))
	})
}

func TestDeleteAllSessions(t *testing.T) {
	svc, client := newHistoryFixture(t)
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	seedMessage(t, client, 7, "sess-1", chathistory.RoleUser, "你好", base)
	seedMessage(t, client, 7, "sess-1", chathistory.RoleAssistant, "您好！", base.Add(time.Second))
	seedMessage(t, client, 7, "sess-2", chathistory.RoleUser, "统计", base)
	seedMessage(t, client, 8, "sess-3", chathistory.RoleUser, "无关", base)

	n, err := svc.DeleteAllSessions(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, total, err := svc.ListSessions(ctx, 7, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	// The other admin's data survives.
	_, total, err = svc.ListSessions(ctx, 8, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}
