package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamanlab/bank-advisor-be/internal/catalog"
	"github.com/zamanlab/bank-advisor-be/internal/core/llm"
	"github.com/zamanlab/bank-advisor-be/internal/models"
	"github.com/zamanlab/bank-advisor-be/internal/session"
)

type fakeBackend struct {
	reply        string
	transcribed  string
	err          error
	systemPrompt string
	transcript   []models.ChatMessage
}

func (f *fakeBackend) ChatCompletion(_ context.Context, transcript []models.ChatMessage, systemPrompt string) (string, error) {
	f.transcript = append([]models.ChatMessage(nil), transcript...)
	f.systemPrompt = systemPrompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeBackend) Transcribe(_ context.Context, _ []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.transcribed, nil
}

func newChatFixture(backend *fakeBackend) (*ChatService, *session.Store, string) {
	store := session.NewStore(time.Hour)
	prompts := llm.NewPromptBuilder(catalog.New())
	return NewChatService(store, backend, prompts), store, store.Init()
}

func TestHandleMessage_AppendsBothTurns(t *testing.T) {
	backend := &fakeBackend{reply: "Consider the Wakala product."}
	svc, store, id := newChatFixture(backend)

	reply, err := svc.HandleMessage(context.Background(), id, "Where should I invest?", "")
	require.NoError(t, err)
	assert.Equal(t, "Consider the Wakala product.", reply)

	transcript, err := store.Transcript(id)
	require.NoError(t, err)
	require.Len(t, transcript, 2)
	assert.Equal(t, models.ChatMessage{Role: models.RoleUser, Content: "Where should I invest?"}, transcript[0])
	assert.Equal(t, models.ChatMessage{Role: models.RoleAssistant, Content: "Consider the Wakala product."}, transcript[1])

	// the backend saw the transcript up to and including the user turn
	require.Len(t, backend.transcript, 1)
	assert.Equal(t, models.RoleUser, backend.transcript[0].Role)
}

func TestHandleMessage_ContextSelectsSystemPrompt(t *testing.T) {
	backend := &fakeBackend{reply: "ok"}
	svc, _, id := newChatFixture(backend)

	_, err := svc.HandleMessage(context.Background(), id, "hi", llm.ContextGoalPlanning)
	require.NoError(t, err)
	assert.Contains(t, backend.systemPrompt, "financial goals")

	_, err = svc.HandleMessage(context.Background(), id, "hi again", llm.ContextExpenseAnalysis)
	require.NoError(t, err)
	assert.Contains(t, backend.systemPrompt, "spending habits")

	_, err = svc.HandleMessage(context.Background(), id, "hi once more", "")
	require.NoError(t, err)
	assert.Contains(t, backend.systemPrompt, "Zaman Bank")
}

func TestHandleMessage_BackendFailureKeepsUserTurn(t *testing.T) {
	backend := &fakeBackend{err: errors.New("upstream down")}
	svc, store, id := newChatFixture(backend)

	_, err := svc.HandleMessage(context.Background(), id, "hello", "")
	require.Error(t, err)

	transcript, err := store.Transcript(id)
	require.NoError(t, err)
	require.Len(t, transcript, 1, "user turn retained, no assistant turn")
	assert.Equal(t, models.RoleUser, transcript[0].Role)
}

func TestHandleMessage_Validation(t *testing.T) {
	svc, _, id := newChatFixture(&fakeBackend{reply: "ok"})

	_, err := svc.HandleMessage(context.Background(), id, "", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.HandleMessage(context.Background(), "no-such-session", "hello", "")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestHandleAudio(t *testing.T) {
	backend := &fakeBackend{reply: "Noted.", transcribed: "I want to save for a wedding"}
	svc, store, id := newChatFixture(backend)

	reply, transcribed, err := svc.HandleAudio(context.Background(), id, []byte("riff-wav-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "Noted.", reply)
	assert.Equal(t, "I want to save for a wedding", transcribed)

	transcript, err := store.Transcript(id)
	require.NoError(t, err)
	require.Len(t, transcript, 2)
	assert.Equal(t, transcribed, transcript[0].Content)
}

func TestHandleAudio_EmptyPayload(t *testing.T) {
	svc, _, id := newChatFixture(&fakeBackend{})

	_, _, err := svc.HandleAudio(context.Background(), id, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
