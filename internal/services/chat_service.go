package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/zamanlab/bank-advisor-be/internal/core/llm"
	"github.com/zamanlab/bank-advisor-be/internal/models"
	"github.com/zamanlab/bank-advisor-be/internal/session"
)

// Backend is the slice of the language-model client the chat flow needs.
type Backend interface {
	ChatCompletion(ctx context.Context, transcript []models.ChatMessage, systemPrompt string) (string, error)
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// ChatService runs one conversation turn: session transcript in, assistant
// reply out. The backend call happens outside any session lock, so the
// assistant turn is appended only once the call resolves; a concurrent read
// during that window sees just the user's turn.
type ChatService struct {
	sessions *session.Store
	backend  Backend
	prompts  *llm.PromptBuilder
}

func NewChatService(sessions *session.Store, backend Backend, prompts *llm.PromptBuilder) *ChatService {
	return &ChatService{
		sessions: sessions,
		backend:  backend,
		prompts:  prompts,
	}
}

// HandleMessage appends the user's message to the session transcript,
// replays the transcript to the backend under the context-selected system
// prompt, records the reply and returns it. On backend failure the user
// turn is retained and the error propagated.
func (s *ChatService) HandleMessage(ctx context.Context, sessionID, message, requestContext string) (string, error) {
	if message == "" {
		return "", fmt.Errorf("%w: message is required", ErrInvalidInput)
	}

	if err := s.sessions.AppendTurn(sessionID, models.RoleUser, message); err != nil {
		return "", err
	}
	transcript, err := s.sessions.Transcript(sessionID)
	if err != nil {
		return "", err
	}

	systemPrompt := s.prompts.SystemPrompt(requestContext)
	reply, err := s.backend.ChatCompletion(ctx, transcript, systemPrompt)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("chat completion failed")
		return "", err
	}

	if err := s.sessions.AppendTurn(sessionID, models.RoleAssistant, reply); err != nil {
		return "", err
	}
	return reply, nil
}

// HandleAudio transcribes the recording and runs the text through the
// regular message flow, returning both the transcription and the reply.
func (s *ChatService) HandleAudio(ctx context.Context, sessionID string, audio []byte) (reply, transcribed string, err error) {
	if len(audio) == 0 {
		return "", "", fmt.Errorf("%w: audio payload is empty", ErrInvalidInput)
	}

	transcribed, err = s.backend.Transcribe(ctx, audio)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("transcription failed")
		return "", "", err
	}

	reply, err = s.HandleMessage(ctx, sessionID, transcribed, "")
	if err != nil {
		return "", transcribed, err
	}
	return reply, transcribed, nil
}
