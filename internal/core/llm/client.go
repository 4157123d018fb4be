package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/zamanlab/bank-advisor-be/internal/models"
)

// ErrBackendTimeout marks a language-model call that exceeded its deadline.
var ErrBackendTimeout = errors.New("language model backend timed out")

const (
	chatMaxTokens   = 1500
	chatTemperature = 0.7
)

// Client wraps the OpenAI-compatible backend: chat completion, embeddings
// and audio transcription. Every call gets a bounded timeout.
type Client struct {
	client       *openai.Client
	chatModel    string
	embedModel   string
	whisperModel string
	timeout      time.Duration
}

type Options struct {
	APIKey       string
	BaseURL      string
	ChatModel    string
	EmbedModel   string
	WhisperModel string
	Timeout      time.Duration
}

func NewClient(opts Options) *Client {
	if opts.APIKey == "" {
		log.Warn().Msg("⚠️ OPENAI_API_KEY is empty, LLM calls will fail")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}

	config := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		config.BaseURL = opts.BaseURL
	}

	return &Client{
		client:       openai.NewClientWithConfig(config),
		chatModel:    opts.ChatModel,
		embedModel:   opts.EmbedModel,
		whisperModel: opts.WhisperModel,
		timeout:      opts.Timeout,
	}
}

// ChatCompletion replays the transcript to the backend, prepending the
// system prompt when one is given, and returns the assistant's reply.
func (c *Client) ChatCompletion(ctx context.Context, transcript []models.ChatMessage, systemPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	messages := make([]openai.ChatCompletionMessage, 0, len(transcript)+1)
	if systemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	for _, m := range transcript {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.chatModel,
		Messages:    messages,
		MaxTokens:   chatMaxTokens,
		Temperature: chatTemperature,
	})
	if err != nil {
		return "", c.wrapErr("chat completion", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

// CreateEmbedding returns the embedding vector for the given text.
func (c *Client) CreateEmbedding(ctx context.Context, text string) ([]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(c.embedModel),
		Input: []string{text},
	})
	if err != nil {
		return nil, c.wrapErr("embedding", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("embedding: no data returned")
	}
	return resp.Data[0].Embedding, nil
}

// Transcribe converts recorded audio to text.
func (c *Client) Transcribe(ctx context.Context, audio []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.whisperModel,
		FilePath: "audio.wav",
		Reader:   bytes.NewReader(audio),
	})
	if err != nil {
		return "", c.wrapErr("transcription", err)
	}
	return resp.Text, nil
}

func (c *Client) wrapErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrBackendTimeout)
	}
	return fmt.Errorf("%s: openai error: %w", op, err)
}
