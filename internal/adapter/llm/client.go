package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/polkiloo/bookbot/internal/domain/model"
)

// Fixed replies for degraded generator outcomes. The generator never raises
// past this boundary: every failure maps to a display-ready string.
const (
	MsgInvalidKey  = "Invalid API key. Get a new one from openrouter.ai/keys"
	MsgUnavailable = "AI down. Try again."
	MsgEmptyReply  = "AI returned nothing."
)

// historyWindow caps how many trailing turns are sent upstream.
const historyWindow = 7

const systemPrompt = `You are BookBot, a friendly and professional online book salesperson.

Your job:
1. Greet warmly and build rapport.
2. Ask what kind of book the customer wants (genre, author, title).
3. Recommend 1-3 books with price and a short pitch.
4. Ask: "Would you like to buy [Book Name] for [Price]?"
5. After confirmation, ask for full name, phone number and delivery address.
6. Confirm: "Order confirmed! Total: [Price]. Tracking: [TRK-XXX]"

Rules:
- Be warm, friendly and persuasive.
- Keep replies short (2-3 lines max).
- Always push toward purchase.
- Use *bold* for book titles and prices.`

// Generator produces a reply for a conversation transcript.
type Generator interface {
	Generate(ctx context.Context, history []model.ChatTurn) string
}

// HTTPClient implements Generator against a chat-completions endpoint.
type HTTPClient struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewHTTPClient creates a generator client with the given request timeout.
func NewHTTPClient(endpoint, apiKey, modelName string, timeout time.Duration, logger *slog.Logger) *HTTPClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		model:      modelName,
		logger:     logger,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Generate sends the persona prompt plus the trailing history window and
// maps every transport outcome to a display string.
func (c *HTTPClient) Generate(ctx context.Context, history []model.ChatTurn) string {
	if len(history) == 0 {
		history = []model.ChatTurn{{Role: model.RoleUser, Content: "Hi"}}
	}
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	messages := make([]chatMessage, 0, len(history)+1)
	messages = append(messages, chatMessage{Role: string(model.RoleSystem), Content: systemPrompt})
	for _, turn := range history {
		messages = append(messages, chatMessage{Role: string(turn.Role), Content: turn.Content})
	}

	payload, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.3,
		MaxTokens:   200,
	})
	if err != nil {
		c.logger.Error("llm payload encode failed", slog.String("error", err.Error()))
		return MsgUnavailable
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		c.logger.Error("llm request build failed", slog.String("error", err.Error()))
		return MsgUnavailable
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("llm request failed", slog.String("error", err.Error()))
		return MsgUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return MsgInvalidKey
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("llm error response",
			slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return fmt.Sprintf("AI error %d. Try again.", resp.StatusCode)
	}

	var data chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		c.logger.Error("llm response decode failed", slog.String("error", err.Error()))
		return MsgUnavailable
	}
	if len(data.Choices) == 0 {
		return MsgEmptyReply
	}

	content := strings.TrimSpace(data.Choices[0].Message.Content)
	if content == "" {
		return MsgEmptyReply
	}
	return content
}
