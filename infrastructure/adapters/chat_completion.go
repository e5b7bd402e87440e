package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/donovanhide/eventsource"

	"github.com/toruasakawa/short-video-generator-clean/application/ports/outbound"
	"github.com/toruasakawa/short-video-generator-clean/config"
)

const DoneSignal = "[DONE]"
const MaxRetries = 3

type chatGptRequest struct {
	Stream      bool             `json:"stream"`
	Model       string           `json:"model"`
	Temperature float64          `json:"temperature"`
	Messages    []chatGptMessage `json:"messages"`
}

type chatGptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatGptChunkBody struct {
	Choices []chatGptResponseChoice `json:"choices"`
}

type chatGptResponseChoice struct {
	Index int `json:"index"`
	Delta struct {
		Content string `json:"content"`
	} `json:"delta"`
}

// ChatCompleter assembles the full text of one streamed chat completion.
type ChatCompleter interface {
	Complete(ctx context.Context, prompt string, temperature float64) (string, error)
}

type chatCompletionClient struct {
	logger    outbound.LoggerPort
	gptConfig *config.GptConfig
}

func NewChatCompletionClient(gptConfig *config.GptConfig, logger outbound.LoggerPort) ChatCompleter {
	return &chatCompletionClient{
		logger:    logger,
		gptConfig: gptConfig,
	}
}

func (c *chatCompletionClient) Complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	req, err := c.createRequest(ctx, prompt, temperature)
	if err != nil {
		c.logger.Error(err, "Failed to create HTTP request for completion stream")
		return "", err
	}

	stream, err := eventsource.SubscribeWithRequest("", req)
	if err != nil {
		c.logger.Error(err, "Failed to subscribe to completion stream")
		return "", err
	}
	defer stream.Close()

	var builder strings.Builder
	retryCount := 0

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case ev := <-stream.Events:
			if ev.Data() == DoneSignal {
				return builder.String(), nil
			}
			payload, extractErr := c.extractPayload(ev)
			if extractErr != nil {
				return "", extractErr
			}
			builder.WriteString(payload)
			retryCount = 0
		case streamErr := <-stream.Errors:
			if streamErr == io.EOF {
				return builder.String(), nil
			}
			if retryCount < MaxRetries {
				c.logger.ErrorWithFields(streamErr, "Error occurred during streaming, retrying", map[string]interface{}{
					"retry_count": retryCount,
				})
				retryCount++
				continue
			}
			c.logger.Error(streamErr, "Error occurred during streaming, max retries reached")
			return "", streamErr
		}
	}
}

func (c *chatCompletionClient) extractPayload(event eventsource.Event) (string, error) {
	var chunkBody chatGptChunkBody
	err := json.Unmarshal([]byte(event.Data()), &chunkBody)
	if err != nil {
		c.logger.Error(err, "Failed to unmarshal event data")
		return "", err
	}
	if len(chunkBody.Choices) == 0 {
		return "", nil
	}

	return chunkBody.Choices[0].Delta.Content, nil
}

func (c *chatCompletionClient) createRequest(ctx context.Context, prompt string, temperature float64) (*http.Request, error) {
	promptReq := chatGptRequest{
		Stream:      true,
		Model:       c.gptConfig.Model,
		Temperature: temperature,
		Messages: []chatGptMessage{{
			Role:    "user",
			Content: prompt,
		}},
	}

	payloadBytes, err := json.Marshal(promptReq)
	if err != nil {
		c.logger.Error(err, "Failed to marshal the request body")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.gptConfig.ApiUrl, bytes.NewBuffer(payloadBytes))
	if err != nil {
		c.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.gptConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
