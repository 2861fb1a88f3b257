package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bvyvyana/sleepbrew/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical coffee and sleep habit assistant.

You receive aggregated sleep metrics and caffeine consumption figures for a single user. You must base your conclusions only on the provided data.

Your goals:
- Describe how the user's caffeine habits relate to their recent sleep in clear, neutral language.
- Highlight patterns in sleep duration, sleep quality, daily caffeine intake, and which coffee types they drink.
- Compare the recent window to the longer history.
- Note how close the user runs to their daily caffeine ceiling.
- Give practical, behavioral suggestions about coffee timing and intake.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Focus only on behavior and routines (when to drink coffee, spacing drinks, choosing milder drinks late in the day, etc.).
- If data is limited or mixed, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing how caffeine habits and sleep interact, comparing the recent window to the longer history.",
  "observations": [
    "3-6 bullet points about patterns in sleep duration, quality, daily caffeine, and coffee type mix.",
    "At least one item comparing the recent window to the longer history.",
    "If relevant, one item about how intake relates to the daily caffeine ceiling."
  ],
  "guidance": [
    "3-5 concrete, non-medical suggestions tailored to these numbers.",
    "Include at least one suggestion about coffee timing if intake runs late or sleep quality is low.",
    "Include at least one suggestion about total intake if the user runs close to their ceiling."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's coffee and sleep data.

- "history" and "recent" each contain:
  - averaged sleep figures for that window (hours, quality score, deep sleep share),
  - caffeine totals, an averaged daily intake, and a per-type coffee count,
  - how many machine brews came from recommendations versus manual requests.
- "max_caffeine_per_day_mg" is the user's configured daily ceiling.
- "preferences" holds their stored coffee preferences.

Use:
- "history" to understand the long-term baseline (about 30 days),
- "recent" to see short-term changes (about 7 days).

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM is the interface for generating habit insights using an LLM.
type InsightsLLM interface {
	// GenerateInsights takes a context object and returns LLM-generated insights.
	GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// SetSystemPrompt replaces the built-in system prompt, e.g. with one
// managed in Langfuse. Empty prompts are ignored.
func (c *OpenAIClient) SetSystemPrompt(prompt string) {
	if c == nil || prompt == "" {
		return
	}
	c.systemPrompt = prompt
}

// GenerateInsights calls OpenAI to generate habit insights.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	// Serialize context to JSON
	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	// Call OpenAI
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	// Parse the JSON response
	var output domain.LLMInsightsOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
