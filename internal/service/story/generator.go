package story

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/helphopelive/story-builder/backend/internal/config"
	model "github.com/helphopelive/story-builder/backend/internal/model/session"
)

// Generator produces story drafts. When the generative model is configured
// it runs the assembled prompt through an eino chain; otherwise, and on any
// failure, it composes a deterministic placeholder. Generate never returns
// an error, so callers need no retry or degraded-mode logic of their own.
type Generator struct {
	chain   compose.Runnable[map[string]any, *schema.Message]
	timeout time.Duration
}

// NewGenerator builds the generation chain when credentials are present.
// A missing or broken model configuration is logged once and the generator
// stays on the mock branch for the lifetime of the process.
func NewGenerator(ctx context.Context, cfg config.AIConfig) *Generator {
	g := &Generator{timeout: time.Duration(cfg.TimeoutSeconds) * time.Second}

	if !cfg.Enabled() {
		log.Println("[story] generative model not configured, drafts will use mock composition")
		return g
	}

	chain, err := buildChain(ctx, cfg)
	if err != nil {
		log.Printf("[story] failed to initialize generative model: %v", err)
		log.Println("[story] continuing with mock story composition")
		return g
	}

	g.chain = chain
	log.Println("[story] generative model initialized successfully")
	return g
}

func buildChain(ctx context.Context, cfg config.AIConfig) (compose.Runnable[map[string]any, *schema.Message], error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.UserMessage("{prompt}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile story chain: %w", err)
	}

	return runnable, nil
}

// Configured reports whether the generative branch is available.
func (g *Generator) Configured() bool {
	return g.chain != nil
}

// Generate returns a story draft for the given tone and answers. Every
// failure path ends in the mock composer; this function always succeeds.
func (g *Generator) Generate(ctx context.Context, tone model.Tone, answers []model.Answer) string {
	if g.chain == nil {
		return MockStory(tone, answers)
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	response, err := g.chain.Invoke(callCtx, map[string]any{
		"prompt": AssemblePrompt(tone, answers),
	})
	if err != nil {
		log.Printf("[story] generation failed: %v", err)
		log.Println("[story] falling back to mock story composition")
		return MockStory(tone, answers)
	}

	text := strings.TrimSpace(response.Content)
	if text == "" {
		// A usable result must carry text; an empty completion counts as
		// a failure.
		log.Println("[story] model returned no usable text, falling back to mock story composition")
		return MockStory(tone, answers)
	}

	log.Printf("[story] generated draft, tone=%s, length=%d", tone, len(text))
	return text
}

// Stream runs the configured branch in streaming mode for the SSE endpoint.
// It errors when the model is unconfigured or the stream cannot start;
// callers fall back to Generate, which cannot fail.
func (g *Generator) Stream(ctx context.Context, tone model.Tone, answers []model.Answer) (*schema.StreamReader[*schema.Message], error) {
	if g.chain == nil {
		return nil, fmt.Errorf("generative model not configured")
	}

	stream, err := g.chain.Stream(ctx, map[string]any{
		"prompt": AssemblePrompt(tone, answers),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to stream story chain output: %w", err)
	}

	return stream, nil
}
