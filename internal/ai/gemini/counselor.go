package gemini

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/krishna0743/careerguid-ai/internal/utils"
)

const (
	// Persona is sent as the system instruction with every message.
	Persona = "You are an AI Career Counselor. Based on the user's message, provide supportive, insightful, and concise advice about job trends, required skills, or education paths in a friendly tone."

	NotInitializedReply = "Error: Gemini client is not initialized. Check API key configuration."
	FailureReply        = "Error contacting Gemini API after several retries."

	DefaultMaxAttempts  = 3
	DefaultBackoffUnit  = time.Second
	defaultMaxLogLength = 200
)

// CounselorConfig tunes retries and pacing of Gemini calls.
type CounselorConfig struct {
	// MaxAttempts is the total number of calls per message.
	MaxAttempts int
	// BackoffUnit is multiplied by 2^attempt between failed calls.
	BackoffUnit time.Duration
	// RequestsPerMinute paces outgoing calls when positive.
	RequestsPerMinute int
	MaxLogLength      int
}

// Counselor is a Gemini backed ai.Counselor with bounded retries.
type Counselor struct {
	generator   ContentGenerator
	maxAttempts int
	unit        time.Duration
	limiter     *rate.Limiter
	maxLogLen   int
	logger      *zap.Logger

	wait func(ctx context.Context, d time.Duration) error
}

// NewCounselor wires a generator into a Counselor. A nil generator yields a
// counselor that answers every message with NotInitializedReply.
func NewCounselor(generator ContentGenerator, cfg CounselorConfig, logger *zap.Logger) *Counselor {
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.BackoffUnit < 0 {
		cfg.BackoffUnit = DefaultBackoffUnit
	}
	if cfg.MaxLogLength <= 0 {
		cfg.MaxLogLength = defaultMaxLogLength
	}

	c := &Counselor{
		generator:   generator,
		maxAttempts: cfg.MaxAttempts,
		unit:        cfg.BackoffUnit,
		maxLogLen:   cfg.MaxLogLength,
		logger:      logger,
		wait:        utils.WaitFor,
	}

	if cfg.RequestsPerMinute > 0 {
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1)
	}

	return c
}

// Enabled reports whether a generator is configured.
func (c *Counselor) Enabled() bool {
	return c != nil && c.generator != nil
}

// Chat sends message to Gemini with the counselor persona and returns the
// reply, or a fixed error text once all attempts have failed.
func (c *Counselor) Chat(ctx context.Context, message string) string {
	if !c.Enabled() {
		return NotInitializedReply
	}

	c.logger.Debug("gemini chat request",
		zap.Int("message_length", utf8.RuneCountInString(message)),
		zap.String("message_preview", utils.TruncateForLog(message, c.maxLogLen)),
	)

	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		reply, err := c.call(ctx, message)
		if err == nil {
			c.logger.Debug("gemini chat response",
				zap.Int("attempt", attempt+1),
				zap.Int("response_length", utf8.RuneCountInString(reply)),
				zap.String("response_preview", utils.TruncateForLog(reply, c.maxLogLen)),
			)
			return reply
		}

		if attempt == c.maxAttempts-1 {
			c.logger.Error("gemini chat failed",
				zap.Int("attempts", c.maxAttempts),
				zap.Error(err),
			)
			break
		}

		delay := utils.Backoff(c.unit, attempt)
		c.logger.Warn("gemini chat error, retrying",
			zap.Int("attempt", attempt+1),
			zap.Int("max_attempts", c.maxAttempts),
			zap.Duration("retry_in", delay),
			zap.Error(err),
		)

		if err := c.wait(ctx, delay); err != nil {
			c.logger.Warn("gemini chat retry aborted", zap.Error(err))
			break
		}
	}

	return FailureReply
}

func (c *Counselor) call(ctx context.Context, message string) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("pace gemini request: %w", err)
		}
	}
	return c.generator.GenerateContent(ctx, Persona, message)
}
