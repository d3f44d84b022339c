// Package chatbot resolves conversational responses about historical
// artifacts. A Service wraps a remote generation transport with lazy,
// credential-gated initialization and degrades to fixed fallback templates
// whenever the transport is unconfigured, fails, or returns nothing. The
// caller always gets text back; errors never propagate outward.
package chatbot

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/heriscience/backend/models"
)

// DefaultTimeout bounds a single remote generation call.
const DefaultTimeout = 15 * time.Second

// Transport sends one composed request to a remote generation service.
// Implementations must be safe for concurrent use; the Service never
// mutates a transport after construction.
type Transport interface {
	// Name identifies the provider in health payloads and logs.
	Name() string
	// Ready reports whether the transport has credentials to attempt a call.
	Ready() bool
	// Generate performs one synchronous call and returns the model text.
	Generate(ctx context.Context, req models.Generation_Request) (string, error)
}

// Service is the generation adapter. The zero transport (nil or not ready)
// short-circuits every call straight to the template fallback with no
// network attempt.
type Service struct {
	transport Transport
	composer  *Composer
	timeout   time.Duration
	logger    *log.Logger
}

// NewService constructs a Service around the given transport, which may be
// nil for a fallback-only service.
func NewService(transport Transport) *Service {
	return &Service{
		transport: transport,
		composer:  NewComposer(),
		timeout:   DefaultTimeout,
		logger:    log.New(os.Stdout, "[chat] ", log.LstdFlags),
	}
}

// WithTimeout sets the per-call timeout for remote generation.
func (s *Service) WithTimeout(timeout time.Duration) *Service {
	s.timeout = timeout
	return s
}

// WithLogger replaces the default logger.
func (s *Service) WithLogger(logger *log.Logger) *Service {
	s.logger = logger
	return s
}

// Ready reports whether a credentialed transport is wired in.
func (s *Service) Ready() bool {
	return s.transport != nil && s.transport.Ready()
}

// ProviderName names the active provider, or "Local AI" when running
// fallback-only.
func (s *Service) ProviderName() string {
	if s.Ready() {
		return s.transport.Name()
	}
	return "Local AI"
}

// Generate answers a user message, preferring the remote model and falling
// back to templates. It never returns an empty string and never fails.
func (s *Service) Generate(ctx context.Context, message string, artifactContext *models.Artifact_Context) string {
	return s.GenerateWithReference(ctx, message, artifactContext, "")
}

// GenerateWithReference is Generate with an externally retrieved reference
// summary merged into the outbound prompt (truncated by the composer).
func (s *Service) GenerateWithReference(ctx context.Context, message string, artifactContext *models.Artifact_Context, reference string) string {
	outcome := s.tryRemote(ctx, message, artifactContext, reference)
	switch outcome.Kind {
	case models.Outcome_Success:
		return outcome.Text
	case models.Outcome_Unavailable:
		s.logger.Printf("generation unavailable (%s), using fallback", outcome.Reason)
	case models.Outcome_Failure:
		s.logger.Printf("generation failed (%v), using fallback", outcome.Err)
	}
	return Resolve(message, artifactContext)
}

// tryRemote attempts exactly one remote call and normalizes the result.
// Exactly one outcome kind comes back per call.
func (s *Service) tryRemote(ctx context.Context, message string, artifactContext *models.Artifact_Context, reference string) models.Generation_Outcome {
	if s.transport == nil {
		return models.Unavailable("no transport configured")
	}
	if !s.transport.Ready() {
		return models.Unavailable(s.transport.Name() + " has no credentials")
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req := s.composer.Compose(message, artifactContext, reference)
	text, err := s.transport.Generate(callCtx, req)
	if err != nil {
		return models.Failure(err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Failure(errEmptyResponse)
	}
	return models.Success(text)
}

var errEmptyResponse = errors.New("remote model returned empty text")
