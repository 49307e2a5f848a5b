// Package assistant answers the three recruitment capabilities (CV analysis,
// job matching, email writing) with a language model when one is configured and
// falls back to the rule-based implementations otherwise.
package assistant

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/cv-assistant/internal/ai"
	"github.com/spigell/cv-assistant/internal/cv"
	"github.com/spigell/cv-assistant/internal/email"
	"github.com/spigell/cv-assistant/internal/logger"
	"github.com/spigell/cv-assistant/internal/matching"
	"github.com/spigell/cv-assistant/internal/utils"
)

const (
	CapabilityAnalyzeCV     = "analyze_cv"
	CapabilityMatchJobs     = "match_jobs"
	CapabilityGenerateEmail = "generate_email"

	DefaultTimeout = 30 * time.Second

	defaultMaxLogLength = 200
)

type Config struct {
	// Timeout bounds every model call. Zero means DefaultTimeout.
	Timeout time.Duration
	// MaxLogLength limits prompt and response previews in debug logs.
	MaxLogLength int
}

// Deps are the collaborators a Service reads from. Jobs and Templates must not
// be modified after New.
type Deps struct {
	// Generator is optional; without it every call takes the deterministic path.
	Generator ai.Generator
	Provider  string
	Extractor *cv.Extractor
	Jobs      []matching.Job
	Templates map[string]email.Template
	Logger    *zap.Logger
}

// Service is stateless per call and safe for concurrent use.
type Service struct {
	generator ai.Generator
	extractor *cv.Extractor
	jobs      []matching.Job
	templates map[string]email.Template
	logger    *zap.Logger
	timeout   time.Duration
	maxLogLen int
}

func New(cfg Config, deps Deps) *Service {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	maxLogLen := cfg.MaxLogLength
	if maxLogLen <= 0 {
		maxLogLen = defaultMaxLogLength
	}

	extractor := deps.Extractor
	if extractor == nil {
		extractor = cv.NewExtractor(cv.Options{})
	}

	templates := deps.Templates
	if templates == nil {
		templates = map[string]email.Template{}
	}

	log := logger.OrNop(deps.Logger)
	if deps.Generator != nil {
		log = logger.WithCommonFields(log, deps.Provider, deps.Generator.Model())
	}

	return &Service{
		generator: deps.Generator,
		extractor: extractor,
		jobs:      deps.Jobs,
		templates: templates,
		logger:    log,
		timeout:   timeout,
		maxLogLen: maxLogLen,
	}
}

// Assisted reports whether a model is configured.
func (s *Service) Assisted() bool {
	return s.generator != nil
}

// AnalyzeCV extracts a structured profile from CV text.
func (s *Service) AnalyzeCV(ctx context.Context, text string) (analysis *cv.Analysis, err error) {
	defer recoverProcessing(&err)

	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: cv text is not valid UTF-8", ErrMalformedInput)
	}

	var assistedErr error
	if s.Assisted() {
		analysis, assistedErr = s.assistedAnalysis(ctx, text)
	}

	if s.served(CapabilityAnalyzeCV, assistedErr) == PathDeterministic {
		analysis = s.extractor.Analyze(text)
	}
	return analysis, nil
}

// MatchJobs ranks the job catalog, or only the job with jobID when it is set,
// against the analysed candidate.
func (s *Service) MatchJobs(ctx context.Context, analysis *cv.Analysis, jobID *int) (matches []matching.Match, err error) {
	defer recoverProcessing(&err)

	if analysis == nil {
		return nil, fmt.Errorf("%w: cv analysis is required", ErrMalformedInput)
	}

	jobs := s.jobs
	if jobID != nil {
		jobs = matching.Filter(s.jobs, *jobID)
		if len(jobs) == 0 {
			return nil, fmt.Errorf("job %d: %w", *jobID, ErrNotFound)
		}
	}

	if len(jobs) == 0 {
		return []matching.Match{}, nil
	}

	var assistedErr error
	if s.Assisted() {
		matches, assistedErr = s.assistedMatches(ctx, analysis, jobs)
	}

	if s.served(CapabilityMatchJobs, assistedErr) == PathDeterministic {
		matches = matching.Rank(analysis.Skills, jobs)
	}
	return matches, nil
}

// GenerateEmail fills the template with templateID. An unknown template is an
// ErrNotFound error whether or not a model is configured.
func (s *Service) GenerateEmail(ctx context.Context, templateID string, values email.Context) (msg email.Message, err error) {
	defer recoverProcessing(&err)

	base, err := email.Render(templateID, values, s.templates)
	if err != nil {
		return email.Message{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var assistedErr error
	if s.Assisted() {
		msg, assistedErr = s.assistedEmail(ctx, templateID, base, values)
	}

	if s.served(CapabilityGenerateEmail, assistedErr) == PathDeterministic {
		msg = base
	}
	return msg, nil
}

func (s *Service) assistedAnalysis(ctx context.Context, text string) (_ *cv.Analysis, err error) {
	defer recoverAttempt(&err)

	raw, err := s.generate(ctx, CapabilityAnalyzeCV, ai.Request{
		System:      analyzeSystem,
		Prompt:      buildAnalyzePrompt(text),
		Temperature: analyzeTemperature,
	})
	if err != nil {
		return nil, err
	}
	return parseAnalysis(raw)
}

func (s *Service) assistedMatches(ctx context.Context, analysis *cv.Analysis, jobs []matching.Job) (_ []matching.Match, err error) {
	defer recoverAttempt(&err)

	raw, err := s.generate(ctx, CapabilityMatchJobs, ai.Request{
		System:      matchSystem,
		Prompt:      buildMatchPrompt(analysis, jobs),
		Temperature: matchTemperature,
	})
	if err != nil {
		return nil, err
	}
	return parseMatches(raw)
}

func (s *Service) assistedEmail(ctx context.Context, templateID string, base email.Message, values email.Context) (_ email.Message, err error) {
	defer recoverAttempt(&err)

	raw, err := s.generate(ctx, CapabilityGenerateEmail, ai.Request{
		System:      emailSystem,
		Prompt:      buildEmailPrompt(templateID, base, values),
		Temperature: emailTemperature,
	})
	if err != nil {
		return email.Message{}, err
	}
	return parseEmail(raw, base)
}

// generate makes the single bounded model call of a capability.
func (s *Service) generate(ctx context.Context, capability string, req ai.Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	s.logger.Debug("model request",
		zap.String(logger.FieldCapability, capability),
		zap.Int("prompt_length", utf8.RuneCountInString(req.Prompt)),
		zap.String("prompt_preview", utils.PreviewForLog(req.Prompt, s.maxLogLen)),
	)

	raw, err := s.generator.Generate(ctx, req)
	if err != nil {
		return "", err
	}

	s.logger.Debug("model response",
		zap.String(logger.FieldCapability, capability),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.PreviewForLog(raw, s.maxLogLen)),
	)

	return raw, nil
}

// served picks the path for a finished assisted attempt and logs the choice.
func (s *Service) served(capability string, assistedErr error) Path {
	path := choosePath(s.Assisted(), assistedErr)

	fields := logger.CapabilityFields(capability, string(path))
	if assistedErr != nil {
		fields = append(fields, zap.Error(assistedErr))
		s.logger.Warn("model call failed, using rule-based fallback", fields...)
		return path
	}

	s.logger.Debug("capability served", fields...)
	return path
}
