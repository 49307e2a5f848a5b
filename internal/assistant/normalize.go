package assistant

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/spigell/cv-assistant/internal/ai"
	"github.com/spigell/cv-assistant/internal/ai/schema"
	"github.com/spigell/cv-assistant/internal/cv"
	"github.com/spigell/cv-assistant/internal/email"
	"github.com/spigell/cv-assistant/internal/matching"
)

var errMalformedResponse = errors.New("malformed model response")

type assistedAnalysis struct {
	Skills          []string        `mapstructure:"skills"`
	Education       []cv.Education  `mapstructure:"education"`
	Experience      []cv.Experience `mapstructure:"experience"`
	ExperienceYears any             `mapstructure:"experienceYears"`
	Summary         string          `mapstructure:"summary"`
}

// parseAnalysis turns a model answer into an Analysis, filling every missing key with its empty value.
func parseAnalysis(raw string) (*cv.Analysis, error) {
	doc, err := ai.DecodeJSON(raw)
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(schema.Analysis, doc); err != nil {
		return nil, err
	}

	var decoded assistedAnalysis
	if err := weakDecode(doc, &decoded); err != nil {
		return nil, err
	}

	years := 0
	if decoded.ExperienceYears != nil {
		if f := ai.CoerceFloat(decoded.ExperienceYears); !math.IsNaN(f) && f > 0 {
			years = int(math.Round(f))
		}
	}

	analysis := &cv.Analysis{
		Skills:               decoded.Skills,
		Education:            decoded.Education,
		Experience:           decoded.Experience,
		TotalExperienceYears: years,
		Summary:              decoded.Summary,
	}
	analysis.Normalize()

	return analysis, nil
}

// parseMatches accepts a bare array or an object with a "matches" array. Any
// other object is rejected rather than read as an empty result.
func parseMatches(raw string) ([]matching.Match, error) {
	doc, err := ai.DecodeJSON(raw)
	if err != nil {
		return nil, err
	}

	if obj, ok := doc.(map[string]any); ok {
		if err := schema.Validate(schema.MatchesWrapper, obj); err != nil {
			return nil, err
		}
		doc = obj["matches"]
	}
	if err := schema.Validate(schema.Matches, doc); err != nil {
		return nil, err
	}

	items, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: matches is %T", errMalformedResponse, doc)
	}

	for i, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: match %d is %T", errMalformedResponse, i, item)
		}
		score, present := fields["match_score"]
		if !present {
			fields["match_score"] = 0.0
			continue
		}
		f := ai.CoerceFloat(score)
		if math.IsNaN(f) {
			return nil, fmt.Errorf("%w: match %d has score %v", errMalformedResponse, i, score)
		}
		fields["match_score"] = f
	}

	matches := make([]matching.Match, 0, len(items))
	if err := weakDecode(items, &matches); err != nil {
		return nil, err
	}
	for i := range matches {
		if matches[i].MatchingSkills == nil {
			matches[i].MatchingSkills = []string{}
		}
	}

	matching.SortByScore(matches)
	return matches, nil
}

// parseEmail reads subject and body, keeping the pre-filled text for any that is missing or blank.
func parseEmail(raw string, base email.Message) (email.Message, error) {
	doc, err := ai.DecodeJSON(raw)
	if err != nil {
		return email.Message{}, err
	}
	if err := schema.Validate(schema.Email, doc); err != nil {
		return email.Message{}, err
	}

	var decoded email.Message
	if err := weakDecode(doc, &decoded); err != nil {
		return email.Message{}, err
	}

	msg := base
	if strings.TrimSpace(decoded.Subject) != "" {
		msg.Subject = decoded.Subject
	}
	if strings.TrimSpace(decoded.Body) != "" {
		msg.Body = decoded.Body
	}
	return msg, nil
}

func weakDecode(input, output any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           output,
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}
	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("%w: %v", errMalformedResponse, err)
	}
	return nil
}
