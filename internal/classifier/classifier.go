package classifier

import (
	"context"
	"fmt"

	"github.com/luthfiarifin/elda-backend/pkg/gemini"
)

// Classify determines user intent from transcribed text.
// Model, transport and safety failures never surface as Go errors; they are
// downgraded to an unknown-intent Result with Err describing the cause so
// the caller has a single branching point.
func (c *GeminiClassifier) Classify(ctx context.Context, text string) Result {
	prompt := fmt.Sprintf(PromptClassifySystem, text)

	resp, err := c.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{
				Role: "user",
				Parts: []gemini.Part{
					{Text: prompt},
				},
			},
		},
		SafetySettings: safetySettings(),
		GenerationConfig: &gemini.GenerationConfig{
			Temperature: ClassifyTemperature,
		},
	})
	if err != nil {
		c.l.Warnf(ctx, "%s: model call failed: %v", LogPrefixClassify, err)
		return Result{
			Intent: IntentUnknown,
			Err:    fmt.Sprintf("Failed to call language model: %v", err),
		}
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		c.l.Warnf(ctx, "%s: prompt blocked: %s", LogPrefixClassify, resp.PromptFeedback.BlockReason)
		return Result{
			Intent: IntentUnknown,
			Err:    ErrMsgBlockedPrefix + resp.PromptFeedback.BlockReason,
		}
	}

	raw := extractIntentJSON(resp.Text())
	if raw == nil {
		c.l.Warnf(ctx, "%s: no parseable JSON in model output", LogPrefixClassify)
		return Result{
			Intent: IntentUnknown,
			Err:    ErrMsgExtractFailed,
		}
	}

	result := raw.toResult()
	c.l.Infof(ctx, "%s: classified as %s (target: %s)", LogPrefixClassify, result.Intent, result.Target)
	return result
}

// safetySettings blocks medium-and-above content in the four harm categories.
func safetySettings() []gemini.SafetySetting {
	return []gemini.SafetySetting{
		{Category: gemini.CategoryHarassment, Threshold: gemini.ThresholdBlockMediumAndAbove},
		{Category: gemini.CategoryHateSpeech, Threshold: gemini.ThresholdBlockMediumAndAbove},
		{Category: gemini.CategorySexuallyExplicit, Threshold: gemini.ThresholdBlockMediumAndAbove},
		{Category: gemini.CategoryDangerousContent, Threshold: gemini.ThresholdBlockMediumAndAbove},
	}
}
