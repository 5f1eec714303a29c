// Package modelcatalog lists the Bedrock models and inference profiles the
// translation UI offers, with their display names.
package modelcatalog

import "strings"

const profileARNPrefix = "arn:aws:bedrock:"

// ProfileARNBase is the inference profile ARN prefix for the configured account.
// Replace YOUR_ACCOUNT_ID with the account that owns the profiles.
const ProfileARNBase = "arn:aws:bedrock:us-east-1:YOUR_ACCOUNT_ID:inference-profile/"

type Model struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type Group struct {
	Name   string   `json:"name"`
	Models []string `json:"models"`
}

// Models that can only be invoked through an inference profile.
var ProfileOnly = []string{
	"amazon.nova-premier-v1:0",
	"amazon.nova-lite-v1:0",
	"amazon.nova-pro-v1:0",
	"amazon.nova-micro-v1:0",
	"us.amazon.nova-premier-v1:0",
	"us.amazon.nova-lite-v1:0",
	"us.amazon.nova-pro-v1:0",
	"us.amazon.nova-micro-v1:0",
	"anthropic.claude-3-5-sonnet-20240620-v1:0",
	"anthropic.claude-3-7-sonnet-20250219-v1:0",
	"us.anthropic.claude-3-5-sonnet-20240620-v1:0",
	"us.anthropic.claude-3-7-sonnet-20250219-v1:0",
	"deepseek.r1-v1:0",
	"us.deepseek.r1-v1:0",
}

// FoundationModels can be invoked directly.
var FoundationModels = []Model{
	{ID: "anthropic.claude-3-sonnet-20240229-v1:0", Name: "Claude 3 Sonnet"},
	{ID: "anthropic.claude-3-haiku-20240307-v1:0", Name: "Claude 3 Haiku"},
	{ID: "anthropic.claude-3-opus-20240229-v1:0", Name: "Claude 3 Opus"},
}

func profile(model, name string) Model {
	return Model{ID: ProfileARNBase + model, Name: name}
}

var InferenceProfiles = []Model{
	profile("us.anthropic.claude-3-sonnet-20240229-v1:0", "Claude 3 Sonnet (Inference Profile)"),
	profile("us.anthropic.claude-3-opus-20240229-v1:0", "Claude 3 Opus (Inference Profile)"),
	profile("us.anthropic.claude-3-haiku-20240307-v1:0", "Claude 3 Haiku (Inference Profile)"),
	profile("us.anthropic.claude-3-5-sonnet-20240620-v1:0", "Claude 3.5 Sonnet"),
	profile("us.anthropic.claude-3-5-sonnet-20241022-v2:0", "Claude 3.5 Sonnet v2"),
	profile("us.anthropic.claude-3-5-haiku-20241022-v1:0", "Claude 3.5 Haiku"),
	profile("us.anthropic.claude-3-7-sonnet-20250219-v1:0", "Claude 3.7 Sonnet"),
	profile("us.anthropic.claude-opus-4-20250514-v1:0", "Claude 4 Opus"),
	profile("us.anthropic.claude-sonnet-4-20250514-v1:0", "Claude 4 Sonnet"),
	profile("us.amazon.nova-premier-v1:0", "Nova Premier"),
	profile("us.amazon.nova-lite-v1:0", "Nova Lite"),
	profile("us.amazon.nova-pro-v1:0", "Nova Pro"),
	profile("us.amazon.nova-micro-v1:0", "Nova Micro"),
	profile("us.meta.llama3-1-8b-instruct-v1:0", "Llama 3.1 8B"),
	profile("us.meta.llama3-1-70b-instruct-v1:0", "Llama 3.1 70B"),
	profile("us.meta.llama3-2-1b-instruct-v1:0", "Llama 3.2 1B"),
	profile("us.meta.llama3-2-3b-instruct-v1:0", "Llama 3.2 3B"),
	profile("us.meta.llama3-2-11b-instruct-v1:0", "Llama 3.2 11B"),
	profile("us.meta.llama3-2-90b-instruct-v1:0", "Llama 3.2 90B"),
	profile("us.meta.llama3-3-70b-instruct-v1:0", "Llama 3.3 70B"),
	profile("us.meta.llama4-scout-17b-instruct-v1:0", "Llama 4 Scout 17B"),
	profile("us.meta.llama4-maverick-17b-instruct-v1:0", "Llama 4 Maverick 17B"),
	profile("us.deepseek.r1-v1:0", "DeepSeek-R1"),
	profile("us.mistral.pixtral-large-2502-v1:0", "Mistral Pixtral Large"),
}

// Shown next to models that are picked without their profile.
var profileOnlyNames = map[string]string{
	"anthropic.claude-3-7-sonnet-20250219-v1:0": "Claude 3.7 Sonnet (requires Inference Profile)",
	"anthropic.claude-3-5-sonnet-20240620-v1:0": "Claude 3.5 Sonnet (requires Inference Profile)",
	"amazon.nova-premier-v1:0":                  "Nova Premier (requires Inference Profile)",
	"amazon.nova-lite-v1:0":                     "Nova Lite (requires Inference Profile)",
	"amazon.nova-pro-v1:0":                      "Nova Pro (requires Inference Profile)",
	"amazon.nova-micro-v1:0":                    "Nova Micro (requires Inference Profile)",
	"deepseek.r1-v1:0":                          "DeepSeek-R1 (requires Inference Profile)",
}

var displayNames = buildDisplayNames()

func buildDisplayNames() map[string]string {
	names := make(map[string]string, len(FoundationModels)+len(InferenceProfiles)+len(profileOnlyNames))
	for _, m := range FoundationModels {
		names[m.ID] = m.Name
	}
	for _, m := range InferenceProfiles {
		names[m.ID] = m.Name
	}
	for id, name := range profileOnlyNames {
		names[id] = name
	}
	return names
}

func IsInferenceProfile(modelID string) bool {
	return strings.HasPrefix(modelID, profileARNPrefix)
}

// RequiresInferenceProfile matches by substring so both bare ids and ARNs embedding them hit.
func RequiresInferenceProfile(modelID string) bool {
	for _, id := range ProfileOnly {
		if strings.Contains(modelID, id) {
			return true
		}
	}
	return false
}

// DisplayName falls back to the id itself for unknown models.
func DisplayName(modelID string) string {
	if name, ok := displayNames[modelID]; ok {
		return name
	}
	return modelID
}

// CorrespondingProfile returns the first profile ARN embedding modelID.
func CorrespondingProfile(modelID string) (string, bool) {
	if modelID == "" {
		return "", false
	}
	for _, p := range InferenceProfiles {
		if strings.Contains(p.ID, modelID) {
			return p.ID, true
		}
	}
	return "", false
}

// ResolveModel swaps a profile-only model for its profile. ok is false when no
// profile exists for a model that needs one.
func ResolveModel(modelID string) (resolved string, switched bool, ok bool) {
	if IsInferenceProfile(modelID) || !RequiresInferenceProfile(modelID) {
		return modelID, false, true
	}
	arn, found := CorrespondingProfile(modelID)
	if !found {
		return modelID, false, false
	}
	return arn, true, true
}

// Available lists directly invocable foundation models followed by every profile.
func Available() []Model {
	out := make([]Model, 0, len(FoundationModels)+len(InferenceProfiles))
	for _, m := range FoundationModels {
		if !RequiresInferenceProfile(m.ID) {
			out = append(out, m)
		}
	}
	return append(out, InferenceProfiles...)
}

func Groups() []Group {
	ids := func(models ...string) []string {
		out := make([]string, len(models))
		for i, m := range models {
			out[i] = ProfileARNBase + m
		}
		return out
	}
	return []Group{
		{Name: "Claude 3", Models: append([]string{
			FoundationModels[0].ID, FoundationModels[1].ID, FoundationModels[2].ID,
		}, ids(
			"us.anthropic.claude-3-sonnet-20240229-v1:0",
			"us.anthropic.claude-3-opus-20240229-v1:0",
			"us.anthropic.claude-3-haiku-20240307-v1:0",
		)...)},
		{Name: "Claude 3.5/3.7", Models: ids(
			"us.anthropic.claude-3-5-sonnet-20240620-v1:0",
			"us.anthropic.claude-3-5-sonnet-20241022-v2:0",
			"us.anthropic.claude-3-5-haiku-20241022-v1:0",
			"us.anthropic.claude-3-7-sonnet-20250219-v1:0",
		)},
		{Name: "Claude 4", Models: ids(
			"us.anthropic.claude-opus-4-20250514-v1:0",
			"us.anthropic.claude-sonnet-4-20250514-v1:0",
		)},
		{Name: "Amazon Nova", Models: ids(
			"us.amazon.nova-premier-v1:0",
			"us.amazon.nova-lite-v1:0",
			"us.amazon.nova-pro-v1:0",
			"us.amazon.nova-micro-v1:0",
		)},
		{Name: "Meta Llama", Models: ids(
			"us.meta.llama3-1-8b-instruct-v1:0",
			"us.meta.llama3-1-70b-instruct-v1:0",
			"us.meta.llama3-2-1b-instruct-v1:0",
			"us.meta.llama3-2-3b-instruct-v1:0",
			"us.meta.llama3-2-11b-instruct-v1:0",
			"us.meta.llama3-2-90b-instruct-v1:0",
			"us.meta.llama3-3-70b-instruct-v1:0",
			"us.meta.llama4-scout-17b-instruct-v1:0",
			"us.meta.llama4-maverick-17b-instruct-v1:0",
		)},
		{Name: "Other", Models: ids(
			"us.deepseek.r1-v1:0",
			"us.mistral.pixtral-large-2502-v1:0",
		)},
	}
}
