// Package prompt maps one-time action identifiers to instruction text.
package prompt

import (
	"fmt"
	"strings"
)

// Placeholder substituted with the target language in built-in templates.
const languagePlaceholder = "{target_language}"

// builtins holds the default instruction for every one-time action.
var builtins = map[string]string{
	"translate":       "You are a translation engine. Translate the text below into {target_language}. Reply with the translated text only, without explanations.",
	"slang":           "Rewrite the text below in {target_language} using casual, natural slang while keeping its meaning. Reply with the rewritten text only.",
	"revise":          "Revise the text below in {target_language}, fixing grammar, spelling and punctuation. Reply with the corrected text only.",
	"polish":          "Polish the text below in {target_language} to make it clearer and more fluent while preserving its meaning. Reply with the polished text only.",
	"expand":          "Expand the text below in {target_language} into a longer, more detailed version with the same intent. Reply with the expanded text only.",
	"summarize":       "Summarize the text below in {target_language} in a concise paragraph. Reply with the summary only.",
	"midjourney":      "Turn the text below into a detailed Midjourney image prompt written in {target_language}: describe subject, style, lighting and composition. Reply with the prompt only.",
	"stablediffusion": "Turn the text below into a Stable Diffusion prompt written in {target_language}: comma-separated descriptive tags covering subject, style and quality. Reply with the prompt only.",
	"custom":          "Process the text below and reply in {target_language}.",
}

// Catalog resolves instruction text for one-time actions. It has no state
// beyond the built-in templates.
type Catalog struct{}

// NewCatalog creates a new Catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Resolve returns the instruction for an action: the user override verbatim
// when non-empty, otherwise the built-in template for the action with every
// target-language placeholder substituted. Unknown action identifiers are an
// error rather than a silent fallthrough.
func (c *Catalog) Resolve(actionID, language, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	tpl, ok := builtins[actionID]
	if !ok {
		return "", fmt.Errorf("no built-in instruction for action %q", actionID)
	}
	return strings.ReplaceAll(tpl, languagePlaceholder, language), nil
}

// Known reports whether an action has a built-in instruction.
func (c *Catalog) Known(actionID string) bool {
	_, ok := builtins[actionID]
	return ok
}
