package detectors

// OpenAI project keys carry an sk-proj- prefix and may contain - and _.
// Legacy user keys are sk- followed by base62 only, so the two never overlap.
var (
	openAIProject = Rule{Type: "openai_project", Label: "OpenAI", Pattern: `sk-proj-[A-Za-z0-9_-]{40,200}`}
	openAI        = Rule{Type: "openai", Label: "OpenAI", Pattern: `sk-[A-Za-z0-9]{40,200}`}
)
