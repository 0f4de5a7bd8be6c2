package detectors

// Inference and model-hosting providers with distinctive prefixes.
var (
	openRouter  = Rule{Type: "openrouter", Label: "OpenRouter", Pattern: `sk-or-v1-[A-Za-z0-9_-]{40,80}`}
	groq        = Rule{Type: "groq", Label: "Groq", Pattern: `gsk_[A-Za-z0-9]{30,80}`}
	perplexity  = Rule{Type: "perplexity", Label: "Perplexity", Pattern: `pplx-[A-Za-z0-9]{30,80}`}
	replicate   = Rule{Type: "replicate", Label: "Replicate", Pattern: `r8_[A-Za-z0-9]{30,60}`}
	huggingFace = Rule{Type: "huggingface", Label: "Hugging Face", Pattern: `hf_[A-Za-z0-9]{34,60}`}
)
