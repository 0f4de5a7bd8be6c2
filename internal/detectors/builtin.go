package detectors

// BuiltinRules returns the default rule table in catalog order. More
// specific prefixes precede the ones they share a stem with.
func BuiltinRules() []Rule {
	return []Rule{
		openAIProject,
		anthropic,
		openRouter,
		openAI,
		brevo,
		gitHubFineGrained,
		gitHubPAT,
		gitHubOAuth,
		gitHubApp,
		gitLabPAT,
		google,
		awsAccessKey,
		stripeLive,
		stripeRestricted,
		stripeTest,
		slackToken,
		sendGrid,
		mailgun,
		npmToken,
		pypiToken,
		groq,
		perplexity,
		replicate,
		huggingFace,
		digitalOcean,
		flyIO,
		dockerHub,
		databricks,
		linear,
		shopify,
		postHogProject,
		postHogPersonal,
		generic,
	}
}

// Builtin returns the validated default catalog.
func Builtin() *Catalog {
	return MustCatalog(BuiltinRules()...)
}
