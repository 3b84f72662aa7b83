package engine

import (
	"strings"

	"github.com/divvun/zulip-buildkite-bot/internal/domain"
)

// RepoWebURL resolves the canonical web URL of a pipeline's repository.
// Resolution order: the provider's explicit repository URL, the provider
// settings owner/repo slug, then the checkout URL when it is one of the
// two known GitHub forms. Anything else resolves to absence, not an
// error; the function never guesses beyond these forms.
func RepoWebURL(pipeline *domain.Pipeline) (string, bool) {
	if pipeline == nil {
		return "", false
	}

	if pipeline.ProviderRepositoryURL != "" {
		return pipeline.ProviderRepositoryURL, true
	}

	if pipeline.ProviderSlug != "" {
		return "https://github.com/" + pipeline.ProviderSlug, true
	}

	if rest, ok := strings.CutPrefix(pipeline.Repository, "git@github.com:"); ok {
		return "https://github.com/" + strings.TrimSuffix(rest, ".git"), true
	}

	if strings.HasPrefix(pipeline.Repository, "https://github.com/") {
		return strings.TrimSuffix(pipeline.Repository, ".git"), true
	}

	return "", false
}
