package buildkite

import "fmt"

// Sample payloads used by the test command to exercise a running server
// end to end. The field values mirror real Buildkite deliveries.

func samplePipeline(name, slug string) *Pipeline {
	return &Pipeline{
		ID:         "pipeline-123",
		Name:       name,
		Slug:       slug,
		URL:        "https://api.buildkite.com/v2/organizations/my-org/pipelines/" + slug,
		WebURL:     "https://buildkite.com/my-org/" + slug,
		Repository: "git@github.com:my-org/my-repo.git",
		Provider: &Provider{
			ID:            "github",
			Settings:      &ProviderSettings{Repository: "my-org/my-repo"},
			RepositoryURL: "https://github.com/my-org/my-repo",
		},
	}
}

// SampleBuildStarted is a build.started delivery with a commit message,
// so the rendered notification includes the quoted message and a commit
// link.
func SampleBuildStarted(number int) WebhookPayload {
	return WebhookPayload{
		Event: EventBuildStarted,
		Build: &Build{
			ID:      fmt.Sprintf("build-started-%d", number),
			Number:  number,
			State:   "running",
			Message: "Add new feature for user authentication",
			Commit:  "a1b2c3d4e5f6789012345678901234567890abcd",
			Branch:  "feature/auth-improvements",
			URL:     fmt.Sprintf("https://api.buildkite.com/v2/organizations/my-org/pipelines/my-pipeline/builds/%d", number),
			WebURL:  fmt.Sprintf("https://buildkite.com/my-org/my-pipeline/builds/%d", number),
			Author:  &Author{Name: "Alice Developer", Email: "alice@example.com"},
		},
		Pipeline: samplePipeline("My Awesome Pipeline", "my-awesome-pipeline"),
	}
}

// SampleBuildFinished is a build.finished delivery in the given state
// (passed, failed or canceled).
func SampleBuildFinished(state string, number int) WebhookPayload {
	commit := "unknown1234567890abcdef1234567890abcdef12"
	message := "Unknown build message"
	author := "Unknown Author"
	switch state {
	case "passed":
		commit = "b2c3d4e5f6789012345678901234567890abcdef"
		message = "Fix critical security vulnerability"
		author = "Bob Tester"
	case "failed":
		commit = "c3d4e5f6789012345678901234567890abcdef12"
		message = "Update dependencies to latest versions"
		author = "Charlie Developer"
	case "canceled":
		commit = "d4e5f6789012345678901234567890abcdef1234"
		message = "Refactor database connection handling"
		author = "Dana Engineer"
	}

	return WebhookPayload{
		Event: EventBuildFinished,
		Build: &Build{
			ID:      fmt.Sprintf("build-%s-%d", state, number),
			Number:  number,
			State:   state,
			Message: message,
			Commit:  commit,
			Branch:  "main",
			URL:     fmt.Sprintf("https://api.buildkite.com/v2/organizations/my-org/pipelines/my-pipeline/builds/%d", number),
			WebURL:  fmt.Sprintf("https://buildkite.com/my-org/my-pipeline/builds/%d", number),
			Author:  &Author{Name: author, Email: "ci@example.com"},
		},
		Pipeline: samplePipeline("My Awesome Pipeline", "my-awesome-pipeline"),
	}
}

// SampleJobFinished is a job.finished delivery with the given exit
// status. Exit status 0 exercises the noise filter; anything else
// renders a failure.
func SampleJobFinished(exitStatus, number int) WebhookPayload {
	name, id, state := "Unit Tests", "job-tests-123", "passed"
	if exitStatus != 0 {
		name, id, state = "Linting", "job-lint-456", "failed"
	}
	status := exitStatus

	return WebhookPayload{
		Event: EventJobFinished,
		Job: &Job{
			ID:         id,
			Name:       name,
			Command:    "npm test",
			State:      state,
			ExitStatus: &status,
			WebURL:     fmt.Sprintf("https://buildkite.com/my-org/my-pipeline/builds/%d#%s", number, id),
		},
		Pipeline: samplePipeline("My Awesome Pipeline", "my-awesome-pipeline"),
	}
}

// SampleLangRouting is a build.started delivery for a lang- pipeline, so
// the channel router sends it to the per-project stream.
func SampleLangRouting(number int) WebhookPayload {
	payload := SampleBuildStarted(number)
	payload.Build.ID = fmt.Sprintf("lang-build-%d", number)
	payload.Build.Message = "Update language pack translations"
	payload.Build.Commit = "1a2b3c4d5e6f789012345678901234567890abcd"
	payload.Build.Branch = "main"
	payload.Pipeline = samplePipeline("lang-sami-x-private", "lang-sami-x-private")
	return payload
}

// SampleKeyboardRouting is the keyboard- pipeline counterpart of
// SampleLangRouting.
func SampleKeyboardRouting(number int) WebhookPayload {
	payload := SampleBuildStarted(number)
	payload.Build.ID = fmt.Sprintf("keyboard-build-%d", number)
	payload.Build.Message = "Update keyboard layout definitions"
	payload.Build.Commit = "9f8e7d6c5b4a321098765432109876543210fedc"
	payload.Build.Branch = "main"
	payload.Pipeline = samplePipeline("keyboard-finnish-public", "keyboard-finnish-public")
	return payload
}
