package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/divvun/zulip-buildkite-bot/internal/buildkite"
	"github.com/spf13/cobra"
)

var (
	testServerURL   string
	testEventType   string
	testDelay       int
	testBuildNumber int
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Send mock Buildkite events to a running server",
	Long: `Sends realistic Buildkite webhook payloads to a running server so you
can verify Zulip delivery without a real Buildkite pipeline.

Event types:
  build-started      a build that just started
  build-passed       a finished build that passed
  build-failed       a finished build that failed
  build-canceled     a finished build that was canceled
  job-passed         a job that finished with exit status 0 (filtered)
  job-failed         a job that finished with a non-zero exit status
  lang-routing       a build on a lang-* pipeline (routes to a language channel)
  keyboard-routing   a build on a keyboard-* pipeline
  scenario           a full build lifecycle: started, jobs, failed
  all                every event type above, one after another`,
	RunE: runTest,
}

func init() {
	testCmd.Flags().StringVar(&testServerURL, "server-url", "http://localhost:3000",
		"base URL of the running server")
	testCmd.Flags().StringVar(&testEventType, "event-type", "all",
		"which mock event(s) to send")
	testCmd.Flags().IntVar(&testDelay, "delay", 2,
		"seconds to wait between events")
	testCmd.Flags().IntVar(&testBuildNumber, "build-number", 123,
		"build number used in the mock payloads")
}

func runTest(cmd *cobra.Command, args []string) error {
	payloads, err := scenarioEvents(testEventType, testBuildNumber)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: 10 * time.Second}
	endpoint := testServerURL + "/webhook"

	for i, p := range payloads {
		if i > 0 {
			time.Sleep(time.Duration(testDelay) * time.Second)
		}
		if err := postEvent(client, endpoint, p); err != nil {
			return err
		}
	}

	fmt.Printf("sent %d event(s) to %s\n", len(payloads), endpoint)
	return nil
}

// scenarioEvents maps an event type name to the payloads it should send.
func scenarioEvents(eventType string, buildNumber int) ([]buildkite.WebhookPayload, error) {
	switch eventType {
	case "build-started":
		return []buildkite.WebhookPayload{buildkite.SampleBuildStarted(buildNumber)}, nil
	case "build-passed":
		return []buildkite.WebhookPayload{buildkite.SampleBuildFinished("passed", buildNumber)}, nil
	case "build-failed":
		return []buildkite.WebhookPayload{buildkite.SampleBuildFinished("failed", buildNumber)}, nil
	case "build-canceled":
		return []buildkite.WebhookPayload{buildkite.SampleBuildFinished("canceled", buildNumber)}, nil
	case "job-passed":
		return []buildkite.WebhookPayload{buildkite.SampleJobFinished(0, buildNumber)}, nil
	case "job-failed":
		return []buildkite.WebhookPayload{buildkite.SampleJobFinished(1, buildNumber)}, nil
	case "lang-routing":
		return []buildkite.WebhookPayload{buildkite.SampleLangRouting(buildNumber)}, nil
	case "keyboard-routing":
		return []buildkite.WebhookPayload{buildkite.SampleKeyboardRouting(buildNumber)}, nil
	case "scenario":
		return []buildkite.WebhookPayload{
			buildkite.SampleBuildStarted(buildNumber),
			buildkite.SampleJobFinished(0, buildNumber),
			buildkite.SampleJobFinished(1, buildNumber),
			buildkite.SampleBuildFinished("failed", buildNumber),
		}, nil
	case "all":
		return []buildkite.WebhookPayload{
			buildkite.SampleBuildStarted(buildNumber),
			buildkite.SampleBuildFinished("passed", buildNumber),
			buildkite.SampleBuildFinished("failed", buildNumber),
			buildkite.SampleBuildFinished("canceled", buildNumber),
			buildkite.SampleJobFinished(0, buildNumber),
			buildkite.SampleJobFinished(1, buildNumber),
			buildkite.SampleLangRouting(buildNumber),
			buildkite.SampleKeyboardRouting(buildNumber),
		}, nil
	default:
		return nil, fmt.Errorf("unknown event type %q (valid: build-started, build-passed, build-failed, build-canceled, job-passed, job-failed, lang-routing, keyboard-routing, scenario, all)", eventType)
	}
}

func postEvent(client *http.Client, endpoint string, payload buildkite.WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	resp, err := client.Post(endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sending %s: %w", payload.Event, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	fmt.Printf("%s -> %d %s\n", payload.Event, resp.StatusCode, bytes.TrimSpace(respBody))
	return nil
}
