package main

import "github.com/divvun/zulip-buildkite-bot/cmd"

func main() {
	cmd.Execute()
}
