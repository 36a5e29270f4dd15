// tutorchat - interactive terminal tutor backed by an OpenAI-compatible
// chat endpoint. Runs standalone from the HTTP backend; only the llm
// adapter package is shared.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gyanguru/gyanguru/internal/infra/config"
	"github.com/gyanguru/gyanguru/internal/infra/llm"
	"github.com/gyanguru/gyanguru/internal/version"
)

const systemPrompt = "You are GyanGuru, a patient programming tutor. " +
	"Explain concepts clearly, prefer small examples, and ask a short " +
	"follow-up question when the student seems stuck."

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, in io.Reader, out io.Writer) int {
	fs := flag.NewFlagSet("tutorchat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	showVersion := fs.Bool("version", false, "Show version information")
	model := fs.String("model", "", "Override the chat model")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(out, version.String()) //nolint:errcheck
		return 0
	}

	cfg := config.Load()
	if cfg.OpenAIAPIKey == "" {
		fmt.Fprintln(out, "tutorchat: OPENAI_API_KEY is not set") //nolint:errcheck
		return 1
	}
	if *model == "" {
		*model = cfg.ChatModel
	}

	client := llm.NewOpenAIClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.SpeechModel, cfg.SpeechVoice, *model)
	return chatLoop(context.Background(), client, *model, in, out)
}

// chatLoop reads student turns from in until EOF or an exit command,
// keeping the whole conversation as context for each completion.
func chatLoop(ctx context.Context, client llm.ChatCompleter, model string, in io.Reader, out io.Writer) int {
	history := []llm.Message{{Role: "system", Content: systemPrompt}}

	fmt.Fprintf(out, "GyanGuru tutor (%s). Type 'exit' to quit.\n", model) //nolint:errcheck

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "you> ") //nolint:errcheck
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		history = append(history, llm.Message{Role: "user", Content: line})
		resp, err := client.ChatCompletion(ctx, llm.ChatRequest{
			Model:    model,
			Messages: history,
		})
		if err != nil {
			fmt.Fprintf(out, "tutorchat: %v\n", err) //nolint:errcheck
			return 1
		}

		history = append(history, llm.Message{Role: "assistant", Content: resp.Content})
		fmt.Fprintf(out, "tutor> %s\n", resp.Content) //nolint:errcheck
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(out, "tutorchat: read error: %v\n", err) //nolint:errcheck
		return 1
	}
	fmt.Fprintln(out, "bye") //nolint:errcheck
	return 0
}
