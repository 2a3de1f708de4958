package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	memoryAdapter "github.com/RasimKhusaenov/alice-todoist-integration/internal/adapters/memory"
	"github.com/RasimKhusaenov/alice-todoist-integration/internal/adapters/todoist"
	"github.com/RasimKhusaenov/alice-todoist-integration/internal/config"
	"github.com/RasimKhusaenov/alice-todoist-integration/internal/dialog"
	"github.com/RasimKhusaenov/alice-todoist-integration/internal/logging"
	"github.com/RasimKhusaenov/alice-todoist-integration/pkg/domain"
)

var talkCmd = &cobra.Command{
	Use:   "talk",
	Short: "Hold a local dialog session in the terminal",
	Long: `Runs the dialog engine against stdin/stdout for development.
A tiny command grammar stands in for the platform NLU:

  список [на завтра]   list tasks
  дальше               next task
  добавь <text> [на завтра]   create a task
  выход                quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cfg.TodoistToken == "" {
			return fmt.Errorf("todoist token is not configured (set TODOIST_APP_TOKEN)")
		}

		deps := dialog.Deps{
			Tasks:  todoist.New(cfg.TodoistToken),
			Cache:  memoryAdapter.NewCache(memoryAdapter.WithTTL(cfg.Cache.TTL)),
			Logger: logging.NewNop(),
		}
		engine := dialog.NewEngine(dialog.NewRegistry(deps))

		// Styling only when attached to a terminal; piped output stays plain.
		profile := termenv.Ascii
		if term.IsTerminal(int(os.Stdout.Fd())) {
			profile = termenv.ColorProfile()
		}
		say := func(text string) {
			fmt.Println(profile.String(text).Foreground(profile.Color("6")))
		}

		ctx := context.Background()
		session := map[string]any{}
		reader := bufio.NewReader(os.Stdin)

		// The very first turn carries no state, like a fresh conversation.
		resp := engine.Step(ctx, &domain.Turn{
			Intents:   map[string]domain.Intent{},
			Session:   session,
			SessionID: "local",
		})
		say(resp.Text)
		session = resp.State

		for {
			fmt.Print("> ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return nil
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if line == "выход" || line == "exit" || line == "quit" {
				fmt.Println("Пока!")
				return nil
			}

			resp = engine.Step(ctx, &domain.Turn{
				Intents:   parseIntents(line),
				Session:   session,
				SessionID: "local",
				Utterance: line,
			})
			say(resp.Text)
			session = resp.State
		}
	},
}

// parseIntents is the REPL's stand-in for the platform NLU.
func parseIntents(line string) map[string]domain.Intent {
	lower := strings.ToLower(line)
	timeValue := "today"
	if strings.Contains(lower, "завтра") {
		timeValue = "tomorrow"
	}

	switch {
	case strings.HasPrefix(lower, "добавь "):
		what := strings.TrimSpace(line[len("добавь "):])
		slots := map[string]domain.Slot{}
		for _, suffix := range []string{" на завтра", " на сегодня"} {
			if strings.HasSuffix(strings.ToLower(what), suffix) {
				what = strings.TrimSpace(what[:len(what)-len(suffix)])
			}
		}
		slots[domain.SlotWhat] = domain.Slot{Type: "YANDEX.STRING", Value: what}
		if strings.Contains(lower, "на завтра") {
			slots[domain.SlotWhen] = domain.Slot{
				Type:  domain.SlotTypeDateTime,
				Value: map[string]any{"day": 1, "day_is_relative": true},
			}
		}
		return map[string]domain.Intent{domain.IntentCreateTask: {Slots: slots}}

	case strings.HasPrefix(lower, "дальше") || strings.HasPrefix(lower, "следующая"):
		return map[string]domain.Intent{domain.IntentNextTask: {}}

	case strings.Contains(lower, "список") || strings.Contains(lower, "задачи"):
		return map[string]domain.Intent{domain.IntentListTasks: {
			Slots: map[string]domain.Slot{
				domain.SlotTime: {Type: "YANDEX.STRING", Value: timeValue},
			},
		}}
	}
	return map[string]domain.Intent{}
}

func init() {
	rootCmd.AddCommand(talkCmd)
}
