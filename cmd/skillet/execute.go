// cmd/skillet/execute.go
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/annabarone/skilletlib/internal/device"
	"github.com/annabarone/skilletlib/internal/history"
	"github.com/annabarone/skilletlib/internal/skillet"
	"github.com/annabarone/skilletlib/internal/ui"
	"github.com/spf13/cobra"
)

var diffFlag bool

var executeCmd = &cobra.Command{
	Use:   "execute <skillet-name-or-path>",
	Short: "Resolve a skillet and preview its rendered snippets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		s, err := loadSkillet(args[0])
		if err != nil {
			return err
		}
		md := s.Metadata()

		inputs := map[string]any{}

		if len(md.Variables) > 0 {
			ui.Header(fmt.Sprintf("Configuring %s...", md.Name))
			values, err := skillet.PromptVars(md.Variables)
			if err != nil {
				return err
			}
			for k, v := range values {
				inputs[k] = v
			}
		}

		if err := collectConnectionInputs(inputs); err != nil {
			return err
		}

		ui.Header(fmt.Sprintf("Initializing context for %s...", md.Name))
		ec, err := s.InitializeContext(ctx, inputs)
		if err != nil {
			return err
		}

		mode := "offline"
		if s.Session() != nil && s.Session().Connected() {
			mode = "online"
		}
		ui.Success(fmt.Sprintf("%s mode", mode))

		snippets, err := s.Snippets()
		if err != nil {
			return err
		}

		skipped := 0
		for _, snip := range snippets {
			run, err := snip.ShouldExecute(ec)
			if err != nil {
				return err
			}
			if !run {
				ui.Skip(fmt.Sprintf("%s (when condition not met)", snip.Name()))
				skipped++
				continue
			}

			rendered, err := snip.Render(ec)
			if err != nil {
				return err
			}

			ui.Header(fmt.Sprintf("%s (%s)", snip.Name(), snip.Cmd()))
			if rendered.Xpath != "" {
				ui.Info(rendered.Xpath)
			}
			switch {
			case rendered.Element == "" && snip.Cmd() == skillet.SetCmd:
				ui.Warn("no configuration content loaded")
			case diffFlag:
				d, err := device.UnifiedDiff(snip.Definition().Element, rendered.Element)
				if err != nil {
					return err
				}
				if d == "" {
					ui.Info("no variable substitutions")
				} else {
					ui.Detail(strings.TrimRight(d, "\n"))
				}
			default:
				ui.Detail(strings.TrimRight(rendered.Element, "\n"))
			}
		}

		h, err := history.Load(history.DefaultPath())
		if err != nil {
			return err
		}
		h.Record(md.Name, mode, len(snippets), skipped)
		if err := history.Save(history.DefaultPath(), h); err != nil {
			return err
		}

		ui.Result(fmt.Sprintf("%d snippet(s) resolved, %d skipped", len(snippets), skipped))
		return nil
	},
}

func init() {
	executeCmd.Flags().BoolVar(&diffFlag, "diff", false, "show variable substitutions as a unified diff")
	rootCmd.AddCommand(executeCmd)
}

// loadSkillet treats the argument as a local path when it exists on disk,
// and as a repository skillet name otherwise.
func loadSkillet(arg string) (*skillet.Skillet, error) {
	if _, err := os.Stat(arg); err == nil {
		return skillet.Load(arg)
	}
	md, err := skillet.Fetch(arg)
	if err != nil {
		return nil, err
	}
	return skillet.New(md, "."), nil
}

// collectConnectionInputs folds the connection flags (with environment
// fallbacks) and the offline snapshot into the initial context.
func collectConnectionInputs(inputs map[string]any) error {
	host := flagOrEnv(hostFlag, "SKILLET_HOST")
	username := flagOrEnv(usernameFlag, "SKILLET_USERNAME")
	password := flagOrEnv(passwordFlag, "SKILLET_PASSWORD")
	port := flagOrEnv(portFlag, "SKILLET_PORT")

	if host != "" {
		inputs["hostname"] = host
	}
	if username != "" {
		inputs["username"] = username
	}
	if password != "" {
		inputs["password"] = password
	}
	if port != "" {
		inputs["port"] = port
	}

	if configFileFlag != "" {
		data, err := os.ReadFile(configFileFlag)
		if err != nil {
			return fmt.Errorf("failed to read config snapshot: %w", err)
		}
		inputs["config"] = string(data)
	}
	return nil
}

func flagOrEnv(flag, env string) string {
	if flag != "" {
		return flag
	}
	return os.Getenv(env)
}
