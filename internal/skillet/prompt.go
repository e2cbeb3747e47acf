// internal/skillet/prompt.go
package skillet

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// PromptVars interactively collects values for the skillet's declared
// variables. Secret variables are read with terminal echo disabled.
func PromptVars(vars []Variable) (map[string]any, error) {
	reader := bufio.NewReader(os.Stdin)
	values := make(map[string]any)

	for _, v := range vars {
		var value string
		var err error

		if v.Secret {
			value, err = promptSecret(v)
		} else {
			value, err = promptText(reader, v)
		}
		if err != nil {
			return nil, err
		}

		if value == "" && v.Default != "" {
			value = v.Default
		}

		if value == "" && v.Required {
			return nil, fmt.Errorf("%s is required", v.Name)
		}

		values[v.Name] = value
	}

	return values, nil
}

func promptText(reader *bufio.Reader, v Variable) (string, error) {
	label := v.Description
	if label == "" {
		label = v.Name
	}
	if v.Default != "" {
		label = fmt.Sprintf("%s [%s]", label, v.Default)
	}
	fmt.Printf("  ? %s: ", label)

	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func promptSecret(v Variable) (string, error) {
	label := v.Description
	if label == "" {
		label = v.Name
	}
	fmt.Printf("  ? %s: ", label)
	data, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println() // newline after hidden input
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
