package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/spigell/cv-assistant/internal/cv"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)
)

// printJSON writes v as indented JSON, preceded by a styled title unless
// --raw is set.
func printJSON(cmd *cobra.Command, title string, v any) error {
	out := cmd.OutOrStdout()

	if raw, _ := cmd.Flags().GetBool("raw"); !raw {
		fmt.Fprintln(out, titleStyle.Render(title))
	}

	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	_, err = fmt.Fprintln(out, string(pretty))
	return err
}

func addRawFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("raw", false, "print only the JSON result")
}

// readCV returns the CV text from --file, or from stdin when the flag is empty.
func readCV(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("file")

	if path == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading cv from stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading cv file: %w", err)
	}

	return cv.ReadDocument(path, data)
}
