package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/cv-assistant/internal/email"
	"github.com/spigell/cv-assistant/internal/recruitment"
)

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Write an email from a template for a candidate",
	Run: func(cmd *cobra.Command, _ []string) {
		writeEmail(cmd)
	},
}

func init() {
	rootCmd.AddCommand(emailCmd)

	emailCmd.Flags().StringP("template", "t", "", "template id. Asked interactively when unset.")
	emailCmd.Flags().StringP("candidate", "c", "", "candidate id to fill the placeholders from")
	emailCmd.Flags().String("context", "", "JSON file with extra placeholder values")
	emailCmd.Flags().StringToString("set", nil, "placeholder values, e.g. --set job_title=Engineer")
	addRawFlag(emailCmd)
}

func writeEmail(cmd *cobra.Command) {
	ctx := context.Background()
	rt := setup(ctx)

	templateID, _ := cmd.Flags().GetString("template")
	if templateID == "" {
		selected, err := selectTemplate(rt.store.TemplateSummaries())
		if err != nil {
			rt.logger.Fatal("selecting a template", zap.Error(err))
		}
		templateID = selected
	}

	values, err := emailContext(cmd, rt.store)
	if err != nil {
		rt.logger.Fatal("building email context", zap.Error(err))
	}

	msg, err := rt.assistant.GenerateEmail(ctx, templateID, values)
	if err != nil {
		rt.logger.Fatal("generating email", zap.Error(err), zap.String("template_id", templateID))
	}

	if raw, _ := cmd.Flags().GetBool("raw"); raw {
		if err := printJSON(cmd, "", msg); err != nil {
			rt.logger.Fatal("printing result", zap.Error(err))
		}
		return
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("Email"))
	fmt.Fprintln(out, labelStyle.Render("Subject: ")+msg.Subject)
	fmt.Fprintln(out)
	fmt.Fprintln(out, msg.Body)
}

func selectTemplate(templates []recruitment.TemplateSummary) (string, error) {
	if len(templates) == 0 {
		return "", fmt.Errorf("no email templates loaded")
	}

	prompt := promptui.Select{
		Label: "Choose a template and press ENTER",
		Items: templates,
		Templates: &promptui.SelectTemplates{
			Active:   "▸ {{ .Name | cyan }} ({{ .ID }})",
			Inactive: "  {{ .Name }} ({{ .ID }})",
			Selected: "{{ .Name | green }}",
			Details:  "Subject: {{ .Subject }}",
		},
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return templates[i].ID, nil
}

// emailContext merges, in increasing priority, the candidate's values, the
// --context file and --set pairs.
func emailContext(cmd *cobra.Command, store *recruitment.Store) (email.Context, error) {
	values := email.Context{}

	if id, _ := cmd.Flags().GetString("candidate"); id != "" {
		candidate, err := store.EmailContext(id)
		if err != nil {
			return nil, err
		}
		for k, v := range candidate {
			values[k] = v
		}
	}

	if path, _ := cmd.Flags().GetString("context"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading context file: %w", err)
		}
		var extra email.Context
		if err := json.Unmarshal(data, &extra); err != nil {
			return nil, fmt.Errorf("decoding context file %q: %w", path, err)
		}
		for k, v := range extra {
			values[k] = v
		}
	}

	pairs, _ := cmd.Flags().GetStringToString("set")
	for k, v := range pairs {
		values[k] = v
	}

	return values, nil
}
