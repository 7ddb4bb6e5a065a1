package cmd

import (
	"action-notes/config"
	"action-notes/config/setup"
	"action-notes/extract"
	"action-notes/models"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	extractSave bool
	extractJSON bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract action items from a file or stdin",
	Long: `Extract action items from text with the configured language model.
Reads the file argument, or stdin when none is given. With --save the text is
stored as a note together with its action items.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		cfg := config.AppConfig
		extractor, err := setup.InitExtractor(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if !extractSave {
			items, err := extractItems(cmd.Context(), extractor, text)
			if err != nil {
				return err
			}
			return printItems(out, items)
		}

		db, err := setup.InitDatabase(cfg, logger)
		if err != nil {
			return err
		}
		defer db.Close()

		application := setup.InitApp(db, extractor, logger)
		result, err := application.Extraction.Extract(cmd.Context(), models.ExtractRequest{Text: text, SaveNote: true})
		if err != nil {
			return err
		}

		if extractJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(result)
		}

		fmt.Fprintf(out, "saved note %d\n", *result.NoteID)
		descriptions := make([]string, 0, len(result.Items))
		for _, item := range result.Items {
			descriptions = append(descriptions, item.Description)
		}
		return printItems(out, descriptions)
	},
}

// extractItems runs the model without touching the database. Items are
// normalized the same way the HTTP endpoint stores them.
func extractItems(ctx context.Context, extractor extract.Extractor, text string) ([]string, error) {
	items, err := extractor.Extract(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	return extract.Normalize(items), nil
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read %s: %w", args[0], err)
		}
		return nonBlank(string(data))
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return nonBlank(string(data))
}

func nonBlank(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text to extract from")
	}
	return text, nil
}

func printItems(w io.Writer, items []string) error {
	if extractJSON {
		return json.NewEncoder(w).Encode(map[string][]string{"items": items})
	}
	for _, item := range items {
		if _, err := fmt.Fprintf(w, "- %s\n", item); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().BoolVar(&extractSave, "save", false, "Store the text as a note with its action items")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Output in JSON format")
}
