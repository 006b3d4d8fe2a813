package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

func newResultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results",
		Short: "Result submission commands",
	}

	cmd.AddCommand(newResultsSubmitCmd())
	cmd.AddCommand(newResultsSubmitBatchCmd())

	return cmd
}

// readSessionPayload reads a JSON payload from a file, or stdin when
// the path is "-"
func readSessionPayload(path string, into any) error {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read session payload: %w", err)
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("failed to parse session payload: %w", err)
	}
	return nil
}

func newResultsSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <game> <file>",
		Short: "Submit a finished session from a JSON file (use - for stdin)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			game := args[0]

			var session map[string]any
			if err := readSessionPayload(args[1], &session); err != nil {
				return err
			}

			var result ScoredResult
			path := fmt.Sprintf("/api/v1/games/%s/results", url.PathEscape(game))
			if err := client.Post(path, session, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newResultsSubmitBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit-batch <game> <file>",
		Short: "Submit several sessions at once from a JSON file (use - for stdin)",
		Long: `Submit several finished sessions in one request. The file must contain
a JSON object of the form {"sessions": [...]}. The batch is all-or-nothing:
if any session is invalid, none are recorded.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			game := args[0]

			var batch map[string]any
			if err := readSessionPayload(args[1], &batch); err != nil {
				return err
			}

			var result SubmitBatchResult
			path := fmt.Sprintf("/api/v1/games/%s/results/batch", url.PathEscape(game))
			if err := client.Post(path, batch, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
