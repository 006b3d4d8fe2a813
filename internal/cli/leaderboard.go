package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newLeaderboardCmd() *cobra.Command {
	var (
		timeRange string
		limit     int
		filter    string
	)

	cmd := &cobra.Command{
		Use:   "leaderboard <game>",
		Short: "Fetch a leaderboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			game := args[0]

			query := url.Values{}
			query.Set("range", timeRange)
			if limit > 0 {
				query.Set("limit", fmt.Sprintf("%d", limit))
			}
			if filter != "" {
				query.Set("filter", filter)
			}

			var result Leaderboard
			path := fmt.Sprintf("/api/v1/games/%s/leaderboard?%s", url.PathEscape(game), query.Encode())
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&timeRange, "range", "daily", "Time range: daily, weekly, all-time")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of entries (server default when 0)")
	cmd.Flags().StringVar(&filter, "filter", "", "Restrict to a category, e.g. a movie genre")

	return cmd
}
