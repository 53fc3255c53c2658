package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"hnrecap/internal/cache"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <story-id> <path>",
		Short: "Resolve a comment path from a stored recap back to its HN item URL",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			storyID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid story id %q", args[0])
			}
			path := args[1]

			if err := os.MkdirAll(cfg.CacheDir, 0o755); err != nil {
				return fmt.Errorf("creating cache dir: %w", err)
			}
			db, err := cache.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("opening cache: %w", err)
			}
			defer db.Close()

			id, ok, err := db.ResolvePath(storyID, path)
			if err != nil {
				return err
			}
			if !ok {
				count, at, stored, err := db.ThreadInfo(storyID)
				if err != nil {
					return err
				}
				if !stored {
					return fmt.Errorf("story %d has no stored recap; run `hnrecap recap %d` first", storyID, storyID)
				}
				return fmt.Errorf("no comment at path %s (recap of %s has %d comments)",
					path, at.Format("2006-01-02 15:04"), count)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s/item?id=%d\n", cfg.PageBaseURL, id)
			return nil
		},
	}
}
