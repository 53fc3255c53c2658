package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"hnrecap/internal/api"
	"hnrecap/internal/cache"
	"hnrecap/internal/render"
	"hnrecap/internal/scrape"
	"hnrecap/internal/thread"
)

func newRecapCmd() *cobra.Command {
	var noStore bool

	cmd := &cobra.Command{
		Use:   "recap <story-id>",
		Short: "Fetch, reconcile and print a story's comments, one line each",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			storyID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid story id %q", args[0])
			}

			comments, err := fetchAndReconcile(cmd.Context(), storyID)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), render.Thread(comments))

			if noStore {
				return nil
			}
			if err := os.MkdirAll(cfg.CacheDir, 0o755); err != nil {
				return fmt.Errorf("creating cache dir: %w", err)
			}
			db, err := cache.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("opening cache: %w", err)
			}
			defer db.Close()
			if err := db.PutPathTable(storyID, comments); err != nil {
				return fmt.Errorf("storing path table: %w", err)
			}
			logger.Debug("stored path table",
				zap.Int("story", storyID),
				zap.Int("comments", len(comments)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noStore, "no-store", false, "skip persisting the path lookup table")
	return cmd
}

// fetchAndReconcile pulls the two views of the discussion concurrently and
// runs the reconciliation over them.
func fetchAndReconcile(ctx context.Context, storyID int) ([]*thread.FlatComment, error) {
	httpClient := &http.Client{Timeout: cfg.RequestTimeout()}
	apiClient := api.NewClientWith(httpClient, cfg.APIBaseURL)
	pageClient := scrape.NewClientWith(httpClient, cfg.PageBaseURL)

	var (
		root *thread.Node
		dom  map[int]thread.DomRecord
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		root, err = apiClient.GetThread(ctx, storyID)
		return err
	})
	g.Go(func() error {
		var err error
		dom, err = pageClient.GetItemPage(ctx, storyID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug("fetched discussion",
		zap.Int("story", storyID),
		zap.Int("visible_comments", len(dom)))

	return thread.Reconcile(root, dom)
}
