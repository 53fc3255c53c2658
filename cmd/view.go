package cmd

import (
	"fmt"
	"net/http"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"hnrecap/internal/api"
	"hnrecap/internal/ui"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <story-id>",
		Short: "Browse a reconciled thread in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			storyID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid story id %q", args[0])
			}
			ctx := cmd.Context()

			comments, err := fetchAndReconcile(ctx, storyID)
			if err != nil {
				return err
			}

			title := fmt.Sprintf("story %d", storyID)
			apiClient := api.NewClientWith(&http.Client{Timeout: cfg.RequestTimeout()}, cfg.APIBaseURL)
			if story, err := apiClient.GetItem(ctx, storyID); err == nil && story != nil && story.Title != "" {
				title = story.Title
			}

			p := tea.NewProgram(ui.New(title, comments), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running viewer: %w", err)
			}
			return nil
		},
	}
}
