package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/codevai-team/codev-bot/pkg/telegram"
)

func newRootCmd(newAdmin func() (WebhookAdmin, error)) *cobra.Command {
	root := &cobra.Command{
		Use:   "webhookctl",
		Short: "Manage the Telegram webhook registration of the Codev bot",
		Long: `webhookctl registers, inspects and removes the public URL Telegram
delivers bot updates to. The bot token is read from BOT_TOKEN (or .env).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSetCmd(newAdmin),
		newInfoCmd(newAdmin),
		newDeleteCmd(newAdmin),
	)

	return root
}

func newSetCmd(newAdmin func() (WebhookAdmin, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <url>",
		Short: "Point Telegram at the webhook URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			maxConnections, _ := cmd.Flags().GetInt("max-connections")
			allowedUpdates, _ := cmd.Flags().GetStringSlice("allowed-updates")
			dropPending, _ := cmd.Flags().GetBool("drop-pending")

			admin, err := newAdmin()
			if err != nil {
				return err
			}

			request := telegram.SetWebhookRequest{
				URL:                args[0],
				MaxConnections:     maxConnections,
				AllowedUpdates:     normalizeUpdates(allowedUpdates),
				DropPendingUpdates: dropPending,
			}

			if err = admin.SetWebhook(cmd.Context(), request); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "webhook set to %s\n", request.URL)

			return nil
		},
	}

	cmd.Flags().Int("max-connections", 0, "maximum simultaneous HTTPS connections (1-100, 0 keeps Telegram's default)")
	cmd.Flags().StringSlice("allowed-updates", nil, "update kinds to receive, e.g. message,callback_query")
	cmd.Flags().Bool("drop-pending", false, "drop updates queued while no webhook was set")

	return cmd
}

func newInfoCmd(newAdmin func() (WebhookAdmin, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the current webhook registration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dump, _ := cmd.Flags().GetBool("dump")

			admin, err := newAdmin()
			if err != nil {
				return err
			}

			info, err := admin.GetWebhookInfo(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if dump {
				_, _ = fmt.Fprint(out, spew.Sdump(info))
				return nil
			}

			url := info.URL
			if url == "" {
				url = "(not set)"
			}

			_, _ = fmt.Fprintf(out, "URL:              %s\n", url)
			_, _ = fmt.Fprintf(out, "Pending updates:  %d\n", info.PendingUpdateCount)

			if info.MaxConnections > 0 {
				_, _ = fmt.Fprintf(out, "Max connections:  %d\n", info.MaxConnections)
			}

			if len(info.AllowedUpdates) > 0 {
				_, _ = fmt.Fprintf(out, "Allowed updates:  %s\n", strings.Join(info.AllowedUpdates, ","))
			}

			if info.LastErrorDate > 0 {
				_, _ = fmt.Fprintf(out, "Last error:       %s (%s)\n",
					info.LastErrorMessage,
					time.Unix(info.LastErrorDate, 0).UTC().Format(time.RFC3339))
			}

			return nil
		},
	}

	cmd.Flags().Bool("dump", false, "print the raw webhook info structure")

	return cmd
}

func newDeleteCmd(newAdmin func() (WebhookAdmin, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove the webhook registration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dropPending, _ := cmd.Flags().GetBool("drop-pending")

			admin, err := newAdmin()
			if err != nil {
				return err
			}

			if err = admin.DeleteWebhook(cmd.Context(), dropPending); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "webhook deleted")

			return nil
		},
	}

	cmd.Flags().Bool("drop-pending", false, "drop updates queued for delivery")

	return cmd
}

func normalizeUpdates(kinds []string) []string {
	kinds = lo.Map(kinds, func(kind string, _ int) string {
		return strings.ToLower(strings.TrimSpace(kind))
	})

	kinds = lo.Uniq(lo.Filter(kinds, func(kind string, _ int) bool {
		return kind != ""
	}))

	if len(kinds) == 0 {
		return nil
	}

	return kinds
}
