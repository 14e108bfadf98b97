package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"seodash/internal/services"
	api "seodash/pkg/contracts/api/v1"
)

func utmCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "utm",
		Short: "Build campaign tracking links",
	}
	cmd.AddCommand(utmBuildCommand(opts), utmChannelsCommand())
	return cmd
}

func utmBuildCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build --url <listing url> --campaign <name>",
		Short: "Add UTM parameters to a listing URL",
		Long: `Add utm_source, utm_medium, utm_campaign and the optional utm_term and
utm_content parameters to a listing URL. Existing query parameters are kept.

A --channel preset fills source and medium; explicit --source and --medium
flags win over the preset.

Examples:
  seodash utm build --url https://www.etsy.com/listing/123 \
    --channel "Pinterest (organic)" --campaign spring_sale

  seodash utm build --url https://www.etsy.com/listing/123 \
    --source newsletter --medium email --campaign may --out link.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUTMBuild(cmd, opts)
		},
	}

	cmd.Flags().String("url", "", "listing URL (required)")
	cmd.Flags().String("channel", "", "channel preset, see 'seodash utm channels'")
	cmd.Flags().String("source", "", "utm_source (required without --channel)")
	cmd.Flags().String("medium", "", "utm_medium (required without --channel)")
	cmd.Flags().String("campaign", "", "utm_campaign")
	cmd.Flags().String("term", "", "utm_term")
	cmd.Flags().String("content", "", "utm_content")
	cmd.Flags().String("out", "", "also save the link to this text file")

	return cmd
}

func runUTMBuild(cmd *cobra.Command, opts *globalOptions) error {
	flags := cmd.Flags()
	req := api.LinkRequest{}
	req.URL, _ = flags.GetString("url")
	req.Channel, _ = flags.GetString("channel")
	req.Source, _ = flags.GetString("source")
	req.Medium, _ = flags.GetString("medium")
	req.Campaign, _ = flags.GetString("campaign")
	req.Term, _ = flags.GetString("term")
	req.Content, _ = flags.GetString("content")
	out, _ := flags.GetString("out")

	if strings.TrimSpace(req.URL) == "" {
		return errors.New(api.MsgMissingURL)
	}

	env, err := opts.load(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	svc := services.NewLinkService(env.paths.ExportsDir, nil, env.logger)
	link, err := svc.Build(cmd.Context(), req)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), link.URL)

	if out != "" {
		if out, err = filepath.Abs(out); err != nil {
			return err
		}
		saved, err := svc.Save(cmd.Context(), link.URL, out)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Link saved to %s\n", saved)
	}
	return nil
}

func utmChannelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "channels",
		Short: "List the channel presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := services.NewLinkService("", nil, nil)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CHANNEL\tSOURCE\tMEDIUM")
			for _, ch := range svc.Channels() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", ch.Name, ch.Source, ch.Medium)
			}
			return tw.Flush()
		},
	}
}
