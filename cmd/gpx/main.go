// Command gpx inspects GPX files from the command line.
package main

import (
	goflag "flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/treklog/gpx"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gpx",
		Short: "Inspect GPX files",
	}
	// expose glog's -v/-logtostderr flags
	rootCmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newQueryCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Summarize the contents of a GPX file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			doc, err := gpx.Read(f)
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			glog.V(1).Infof("parsed %s: version=%s creator=%q", args[0], doc.Version, doc.Creator)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version:   %s\n", doc.Version)
			if doc.Creator != "" {
				fmt.Fprintf(out, "creator:   %s\n", doc.Creator)
			}
			if m := doc.Metadata; m != nil {
				if m.Name != "" {
					fmt.Fprintf(out, "name:      %s\n", m.Name)
				}
				if m.Time != nil {
					fmt.Fprintf(out, "time:      %s\n", m.Time.Format(time.RFC3339))
				}
			}
			var points int
			for _, track := range doc.Tracks {
				for _, segment := range track.Segments {
					points += len(segment.Points)
				}
			}
			fmt.Fprintf(out, "waypoints: %d\n", len(doc.Waypoints))
			fmt.Fprintf(out, "tracks:    %d (%d points)\n", len(doc.Tracks), points)
			fmt.Fprintf(out, "routes:    %d\n", len(doc.Routes))
			return nil
		},
	}
}

func newQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <file> <xpath>",
		Short: "Evaluate an XPath expression against a GPX file",
		Long: `Evaluate an XPath expression against a GPX file and print the text
content of each matching node, e.g.

  gpx query ride.gpx //trk/name`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := xpath.Compile(args[1])
			if err != nil {
				return fmt.Errorf("compile %q: %w", args[1], err)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			doc, err := xmlquery.Parse(f)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			results := xmlquery.QuerySelectorAll(doc, expr)
			glog.V(1).Infof("%d node(s) matched %q", len(results), args[1])
			for _, node := range results {
				if text := strings.TrimSpace(node.InnerText()); text != "" {
					fmt.Fprintln(cmd.OutOrStdout(), text)
				}
			}
			return nil
		},
	}
}
