package main

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"text/tabwriter"

	"github.com/gokrazy/floppy/config"
	"github.com/gokrazy/floppy/humanize"
	"github.com/gokrazy/floppy/media"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "list the supported media types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configDir, err := config.Floppy()
			if err != nil {
				log.Printf("locating config directory: %v", err)
			}
			return printInfo(cmd.OutOrStdout(), configDir)
		},
	}
}

// printInfo lists the media types and, if configDir is not empty, where the
// default media type is configured.
func printInfo(w io.Writer, configDir string) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "MEDIA\tCAPACITY\tIMAGE SIZE\tCLUSTER\tCLUSTERS\tROOT ENTRIES\tFATS\tCREATABLE")
	for _, t := range media.All() {
		g, _ := media.Lookup(t)
		fmt.Fprintf(tw, "0x%02X\t%s\t%s\t%s\t%d\t%d\t%d\t%v\n",
			t.Descriptor(),
			t.Description(),
			humanize.Bytes(uint64(media.ImageSize(t))),
			humanize.Bytes(uint64(g.BytesPerCluster())),
			g.DataClusters,
			g.RootDirEntries,
			g.FATs,
			t.Creatable())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if configDir == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, "\ndefault media type: %s\n", filepath.Join(configDir, "media.txt"))
	return err
}
