// mkfloppy creates blank FAT12 floppy disk images.
//
// Example:
//
//	mkfloppy format --media 720k --out blank.dsk
//	mkfloppy reformat old.dsk
//	mkfloppy info
package main

import (
	"log"
	"os"

	"github.com/gokrazy/floppy/mediaflag"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newRootCmd(fsys afero.Fs) *cobra.Command {
	root := &cobra.Command{
		Use:           "mkfloppy",
		Short:         "create FAT12 floppy disk images",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	mediaflag.RegisterPflags(root.PersistentFlags())
	root.AddCommand(
		newFormatCmd(fsys),
		newReformatCmd(fsys),
		newInfoCmd(),
	)
	return root
}

func main() {
	log.SetFlags(0)
	if err := newRootCmd(afero.NewOsFs()).Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
