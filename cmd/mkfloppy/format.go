package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gokrazy/floppy/fat"
	"github.com/gokrazy/floppy/humanize"
	"github.com/gokrazy/floppy/imagefile"
	"github.com/gokrazy/floppy/media"
	"github.com/gokrazy/floppy/mediaflag"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type formatOptions struct {
	out         string
	unformatted bool
	imagefile.Options
}

func newFormatCmd(fsys afero.Fs) *cobra.Command {
	var opts formatOptions
	cmd := &cobra.Command{
		Use:   "format --out <image>",
		Short: "write a blank, formatted floppy disk image",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := runFormat(fsys, mediaflag.Media(), opts)
			return err
		},
	}
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output image file path")
	cmd.Flags().BoolVar(&opts.unformatted, "unformatted", false, "write an all-zero image without boot sector or FAT")
	cmd.Flags().BoolVar(&opts.Zstd, "zstd", false, "compress the image with zstd")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "overwrite an existing image file")
	return cmd
}

func runFormat(fsys afero.Fs, t media.Type, opts formatOptions) (string, error) {
	if opts.out == "" {
		return "", errors.New("--out is required")
	}
	var (
		image []byte
		err   error
	)
	if opts.unformatted {
		image, err = fat.NewEmptyImage(t)
	} else {
		if !t.Creatable() {
			log.Printf("%v has no boot sector template, leaving sector 0 blank", t)
		}
		image, err = fat.NewFormattedImage(t)
	}
	if err != nil {
		return "", err
	}
	path, err := imagefile.Write(fsys, opts.out, image, opts.Options)
	if err != nil {
		return "", err
	}
	log.Printf("wrote %s (%v, %s)", path, t, humanize.Bytes(uint64(len(image))))
	return path, nil
}

func newReformatCmd(fsys afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "reformat <image>",
		Short: "format an existing floppy disk image in place, erasing all files",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runReformat(fsys, mediaflag.Media(), args[0])
		},
	}
}

func runReformat(fsys afero.Fs, t media.Type, path string) error {
	image, err := imagefile.Read(fsys, path)
	if err != nil {
		return err
	}
	if !media.ValidSize(len(image)) {
		return fmt.Errorf("%s: %s is not the size of any floppy disk image", path, humanize.Bytes(uint64(len(image))))
	}
	if err := fat.Format(t, image); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	opts := imagefile.Options{
		Force: true,
		Zstd:  strings.HasSuffix(path, ".zst"),
	}
	if _, err := imagefile.Write(fsys, path, image, opts); err != nil {
		return err
	}
	log.Printf("reformatted %s as %v", path, t)
	return nil
}
