// Package mediaflag provides the --media flag shared by the floppy tools.
package mediaflag

import (
	"log"
	"os"

	"github.com/gokrazy/floppy/config"
	"github.com/gokrazy/floppy/media"
	"github.com/spf13/pflag"
)

var (
	mediaType media.Type
	// mediaTypeSet is false until the default was looked up or SetMedia
	// was called.
	mediaTypeSet bool
)

// defaultMedia returns the media type from $FLOPPY_MEDIA or, if unset, from
// the media.txt config file.
func defaultMedia() media.Type {
	def := os.Getenv("FLOPPY_MEDIA")
	if def == "" {
		def = config.DefaultMedia()
	}
	t, err := media.Parse(def)
	if err != nil {
		log.Printf("ignoring default media type: %v", err)
		return media.F9
	}
	return t
}

func current() *media.Type {
	if !mediaTypeSet {
		mediaType = defaultMedia()
		mediaTypeSet = true
	}
	return &mediaType
}

// Value implements pflag.Value for a media.Type.
type Value struct {
	T *media.Type
}

func (v Value) String() string {
	if v.T == nil {
		return ""
	}
	return v.T.String()
}

func (v Value) Set(s string) error {
	t, err := media.Parse(s)
	if err != nil {
		return err
	}
	*v.T = t
	return nil
}

func (v Value) Type() string { return "media" }

func RegisterPflags(fs *pflag.FlagSet) {
	fs.VarP(Value{T: current()},
		"media",
		"m",
		`media type, as capacity (720k, 360k, …) or media descriptor (0xF9). Defaults to $FLOPPY_MEDIA or the media.txt config file`)
}

func SetMedia(t media.Type) {
	mediaType = t
	mediaTypeSet = true
}

func Media() media.Type {
	return *current()
}
