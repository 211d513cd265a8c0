// Package exif reads capture timestamps from image metadata. It is the
// production binding for the timestamp capability the scanner consumes;
// the scanner itself only sees a function value.
package exif

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"

	"camroll/internal/errors"
)

// TimestampLayout is the EXIF date token format.
const TimestampLayout = "2006:01:02 15:04:05"

func init() {
	// Maker-note parsers let goexif decode vendor blocks in raw files.
	exif.RegisterParsers(mknote.All...)
}

// ReadCaptureTimestamp opens the file at path and extracts its capture date.
// DateTimeOriginal is preferred; cameras that omit it usually still write
// DateTime. Returns a MetadataMissing error when no capture field is present
// and MetadataUnparsable when the field does not match TimestampLayout.
func ReadCaptureTimestamp(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, errors.NewFileError("cannot open image", path, errors.FileNotFound, err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, errors.NewFileError("no metadata block", path, errors.MetadataMissing, err)
	}

	raw, err := captureField(x)
	if err != nil {
		return time.Time{}, errors.NewFileError("no capture date field", path, errors.MetadataMissing, err)
	}

	return ParseTimestamp(path, raw)
}

// captureField returns the first capture-date field present.
func captureField(x *exif.Exif) (string, error) {
	for _, name := range []exif.FieldName{exif.DateTimeOriginal, exif.DateTime} {
		tag, err := x.Get(name)
		if err != nil {
			continue
		}
		if s, err := tag.StringVal(); err == nil && s != "" {
			return s, nil
		}
	}
	return "", errors.New("capture date field absent")
}

// ParseTimestamp parses a raw EXIF date token. Split out so the error
// taxonomy for a present-but-malformed field is testable without image
// fixtures.
func ParseTimestamp(path, raw string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, raw)
	if err != nil {
		return time.Time{}, errors.NewFileError("capture date in unexpected format", path, errors.MetadataUnparsable, err)
	}
	return t, nil
}
