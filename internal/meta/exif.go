package meta

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// exifInfo is the subset of EXIF we can read in-process, without
// shelling out to exiftool.
type exifInfo struct {
	date        time.Time
	cameraMake  string
	cameraModel string
}

// readEXIF extracts the capture date and camera identity from a photo's
// EXIF block. Returns an error if the file cannot be read or has no EXIF
// data; callers treat that as "fields absent".
func readEXIF(path string) (exifInfo, error) {
	var info exifInfo

	f, err := os.Open(path)
	if err != nil {
		return info, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return info, err
	}

	if t, err := x.DateTime(); err == nil {
		info.date = t
	}
	if tag, err := x.Get(exif.Make); err == nil {
		if v, err := tag.StringVal(); err == nil {
			info.cameraMake = trimNul(v)
		}
	}
	if tag, err := x.Get(exif.Model); err == nil {
		if v, err := tag.StringVal(); err == nil {
			info.cameraModel = trimNul(v)
		}
	}

	return info, nil
}

// trimNul strips trailing NUL padding some cameras write into
// fixed-width EXIF string fields.
func trimNul(s string) string {
	for len(s) > 0 && (s[len(s)-1] == 0 || s[len(s)-1] == ' ') {
		s = s[:len(s)-1]
	}
	return s
}
