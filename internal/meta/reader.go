package meta

import (
	"log"
	"strconv"
	"strings"

	exiftool "github.com/barasher/go-exiftool"
)

// Reader extracts metadata from photo files.
//
// The EXIF block (capture date, camera identity) is read in-process. The
// XMP/IPTC fields Lightroom writes (keywords, location, rating, lens and
// exposure settings) are read through a persistent exiftool process; when
// exiftool is not installed those fields simply come back empty.
type Reader struct {
	et *exiftool.Exiftool
}

// NewReader starts the backing exiftool process. A Reader is still usable
// when exiftool is unavailable; it degrades to EXIF-only reads.
func NewReader() *Reader {
	et, err := exiftool.NewExiftool()
	if err != nil {
		log.Printf("Warning: exiftool unavailable, keywords/location/rating will be empty: %v", err)
		return &Reader{}
	}
	return &Reader{et: et}
}

// Close shuts down the backing exiftool process.
func (r *Reader) Close() {
	if r.et != nil {
		r.et.Close()
	}
}

// Read returns all available metadata for the photo at path.
// Missing or corrupt metadata yields empty fields, never an error.
func (r *Reader) Read(path string) Metadata {
	var m Metadata

	if info, err := readEXIF(path); err == nil {
		if !info.date.IsZero() {
			m.Date = info.date.Format("2006:01:02 15:04:05")
		}
		m.CameraMake = info.cameraMake
		m.CameraModel = info.cameraModel
	}

	if r.et != nil {
		r.readSidecarFields(path, &m)
	}

	return m
}

// readSidecarFields fills in the XMP/IPTC fields via exiftool.
func (r *Reader) readSidecarFields(path string, m *Metadata) {
	fms := r.et.ExtractMetadata(path)
	if len(fms) == 0 {
		return
	}
	fm := fms[0]
	if fm.Err != nil {
		log.Printf("Warning: could not read metadata from %s: %v", path, fm.Err)
		return
	}

	// Keywords live in XMP-dc:Subject for Lightroom exports, with IPTC
	// Keywords as the legacy location.
	if kws, err := fm.GetStrings("Subject"); err == nil {
		m.Keywords = cleanKeywords(kws)
	} else if kws, err := fm.GetStrings("Keywords"); err == nil {
		m.Keywords = cleanKeywords(kws)
	}

	m.Location.City = firstString(fm, "City")
	m.Location.State = firstString(fm, "State", "Province-State")
	m.Location.Country = firstString(fm, "Country", "Country-PrimaryLocationName")
	m.Location.Sublocation = firstString(fm, "Location", "Sub-location")

	if v, err := fm.GetInt("Rating"); err == nil {
		m.Rating = int(v)
	}

	if m.Date == "" {
		if v, err := fm.GetString("DateTimeOriginal"); err == nil {
			m.Date = v
		}
	}
	if m.CameraMake == "" {
		m.CameraMake = firstString(fm, "Make")
	}
	if m.CameraModel == "" {
		m.CameraModel = firstString(fm, "Model")
	}

	m.LensModel = firstString(fm, "LensModel", "LensID")
	m.ShutterSpeed = firstString(fm, "ShutterSpeed", "ExposureTime")
	if v, err := fm.GetFloat("Aperture"); err == nil {
		m.Aperture = v
	} else if v, err := fm.GetFloat("FNumber"); err == nil {
		m.Aperture = v
	}
	if v, err := fm.GetInt("ISO"); err == nil {
		m.ISO = int(v)
	}
	m.FocalLength = parseFocalLength(firstString(fm, "FocalLength"))
}

// firstString returns the first of the named fields present as a
// non-empty string.
func firstString(fm exiftool.FileMetadata, keys ...string) string {
	for _, k := range keys {
		if v, err := fm.GetString(k); err == nil {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}

// parseFocalLength parses exiftool's human form ("50.0 mm") into
// millimeters. Returns 0 when absent or unparsable.
func parseFocalLength(s string) float64 {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "mm"))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
