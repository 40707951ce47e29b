package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/zllovesuki/ProperResolutions/system/display"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format selects how a mode list is written out
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

var formats = []Format{Text, JSON, YAML}

// ParseFormat returns the Format named by s, ignoring case
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q, expecting one of %v", s, formats)
}

// Write renders modes to w. Text output is one "<width>x<height> : <refreshRate>" line per mode.
func Write(w io.Writer, modes []display.Mode, f Format) error {
	if modes == nil {
		modes = []display.Mode{}
	}
	switch f {
	case Text:
		for _, m := range modes {
			if _, err := fmt.Fprintln(w, m.String()); err != nil {
				return err
			}
		}
		return nil
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(modes), "report: cannot encode json")
	case YAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(modes); err != nil {
			return errors.Wrap(err, "report: cannot encode yaml")
		}
		return enc.Close()
	default:
		return fmt.Errorf("report: unknown format %q", f)
	}
}

// Diff returns the modes present in next but not in prev, and those present in prev
// but not in next. Each list keeps the order of the slice it came from and holds no duplicates.
func Diff(prev, next []display.Mode) (added, removed []display.Mode) {
	before := display.NewResolutionSet()
	for _, m := range prev {
		before.Add(m)
	}
	after := display.NewResolutionSet()
	for _, m := range next {
		after.Add(m)
	}

	seen := display.NewResolutionSet()
	for _, m := range next {
		if !before.Contains(m) && !seen.Contains(m) {
			added = append(added, m)
			seen.Add(m)
		}
	}
	for _, m := range prev {
		if !after.Contains(m) && !seen.Contains(m) {
			removed = append(removed, m)
			seen.Add(m)
		}
	}
	return
}
