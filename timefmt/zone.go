package timefmt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	_ "time/tzdata" // zone lookups must not depend on the host database
)

var zoneCache sync.Map // string -> *time.Location

// ResolveZone loads an IANA zone, falling back to time.Local for unknown or empty identifiers
func ResolveZone(id string) *time.Location {
	if id == "" || id == "Local" {
		return time.Local
	}
	if loc, ok := zoneCache.Load(id); ok {
		return loc.(*time.Location)
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		loc = time.Local
	}
	zoneCache.Store(id, loc)
	return loc
}

// CityName returns the last path segment of a zone identifier with underscores as spaces
func CityName(id string) string {
	if i := strings.LastIndexByte(id, '/'); i >= 0 {
		id = id[i+1:]
	}
	return strings.ReplaceAll(id, "_", " ")
}

// ZoneLabel renders "<City> (GMT±H)" using the offset at t in whole hours, truncated toward zero
func ZoneLabel(id string, t time.Time) string {
	loc := ResolveZone(id)
	_, offset := t.In(loc).Zone()
	hours := offset / 3600
	sign := ""
	if hours >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s (GMT%s%d)", cityOrLocal(id, loc), sign, hours)
}

// ZoneAbbrevLabel renders "<City> (<abbreviation>)", e.g. "Tokyo (JST)"
func ZoneAbbrevLabel(id string, t time.Time) string {
	loc := ResolveZone(id)
	name, _ := t.In(loc).Zone()
	return fmt.Sprintf("%s (%s)", cityOrLocal(id, loc), name)
}

func cityOrLocal(id string, loc *time.Location) string {
	if id == "" {
		return CityName(loc.String())
	}
	return CityName(id)
}

// LocalZoneID names the host zone as an IANA identifier when it can be determined,
// checking $TZ then the /etc/localtime link, and returns "Local" otherwise
func LocalZoneID() string {
	if tz := strings.TrimPrefix(os.Getenv("TZ"), ":"); tz != "" {
		if _, err := time.LoadLocation(tz); err == nil {
			return tz
		}
	}
	if target, err := filepath.EvalSymlinks("/etc/localtime"); err == nil {
		if i := strings.Index(target, "zoneinfo/"); i >= 0 {
			id := target[i+len("zoneinfo/"):]
			if _, err := time.LoadLocation(id); err == nil {
				return id
			}
		}
	}
	return "Local"
}
