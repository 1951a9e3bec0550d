package timefmt

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// zoneRoots are the usual host zoneinfo locations
var zoneRoots = []string{
	"/usr/share/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/usr/lib/locale/TZ",
}

// fallbackZones is used when no zoneinfo tree is readable
var fallbackZones = []string{
	"UTC",
	"America/New_York", "America/Chicago", "America/Denver", "America/Los_Angeles",
	"America/Sao_Paulo", "America/St_Johns",
	"Europe/London", "Europe/Paris", "Europe/Berlin", "Europe/Moscow",
	"Africa/Cairo", "Africa/Johannesburg",
	"Asia/Dubai", "Asia/Kolkata", "Asia/Shanghai", "Asia/Tokyo", "Asia/Singapore",
	"Australia/Sydney", "Pacific/Auckland",
}

// KnownZones lists the IANA identifiers found on the host, sorted.
// It walks the filesystem and belongs off the tick goroutine.
func KnownZones() []string {
	for _, root := range zoneRoots {
		zones, err := ScanZones(root)
		if err == nil && len(zones) > 0 {
			return zones
		}
	}
	out := append([]string(nil), fallbackZones...)
	sort.Strings(out)
	return out
}

// ScanZones collects zone identifiers from a zoneinfo tree rooted at root
func ScanZones(root string) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if skipZoneDir(rel) {
				return fs.SkipDir
			}
			return nil
		}
		if isZoneName(rel) {
			seen[rel] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	zones := make([]string, 0, len(seen))
	for z := range seen {
		zones = append(zones, z)
	}
	sort.Strings(zones)
	return zones, nil
}

func skipZoneDir(rel string) bool {
	switch rel {
	case "posix", "right", "SystemV":
		return true
	}
	return false
}

// isZoneName keeps "Area/City" style entries plus the UTC and GMT aliases
func isZoneName(rel string) bool {
	if strings.Contains(rel, ".") || !unicode.IsUpper([]rune(rel)[0]) {
		return false
	}
	if !strings.Contains(rel, "/") {
		return rel == "UTC" || rel == "GMT"
	}
	return true
}
