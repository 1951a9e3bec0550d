package timefmt

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoneLabel(t *testing.T) {
	winter := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	summer := time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Tokyo (GMT+9)", ZoneLabel("Asia/Tokyo", winter))
	assert.Equal(t, "New York (GMT-5)", ZoneLabel("America/New_York", winter))
	assert.Equal(t, "New York (GMT-4)", ZoneLabel("America/New_York", summer), "offset follows DST at the instant")
	assert.Equal(t, "UTC (GMT+0)", ZoneLabel("UTC", winter))
	assert.Equal(t, "Buenos Aires (GMT-3)", ZoneLabel("America/Argentina/Buenos_Aires", winter))
}

func TestZoneLabel_FractionalOffsetsTruncate(t *testing.T) {
	winter := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "Kolkata (GMT+5)", ZoneLabel("Asia/Kolkata", winter))
	assert.Equal(t, "Kathmandu (GMT+5)", ZoneLabel("Asia/Kathmandu", winter))
	assert.Equal(t, "St Johns (GMT-3)", ZoneLabel("America/St_Johns", winter))
}

func TestZoneAbbrevLabel(t *testing.T) {
	winter := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "Tokyo (JST)", ZoneAbbrevLabel("Asia/Tokyo", winter))
	assert.Equal(t, "New York (EST)", ZoneAbbrevLabel("America/New_York", winter))
}

func TestResolveZone(t *testing.T) {
	assert.Equal(t, time.Local, ResolveZone(""))
	assert.Equal(t, time.Local, ResolveZone("Local"))
	assert.Equal(t, time.Local, ResolveZone("Nowhere/Special"))
	assert.Equal(t, "Asia/Tokyo", ResolveZone("Asia/Tokyo").String())
	// Cached lookups return the same location
	assert.Same(t, ResolveZone("Europe/Paris"), ResolveZone("Europe/Paris"))
}

func TestCityName(t *testing.T) {
	assert.Equal(t, "Tokyo", CityName("Asia/Tokyo"))
	assert.Equal(t, "Port of Spain", CityName("America/Port_of_Spain"))
	assert.Equal(t, "UTC", CityName("UTC"))
	assert.Equal(t, "", CityName(""))
}

func TestLocalZoneID_FromTZ(t *testing.T) {
	t.Setenv("TZ", ":Europe/Berlin")
	assert.Equal(t, "Europe/Berlin", LocalZoneID())
}

func TestScanZones(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{
		"Asia/Tokyo", "America/Argentina/Salta", "UTC", "zone.tab", "posix/Asia/Tokyo",
		"right/UTC", "Factory.bak", "leapseconds", "EST5EDT",
	} {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("TZif"), 0o644))
	}

	zones, err := ScanZones(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"America/Argentina/Salta", "Asia/Tokyo", "UTC"}, zones)
}

func TestScanZones_MissingRoot(t *testing.T) {
	_, err := ScanZones(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestKnownZones_Sorted(t *testing.T) {
	zones := KnownZones()
	require.NotEmpty(t, zones)
	assert.IsNonDecreasing(t, zones)
}
