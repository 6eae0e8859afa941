package pipeline

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Tato14/Ped-eeg-position/pkg/cache"
	"github.com/Tato14/Ped-eeg-position/pkg/layout"
	"github.com/Tato14/Ped-eeg-position/pkg/montage"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(nil, nil, testLogger())

	if r.Cache == nil {
		t.Error("nil cache should fall back to NullCache")
	}
	if r.Keyer == nil {
		t.Error("nil keyer should fall back to DefaultKeyer")
	}
}

func TestRunnerCompute(t *testing.T) {
	r := NewRunner(nil, nil, testLogger())

	doc, err := r.Compute(validOptions())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(doc.Electrodes) != 21 {
		t.Errorf("computed %d electrodes, want 21", len(doc.Electrodes))
	}
	if cz, ok := doc.Position(montage.LabelCz); !ok || cz.Y != -17.5 {
		t.Errorf("Cz = %+v, want y=-17.5", cz)
	}

	// Invalid subjects surface validation errors
	bad := validOptions()
	bad.Sex = "unknown"
	if _, err := r.Compute(bad); err == nil {
		t.Error("Compute accepted an invalid subject")
	}
}

func TestRunnerExecuteSVG(t *testing.T) {
	r := NewRunner(nil, nil, testLogger())

	result, err := r.Execute(context.Background(), validOptions())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	svg, ok := result.Artifacts[FormatSVG]
	if !ok {
		t.Fatal("no svg artifact")
	}
	if !strings.HasPrefix(string(svg), "<svg") {
		t.Errorf("svg artifact does not look like SVG: %.60s", svg)
	}
	if result.LayoutHash == "" {
		t.Error("LayoutHash not set")
	}
	if result.CacheInfo.RenderHit {
		t.Error("first run should not be a cache hit")
	}
}

func TestRunnerExecuteJSONRoundTrips(t *testing.T) {
	r := NewRunner(nil, nil, testLogger())

	opts := validOptions()
	opts.Formats = []string{FormatJSON}

	result, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	doc, err := layout.Unmarshal(result.Artifacts[FormatJSON])
	if err != nil {
		t.Fatalf("json artifact does not decode: %v", err)
	}
	if len(doc.Electrodes) != 21 {
		t.Errorf("decoded %d electrodes, want 21", len(doc.Electrodes))
	}
}

func TestRunnerExecuteChainDOT(t *testing.T) {
	r := NewRunner(nil, nil, testLogger())

	opts := validOptions()
	opts.Viz = VizChain
	opts.Formats = []string{FormatDOT}

	result, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	dot := string(result.Artifacts[FormatDOT])
	if !strings.Contains(dot, "graph montage") || !strings.Contains(dot, `"Cz"`) {
		t.Errorf("dot artifact malformed:\n%s", dot)
	}
}

func TestRunnerRenderCaching(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, nil, testLogger())
	defer r.Close()

	opts := validOptions()
	opts.Formats = []string{FormatSVG}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.RenderHit {
		t.Error("first run should miss the cache")
	}

	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit the cache")
	}
	if string(first.Artifacts[FormatSVG]) != string(second.Artifacts[FormatSVG]) {
		t.Error("cached artifact differs from rendered artifact")
	}

	// Refresh bypasses the cache
	opts.Refresh = true
	third, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("third Execute: %v", err)
	}
	if third.CacheInfo.RenderHit {
		t.Error("refresh run should not report a cache hit")
	}

	// Different render options miss the cache
	opts.Refresh = false
	opts.Grid = true
	fourth, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("fourth Execute: %v", err)
	}
	if fourth.CacheInfo.RenderHit {
		t.Error("changed options should produce a different cache key")
	}
}

// ttlRecordingCache remembers the ttl of the last Set call.
type ttlRecordingCache struct {
	cache.Cache
	lastTTL time.Duration
}

func (c *ttlRecordingCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.lastTTL = ttl
	return c.Cache.Set(ctx, key, data, ttl)
}

func TestRunnerArtifactTTL(t *testing.T) {
	rec := &ttlRecordingCache{Cache: cache.NewNullCache()}
	r := NewRunner(rec, nil, testLogger())

	opts := validOptions()
	opts.Formats = []string{FormatSVG}
	if _, err := r.Execute(context.Background(), opts); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if rec.lastTTL != cache.TTLArtifact {
		t.Errorf("default ttl = %v, want %v", rec.lastTTL, cache.TTLArtifact)
	}

	r.TTL = time.Hour
	if _, err := r.Execute(context.Background(), opts); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if rec.lastTTL != time.Hour {
		t.Errorf("configured ttl = %v, want %v", rec.lastTTL, time.Hour)
	}
}

func TestRunnerExecuteInvalidOptions(t *testing.T) {
	r := NewRunner(nil, nil, testLogger())

	opts := validOptions()
	opts.Formats = []string{"bmp"}
	if _, err := r.Execute(context.Background(), opts); err == nil {
		t.Error("Execute accepted an invalid format")
	}

	opts = validOptions()
	opts.NasionInion = -3
	if _, err := r.Execute(context.Background(), opts); err == nil {
		t.Error("Execute accepted an invalid subject")
	}
}
