package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Tato14/Ped-eeg-position/pkg/cache"
	"github.com/Tato14/Ped-eeg-position/pkg/errors"
	"github.com/Tato14/Ped-eeg-position/pkg/layout"
)

// Runner encapsulates pipeline execution with artifact caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL bounds the lifetime of cached artifacts. Zero means
	// cache.TTLArtifact.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete compute → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Compute
	computeStart := time.Now()
	doc, err := r.Compute(opts)
	if err != nil {
		return nil, err
	}
	result.Document = doc
	result.Stats.ComputeTime = time.Since(computeStart)

	docData, err := layout.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "serialize layout")
	}
	result.LayoutHash = cache.LayoutHash(docData)

	r.Logger.Info("computed layout",
		"electrodes", len(doc.Electrodes),
		"spacing_factor", doc.SpacingFactor,
		"front_shift", doc.FrontShift,
		"duration", result.Stats.ComputeTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, doc, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"viz", opts.Viz,
		"formats", opts.Formats,
		"cache_hit", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Compute derives the electrode layout from the subject parameters. The
// computation is pure, so there is no caching and no context.
func (r *Runner) Compute(opts Options) (layout.Document, error) {
	if err := opts.ValidateForCompute(); err != nil {
		return layout.Document{}, err
	}

	sub, err := opts.Subject()
	if err != nil {
		return layout.Document{}, err
	}
	return layout.FromMontage(opts.Model().Compute(sub)), nil
}

// RenderWithCacheInfo renders artifacts with caching and reports whether
// every requested format came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, doc layout.Document, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	docData, err := layout.Marshal(doc)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "serialize layout for cache key")
	}
	docHash := cache.LayoutHash(docData)

	// Try to get all formats from cache (unless refresh requested)
	if !opts.Refresh {
		artifacts := make(map[string][]byte)
		allCached := true
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	rendered, err := renderDocument(doc, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, key, data, r.artifactTTL())
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, doc layout.Document, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, doc, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// artifactTTL resolves the cache lifetime for rendered artifacts.
func (r *Runner) artifactTTL() time.Duration {
	if r.TTL != 0 {
		return r.TTL
	}
	return cache.TTLArtifact
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
