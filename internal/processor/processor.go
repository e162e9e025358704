// Package processor drains the pending manifest queue in one batch pass:
// snapshot, resolve and diagnose every entry, write artifacts for resolved
// ones, emit a single summary, then commit the queue clear.
package processor

import (
	"context"
	"fmt"

	"github.com/sitewright/sitewright/internal/diagnostics"
	"github.com/sitewright/sitewright/internal/domain"
	"github.com/sitewright/sitewright/internal/resolver"
	"github.com/sitewright/sitewright/internal/utils"
)

// DefaultWorkers is the default number of concurrent manifest workers
const DefaultWorkers = 5

// Summary aggregates the outcome of one batch pass
type Summary struct {
	Written    int
	Unresolved int
}

// Total returns the number of manifests the pass covered
func (s Summary) Total() int {
	return s.Written + s.Unresolved
}

// Processor orchestrates one batch pass over the pending manifest queue
type Processor struct {
	registry   domain.Registry
	queue      domain.Queue
	writer     domain.ArtifactWriter
	reporter   *diagnostics.Reporter
	logger     *utils.Logger
	workers    int
	onManifest func()
}

// Options contains options for creating a processor
type Options struct {
	Registry domain.Registry
	Queue    domain.Queue
	Writer   domain.ArtifactWriter
	Reporter *diagnostics.Reporter
	Logger   *utils.Logger
	Workers  int
	// OnManifest, if set, is called once per processed manifest. It may be
	// called from concurrent workers.
	OnManifest func()
}

// New creates a new batch processor
func New(opts Options) *Processor {
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewDefaultLogger()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	return &Processor{
		registry:   opts.Registry,
		queue:      opts.Queue,
		writer:     opts.Writer,
		reporter:   opts.Reporter,
		logger:     logger.WithComponent("processor"),
		workers:    workers,
		onManifest: opts.OnManifest,
	}
}

// Run executes one batch pass. An empty queue is a no-op: no summary, no
// clear. Data-shaped problems (missing nodes, unresolvable mappings, write
// failures) are diagnosed and folded into the summary; the only error that
// escapes is a broken resolver/diagnostics contract, in which case the
// queue is left pending.
func (p *Processor) Run(ctx context.Context) (Summary, error) {
	pending, err := p.queue.SnapshotPending()
	if err != nil {
		return Summary{}, fmt.Errorf("failed to snapshot pending manifests: %w", err)
	}
	if len(pending) == 0 {
		p.logger.Debug().Msg("No pending node manifests")
		return Summary{}, nil
	}

	p.logger.Debug().
		Int("pending", len(pending)).
		Msg("Processing pending node manifests")

	// Per-manifest work is read-only against the registry and targets
	// distinct output paths, so entries resolve and write concurrently.
	// The summary is folded from per-item results afterwards.
	written, errs := utils.ParallelMap(ctx, pending, p.workers, p.processOne)

	if err := utils.FirstError(errs); err != nil {
		return Summary{}, err
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	var summary Summary
	for _, ok := range written {
		if ok {
			summary.Written++
		} else {
			summary.Unresolved++
		}
	}

	p.reporter.Summary(summary.Written, summary.Unresolved)

	// The whole snapshot clears regardless of per-item outcomes; there is
	// no per-item retry.
	if err := p.queue.ClearProcessed(pending); err != nil {
		return summary, fmt.Errorf("failed to clear processed manifests: %w", err)
	}

	return summary, nil
}

// processOne handles a single pending manifest and reports whether an
// artifact was written. Every failure mode except a broken match-kind
// contract is diagnosed here and contained to this manifest.
func (p *Processor) processOne(ctx context.Context, m domain.PendingManifest) (written bool, err error) {
	defer func() {
		if p.onManifest != nil {
			p.onManifest()
		}
		if r := recover(); r != nil {
			p.logger.Error().
				Str("plugin", m.PluginName).
				Str("manifest_id", m.ManifestID).
				Interface("panic", r).
				Msg("Recovered from panic while processing a node manifest")
			written = false
			err = nil
		}
	}()

	node, ok := p.registry.GetNode(m.NodeID)
	if !ok {
		p.reporter.NodeNotFound(m)
		return false, nil
	}

	res := resolver.Resolve(m.NodeID, p.registry)

	pagePath := ""
	if res.Page != nil {
		pagePath = res.Page.Path
	}

	logID, err := p.reporter.Evaluate(m, pagePath, res.Kind)
	if err != nil {
		// Broken resolver/diagnostics contract; halts the batch.
		return false, err
	}

	if !res.Resolved() {
		return false, nil
	}

	artifact := domain.Artifact{Node: node, Page: *res.Page}
	if err := p.writer.Write(ctx, m.PluginName, m.ManifestID, artifact); err != nil {
		p.reporter.WriteFailure(m, p.writer.Path(m.PluginName, m.ManifestID), err)
		return false, nil
	}

	p.logger.Debug().
		Str("plugin", m.PluginName).
		Str("manifest_id", m.ManifestID).
		Str("page_path", pagePath).
		Str("log_id", string(logID)).
		Msg("Node manifest written")

	return true, nil
}
