package app

import (
	"context"
	"fmt"

	"github.com/sitewright/sitewright/internal/config"
	"github.com/sitewright/sitewright/internal/diagnostics"
	"github.com/sitewright/sitewright/internal/domain"
	"github.com/sitewright/sitewright/internal/output"
	"github.com/sitewright/sitewright/internal/processor"
	"github.com/sitewright/sitewright/internal/queue"
	"github.com/sitewright/sitewright/internal/registry"
	"github.com/sitewright/sitewright/internal/utils"
)

// Orchestrator wires the registry, queue, writer and processor together
// and runs batch passes at build milestones
type Orchestrator struct {
	config   *config.Config
	logger   *utils.Logger
	registry *registry.InMemory
	queue    domain.Queue
	writer   *output.Writer
	proc     *processor.Processor
}

// OrchestratorOptions contains options for creating an orchestrator
type OrchestratorOptions struct {
	Config       *config.Config
	Verbose      bool
	SnapshotPath string
	// OnManifest, if set, is forwarded to the processor for progress
	// reporting
	OnManifest func()
}

// NewOrchestrator creates a new orchestrator with the given configuration
func NewOrchestrator(opts OrchestratorOptions) (*Orchestrator, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logLevel := cfg.Logging.Level
	if opts.Verbose {
		logLevel = "debug"
	}

	logger := utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  cfg.Logging.Format,
		Verbose: opts.Verbose,
	})

	reg := registry.NewInMemory()

	var q domain.Queue
	if cfg.Queue.InMemory {
		q = queue.NewMemory()
	} else {
		bq, err := queue.NewBadgerQueue(queue.BadgerOptions{
			Directory: utils.ExpandPath(cfg.Queue.Directory),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open manifest queue: %w", err)
		}
		q = bq
	}

	writer := output.NewWriter(output.WriterOptions{
		CacheRoot: utils.ExpandPath(cfg.Cache.Root),
	})

	o := &Orchestrator{
		config:   cfg,
		logger:   logger,
		registry: reg,
		queue:    q,
		writer:   writer,
		proc: processor.New(processor.Options{
			Registry:   reg,
			Queue:      q,
			Writer:     writer,
			Reporter:   diagnostics.NewReporter(logger),
			Logger:     logger,
			Workers:    cfg.Concurrency.Workers,
			OnManifest: opts.OnManifest,
		}),
	}

	if opts.SnapshotPath != "" {
		if err := o.loadSnapshot(opts.SnapshotPath); err != nil {
			_ = q.Close()
			return nil, err
		}
	}

	return o, nil
}

// loadSnapshot populates the registry and queue from an exported site
// graph snapshot
func (o *Orchestrator) loadSnapshot(path string) error {
	snap, err := registry.NewLoader().Load(path)
	if err != nil {
		return fmt.Errorf("failed to load site snapshot: %w", err)
	}

	snap.Apply(o.registry)

	for _, m := range snap.Pending {
		if err := o.queue.Enqueue(m); err != nil {
			return fmt.Errorf("failed to enqueue pending manifest: %w", err)
		}
	}

	o.logger.Debug().
		Str("snapshot", path).
		Int("nodes", o.registry.NodeCount()).
		Int("pages", o.registry.PageCount()).
		Int("pending", len(snap.Pending)).
		Msg("Site snapshot loaded")

	return nil
}

// Registry returns the orchestrator's registry for the data layer to mutate
func (o *Orchestrator) Registry() *registry.InMemory {
	return o.registry
}

// Queue returns the pending manifest queue for plugins to enqueue into
func (o *Orchestrator) Queue() domain.Queue {
	return o.queue
}

// PendingCount returns the number of manifests currently pending
func (o *Orchestrator) PendingCount() (int, error) {
	pending, err := o.queue.SnapshotPending()
	if err != nil {
		return 0, err
	}
	return len(pending), nil
}

// RunBatch executes one batch pass over the pending queue
func (o *Orchestrator) RunBatch(ctx context.Context) (processor.Summary, error) {
	return o.proc.Run(ctx)
}

// Close releases orchestrator resources
func (o *Orchestrator) Close() error {
	return o.queue.Close()
}
