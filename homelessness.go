//go:generate gomarkdoc -e -f github -o README.md . --repository.url https://github.com/bayesimpact/sf-homelessness --repository.default-branch master --repository.path /

// Package homelessness links client records across the two case management
// systems used by San Francisco homelessness services: HMIS and Connecting
// Point. Each system assigns its own identifiers and neither sees the other's
// records, so a person served by both appears as unrelated rows. This package
// loads both extracts, joins them with duplicate and match evidence, and
// assigns consistent person and family identifiers across both tables.
//
// The entry point is Clean, which runs the full pipeline: load the source
// CSVs, resolve identities, compute child status, and derive family
// characteristics. The returned tables carry the original raw columns
// alongside the assigned labels.
//
// Example usage:
//
//	result, err := homelessness.Clean(ctx,
//	    homelessness.WithDataDir("/var/data/linkage"),
//	    homelessness.WithEncoding("windows-1252"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Summary())
//
// Identifiers are only stable within a run: the same person can receive a
// different label when the inputs change. Downstream joins must happen
// against the tables of a single run.
package homelessness

import (
	"context"

	"github.com/bayesimpact/sf-homelessness/internal/loader"
	"github.com/bayesimpact/sf-homelessness/pkg/linkage"
	"github.com/bayesimpact/sf-homelessness/pkg/logging"
)

// Clean runs the full linkage pipeline and returns the labeled tables.
//
// The pipeline follows a fixed order: load and join the source extracts,
// resolve person and family identities from the evidence graph, compute
// per-row child status, then derive household and family characteristics
// from the assigned labels.
func Clean(ctx context.Context, opts ...Option) (*linkage.Result, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	if o.logger != nil {
		ctx = logging.WithLogger(ctx, o.logger)
	}
	log := logging.Ctx(ctx)

	enc, err := loader.ParseEncoding(o.encoding)
	if err != nil {
		return nil, err
	}

	log.Info().Str("data_dir", o.dataDir).Msg("loading source extracts")
	in, err := loader.New(o.dataDir, loader.WithEncoding(enc)).Load(ctx)
	if err != nil {
		return nil, err
	}

	linkOpts := []linkage.Option{}
	if o.workers > 0 {
		linkOpts = append(linkOpts, linkage.WithWorkers(o.workers))
	}
	if o.runID != "" {
		linkOpts = append(linkOpts, linkage.WithRunID(o.runID))
	}
	linker, err := linkage.New(linkOpts...)
	if err != nil {
		return nil, err
	}

	result, err := linker.Resolve(ctx, in)
	if err != nil {
		return nil, err
	}

	result.HMIS.ComputeChildStatus()
	result.CP.ComputeChildStatus()
	result.HMIS.ComputeFamilyCharacteristics()
	result.CP.ComputeFamilyCharacteristics()

	log.Info().
		Str("run_id", result.Metadata.RunID).
		Int("people", result.Persons()).
		Int("families", result.Families()).
		Msg("pipeline complete")

	return result, nil
}
