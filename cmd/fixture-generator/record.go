package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"fixture-generator/internal/common"
	"fixture-generator/internal/fixture"
	"fixture-generator/internal/ledger"
)

// recorder writes generation results to the ledger. The zero value records nothing.
type recorder struct {
	ledger *ledger.Ledger
	runID  string
	logger *zap.Logger
}

func (a *app) openRecorder(ctx context.Context, command, specFile string, sample fixture.Sample) (*recorder, error) {
	if a.cfg.LedgerPath == "" {
		return &recorder{}, nil
	}

	l, err := ledger.Open(a.cfg.LedgerPath)
	if err != nil {
		return nil, err
	}

	id, err := l.BeginRun(ctx, ledger.Run{
		ID:         a.runID,
		Command:    command,
		SpecFile:   specFile,
		SampleFile: sample.Path,
		Format:     sample.Document.Format().String(),
		Mode:       a.cfg.Mode().String(),
	})
	if err != nil {
		_ = l.Close()

		return nil, err
	}

	return &recorder{ledger: l, runID: id, logger: a.logger}, nil
}

func (r *recorder) record(ctx context.Context, res *fixture.Result) error {
	if r.ledger == nil || common.IsEmpty(res.Fixtures) {
		return nil
	}

	entries := make([]ledger.Entry, len(res.Fixtures))
	for i, f := range res.Fixtures {
		entries[i] = ledger.Entry{
			RunID:       r.runID,
			Requirement: res.Requirement.String(),
			Element:     f.Field.ElementName,
			FieldPath:   f.FieldPath,
			FileName:    f.Filename,
			Nodes:       f.Count,
		}
	}

	if err := r.ledger.Record(ctx, entries...); err != nil {
		return fmt.Errorf("recording %s fixtures: %w", res.Requirement, err)
	}

	return nil
}

func (r *recorder) finish(ctx context.Context) error {
	if r.ledger == nil {
		return nil
	}

	if err := r.ledger.FinishRun(ctx, r.runID); err != nil {
		return err
	}

	n, err := r.ledger.FixtureCount(ctx, r.runID)
	if err != nil {
		return err
	}

	r.logger.Info("run recorded", zap.Int("fixtures", n))

	return nil
}

func (r *recorder) close() {
	if r.ledger == nil {
		return
	}

	if err := r.ledger.Close(); err != nil {
		r.logger.Warn("closing ledger", zap.Error(err))
	}
}
