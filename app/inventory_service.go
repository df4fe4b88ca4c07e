package app

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"showroom/adapters/excel"
	"showroom/domain/vehicle"
	"showroom/internal"
	"showroom/internal/errors"
	"showroom/ports"
)

// InventoryService loads the inventory spreadsheet once and serves the parsed records
// for the lifetime of the process. Only a successful load is cached; a failure leaves the
// cache empty so the next caller tries again.
type InventoryService struct {
	source ports.Source
	reader *excel.DataReader
	schema vehicle.Schema
	logger *internal.Logger

	group singleflight.Group

	mu       sync.RWMutex
	records  []vehicle.Record
	loaded   bool
	loadedAt time.Time
}

// NewInventoryService wires a source and reader together
func NewInventoryService(source ports.Source, reader *excel.DataReader, schema vehicle.Schema, logger *internal.Logger) *InventoryService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &InventoryService{
		source: source,
		reader: reader,
		schema: schema,
		logger: logger,
	}
}

var _ ports.InventoryReader = (*InventoryService)(nil)

// Schema implements ports.InventoryReader
func (s *InventoryService) Schema() vehicle.Schema {
	return s.schema
}

// Records implements ports.InventoryReader
func (s *InventoryService) Records(ctx context.Context) ([]vehicle.Record, error) {
	if records, ok := s.cached(); ok {
		return records, nil
	}

	// Concurrent first callers share one fetch. The load runs detached from any single
	// request's cancellation so one aborted request does not fail the others.
	ch := s.group.DoChan("inventory", func() (interface{}, error) {
		if records, ok := s.cached(); ok {
			return records, nil
		}
		return s.load(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, errors.LoadFailure("inventory load cancelled", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]vehicle.Record), nil
	}
}

// Find implements ports.InventoryReader
func (s *InventoryService) Find(ctx context.Context, id string) (vehicle.Record, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return vehicle.Record{}, err
	}
	record, ok := vehicle.Find(records, s.schema, id)
	if !ok {
		return vehicle.Record{}, errors.NotFound("vehicle " + id)
	}
	return record, nil
}

// LoadedAt reports when the cache was filled; zero before the first successful load.
func (s *InventoryService) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

func (s *InventoryService) cached() ([]vehicle.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records, s.loaded
}

func (s *InventoryService) load(ctx context.Context) ([]vehicle.Record, error) {
	startTime := time.Now()
	location := s.source.Location()
	s.logger.Info("[InventoryService] loading inventory from %s", location)

	data, err := s.source.Fetch(ctx)
	if err != nil {
		s.logger.Error("[InventoryService] fetch failed for %s: %v", location, err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.LoadFailure("failed to fetch inventory", err)
	}

	parsed, err := s.reader.ReadBytes(data, location)
	if err != nil {
		s.logger.Error("[InventoryService] parse failed for %s: %v", location, err)
		return nil, errors.LoadFailure("failed to parse inventory", err)
	}

	if drift := vehicle.DetectDrift(s.schema, parsed.Headers); drift.HasDrift() {
		s.logger.Warn("[InventoryService] column drift in sheet %q: %s", parsed.SheetName, drift.Summary())
	}

	records := make([]vehicle.Record, 0, len(parsed.Rows))
	for _, row := range parsed.Rows {
		records = append(records, vehicle.NewRecord(row, s.schema))
	}

	s.mu.Lock()
	s.records = records
	s.loaded = true
	s.loadedAt = time.Now()
	s.mu.Unlock()

	s.logger.Info("[InventoryService] cached %d vehicles from sheet %q in %s",
		len(records), parsed.SheetName, time.Since(startTime))
	return records, nil
}
