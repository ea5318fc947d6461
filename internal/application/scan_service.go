package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/uamonitor/account-monitor/internal/domain"
	"github.com/uamonitor/account-monitor/internal/ports"
)

// DefaultScanPageSize bounds one scan call when the caller passes no size
const DefaultScanPageSize = 100

// ScanService walks the whole account population one page at a time,
// evaluating each account through the decision policy. The cursor is the
// last processed identifier and lives with the caller, so any number of
// page calls can be spread over separate invocations without server-side
// state.
type ScanService struct {
	store   ports.AccountStore
	monitor *MonitorService
	logger  *slog.Logger
}

// NewScanService creates the batch scan coordinator
func NewScanService(store ports.AccountStore, monitor *MonitorService, logger *slog.Logger) *ScanService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScanService{store: store, monitor: monitor, logger: logger}
}

// RunScanPage evaluates the next page of accounts after the cursor.
//
// Each account is evaluated with persistence on and no forced recheck, so
// already-classified accounts ride the cheap paths and a rerun over a
// stable population is near free. One failing account does not abort the
// page: it is counted, logged, and the scan moves on, with the cursor still
// advancing past it. Done is reported when the store returns a short page.
func (s *ScanService) RunScanPage(ctx context.Context, cursor domain.ScanCursor, pageSize int) (domain.ScanPageResult, error) {
	if pageSize <= 0 {
		pageSize = DefaultScanPageSize
	}

	result := domain.ScanPageResult{
		RunID:      uuid.New(),
		NextCursor: cursor,
	}

	ids, err := s.store.ListIDsAfter(ctx, int64(cursor), pageSize)
	if err != nil {
		return result, fmt.Errorf("listing accounts after %d: %w", cursor, err)
	}
	if len(ids) == 0 {
		result.Done = true
		return result, nil
	}

	// One configuration resolve covers the whole page; the spam phrase set
	// and the configurable patterns compile once, not per account
	cfg, err := s.monitor.DetectorConfig()
	if err != nil {
		return result, fmt.Errorf("resolving detector configuration: %w", err)
	}

	opts := EvaluateOptions{Persist: true, Config: cfg}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			// NextCursor already points at the last fully applied account,
			// so the caller can resume from here
			return result, err
		}

		verdict, err := s.monitor.Evaluate(ctx, id, opts)
		result.Processed++
		result.NextCursor = domain.ScanCursor(id)
		if err != nil {
			if errors.Is(err, ports.ErrNotFound) {
				s.logger.Warn("account vanished during scan", "run_id", result.RunID, "account_id", id)
			} else {
				s.logger.Error("scan evaluation failed", "run_id", result.RunID, "account_id", id, "err", err)
			}
			result.Failed++
			continue
		}
		if verdict.IsFlagged() {
			result.Flagged++
		}
	}

	result.Done = len(ids) < pageSize
	s.logger.Info("scan page complete",
		"run_id", result.RunID,
		"processed", result.Processed,
		"flagged", result.Flagged,
		"failed", result.Failed,
		"next_cursor", result.NextCursor,
		"done", result.Done,
	)
	return result, nil
}
