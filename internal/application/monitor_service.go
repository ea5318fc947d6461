package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/uamonitor/account-monitor/internal/domain"
	"github.com/uamonitor/account-monitor/internal/domain/detection"
	"github.com/uamonitor/account-monitor/internal/ports"
)

// MonitorService is the decision policy: it combines enabled detector
// outcomes into a persisted verdict for one account, short-circuiting
// already-classified accounts so re-evaluation is cheap unless forced.
type MonitorService struct {
	store    ports.AccountStore
	config   ports.ConfigStore
	sink     ports.NotificationSink
	registry *detection.Registry
	logger   *slog.Logger
}

// NewMonitorService creates the decision policy with dependency injection
func NewMonitorService(
	store ports.AccountStore,
	config ports.ConfigStore,
	sink ports.NotificationSink,
	registry *detection.Registry,
	logger *slog.Logger,
) *MonitorService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MonitorService{
		store:    store,
		config:   config,
		sink:     sink,
		registry: registry,
		logger:   logger,
	}
}

// EvaluateOptions controls one decision
type EvaluateOptions struct {
	// OnlyCheckExisting returns the prior classification without running
	// detectors; never-evaluated accounts come back as Unchecked. Used by
	// read-only paths that must not trigger DNS lookups as a side effect.
	OnlyCheckExisting bool

	// ForceRecheck re-runs every enabled detector regardless of the prior
	// verdict
	ForceRecheck bool

	// Persist writes the computed verdict back to storage
	Persist bool

	// Config is a pre-resolved detector configuration shared across a
	// batch. Nil resolves a fresh one for this call. Batch callers resolve
	// once per page; resolving per account recompiles the spam phrase set
	// and the configurable patterns every time.
	Config *detection.Config
}

// DetectorConfig resolves the effective detector configuration from the
// settings store
func (s *MonitorService) DetectorConfig() (*detection.Config, error) {
	return detection.ResolveConfig(s.config)
}

// Evaluate classifies one account.
//
// An already-cleared account is returned as-is unless a recheck is forced.
// An already-flagged account has its reasons intersected with the currently
// enabled rules without re-running detectors; reasons whose rule was
// disabled drop out, and an empty intersection clears the account.
// Detectors only run past those cheap paths.
func (s *MonitorService) Evaluate(ctx context.Context, accountID int64, opts EvaluateOptions) (domain.Verdict, error) {
	raw, present, err := s.store.GetMeta(ctx, accountID, domain.MetaKeySuspicious)
	if err != nil {
		return domain.Unchecked(), fmt.Errorf("reading prior verdict for account %d: %w", accountID, err)
	}
	prior, err := domain.DecodeVerdictMeta(raw, present)
	if err != nil {
		return domain.Unchecked(), err
	}

	recheck := opts.ForceRecheck || s.config.GetBool(ports.ConfigRecheckCleared, false)
	if !recheck && prior.State == domain.VerdictCleared {
		return prior, nil
	}

	enabled := s.enabledRules()

	if prior.IsFlagged() && !opts.ForceRecheck {
		active := intersectOrdered(prior.Reasons, enabled)
		if len(active) > 0 {
			return domain.Flagged(active), nil
		}
		return domain.Cleared(), nil
	}

	if opts.OnlyCheckExisting {
		return domain.Unchecked(), nil
	}

	cfg := opts.Config
	if cfg == nil {
		if cfg, err = detection.ResolveConfig(s.config); err != nil {
			return domain.Unchecked(), err
		}
	}

	account, err := s.store.Get(ctx, accountID)
	if err != nil {
		return domain.Unchecked(), err
	}

	triggered, err := s.runChecks(ctx, detection.AccountSubject(account), enabled, cfg)
	if err != nil {
		return domain.Unchecked(), err
	}

	verdict := domain.Flagged(triggered)
	if opts.Persist {
		if err := s.persistVerdict(ctx, accountID, verdict); err != nil {
			return domain.Unchecked(), err
		}
	}

	if verdict.IsFlagged() {
		s.notifyFlagged(ctx, account, verdict.Reasons)
	} else {
		s.sink.Emit(ctx, domain.NewEvent(domain.EventCleared, accountID))
	}
	return verdict, nil
}

// SetManualVerdict records an operator decision: clear the account, or flag
// it manually. Unchecked cannot be set by hand; the absence of a verdict is
// not an operator state.
func (s *MonitorService) SetManualVerdict(ctx context.Context, accountID int64, verdict domain.Verdict) error {
	if verdict.State == domain.VerdictUnchecked {
		return fmt.Errorf("cannot manually set an unchecked verdict for account %d", accountID)
	}
	return s.persistVerdict(ctx, accountID, verdict)
}

// ListRules returns the rule catalog in evaluation order
func (s *MonitorService) ListRules() []detection.RuleDefinition {
	return s.registry.List()
}

// ListRulesByCategory returns the catalog entries of one category, in
// evaluation order
func (s *MonitorService) ListRulesByCategory(category detection.Category) []detection.RuleDefinition {
	return s.registry.ListByCategory(category)
}

// CheckFields validates raw submitted field values against the enabled
// rules, without loading an account or persisting anything. Rules that
// declare input fields run only when at least one of them was submitted,
// so a form that collects no email is not failed by the email checks;
// rules with no declared fields always run. Returns the triggered rule
// keys in catalog order.
func (s *MonitorService) CheckFields(ctx context.Context, fields map[detection.FieldKind]string) ([]string, error) {
	subject := detection.MapSubject(fields)

	enabled := make([]detection.RuleDefinition, 0)
	for _, def := range s.enabledRules() {
		relevant := len(def.Fields) == 0
		for _, kind := range def.Fields {
			if _, ok := fields[kind]; ok {
				relevant = true
				break
			}
		}
		if relevant {
			enabled = append(enabled, def)
		}
	}

	cfg, err := detection.ResolveConfig(s.config)
	if err != nil {
		return nil, err
	}
	return s.runChecks(ctx, subject, enabled, cfg)
}

// enabledRules returns the catalog entries whose rule is currently enabled.
// The manual flag rule is always included so a persisted admin_flag reason
// survives intersection.
func (s *MonitorService) enabledRules() []detection.RuleDefinition {
	defs := s.registry.List()
	enabled := make([]detection.RuleDefinition, 0, len(defs))
	for _, def := range defs {
		if def.Key == "admin_flag" || s.config.GetBool(def.Key, def.EnabledByDefault) {
			enabled = append(enabled, def)
		}
	}
	return enabled
}

// runChecks evaluates the given rules in order and collects triggered keys.
// A rule with no check is a configuration error: logged and skipped, never
// fatal, so one bad rule cannot block classification of the rest. A check
// returning an error is a programming fault and propagates.
func (s *MonitorService) runChecks(ctx context.Context, subject detection.Subject, rules []detection.RuleDefinition, cfg *detection.Config) ([]string, error) {
	var triggered []string
	for _, def := range rules {
		if def.Check == nil {
			s.logger.Warn("rule has no detector and no custom callback, skipping", "rule", def.Key)
			continue
		}
		hit, err := def.Check.Evaluate(ctx, subject, cfg)
		if err != nil {
			return nil, fmt.Errorf("evaluating rule %s: %w", def.Key, err)
		}
		if hit {
			triggered = append(triggered, def.Key)
		}
	}
	return triggered, nil
}

func (s *MonitorService) persistVerdict(ctx context.Context, accountID int64, verdict domain.Verdict) error {
	value, err := verdict.EncodeMeta()
	if err != nil {
		return err
	}
	if err := s.store.SetMeta(ctx, accountID, domain.MetaKeySuspicious, value); err != nil {
		return fmt.Errorf("persisting verdict for account %d: %w", accountID, err)
	}
	return nil
}

// notifyFlagged emits the flagged event and applies the operator policies:
// optional logging, and the auto-delete follow-up (default off) bracketed
// by its own events so a sink consumer can audit the deletion.
func (s *MonitorService) notifyFlagged(ctx context.Context, account *domain.Account, reasons []string) {
	event := domain.NewEvent(domain.EventFlagged, account.ID)
	event.Reasons = reasons
	s.sink.Emit(ctx, event)

	if s.config.GetBool(ports.ConfigLogFlags, false) {
		s.logger.Info("account flagged",
			"account_id", account.ID,
			"username", account.Username,
			"reasons", reasons,
		)
	}

	if s.config.GetBool(ports.ConfigAutoDelete, false) {
		before := domain.NewEvent(domain.EventAutoDeleteBefore, account.ID)
		before.Reasons = reasons
		s.sink.Emit(ctx, before)

		if err := s.store.Delete(ctx, account.ID); err != nil {
			s.logger.Error("auto-delete failed", "account_id", account.ID, "err", err)
			return
		}

		after := domain.NewEvent(domain.EventAutoDeleteAfter, account.ID)
		after.Reasons = reasons
		s.sink.Emit(ctx, after)
	}
}

// intersectOrdered keeps the elements of prior whose rule appears in the
// enabled set, preserving prior order
func intersectOrdered(prior []string, enabled []detection.RuleDefinition) []string {
	keys := make(map[string]bool, len(enabled))
	for _, def := range enabled {
		keys[def.Key] = true
	}
	var out []string
	for _, reason := range prior {
		if keys[reason] {
			out = append(out, reason)
		}
	}
	return out
}
