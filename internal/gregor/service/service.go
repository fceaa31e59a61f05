// ============================================================================
// eiya - Pattern Based Date Engine
// ============================================================================
//
// Package:     service
// Description: Gregor date service: request-level operations over timex
//              with locale resolution, configured defaults and metrics
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package service

import (
	"context"
	"strings"
	"time"

	"github.com/msto63/eiya/foundation/core/config"
	eiyaerror "github.com/msto63/eiya/foundation/core/error"
	"github.com/msto63/eiya/foundation/core/i18n"
	"github.com/msto63/eiya/foundation/utils/timex"
	"github.com/msto63/eiya/pkg/core/health"
	"github.com/msto63/eiya/pkg/core/logging"
	"github.com/msto63/eiya/pkg/core/version"
)

// ShiftRequest moves an instant by an amount of a precision. Nil policy
// fields fall back to the configured arithmetic defaults.
type ShiftRequest struct {
	Time      time.Time
	Amount    int
	Precision string
	Overstep  *bool
	End       *bool
}

// CompareOptions select how two instants are compared. Empty fields fall
// back to the configured comparison defaults.
type CompareOptions struct {
	Precision string
	Easy      *bool
	Self      bool
	Boundary  string
}

// CalendarInfo describes one month
type CalendarInfo struct {
	Year        int
	Month       int // 0-based
	MonthName   string
	DaysInMonth int
	LeapYear    bool
	// FirstWeekday is the weekday of the 1st, 0 = Sunday
	FirstWeekday int
	Weekdays     []string
	Locale       string
}

// Service is the Gregor date service
type Service struct {
	cfg      *config.Config
	registry *i18n.Registry
	parser   *timex.Parser
	cache    *timex.Cache
	clock    timex.Clock
	location *time.Location
	logger   *logging.Logger
	health   *health.Registry
}

// Config holds service configuration
type Config struct {
	// Config supplies defaults; nil means config.Default()
	Config *config.Config
	// Registry supplies locale tables; nil builds one from Config.Format
	Registry *i18n.Registry
	Clock    timex.Clock
	Location *time.Location
	Logger   *logging.Logger
}

// NewService creates a new Gregor service
func NewService(cfg Config) (*Service, error) {
	if cfg.Config == nil {
		cfg.Config = config.Default()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.New("gregor")
	}
	if cfg.Clock == nil {
		cfg.Clock = timex.SystemClock{}
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}

	registry := cfg.Registry
	if registry == nil {
		var err error
		registry, err = i18n.NewRegistry(cfg.Config.Format.DefaultLocale, cfg.Logger.Logger)
		if err != nil {
			return nil, eiyaerror.Wrap(err, "failed to create locale registry").
				WithCode(eiyaerror.CodeServiceInitialization).
				WithOperation("service.NewService")
		}
		if dir := cfg.Config.Format.LocalesDir; dir != "" {
			n, err := registry.LoadDir(dir)
			if err != nil {
				return nil, eiyaerror.Wrap(err, "failed to load locales").
					WithCode(eiyaerror.CodeServiceInitialization).
					WithOperation("service.NewService").
					WithDetail("dir", dir)
			}
			cfg.Logger.Info("Locales loaded", "dir", dir, "count", n)
		}
	}

	cache := timex.NewCache(cfg.Config.Cache.MaxItems, cfg.Config.Cache.TTL.Duration)
	s := &Service{
		cfg:      cfg.Config,
		registry: registry,
		cache:    cache,
		clock:    cfg.Clock,
		location: cfg.Location,
		logger:   cfg.Logger,
		parser: timex.NewParser(
			timex.WithClock(cfg.Clock),
			timex.WithCache(cache),
			timex.WithLocation(cfg.Location),
		),
	}
	s.health = s.newHealthRegistry()
	return s, nil
}

// Registry returns the locale registry
func (s *Service) Registry() *i18n.Registry {
	return s.registry
}

// Health returns the health registry of the service
func (s *Service) Health() *health.Registry {
	return s.health
}

// CacheStats returns statistics of the compiled-pattern cache
func (s *Service) CacheStats() timex.CacheStats {
	return s.cache.Stats()
}

// Now returns the current instant of the service clock
func (s *Service) Now() time.Time {
	return s.clock.Now().In(s.location)
}

// Table resolves a locale preference list to a table. An empty list
// selects the configured default locale.
func (s *Service) Table(locales ...string) (i18n.Table, string) {
	prefs := locales[:0:0]
	for _, l := range locales {
		if strings.TrimSpace(l) != "" {
			prefs = append(prefs, l)
		}
	}
	return s.registry.Match(prefs...)
}

// Format renders t with pattern; an empty pattern uses the configured default
func (s *Service) Format(ctx context.Context, t time.Time, pattern, locale string) (text string, err error) {
	defer s.observe("format", time.Now(), &err)

	table, _ := s.Table(locale)
	return timex.Format(s.local(t), s.pattern(pattern), table)
}

// Parse reads text with pattern; an empty pattern uses the configured default
func (s *Service) Parse(ctx context.Context, text, pattern, locale string) (t time.Time, err error) {
	defer s.observe("parse", time.Now(), &err)
	defer s.updateCacheGauge()

	table, _ := s.Table(locale)
	return s.parser.Parse(text, s.pattern(pattern), table)
}

// Add shifts req.Time forward by req.Amount units
func (s *Service) Add(ctx context.Context, req ShiftRequest) (t time.Time, err error) {
	defer s.observe("add", time.Now(), &err)

	opts, err := s.shiftOptions(req)
	if err != nil {
		return time.Time{}, err
	}
	return timex.Add(s.local(req.Time), req.Amount, opts...)
}

// Subtract shifts req.Time backward by req.Amount units
func (s *Service) Subtract(ctx context.Context, req ShiftRequest) (t time.Time, err error) {
	defer s.observe("subtract", time.Now(), &err)

	opts, err := s.shiftOptions(req)
	if err != nil {
		return time.Time{}, err
	}
	return timex.Subtract(s.local(req.Time), req.Amount, opts...)
}

// StartOf truncates t to the start of its period
func (s *Service) StartOf(ctx context.Context, t time.Time, precision string) (out time.Time, err error) {
	defer s.observe("start_of", time.Now(), &err)

	p, err := timex.ParsePrecision(precision)
	if err != nil {
		return time.Time{}, err
	}
	return timex.StartOf(s.local(t), p)
}

// EndOf moves t to the last millisecond of its period
func (s *Service) EndOf(ctx context.Context, t time.Time, precision string) (out time.Time, err error) {
	defer s.observe("end_of", time.Now(), &err)

	p, err := timex.ParsePrecision(precision)
	if err != nil {
		return time.Time{}, err
	}
	return timex.EndOf(s.local(t), p)
}

// Compare returns -1, 0 or 1 as a is before, the same as or after b
func (s *Service) Compare(ctx context.Context, a, b time.Time, opts CompareOptions) (result int, err error) {
	defer s.observe("compare", time.Now(), &err)

	c, err := s.comparer(opts)
	if err != nil {
		return 0, err
	}
	return c.Compare(s.local(a), s.local(b)), nil
}

// IsSame reports whether a and b agree at the requested precision
func (s *Service) IsSame(ctx context.Context, a, b time.Time, opts CompareOptions) (same bool, err error) {
	defer s.observe("is_same", time.Now(), &err)

	c, err := s.comparer(opts)
	if err != nil {
		return false, err
	}
	return c.IsSame(s.local(a), s.local(b)), nil
}

// IsAfter reports whether a is after b; Self accepts equal values
func (s *Service) IsAfter(ctx context.Context, a, b time.Time, opts CompareOptions) (after bool, err error) {
	defer s.observe("is_after", time.Now(), &err)

	c, err := s.comparer(opts)
	if err != nil {
		return false, err
	}
	return c.IsAfter(s.local(a), s.local(b)), nil
}

// IsBefore reports whether a is before b; Self accepts equal values
func (s *Service) IsBefore(ctx context.Context, a, b time.Time, opts CompareOptions) (before bool, err error) {
	defer s.observe("is_before", time.Now(), &err)

	c, err := s.comparer(opts)
	if err != nil {
		return false, err
	}
	return c.IsBefore(s.local(a), s.local(b)), nil
}

// IsBetween reports whether t lies between start and end under the
// boundary of opts
func (s *Service) IsBetween(ctx context.Context, t, start, end time.Time, opts CompareOptions) (between bool, err error) {
	defer s.observe("is_between", time.Now(), &err)

	c, err := s.comparer(opts)
	if err != nil {
		return false, err
	}
	return c.IsBetween(s.local(t), s.local(start), s.local(end)), nil
}

// Max returns the latest instant at the requested precision
func (s *Service) Max(ctx context.Context, times []time.Time, opts CompareOptions) (t time.Time, err error) {
	defer s.observe("max", time.Now(), &err)

	c, err := s.comparer(opts)
	if err != nil {
		return time.Time{}, err
	}
	return c.Max(s.locals(times)...)
}

// Min returns the earliest instant at the requested precision
func (s *Service) Min(ctx context.Context, times []time.Time, opts CompareOptions) (t time.Time, err error) {
	defer s.observe("min", time.Now(), &err)

	c, err := s.comparer(opts)
	if err != nil {
		return time.Time{}, err
	}
	return c.Min(s.locals(times)...)
}

// Calendar describes the month month0 (0-based) of year
func (s *Service) Calendar(ctx context.Context, year, month0 int, locale string) (info *CalendarInfo, err error) {
	defer s.observe("calendar", time.Now(), &err)

	if month0 < 0 || month0 > 11 {
		return nil, eiyaerror.Newf("month %d out of range", month0).
			WithCode(eiyaerror.CodeInvalidInput).
			WithOperation("service.Calendar").
			WithDetail("month", month0)
	}

	table, tag := s.Table(locale)
	first := time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, s.location)

	info = &CalendarInfo{
		Year:         year,
		Month:        month0,
		DaysInMonth:  timex.DaysInMonth(year, month0),
		LeapYear:     timex.IsLeapYear(year),
		FirstWeekday: int(first.Weekday()),
		Locale:       tag,
	}
	if names, ok := table.Lookup("MMMM"); ok {
		info.MonthName = names[month0]
	}
	if names, ok := table.Lookup("EEE"); ok {
		info.Weekdays = append([]string(nil), names...)
	}
	return info, nil
}

// local moves t into the service location; every operation reads
// calendar fields in that frame
func (s *Service) local(t time.Time) time.Time {
	return t.In(s.location)
}

func (s *Service) locals(times []time.Time) []time.Time {
	out := make([]time.Time, len(times))
	for i, t := range times {
		out[i] = s.local(t)
	}
	return out
}

func (s *Service) pattern(p string) string {
	if p == "" {
		return s.cfg.Format.DefaultPattern
	}
	return p
}

func (s *Service) shiftOptions(req ShiftRequest) ([]timex.Option, error) {
	p, err := timex.ParsePrecision(req.Precision)
	if err != nil {
		return nil, err
	}
	overstep := s.cfg.Arithmetic.Overstep
	if req.Overstep != nil {
		overstep = *req.Overstep
	}
	end := s.cfg.Arithmetic.StickToMonthEnd()
	if req.End != nil {
		end = *req.End
	}
	return []timex.Option{
		timex.WithPrecision(p),
		timex.WithOverstep(overstep),
		timex.WithEnd(end),
	}, nil
}

func (s *Service) comparer(opts CompareOptions) (*timex.Comparer, error) {
	precision := opts.Precision
	if precision == "" {
		precision = s.cfg.Compare.Precision
	}
	p, err := timex.ParsePrecision(precision)
	if err != nil {
		return nil, err
	}
	easy := s.cfg.Compare.Easy
	if opts.Easy != nil {
		easy = *opts.Easy
	}
	boundary := opts.Boundary
	if boundary == "" {
		boundary = s.cfg.Compare.Boundary
	}
	return timex.NewComparer(
		timex.WithPrecision(p),
		timex.WithEasy(easy),
		timex.WithSelf(opts.Self),
		timex.WithBoundary(boundary),
		timex.InLocation(s.location),
	)
}

// observe records one operation; err points at the named result
func (s *Service) observe(op string, start time.Time, err *error) {
	requestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	outcome := outcomeOK
	if *err != nil {
		outcome = strings.ToLower(eiyaerror.GetCode(*err).String())
		s.logger.Debug("Operation failed", "operation", op, "code", outcome, "error", (*err).Error())
	}
	requestsTotal.WithLabelValues(op, outcome).Inc()
}

func (s *Service) updateCacheGauge() {
	patternCacheSize.Set(float64(s.cache.Stats().Size))
}

// probeInstant is formatted and parsed back by the engine health check
var probeInstant = time.Date(2020, time.February, 29, 23, 59, 58, 999e6, time.UTC)

func (s *Service) newHealthRegistry() *health.Registry {
	r := health.NewRegistry("gregor", version.Gregor)

	r.Register(health.ProbeCheck("engine", func(ctx context.Context) error {
		const pattern = "yyyy/MM/dd HH:mm:ss SSS EEE"
		table := i18n.Default()
		text, err := timex.Format(probeInstant, pattern, table)
		if err != nil {
			return err
		}
		back, err := timex.NewParser(timex.WithLocation(time.UTC), timex.WithCache(nil)).Parse(text, pattern, table)
		if err != nil {
			return err
		}
		if !back.Equal(probeInstant) {
			return eiyaerror.Newf("round trip of %s returned %s", text, back.Format(time.RFC3339Nano)).
				WithCode(eiyaerror.CodeInternal)
		}
		return nil
	}))

	r.Register(health.ProbeCheck("locales", func(ctx context.Context) error {
		if _, ok := s.registry.Lookup(s.registry.DefaultLocale()); !ok {
			return eiyaerror.Newf("default locale %s missing", s.registry.DefaultLocale()).
				WithCode(eiyaerror.CodeNotFound)
		}
		return nil
	}))

	maxItems := float64(s.cfg.Cache.MaxItems)
	r.Register(health.ThresholdCheck("pattern_cache_headroom", 0.1, func() float64 {
		if maxItems <= 0 {
			return 1
		}
		return 1 - float64(s.cache.Stats().Size)/maxItems
	}))

	return r
}
