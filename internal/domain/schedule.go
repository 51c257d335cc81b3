package domain

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// BreakRule represents a named break window inside a working day.
// The window is half-open [StartTime, EndTime) in the schedule's local time.
type BreakRule struct {
	ID        int64
	Name      string
	StartTime types.TimeString
	EndTime   types.TimeString
}

// RuleItem represents the recurring plan for one weekday.
// A schedule holds at most one rule item per weekday.
type RuleItem struct {
	ID           int64
	ScheduleID   int64
	Weekday      time.Weekday
	IsWorkingDay bool
	StartTime    types.TimeString
	EndTime      types.TimeString
	Breaks       []BreakRule

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Override replaces the weekday rule for a single calendar date.
// A working override defines its complete day plan: its own window and its
// own breaks; nothing is inherited from the weekday rule.
type Override struct {
	ID           int64
	ScheduleID   int64
	Date         time.Time // date only, midnight UTC
	Reason       string
	IsWorkingDay bool
	StartTime    *types.TimeString
	EndTime      *types.TimeString
	Breaks       []BreakRule

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Schedule is the declarative availability definition for a worker:
// recurring weekday rules plus date-specific overrides, interpreted in the
// schedule's named timezone. Rule items and overrides are mutated only
// through the aggregate's own methods, which revalidate the invariants.
type Schedule struct {
	ID         int64
	WorkerID   int64
	BusinessID int64
	Name       string
	Timezone   string
	IsDefault  bool
	StartDate  *time.Time
	EndDate    *time.Time
	RuleItems  []RuleItem
	Overrides  []Override

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BreakWindow is a resolved break inside a day plan.
type BreakWindow struct {
	Name      string
	StartTime types.TimeString
	EndTime   types.TimeString
}

// DayPlan is the effective plan for a single calendar date.
type DayPlan struct {
	IsWorkingDay bool
	StartTime    types.TimeString
	EndTime      types.TimeString
	Breaks       []BreakWindow
}

// ResolveDay determines the effective day plan for a calendar date.
// Dates outside the schedule's effective range resolve to a non-working day.
// Overrides take precedence over the weekday rule; a date with neither is a
// non-working day. The function is pure and total.
func (s *Schedule) ResolveDay(date time.Time) DayPlan {
	if !s.InEffectiveRange(date) {
		return DayPlan{IsWorkingDay: false}
	}

	if o := s.findOverride(date); o != nil {
		if !o.IsWorkingDay || o.StartTime == nil || o.EndTime == nil {
			return DayPlan{IsWorkingDay: false}
		}
		return DayPlan{
			IsWorkingDay: true,
			StartTime:    *o.StartTime,
			EndTime:      *o.EndTime,
			Breaks:       toBreakWindows(o.Breaks),
		}
	}

	if r := s.findRuleItem(date.Weekday()); r != nil && r.IsWorkingDay {
		return DayPlan{
			IsWorkingDay: true,
			StartTime:    r.StartTime,
			EndTime:      r.EndTime,
			Breaks:       toBreakWindows(r.Breaks),
		}
	}

	return DayPlan{IsWorkingDay: false}
}

// UpsertRuleItem adds or replaces the rule for item's weekday after
// revalidating the rule's own invariants.
func (s *Schedule) UpsertRuleItem(item RuleItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	for i := range s.RuleItems {
		if s.RuleItems[i].Weekday == item.Weekday {
			s.RuleItems[i] = item
			return nil
		}
	}

	s.RuleItems = append(s.RuleItems, item)
	return nil
}

// AddRuleItem adds a rule for a weekday that has none yet.
func (s *Schedule) AddRuleItem(item RuleItem) error {
	if s.findRuleItem(item.Weekday) != nil {
		return ErrDuplicateWeekday
	}
	return s.UpsertRuleItem(item)
}

// AddOverride adds a date-specific override. At most one override may exist
// per date.
func (s *Schedule) AddOverride(o Override) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if s.findOverride(o.Date) != nil {
		return ErrDuplicateOverride
	}
	s.Overrides = append(s.Overrides, o)
	return nil
}

// RemoveOverride removes the override for a date. Returns false when no
// override exists for that date.
func (s *Schedule) RemoveOverride(date time.Time) bool {
	for i := range s.Overrides {
		if sameDate(s.Overrides[i].Date, date) {
			s.Overrides = append(s.Overrides[:i], s.Overrides[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Schedule) findRuleItem(weekday time.Weekday) *RuleItem {
	for i := range s.RuleItems {
		if s.RuleItems[i].Weekday == weekday {
			return &s.RuleItems[i]
		}
	}
	return nil
}

func (s *Schedule) findOverride(date time.Time) *Override {
	for i := range s.Overrides {
		if sameDate(s.Overrides[i].Date, date) {
			return &s.Overrides[i]
		}
	}
	return nil
}

// Validate checks the rule's window and breaks: a working rule needs a
// non-empty half-open window, breaks must lie within it and must not
// mutually overlap.
func (r *RuleItem) Validate() error {
	if !r.IsWorkingDay {
		return nil
	}
	if err := validateWindow(r.StartTime, r.EndTime); err != nil {
		return err
	}
	return validateBreaks(r.Breaks, r.StartTime, r.EndTime)
}

// Validate checks the override's invariants: a working override requires
// both bounds with start < end, a non-working override carries no window.
func (o *Override) Validate() error {
	if !o.IsWorkingDay {
		if o.StartTime != nil || o.EndTime != nil {
			return ErrOverrideWindowForbidden
		}
		if len(o.Breaks) > 0 {
			return ErrOverrideWindowForbidden
		}
		return nil
	}

	if o.StartTime == nil || o.EndTime == nil {
		return ErrOverrideWindowRequired
	}
	if err := validateWindow(*o.StartTime, *o.EndTime); err != nil {
		return err
	}
	return validateBreaks(o.Breaks, *o.StartTime, *o.EndTime)
}

func validateWindow(start, end types.TimeString) error {
	if err := start.Validate(); err != nil {
		return err
	}
	if err := end.Validate(); err != nil {
		return err
	}
	if !start.IsBefore(end) {
		return ErrInvalidTimeWindow
	}
	return nil
}

func validateBreaks(breaks []BreakRule, windowStart, windowEnd types.TimeString) error {
	sorted := make([]BreakRule, len(breaks))
	copy(sorted, breaks)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartTime.IsBefore(sorted[j].StartTime)
	})

	for i, b := range sorted {
		if err := validateWindow(b.StartTime, b.EndTime); err != nil {
			return err
		}
		if b.StartTime.IsBefore(windowStart) || b.EndTime.IsAfter(windowEnd) {
			return ErrBreakOutsideWindow
		}
		if i > 0 && sorted[i-1].EndTime.IsAfter(b.StartTime) {
			return ErrBreaksOverlap
		}
	}
	return nil
}

func toBreakWindows(breaks []BreakRule) []BreakWindow {
	windows := make([]BreakWindow, 0, len(breaks))
	for _, b := range breaks {
		windows = append(windows, BreakWindow{
			Name:      b.Name,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
		})
	}
	sort.Slice(windows, func(i, j int) bool {
		return windows[i].StartTime.IsBefore(windows[j].StartTime)
	})
	return windows
}

// InEffectiveRange reports whether the calendar date falls inside the
// schedule's [StartDate, EndDate] range. A nil bound is open-ended.
// Comparison is date-granular, time components are ignored.
func (s *Schedule) InEffectiveRange(date time.Time) bool {
	if s.StartDate != nil && dateBefore(date, *s.StartDate) {
		return false
	}
	if s.EndDate != nil && dateBefore(*s.EndDate, date) {
		return false
	}
	return true
}

func dateBefore(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}

func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
