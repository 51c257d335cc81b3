package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

func workingRule(weekday time.Weekday, start, end types.TimeString, breaks ...BreakRule) RuleItem {
	return RuleItem{
		Weekday:      weekday,
		IsWorkingDay: true,
		StartTime:    start,
		EndTime:      end,
		Breaks:       breaks,
	}
}

func testSchedule(t *testing.T) *Schedule {
	t.Helper()
	s := &Schedule{
		ID:         1,
		WorkerID:   10,
		BusinessID: 20,
		Timezone:   "Europe/Moscow",
		IsDefault:  true,
	}
	require.NoError(t, s.UpsertRuleItem(workingRule(time.Monday, "09:00", "17:00")))
	return s
}

func TestSchedule_ResolveDay_WeekdayRule(t *testing.T) {
	s := testSchedule(t)

	monday := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	plan := s.ResolveDay(monday)
	require.True(t, plan.IsWorkingDay)
	assert.Equal(t, types.TimeString("09:00"), plan.StartTime)
	assert.Equal(t, types.TimeString("17:00"), plan.EndTime)

	// День без правила нерабочий
	tuesday := monday.AddDate(0, 0, 1)
	assert.False(t, s.ResolveDay(tuesday).IsWorkingDay)
}

func TestSchedule_ResolveDay_OverridePrecedence(t *testing.T) {
	s := testSchedule(t)
	monday := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

	start := types.TimeString("12:00")
	end := types.TimeString("15:00")
	require.NoError(t, s.AddOverride(Override{
		Date:         monday,
		Reason:       "сокращенный день",
		IsWorkingDay: true,
		StartTime:    &start,
		EndTime:      &end,
	}))

	// Исключение полностью замещает правило дня недели
	plan := s.ResolveDay(monday)
	require.True(t, plan.IsWorkingDay)
	assert.Equal(t, start, plan.StartTime)
	assert.Equal(t, end, plan.EndTime)
	assert.Empty(t, plan.Breaks)

	// Соседний понедельник живет по правилу
	nextMonday := monday.AddDate(0, 0, 7)
	assert.Equal(t, types.TimeString("09:00"), s.ResolveDay(nextMonday).StartTime)
}

func TestSchedule_ResolveDay_NonWorkingOverride(t *testing.T) {
	s := testSchedule(t)
	monday := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.AddOverride(Override{
		Date:         monday,
		Reason:       "праздник",
		IsWorkingDay: false,
	}))

	assert.False(t, s.ResolveDay(monday).IsWorkingDay)
}

func TestSchedule_ResolveDay_EffectiveRange(t *testing.T) {
	s := testSchedule(t)
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)
	s.StartDate = &start
	s.EndDate = &end

	// Понедельники внутри и вне диапазона действия расписания
	inside := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)
	beforeStart := time.Date(2025, 4, 28, 0, 0, 0, 0, time.UTC)
	afterEnd := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	assert.True(t, s.ResolveDay(inside).IsWorkingDay)
	assert.False(t, s.ResolveDay(beforeStart).IsWorkingDay)
	assert.False(t, s.ResolveDay(afterEnd).IsWorkingDay)

	// Граничные даты включительно
	assert.False(t, s.ResolveDay(start).IsWorkingDay) // четверг, правила нет
	lastMonday := time.Date(2025, 5, 26, 0, 0, 0, 0, time.UTC)
	assert.True(t, s.ResolveDay(lastMonday).IsWorkingDay)

	// Открытые границы не ограничивают
	s.StartDate = nil
	s.EndDate = nil
	assert.True(t, s.ResolveDay(afterEnd).IsWorkingDay)
}

func TestSchedule_UpsertRuleItem_ReplacesWeekday(t *testing.T) {
	s := testSchedule(t)

	require.NoError(t, s.UpsertRuleItem(workingRule(time.Monday, "10:00", "18:00")))
	require.Len(t, s.RuleItems, 1)
	assert.Equal(t, types.TimeString("10:00"), s.RuleItems[0].StartTime)

	// AddRuleItem отказывает по занятому дню недели
	err := s.AddRuleItem(workingRule(time.Monday, "08:00", "12:00"))
	assert.ErrorIs(t, err, ErrDuplicateWeekday)
}

func TestSchedule_AddOverride_DuplicateDate(t *testing.T) {
	s := testSchedule(t)
	monday := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.AddOverride(Override{Date: monday, IsWorkingDay: false}))
	err := s.AddOverride(Override{Date: monday, IsWorkingDay: false})
	assert.ErrorIs(t, err, ErrDuplicateOverride)

	// После удаления дата снова свободна
	assert.True(t, s.RemoveOverride(monday))
	assert.False(t, s.RemoveOverride(monday))
	require.NoError(t, s.AddOverride(Override{Date: monday, IsWorkingDay: false}))
}

func TestRuleItem_Validate(t *testing.T) {
	// Нерабочий день не требует окна
	assert.NoError(t, (&RuleItem{Weekday: time.Sunday}).Validate())

	// Пустое и вывернутое окно запрещены
	bad := workingRule(time.Monday, "17:00", "09:00")
	assert.ErrorIs(t, bad.Validate(), ErrInvalidTimeWindow)
	equal := workingRule(time.Monday, "09:00", "09:00")
	assert.ErrorIs(t, equal.Validate(), ErrInvalidTimeWindow)

	// Окно до конца суток допустимо
	tillMidnight := workingRule(time.Monday, "22:00", "24:00")
	assert.NoError(t, tillMidnight.Validate())
}

func TestRuleItem_Validate_Breaks(t *testing.T) {
	lunch := BreakRule{Name: "обед", StartTime: "12:00", EndTime: "13:00"}

	ok := workingRule(time.Monday, "09:00", "17:00", lunch)
	assert.NoError(t, ok.Validate())

	// Перерыв за пределами окна
	outside := workingRule(time.Monday, "09:00", "17:00",
		BreakRule{StartTime: "08:00", EndTime: "09:30"})
	assert.ErrorIs(t, outside.Validate(), ErrBreakOutsideWindow)

	// Пересекающиеся перерывы
	overlapping := workingRule(time.Monday, "09:00", "17:00",
		lunch, BreakRule{StartTime: "12:30", EndTime: "14:00"})
	assert.ErrorIs(t, overlapping.Validate(), ErrBreaksOverlap)

	// Смежные перерывы не считаются пересечением
	adjacent := workingRule(time.Monday, "09:00", "17:00",
		lunch, BreakRule{StartTime: "13:00", EndTime: "13:30"})
	assert.NoError(t, adjacent.Validate())
}

func TestOverride_Validate(t *testing.T) {
	start := types.TimeString("10:00")
	end := types.TimeString("16:00")

	// Рабочее исключение требует обе границы окна
	missing := Override{IsWorkingDay: true, StartTime: &start}
	assert.ErrorIs(t, missing.Validate(), ErrOverrideWindowRequired)

	// Нерабочее исключение не несет ни окна, ни перерывов
	withWindow := Override{IsWorkingDay: false, StartTime: &start, EndTime: &end}
	assert.ErrorIs(t, withWindow.Validate(), ErrOverrideWindowForbidden)
	withBreaks := Override{IsWorkingDay: false, Breaks: []BreakRule{{StartTime: "12:00", EndTime: "13:00"}}}
	assert.ErrorIs(t, withBreaks.Validate(), ErrOverrideWindowForbidden)

	valid := Override{IsWorkingDay: true, StartTime: &start, EndTime: &end}
	assert.NoError(t, valid.Validate())
}

func TestBooking_IsTerminal(t *testing.T) {
	active := []BookingStatus{BookingStatusPendingConfirmation, BookingStatusConfirmed, BookingStatusRescheduled}
	for _, status := range active {
		b := &Booking{Status: status}
		assert.False(t, b.IsTerminal(), "status %s", status)
		assert.True(t, b.CanBeCancelled(), "status %s", status)
		assert.True(t, b.CanBeRescheduled(), "status %s", status)
	}

	for _, status := range TerminalBookingStatuses {
		b := &Booking{Status: status}
		assert.True(t, b.IsTerminal(), "status %s", status)
		assert.False(t, b.CanBeCancelled(), "status %s", status)
	}
}

func TestCancelStatusFor(t *testing.T) {
	assert.Equal(t, BookingStatusCancelledByCustomer, CancelStatusFor(CancelActorCustomer))
	assert.Equal(t, BookingStatusCancelledByVendor, CancelStatusFor(CancelActorVendor))
}
