package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSlot(status SlotStatus) *AvailabilitySlot {
	scheduleID := int64(7)
	return &AvailabilitySlot{
		ID:                   1,
		WorkerID:             10,
		BusinessID:           20,
		StartsAt:             time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC),
		EndsAt:               time.Date(2025, 11, 3, 9, 30, 0, 0, time.UTC),
		Status:               status,
		GeneratingScheduleID: &scheduleID,
	}
}

func TestAvailabilitySlot_Book(t *testing.T) {
	slot := newSlot(SlotStatusAvailable)

	require.NoError(t, slot.Book(42))
	assert.Equal(t, SlotStatusBooked, slot.Status)
	require.NotNil(t, slot.BookingID)
	assert.Equal(t, int64(42), *slot.BookingID)

	// Повторное бронирование занятого слота запрещено
	assert.ErrorIs(t, newSlot(SlotStatusBooked).Book(43), ErrInvalidTransition)
	assert.ErrorIs(t, newSlot(SlotStatusPending).Book(43), ErrInvalidTransition)
	assert.ErrorIs(t, newSlot(SlotStatusUnavailable).Book(43), ErrInvalidTransition)
}

func TestAvailabilitySlot_Release(t *testing.T) {
	slot := newSlot(SlotStatusAvailable)
	require.NoError(t, slot.Book(42))

	require.NoError(t, slot.Release())
	assert.Equal(t, SlotStatusAvailable, slot.Status)
	assert.Nil(t, slot.BookingID)

	held := newSlot(SlotStatusAvailable)
	require.NoError(t, held.Hold())
	require.NoError(t, held.Release())
	assert.Equal(t, SlotStatusAvailable, held.Status)

	assert.ErrorIs(t, newSlot(SlotStatusAvailable).Release(), ErrInvalidTransition)
	assert.ErrorIs(t, newSlot(SlotStatusBreak).Release(), ErrInvalidTransition)
}

func TestAvailabilitySlot_MarkAndReopen(t *testing.T) {
	slot := newSlot(SlotStatusAvailable)
	require.NoError(t, slot.MarkUnavailable())
	assert.Equal(t, SlotStatusUnavailable, slot.Status)

	require.NoError(t, slot.Reopen())
	assert.Equal(t, SlotStatusAvailable, slot.Status)

	require.NoError(t, slot.MarkBreak())
	assert.Equal(t, SlotStatusBreak, slot.Status)

	// Забронированный слот не переводится в unavailable или break
	booked := newSlot(SlotStatusAvailable)
	require.NoError(t, booked.Book(42))
	assert.ErrorIs(t, booked.MarkUnavailable(), ErrInvalidTransition)
	assert.ErrorIs(t, booked.MarkBreak(), ErrInvalidTransition)
	assert.ErrorIs(t, booked.Reopen(), ErrInvalidTransition)
}

func TestAvailabilitySlot_UpdateTime(t *testing.T) {
	slot := newSlot(SlotStatusAvailable)
	newStart := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	newEnd := time.Date(2025, 11, 3, 10, 45, 0, 0, time.UTC)

	require.NoError(t, slot.UpdateTime(newStart, newEnd))
	assert.Equal(t, newStart, slot.StartsAt)
	assert.Equal(t, newEnd, slot.EndsAt)

	// Пустое и вывернутое окно запрещены
	assert.ErrorIs(t, slot.UpdateTime(newStart, newStart), ErrInvalidTimeWindow)
	assert.ErrorIs(t, slot.UpdateTime(newEnd, newStart), ErrInvalidTimeWindow)

	// Окно забронированного слота менять нельзя
	booked := newSlot(SlotStatusAvailable)
	require.NoError(t, booked.Book(42))
	assert.ErrorIs(t, booked.UpdateTime(newStart, newEnd), ErrSlotBooked)
}

func TestAvailabilitySlot_IsFixed(t *testing.T) {
	// Сгенерированный свободный слот перегенерация может удалить
	assert.False(t, newSlot(SlotStatusAvailable).IsFixed())

	// Любой не-available статус фиксирует слот
	assert.True(t, newSlot(SlotStatusPending).IsFixed())
	assert.True(t, newSlot(SlotStatusBooked).IsFixed())
	assert.True(t, newSlot(SlotStatusUnavailable).IsFixed())
	assert.True(t, newSlot(SlotStatusBreak).IsFixed())

	// Ручной слот фиксирован независимо от статуса
	manual := newSlot(SlotStatusAvailable)
	manual.GeneratingScheduleID = nil
	assert.True(t, manual.IsFixed())
}

func TestAvailabilitySlot_Overlaps(t *testing.T) {
	slot := newSlot(SlotStatusAvailable) // [09:00, 09:30)

	base := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return base.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	assert.True(t, slot.Overlaps(at(9, 0), at(9, 30)))
	assert.True(t, slot.Overlaps(at(9, 15), at(9, 20)))
	assert.True(t, slot.Overlaps(at(8, 45), at(9, 1)))

	// Смежные полуоткрытые интервалы не пересекаются
	assert.False(t, slot.Overlaps(at(8, 30), at(9, 0)))
	assert.False(t, slot.Overlaps(at(9, 30), at(10, 0)))
}
