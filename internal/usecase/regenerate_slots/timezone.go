package regenerate_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// resolveLocation разрешает именованную таймзону расписания (IANA id)
func resolveLocation(name string) (*time.Location, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty timezone", ErrInvalidTimezone)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTimezone, name, err)
	}
	return loc, nil
}

// localToUTC переводит локальную пару (дата, время дня) в абсолютный UTC момент
//
// Конвертация выполняется отдельно для каждой границы слота (а не один раз
// для заранее нарезанных UTC значений), чтобы корректно переживать переходы
// летнего/зимнего времени: time.Date нормализует несуществующие или
// неоднозначные локальные времена по правилам зоны
func localToUTC(date time.Time, t types.TimeString, loc *time.Location) time.Time {
	year, month, day := date.Date()
	minutes := t.Minutes()
	return time.Date(year, month, day, minutes/60, minutes%60, 0, 0, loc).UTC()
}
