package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модели

// CreateScheduleRequest запрос на создание расписания работника
type CreateScheduleRequest struct {
	WorkerID   int64      `json:"workerId"`
	BusinessID int64      `json:"businessId"`
	Name       string     `json:"name"`
	Timezone   string     `json:"timezone"`
	IsDefault  bool       `json:"isDefault"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
}

// BreakInput перерыв в запросе
type BreakInput struct {
	Name      string `json:"name"`
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM
}

// UpsertRuleRequest запрос на установку правила для дня недели
type UpsertRuleRequest struct {
	WorkerID     int64        `json:"workerId"`
	Weekday      int          `json:"weekday"` // 0 = Sunday ... 6 = Saturday
	IsWorkingDay bool         `json:"isWorkingDay"`
	StartTime    string       `json:"startTime,omitempty"` // HH:MM
	EndTime      string       `json:"endTime,omitempty"`   // HH:MM
	Breaks       []BreakInput `json:"breaks,omitempty"`
}

// UpsertOverrideRequest запрос на установку исключения на дату
type UpsertOverrideRequest struct {
	WorkerID     int64        `json:"workerId"`
	Date         time.Time    `json:"date"`
	Reason       string       `json:"reason,omitempty"`
	IsWorkingDay bool         `json:"isWorkingDay"`
	StartTime    *string      `json:"startTime,omitempty"` // HH:MM, обязателен для рабочего дня
	EndTime      *string      `json:"endTime,omitempty"`   // HH:MM, обязателен для рабочего дня
	Breaks       []BreakInput `json:"breaks,omitempty"`
}

// Response модели

// BreakResponse перерыв в ответе API
type BreakResponse struct {
	Name      string `json:"name"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// RuleResponse правило дня недели в ответе API
type RuleResponse struct {
	Weekday      int             `json:"weekday"`
	IsWorkingDay bool            `json:"isWorkingDay"`
	StartTime    string          `json:"startTime,omitempty"`
	EndTime      string          `json:"endTime,omitempty"`
	Breaks       []BreakResponse `json:"breaks,omitempty"`
}

// OverrideResponse исключение на дату в ответе API
type OverrideResponse struct {
	Date         string          `json:"date"`
	Reason       string          `json:"reason,omitempty"`
	IsWorkingDay bool            `json:"isWorkingDay"`
	StartTime    *string         `json:"startTime,omitempty"`
	EndTime      *string         `json:"endTime,omitempty"`
	Breaks       []BreakResponse `json:"breaks,omitempty"`
}

// ScheduleResponse расписание работника в ответе API
type ScheduleResponse struct {
	ID         int64              `json:"id"`
	WorkerID   int64              `json:"workerId"`
	BusinessID int64              `json:"businessId"`
	Name       string             `json:"name"`
	Timezone   string             `json:"timezone"`
	IsDefault  bool               `json:"isDefault"`
	StartDate  *time.Time         `json:"startDate,omitempty"`
	EndDate    *time.Time         `json:"endDate,omitempty"`
	Rules      []RuleResponse     `json:"rules"`
	Overrides  []OverrideResponse `json:"overrides"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// ToDomainBreaks конвертирует перерывы запроса в domain модели
func ToDomainBreaks(breaks []BreakInput) ([]domain.BreakRule, error) {
	if len(breaks) == 0 {
		return nil, nil
	}

	result := make([]domain.BreakRule, 0, len(breaks))
	for _, b := range breaks {
		if len(b.Name) > domain.MaxBreakNameLength {
			return nil, fmt.Errorf("break name exceeds %d characters", domain.MaxBreakNameLength)
		}
		start, err := types.NewTimeStringFromString(b.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := types.NewTimeStringFromString(b.EndTime)
		if err != nil {
			return nil, err
		}
		result = append(result, domain.BreakRule{
			Name:      b.Name,
			StartTime: start,
			EndTime:   end,
		})
	}
	return result, nil
}

// FromDomainSchedule конвертирует domain расписание в response модель
func FromDomainSchedule(s *domain.Schedule) *ScheduleResponse {
	resp := &ScheduleResponse{
		ID:         s.ID,
		WorkerID:   s.WorkerID,
		BusinessID: s.BusinessID,
		Name:       s.Name,
		Timezone:   s.Timezone,
		IsDefault:  s.IsDefault,
		StartDate:  s.StartDate,
		EndDate:    s.EndDate,
		Rules:      make([]RuleResponse, 0, len(s.RuleItems)),
		Overrides:  make([]OverrideResponse, 0, len(s.Overrides)),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}

	for _, r := range s.RuleItems {
		rule := RuleResponse{
			Weekday:      int(r.Weekday),
			IsWorkingDay: r.IsWorkingDay,
			Breaks:       fromDomainBreaks(r.Breaks),
		}
		if r.IsWorkingDay {
			rule.StartTime = r.StartTime.String()
			rule.EndTime = r.EndTime.String()
		}
		resp.Rules = append(resp.Rules, rule)
	}

	for _, o := range s.Overrides {
		override := OverrideResponse{
			Date:         o.Date.Format(domain.DateFormat),
			Reason:       o.Reason,
			IsWorkingDay: o.IsWorkingDay,
			Breaks:       fromDomainBreaks(o.Breaks),
		}
		if o.StartTime != nil {
			v := o.StartTime.String()
			override.StartTime = &v
		}
		if o.EndTime != nil {
			v := o.EndTime.String()
			override.EndTime = &v
		}
		resp.Overrides = append(resp.Overrides, override)
	}

	return resp
}

func fromDomainBreaks(breaks []domain.BreakRule) []BreakResponse {
	if len(breaks) == 0 {
		return nil
	}
	result := make([]BreakResponse, 0, len(breaks))
	for _, b := range breaks {
		result = append(result, BreakResponse{
			Name:      b.Name,
			StartTime: b.StartTime.String(),
			EndTime:   b.EndTime.String(),
		})
	}
	return result
}
