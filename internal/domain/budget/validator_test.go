package budget

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renudeshmukh940/TaskHive-sub000/internal/domain/entity"
	domainErrors "github.com/renudeshmukh940/TaskHive-sub000/internal/domain/errors"
)

func entriesWithTimes(times ...string) []*entity.TaskEntry {
	entries := make([]*entity.TaskEntry, 0, len(times))
	for i, ts := range times {
		entries = append(entries, &entity.TaskEntry{
			TaskID:    string(rune('a' + i)),
			WorkType:  entity.WorkTypeFullDay,
			TimeSpent: ts,
		})
	}
	return entries
}

func TestValidate_FullDayEmptyDay(t *testing.T) {
	v := NewValidator()

	// Сценарий A: пустой день, Full-day 9:00 принимается без переработки
	result, err := v.Validate(entity.WorkTypeFullDay, "9:00", nil, "")
	require.NoError(t, err)

	assert.Equal(t, 9.0, result.NormalHours)
	assert.Equal(t, 0.0, result.ExtraHours)
	assert.Equal(t, 9.0, result.TotalDailyHours)
}

func TestValidate_HalfDayFillsBudgetExactly(t *testing.T) {
	v := NewValidator()

	// Сценарий B: 5:00 уже есть, Half-day 4:00 доводит день ровно до 9:00
	result, err := v.Validate(entity.WorkTypeHalfDay, "4:00", entriesWithTimes("5:00"), "")
	require.NoError(t, err)

	assert.Equal(t, 9.0, result.NormalHours)
	assert.Equal(t, 0.0, result.ExtraHours)
}

func TestValidate_DailyLimitExceeded(t *testing.T) {
	v := NewValidator()

	// Сценарий B, второй вариант: 5:00 + 5:00 = 10:00 без Over Time
	_, err := v.Validate(entity.WorkTypeFullDay, "5:00", entriesWithTimes("5:00"), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainErrors.ErrDailyLimitExceeded))
}

func TestValidate_OverTimeSplit(t *testing.T) {
	v := NewValidator()

	// Сценарий C: день заполнен на 9:00, Over Time 2:00 дает сплит 9/2
	result, err := v.Validate(entity.WorkTypeOverTime, "2:00", entriesWithTimes("4:00", "5:00"), "")
	require.NoError(t, err)

	assert.Equal(t, 9.0, result.NormalHours)
	assert.Equal(t, 2.0, result.ExtraHours)
	assert.Equal(t, 11.0, result.TotalDailyHours)
}

func TestValidate_OverTimeInsufficientBaseline(t *testing.T) {
	v := NewValidator()

	// Сценарий D: 3:00 + 1:00 = 4:00 < 9:00, до бюджета не хватает 5:00
	_, err := v.Validate(entity.WorkTypeOverTime, "1:00", entriesWithTimes("3:00"), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainErrors.ErrInsufficientBaseline))
	assert.Contains(t, err.Error(), "5:00")
}

func TestValidate_InvalidTimeFormat(t *testing.T) {
	v := NewValidator()

	// Сценарий E
	_, err := v.Validate(entity.WorkTypeFullDay, "25:99", nil, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainErrors.ErrInvalidFormat))
}

func TestValidate_PerEntryMaximums(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		workType  string
		timeSpent string
		wantErr   bool
	}{
		{entity.WorkTypeFullDay, "9:00", false},
		{entity.WorkTypeFullDay, "9:01", true},
		{entity.WorkTypeHalfDay, "4:30", false},
		{entity.WorkTypeHalfDay, "4:31", true},
		{entity.WorkTypeRelaxation, "7:00", false},
		{entity.WorkTypeRelaxation, "7:01", true},
	}

	for _, tt := range tests {
		t.Run(tt.workType+" "+tt.timeSpent, func(t *testing.T) {
			_, err := v.Validate(tt.workType, tt.timeSpent, nil, "")
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainErrors.ErrExceedsMaximum))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidate_WorkTypeCaseInsensitive(t *testing.T) {
	v := NewValidator()

	_, err := v.Validate("FULL-DAY", "9:01", nil, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainErrors.ErrExceedsMaximum))

	result, err := v.Validate("over time", "2:00", entriesWithTimes("4:30", "4:30"), "")
	require.NoError(t, err)
	assert.Equal(t, 2.0, result.ExtraHours)
}

func TestValidate_CustomWorkTypeHasNoEntryCap(t *testing.T) {
	v := NewValidator()

	// Командный кастомный тип не имеет пер-запись лимита,
	// но дневной агрегатный лимит для него действует
	result, err := v.Validate("Deployment", "8:00", nil, "")
	require.NoError(t, err)
	assert.Equal(t, 8.0, result.TotalDailyHours)

	_, err = v.Validate("Deployment", "8:00", entriesWithTimes("2:00"), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainErrors.ErrDailyLimitExceeded))
}

func TestValidate_EditExcludesOwnEntry(t *testing.T) {
	v := NewValidator()

	existing := entriesWithTimes("5:00", "4:00")

	// Без исключения редактируемой записи 5+4+4 превысило бы бюджет
	result, err := v.Validate(entity.WorkTypeHalfDay, "4:00", existing, existing[1].TaskID)
	require.NoError(t, err)
	assert.Equal(t, 9.0, result.TotalDailyHours)
}

func TestValidate_CorruptStoredEntryFailsClosed(t *testing.T) {
	v := NewValidator()

	existing := []*entity.TaskEntry{{TaskID: "x", TimeSpent: "garbage"}}

	_, err := v.Validate(entity.WorkTypeFullDay, "1:00", existing, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainErrors.ErrCollaboratorDown))
}
