package budget

import (
	"fmt"
	"strings"

	"github.com/renudeshmukh940/TaskHive-sub000/internal/domain/entity"
	domainErrors "github.com/renudeshmukh940/TaskHive-sub000/internal/domain/errors"
)

// StandardDayHours - дневной бюджет, сверх которого часы считаются переработкой
const StandardDayHours = 9.0

// workTypePolicy задает пер-запись лимиты для типа работ
type workTypePolicy struct {
	minHours float64
	maxHours float64
	bounded  bool
}

// Политики встроенных типов работ. Ключи - в нижнем регистре,
// сравнение workType регистронезависимое. Кастомные командные
// типы сюда не попадают и лимитов не имеют.
var workTypePolicies = map[string]workTypePolicy{
	"full-day":   {minHours: 0, maxHours: 9, bounded: true},
	"half-day":   {minHours: 0, maxHours: 4.5, bounded: true},
	"relaxation": {minHours: 0, maxHours: 7, bounded: true},
	"over time":  {minHours: 0, bounded: false},
}

// ValidationResult представляет принятую запись с разбивкой часов дня
type ValidationResult struct {
	NormalHours     float64
	ExtraHours      float64
	TotalDailyHours float64
	Message         string
}

// Validator проверяет запись времени против дневного бюджета.
// Чистая функция над уже прочитанными записями дня: сами чтения
// и запись делает вызывающий usecase.
type Validator struct{}

// NewValidator создает новый валидатор дневного бюджета
func NewValidator() *Validator {
	return &Validator{}
}

// Validate проверяет новую или отредактированную запись времени.
// existing - все остальные записи сотрудника за тот же (team, date);
// при редактировании запись с excludeTaskID исключается из суммы,
// чтобы не считать её дважды.
func (v *Validator) Validate(workType, timeSpent string, existing []*entity.TaskEntry, excludeTaskID string) (*ValidationResult, error) {
	currentHours, err := ParseHours(timeSpent)
	if err != nil {
		return nil, err
	}

	priorHours := 0.0
	for _, e := range existing {
		if excludeTaskID != "" && e.TaskID == excludeTaskID {
			continue
		}
		h, err := ParseHours(e.TimeSpent)
		if err != nil {
			// Испорченная сохраненная запись не должна открывать
			// дорогу сверх бюджета - отказываем
			return nil, domainErrors.NewDomainError(
				"COLLABORATOR_UNAVAILABLE",
				fmt.Sprintf("stored entry %s has unreadable time spent", e.TaskID),
				domainErrors.ErrCollaboratorDown,
			)
		}
		priorHours += h
	}

	projectedTotal := priorHours + currentHours

	key := strings.ToLower(strings.TrimSpace(workType))
	isOverTime := key == "over time"

	if isOverTime {
		// Переработка имеет смысл только при заполненном стандартном дне
		if projectedTotal < StandardDayHours {
			shortfall := StandardDayHours - projectedTotal
			return nil, domainErrors.NewDomainError(
				"INSUFFICIENT_DAILY_BASELINE",
				fmt.Sprintf("over time requires a full %s day first, %s short", FormatHours(StandardDayHours), FormatHours(shortfall)),
				domainErrors.ErrInsufficientBaseline,
			)
		}
	} else if p, ok := workTypePolicies[key]; ok {
		if currentHours < p.minHours {
			deficit := p.minHours - currentHours
			return nil, domainErrors.NewDomainError(
				"BELOW_MINIMUM",
				fmt.Sprintf("%s entry must be at least %s, %s short", workType, FormatHours(p.minHours), FormatHours(deficit)),
				domainErrors.ErrBelowMinimum,
			)
		}
		if p.bounded && currentHours > p.maxHours {
			excess := currentHours - p.maxHours
			return nil, domainErrors.NewDomainError(
				"EXCEEDS_MAXIMUM",
				fmt.Sprintf("%s entry is limited to %s, %s over", workType, FormatHours(p.maxHours), FormatHours(excess)),
				domainErrors.ErrExceedsMaximum,
			)
		}
	}

	normalHours := projectedTotal
	extraHours := 0.0
	if projectedTotal > StandardDayHours {
		normalHours = StandardDayHours
		extraHours = projectedTotal - StandardDayHours
	}

	// Дневной агрегатный лимит строже пер-запись лимита: превышение
	// дня допустимо только под типом Over Time
	if extraHours > 0 && !isOverTime {
		return nil, domainErrors.NewDomainError(
			"DAILY_LIMIT_EXCEEDED",
			fmt.Sprintf("daily total %s exceeds the %s budget, use the Over Time work type or reduce duration", FormatHours(projectedTotal), FormatHours(StandardDayHours)),
			domainErrors.ErrDailyLimitExceeded,
		)
	}

	var message string
	if extraHours > 0 {
		message = fmt.Sprintf("accepted, %s normal and %s over time logged for the day", FormatHours(normalHours), FormatHours(extraHours))
	} else {
		remaining := StandardDayHours - projectedTotal
		message = fmt.Sprintf("accepted, %s of the daily budget remaining", FormatHours(remaining))
	}

	return &ValidationResult{
		NormalHours:     normalHours,
		ExtraHours:      extraHours,
		TotalDailyHours: projectedTotal,
		Message:         message,
	}, nil
}
