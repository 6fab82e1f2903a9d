package budget

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	domainErrors "github.com/renudeshmukh940/TaskHive-sub000/internal/domain/errors"
)

// timeSpentPattern - одна или две цифры часов, двоеточие, две цифры минут
var timeSpentPattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// ParseHours разбирает строку H:MM / HH:MM в дробные часы
func ParseHours(timeSpent string) (float64, error) {
	if !timeSpentPattern.MatchString(timeSpent) {
		return 0, domainErrors.NewDomainError(
			"INVALID_FORMAT",
			fmt.Sprintf("time spent %q must be in H:MM format", timeSpent),
			domainErrors.ErrInvalidFormat,
		)
	}

	parts := strings.SplitN(timeSpent, ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])

	if minutes > 59 {
		return 0, domainErrors.NewDomainError(
			"INVALID_FORMAT",
			fmt.Sprintf("time spent %q has invalid minutes", timeSpent),
			domainErrors.ErrInvalidFormat,
		)
	}

	return float64(hours) + float64(minutes)/60, nil
}

// FormatHours преобразует дробные часы обратно в H:MM.
// Минуты округляются до ближайшей целой; округление до 60
// переносится в часы, чтобы не показывать строки вида 8:60.
func FormatHours(fractional float64) string {
	if fractional < 0 {
		fractional = 0
	}

	hours := int(math.Floor(fractional))
	minutes := int(math.Round((fractional - math.Floor(fractional)) * 60))

	if minutes == 60 {
		hours++
		minutes = 0
	}

	return fmt.Sprintf("%d:%02d", hours, minutes)
}
