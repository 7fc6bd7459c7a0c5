package conversation

import (
	"math"
	"strconv"
	"strings"

	"github.com/fdg312/hydrolog/internal/store"
)

// ParseFloat разбирает число с запятой или точкой как разделителем.
// Возвращает nil, если разобрать не удалось; "nan" и "inf" тоже
// отклоняются — дальше значения сравниваются и складываются.
func ParseFloat(value string) *float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(value), ",", "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// ParseInt разбирает целое; десятичная часть отбрасывается.
func ParseInt(value string) *int {
	f := ParseFloat(value)
	if f == nil {
		return nil
	}
	v := int(*f)
	return &v
}

// normalizeSex сопоставляет свободный текст полу. Любой неопознанный
// токен, включая явный пропуск "-", даёт «не указан» и не блокирует
// прохождение диалога.
func normalizeSex(text string) store.Sex {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "m", "male", "м", "муж", "мужчина":
		return store.SexMale
	case "f", "female", "ж", "жен", "женщина":
		return store.SexFemale
	}
	return store.SexUnspecified
}

func isAffirmative(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "да", "yes", "y":
		return true
	}
	return false
}
