package conversation

import "github.com/fdg312/hydrolog/internal/store"

// StartProfile начинает диалог настройки профиля, перекрывая любой
// незавершённый диалог.
func (e *Engine) StartProfile(u *store.UserRecord) []string {
	u.Session = &store.Session{Flow: store.FlowProfile, State: store.StateAwaitWeight}
	return []string{msgAskWeight}
}

// advanceProfile потребляет одно сообщение диалога профиля.
// Невалидный ввод повторяет вопрос, не продвигая состояние.
func (e *Engine) advanceProfile(u *store.UserRecord, text string) []string {
	switch u.Session.State {
	case store.StateAwaitWeight:
		weight := ParseFloat(text)
		if weight == nil || *weight <= 0 {
			return []string{msgBadWeight}
		}
		u.Profile.WeightKg = *weight
		u.Session.State = store.StateAwaitHeight
		return []string{msgAskHeight}

	case store.StateAwaitHeight:
		height := ParseInt(text)
		if height == nil || *height <= 0 {
			return []string{msgBadHeight}
		}
		u.Profile.HeightCm = *height
		u.Session.State = store.StateAwaitAge
		return []string{msgAskAge}

	case store.StateAwaitAge:
		age := ParseInt(text)
		if age == nil || *age <= 0 {
			return []string{msgBadAge}
		}
		u.Profile.AgeYears = *age
		u.Session.State = store.StateAwaitSex
		return []string{msgAskSex}

	case store.StateAwaitSex:
		// Пол никогда не блокирует прохождение диалога.
		u.Profile.Sex = normalizeSex(text)
		u.Session.State = store.StateAwaitActivity
		return []string{msgAskActivity}

	case store.StateAwaitActivity:
		activity := ParseInt(text)
		if activity == nil || *activity < 0 {
			return []string{msgBadActivity}
		}
		u.Profile.ActivityMinutes = activity
		u.Session.State = store.StateAwaitCity
		return []string{msgAskCity}

	case store.StateAwaitCity:
		// Город принимается безусловно, пустой тоже.
		u.Profile.City = text
		u.Session.State = store.StateAwaitManualChoice
		return []string{msgAskManual}

	case store.StateAwaitManualChoice:
		if isAffirmative(text) {
			u.Session.State = store.StateAwaitManualCalorieValue
			return []string{msgAskManualKcal}
		}
		u.Profile.ManualCalorieGoal = 0
		u.Session = nil
		return []string{msgProfileSaved}

	case store.StateAwaitManualCalorieValue:
		value := ParseInt(text)
		if value == nil || *value <= 0 {
			return []string{msgBadManualKcal}
		}
		u.Profile.ManualCalorieGoal = *value
		u.Session = nil
		return []string{msgProfileSaved}
	}

	return nil
}
