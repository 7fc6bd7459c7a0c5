package bot

const (
	msgStart = "Привет! Я помогу рассчитать норму воды и калорий и вести трекинг. " +
		"Начните с /set_profile. Для справки: /help"

	msgHelp = "Доступные команды:\n" +
		"/set_profile — настройка профиля\n" +
		"/profile — показать текущий профиль\n" +
		"/log_water <мл> — записать воду\n" +
		"/log_food <продукт> — записать еду\n" +
		"/log_workout <тип> <мин> — записать тренировку\n" +
		"/check_progress — прогресс по воде и калориям\n" +
		"/plot — графики прогресса\n" +
		"/recommend — рекомендации\n" +
		"/reset_day — сбросить дневные логи"

	msgNeedProfile      = "Сначала заполните профиль: /set_profile"
	msgProfileEmpty     = "Профиль не заполнен. Используйте /set_profile."
	msgWaterUsage       = "Использование: /log_water <мл>"
	msgWaterBadAmount   = "Введите количество воды в мл."
	msgWorkoutUsage     = "Использование: /log_workout <тип> <мин>\nНапр.: /log_workout бег 30"
	msgWorkoutBadMin    = "Введите длительность в минутах."
	msgPlotEmpty        = "Пока нет данных для графика. Запишите воду/еду/тренировки."
	msgPlotFailed       = "Не удалось построить график."
	msgPlotCaption      = "Графики прогресса"
	msgDayReset         = "Дневные логи сброшены."
	msgRateLimited      = "Слишком много запросов. Попробуйте чуть позже."
)
