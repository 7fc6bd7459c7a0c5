package conversation

// Фиксированный набор сообщений диалогов.
const (
	msgAskWeight     = "Введите ваш вес (в кг):"
	msgBadWeight     = "Некорректный вес. Введите число в кг:"
	msgAskHeight     = "Введите ваш рост (в см):"
	msgBadHeight     = "Некорректный рост. Введите число в см:"
	msgAskAge        = "Введите ваш возраст:"
	msgBadAge        = "Некорректный возраст. Введите число:"
	msgAskSex        = "Укажите пол (м/ж), можно пропустить и ввести '-' :"
	msgAskActivity   = "Сколько минут активности в день?"
	msgBadActivity   = "Некорректное значение. Введите минуты:"
	msgAskCity       = "В каком городе вы находитесь?"
	msgAskManual     = "Хотите задать цель калорий вручную? (да/нет)"
	msgAskManualKcal = "Введите цель калорий (ккал):"
	msgBadManualKcal = "Некорректно. Введите число ккал:"
	msgProfileSaved  = "Профиль сохранён! Используйте /check_progress."

	msgProfileCancelled = "Настройка профиля отменена."

	msgAskFoodName     = "Введите название продукта:"
	msgFoodNotFound    = "Не удалось найти калорийность. Введите ккал на 100 г вручную:"
	msgAskGrams        = "Сколько грамм вы съели?"
	msgBadFoodKcal     = "Введите число ккал на 100 г:"
	msgBadGrams        = "Введите количество грамм:"
	msgFoodLost        = "Не удалось записать продукт. Попробуйте снова."
	msgFoodCancelled   = "Логирование еды отменено."
)
