package handler

import "fmt"

// All user-facing copy lives here so wording can change without
// touching the dialogue logic.
const (
	startText = "🛠️ Добро пожаловать в сервис аренды инструмента!\n\n" +
		"Здесь вы можете:\n" +
		"• 📄 Посмотреть прайс\n" +
		"• 📝 Ознакомиться с договором\n" +
		"• 📞 Связаться с нами\n" +
		"• ⏰ Установить напоминание о возврате\n" +
		"• 💬 Читать и оставлять отзывы\n\n" +
		"Выберите нужное действие:"

	helpText = "📋 Доступные команды:\n\n" +
		"/start — главное меню\n" +
		"/menu — главное меню\n" +
		"/price — прайс\n" +
		"/contract — договор\n" +
		"/contacts — контакты\n" +
		"/reminder — установить напоминание\n" +
		"/reviews — отзывы\n\n" +
		"⏰ Напоминание: отправьте дату и время в формате «ДД.ММ.ГГГГ ЧЧ:ММ»\n" +
		"Например: 30.08.2025 18:30"

	reminderPromptText = "⏰ Установка напоминания о возврате инструмента\n\n" +
		"Отправьте дату и время возврата в формате:\n" +
		"ДД.ММ.ГГГГ ЧЧ:ММ\n\n" +
		"Например: 30.08.2025 18:30\n\n" +
		"Или отправьте «-» для отмены."

	badDatetimeText = "❌ Неверный формат даты и времени.\n\n" +
		"Правильный формат: ДД.ММ.ГГГГ ЧЧ:ММ\n" +
		"Например: 30.08.2025 18:30\n\n" +
		"Повторите ввод или отправьте «-» для отмены."

	pastDatetimeText = "❌ Время напоминания должно быть в будущем.\n\n" +
		"Повторите ввод или отправьте «-» для отмены."

	askNoteText = "✅ Время установлено!\n\n" +
		"Добавьте заметку (например, «Перфоратор Bosch»)\n" +
		"Или отправьте «-», чтобы пропустить:"

	reminderCancelledText  = "❌ Установка напоминания отменена."
	operationCancelledText = "❌ Операция отменена."

	reviewPromptText = "✍️ Напишите ваш отзыв одним сообщением.\n\n" +
		"Расскажите о качестве инструмента, обслуживании, удобстве аренды.\n\n" +
		"Для отмены отправьте /cancel"

	emptyReviewText = "❌ Пустой отзыв не сохраняю. Напишите текст или /cancel."

	reviewThanksText = "✅ Спасибо! Ваш отзыв сохранён.\n\n" +
		"Мы ценим ваше мнение и будем работать над улучшением сервиса! 🙏"

	noReviewsText = "💬 Пока нет отзывов.\n\n" +
		"Нажмите «✍️ Оставить отзыв», чтобы написать первый!"

	reviewsHeaderText = "💬 Последние отзывы:\n\n"

	priceCaption    = "📄 Актуальный прайс:"
	contractCaption = "📝 Договор аренды:"

	fileUnavailableText = "Файл недоступен. Задайте URL или положите файл в указанный путь."

	genericErrorText = "Произошла ошибка. Попробуйте позже."

	contactsText = "📞 Наши контакты:\n\n" +
		"📱 Телефон: [+79536353102](tel:+79536353102)\n" +
		"📧 WhatsApp: [Написать в WhatsApp](https://wa.me/79536353102)\n\n" +
		"🕒 Время работы:\n" +
		"Пн-Пт: 8:00 - 18:00\n" +
		"Сб: 9:00 - 16:00\n" +
		"Вс: выходной\n\n" +
		"📍 Адрес: [г.Маркс, ул. 2-я Сосновая, д. 12](https://maps.google.com/?q=г.Маркс, ул. 2-я Сосновая, д. 12)\n\n" +
		"🗺 Как добраться: нажмите на адрес для открытия в навигаторе"
)

// reminderConfirmationText renders the final confirmation with the due
// time in the configured timezone.
func reminderConfirmationText(localTime, zone, note string) string {
	return fmt.Sprintf(
		"✅ Напоминание установлено!\n\n"+
			"⏰ Время: %s (%s)\n"+
			"📝 Заметка: %s\n\n"+
			"Я Вас оповещу в личные сообщения.",
		localTime, zone, note,
	)
}

// ReminderNotificationText is the message delivered when a timer fires.
// Exported because delivery happens outside the handler, on the
// scheduler's goroutines.
func ReminderNotificationText(note string) string {
	return fmt.Sprintf(
		"⏰ Напоминание о возврате инструмента!\n\n"+
			"📝 %s\n\n"+
			"Пора вернуть инструмент. Спасибо за использование нашего сервиса! 🛠️",
		note,
	)
}
