package catalog

// BranchSectionID is the section the B2B/B2C branch lists are spliced into,
// after its own questions. Each branch question carries its own condition;
// the section's condition (it has none today) would gate them as well.
const BranchSectionID = "commerce"

var b2bCondition = Condition{
	QuestionID: "business_model",
	Values: []string{
		"B2B (работаем с другими компаниями)",
		"B2B2C (смешанная модель)",
	},
}

var b2cCondition = Condition{
	QuestionID: "business_model",
	Values: []string{
		"B2C (работаем с конечными потребителями)",
		"B2B2C (смешанная модель)",
	},
}

// B2B is the branch-A list: follow-ups for companies selling to companies.
var B2B = []Question{
	{
		ID:        "deal_duration_b2b",
		Kind:      Single,
		Title:     "Средняя длительность сделки (B2B)",
		Condition: &b2bCondition,
		Options: []string{
			"До 1 недели",
			"1-4 недели",
			"1-3 месяца",
			"3-6 месяцев",
			"Более 6 месяцев",
		},
	},
	{
		ID:        "decision_makers_b2b",
		Kind:      Single,
		Title:     "Количество лиц, принимающих решение на стороне клиента",
		Condition: &b2bCondition,
		Options: []string{
			"1 человек",
			"2-3 человека",
			"4-5 человек",
			"Более 5 человек",
			"Зависит от сделки",
		},
	},
	{
		ID:        "outbound_sales_b2b",
		Kind:      Single,
		Title:     "Используете ли исходящий поиск клиентов?",
		Condition: &b2bCondition,
		Options: []string{
			"Да, активно занимаемся холодными продажами",
			"Иногда, по необходимости",
			"Нет, работаем только с входящими лидами",
			"Планируем запустить",
		},
	},
}

// B2C is the branch-B list: follow-ups for consumer-facing companies.
var B2C = []Question{
	{
		ID:        "customer_channels_b2c",
		Kind:      Multiple,
		Title:     "Основные каналы взаимодействия с клиентами (B2C)",
		Condition: &b2cCondition,
		Options: []string{
			"Веб-сайт",
			"Мобильное приложение",
			"Социальные сети",
			"Мессенджеры (WhatsApp, Telegram)",
			"Телефон/колл-центр",
			"Email",
			"Офлайн точки продаж",
		},
	},
	{
		ID:        "customer_retention_b2c",
		Kind:      Single,
		Title:     "Работа с удержанием клиентов",
		Condition: &b2cCondition,
		Options: []string{
			"Активно работаем с базой, есть программы лояльности",
			"Периодически отправляем предложения",
			"Работаем в основном с новыми клиентами",
			"Планируем развивать это направление",
		},
	},
	{
		ID:        "customer_support_b2c",
		Kind:      Multiple,
		Title:     "Как организована поддержка клиентов?",
		Condition: &b2cCondition,
		Options: []string{
			"Телефонная поддержка",
			"Онлайн-чат на сайте",
			"Email-поддержка",
			"Поддержка в социальных сетях",
			"Чат-боты",
			"FAQ/База знаний",
			"Поддержки пока нет",
		},
	},
}
