package catalog

// Sections is the full diagnostic, sections A-G in presentation order.
// Section F is gated on the kinds of data the company handles; condition
// values are the literal option labels of the referenced question.
var Sections = []Section{
	{
		ID:          "profile",
		Title:       "Раздел A: Профиль компании",
		Description: "Основная информация о вашем бизнесе",
		Questions: []Question{
			{
				ID:    "industry",
				Kind:  Single,
				Title: "В какой отрасли работает ваша компания?",
				Options: []string{
					"E-commerce / Интернет-торговля",
					"Финансы и банковские услуги",
					"IT и разработка",
					"Производство",
					"Розничная торговля",
					"Услуги и консалтинг",
					"Здравоохранение",
					"Образование",
					"Логистика и транспорт",
					"Недвижимость",
					"Другое",
				},
			},
			{
				ID:          "business_model",
				Kind:        Single,
				Title:       "Какая у вас бизнес-модель?",
				Description: "Это важно для понимания специфики автоматизации",
				Options: []string{
					"B2B (работаем с другими компаниями)",
					"B2C (работаем с конечными потребителями)",
					"B2B2C (смешанная модель)",
					"Marketplace (площадка)",
					"SaaS (программное обеспечение как услуга)",
					"Другое",
				},
			},
			{
				ID:          "geography",
				Kind:        Multiple,
				Title:       "География работы",
				Description: "Где ваша компания ведет деятельность?",
				Options: []string{
					"Россия",
					"СНГ",
					"Европа",
					"Северная Америка",
					"Азия",
					"Другие регионы",
				},
			},
			{
				ID:    "revenue",
				Kind:  Single,
				Title: "Годовой оборот компании",
				Options: []string{
					"До 10 млн руб.",
					"10-50 млн руб.",
					"50-200 млн руб.",
					"200 млн - 1 млрд руб.",
					"Более 1 млрд руб.",
					"Предпочитаю не указывать",
				},
			},
			{
				ID:    "employees",
				Kind:  Single,
				Title: "Количество сотрудников",
				Options: []string{
					"1-10 человек",
					"11-50 человек",
					"51-200 человек",
					"201-1000 человек",
					"Более 1000 человек",
				},
			},
			{
				ID:    "role",
				Kind:  Single,
				Title: "Ваша роль в принятии решений об автоматизации",
				Options: []string{
					"Окончательно принимаю решения",
					"Участвую в принятии решений",
					"Готовлю рекомендации для руководства",
					"Изучаю возможности по поручению",
					"Другое",
				},
			},
			{
				ID:          "data_sensitivity",
				Kind:        Multiple,
				Title:       "С какими типами данных работает компания?",
				Description: "Важно для понимания требований к безопасности",
				Options: []string{
					"Персональные данные клиентов",
					"Финансовая информация",
					"Коммерческая тайна",
					"Медицинские данные",
					"Государственная тайна",
					"Обычная корпоративная информация",
				},
			},
		},
	},
	{
		ID:          "commerce",
		Title:       "Раздел B: Коммерция и воронка",
		Description: "Как работает ваша система продаж",
		Questions: []Question{
			{
				ID:    "leads_source",
				Kind:  Multiple,
				Title: "Откуда приходят ваши клиенты/лиды?",
				Options: []string{
					"Сайт компании",
					"Социальные сети",
					"Контекстная реклама (Яндекс.Директ, Google Ads)",
					"Таргетированная реклама (Facebook, VK)",
					"Email-рассылки",
					"Холодные звонки/письма",
					"Рекомендации существующих клиентов",
					"Партнерская программа",
					"Выставки и мероприятия",
					"Другое",
				},
			},
			{
				ID:    "leads_volume",
				Kind:  Single,
				Title: "Сколько лидов получаете в месяц?",
				Options: []string{
					"До 50",
					"51-200",
					"201-500",
					"501-1000",
					"Более 1000",
				},
			},
			// B2B/B2C branch questions are appended here at build time.
		},
	},
	{
		ID:          "operations",
		Title:       "Раздел C: Операции и процессы",
		Description: "Текущие бизнес-процессы и их объемы",
		Questions: []Question{
			{
				ID:    "main_processes",
				Kind:  Multiple,
				Title: "Какие процессы занимают больше всего времени?",
				Options: []string{
					"Обработка заказов/заявок",
					"Ведение клиентской базы (CRM)",
					"Финансовый учет и отчетность",
					"Управление складом/товарами",
					"HR-процессы (найм, документооборот)",
					"Маркетинговые кампании",
					"Техническая поддержка клиентов",
					"Планирование и аналитика",
					"Другое",
				},
			},
		},
	},
	{
		ID:          "stack",
		Title:       "Раздел D: Стек и зрелость ИИ",
		Description: "Текущие системы и опыт с ИИ",
		Questions: []Question{
			{
				ID:    "current_systems",
				Kind:  Multiple,
				Title: "Какие системы уже используете?",
				Options: []string{
					"CRM (Bitrix24, AmoCRM, Salesforce)",
					"ERP (1С, SAP, другие)",
					"Системы складского учета (WMS)",
					"Системы документооборота (СЭДО)",
					"Email-маркетинг (Mailchimp, UniSender)",
					"Аналитические системы (Google Analytics, Яндекс.Метрика)",
					"Чат-боты",
					"Собственные разработки",
					"Другое",
				},
			},
			{
				ID:    "ai_experience",
				Kind:  Single,
				Title: "Опыт использования ИИ в бизнесе",
				Options: []string{
					"Активно используем различные ИИ-решения",
					"Тестируем несколько ИИ-инструментов",
					"Используем базовые ИИ-функции (ChatGPT, автоответы)",
					"Только планируем внедрение",
					"Нет опыта с ИИ",
				},
			},
		},
	},
	{
		ID:          "pilot",
		Title:       "Раздел E: Приоритеты и пилот",
		Description: "Планы по автоматизации",
		Questions: []Question{
			{
				ID:    "automation_priority",
				Kind:  Single,
				Title: "Главный приоритет в автоматизации",
				Options: []string{
					"Увеличение продаж и конверсии",
					"Снижение операционных затрат",
					"Улучшение качества обслуживания клиентов",
					"Ускорение внутренних процессов",
					"Получение лучшей аналитики для принятия решений",
					"Масштабирование бизнеса",
					"Другое",
				},
			},
			{
				ID:    "pilot_readiness",
				Kind:  Single,
				Title: "Готовность к запуску пилотного проекта",
				Options: []string{
					"Готов начать в течение месяца",
					"Готов начать в течение 2-3 месяцев",
					"Планирую в следующем квартале",
					"Пока изучаю возможности",
					"Не готов к реализации в ближайшее время",
				},
			},
		},
	},
	{
		ID:          "legal",
		Title:       "Раздел F: Юридические требования и риски",
		Description: "Требования к безопасности и compliance",
		Condition: &Condition{
			QuestionID: "data_sensitivity",
			Values: []string{
				"Персональные данные клиентов",
				"Финансовая информация",
				"Медицинские данные",
				"Государственная тайна",
			},
		},
		Questions: []Question{
			{
				ID:    "compliance_requirements",
				Kind:  Multiple,
				Title: "Каким требованиям должны соответствовать решения?",
				Options: []string{
					"152-ФЗ (О персональных данных)",
					"ПБК (Положение Банка России)",
					"Требования Роскомнадзора",
					"Отраслевые стандарты безопасности",
					"Международные стандарты (GDPR, ISO)",
					"Корпоративные политики безопасности",
					"Не знаю/нужна консультация",
				},
			},
		},
	},
	{
		ID:          "contacts",
		Title:       "Раздел G: Контактная информация",
		Description: "Для связи и отправки результатов",
		Questions: []Question{
			{
				ID:          "contact_name",
				Kind:        Text,
				Title:       "Имя для связи",
				Placeholder: "Введите ваше имя",
			},
			{
				ID:          "contact_email",
				Kind:        Text,
				Title:       "Email",
				Placeholder: "example@company.com",
			},
			{
				ID:          "contact_phone",
				Kind:        Text,
				Title:       "Телефон (необязательно)",
				Placeholder: "+7 (xxx) xxx-xx-xx",
				Optional:    true,
			},
			{
				ID:          "company_name",
				Kind:        Text,
				Title:       "Название компании",
				Placeholder: "ООО \"Название\"",
			},
			{
				ID:    "consent",
				Kind:  Single,
				Title: "Согласие на обработку персональных данных",
				Options: []string{
					"Согласен на обработку персональных данных и получение коммерческих предложений",
				},
			},
		},
	},
}
