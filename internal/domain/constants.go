package domain

// DefaultSeatsPerSlot количество мест в слоте по умолчанию
const DefaultSeatsPerSlot = 6

// Формат дат во внешнем API
const DateFormat = "2006-01-02"

// DefaultTemplate фиксированный дневной шаблон слотов, используется,
// если в конфигурации не задан свой
var DefaultTemplate = []TemplateEntry{
	{Time: "09:00-10:00", Type: SlotTypeIndividual, Price: 600},
	{Time: "10:00-11:00", Type: SlotTypeIndividual, Price: 600},
	{Time: "11:00-12:00", Type: SlotTypeGroup, Price: 3000},
	{Time: "12:00-13:00", Type: SlotTypeGroup, Price: 3000},
}
