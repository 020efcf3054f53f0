package devserver

import (
	"github.com/shopspring/decimal"

	"github.com/webshop/storefront/internal/domain/shop"
)

func priceOf(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// Fixture returns the built-in product catalog.
func Fixture() []shop.Product {
	return []shop.Product{
		{
			ID:          "854cef69-976d-4c2a-a18c-2aa45046c390",
			Title:       "+1 час в сутках",
			Description: "Если планируете решать задачи в тренажёре, берите два.",
			Image:       "/5_Dots.svg",
			Category:    "софт-скил",
			Price:       priceOf(750),
		},
		{
			ID:          "c101ab44-ed99-4a54-990d-47aa2bb4e7d9",
			Title:       "HEX-леденец",
			Description: "Лизните голову, чтобы выпадли идеальные цвета.",
			Image:       "/Shell.svg",
			Category:    "другое",
			Price:       priceOf(1450),
		},
		{
			ID:          "b06cde61-912f-4663-9751-09956c0eed67",
			Title:       "Мамка-таймер",
			Description: "Будет стоять рядом и напоминать про сроки.",
			Image:       "/Asterisk_2.svg",
			Category:    "софт-скил",
			Price:       nil,
		},
		{
			ID:          "412bcf81-7e75-4e70-bdb9-d3c73c9803b7",
			Title:       "Кнопка «Замьютить кота»",
			Description: "Если орёт кот, нажмите кнопку.",
			Image:       "/Soft_Flower.svg",
			Category:    "кнопка",
			Price:       priceOf(2000),
		},
		{
			ID:          "1c521d84-c48d-48fa-8cfb-9d911fa515fd",
			Title:       "БЭМ-пилюлька",
			Description: "Чтобы системно подходить к решению задач.",
			Image:       "/Pill.svg",
			Category:    "дополнительное",
			Price:       priceOf(1500),
		},
		{
			ID:          "f3867296-45c7-4603-bd34-29cea3a061d5",
			Title:       "Портативный телепорт",
			Description: "Измените локацию для поиска работы.",
			Image:       "/Polygon.svg",
			Category:    "другое",
			Price:       priceOf(100000),
		},
		{
			ID:          "54df7dcb-1213-4b3c-ab61-92ed5f845535",
			Title:       "Мастер-класс «Карьерный рост после 40»",
			Description: "Полезные навыки для успешного старта карьеры.",
			Image:       "/Butterfly.svg",
			Category:    "хард-скил",
			Price:       priceOf(35000),
		},
	}
}
