package seed

import (
	"github.com/goldenpolis/storefront/internal/constants"
	"github.com/goldenpolis/storefront/internal/models"
)

// Products 内置演示目录（存储中无覆盖文档时生效）
func Products() []models.Product {
	return []models.Product{
		{
			ID:         1,
			Name:       "Buzo con capota Hoodie Dama",
			Slug:       "buzo-con-capota-hoodie-dama",
			Type:       constants.ProductTypePhysical,
			IsVariable: true,
			Category:   models.StringArray{"Ropa"},
			Description: "Este buzo abierto con capota, en silueta clásica, está diseñado para brindar " +
				"confort superior en cualquier contexto. Su construcción ligera y funcional lo convierte " +
				"en el aliado ideal para trabajar desde casa o acompañarte en tus recorridos diarios.",
			Price:  models.NewMoneyFromInt(139000),
			Stock:  0,
			Images: models.StringArray{"hoodies/dama/mockup-front.png", "hoodies/dama/mockup-back.png"},
			Rating: 5,
			Variants: []models.Variant{
				{Color: "Blanco", Size: "XS", Design: "Corazón y amor", Price: models.NewMoneyFromInt(132000), Stock: 8, Images: models.StringArray{"hoodies/dama/mockup-front.png"}},
				{Color: "Blanco", Size: "S", Design: "Corazón y amor", Price: models.NewMoneyFromInt(135000), Stock: 12, Images: models.StringArray{"hoodies/dama/mockup-front.png"}},
				{Color: "Blanco", Size: "M", Design: "Corazón y amor", Price: models.NewMoneyFromInt(135000), Stock: 15, Images: models.StringArray{"hoodies/dama/mockup-front.png"}},
				{Color: "Blanco", Size: "L", Design: "Corazón y amor", Price: models.NewMoneyFromInt(139000), Stock: 10, Images: models.StringArray{"hoodies/dama/mockup-front.png"}},
				{Color: "Negro", Size: "XS", Design: "Estrellas", Price: models.NewMoneyFromInt(132000), Stock: 8, Images: models.StringArray{"hoodies/dama/mockup-black-front.png"}},
				{Color: "Negro", Size: "S", Design: "Estrellas", Price: models.NewMoneyFromInt(135000), Stock: 12, Images: models.StringArray{"hoodies/dama/mockup-black-front.png"}},
				{Color: "Negro", Size: "M", Design: "Estrellas", Price: models.NewMoneyFromInt(135000), Stock: 15, Images: models.StringArray{"hoodies/dama/mockup-black-front.png"}},
				{Color: "Negro", Size: "L", Design: "Estrellas", Price: models.NewMoneyFromInt(139000), Stock: 10, Images: models.StringArray{"hoodies/dama/mockup-black-front.png"}},
				{Color: "Gris", Size: "XS", Design: "Amor", Price: models.NewMoneyFromInt(135000), Stock: 6, Images: models.StringArray{"hoodies/dama/mockup-grey-front.png"}},
				{Color: "Gris", Size: "S", Design: "Amor", Price: models.NewMoneyFromInt(140000), Stock: 10, Images: models.StringArray{"hoodies/dama/mockup-grey-front.png"}},
				{Color: "Gris", Size: "M", Design: "Amor", Price: models.NewMoneyFromInt(140000), Stock: 12, Images: models.StringArray{"hoodies/dama/mockup-grey-front.png"}},
				{Color: "Gris", Size: "L", Design: "Amor", Price: models.NewMoneyFromInt(149000), Stock: 8, Images: models.StringArray{"hoodies/dama/mockup-grey-front.png"}},
			},
		},
		{
			ID:         2,
			Name:       "Buzo con capota Hoodie Caballero",
			Slug:       "buzo-con-capota-hoodie-caballero",
			Type:       constants.ProductTypePhysical,
			IsVariable: true,
			Category:   models.StringArray{"Ropa"},
			Description: "Buzo con capota en silueta clásica para caballero. Tejido suave y resistente, " +
				"pensado para el uso diario.",
			Price:  models.NewMoneyFromInt(139000),
			Stock:  0,
			Images: models.StringArray{"hoodies/caballero/mockup-black-front.png", "hoodies/caballero/mockup-black-back.png"},
			Rating: 5,
			Variants: []models.Variant{
				{Color: "Negro", Size: "XS", Design: "Perro DJoky", Price: models.NewMoneyFromInt(132000), Stock: 8, Images: models.StringArray{"hoodies/caballero/mockup-black-front.png"}},
				{Color: "Negro", Size: "S", Design: "Perro DJoky", Price: models.NewMoneyFromInt(135000), Stock: 12, Images: models.StringArray{"hoodies/caballero/mockup-black-front.png"}},
				{Color: "Negro", Size: "M", Design: "Perro DJoky", Price: models.NewMoneyFromInt(135000), Stock: 15, Images: models.StringArray{"hoodies/caballero/mockup-black-front.png"}},
				{Color: "Negro", Size: "L", Design: "Perro DJoky", Price: models.NewMoneyFromInt(139000), Stock: 10, Images: models.StringArray{"hoodies/caballero/mockup-black-front.png"}},
			},
		},
		{
			ID:          3,
			Name:        "Guía de estampado urbano (eBook)",
			Slug:        "guia-de-estampado-urbano-ebook",
			Type:        constants.ProductTypeDigital,
			IsVariable:  false,
			Category:    models.StringArray{"Productos Digitales"},
			Description: "Guía descargable en PDF con técnicas de estampado y cuidado de prendas.",
			Price:       models.NewMoneyFromInt(35000),
			Stock:       999,
			Images:      models.StringArray{"digital/guia-estampado-cover.png"},
			Rating:      5,
			DownloadURL: "https://files.goldenpolis.com/downloads/guia-estampado-urbano.pdf",
		},
	}
}
