package seed

import (
	"zabudowy-service/internal/domain/catalog"
	domainproject "zabudowy-service/internal/domain/project"
)

var brandFixtures = []brandFixture{
	{brand: catalog.VehicleBrand{
		Name:               "MAN",
		Slug:               "man",
		FullName:           "MAN Truck & Bus",
		Description:        "Zabudowy do pojazdów MAN TGM, TGL, TGS i TGX. Kompleksowe wyposażenie kabin dla straży pożarnej.",
		LongDescription:    "Specjalizujemy się w zabudowach do pojazdów MAN wykorzystywanych przez jednostki ratownicze. Oferujemy półki, podesty, mocowania sprzętu i kompletne wyposażenie kabin dla wszystkich generacji pojazdów MAN od 2005 roku.",
		ContentDescription: "Pojazdy MAN to jedne z najczęściej wybieranych pojazdów przez polskie jednostki straży pożarnej. Nasze zabudowy są projektowane z myślą o ergonomii pracy strażaka i maksymalnym wykorzystaniu przestrzeni.",
		Type:               catalog.BrandTypeTruck,
		Models:             `[{"name":"TGM","years":"2007-2024"},{"name":"TGL","years":"2005-2024"},{"name":"TGS","years":"2007-2024"},{"name":"TGX","years":"2007-2024"}]`,
		Gallery:            "[]",
		MetaTitle:          "Zabudowy MAN | TGM, TGL, TGS - Pojazdy strażackie",
		MetaDescription:    "Profesjonalne zabudowy do pojazdów MAN dla straży pożarnej. Półki, podesty, boksy.",
		SortOrder:          1,
		Published:          true,
	}},
	{brand: catalog.VehicleBrand{
		Name:               "Scania",
		Slug:               "scania",
		FullName:           "Scania AB",
		Description:        "Wyposażenie kabin Scania P, G, R i S-Series. Szwedzka jakość dla polskich służb ratunkowych.",
		LongDescription:    "Oferujemy pełen zakres zabudów do pojazdów Scania wszystkich serii. Od kompaktowych kabin P-Series po przestronne S-Series.",
		ContentDescription: "Dedykowane półki idealnie wpasowują się w krzywiznę kabin Scania, a systemy mocowań wykorzystują fabryczne punkty montażowe.",
		Type:               catalog.BrandTypeTruck,
		Models:             `[{"name":"P-Series","years":"2004-2024"},{"name":"G-Series","years":"2007-2024"},{"name":"R-Series","years":"2004-2024"},{"name":"S-Series","years":"2016-2024"}]`,
		Gallery:            "[]",
		MetaTitle:          "Zabudowy Scania | P, G, R, S Series",
		MetaDescription:    "Zabudowy do kabin Scania dla straży pożarnej.",
		SortOrder:          2,
		Published:          true,
	}},
	{brand: catalog.VehicleBrand{
		Name:               "Volvo",
		Slug:               "volvo",
		FullName:           "Volvo Trucks",
		Description:        "Półki i zabudowy do Volvo FH, FM, FMX, FE i FL. Skandynawskie standardy bezpieczeństwa.",
		LongDescription:    "Zabudowy dla pojazdów Volvo projektujemy z uwzględnieniem filozofii marki. Obsługujemy wszystkie serie od kompaktowych FL po flagowe FH.",
		ContentDescription: "Każda półka jest testowana pod kątem zachowania podczas kolizji, a mocowania sprzętu spełniają najsurowsze normy.",
		Type:               catalog.BrandTypeTruck,
		Models:             `[{"name":"FH","years":"1993-2024"},{"name":"FM","years":"1998-2024"},{"name":"FMX","years":"2010-2024"},{"name":"FE","years":"2006-2024"},{"name":"FL","years":"2006-2024"}]`,
		Gallery:            "[]",
		MetaTitle:          "Zabudowy Volvo | FH, FM, FMX - Straż pożarna",
		MetaDescription:    "Półki i zabudowy do pojazdów Volvo dla służb ratunkowych.",
		SortOrder:          3,
		Published:          true,
	}},
	{brand: catalog.VehicleBrand{
		Name:               "Mercedes-Benz",
		Slug:               "mercedes",
		FullName:           "Mercedes-Benz Trucks",
		Description:        "Zabudowy do Mercedes Atego, Actros, Arocs i Econic. Niemiecka precyzja dla profesjonalistów.",
		LongDescription:    "Mercedes-Benz Atego to najpopularniejszy pojazd strażacki w Polsce. Nasze zabudowy są dedykowane wszystkim generacjom tego modelu.",
		ContentDescription: "Nasze produkty powstają z dokładnością, która gwarantuje idealne dopasowanie. Szczególnie bogata jest oferta dla Atego.",
		Type:               catalog.BrandTypeTruck,
		Models:             `[{"name":"Atego","years":"1998-2024"},{"name":"Actros","years":"1996-2024"},{"name":"Arocs","years":"2013-2024"},{"name":"Econic","years":"1998-2024"}]`,
		Gallery:            "[]",
		MetaTitle:          "Zabudowy Mercedes-Benz | Atego, Actros",
		MetaDescription:    "Zabudowy do pojazdów Mercedes-Benz dla straży.",
		SortOrder:          4,
		Published:          true,
	}},
	{brand: catalog.VehicleBrand{
		Name:               "Renault Trucks",
		Slug:               "renault",
		FullName:           "Renault Trucks",
		Description:        "Wyposażenie do Renault D, C, K i T-Series. Funkcjonalne rozwiązania w rozsądnej cenie.",
		LongDescription:    "Renault Trucks oferuje pojazdy o świetnym stosunku jakości do ceny. Nasze zabudowy kontynuują tę filozofię.",
		ContentDescription: "Oferujemy kompletne wyposażenie dla wszystkich serii, od miejskich D-Series po terenowe K-Series.",
		Type:               catalog.BrandTypeTruck,
		Models:             `[{"name":"D-Series","years":"2013-2024"},{"name":"C-Series","years":"2013-2024"},{"name":"K-Series","years":"2013-2024"},{"name":"T-Series","years":"2013-2024"}]`,
		Gallery:            "[]",
		MetaTitle:          "Zabudowy Renault Trucks | D, C, K, T",
		MetaDescription:    "Wyposażenie do pojazdów Renault Trucks.",
		SortOrder:          5,
		Published:          true,
	}},
	{brand: catalog.VehicleBrand{
		Name:               "Toyota Hilux",
		Slug:               "toyota-hilux",
		FullName:           "Toyota Hilux",
		Description:        "Zabudowy skrzyni ładunkowej Toyota Hilux. Hardtopy, platformy i boksy dla służb ratunkowych.",
		LongDescription:    "Toyota Hilux to legendarny pickup wybierany przez jednostki do zadań terenowych. Oferujemy kompletne zabudowy zachowujące pełne możliwości off-road.",
		ContentDescription: "Oferujemy hardtopy aluminiowe i kompozytowe, zabudowy typu service body z boksami narzędziowymi oraz platformy dachowe.",
		Type:               catalog.BrandTypePickup,
		Models:             `[{"name":"Hilux AN120","years":"2015-2020"},{"name":"Hilux AN130","years":"2020-2024"}]`,
		Gallery:            "[]",
		MetaTitle:          "Zabudowy Toyota Hilux | Hardtopy",
		MetaDescription:    "Zabudowy do Toyota Hilux dla straży.",
		SortOrder:          10,
		Published:          true,
	}},
}

var categoryFixtures = []categoryFixture{
	{
		category: catalog.Category{
			Name:               "Zabudowy wozów strażackich",
			Slug:               "wozy-strazackie",
			Icon:               "Truck",
			Color:              "#dc2626",
			Description:        "Kompletne zabudowy wozów strażackich. Skrytki, półki wysuwane, systemy mocowań i oświetlenie.",
			LongDescription:    "Realizujemy kompleksowe zabudowy wozów strażackich od projektu po montaż. Specjalizujemy się w pojazdach dla PSP i OSP.",
			ContentDescription: "Wykonujemy skrytki aluminiowe z półkami wysuwnymi, systemy mocowań sprzętu zgodne z CNBOP, instalacje elektryczne i oświetlenie LED.",
			Features:           `["Skrytki aluminiowe anodowane","Półki wysuwne pod sprzęt ratowniczy","Systemy mocowań zgodne z DIN EN 1846","Oświetlenie LED robocze i sceniczne"]`,
			Benefits:           `["Kompleksowa realizacja od projektu po montaż","Certyfikaty CNBOP-PIB","Gwarancja 36 miesięcy"]`,
			Specifications:     `[{"label":"Materiał","value":"Aluminium 3-5mm anodowane"},{"label":"Certyfikaty","value":"CNBOP-PIB, KDR"},{"label":"Gwarancja","value":"36 miesięcy"}]`,
			Gallery:            "[]",
			MetaTitle:          "Zabudowy wozów strażackich | PSP i OSP",
			MetaDescription:    "Kompleksowe zabudowy wozów strażackich z certyfikatami CNBOP.",
			SortOrder:          0,
			Published:          true,
		},
		brandSlugs: []string{"man", "scania", "volvo", "mercedes", "renault"},
	},
	{
		category: catalog.Category{
			Name:               "Półki do kabin",
			Slug:               "polki-do-kabin",
			Icon:               "LayoutGrid",
			Color:              "#3b82f6",
			Description:        "Dedykowane półki górne, boczne i pod siedzenia. Idealne dopasowanie do każdej marki pojazdu.",
			LongDescription:    "Półki projektowane indywidualnie dla każdego modelu kabiny. Wykonane z aluminium lub stali, malowane proszkowo w kolorze wnętrza.",
			ContentDescription: "Precyzyjnie dopasowane do każdej generacji kabin MAN, Scania, Volvo, Mercedes i Renault. Montaż bezinwazyjny, obciążenie do 30 kg.",
			Features:           `["Półki górne na całą szerokość kabiny","Półki boczne z przegródkami","Półki pod siedzenia pasażera","Opcjonalne oświetlenie LED"]`,
			Benefits:           `["Idealne dopasowanie do modelu kabiny","Montaż bez wiercenia","Malowanie w kolorze wnętrza"]`,
			Specifications:     `[{"label":"Materiał","value":"Aluminium 2mm / Stal nierdzewna"},{"label":"Obciążenie","value":"Do 30 kg"},{"label":"Gwarancja","value":"24 miesiące"}]`,
			Gallery:            "[]",
			MetaTitle:          "Półki do kabin | MAN, Scania, Volvo, Mercedes",
			MetaDescription:    "Dedykowane półki do kabin pojazdów ciężarowych.",
			SortOrder:          1,
			Published:          true,
		},
		brandSlugs: []string{"man", "scania", "volvo", "mercedes", "renault"},
	},
	{
		category: catalog.Category{
			Name:               "Zabudowy pickup",
			Slug:               "zabudowy-pickup",
			Icon:               "Car",
			Color:              "#22c55e",
			Description:        "Hardtopy, platformy i boksy do pickupów. Rozwiązania dla grup terenowych i ratowniczych.",
			LongDescription:    "Kompletne zabudowy skrzyń ładunkowych pickupów zachowujące możliwości terenowe pojazdu.",
			ContentDescription: "Oferujemy hardtopy z dostępem bocznym, platformy dachowe, systemy szuflad i mocowania wyciągarek.",
			Features:           `["Hardtopy aluminiowe i kompozytowe","Platformy dachowe","Systemy szuflad","Mocowania wyciągarek"]`,
			Benefits:           `["Zachowane możliwości terenowe","Szybki dostęp do sprzętu","Montaż bez spawania"]`,
			Specifications:     `[{"label":"Materiał","value":"Aluminium / Kompozyt"},{"label":"Gwarancja","value":"24 miesiące"}]`,
			Gallery:            "[]",
			MetaTitle:          "Zabudowy pickup | Hardtopy i platformy",
			MetaDescription:    "Zabudowy skrzyń ładunkowych pickupów dla służb.",
			SortOrder:          2,
			Published:          true,
		},
		brandSlugs: []string{"toyota-hilux"},
	},
}

var projectFixtures = []projectFixture{
	{
		project: domainproject.Project{
			Title:        "MAN TGM 18.290 dla OSP Wieliczka",
			Slug:         "man-tgm-osp-wieliczka",
			Description:  "Kompleksowa zabudowa średniego wozu ratowniczo-gaśniczego na podwoziu MAN TGM.",
			Content:      "Realizacja obejmowała kompletne wyposażenie kabiny załogi i przedziału sprzętowego.",
			VehicleBrand: "MAN",
			VehicleModel: "TGM 18.290",
			Year:         2024,
			Featured:     true,
			Published:    true,
		},
		categorySlug: "wozy-strazackie",
	},
	{
		project: domainproject.Project{
			Title:        "Półki do Scania P280 PSP Kraków",
			Slug:         "polki-scania-psp-krakow",
			Description:  "Zestaw dedykowanych półek do kabiny Scania P-Series dla JRG nr 5 w Krakowie.",
			Content:      "Wykonaliśmy komplet półek górnych i bocznych z oświetleniem LED.",
			VehicleBrand: "Scania",
			VehicleModel: "P280",
			Year:         2024,
			Featured:     true,
			Published:    true,
		},
		categorySlug: "polki-do-kabin",
	},
	{
		project: domainproject.Project{
			Title:        "Zabudowa Toyota Hilux dla GOPR",
			Slug:         "toyota-hilux-gopr",
			Description:  "Hardtop i wyposażenie dodatkowe Toyota Hilux dla Grupy Beskidzkiej GOPR.",
			Content:      "Zabudowa obejmowała hardtop z dostępem bocznym, platformę dachową i wyciągarkę.",
			VehicleBrand: "Toyota",
			VehicleModel: "Hilux",
			Year:         2023,
			Featured:     true,
			Published:    true,
		},
		categorySlug: "zabudowy-pickup",
	},
}

var settingFixtures = []struct {
	key   string
	value string
}{
	{"site_name", "Steel Solution"},
	{"site_description", "Profesjonalne zabudowy pojazdów dla straży pożarnej"},
	{"contact_email", "kontakt@steelsolution.pl"},
	{"contact_phone", "+48 690 418 119"},
	{"address", "Leśna 12, 64-020 Betkowo"},
}
