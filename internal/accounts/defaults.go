package accounts

import "github.com/cleared-dev/ledger/internal/model"

// DefaultChart returns the built-in NS 4102 chart of accounts, one category
// per account class.
func DefaultChart() []model.Category {
	return []model.Category{
		{
			ID:           "assets",
			Name:         "Eiendeler",
			Description:  "Anleggsmidler og omløpsmidler",
			AccountRange: "1000–1999",
			Color:        model.ColorBlue,
			Subcategories: []model.Subcategory{
				{ID: "fixed-assets", Name: "Varige driftsmidler", Accounts: []model.Account{
					{AccountID: "1200", Name: "Maskiner og anlegg"},
					{AccountID: "1250", Name: "Inventar"},
				}},
				{ID: "receivables", Name: "Fordringer", Accounts: []model.Account{
					{AccountID: "1500", Name: "Kundefordringer", Description: "Utestående fra kunder"},
					{AccountID: "1570", Name: "Andre kortsiktige fordringer"},
				}},
				{ID: "cash", Name: "Bankinnskudd og kontanter", Accounts: []model.Account{
					{AccountID: "1900", Name: "Kontanter"},
					{AccountID: "1920", Name: "Bankinnskudd"},
				}},
			},
		},
		{
			ID:           "equity-liabilities",
			Name:         "Egenkapital og gjeld",
			Description:  "Egenkapital, langsiktig og kortsiktig gjeld",
			AccountRange: "2000–2999",
			Color:        model.ColorRed,
			Subcategories: []model.Subcategory{
				{ID: "equity", Name: "Egenkapital", Accounts: []model.Account{
					{AccountID: "2000", Name: "Aksjekapital"},
					{AccountID: "2050", Name: "Annen egenkapital"},
				}},
				{ID: "current-liabilities", Name: "Kortsiktig gjeld", Accounts: []model.Account{
					{AccountID: "2400", Name: "Leverandørgjeld", Description: "Skyldig til leverandører"},
					{AccountID: "2600", Name: "Skattetrekk"},
					{AccountID: "2920", Name: "Skyldig lønn"},
				}},
				{ID: "public-duties", Name: "Skyldige offentlige avgifter", Accounts: []model.Account{
					{AccountID: "2700", Name: "Utgående merverdiavgift"},
					{AccountID: "2710", Name: "Inngående merverdiavgift"},
					{AccountID: "2740", Name: "Oppgjørskonto merverdiavgift"},
					{AccountID: "2770", Name: "Skyldig arbeidsgiveravgift"},
				}},
			},
		},
		{
			ID:           "revenue",
			Name:         "Salgs- og driftsinntekt",
			Description:  "Inntekter fra salg av varer og tjenester",
			AccountRange: "3000–3999",
			Color:        model.ColorGreen,
			Subcategories: []model.Subcategory{
				{ID: "sales", Name: "Salgsinntekter", Accounts: []model.Account{
					{AccountID: "3000", Name: "Salgsinntekt, avgiftspliktig"},
					{AccountID: "3100", Name: "Salgsinntekt, avgiftsfri"},
				}},
				{ID: "other-revenue", Name: "Annen driftsinntekt", Accounts: []model.Account{
					{AccountID: "3900", Name: "Annen driftsrelatert inntekt"},
				}},
			},
		},
		{
			ID:           "cost-of-goods",
			Name:         "Varekostnad",
			Description:  "Innkjøp av varer for videresalg",
			AccountRange: "4000–4999",
			Color:        model.ColorOrange,
			Subcategories: []model.Subcategory{
				{ID: "purchases", Name: "Varekjøp", Accounts: []model.Account{
					{AccountID: "4000", Name: "Innkjøp av råvarer og halvfabrikata"},
					{AccountID: "4300", Name: "Innkjøp av varer for videresalg"},
				}},
			},
		},
		{
			ID:           "payroll",
			Name:         "Lønnskostnad",
			Description:  "Lønn, arbeidsgiveravgift og andre personalkostnader",
			AccountRange: "5000–5999",
			Color:        model.ColorViolet,
			Subcategories: []model.Subcategory{
				{ID: "salaries", Name: "Lønn", Accounts: []model.Account{
					{AccountID: "5000", Name: "Lønn til ansatte"},
					{AccountID: "5400", Name: "Arbeidsgiveravgift"},
				}},
			},
		},
		{
			ID:           "operating-expenses",
			Name:         "Annen driftskostnad",
			Description:  "Avskrivninger, lokaler, kontor og andre driftskostnader",
			AccountRange: "6000–7999",
			Color:        model.ColorAmber,
			Subcategories: []model.Subcategory{
				{ID: "depreciation", Name: "Avskrivninger", Accounts: []model.Account{
					{AccountID: "6000", Name: "Avskrivning på varige driftsmidler"},
				}},
				{ID: "office", Name: "Kontor og IT", Accounts: []model.Account{
					{AccountID: "6300", Name: "Leie lokale"},
					{AccountID: "6800", Name: "Kontorrekvisita"},
					{AccountID: "6940", Name: "Programvare og lisenser"},
				}},
				{ID: "travel", Name: "Reise", Accounts: []model.Account{
					{AccountID: "7140", Name: "Reisekostnad, ikke oppgavepliktig"},
				}},
			},
		},
		{
			ID:           "financial",
			Name:         "Finansinntekt og -kostnad",
			Description:  "Renter, agio og disagio",
			AccountRange: "8000–8999",
			Color:        model.ColorSlate,
			Subcategories: []model.Subcategory{
				{ID: "financial-items", Name: "Finansposter", Accounts: []model.Account{
					{AccountID: "8040", Name: "Renteinntekt"},
					{AccountID: "8140", Name: "Rentekostnad"},
				}},
			},
		},
	}
}
