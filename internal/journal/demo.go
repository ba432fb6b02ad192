package journal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledger/internal/model"
)

func debitLine(lineID, accountID, name string, amount int64, vat model.VATCode, vatAmount int64, desc string) model.JournalEntryLine {
	a := decimal.NewFromInt(amount)
	return model.JournalEntryLine{
		LineID:      lineID,
		AccountID:   accountID,
		AccountName: name,
		Debit:       decimal.NewNullDecimal(a),
		Amount:      a,
		VATCode:     vat,
		VATAmount:   decimal.NewFromInt(vatAmount),
		Description: desc,
	}
}

func creditLine(lineID, accountID, name string, amount int64, vat model.VATCode, vatAmount int64, desc string) model.JournalEntryLine {
	a := decimal.NewFromInt(amount)
	return model.JournalEntryLine{
		LineID:      lineID,
		AccountID:   accountID,
		AccountName: name,
		Credit:      decimal.NewNullDecimal(a),
		Amount:      a,
		VATCode:     vat,
		VATAmount:   decimal.NewFromInt(vatAmount),
		Description: desc,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stamp(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

// DemoEntries returns the five demonstration vouchers for January and
// February 2024.
func DemoEntries() []model.JournalEntry {
	return []model.JournalEntry{
		{
			EntryID:        "B-2024-001",
			EntryType:      model.EntrySale,
			Date:           day(2024, time.January, 15),
			CounterpartyID: "K-001",
			Reference:      "Faktura 1001",
			CreatedAt:      stamp(2024, time.January, 15, 10, 30),
			CreatedBy:      "Ole Hansen",
			ProjectID:      "P-001",
			Lines: []model.JournalEntryLine{
				debitLine("1", "1500", "Kundefordringer", 12500, "0", 0, "Faktura til kunde"),
				creditLine("2", "3000", "Salgsinntekt, avgiftspliktig", 10000, "1", 2500, "Salg av konsulenttjenester"),
				creditLine("3", "2700", "Utgående merverdiavgift", 2500, "1", 2500, "MVA 25%"),
			},
		},
		{
			EntryID:        "B-2024-002",
			EntryType:      model.EntryPurchase,
			Date:           day(2024, time.January, 18),
			CounterpartyID: "L-005",
			Reference:      "Leverandørfaktura 5521",
			DocumentURL:    "/dokumenter/kvitteringer/5521.pdf",
			CreatedAt:      stamp(2024, time.January, 18, 14, 15),
			CreatedBy:      "Kari Olsen",
			IsCrossed:      true,
			Lines: []model.JournalEntryLine{
				debitLine("1", "6800", "Kontorrekvisita", 2400, "3", 600, "Kontormateriell"),
				debitLine("2", "2710", "Inngående merverdiavgift", 600, "3", 600, "MVA 25%"),
				creditLine("3", "2400", "Leverandørgjeld", 3000, "0", 0, "Skyldig leverandør"),
			},
		},
		{
			EntryID:   "B-2024-003",
			EntryType: model.EntryBank,
			Date:      day(2024, time.January, 20),
			Reference: "Bankoverføring",
			CreatedAt: stamp(2024, time.January, 20, 9, 0),
			CreatedBy: "System",
			IsOpen:    true,
			Lines: []model.JournalEntryLine{
				debitLine("1", "1920", "Bankinnskudd", 12500, "0", 0, "Innbetaling fra kunde"),
				creditLine("2", "1500", "Kundefordringer", 12500, "0", 0, "Motregning kundefordring"),
			},
		},
		{
			EntryID:   "B-2024-004",
			EntryType: model.EntrySalary,
			Date:      day(2024, time.January, 31),
			Reference: "Lønnskjøring januar",
			CreatedAt: stamp(2024, time.January, 31, 12, 0),
			CreatedBy: "Kari Olsen",
			Lines: []model.JournalEntryLine{
				debitLine("1", "5000", "Lønn til ansatte", 45000, "0", 0, "Bruttolønn"),
				debitLine("2", "5400", "Arbeidsgiveravgift", 6345, "0", 0, "AGA 14.1%"),
				creditLine("3", "2600", "Skattetrekk", 13500, "0", 0, "Forskuddstrekk"),
				creditLine("4", "2770", "Skyldig arbeidsgiveravgift", 6345, "0", 0, "Skyldig AGA"),
				creditLine("5", "2920", "Skyldig lønn", 31500, "0", 0, "Nettolønn til utbetaling"),
			},
		},
		{
			EntryID:        "B-2024-005",
			EntryType:      model.EntryPurchase,
			Date:           day(2024, time.February, 5),
			CounterpartyID: "L-012",
			Reference:      "Faktura 8842",
			CreatedAt:      stamp(2024, time.February, 5, 11, 0),
			CreatedBy:      "Ole Hansen",
			IsOpen:         true,
			Lines: []model.JournalEntryLine{
				debitLine("1", "6940", "Programvare og lisenser", 4800, "3", 1200, "Årsabonnement regnskapssystem"),
				debitLine("2", "2710", "Inngående merverdiavgift", 1200, "3", 1200, "MVA 25%"),
				creditLine("3", "2400", "Leverandørgjeld", 6000, "0", 0, "Skyldig leverandør"),
			},
		},
	}
}
