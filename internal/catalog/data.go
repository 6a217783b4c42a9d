package catalog

import "github.com/shopspring/decimal"

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// Products returns the static FnF veterinary price list. Loaded once at
// startup and never mutated; amounts are in Taka.
func Products() []Product {
	return []Product{
		{ID: 1, Name: "Renacal Vet", Category: CategoryBolus, PackSize: "4x4's", TP: d("240.00"), VAT: d("0.00"), TPWithVAT: d("240.00"), MRP: d("320.00"), Bonus: "8+1"},
		{ID: 2, Name: "Zinc Vet", Category: CategoryBolus, PackSize: "4x8's", TP: d("180.00"), VAT: d("0.00"), TPWithVAT: d("180.00"), MRP: d("256.00"), Bonus: "10+1"},
		{ID: 3, Name: "Ciprocin Vet", Category: CategoryBolus, PackSize: "2x10's", TP: d("350.00"), VAT: d("17.50"), TPWithVAT: d("367.50"), MRP: d("450.00"), Bonus: "8+1, 40+6"},
		{ID: 4, Name: "Trilev Vet", Category: CategoryBolus, PackSize: "4x4's", TP: d("260.00"), VAT: d("13.00"), TPWithVAT: d("273.00"), MRP: d("340.00"), Bonus: "N/A"},
		{ID: 5, Name: "Fenvet", Category: CategoryBolus, PackSize: "10x10's", TP: d("520.00"), VAT: d("0.00"), TPWithVAT: d("520.00"), MRP: d("700.00"), Bonus: "5+1, 20+5"},
		{ID: 6, Name: "Renamycin 100", Category: CategoryInjection, PackSize: "100 ml", TP: d("145.00"), VAT: d("7.25"), TPWithVAT: d("152.25"), MRP: d("190.00"), Bonus: "12+1"},
		{ID: 7, Name: "Tylosin Vet", Category: CategoryInjection, PackSize: "30 ml", TP: d("95.00"), VAT: d("4.75"), TPWithVAT: d("99.75"), MRP: d("130.00"), Bonus: "N/A"},
		{ID: 8, Name: "A-Sol Vet", Category: CategoryInjection, PackSize: "100 ml", TP: d("120.00"), VAT: d("0.00"), TPWithVAT: d("120.00"), MRP: d("160.00"), Bonus: "10+2"},
		{ID: 9, Name: "Keto-Vet", Category: CategoryInjection, PackSize: "10 ml", TP: d("68.00"), VAT: d("3.40"), TPWithVAT: d("71.40"), MRP: d("90.00"), Bonus: "N/A"},
		{ID: 10, Name: "Calphos Vet", Category: CategoryLiquid, PackSize: "1 Litre", TP: d("420.00"), VAT: d("21.00"), TPWithVAT: d("441.00"), MRP: d("560.00"), Bonus: "6+1"},
		{ID: 11, Name: "Vermic Vet", Category: CategoryLiquid, PackSize: "100 ml", TP: d("85.00"), VAT: d("0.00"), TPWithVAT: d("85.00"), MRP: d("115.00"), Bonus: "8+1, 24+4"},
		{ID: 12, Name: "Livatone", Category: CategoryLiquid, PackSize: "500 ml", TP: d("210.00"), VAT: d("10.50"), TPWithVAT: d("220.50"), MRP: d("280.00"), Bonus: "N/A"},
		{ID: 13, Name: "Stresol Vet", Category: CategoryLiquid, PackSize: "250 ml", TP: d("150.00"), VAT: d("7.50"), TPWithVAT: d("157.50"), MRP: d("200.00"), Bonus: "10+1"},
		{ID: 14, Name: "Electromin", Category: CategoryPowder, PackSize: "100 gm", TP: d("55.00"), VAT: d("0.00"), TPWithVAT: d("55.00"), MRP: d("75.00"), Bonus: "12+2"},
		{ID: 15, Name: "Amodis Vet", Category: CategoryPowder, PackSize: "500 gm", TP: d("320.00"), VAT: d("16.00"), TPWithVAT: d("336.00"), MRP: d("420.00"), Bonus: "N/A"},
		{ID: 16, Name: "Doxivet", Category: CategoryPowder, PackSize: "100 gm", TP: d("140.00"), VAT: d("7.00"), TPWithVAT: d("147.00"), MRP: d("185.00"), Bonus: "8+1"},
		{ID: 17, Name: "Boost Cal", Category: CategoryPowder, PackSize: "1 kg", TP: d("380.00"), VAT: d("0.00"), TPWithVAT: d("380.00"), MRP: d("500.00"), Bonus: "100 (Flat Rate)"},
		{ID: 18, Name: "ND+IBD Vaccine", Category: CategoryVaccine, PackSize: "250 Dose", TP: d("1250.00"), VAT: d("62.50"), TPWithVAT: d("1312.50"), MRP: d("1600.00"), Bonus: "8+1"},
		{ID: 19, Name: "ND+IBD Vaccine", Category: CategoryVaccine, PackSize: "1000 Dose", TP: d("3800.00"), VAT: d("190.00"), TPWithVAT: d("3990.00"), MRP: d("4800.00"), Bonus: "5+1, 20+5"},
		{ID: 20, Name: "BCRDV Vaccine", Category: CategoryVaccine, PackSize: "100 Dose", TP: d("90.00"), VAT: d("0.00"), TPWithVAT: d("90.00"), MRP: d("120.00"), Bonus: "N/A"},
		{ID: 21, Name: "Fowl Pox Vaccine", Category: CategoryVaccine, PackSize: "200 Dose", TP: d("160.00"), VAT: d("8.00"), TPWithVAT: d("168.00"), MRP: d("210.00"), Bonus: "10+1"},
		{ID: 22, Name: "Gumboro Vaccine", Category: CategoryVaccine, PackSize: "500 Dose", TP: d("480.00"), VAT: d("24.00"), TPWithVAT: d("504.00"), MRP: d("620.00"), Bonus: "100 (Flat Rate)"},
	}
}
