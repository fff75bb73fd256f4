package trialbalance

// SampleRows returns a small bundled trial balance used by the demo endpoint
// and by local exploration. Amounts are MXN.
func SampleRows() []Row {
	return []Row{
		{ID: "row-1", Code: "101-001-0001", Name: "Caja y Efectivo", OpeningDebit: 82900.95, ClosingDebit: 82900.95},
		{ID: "row-2", Code: "102-001-0001", Name: "BBVA Bancomer M.N. 3810", OpeningDebit: 269952.85, PeriodDebit: 1247509.60, PeriodCredit: 1405442.13, ClosingDebit: 112020.32},
		{ID: "row-3", Code: "102-002-0001", Name: "BBVA Bancomer USD 6344", OpeningDebit: 743947.94, PeriodDebit: 1228050.96, PeriodCredit: 1646992.78, ClosingDebit: 325006.12},
		{ID: "row-4", Code: "104-001-0001", Name: "Duetto Research, Inc.", OpeningDebit: 21137.07, ClosingDebit: 21137.07},
		{ID: "row-5", Code: "201-001-0000", Name: "Proveedores Nacional (varios)", OpeningCredit: 283254.54, PeriodDebit: 259148.68, PeriodCredit: 323377.05, ClosingCredit: 347482.91},
		{ID: "row-6", Code: "203-003-0003", Name: "Paraty Hoteles Espana", OpeningCredit: 4473166.34, PeriodCredit: 88951.14, ClosingCredit: 4562117.48},
		{ID: "row-7", Code: "208-001-0000", Name: "IVA por pagar", OpeningCredit: 171173.60, PeriodDebit: 165656, PeriodCredit: 141381.90, ClosingCredit: 146899.50},
		{ID: "row-8", Code: "301-001-0001", Name: "Paraty Hoteles S.L", OpeningCredit: 49500, ClosingCredit: 49500},
		{ID: "row-9", Code: "401-001-0000", Name: "Ventas 16%", PeriodCredit: 1355730.16, ClosingCredit: 1355730.16},
		{ID: "row-10", Code: "601-000-0001", Name: "Sueldos y salarios", PeriodDebit: 312154.27, ClosingDebit: 312154.27},
		{ID: "row-11", Code: "701-002-0000", Name: "Perdida cambiaria", PeriodDebit: 120491.28, ClosingDebit: 120491.28},
		{ID: "row-12", Code: "702-002-0000", Name: "Utilidad cambiaria", PeriodCredit: 7544.04, ClosingCredit: 7544.04},
	}
}
