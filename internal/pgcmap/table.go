package pgcmap

import tb "github.com/balanza-dev/balanza/internal/trialbalance"

// table maps source account-code prefixes (Mexican chart) to their PGC
// classification. Keys are matched longest-prefix-first over dash-segmented
// codes; see Find. The table is never mutated at runtime.
var table = map[string]tb.Classification{
	"101":          {TargetCode: "570", TargetName: "Caja, euros", Group: tb.GroupAssetCurrent, Subgroup: tb.SubgroupCashEquivalents},
	"102-001":      {TargetCode: "572", TargetName: "Bancos e instituciones de credito c/c vista, euros", Group: tb.GroupAssetCurrent, Subgroup: tb.SubgroupCashEquivalents},
	"102-002":      {TargetCode: "573", TargetName: "Bancos e instituciones de credito c/c vista, moneda extranjera", Group: tb.GroupAssetCurrent, Subgroup: tb.SubgroupCashEquivalents},
	"104-001":      {TargetCode: "430", TargetName: "Clientes", Group: tb.GroupAssetCurrent, Subgroup: tb.SubgroupTradeReceivables},
	"104-002":      {TargetCode: "4304", TargetName: "Clientes, moneda extranjera", Group: tb.GroupAssetCurrent, Subgroup: tb.SubgroupTradeReceivables},
	"108-001":      {TargetCode: "460", TargetName: "Anticipos de remuneraciones", Group: tb.GroupAssetCurrent, Subgroup: tb.SubgroupOtherReceivables},
	"108-004":      {TargetCode: "440", TargetName: "Deudores", Group: tb.GroupAssetCurrent, Subgroup: tb.SubgroupOtherReceivables},
	"110":          {TargetCode: "480", TargetName: "Gastos anticipados", Group: tb.GroupAssetCurrent, Subgroup: tb.SubgroupAccruals},
	"111":          {TargetCode: "4709", TargetName: "H.P. deudora por devolucion de impuestos", Group: tb.GroupAssetCurrent, Subgroup: tb.SubgroupPublicAdmin},
	"112":          {TargetCode: "473", TargetName: "H.P. retenciones y pagos a cuenta", Group: tb.GroupAssetCurrent, Subgroup: tb.SubgroupPublicAdmin},
	"115":          {TargetCode: "4720", TargetName: "H.P. IVA soportado", Group: tb.GroupAssetCurrent, Subgroup: tb.SubgroupPublicAdmin},
	"116":          {TargetCode: "4720", TargetName: "H.P. IVA soportado (pte. de pago)", Group: tb.GroupAssetCurrent, Subgroup: tb.SubgroupPublicAdmin},
	"117":          {TargetCode: "407", TargetName: "Anticipos a proveedores", Group: tb.GroupAssetCurrent, Subgroup: tb.SubgroupTradeReceivables},
	"122":          {TargetCode: "218", TargetName: "Elementos de transporte", Group: tb.GroupAssetNonCurrent, Subgroup: tb.SubgroupTangibleAssets},
	"123":          {TargetCode: "216", TargetName: "Mobiliario", Group: tb.GroupAssetNonCurrent, Subgroup: tb.SubgroupTangibleAssets},
	"124":          {TargetCode: "217", TargetName: "Equipos para procesos de informacion", Group: tb.GroupAssetNonCurrent, Subgroup: tb.SubgroupTangibleAssets},
	"135-003":      {TargetCode: "2818", TargetName: "Amort. acum. elementos de transporte", Group: tb.GroupAssetNonCurrent, Subgroup: tb.SubgroupAccumDepreciation},
	"135-004":      {TargetCode: "2816", TargetName: "Amort. acum. mobiliario", Group: tb.GroupAssetNonCurrent, Subgroup: tb.SubgroupAccumDepreciation},
	"135-005":      {TargetCode: "2817", TargetName: "Amort. acum. equipos proceso informacion", Group: tb.GroupAssetNonCurrent, Subgroup: tb.SubgroupAccumDepreciation},
	"142":          {TargetCode: "260", TargetName: "Fianzas constituidas a largo plazo", Group: tb.GroupAssetNonCurrent, Subgroup: tb.SubgroupLTInvestments},
	"201-001":      {TargetCode: "400", TargetName: "Proveedores", Group: tb.GroupLiabilityCurrent, Subgroup: tb.SubgroupTradePayables},
	"201-002":      {TargetCode: "4004", TargetName: "Proveedores, moneda extranjera", Group: tb.GroupLiabilityCurrent, Subgroup: tb.SubgroupTradePayables},
	"203-003-001":  {TargetCode: "410", TargetName: "Acreedores por prestaciones de servicios", Group: tb.GroupLiabilityCurrent, Subgroup: tb.SubgroupOtherPayables},
	"203-003-002":  {TargetCode: "5530", TargetName: "Socios, c/c (empresas del grupo)", Group: tb.GroupLiabilityCurrent, Subgroup: tb.SubgroupGroupCompaniesST},
	"203-003-003":  {TargetCode: "5530", TargetName: "Socios, c/c (empresas del grupo)", Group: tb.GroupLiabilityCurrent, Subgroup: tb.SubgroupGroupCompaniesST},
	"204":          {TargetCode: "438", TargetName: "Anticipos de clientes", Group: tb.GroupLiabilityCurrent, Subgroup: tb.SubgroupTradePayables},
	"206":          {TargetCode: "4770", TargetName: "H.P. IVA repercutido", Group: tb.GroupLiabilityCurrent, Subgroup: tb.SubgroupPublicAdmin},
	"207":          {TargetCode: "4770", TargetName: "H.P. IVA repercutido (pte. cobro)", Group: tb.GroupLiabilityCurrent, Subgroup: tb.SubgroupPublicAdmin},
	"208-001":      {TargetCode: "4750", TargetName: "H.P. acreedora por IVA", Group: tb.GroupLiabilityCurrent, Subgroup: tb.SubgroupPublicAdmin},
	"208-003":      {TargetCode: "4752", TargetName: "H.P. acreedora por impuesto sobre sociedades", Group: tb.GroupLiabilityCurrent, Subgroup: tb.SubgroupPublicAdmin},
	"208-007":      {TargetCode: "476", TargetName: "Organismos de la Seg. Social acreedores", Group: tb.GroupLiabilityCurrent, Subgroup: tb.SubgroupPublicAdmin},
	"210-001":      {TargetCode: "4751", TargetName: "H.P. acreedora por retenciones practicadas", Group: tb.GroupLiabilityCurrent, Subgroup: tb.SubgroupPublicAdmin},
	"210-003":      {TargetCode: "4751", TargetName: "H.P. acreedora por retenciones practicadas", Group: tb.GroupLiabilityCurrent, Subgroup: tb.SubgroupPublicAdmin},
	"210-004":      {TargetCode: "4751", TargetName: "H.P. acreedora por retenciones practicadas", Group: tb.GroupLiabilityCurrent, Subgroup: tb.SubgroupPublicAdmin},
	"210-008":      {TargetCode: "476", TargetName: "Organismos de la Seg. Social acreedores", Group: tb.GroupLiabilityCurrent, Subgroup: tb.SubgroupPublicAdmin},
	"210-010":      {TargetCode: "476", TargetName: "Organismos de la Seg. Social acreedores", Group: tb.GroupLiabilityCurrent, Subgroup: tb.SubgroupPublicAdmin},
	"212":          {TargetCode: "465", TargetName: "Remuneraciones pendientes de pago", Group: tb.GroupLiabilityCurrent, Subgroup: tb.SubgroupOtherLiabilities},
	"213":          {TargetCode: "171", TargetName: "Deudas a largo plazo", Group: tb.GroupLiabilityNonCurrent, Subgroup: tb.SubgroupLTDebts},
	"301-001":      {TargetCode: "100", TargetName: "Capital social", Group: tb.GroupEquity, Subgroup: tb.SubgroupOwnFunds},
	"301-004":      {TargetCode: "1030", TargetName: "Socios por desembolsos no exigidos, capital social", Group: tb.GroupEquity, Subgroup: tb.SubgroupOwnFunds},
	"302":          {TargetCode: "112", TargetName: "Reserva legal", Group: tb.GroupEquity, Subgroup: tb.SubgroupOwnFunds},
	"303":          {TargetCode: "129", TargetName: "Resultado del ejercicio", Group: tb.GroupEquity, Subgroup: tb.SubgroupOwnFunds},
	"304-001":      {TargetCode: "120", TargetName: "Remanente", Group: tb.GroupEquity, Subgroup: tb.SubgroupOwnFunds},
	"304-002":      {TargetCode: "121", TargetName: "Resultados negativos de ejercicios anteriores", Group: tb.GroupEquity, Subgroup: tb.SubgroupOwnFunds},
	"401":          {TargetCode: "705", TargetName: "Prestaciones de servicios", Group: tb.GroupRevenue, Subgroup: tb.SubgroupNetSales},
	"402":          {TargetCode: "709", TargetName: "Rappels sobre ventas", Group: tb.GroupRevenue, Subgroup: tb.SubgroupNetSales},
	"601-000-0001": {TargetCode: "640", TargetName: "Sueldos y salarios", Group: tb.GroupExpense, Subgroup: tb.SubgroupPersonnelExpense},
	"601-000-0002": {TargetCode: "640", TargetName: "Sueldos y salarios", Group: tb.GroupExpense, Subgroup: tb.SubgroupPersonnelExpense},
	"601-000-0003": {TargetCode: "640", TargetName: "Sueldos y salarios", Group: tb.GroupExpense, Subgroup: tb.SubgroupPersonnelExpense},
	"601-000-0004": {TargetCode: "640", TargetName: "Sueldos y salarios", Group: tb.GroupExpense, Subgroup: tb.SubgroupPersonnelExpense},
	"601-000-0005": {TargetCode: "629", TargetName: "Otros servicios (dietas/viajes)", Group: tb.GroupExpense, Subgroup: tb.SubgroupExternalServices},
	"601-000-0006": {TargetCode: "640", TargetName: "Sueldos y salarios", Group: tb.GroupExpense, Subgroup: tb.SubgroupPersonnelExpense},
	"601-000-0007": {TargetCode: "622", TargetName: "Comunicaciones", Group: tb.GroupExpense, Subgroup: tb.SubgroupExternalServices},
	"601-000-0008": {TargetCode: "628", TargetName: "Suministros (agua)", Group: tb.GroupExpense, Subgroup: tb.SubgroupExternalServices},
	"601-000-0009": {TargetCode: "628", TargetName: "Suministros (electricidad)", Group: tb.GroupExpense, Subgroup: tb.SubgroupExternalServices},
	"601-000-0010": {TargetCode: "625", TargetName: "Primas de seguros / Vigilancia", Group: tb.GroupExpense, Subgroup: tb.SubgroupExternalServices},
	"601-000-0011": {TargetCode: "629", TargetName: "Otros servicios (material oficina)", Group: tb.GroupExpense, Subgroup: tb.SubgroupExternalServices},
	"601-000-0013": {TargetCode: "622", TargetName: "Reparaciones y conservacion", Group: tb.GroupExpense, Subgroup: tb.SubgroupExternalServices},
	"601-000-0014": {TargetCode: "625", TargetName: "Primas de seguros", Group: tb.GroupExpense, Subgroup: tb.SubgroupExternalServices},
	"601-000-0016": {TargetCode: "631", TargetName: "Otros tributos", Group: tb.GroupExpense, Subgroup: tb.SubgroupTaxesOther},
	"601-000-0017": {TargetCode: "669", TargetName: "Otros gastos financieros (recargos)", Group: tb.GroupExpense, Subgroup: tb.SubgroupExternalServices},
	"601-000-0018": {TargetCode: "629", TargetName: "Otros servicios (cuotas)", Group: tb.GroupExpense, Subgroup: tb.SubgroupExternalServices},
	"601-000-0019": {TargetCode: "627", TargetName: "Publicidad, propaganda y relaciones publicas", Group: tb.GroupExpense, Subgroup: tb.SubgroupExternalServices},
	"601-000-0020": {TargetCode: "621", TargetName: "Arrendamientos y canones", Group: tb.GroupExpense, Subgroup: tb.SubgroupExternalServices},
	"601-000-0031": {TargetCode: "623", TargetName: "Servicios profesionales independientes", Group: tb.GroupExpense, Subgroup: tb.SubgroupExternalServices},
	"601-000-0033": {TargetCode: "626", TargetName: "Servicios bancarios y similares", Group: tb.GroupExpense, Subgroup: tb.SubgroupExternalServices},
	"601-000-0034": {TargetCode: "629", TargetName: "Otros servicios (limpieza)", Group: tb.GroupExpense, Subgroup: tb.SubgroupExternalServices},
	"601-000-0035": {TargetCode: "623", TargetName: "Servicios profesionales independientes", Group: tb.GroupExpense, Subgroup: tb.SubgroupExternalServices},
	"601-000-0036": {TargetCode: "629", TargetName: "Otros servicios (papeleria)", Group: tb.GroupExpense, Subgroup: tb.SubgroupExternalServices},
	"601-000-0038": {TargetCode: "624", TargetName: "Transportes", Group: tb.GroupExpense, Subgroup: tb.SubgroupExternalServices},
	"601-000-0039": {TargetCode: "642", TargetName: "Seg. Social a cargo de la empresa (IMSS)", Group: tb.GroupExpense, Subgroup: tb.SubgroupPersonnelExpense},
	"601-000-0040": {TargetCode: "642", TargetName: "Seg. Social a cargo de la empresa (RCV)", Group: tb.GroupExpense, Subgroup: tb.SubgroupPersonnelExpense},
	"601-000-0041": {TargetCode: "642", TargetName: "Seg. Social a cargo de la empresa (Infonavit)", Group: tb.GroupExpense, Subgroup: tb.SubgroupPersonnelExpense},
	"601-000-0044": {TargetCode: "641", TargetName: "Indemnizaciones (antiguedad)", Group: tb.GroupExpense, Subgroup: tb.SubgroupPersonnelExpense},
	"601-000-0045": {TargetCode: "641", TargetName: "Indemnizaciones", Group: tb.GroupExpense, Subgroup: tb.SubgroupPersonnelExpense},
	"601-000-0046": {TargetCode: "640", TargetName: "Sueldos y salarios (festivos)", Group: tb.GroupExpense, Subgroup: tb.SubgroupPersonnelExpense},
	"601-000-0048": {TargetCode: "629", TargetName: "Otros servicios", Group: tb.GroupExpense, Subgroup: tb.SubgroupExternalServices},
	"601-000-0049": {TargetCode: "623", TargetName: "Servicios prof. indep. (comisiones reservas)", Group: tb.GroupExpense, Subgroup: tb.SubgroupExternalServices},
	"601-000-0051": {TargetCode: "649", TargetName: "Otros gastos sociales (comedor)", Group: tb.GroupExpense, Subgroup: tb.SubgroupPersonnelExpense},
	"601-000-0052": {TargetCode: "628", TargetName: "Suministros (combustible)", Group: tb.GroupExpense, Subgroup: tb.SubgroupExternalServices},
	"601-000-0053": {TargetCode: "623", TargetName: "Servicios prof. independientes (personas morales)", Group: tb.GroupExpense, Subgroup: tb.SubgroupExternalServices},
	"601-000-0054": {TargetCode: "640", TargetName: "Sueldos y salarios (horas extras)", Group: tb.GroupExpense, Subgroup: tb.SubgroupPersonnelExpense},
	"601-000-0055": {TargetCode: "631", TargetName: "Otros tributos (imp. nomina)", Group: tb.GroupExpense, Subgroup: tb.SubgroupTaxesOther},
	"601-001":      {TargetCode: "678", TargetName: "Gastos excepcionales (no deducibles)", Group: tb.GroupExpense, Subgroup: tb.SubgroupExceptionalExpense},
	"603-000-0001": {TargetCode: "623", TargetName: "Servicios prof. indep. (admon)", Group: tb.GroupExpense, Subgroup: tb.SubgroupExternalServices},
	"603-000-0002": {TargetCode: "623", TargetName: "Servicios prof. indep. (PF)", Group: tb.GroupExpense, Subgroup: tb.SubgroupExternalServices},
	"603-000-0003": {TargetCode: "623", TargetName: "Servicios prof. indep. (PM)", Group: tb.GroupExpense, Subgroup: tb.SubgroupExternalServices},
	"603-000-0004": {TargetCode: "623", TargetName: "Servicios profesionales (legal)", Group: tb.GroupExpense, Subgroup: tb.SubgroupExternalServices},
	"701":          {TargetCode: "668", TargetName: "Diferencias negativas de cambio", Group: tb.GroupExpenseFinancial, Subgroup: tb.SubgroupFinancialResult},
	"702":          {TargetCode: "768", TargetName: "Diferencias positivas de cambio", Group: tb.GroupRevenueFinancial, Subgroup: tb.SubgroupFinancialResult},
	"801":          {TargetCode: "678", TargetName: "Gastos excepcionales", Group: tb.GroupExpense, Subgroup: tb.SubgroupOtherResults},
	"803":          {TargetCode: "678", TargetName: "Gastos excepcionales (no deducibles)", Group: tb.GroupExpense, Subgroup: tb.SubgroupOtherResults},
	"804-003":      {TargetCode: "6818", TargetName: "Amort. inmovilizado material (transporte)", Group: tb.GroupExpense, Subgroup: tb.SubgroupDepreciation},
	"804-004":      {TargetCode: "6816", TargetName: "Amort. inmovilizado material (mobiliario)", Group: tb.GroupExpense, Subgroup: tb.SubgroupDepreciation},
	"804-005":      {TargetCode: "6817", TargetName: "Amort. inmovilizado material (eq. informatico)", Group: tb.GroupExpense, Subgroup: tb.SubgroupDepreciation},
	"806":          {TargetCode: "759", TargetName: "Ingresos por servicios diversos", Group: tb.GroupRevenue, Subgroup: tb.SubgroupOtherOperatingIncome},
}
