package models

// Category is the label assigned to a transaction together with the
// strategy that produced it.
type Category struct {
	Name   string
	Source string
}

// Built-in category labels.
const (
	CategoryPestControl      = "Dedetização / Controle de Pragas"
	CategoryEnergy           = "Energia Elétrica"
	CategoryAccounting       = "Contabilidade e RH"
	CategoryCardBill         = "Fatura Cartão"
	CategoryInvestments      = "Investimentos (Aplicações)"
	CategoryInvestmentYield  = "Rendimentos de Aplicações"
	CategoryRent             = "Aluguel Comercial"
	CategoryDelivery         = "Motoboy / Entregas"
	CategoryPayroll          = "Folha de Pagamento"
	CategoryNutritionist     = "Nutricionista"
	CategoryTaxes            = "Impostos e Encargos"
	CategoryInternalTransfer = "Transferência Interna / Sócios"
	CategorySales            = "Vendas / Receitas"
	CategorySuppliers        = "Fornecedores e Insumos"
	CategoryUnclassified     = "A Classificar"
)

// DefaultCategories lists the fixed taxonomy in display order.
func DefaultCategories() []string {
	return []string{
		CategorySales,
		CategorySuppliers,
		CategoryPayroll,
		CategoryEnergy,
		CategoryAccounting,
		CategoryCardBill,
		CategoryInvestments,
		CategoryInvestmentYield,
		CategoryRent,
		CategoryDelivery,
		CategoryNutritionist,
		CategoryTaxes,
		CategoryInternalTransfer,
		CategoryPestControl,
		CategoryUnclassified,
	}
}
