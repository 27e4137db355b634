package entity

// Supplier categories. Suppliers are assignable to a stage when their
// category matches the stage's mapped category.
const (
	CategoryMalha      = "Malha"
	CategoryModelagem  = "Modelagem"
	CategoryCorte      = "Corte"
	CategoryCostura    = "Costura"
	CategoryBordado    = "Bordado"
	CategorySilk       = "Estampa Silk"
	CategoryDTFPrint   = "Impressão DTF"
	CategoryDTFPress   = "Prensa DTF"
	CategoryAcabamento = "Acabamento"
	CategoryTinturaria = "Tinturaria"
	CategoryOutros     = "Outros"
)

// SupplierCategories is the fixed category enumeration, in display order.
var SupplierCategories = []string{
	CategoryMalha,
	CategoryModelagem,
	CategoryCorte,
	CategoryCostura,
	CategoryBordado,
	CategorySilk,
	CategoryDTFPrint,
	CategoryDTFPress,
	CategoryAcabamento,
	CategoryTinturaria,
	CategoryOutros,
}

// Synthetic provider options not backed by supplier records.
const (
	ProviderInterno = "Interno"
	ProviderCliente = "Cliente"
)

// ProviderOption is one assignable provider for a stage.
type ProviderOption struct {
	ID        string `json:"id,omitzero"`
	Name      string `json:"name"`
	Synthetic bool   `json:"synthetic"`
}

type providerRule struct {
	category string
	extras   []string
}

// One row per stage: the supplier category it draws from plus any static
// in-house/client options. Kept declarative so the eligibility rule stays
// a pure lookup.
var stageProviderRules = map[StageKey]providerRule{
	StageModeling:   {category: CategoryModelagem, extras: []string{ProviderInterno, ProviderCliente}},
	StageCut:        {category: CategoryCorte},
	StageSew:        {category: CategoryCostura},
	StageDyeing:     {category: CategoryTinturaria},
	StageEmbroidery: {category: CategoryBordado},
	StageSilk:       {category: CategorySilk},
	StageDTFPrint:   {category: CategoryDTFPrint},
	StageDTFPress:   {category: CategoryDTFPress, extras: []string{ProviderInterno}},
	StageFinish:     {category: CategoryAcabamento},
}

// StageCategory returns the supplier category a stage draws from.
func StageCategory(key StageKey) string {
	return stageProviderRules[key].category
}

// EligibleProviders computes the assignable providers for a stage: the
// static options for that stage followed by every supplier whose
// category matches. Pure; the supplier slice is not modified.
func EligibleProviders(key StageKey, suppliers []Supplier) []ProviderOption {
	rule := stageProviderRules[key]
	options := make([]ProviderOption, 0, len(rule.extras)+len(suppliers))
	for _, name := range rule.extras {
		options = append(options, ProviderOption{Name: name, Synthetic: true})
	}
	for _, sup := range suppliers {
		if sup.Category == rule.category {
			options = append(options, ProviderOption{ID: sup.ID, Name: sup.Name})
		}
	}
	return options
}
