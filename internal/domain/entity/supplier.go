package entity

// Supplier representa un proveedor. Active controla si puede seleccionarse en
// formularios de entrada y de compra.
type Supplier struct {
	ID        string
	Code      string
	Name      string
	TradeName string
	CNPJ      string
	Contact   string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	ZipCode   string
	Active    bool
	CreatedBy string
	UpdatedBy string
}
