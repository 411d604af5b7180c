package entity

// BranchOffice is a company site.
type BranchOffice struct {
	BranchOfficeID int64
	Name           string
	Address        string
	CityID         string
}

// PaymentMethod is a payment channel (bank account, cash...).
type PaymentMethod struct {
	PaymentMethodID int64
	Name            string
}
