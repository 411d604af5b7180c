package model

// BranchOfficeRow is a row of public."TB_Surcusal".
type BranchOfficeRow struct {
	BranchOfficeID int64  `gorm:"column:branch_office_id"`
	Name           string `gorm:"column:name"`
	Address        string `gorm:"column:address"`
	CityID         string `gorm:"column:city_id"`
}

// PaymentMethodRow is a row of public."TB_MediosPago".
type PaymentMethodRow struct {
	PaymentMethodID int64  `gorm:"column:payment_method_id"`
	Name            string `gorm:"column:name"`
}

// BranchOfficePayload is the json body of the branch-office procedures.
type BranchOfficePayload struct {
	BranchOffice string `json:"branchOfOffice"`
	Address      string `json:"address"`
	CityID       string `json:"cityId"`
}

// PaymentMethodPayload is the json body of the payment-method procedures.
type PaymentMethodPayload struct {
	PaymentMethod string `json:"meansOfPayment"`
}
