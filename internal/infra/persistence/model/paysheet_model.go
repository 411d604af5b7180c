package model

import "time"

// JobPositionRow is a row of nominas."TB_Cargo".
type JobPositionRow struct {
	JobPositionID int64  `gorm:"column:job_position_id"`
	Name          string `gorm:"column:name"`
}

// PaysheetRow is a row of nominas."TB_ContratoNomina", joined with the
// employee row on list queries.
type PaysheetRow struct {
	PaysheetID     int64   `gorm:"column:paysheet_id"`
	Salary         float64 `gorm:"column:salary"`
	ContractRange  string  `gorm:"column:contract_range"`
	FileID         string  `gorm:"column:file_id"`
	PaysheetTypeID int64   `gorm:"column:paysheet_type_id"`
	ContractTypeID int64   `gorm:"column:contract_type_id"`
	JobPositionID  int64   `gorm:"column:job_position_id"`
	RequestID      string  `gorm:"column:request_id"`
	UserID         int64   `gorm:"column:user_id"`
	UserName       string  `gorm:"column:user_name"`
	Identification string  `gorm:"column:identification"`
}

// ContractTypeRow is a row of nominas."TB_TipoContrato".
type ContractTypeRow struct {
	ContractTypeID int64  `gorm:"column:contract_type_id"`
	Name           string `gorm:"column:name"`
	MaxDays        int    `gorm:"column:max_days"`
}

// PaysheetTypeRow is a row of nominas."TB_TipoNomina".
type PaysheetTypeRow struct {
	PaysheetTypeID int64  `gorm:"column:paysheet_type_id"`
	Name           string `gorm:"column:name"`
	PayDay         int    `gorm:"column:pay_day"`
}

// NoveltyRow is a row of nominas."TB_Novedades" with the day range split.
type NoveltyRow struct {
	NoveltyID  int64     `gorm:"column:novelty_id"`
	ContractID int64     `gorm:"column:contract_id"`
	ConceptID  int64     `gorm:"column:concept_id"`
	Detail     string    `gorm:"column:detail"`
	StartDate  time.Time `gorm:"column:start_date"`
	EndDate    time.Time `gorm:"column:end_date"`
}

// ConceptTypeRow is a row of nominas."TB_TipoConcepto".
type ConceptTypeRow struct {
	ConceptTypeID int64   `gorm:"column:concept_type_id"`
	Name          string  `gorm:"column:name"`
	MinValue      float64 `gorm:"column:min_value"`
	MaxValue      float64 `gorm:"column:max_value"`
	Percentage    float64 `gorm:"column:percentage"`
}

// ConceptRow is a row of nominas."TB_Conceptos".
type ConceptRow struct {
	ConceptID     int64  `gorm:"column:concept_id"`
	ConceptTypeID int64  `gorm:"column:concept_type_id"`
	CityID        string `gorm:"column:city_id"`
	CompanyID     string `gorm:"column:company_id"`
}

// PaymentRow is a row of nominas."TB_Pagos". FileID stays empty while the
// payment is pending.
type PaymentRow struct {
	PaymentID  int64      `gorm:"column:payment_id"`
	FileID     string     `gorm:"column:file_id"`
	PaidAt     *time.Time `gorm:"column:paid_at"`
	NoveltyID  int64      `gorm:"column:novelty_id"`
	ConceptID  int64      `gorm:"column:concept_id"`
	ContractID int64      `gorm:"column:contract_id"`
}

// JobPositionPayload is the json body of the job-position procedures.
type JobPositionPayload struct {
	JobPosition string `json:"jobPosition"`
}

// PaysheetPayload is the json body of the paysheet procedures.
type PaysheetPayload struct {
	Salary         float64 `json:"salary"`
	Date           string  `json:"date"`
	FileID         string  `json:"fileId,omitempty"`
	PaysheetTypeID int64   `json:"paysheetTypeId"`
	ContractTypeID int64   `json:"contractTypeId"`
	JobPositionID  int64   `json:"jobPositionId"`
	RequestID      string  `json:"requestId,omitempty"`
	UserID         int64   `json:"userId"`
}

// ContractTypePayload is the json body of the contract-type procedures.
type ContractTypePayload struct {
	ContractType string `json:"contractType"`
	MaxDays      int    `json:"maxDay"`
}

// PaysheetTypePayload is the json body of the paysheet-type procedures.
type PaysheetTypePayload struct {
	Paysheet string `json:"paysheet"`
	PayDay   int    `json:"payDay"`
}

// NoveltyPayload is the json body of the novelty procedures.
type NoveltyPayload struct {
	ContractID int64  `json:"contractId"`
	ConceptID  int64  `json:"conceptId"`
	Detail     string `json:"detail"`
	Date       string `json:"date"`
}

// ConceptTypePayload is the json body of the concept-type procedures.
type ConceptTypePayload struct {
	ConceptType string  `json:"conceptType"`
	MinValue    float64 `json:"minValue"`
	MaxValue    float64 `json:"maxValue"`
	Percentage  float64 `json:"percentage"`
}

// ConceptPayload is the json body of the concept procedures.
type ConceptPayload struct {
	ConceptTypeID int64  `json:"conceptTypeId"`
	CityID        string `json:"cityId"`
	CompanyID     string `json:"companyId"`
}

// PaymentPayload is the json body of the payment procedures.
type PaymentPayload struct {
	FileID     string `json:"fileId,omitempty"`
	PaidAt     string `json:"paymentDate,omitempty"`
	NoveltyID  int64  `json:"noveltyId,omitempty"`
	ConceptID  int64  `json:"conceptId"`
	ContractID int64  `json:"contractId"`
}
