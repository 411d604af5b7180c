package handler

import (
	"net/http"

	"hrcore/internal/delivery/http/response"
	"hrcore/internal/domain/entity"
	"hrcore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PaysheetHandler holds dependencies for payroll endpoints.
type PaysheetHandler struct {
	uc usecase.PaysheetUsecase
}

// NewPaysheetHandler is the constructor for PaysheetHandler, injected by Fx.
func NewPaysheetHandler(uc usecase.PaysheetUsecase) *PaysheetHandler {
	return &PaysheetHandler{uc: uc}
}

type jobPositionRequest struct {
	Name string `json:"jobPosition" validate:"required"`
}

// GetJobPositions lists the job-position catalog.
func (h *PaysheetHandler) GetJobPositions(c echo.Context) error {
	positions, err := h.uc.AllJobPositions(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, positions, "")
}

// GetJobPosition returns one job position.
func (h *PaysheetHandler) GetJobPosition(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	jp, err := h.uc.JobPositionByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, jp, "")
}

// CreateJobPosition adds a job position.
func (h *PaysheetHandler) CreateJobPosition(c echo.Context) error {
	var req jobPositionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid job position input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.uc.CreateJobPosition(c.Request().Context(), &entity.JobPosition{Name: req.Name})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"jobPositionId": id}, "")
}

// UpdateJobPosition rewrites a job position.
func (h *PaysheetHandler) UpdateJobPosition(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req jobPositionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid job position input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.UpdateJobPosition(c.Request().Context(), id, &entity.JobPosition{Name: req.Name}); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

// DeleteJobPosition removes a job position.
func (h *PaysheetHandler) DeleteJobPosition(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteJobPosition(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

type paysheetRequest struct {
	Salary         float64 `json:"salary" validate:"required"`
	ContractRange  string  `json:"date" validate:"required"`
	FileID         string  `json:"fileId"`
	PaysheetTypeID int64   `json:"paysheetTypeId" validate:"required"`
	ContractTypeID int64   `json:"contractTypeId" validate:"required"`
	JobPositionID  int64   `json:"jobPositionId" validate:"required"`
	RequestID      string  `json:"requestId"`
	UserID         int64   `json:"userId" validate:"required"`
}

func (r paysheetRequest) toEntity() *entity.Paysheet {
	return &entity.Paysheet{
		Salary:         r.Salary,
		ContractRange:  r.ContractRange,
		FileID:         r.FileID,
		PaysheetTypeID: r.PaysheetTypeID,
		ContractTypeID: r.ContractTypeID,
		JobPositionID:  r.JobPositionID,
		RequestID:      r.RequestID,
		UserID:         r.UserID,
	}
}

// GetPaysheets lists every payroll contract with the employee denormalized.
func (h *PaysheetHandler) GetPaysheets(c echo.Context) error {
	paysheets, err := h.uc.AllPaysheets(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, paysheets, "")
}

// GetPaysheetsByUser lists one employee's payroll contracts.
func (h *PaysheetHandler) GetPaysheetsByUser(c echo.Context) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return err
	}

	paysheets, err := h.uc.PaysheetsByUserID(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, paysheets, "")
}

// CreatePaysheet opens a payroll contract.
func (h *PaysheetHandler) CreatePaysheet(c echo.Context) error {
	var req paysheetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid paysheet input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.uc.CreatePaysheet(c.Request().Context(), req.toEntity())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"paysheetId": id}, "")
}

// UpdatePaysheet rewrites a payroll contract.
func (h *PaysheetHandler) UpdatePaysheet(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req paysheetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid paysheet input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.UpdatePaysheet(c.Request().Context(), id, req.toEntity()); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

// DeletePaysheet closes a payroll contract.
func (h *PaysheetHandler) DeletePaysheet(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeletePaysheet(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

type contractTypeRequest struct {
	Name    string `json:"contractType" validate:"required"`
	MaxDays int    `json:"maxDay" validate:"required"`
}

// GetContractTypes lists the contract-type catalog.
func (h *PaysheetHandler) GetContractTypes(c echo.Context) error {
	types, err := h.uc.AllContractTypes(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, types, "")
}

// GetContractType returns one contract type.
func (h *PaysheetHandler) GetContractType(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	ct, err := h.uc.ContractTypeByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, ct, "")
}

// CreateContractType adds a contract type.
func (h *PaysheetHandler) CreateContractType(c echo.Context) error {
	var req contractTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contract type input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.uc.CreateContractType(c.Request().Context(), &entity.ContractType{
		Name:    req.Name,
		MaxDays: req.MaxDays,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"contractTypeId": id}, "")
}

// UpdateContractType rewrites a contract type.
func (h *PaysheetHandler) UpdateContractType(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req contractTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contract type input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.UpdateContractType(c.Request().Context(), id, &entity.ContractType{
		Name:    req.Name,
		MaxDays: req.MaxDays,
	}); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

// DeleteContractType removes a contract type.
func (h *PaysheetHandler) DeleteContractType(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteContractType(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

type paysheetTypeRequest struct {
	Name   string `json:"paysheet" validate:"required"`
	PayDay int    `json:"payDay" validate:"required"`
}

// GetPaysheetTypes lists the payroll-cycle catalog.
func (h *PaysheetHandler) GetPaysheetTypes(c echo.Context) error {
	types, err := h.uc.AllPaysheetTypes(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, types, "")
}

// GetPaysheetType returns one payroll cycle.
func (h *PaysheetHandler) GetPaysheetType(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	pt, err := h.uc.PaysheetTypeByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, pt, "")
}

// CreatePaysheetType adds a payroll cycle.
func (h *PaysheetHandler) CreatePaysheetType(c echo.Context) error {
	var req paysheetTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid paysheet type input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.uc.CreatePaysheetType(c.Request().Context(), &entity.PaysheetType{
		Name:   req.Name,
		PayDay: req.PayDay,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"paysheetTypeId": id}, "")
}

// UpdatePaysheetType rewrites a payroll cycle.
func (h *PaysheetHandler) UpdatePaysheetType(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req paysheetTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid paysheet type input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.UpdatePaysheetType(c.Request().Context(), id, &entity.PaysheetType{
		Name:   req.Name,
		PayDay: req.PayDay,
	}); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

// DeletePaysheetType removes a payroll cycle.
func (h *PaysheetHandler) DeletePaysheetType(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeletePaysheetType(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

type noveltyRequest struct {
	ContractID int64  `json:"contractId" validate:"required"`
	ConceptID  int64  `json:"conceptId" validate:"required"`
	Detail     string `json:"detail"`
	StartDate  string `json:"startDate" validate:"required"`
	EndDate    string `json:"endDate" validate:"required"`
}

func (r noveltyRequest) toEntity() (*entity.Novelty, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &entity.Novelty{
		ContractID: r.ContractID,
		ConceptID:  r.ConceptID,
		Detail:     r.Detail,
		StartDate:  start,
		EndDate:    end,
	}, nil
}

// GetNovelties lists novelties, optionally those active on ?date=yyyy-mm-dd.
func (h *PaysheetHandler) GetNovelties(c echo.Context) error {
	date, err := parseOptionalDate(c.QueryParam("date"))
	if err != nil {
		return err
	}

	novelties, err := h.uc.AllNovelties(c.Request().Context(), date)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, novelties, "")
}

// GetNovelty returns one novelty.
func (h *PaysheetHandler) GetNovelty(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	novelty, err := h.uc.NoveltyByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, novelty, "")
}

// GetNoveltiesByContract lists a contract's novelties inside ?from/?to.
func (h *PaysheetHandler) GetNoveltiesByContract(c echo.Context) error {
	contractID, err := paramID(c, "contractId")
	if err != nil {
		return err
	}

	from, err := parseOptionalDate(c.QueryParam("from"))
	if err != nil {
		return err
	}
	to, err := parseOptionalDate(c.QueryParam("to"))
	if err != nil {
		return err
	}

	novelties, err := h.uc.NoveltiesByContract(c.Request().Context(), contractID, from, to)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, novelties, "")
}

// CreateNovelty records a payroll incident.
func (h *PaysheetHandler) CreateNovelty(c echo.Context) error {
	var req noveltyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid novelty input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	novelty, err := req.toEntity()
	if err != nil {
		return err
	}

	id, err := h.uc.CreateNovelty(c.Request().Context(), novelty)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"noveltyId": id}, "")
}

// UpdateNovelty rewrites a payroll incident.
func (h *PaysheetHandler) UpdateNovelty(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req noveltyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid novelty input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	novelty, err := req.toEntity()
	if err != nil {
		return err
	}

	if err := h.uc.UpdateNovelty(c.Request().Context(), id, novelty); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

// DeleteNovelty removes a payroll incident.
func (h *PaysheetHandler) DeleteNovelty(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteNovelty(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

type conceptTypeRequest struct {
	Name       string  `json:"conceptType" validate:"required"`
	MinValue   float64 `json:"minValue"`
	MaxValue   float64 `json:"maxValue"`
	Percentage float64 `json:"percentage"`
}

// GetConceptTypes lists the concept-type catalog.
func (h *PaysheetHandler) GetConceptTypes(c echo.Context) error {
	types, err := h.uc.AllConceptTypes(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, types, "")
}

// GetConceptType returns one concept type.
func (h *PaysheetHandler) GetConceptType(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	ct, err := h.uc.ConceptTypeByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, ct, "")
}

// CreateConceptType adds a concept type.
func (h *PaysheetHandler) CreateConceptType(c echo.Context) error {
	var req conceptTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid concept type input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.uc.CreateConceptType(c.Request().Context(), &entity.ConceptType{
		Name:       req.Name,
		MinValue:   req.MinValue,
		MaxValue:   req.MaxValue,
		Percentage: req.Percentage,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"conceptTypeId": id}, "")
}

// UpdateConceptType rewrites a concept type.
func (h *PaysheetHandler) UpdateConceptType(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req conceptTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid concept type input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.UpdateConceptType(c.Request().Context(), id, &entity.ConceptType{
		Name:       req.Name,
		MinValue:   req.MinValue,
		MaxValue:   req.MaxValue,
		Percentage: req.Percentage,
	}); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

// DeleteConceptType removes a concept type.
func (h *PaysheetHandler) DeleteConceptType(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteConceptType(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

type conceptRequest struct {
	ConceptTypeID int64  `json:"conceptTypeId" validate:"required"`
	CityID        string `json:"cityId"`
	CompanyID     string `json:"companyId"`
}

// GetConcepts lists the concept catalog.
func (h *PaysheetHandler) GetConcepts(c echo.Context) error {
	concepts, err := h.uc.AllConcepts(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, concepts, "")
}

// GetConcept returns one concept.
func (h *PaysheetHandler) GetConcept(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	concept, err := h.uc.ConceptByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, concept, "")
}

// CreateConcept adds a concept.
func (h *PaysheetHandler) CreateConcept(c echo.Context) error {
	var req conceptRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid concept input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.uc.CreateConcept(c.Request().Context(), &entity.Concept{
		ConceptTypeID: req.ConceptTypeID,
		CityID:        req.CityID,
		CompanyID:     req.CompanyID,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"conceptId": id}, "")
}

// UpdateConcept rewrites a concept.
func (h *PaysheetHandler) UpdateConcept(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req conceptRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid concept input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.UpdateConcept(c.Request().Context(), id, &entity.Concept{
		ConceptTypeID: req.ConceptTypeID,
		CityID:        req.CityID,
		CompanyID:     req.CompanyID,
	}); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

// DeleteConcept removes a concept.
func (h *PaysheetHandler) DeleteConcept(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteConcept(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

type paymentRequest struct {
	FileID      string `json:"fileId"`
	PaymentDate string `json:"paymentDate" validate:"required"`
	NoveltyID   int64  `json:"noveltyId"`
	ConceptID   int64  `json:"conceptId" validate:"required"`
	ContractID  int64  `json:"contractId" validate:"required"`
}

func (r paymentRequest) toEntity() (*entity.Payment, error) {
	paidAt, err := parseDate(r.PaymentDate)
	if err != nil {
		return nil, err
	}

	return &entity.Payment{
		FileID:     r.FileID,
		PaidAt:     paidAt,
		NoveltyID:  r.NoveltyID,
		ConceptID:  r.ConceptID,
		ContractID: r.ContractID,
	}, nil
}

// GetPayments lists disbursements, optionally inside ?from/?to.
func (h *PaysheetHandler) GetPayments(c echo.Context) error {
	from, err := parseOptionalDate(c.QueryParam("from"))
	if err != nil {
		return err
	}
	to, err := parseOptionalDate(c.QueryParam("to"))
	if err != nil {
		return err
	}

	payments, err := h.uc.AllPayments(c.Request().Context(), from, to)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, payments, "")
}

// GetPayment returns one disbursement.
func (h *PaysheetHandler) GetPayment(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	payment, err := h.uc.PaymentByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, payment, "")
}

// GetPaymentsByUser lists one employee's disbursements.
func (h *PaysheetHandler) GetPaymentsByUser(c echo.Context) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return err
	}

	payments, err := h.uc.PaymentsByUserID(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, payments, "")
}

// GetPendingPayments lists disbursements still missing their receipt.
func (h *PaysheetHandler) GetPendingPayments(c echo.Context) error {
	payments, err := h.uc.PendingPayments(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, payments, "")
}

// GetPendingPaymentsByUser lists one employee's pending disbursements.
func (h *PaysheetHandler) GetPendingPaymentsByUser(c echo.Context) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return err
	}

	payments, err := h.uc.PendingPaymentsByUserID(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, payments, "")
}

// CreatePayment records a disbursement.
func (h *PaysheetHandler) CreatePayment(c echo.Context) error {
	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	payment, err := req.toEntity()
	if err != nil {
		return err
	}

	id, err := h.uc.CreatePayment(c.Request().Context(), payment)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"paymentId": id}, "")
}

// UpdatePayment rewrites a disbursement.
func (h *PaysheetHandler) UpdatePayment(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	payment, err := req.toEntity()
	if err != nil {
		return err
	}

	if err := h.uc.UpdatePayment(c.Request().Context(), id, payment); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

// DeletePayment removes a disbursement.
func (h *PaysheetHandler) DeletePayment(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeletePayment(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}
