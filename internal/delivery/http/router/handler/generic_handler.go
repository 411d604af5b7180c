package handler

import (
	"net/http"

	"hrcore/internal/delivery/http/response"
	"hrcore/internal/domain/entity"
	"hrcore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// GenericHandler holds dependencies for the shared lookup endpoints.
type GenericHandler struct {
	uc usecase.GenericUsecase
}

// NewGenericHandler is the constructor for GenericHandler, injected by Fx.
func NewGenericHandler(uc usecase.GenericUsecase) *GenericHandler {
	return &GenericHandler{uc: uc}
}

type branchOfficeRequest struct {
	Name    string `json:"branchOfOffice" validate:"required"`
	Address string `json:"address" validate:"required"`
	CityID  string `json:"cityId" validate:"required"`
}

// GetBranchOffices lists every branch office.
func (h *GenericHandler) GetBranchOffices(c echo.Context) error {
	offices, err := h.uc.AllBranchOffices(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, offices, "")
}

// GetBranchOffice returns one branch office.
func (h *GenericHandler) GetBranchOffice(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	office, err := h.uc.BranchOfficeByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, office, "")
}

// SearchBranchOffices filters branch offices by name substring.
func (h *GenericHandler) SearchBranchOffices(c echo.Context) error {
	offices, err := h.uc.SearchBranchOffices(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, offices, "")
}

// CreateBranchOffice adds a branch office.
func (h *GenericHandler) CreateBranchOffice(c echo.Context) error {
	var req branchOfficeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid branch office input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.uc.CreateBranchOffice(c.Request().Context(), &entity.BranchOffice{
		Name:    req.Name,
		Address: req.Address,
		CityID:  req.CityID,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"branchOfficeId": id}, "")
}

// UpdateBranchOffice rewrites a branch office.
func (h *GenericHandler) UpdateBranchOffice(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req branchOfficeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid branch office input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.UpdateBranchOffice(c.Request().Context(), id, &entity.BranchOffice{
		Name:    req.Name,
		Address: req.Address,
		CityID:  req.CityID,
	}); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

type paymentMethodRequest struct {
	Name string `json:"meansOfPayment" validate:"required"`
}

// GetPaymentMethods lists every payment method.
func (h *GenericHandler) GetPaymentMethods(c echo.Context) error {
	methods, err := h.uc.AllPaymentMethods(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, methods, "")
}

// GetPaymentMethod returns one payment method.
func (h *GenericHandler) GetPaymentMethod(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	method, err := h.uc.PaymentMethodByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, method, "")
}

// SearchPaymentMethods filters payment methods by name substring.
func (h *GenericHandler) SearchPaymentMethods(c echo.Context) error {
	methods, err := h.uc.SearchPaymentMethods(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, methods, "")
}

// CreatePaymentMethod adds a payment method.
func (h *GenericHandler) CreatePaymentMethod(c echo.Context) error {
	var req paymentMethodRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment method input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.uc.CreatePaymentMethod(c.Request().Context(), &entity.PaymentMethod{Name: req.Name})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"paymentMethodId": id}, "")
}

// UpdatePaymentMethod rewrites a payment method.
func (h *GenericHandler) UpdatePaymentMethod(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req paymentMethodRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment method input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.UpdatePaymentMethod(c.Request().Context(), id, &entity.PaymentMethod{Name: req.Name}); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}
