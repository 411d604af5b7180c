package handler

import (
	"io"
	"net/http"

	deliverycontext "hrcore/internal/delivery/context"
	"hrcore/internal/delivery/http/response"
	"hrcore/internal/domain/entity"
	domainerrors "hrcore/internal/domain/errors"
	"hrcore/internal/domain/repository"
	"hrcore/internal/errors"
	"hrcore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler holds dependencies for employee endpoints.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type userRequest struct {
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password"`
	Name                 string `json:"name" validate:"required"`
	LastName             string `json:"lastName" validate:"required"`
	Phone                string `json:"phone"`
	Identification       string `json:"identification" validate:"required"`
	IsVirtual            bool   `json:"isVirtual"`
	Account              string `json:"account"`
	Address              string `json:"address"`
	RoleID               int64  `json:"roleId" validate:"required"`
	IdentificationTypeID int64  `json:"identificationId" validate:"required"`
	BranchOfficeID       int64  `json:"branchOfficeId" validate:"required"`
	PaymentMethodID      int64  `json:"paymentMethodId"`
}

func (r userRequest) toInput() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Email:                r.Email,
		Password:             r.Password,
		Name:                 r.Name,
		LastName:             r.LastName,
		Phone:                r.Phone,
		Identification:       r.Identification,
		IsVirtual:            r.IsVirtual,
		Account:              r.Account,
		Address:              r.Address,
		RoleID:               r.RoleID,
		IdentificationTypeID: r.IdentificationTypeID,
		BranchOfficeID:       r.BranchOfficeID,
		PaymentMethodID:      r.PaymentMethodID,
	}
}

// userView strips the password hash from responses.
type userView struct {
	UserID               int64  `json:"userId"`
	Name                 string `json:"name"`
	LastName             string `json:"lastName"`
	HireDate             string `json:"hireDate"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	Identification       string `json:"identification"`
	IsVirtual            bool   `json:"isVirtual"`
	Account              string `json:"account"`
	Address              string `json:"address"`
	RoleID               int64  `json:"roleId"`
	IdentificationTypeID int64  `json:"identificationId"`
	BranchOfficeID       int64  `json:"branchOfficeId"`
	PersonStateID        int64  `json:"personStateId"`
	PaymentMethodID      int64  `json:"paymentMethodId"`
}

func toUserView(u *entity.User) userView {
	return userView{
		UserID:               u.UserID,
		Name:                 u.Name,
		LastName:             u.LastName,
		HireDate:             u.HireDate.Format(dateLayout),
		Email:                u.Email,
		Phone:                u.Phone,
		Identification:       u.Identification,
		IsVirtual:            u.IsVirtual,
		Account:              u.Account,
		Address:              u.Address,
		RoleID:               u.RoleID,
		IdentificationTypeID: u.IdentificationTypeID,
		BranchOfficeID:       u.BranchOfficeID,
		PersonStateID:        u.PersonStateID,
		PaymentMethodID:      u.PaymentMethodID,
	}
}

func toUserViews(users []*entity.User) []userView {
	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, toUserView(u))
	}

	return views
}

// GetProfile returns the employee record bound to the session.
func (h *UserHandler) GetProfile(c echo.Context) error {
	claims := deliverycontext.GetClaims(c)
	if claims == nil {
		return domainerrors.ErrUnauthorized
	}

	user, err := h.uc.UserByID(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toUserView(user), "")
}

// GetAll lists every employee.
func (h *UserHandler) GetAll(c echo.Context) error {
	users, err := h.uc.AllUsers(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toUserViews(users), "")
}

// GetByIdentification looks one employee up by identification number.
func (h *UserHandler) GetByIdentification(c echo.Context) error {
	user, err := h.uc.UserByIdentification(c.Request().Context(), c.Param("identification"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toUserView(user), "")
}

type searchRequest struct {
	Name          string `json:"name"`
	HiredAfter    string `json:"hiredAfter"`
	HiredBefore   string `json:"hiredBefore"`
	IsVirtual     *bool  `json:"isVirtual"`
	PersonStateID *int64 `json:"personStateId"`
	RoleID        *int64 `json:"roleId"`
}

// Search filters employees; at least one filter must be set.
func (h *UserHandler) Search(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	filters := repository.UserFilters{
		Name:          req.Name,
		IsVirtual:     req.IsVirtual,
		PersonStateID: req.PersonStateID,
		RoleID:        req.RoleID,
	}

	var err error
	if filters.HiredAfter, err = parseOptionalDate(req.HiredAfter); err != nil {
		return err
	}
	if filters.HiredBefore, err = parseOptionalDate(req.HiredBefore); err != nil {
		return err
	}

	users, err := h.uc.SearchUsers(c.Request().Context(), filters)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toUserViews(users), "")
}

// Create registers an employee.
func (h *UserHandler) Create(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Password == "" {
		return domainerrors.ErrValidationFailed.WithDetails("password is required")
	}

	userID, err := h.uc.CreateUser(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"userId": userID}, "")
}

// Update rewrites an employee record.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req userRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.UpdateUser(c.Request().Context(), id, req.toInput()); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

// Delete removes an employee record.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

// GetStates lists the person-state lookup table.
func (h *UserHandler) GetStates(c echo.Context) error {
	states, err := h.uc.AllStates(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, states, "")
}

// GetRoles lists the role lookup table.
func (h *UserHandler) GetRoles(c echo.Context) error {
	roles, err := h.uc.AllRoles(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, roles, "")
}

// GetIdentificationTypes lists the identification-type lookup table.
func (h *UserHandler) GetIdentificationTypes(c echo.Context) error {
	types, err := h.uc.AllIdentificationTypes(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, types, "")
}

type faultRequest struct {
	UserID    int64  `json:"userId" validate:"required"`
	Reason    string `json:"justification" validate:"required"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}

func (r faultRequest) toEntity() (*entity.Fault, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &entity.Fault{
		UserID:    r.UserID,
		Reason:    r.Reason,
		StartDate: start,
		EndDate:   end,
	}, nil
}

// GetAllFaults lists every absence record.
func (h *UserHandler) GetAllFaults(c echo.Context) error {
	faults, err := h.uc.AllFaults(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, faults, "")
}

// GetFault returns one absence record.
func (h *UserHandler) GetFault(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	fault, err := h.uc.FaultByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, fault, "")
}

// GetFaultsByUser lists one employee's absences.
func (h *UserHandler) GetFaultsByUser(c echo.Context) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return err
	}

	faults, err := h.uc.FaultsByUserID(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, faults, "")
}

// GetCurrentFaultsByUser lists the absences covering today.
func (h *UserHandler) GetCurrentFaultsByUser(c echo.Context) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return err
	}

	faults, err := h.uc.CurrentFaultsByUserID(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, faults, "")
}

// CreateFault records an absence.
func (h *UserHandler) CreateFault(c echo.Context) error {
	var req faultRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid fault input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	fault, err := req.toEntity()
	if err != nil {
		return err
	}

	id, err := h.uc.CreateFault(c.Request().Context(), fault)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"faultId": id}, "")
}

// UpdateFault rewrites an absence record.
func (h *UserHandler) UpdateFault(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req faultRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid fault input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	fault, err := req.toEntity()
	if err != nil {
		return err
	}

	if err := h.uc.UpdateFault(c.Request().Context(), id, fault); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

// DeleteFault removes an absence record.
func (h *UserHandler) DeleteFault(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteFault(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

type fileTypeRequest struct {
	Name        string `json:"fileType" validate:"required"`
	IsMandatory bool   `json:"isMandatory"`
}

// GetFileTypes lists the document-type catalog.
func (h *UserHandler) GetFileTypes(c echo.Context) error {
	types, err := h.uc.AllFileTypes(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, types, "")
}

// CreateFileType adds a document type.
func (h *UserHandler) CreateFileType(c echo.Context) error {
	var req fileTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid file type input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.uc.CreateFileType(c.Request().Context(), &entity.FileType{
		Name:        req.Name,
		IsMandatory: req.IsMandatory,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"fileTypeId": id}, "")
}

// UpdateFileType rewrites a document type.
func (h *UserHandler) UpdateFileType(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req fileTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid file type input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.UpdateFileType(c.Request().Context(), id, &entity.FileType{
		Name:        req.Name,
		IsMandatory: req.IsMandatory,
	}); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

// DeleteFileType removes a document type.
func (h *UserHandler) DeleteFileType(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteFileType(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

// GetAllUserFiles lists every employee-document link.
func (h *UserHandler) GetAllUserFiles(c echo.Context) error {
	files, err := h.uc.AllUserFiles(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, files, "")
}

// GetUserFiles lists one employee's documents with their metadata.
func (h *UserHandler) GetUserFiles(c echo.Context) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	files, err := h.uc.UserFilesWithMetadata(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, files, "")
}

// UploadUserFile stores a multipart document and links it to the employee.
func (h *UserHandler) UploadUserFile(c echo.Context) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	fileTypeID, err := parseID(c.FormValue("fileTypeId"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid fileTypeId")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("file part is missing")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open multipart file")
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return errors.Wrap(err, "failed to read multipart file")
	}

	link, err := h.uc.AttachFile(c.Request().Context(), usecase.AttachFileInput{
		UserID:     userID,
		FileTypeID: fileTypeID,
		FileName:   fileHeader.Filename,
		Content:    content,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, link, "")
}

// DeleteUserFile removes a document owned by the employee.
func (h *UserHandler) DeleteUserFile(c echo.Context) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveUserFile(c.Request().Context(), userID, c.Param("fileId")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}
