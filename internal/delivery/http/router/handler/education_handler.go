package handler

import (
	"net/http"

	"hrcore/internal/delivery/http/response"
	"hrcore/internal/domain/entity"
	"hrcore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// EducationHandler holds dependencies for skill and training endpoints.
type EducationHandler struct {
	uc usecase.EducationUsecase
}

// NewEducationHandler is the constructor for EducationHandler, injected by Fx.
func NewEducationHandler(uc usecase.EducationUsecase) *EducationHandler {
	return &EducationHandler{uc: uc}
}

type skillRequest struct {
	Name   string `json:"name" validate:"required"`
	Weight int    `json:"weight"`
}

// GetSkills lists the skill catalog.
func (h *EducationHandler) GetSkills(c echo.Context) error {
	skills, err := h.uc.AllSkills(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, skills, "")
}

// CreateSkill adds a skill.
func (h *EducationHandler) CreateSkill(c echo.Context) error {
	var req skillRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid skill input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.uc.CreateSkill(c.Request().Context(), &entity.Skill{
		Name:   req.Name,
		Weight: req.Weight,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"skillId": id}, "")
}

// UpdateSkill rewrites a skill.
func (h *EducationHandler) UpdateSkill(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req skillRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid skill input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.UpdateSkill(c.Request().Context(), id, &entity.Skill{
		Name:   req.Name,
		Weight: req.Weight,
	}); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

// DeleteSkill removes a skill.
func (h *EducationHandler) DeleteSkill(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteSkill(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

type userSkillRequest struct {
	SkillID  int64 `json:"habilityId" validate:"required"`
	UserID   int64 `json:"userId" validate:"required"`
	Affinity int   `json:"afinity"`
}

// GetUserSkills lists every employee-skill link.
func (h *EducationHandler) GetUserSkills(c echo.Context) error {
	links, err := h.uc.AllUserSkills(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, links, "")
}

// GetUserSkillsByUser lists one employee's skills.
func (h *EducationHandler) GetUserSkillsByUser(c echo.Context) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return err
	}

	links, err := h.uc.UserSkillsByUserID(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, links, "")
}

// LinkUserSkill attaches a skill to an employee with an affinity score.
func (h *EducationHandler) LinkUserSkill(c echo.Context) error {
	var req userSkillRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user skill input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.uc.LinkUserSkill(c.Request().Context(), &entity.UserSkill{
		SkillID:  req.SkillID,
		UserID:   req.UserID,
		Affinity: req.Affinity,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"userSkillId": id}, "")
}

type affinityRequest struct {
	Affinity int `json:"afinity" validate:"required"`
}

// UpdateUserSkillAffinity rescores an employee's skill.
func (h *EducationHandler) UpdateUserSkillAffinity(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req affinityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid affinity input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.UpdateUserSkillAffinity(c.Request().Context(), id, req.Affinity); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

type courseRequest struct {
	Name      string  `json:"name" validate:"required"`
	StartDate string  `json:"startDate" validate:"required"`
	EndDate   string  `json:"endDate" validate:"required"`
	SkillIDs  []int64 `json:"habilities"`
}

func (r courseRequest) toEntity() (*entity.Course, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &entity.Course{
		Name:      r.Name,
		StartDate: start,
		EndDate:   end,
		SkillIDs:  r.SkillIDs,
	}, nil
}

// GetCourses lists the training courses.
func (h *EducationHandler) GetCourses(c echo.Context) error {
	courses, err := h.uc.AllCourses(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, courses, "")
}

// CreateCourse adds a training course.
func (h *EducationHandler) CreateCourse(c echo.Context) error {
	var req courseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid course input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	course, err := req.toEntity()
	if err != nil {
		return err
	}

	id, err := h.uc.CreateCourse(c.Request().Context(), course)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"courseId": id}, "")
}

// UpdateCourse rewrites a training course.
func (h *EducationHandler) UpdateCourse(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req courseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid course input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	course, err := req.toEntity()
	if err != nil {
		return err
	}

	if err := h.uc.UpdateCourse(c.Request().Context(), id, course); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

// DeleteCourse removes a training course.
func (h *EducationHandler) DeleteCourse(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCourse(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

type enrollmentRequest struct {
	UserID   int64 `json:"userId" validate:"required"`
	CourseID int64 `json:"courseId" validate:"required"`
}

// EnrollUser signs an employee up for a course.
func (h *EducationHandler) EnrollUser(c echo.Context) error {
	var req enrollmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid enrollment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.uc.EnrollUser(c.Request().Context(), req.UserID, req.CourseID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"userCourseId": id}, "")
}

// MarkAttendance records that the employee attended the course.
func (h *EducationHandler) MarkAttendance(c echo.Context) error {
	var req enrollmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid attendance input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.MarkAttendance(c.Request().Context(), req.UserID, req.CourseID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

// UnenrollUser drops an enrollment.
func (h *EducationHandler) UnenrollUser(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.UnenrollUser(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}
