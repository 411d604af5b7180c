package impl

import (
	"context"
	"log/slog"

	deliverycontext "hrcore/internal/delivery/context"
	"hrcore/internal/domain/entity"
	"hrcore/internal/domain/repository"
	"hrcore/internal/usecase"

	"go.uber.org/fx"
)

// educationService implements the EducationUsecase interface.
type educationService struct {
	educationRepo repository.EducationRepository
	logger        *slog.Logger
}

// EducationServiceParams holds dependencies for educationService, injected by Fx.
type EducationServiceParams struct {
	fx.In

	EducationRepo repository.EducationRepository
	Logger        *slog.Logger
}

// NewEducationService is the constructor for educationService.
func NewEducationService(params EducationServiceParams) usecase.EducationUsecase {
	return &educationService{
		educationRepo: params.EducationRepo,
		logger:        params.Logger,
	}
}

func (srv *educationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *educationService) AllSkills(ctx context.Context) ([]*entity.Skill, error) {
	return srv.educationRepo.AllSkills(ctx)
}

func (srv *educationService) CreateSkill(ctx context.Context, skill *entity.Skill) (int64, error) {
	return srv.educationRepo.SaveSkill(ctx, skill)
}

func (srv *educationService) UpdateSkill(ctx context.Context, skillID int64, skill *entity.Skill) error {
	return srv.educationRepo.UpdateSkill(ctx, skillID, skill)
}

func (srv *educationService) DeleteSkill(ctx context.Context, skillID int64) error {
	return srv.educationRepo.DeleteSkill(ctx, skillID)
}

func (srv *educationService) AllUserSkills(ctx context.Context) ([]*entity.UserSkill, error) {
	return srv.educationRepo.AllUserSkills(ctx)
}

func (srv *educationService) UserSkillsByUserID(ctx context.Context, userID int64) ([]*entity.UserSkill, error) {
	return srv.educationRepo.UserSkillsByUserID(ctx, userID)
}

func (srv *educationService) LinkUserSkill(ctx context.Context, link *entity.UserSkill) (int64, error) {
	id, err := srv.educationRepo.LinkUserSkill(ctx, link)
	if err != nil {
		return 0, err
	}

	srv.log(ctx).Info("skill linked",
		slog.Int64("userId", link.UserID), slog.Int64("skillId", link.SkillID))

	return id, nil
}

func (srv *educationService) UpdateUserSkillAffinity(ctx context.Context, userSkillID int64, affinity int) error {
	return srv.educationRepo.UpdateUserSkillAffinity(ctx, userSkillID, affinity)
}

func (srv *educationService) AllCourses(ctx context.Context) ([]*entity.Course, error) {
	return srv.educationRepo.AllCourses(ctx)
}

func (srv *educationService) CreateCourse(ctx context.Context, course *entity.Course) (int64, error) {
	return srv.educationRepo.SaveCourse(ctx, course)
}

func (srv *educationService) UpdateCourse(ctx context.Context, courseID int64, course *entity.Course) error {
	return srv.educationRepo.UpdateCourse(ctx, courseID, course)
}

func (srv *educationService) DeleteCourse(ctx context.Context, courseID int64) error {
	return srv.educationRepo.DeleteCourse(ctx, courseID)
}

func (srv *educationService) EnrollUser(ctx context.Context, userID, courseID int64) (int64, error) {
	return srv.educationRepo.LinkUserCourse(ctx, userID, courseID)
}

func (srv *educationService) MarkAttendance(ctx context.Context, userID, courseID int64) error {
	return srv.educationRepo.MarkAttendance(ctx, userID, courseID)
}

func (srv *educationService) UnenrollUser(ctx context.Context, userCourseID int64) error {
	return srv.educationRepo.UnlinkUserCourse(ctx, userCourseID)
}
