package usecase

import (
	"context"

	"hrcore/internal/domain/entity"
)

// EducationUsecase defines the skill-catalog and training operations.
type EducationUsecase interface {
	AllSkills(ctx context.Context) ([]*entity.Skill, error)
	CreateSkill(ctx context.Context, skill *entity.Skill) (int64, error)
	UpdateSkill(ctx context.Context, skillID int64, skill *entity.Skill) error
	DeleteSkill(ctx context.Context, skillID int64) error

	AllUserSkills(ctx context.Context) ([]*entity.UserSkill, error)
	UserSkillsByUserID(ctx context.Context, userID int64) ([]*entity.UserSkill, error)
	LinkUserSkill(ctx context.Context, link *entity.UserSkill) (int64, error)
	UpdateUserSkillAffinity(ctx context.Context, userSkillID int64, affinity int) error

	AllCourses(ctx context.Context) ([]*entity.Course, error)
	CreateCourse(ctx context.Context, course *entity.Course) (int64, error)
	UpdateCourse(ctx context.Context, courseID int64, course *entity.Course) error
	DeleteCourse(ctx context.Context, courseID int64) error

	EnrollUser(ctx context.Context, userID, courseID int64) (int64, error)
	MarkAttendance(ctx context.Context, userID, courseID int64) error
	UnenrollUser(ctx context.Context, userCourseID int64) error
}
