package repository

import (
	"context"

	"hrcore/internal/domain/entity"
)

// EducationRepository is the contract for the skill catalog, per-employee
// skills and training courses.
type EducationRepository interface {
	AllSkills(ctx context.Context) ([]*entity.Skill, error)
	SaveSkill(ctx context.Context, skill *entity.Skill) (int64, error)
	UpdateSkill(ctx context.Context, skillID int64, skill *entity.Skill) error
	DeleteSkill(ctx context.Context, skillID int64) error

	AllUserSkills(ctx context.Context) ([]*entity.UserSkill, error)
	UserSkillsByUserID(ctx context.Context, userID int64) ([]*entity.UserSkill, error)
	LinkUserSkill(ctx context.Context, link *entity.UserSkill) (int64, error)
	UpdateUserSkillAffinity(ctx context.Context, userSkillID int64, affinity int) error

	AllCourses(ctx context.Context) ([]*entity.Course, error)
	SaveCourse(ctx context.Context, course *entity.Course) (int64, error)
	UpdateCourse(ctx context.Context, courseID int64, course *entity.Course) error
	DeleteCourse(ctx context.Context, courseID int64) error

	LinkUserCourse(ctx context.Context, userID, courseID int64) (int64, error)
	MarkAttendance(ctx context.Context, userID, courseID int64) error
	UnlinkUserCourse(ctx context.Context, userCourseID int64) error
}
