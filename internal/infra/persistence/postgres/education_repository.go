package postgres

import (
	"context"

	"hrcore/internal/domain/entity"
	"hrcore/internal/domain/repository"
	"hrcore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// educationRepository implements repository.EducationRepository using GORM.
type educationRepository struct {
	db *gorm.DB
}

// NewEducationRepository is the constructor for educationRepository.
func NewEducationRepository(db *gorm.DB) repository.EducationRepository {
	return &educationRepository{db: db}
}

// AllSkills lists the skill catalog.
func (repo *educationRepository) AllSkills(ctx context.Context) ([]*entity.Skill, error) {
	var rows []*model.SkillRow
	if err := repo.db.WithContext(ctx).Raw(sqlAllSkills).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list skills")
	}

	skills := make([]*entity.Skill, 0, len(rows))
	for _, row := range rows {
		skills = append(skills, &entity.Skill{SkillID: row.SkillID, Name: row.Name, Weight: row.Weight})
	}

	return skills, nil
}

// SaveSkill persists a new skill and returns the generated id.
func (repo *educationRepository) SaveSkill(ctx context.Context, skill *entity.Skill) (int64, error) {
	return execProcedureSave(ctx, repo.db, sqlSaveSkill, fromSkillDomain(skill))
}

// UpdateSkill rewrites a skill.
func (repo *educationRepository) UpdateSkill(ctx context.Context, skillID int64, skill *entity.Skill) error {
	return execProcedureUpdate(ctx, repo.db, sqlUpdateSkill, fromSkillDomain(skill), skillID)
}

// DeleteSkill removes a skill permanently.
func (repo *educationRepository) DeleteSkill(ctx context.Context, skillID int64) error {
	return execProcedureDelete(ctx, repo.db, sqlDeleteSkill, skillID)
}

// AllUserSkills lists every employee↔skill link with the skill name joined in.
func (repo *educationRepository) AllUserSkills(ctx context.Context) ([]*entity.UserSkill, error) {
	var rows []*model.UserSkillRow
	if err := repo.db.WithContext(ctx).Raw(sqlAllUserSkills).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user skills")
	}

	return toUserSkillsDomain(rows), nil
}

// UserSkillsByUserID lists the skill links of one employee.
func (repo *educationRepository) UserSkillsByUserID(ctx context.Context, userID int64) ([]*entity.UserSkill, error) {
	var rows []*model.UserSkillRow
	if err := repo.db.WithContext(ctx).Raw(sqlUserSkillsByUserID, userID).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user skills by user")
	}

	return toUserSkillsDomain(rows), nil
}

// LinkUserSkill binds a skill to an employee and returns the generated link id.
func (repo *educationRepository) LinkUserSkill(ctx context.Context, link *entity.UserSkill) (int64, error) {
	payload := &model.UserSkillPayload{
		SkillID:  link.SkillID,
		UserID:   link.UserID,
		Affinity: link.Affinity,
	}

	return execProcedureSave(ctx, repo.db, sqlLinkUserSkill, payload)
}

// UpdateUserSkillAffinity rewrites the affinity score of one link.
func (repo *educationRepository) UpdateUserSkillAffinity(ctx context.Context, userSkillID int64, affinity int) error {
	payload := &model.UserSkillPayload{Affinity: affinity}

	return execProcedureUpdate(ctx, repo.db, sqlUpdateUserSkill, payload, userSkillID)
}

// AllCourses lists the training-course catalog.
func (repo *educationRepository) AllCourses(ctx context.Context) ([]*entity.Course, error) {
	var rows []*model.CourseRow
	if err := repo.db.WithContext(ctx).Raw(sqlAllCourses).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list courses")
	}

	courses := make([]*entity.Course, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, &entity.Course{
			CourseID:  row.CourseID,
			Name:      row.Name,
			StartDate: row.StartDate,
			EndDate:   row.EndDate,
		})
	}

	return courses, nil
}

// SaveCourse persists a new course and returns the generated id.
func (repo *educationRepository) SaveCourse(ctx context.Context, course *entity.Course) (int64, error) {
	return execProcedureSave(ctx, repo.db, sqlSaveCourse, fromCourseDomain(course))
}

// UpdateCourse rewrites a course.
func (repo *educationRepository) UpdateCourse(ctx context.Context, courseID int64, course *entity.Course) error {
	return execProcedureUpdate(ctx, repo.db, sqlUpdateCourse, fromCourseDomain(course), courseID)
}

// DeleteCourse removes a course permanently.
func (repo *educationRepository) DeleteCourse(ctx context.Context, courseID int64) error {
	return execProcedureDelete(ctx, repo.db, sqlDeleteCourse, courseID)
}

// LinkUserCourse enrolls an employee in a course and returns the link id.
func (repo *educationRepository) LinkUserCourse(ctx context.Context, userID, courseID int64) (int64, error) {
	payload := &model.UserCoursePayload{UserID: userID, CourseID: courseID}

	return execProcedureSave(ctx, repo.db, sqlLinkUserCourse, payload)
}

// MarkAttendance records that an employee attended a course.
func (repo *educationRepository) MarkAttendance(ctx context.Context, userID, courseID int64) error {
	payload := &model.UserCoursePayload{UserID: userID, CourseID: courseID}

	return execProcedureUpdate(ctx, repo.db, sqlMarkAttendance, payload, 0)
}

// UnlinkUserCourse removes a course enrollment.
func (repo *educationRepository) UnlinkUserCourse(ctx context.Context, userCourseID int64) error {
	return execProcedureDelete(ctx, repo.db, sqlUnlinkUserCourse, userCourseID)
}

func toUserSkillsDomain(rows []*model.UserSkillRow) []*entity.UserSkill {
	links := make([]*entity.UserSkill, 0, len(rows))
	for _, row := range rows {
		links = append(links, &entity.UserSkill{
			UserSkillID: row.UserSkillID,
			SkillID:     row.SkillID,
			UserID:      row.UserID,
			Affinity:    row.Affinity,
			SkillName:   row.SkillName,
		})
	}

	return links
}

func fromSkillDomain(data *entity.Skill) *model.SkillPayload {
	if data == nil {
		return nil
	}

	return &model.SkillPayload{Name: data.Name, Weight: data.Weight}
}

func fromCourseDomain(data *entity.Course) *model.CoursePayload {
	if data == nil {
		return nil
	}

	return &model.CoursePayload{
		Name: data.Name,
		Date: "[" + data.StartDate.Format(rangeDateLayout) + "," +
			data.EndDate.Format(rangeDateLayout) + "]",
		SkillIDs: data.SkillIDs,
	}
}
