package model

import "time"

// SkillRow is a row of usuarios."TB_Habilidades".
type SkillRow struct {
	SkillID int64  `gorm:"column:skill_id"`
	Name    string `gorm:"column:name"`
	Weight  int    `gorm:"column:weight"`
}

// UserSkillRow is a row of usuarios."TB_HabilidadesPersonales", joined with
// the skill catalog on reads.
type UserSkillRow struct {
	UserSkillID int64  `gorm:"column:user_skill_id"`
	SkillID     int64  `gorm:"column:skill_id"`
	UserID      int64  `gorm:"column:user_id"`
	Affinity    int    `gorm:"column:affinity"`
	SkillName   string `gorm:"column:skill_name"`
}

// CourseRow is a row of usuarios."TB_Cursos" with the day range split.
type CourseRow struct {
	CourseID  int64     `gorm:"column:course_id"`
	Name      string    `gorm:"column:name"`
	StartDate time.Time `gorm:"column:start_date"`
	EndDate   time.Time `gorm:"column:end_date"`
}

// UserCourseRow is a row of usuarios."TB_CursosPersonales".
type UserCourseRow struct {
	UserCourseID int64 `gorm:"column:user_course_id"`
	UserID       int64 `gorm:"column:user_id"`
	CourseID     int64 `gorm:"column:course_id"`
	Attended     bool  `gorm:"column:attended"`
}

// SkillPayload is the json body of the skill save/update procedures.
type SkillPayload struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

// UserSkillPayload is the json body of the skill-link procedures.
type UserSkillPayload struct {
	SkillID  int64 `json:"habilityId"`
	UserID   int64 `json:"userId"`
	Affinity int   `json:"afinity"`
}

// CoursePayload is the json body of the course save/update procedures.
type CoursePayload struct {
	Name     string  `json:"name"`
	Date     string  `json:"date"`
	SkillIDs []int64 `json:"habilities,omitempty"`
}

// UserCoursePayload is the json body of the course-link procedure.
type UserCoursePayload struct {
	UserID   int64 `json:"userId"`
	CourseID int64 `json:"courseId"`
}
