package entity

import "time"

// Skill is a row of the skill catalog with its relative weight.
type Skill struct {
	SkillID int64
	Name    string
	Weight  int
}

// UserSkill links an employee to a skill with an affinity score.
type UserSkill struct {
	UserSkillID int64
	SkillID     int64
	UserID      int64
	Affinity    int
	SkillName   string // Joined from the skill catalog on reads.
}

// Course is a training course covering a date range and a set of skills.
type Course struct {
	CourseID  int64
	Name      string
	StartDate time.Time
	EndDate   time.Time
	SkillIDs  []int64
}

// UserCourse links an employee to a course, with attendance tracking.
type UserCourse struct {
	UserCourseID int64
	UserID       int64
	CourseID     int64
	Attended     bool
}
