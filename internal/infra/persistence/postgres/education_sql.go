package postgres

// Skill and course queries. Mutations go through the SP_HABILIDADESPKG and
// SP_CURSOSPKG procedures.
const (
	sqlAllSkills = `
		SELECT
			uth."habilidad_id" AS skill_id,
			uth."nombre" AS name,
			uth."peso" AS weight
		FROM usuarios."TB_Habilidades" uth`

	sqlUserSkillColumns = `
		uthp."habilidadPersona_id" AS user_skill_id,
		uthp."habilidad_id" AS skill_id,
		uthp."personal_id" AS user_id,
		uthp."afinidad" AS affinity,
		uth."nombre" AS skill_name`

	sqlAllUserSkills = `
		SELECT ` + sqlUserSkillColumns + `
		FROM usuarios."TB_HabilidadesPersonales" uthp
		LEFT JOIN usuarios."TB_Habilidades" uth
			ON uthp."habilidad_id" = uth."habilidad_id"`

	sqlUserSkillsByUserID = `
		SELECT ` + sqlUserSkillColumns + `
		FROM usuarios."TB_HabilidadesPersonales" uthp
		LEFT JOIN usuarios."TB_Habilidades" uth
			ON uthp."habilidad_id" = uth."habilidad_id"
		WHERE uthp."personal_id" = ?`

	sqlSaveSkill       = `CALL usuarios."SP_HABILIDADESPKG_AGREGARHABILIDAD"(?, ?)`
	sqlUpdateSkill     = `CALL usuarios."SP_HABILIDADESPKG_EDITARHABILIDAD"(?, ?)`
	sqlDeleteSkill     = `CALL usuarios."SP_HABILIDADESPKG_ELIMINARHABILIDAD"(?)`
	sqlLinkUserSkill   = `CALL usuarios."SP_HABILIDADESPKG_VINCULARHABILIDADPERSONA"(?, ?)`
	sqlUpdateUserSkill = `CALL usuarios."SP_HABILIDADESPKG_EDITARHABILIDADPERSONA"(?, ?)`

	sqlAllCourses = `
		SELECT
			utc."curso_id" AS course_id,
			utc."nombre" AS name,
			lower(utc."fecha") AS start_date,
			upper(utc."fecha") AS end_date
		FROM usuarios."TB_Cursos" utc
		ORDER BY utc."nombre" ASC`

	sqlSaveCourse       = `CALL usuarios."SP_CURSOSPKG_AGREGARCURSO"(?, ?)`
	sqlUpdateCourse     = `CALL usuarios."SP_CURSOSPKG_EDITARCURSO"(?, ?)`
	sqlDeleteCourse     = `CALL usuarios."SP_CURSOSPKG_ELIMINARCURSO"(?)`
	sqlLinkUserCourse   = `CALL usuarios."SP_CURSOSPKG_VINCULARCURSOPERSONA"(?, ?)`
	sqlMarkAttendance   = `CALL usuarios."SP_CURSOSPKG_MARCARASISTENCIA"(?, ?)`
	sqlUnlinkUserCourse = `CALL usuarios."SP_CURSOSPKG_DESVINCULARCURSOPERSONA"(?)`
)
