package postgres

// Queries over the usuarios schema. Reads are plain selects aliased to the
// row-struct columns; mutations go through the SP_USUARIOSPKG procedures.
const (
	sqlUserColumns = `
		personal_id AS user_id,
		nombres AS name,
		apellidos AS last_name,
		fechaingreso AS hire_date,
		correo AS email,
		celular AS phone,
		identificacion AS identification,
		virtual AS is_virtual,
		cuenta AS account,
		direccion AS address,
		rol_id AS role_id,
		tipoidentificacion_id AS identification_type_id,
		surcusal_id AS branch_office_id,
		estadopersona_id AS person_state_id,
		mediopago_id AS payment_method_id,
		contrasena AS password`

	sqlAllUsers = `
		SELECT ` + sqlUserColumns + `
		FROM usuarios."TB_Personales"
		ORDER BY personal_id ASC`

	sqlUserByID = `
		SELECT ` + sqlUserColumns + `
		FROM usuarios."TB_Personales"
		WHERE personal_id = ?`

	sqlUserByIdentification = `
		SELECT ` + sqlUserColumns + `
		FROM usuarios."TB_Personales"
		WHERE identificacion = ?`

	sqlUserAccountByEmail = `
		SELECT
			personal_id AS user_id,
			correo AS email,
			contrasena AS password
		FROM usuarios."TB_Personales"
		WHERE correo = ?`

	sqlRoleByUserID = `
		SELECT
			tp."rol_id" AS role_id,
			tr."nombre" AS name
		FROM usuarios."TB_Personales" tp
		LEFT JOIN usuarios."TB_Roles" tr
			ON tp."rol_id" = tr."rol_id"
		WHERE tp.personal_id = ?`

	sqlAllStates = `
		SELECT
			tep."estadopersona_id" AS state_id,
			tep."estado" AS name
		FROM usuarios."TB_EstadosPersonas" tep
		ORDER BY tep."estado" ASC`

	sqlAllRoles = `
		SELECT
			tr."rol_id" AS role_id,
			tr."nombre" AS name
		FROM usuarios."TB_Roles" tr
		ORDER BY tr."nombre" ASC`

	sqlAllIdentificationTypes = `
		SELECT
			tti."tipoidentificacion_id" AS identification_type_id,
			tti."tipo" AS name
		FROM usuarios."TB_TipoIdentificacion" tti
		ORDER BY tti."tipo" ASC`

	sqlSaveUser   = `CALL usuarios."SP_USUARIOSPKG_AGREGARUSUARIO"(?, ?)`
	sqlUpdateUser = `CALL usuarios."SP_USUARIOSPKG_EDITARUSUARIO"(?, ?)`
	sqlDeleteUser = `CALL usuarios."SP_USUARIOSPKG_ELIMINARUSUARIO"(?)`
)

// Fault queries. The stored day range is split into its bounds on reads.
const (
	sqlFaultColumns = `
		tf."falta_id" AS fault_id,
		tf."personal_id" AS user_id,
		tf."justificacion" AS reason,
		lower(tf."fecha") AS start_date,
		upper(tf."fecha") AS end_date`

	sqlAllFaults = `
		SELECT ` + sqlFaultColumns + `
		FROM usuarios."TB_Faltas" tf
		ORDER BY tf."falta_id" ASC`

	sqlFaultByID = `
		SELECT ` + sqlFaultColumns + `
		FROM usuarios."TB_Faltas" tf
		WHERE tf."falta_id" = ?`

	sqlFaultsByUserID = `
		SELECT ` + sqlFaultColumns + `
		FROM usuarios."TB_Faltas" tf
		WHERE tf."personal_id" = ?`

	sqlCurrentFaultsByUserID = `
		SELECT ` + sqlFaultColumns + `
		FROM usuarios."TB_Faltas" tf
		WHERE tf."personal_id" = ?
			AND tf."fecha" @> CURRENT_DATE`

	sqlSaveFault   = `CALL usuarios."SP_USUARIOSPKG_AGREGARFALTA"(?, ?)`
	sqlUpdateFault = `CALL usuarios."SP_USUARIOSPKG_EDITARFALTA"(?, ?)`
	sqlDeleteFault = `CALL usuarios."SP_USUARIOSPKG_ELIMINARFALTA"(?)`
)

// Employee document queries: the document-type catalog and the link table.
const (
	sqlAllFileTypes = `
		SELECT
			tta."tipoArchivo_id" AS file_type_id,
			tta."tipo" AS name,
			tta."obligatorio" AS is_mandatory
		FROM usuarios."TB_TipoArchivos" tta
		ORDER BY tta."tipo" ASC`

	sqlUserFileColumns = `
		tap."archivoPersonal_id" AS user_file_id,
		tap."tipoArchivo_id" AS file_type_id,
		tta."tipo" AS file_type_name,
		tap."archivo_id" AS file_id,
		tap."personal_id" AS user_id`

	sqlAllUserFiles = `
		SELECT ` + sqlUserFileColumns + `
		FROM usuarios."TB_ArchivosPersonales" tap
		LEFT JOIN usuarios."TB_TipoArchivos" tta
			ON tap."tipoArchivo_id" = tta."tipoArchivo_id"
		ORDER BY tap."archivoPersonal_id" ASC`

	sqlUserFilesByUserID = `
		SELECT ` + sqlUserFileColumns + `
		FROM usuarios."TB_ArchivosPersonales" tap
		LEFT JOIN usuarios."TB_TipoArchivos" tta
			ON tap."tipoArchivo_id" = tta."tipoArchivo_id"
		WHERE tap."personal_id" = ?
		ORDER BY tap."archivo_id" ASC`

	sqlUserFileByUserAndFile = `
		SELECT ` + sqlUserFileColumns + `
		FROM usuarios."TB_ArchivosPersonales" tap
		LEFT JOIN usuarios."TB_TipoArchivos" tta
			ON tap."tipoArchivo_id" = tta."tipoArchivo_id"
		WHERE tap."personal_id" = ? AND tap."archivo_id" = ?`

	sqlSaveFileType   = `CALL usuarios."SP_USUARIOSPKG_AGREGARTIPOARCHIVO"(?, ?)`
	sqlUpdateFileType = `CALL usuarios."SP_USUARIOSPKG_EDITARTIPOARCHIVO"(?, ?)`
	sqlDeleteFileType = `CALL usuarios."SP_USUARIOSPKG_ELIMINARTIPOARCHIVO"(?)`
	sqlSaveUserFile   = `CALL usuarios."SP_USUARIOSPKG_AGREGARARCHIVOPERSONAL"(?, ?)`
	sqlDeleteUserFile = `CALL usuarios."SP_USUARIOSPKG_ELIMINARARCHIVOPERSONAL"(?)`
)
