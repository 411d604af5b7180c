package postgres

// Shared lookup-table queries over the public schema.
const (
	sqlBranchOfficeColumns = `
		ts."surcusal_id" AS branch_office_id,
		ts."nombre" AS name,
		ts."direccion" AS address,
		ts."ciudad_id" AS city_id`

	sqlAllBranchOffices = `
		SELECT ` + sqlBranchOfficeColumns + `
		FROM public."TB_Surcusal" ts
		ORDER BY ts."nombre" ASC`

	sqlBranchOfficeByID = `
		SELECT ` + sqlBranchOfficeColumns + `
		FROM public."TB_Surcusal" ts
		WHERE ts."surcusal_id" = ?`

	sqlBranchOfficesByName = `
		SELECT ` + sqlBranchOfficeColumns + `
		FROM public."TB_Surcusal" ts
		WHERE lower(ts."nombre") LIKE ?
		ORDER BY ts."nombre" ASC`

	sqlPaymentMethodColumns = `
		tmp."mediopago_id" AS payment_method_id,
		tmp."mediopago" AS name`

	sqlAllPaymentMethods = `
		SELECT ` + sqlPaymentMethodColumns + `
		FROM public."TB_MediosPago" tmp
		ORDER BY tmp."mediopago" ASC`

	sqlPaymentMethodByID = `
		SELECT ` + sqlPaymentMethodColumns + `
		FROM public."TB_MediosPago" tmp
		WHERE tmp."mediopago_id" = ?`

	sqlPaymentMethodsByName = `
		SELECT ` + sqlPaymentMethodColumns + `
		FROM public."TB_MediosPago" tmp
		WHERE lower(tmp."mediopago") LIKE ?
		ORDER BY tmp."mediopago" ASC`

	sqlSaveBranchOffice    = `CALL public."SP_ESPACIOSPKG_AGREGARSURCUSAL"(?, ?)`
	sqlUpdateBranchOffice  = `CALL public."SP_ESPACIOSPKG_EDITARSURCUSAL"(?, ?)`
	sqlSavePaymentMethod   = `CALL public."SP_PAGOSPKG_AGREGARMETODOPAGO"(?, ?)`
	sqlUpdatePaymentMethod = `CALL public."SP_PAGOSPKG_EDITARMETODOPAGO"(?, ?)`
)
