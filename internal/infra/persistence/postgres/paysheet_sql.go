package postgres

// Queries over the nominas schema. Mutations go through the SP_NOMINASPKG
// procedures.
const (
	sqlAllJobPositions = `
		SELECT
			tc."cargo_id" AS job_position_id,
			tc."cargo" AS name
		FROM nominas."TB_Cargo" tc
		ORDER BY tc."cargo" ASC`

	sqlJobPositionByID = `
		SELECT
			tc."cargo_id" AS job_position_id,
			tc."cargo" AS name
		FROM nominas."TB_Cargo" tc
		WHERE tc."cargo_id" = ?`

	sqlPaysheetColumns = `
		tcn."contratoNomina_id" AS paysheet_id,
		tcn."salario" AS salary,
		tcn."fecha" AS contract_range,
		tcn."archivo_id" AS file_id,
		tcn."tipoNomina_id" AS paysheet_type_id,
		tcn."tipoContrato_id" AS contract_type_id,
		tcn."cargo_id" AS job_position_id,
		tcn."requerimiento_id" AS request_id,
		tcn."personal_id" AS user_id`

	sqlAllPaysheets = `
		SELECT ` + sqlPaysheetColumns + `,
			tp."nombres" || ' ' || tp."apellidos" AS user_name,
			tp."identificacion" AS identification
		FROM nominas."TB_ContratoNomina" tcn
		LEFT JOIN usuarios."TB_Personales" tp
			ON tp."personal_id" = tcn."personal_id"`

	sqlPaysheetsByUserID = `
		SELECT ` + sqlPaysheetColumns + `
		FROM nominas."TB_ContratoNomina" tcn
		WHERE tcn."personal_id" = ?`

	sqlAllContractTypes = `
		SELECT
			ttc."tipoContrato_id" AS contract_type_id,
			ttc."contrato" AS name,
			ttc."maximoDias" AS max_days
		FROM nominas."TB_TipoContrato" ttc
		ORDER BY ttc."contrato" ASC`

	sqlContractTypeByID = `
		SELECT
			ttc."tipoContrato_id" AS contract_type_id,
			ttc."contrato" AS name,
			ttc."maximoDias" AS max_days
		FROM nominas."TB_TipoContrato" ttc
		WHERE ttc."tipoContrato_id" = ?`

	sqlAllPaysheetTypes = `
		SELECT
			ttn."tipoNomina_id" AS paysheet_type_id,
			ttn."nomina" AS name,
			ttn."diaPago" AS pay_day
		FROM nominas."TB_TipoNomina" ttn
		ORDER BY ttn."nomina" ASC`

	sqlPaysheetTypeByID = `
		SELECT
			ttn."tipoNomina_id" AS paysheet_type_id,
			ttn."nomina" AS name,
			ttn."diaPago" AS pay_day
		FROM nominas."TB_TipoNomina" ttn
		WHERE ttn."tipoNomina_id" = ?`

	sqlSaveJobPosition    = `CALL nominas."SP_NOMINASPKG_AGREGARCARGO"(?, ?)`
	sqlSaveContractType   = `CALL nominas."SP_NOMINASPKG_AGREGARTIPOCONTRATO"(?, ?)`
	sqlSavePaysheetType   = `CALL nominas."SP_NOMINASPKG_AGREGARTIPONOMINA"(?, ?)`
	sqlMakePaysheet       = `CALL nominas."SP_NOMINASPKG_CREARNOMINA"(?, ?)`
	sqlUpdateJobPosition  = `CALL nominas."SP_NOMINASPKG_EDITARCARGO"(?, ?)`
	sqlUpdatePaysheet     = `CALL nominas."SP_NOMINASPKG_EDITARNOMINA"(?, ?)`
	sqlUpdateContractType = `CALL nominas."SP_NOMINASPKG_EDITARTIPOCONTRATO"(?, ?)`
	sqlUpdatePaysheetType = `CALL nominas."SP_NOMINASPKG_EDITARTIPONOMINA"(?, ?)`
	sqlDeleteJobPosition  = `CALL nominas."SP_NOMINASPKG_ELIMINARCARGO"(?)`
	sqlDeletePaysheet     = `CALL nominas."SP_NOMINASPKG_ELIMINARNOMINA"(?)`
	sqlDeleteContractType = `CALL nominas."SP_NOMINASPKG_ELIMINARTIPOCONTRATO"(?)`
	sqlDeletePaysheetType = `CALL nominas."SP_NOMINASPKG_ELIMINARTIPONOMINA"(?)`
)

// Novelty, concept and payment queries.
const (
	sqlNoveltyColumns = `
		tn."novedad_id" AS novelty_id,
		tn."contratoNomina_id" AS contract_id,
		tn."concepto_id" AS concept_id,
		tn."detalle" AS detail,
		lower(tn."fecha") AS start_date,
		upper(tn."fecha") AS end_date`

	sqlAllNovelties = `
		SELECT ` + sqlNoveltyColumns + `
		FROM nominas."TB_Novedades" tn
		ORDER BY tn."novedad_id" ASC`

	sqlNoveltiesByDate = `
		SELECT ` + sqlNoveltyColumns + `
		FROM nominas."TB_Novedades" tn
		WHERE tn."fecha" @> ?::date
		ORDER BY tn."novedad_id" ASC`

	sqlNoveltyByID = `
		SELECT ` + sqlNoveltyColumns + `
		FROM nominas."TB_Novedades" tn
		WHERE tn."novedad_id" = ?`

	sqlAllConceptTypes = `
		SELECT
			ttc."tipoConcepto_id" AS concept_type_id,
			ttc."concepto" AS name,
			ttc."valorMinimo" AS min_value,
			ttc."valorMaximo" AS max_value,
			ttc."porcentaje" AS percentage
		FROM nominas."TB_TipoConcepto" ttc
		ORDER BY ttc."concepto" ASC`

	sqlConceptTypeByID = `
		SELECT
			ttc."tipoConcepto_id" AS concept_type_id,
			ttc."concepto" AS name,
			ttc."valorMinimo" AS min_value,
			ttc."valorMaximo" AS max_value,
			ttc."porcentaje" AS percentage
		FROM nominas."TB_TipoConcepto" ttc
		WHERE ttc."tipoConcepto_id" = ?`

	sqlAllConcepts = `
		SELECT
			tc."concepto_id" AS concept_id,
			tc."tipoConcepto_id" AS concept_type_id,
			tc."ciudad_id" AS city_id,
			tc."empresa_id" AS company_id
		FROM nominas."TB_Conceptos" tc
		ORDER BY tc."concepto_id" ASC`

	sqlConceptByID = `
		SELECT
			tc."concepto_id" AS concept_id,
			tc."tipoConcepto_id" AS concept_type_id,
			tc."ciudad_id" AS city_id,
			tc."empresa_id" AS company_id
		FROM nominas."TB_Conceptos" tc
		WHERE tc."concepto_id" = ?`

	sqlPaymentColumns = `
		tp."pago_id" AS payment_id,
		tp."archivo_id" AS file_id,
		tp."fechaPago" AS paid_at,
		tp."novedad_id" AS novelty_id,
		tp."concepto_id" AS concept_id,
		tp."contratoNomina_id" AS contract_id`

	sqlAllPayments = `
		SELECT ` + sqlPaymentColumns + `
		FROM nominas."TB_Pagos" tp
		ORDER BY tp."pago_id" ASC`

	sqlPaymentByID = `
		SELECT ` + sqlPaymentColumns + `
		FROM nominas."TB_Pagos" tp
		WHERE tp."pago_id" = ?`

	sqlPaymentsByUserID = `
		SELECT ` + sqlPaymentColumns + `
		FROM nominas."TB_Pagos" tp
		INNER JOIN nominas."TB_ContratoNomina" tcn
			ON tcn."contratoNomina_id" = tp."contratoNomina_id"
		WHERE tcn."personal_id" = ?
		ORDER BY tp."pago_id" ASC`

	sqlPendingPayments = `
		SELECT ` + sqlPaymentColumns + `
		FROM nominas."TB_Pagos" tp
		WHERE tp."archivo_id" IS NULL
		ORDER BY tp."pago_id" ASC`

	sqlPendingPaymentsByUserID = `
		SELECT ` + sqlPaymentColumns + `
		FROM nominas."TB_Pagos" tp
		INNER JOIN nominas."TB_ContratoNomina" tcn
			ON tcn."contratoNomina_id" = tp."contratoNomina_id"
		WHERE tp."archivo_id" IS NULL AND tcn."personal_id" = ?
		ORDER BY tp."pago_id" ASC`

	sqlSaveNovelty       = `CALL nominas."SP_NOMINASPKG_AGREGARNOVEDAD"(?, ?)`
	sqlUpdateNovelty     = `CALL nominas."SP_NOMINASPKG_EDITARNOVEDAD"(?, ?)`
	sqlDeleteNovelty     = `CALL nominas."SP_NOMINASPKG_ELIMINARNOVEDAD"(?)`
	sqlSaveConceptType   = `CALL nominas."SP_NOMINASPKG_AGREGARTIPOCONCEPTO"(?, ?)`
	sqlUpdateConceptType = `CALL nominas."SP_NOMINASPKG_EDITARTIPOCONCEPTO"(?, ?)`
	sqlDeleteConceptType = `CALL nominas."SP_NOMINASPKG_ELIMINARTIPOCONCEPTO"(?)`
	sqlSaveConcept       = `CALL nominas."SP_NOMINASPKG_AGREGARCONCEPTO"(?, ?)`
	sqlUpdateConcept     = `CALL nominas."SP_NOMINASPKG_EDITARCONCEPTO"(?, ?)`
	sqlDeleteConcept     = `CALL nominas."SP_NOMINASPKG_ELIMINARCONCEPTO"(?)`
	sqlSavePayment       = `CALL nominas."SP_NOMINASPKG_AGREGARPAGO"(?, ?)`
	sqlUpdatePayment     = `CALL nominas."SP_NOMINASPKG_EDITARPAGO"(?, ?)`
	sqlDeletePayment     = `CALL nominas."SP_NOMINASPKG_ELIMINARPAGO"(?)`
)
