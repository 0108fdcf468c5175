package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgErrCode extrae el código SQLSTATE de un error de pgx; cadena vacía si el
// error no viene de PostgreSQL.
func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgErrCode(err) == "23505" || strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation violación de foreign key (23503), por ejemplo un
// registro diario que referencia un producto inexistente.
func isForeignKeyViolation(err error) bool {
	return pgErrCode(err) == "23503" || strings.Contains(err.Error(), "23503")
}
