package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Taxonomía: validación (entrada del usuario), formato (plantilla
// estructuralmente incompatible) e IO (archivo ilegible/inescribible).
var (
	ErrValidation      = errors.New("entrada inválida")
	ErrFormat          = errors.New("formato de plantilla incompatible")
	ErrIO              = errors.New("error de entrada/salida")
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrDuplicatePartNo = errors.New("número de parte duplicado")
	ErrMissingParent   = errors.New("parte sin padre válido")
	ErrPartNoCollision = errors.New("colisión de números de parte generados")
	ErrFieldTooLong    = errors.New("campo excede la longitud máxima")
	ErrInvalidQuantity = errors.New("la cantidad debe ser positiva")
	ErrInvalidLevel    = errors.New("nivel fuera de rango (0-3)")
	ErrNoRoot          = errors.New("el documento debe tener exactamente una parte de nivel 0")
	ErrMissingHeaders  = errors.New("faltan columnas requeridas en la plantilla")
	ErrHeaderMismatch  = errors.New("los encabezados no coinciden con el formato esperado")
	ErrCategorySource  = errors.New("combinación Category/Source inválida")
)

// IsValidation indica si err pertenece a la familia de errores de validación.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrDuplicatePartNo) ||
		errors.Is(err, ErrMissingParent) ||
		errors.Is(err, ErrPartNoCollision) ||
		errors.Is(err, ErrFieldTooLong) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidLevel) ||
		errors.Is(err, ErrNoRoot) ||
		errors.Is(err, ErrCategorySource)
}

// IsFormat indica si err pertenece a la familia de errores de formato.
func IsFormat(err error) bool {
	return errors.Is(err, ErrFormat) ||
		errors.Is(err, ErrMissingHeaders) ||
		errors.Is(err, ErrHeaderMismatch)
}
