package model

import "errors"

// Error classes. Every domain error wraps exactly one of them so the HTTP
// boundary can map it to a status code with errors.Is.
var (
	ErrValidation   = errors.New("validacion")
	ErrNotFound     = errors.New("no encontrado")
	ErrPrecondition = errors.New("precondicion no cumplida")
	ErrUnauthorized = errors.New("no autorizado")
)

// DomainError carries a user-facing message and the class it belongs to.
type DomainError struct {
	class error
	msg   string
}

func (e *DomainError) Error() string { return e.msg }
func (e *DomainError) Unwrap() error { return e.class }

func newError(class error, msg string) error {
	return &DomainError{class: class, msg: msg}
}

// ── Validation ───────────────────────────────────────────────────────────────

var (
	ErrEmptyCart          = newError(ErrValidation, "el carrito esta vacio")
	ErrInvalidQuantity    = newError(ErrValidation, "la cantidad no puede quedar por debajo de cero")
	ErrNegativeAmount     = newError(ErrValidation, "el monto no puede ser negativo")
	ErrNegativePrice      = newError(ErrValidation, "el precio no puede ser negativo")
	ErrInvalidCategory    = newError(ErrValidation, "categoria invalida")
	ErrInvalidPayment     = newError(ErrValidation, "metodo de pago invalido")
	ErrInvalidTableStatus = newError(ErrValidation, "estado de mesa invalido")
	ErrEmptyProductName   = newError(ErrValidation, "el nombre del producto es obligatorio")
)

// ── Not found ────────────────────────────────────────────────────────────────

var (
	ErrProductNotFound = newError(ErrNotFound, "producto no encontrado")
	ErrTableNotFound   = newError(ErrNotFound, "mesa no encontrada")
	ErrOrderNotFound   = newError(ErrNotFound, "pedido no encontrado")
	ErrSaleNotFound    = newError(ErrNotFound, "venta no encontrada")
)

// ── Preconditions ────────────────────────────────────────────────────────────

var (
	ErrSessionAlreadyOpen = newError(ErrPrecondition, "ya existe una caja abierta")
	ErrNoOpenSession      = newError(ErrPrecondition, "no hay sesion de caja abierta")
	ErrInvalidTransition  = newError(ErrPrecondition, "transicion de estado no permitida")
	ErrNoActiveOrder      = newError(ErrPrecondition, "la mesa no tiene un pedido activo")
)

// ── Auth ─────────────────────────────────────────────────────────────────────

var (
	ErrInvalidCredentials = newError(ErrUnauthorized, "credenciales invalidas")
	ErrNotLoggedIn        = newError(ErrUnauthorized, "no hay usuario autenticado")
)
