// Package apperrors define los tipos de fallo que producen las operaciones
// del núcleo. Toda operación distingue su tipo de fallo con errors.Is; la
// capa HTTP los traduce a códigos de estado y textos para el usuario.
package apperrors

import "errors"

var (
	// ErrValidation: entrada vacía, malformada o fuera de límites.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateRequest: ya existe una solicitud para el par ordenado.
	ErrDuplicateRequest = errors.New("connection request already exists")

	// ErrAlreadyConnected: ya hay una solicitud aceptada entre los usuarios.
	ErrAlreadyConnected = errors.New("users are already connected")

	// ErrUnauthorized: el predicado de autorización falló (no conectados,
	// no es el destinatario, sin autenticar).
	ErrUnauthorized = errors.New("not authorized")

	// ErrPolicyDenied: el destinatario no es elegible para la operación.
	ErrPolicyDenied = errors.New("operation not permitted")

	// ErrNotFound: el recurso no existe o el actor no tiene visibilidad
	// sobre él; no se distingue para no filtrar existencia.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyResolved: la solicitud ya está en un estado terminal.
	ErrAlreadyResolved = errors.New("request already resolved")

	// ErrTransient: fallo de conectividad o del almacén; el llamador puede
	// reintentar, el núcleo no reintenta mutaciones.
	ErrTransient = errors.New("transient store failure")
)
