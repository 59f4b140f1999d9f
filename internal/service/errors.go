package service

import "errors"

// ErrCredencialesInvalidas covers both unknown-username and wrong-password
// login failures — one error, one message, no user enumeration.
var ErrCredencialesInvalidas = errors.New("credenciales invalidas")
