package main

import "errors"

var errMissingPassword = errors.New("senha do administrador é obrigatória")
