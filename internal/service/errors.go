package service

import "errors"

var (
	ErrLoginOnServer  = errors.New("login failed on server")
	ErrSessionExpired = errors.New("session expired")
)
