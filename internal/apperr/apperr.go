package apperr

import "errors"

// Invalid входные данные не прошли проверку до обращения к backend.
var Invalid = errors.New("invalid input")

// Conflict операция конфликтует с текущим состоянием.
var Conflict = errors.New("conflict")

// NotFound запрошенный объект не существует.
var NotFound = errors.New("not found")

// Unauthenticated нет активной сессии администратора.
var Unauthenticated = errors.New("not authenticated")
