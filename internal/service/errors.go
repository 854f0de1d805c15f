package service

import "errors"

var (
	ErrUnknownResource    = errors.New("unknown resource")
	ErrResourceNotFound   = errors.New("resource not found")
	ErrInvalidResourceID  = errors.New("invalid resource id")
	ErrPatchConflict      = errors.New("unable to apply patch")
	ErrShadowMissing      = errors.New("no shadow for node, fetch the resource first")
	ErrInvalidEntity      = errors.New("entity is not valid")
	ErrResourceRegistered = errors.New("resource is already registered")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrNodeRegistrationFailed  = errors.New("node registration failed")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")

	ErrNotRegistered      = errors.New("client node is not registered")
	ErrRegisterOnServer   = errors.New("error registering node on server")
	ErrSyncWithServer     = errors.New("error synchronizing with server")
	ErrServerUnavailable  = errors.New("server is unavailable")
	ErrEmptyDescription   = errors.New("todo description is empty")
	ErrTodoIndexOutOfList = errors.New("todo index is out of list")
)
