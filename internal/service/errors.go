package service

import "errors"

// Blob server errors.
var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrInvalidAccount          = errors.New("invalid account name")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrWrongPassword           = errors.New("wrong password")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrStateNotFound is returned when an account has not uploaded a state
	// blob yet.
	ErrStateNotFound = errors.New("state blob not found")

	// ErrContentNotFound is returned for an unknown content file.
	ErrContentNotFound = errors.New("content file not found")
)

// Sync client errors.
var (
	ErrLoadLocalState = errors.New("failed to load local state")
	ErrSaveLocalState = errors.New("failed to save local state")
	ErrBuildSnapshot  = errors.New("failed to build snapshot")
	ErrApplySnapshot  = errors.New("failed to apply merged snapshot")
	ErrDownloadState  = errors.New("failed to download remote state")
	ErrUploadState    = errors.New("failed to upload state")
	ErrEncryptState   = errors.New("failed to encrypt state")
	ErrSyncContent    = errors.New("failed to sync content files")

	ErrInvalidPositionReport = errors.New("invalid position report")
	ErrArchiveItemNotFound   = errors.New("archive item not found")
)
