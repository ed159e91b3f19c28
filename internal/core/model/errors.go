package model

import (
	"errors"
	"fmt"
	"strings"
)

// Code is the stable, machine-checkable identifier of a catalog error.
type Code string

const (
	// Validation
	CodeMissingMandatoryField   Code = "MISSING_MANDATORY_FIELD"
	CodeInvalidEnumValue        Code = "INVALID_ENUM_VALUE"
	CodeInvalidPlayerRange      Code = "INVALID_PLAYER_RANGE"
	CodeAtLeastOneImageRequired Code = "AT_LEAST_ONE_IMAGE_REQUIRED"
	CodeValidationFailed        Code = "VALIDATION_FAILED"

	// Repository
	CodeGameNotFound           Code = "GAME_NOT_FOUND"
	CodeGameArchivedNotVisible Code = "GAME_ARCHIVED_NOT_VISIBLE"
	CodeDataLoadFailure        Code = "DATA_LOAD_FAILURE"

	// Filtering and sorting
	CodeEmptyFilterValues   Code = "EMPTY_FILTER_VALUES"
	CodeInvalidFilterValue  Code = "INVALID_FILTER_VALUE"
	CodeUnsupportedSortMode Code = "UNSUPPORTED_SORT_MODE"

	// Card projection
	CodeGameRequired Code = "GAME_REQUIRED"

	// Archive
	CodeGameAlreadyArchived Code = "GAME_ALREADY_ARCHIVED"
	CodeGameNotArchived     Code = "GAME_NOT_ARCHIVED"
	CodeMissingArchiveFlag  Code = "MISSING_ARCHIVE_FLAG"

	// Admin
	CodeDuplicateGameID Code = "DUPLICATE_GAME_ID"
	CodeInvalidGameData Code = "INVALID_GAME_DATA"
	CodeOperationFailed Code = "OPERATION_FAILED"

	// Persistence
	CodeAuthenticationError     Code = "AUTHENTICATION_ERROR"
	CodeWriteConflict           Code = "WRITE_CONFLICT"
	CodeRepositoryUnavailable   Code = "REPOSITORY_UNAVAILABLE"
	CodeInvalidPath             Code = "INVALID_PATH"
	CodeUnknownPersistenceError Code = "UNKNOWN_PERSISTENCE_ERROR"

	// Image assets
	CodeUnsupportedImageFormat     Code = "UNSUPPORTED_IMAGE_FORMAT"
	CodeImageTooLarge              Code = "IMAGE_TOO_LARGE"
	CodeMissingAttributionMetadata Code = "MISSING_ATTRIBUTION_METADATA"
	CodeCorruptedImage             Code = "CORRUPTED_IMAGE"
)

// Error is the single error type of the catalog. Identifier fields are set only
// when relevant to the code.
type Error struct {
	Code       Code
	Message    string
	Field      string
	Value      string
	GameID     string
	FilterName string
	SortMode   string
	Path       string
	// Validation holds the full error set for VALIDATION_FAILED and INVALID_GAME_DATA.
	Validation []*Error
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on Code so the sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is comparisons.
var (
	ErrMissingMandatoryField   = &Error{Code: CodeMissingMandatoryField}
	ErrInvalidEnumValue        = &Error{Code: CodeInvalidEnumValue}
	ErrInvalidPlayerRange      = &Error{Code: CodeInvalidPlayerRange}
	ErrAtLeastOneImageRequired = &Error{Code: CodeAtLeastOneImageRequired}
	ErrValidationFailed        = &Error{Code: CodeValidationFailed}
	ErrGameNotFound            = &Error{Code: CodeGameNotFound}
	ErrGameArchivedNotVisible  = &Error{Code: CodeGameArchivedNotVisible}
	ErrDataLoadFailure         = &Error{Code: CodeDataLoadFailure}
	ErrEmptyFilterValues       = &Error{Code: CodeEmptyFilterValues}
	ErrInvalidFilterValue      = &Error{Code: CodeInvalidFilterValue}
	ErrUnsupportedSortMode     = &Error{Code: CodeUnsupportedSortMode}
	ErrGameRequired            = &Error{Code: CodeGameRequired}
	ErrGameAlreadyArchived     = &Error{Code: CodeGameAlreadyArchived}
	ErrGameNotArchived         = &Error{Code: CodeGameNotArchived}
	ErrMissingArchiveFlag      = &Error{Code: CodeMissingArchiveFlag}
	ErrDuplicateGameID         = &Error{Code: CodeDuplicateGameID}
	ErrInvalidGameData         = &Error{Code: CodeInvalidGameData}
	ErrOperationFailed         = &Error{Code: CodeOperationFailed}
	ErrAuthentication          = &Error{Code: CodeAuthenticationError}
	ErrWriteConflict           = &Error{Code: CodeWriteConflict}
	ErrRepositoryUnavailable   = &Error{Code: CodeRepositoryUnavailable}
	ErrInvalidPath             = &Error{Code: CodeInvalidPath}
	ErrUnknownPersistence      = &Error{Code: CodeUnknownPersistenceError}
	ErrUnsupportedImageFormat  = &Error{Code: CodeUnsupportedImageFormat}
	ErrImageTooLarge           = &Error{Code: CodeImageTooLarge}
	ErrMissingAttribution      = &Error{Code: CodeMissingAttributionMetadata}
	ErrCorruptedImage          = &Error{Code: CodeCorruptedImage}
)

// CodeOf returns the code of the outermost *Error in err's chain, or "".
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// constructors

func MissingMandatoryField(field string) *Error {
	return &Error{Code: CodeMissingMandatoryField, Field: field, Message: "missing mandatory field: " + field}
}

func InvalidEnumValue(field string, value any) *Error {
	v := fmt.Sprint(value)
	return &Error{Code: CodeInvalidEnumValue, Field: field, Value: v,
		Message: fmt.Sprintf("invalid enum value for %s: %s", field, v)}
}

func InvalidPlayerRange(min, max int) *Error {
	return &Error{Code: CodeInvalidPlayerRange, Field: "minPlayers/maxPlayers",
		Message: fmt.Sprintf("minPlayers (%d) must be <= maxPlayers (%d)", min, max)}
}

func AtLeastOneImageRequired() *Error {
	return &Error{Code: CodeAtLeastOneImageRequired, Field: "images", Message: "at least one image is required"}
}

func ValidationFailed(errs []*Error) *Error {
	return &Error{Code: CodeValidationFailed, Message: "invalid game data: " + joinCodes(errs), Validation: errs}
}

func GameNotFound(id string) *Error {
	return &Error{Code: CodeGameNotFound, GameID: id, Message: fmt.Sprintf("game %q not found", id)}
}

func GameArchivedNotVisible(id string) *Error {
	return &Error{Code: CodeGameArchivedNotVisible, GameID: id,
		Message: fmt.Sprintf("game %q is archived and not visible in visitor context", id)}
}

func DataLoadFailure(err error) *Error {
	msg := "data loading failed"
	if err != nil {
		msg += ": " + err.Error()
	}
	return &Error{Code: CodeDataLoadFailure, Message: msg, Err: err}
}

func EmptyFilterValues(filter string) *Error {
	return &Error{Code: CodeEmptyFilterValues, FilterName: filter, Message: fmt.Sprintf("filter %s has empty values", filter)}
}

func InvalidFilterValue(filter string, value any) *Error {
	v := fmt.Sprint(value)
	return &Error{Code: CodeInvalidFilterValue, FilterName: filter, Value: v,
		Message: fmt.Sprintf("invalid value for filter %s: %s", filter, v)}
}

func UnsupportedSortMode(mode SortMode) *Error {
	return &Error{Code: CodeUnsupportedSortMode, SortMode: string(mode),
		Message: fmt.Sprintf("sort mode %q is not supported", string(mode))}
}

func GameRequired() *Error {
	return &Error{Code: CodeGameRequired, Message: "game is required"}
}

func GameAlreadyArchived(id string) *Error {
	return &Error{Code: CodeGameAlreadyArchived, GameID: id, Message: fmt.Sprintf("game %q is already archived", id)}
}

func GameNotArchived(id string) *Error {
	return &Error{Code: CodeGameNotArchived, GameID: id, Message: fmt.Sprintf("game %q is not archived", id)}
}

func MissingArchiveFlag() *Error {
	return &Error{Code: CodeMissingArchiveFlag, Message: "game must have an archived flag"}
}

func DuplicateGameID(id string) *Error {
	return &Error{Code: CodeDuplicateGameID, GameID: id, Message: fmt.Sprintf("game id %q already exists", id)}
}

func InvalidGameData(reason string, errs []*Error) *Error {
	if reason == "" {
		reason = joinCodes(errs)
	}
	return &Error{Code: CodeInvalidGameData, Message: "invalid game data: " + reason, Validation: errs}
}

func OperationFailed(id string, err error) *Error {
	return &Error{Code: CodeOperationFailed, GameID: id, Message: "persistence operation failed", Err: err}
}

func AuthenticationError() *Error {
	return &Error{Code: CodeAuthenticationError, Message: "authentication failed, check credentials"}
}

func WriteConflict(id string) *Error {
	return &Error{Code: CodeWriteConflict, GameID: id, Message: fmt.Sprintf("write conflict for game %q", id)}
}

func RepositoryUnavailable(err error) *Error {
	return &Error{Code: CodeRepositoryUnavailable, Message: "storage is temporarily unavailable", Err: err}
}

func InvalidPath(path string) *Error {
	return &Error{Code: CodeInvalidPath, Path: path, Message: fmt.Sprintf("invalid path %q", path)}
}

func UnknownPersistenceError(err error) *Error {
	return &Error{Code: CodeUnknownPersistenceError, Message: "unexpected persistence error", Err: err}
}

func joinCodes(errs []*Error) string {
	codes := make([]string, 0, len(errs))
	for _, e := range errs {
		codes = append(codes, string(e.Code))
	}
	return strings.Join(codes, ", ")
}

func UnsupportedImageFormat(contentType string) *Error {
	return &Error{Code: CodeUnsupportedImageFormat, Value: contentType, Message: "unsupported image format: " + contentType}
}

func ImageTooLarge(size, max int64) *Error {
	return &Error{Code: CodeImageTooLarge, Message: fmt.Sprintf("image too large: %d bytes (max %d)", size, max)}
}

func MissingAttributionMetadata() *Error {
	return &Error{Code: CodeMissingAttributionMetadata, Field: "attribution", Message: "attribution metadata is required"}
}

func CorruptedImage(reason string) *Error {
	return &Error{Code: CodeCorruptedImage, Message: "corrupted image: " + reason}
}
