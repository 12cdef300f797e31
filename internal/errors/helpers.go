package errors

import (
	"errors"
)

// MetaRoomCode is the metadata key naming the room an error concerns
const MetaRoomCode = "room_code"

// As is errors.As narrowed to *Error
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is is errors.Is
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode returns the code of the outermost *Error in err's chain. Plain
// errors are Internal and nil is OK.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// GetMeta returns the metadata of the outermost *Error, or nil
func GetMeta(err error) map[string]interface{} {
	var e *Error
	if errors.As(err, &e) {
		return e.Meta
	}
	return nil
}

// GetMessage returns the player-facing message. Plain errors fall back to
// their full text.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// RoomCodeOf returns the room an error was tagged with, or ""
func RoomCodeOf(err error) string {
	code, _ := GetMeta(err)[MetaRoomCode].(string)
	return code
}

func IsNotFound(err error) bool           { return GetCode(err) == CodeNotFound }
func IsInvalidArgument(err error) bool    { return GetCode(err) == CodeInvalidArgument }
func IsAlreadyExists(err error) bool      { return GetCode(err) == CodeAlreadyExists }
func IsPermissionDenied(err error) bool   { return GetCode(err) == CodePermissionDenied }
func IsInternal(err error) bool           { return GetCode(err) == CodeInternal }
func IsUnavailable(err error) bool        { return GetCode(err) == CodeUnavailable }
func IsUnauthenticated(err error) bool    { return GetCode(err) == CodeUnauthenticated }
func IsResourceExhausted(err error) bool  { return GetCode(err) == CodeResourceExhausted }
func IsFailedPrecondition(err error) bool { return GetCode(err) == CodeFailedPrecondition }

// IsAborted reports a version conflict on a room write
func IsAborted(err error) bool { return GetCode(err) == CodeAborted }
