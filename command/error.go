package command

import (
	"fmt"

	"github.com/zephyrtronium/msgcmd/perm"
)

// ErrorKind classifies validation failures.
type ErrorKind int

const (
	// MissingPermissions means the caller lacks a required permission.
	MissingPermissions ErrorKind = iota + 1
	// MissingRoles means the caller lacks a required role.
	MissingRoles
	// InvalidArgCount means the message has the wrong number of arguments.
	InvalidArgCount
	// InvalidArgType means an argument did not fit its option.
	InvalidArgType
)

func (k ErrorKind) String() string {
	switch k {
	case MissingPermissions:
		return "MissingPermissions"
	case MissingRoles:
		return "MissingRoles"
	case InvalidArgCount:
		return "InvalidArgCount"
	case InvalidArgType:
		return "InvalidArgType"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is a reason a message fails validation against a command.
// Fields other than Kind and Command are set according to Kind.
type Error struct {
	Kind ErrorKind
	// Command is the name of the command being validated.
	Command string
	// Option is the name of the option for InvalidArgType.
	Option string
	// Permission is the missing permission for MissingPermissions.
	Permission perm.Permission
	// Role is the missing role ID for MissingRoles.
	Role string
	// Want and Got are the expected and actual argument counts for
	// InvalidArgCount.
	Want, Got int
}

func (e *Error) Error() string {
	switch e.Kind {
	case MissingPermissions:
		return "missing permission: " + e.Permission.String()
	case MissingRoles:
		return "missing role: <@&" + e.Role + ">"
	case InvalidArgCount:
		return fmt.Sprintf("invalid argument count for %s: want %d, got %d", e.Command, e.Want, e.Got)
	case InvalidArgType:
		return fmt.Sprintf("invalid option: %s (%s)", e.Option, e.Command)
	default:
		return fmt.Sprintf("%v for %s", e.Kind, e.Command)
	}
}
