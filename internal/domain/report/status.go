package report

import "github.com/lostpaws/petfinder-api/internal/httperr"

// ===============================
// Report Status
// ===============================

type Status string

const (
	StatusLost   Status = "lost"
	StatusFound  Status = "found"
	StatusClosed Status = "closed"
)

func ParseStatus(v string) (Status, error) {
	switch Status(v) {
	case StatusLost, StatusFound, StatusClosed:
		return Status(v), nil
	}
	return "", httperr.ErrValidation("invalid_status", "status must be lost, found or closed")
}

// ===============================
// Report Type
// ===============================

type Type string

const (
	TypeLost    Type = "lost"
	TypeFound   Type = "found"
	TypeSighted Type = "sighted"
)

func ParseType(v string) (Type, error) {
	switch Type(v) {
	case TypeLost, TypeFound, TypeSighted:
		return Type(v), nil
	}
	return "", httperr.ErrValidation("invalid_report_type", "reportType must be lost, found or sighted")
}

// ===============================
// Pet Sex
// ===============================

type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

func ParseSex(v string) (Sex, error) {
	switch Sex(v) {
	case SexMale, SexFemale, SexUnknown:
		return Sex(v), nil
	}
	return "", httperr.ErrValidation("invalid_sex", "sex must be male, female or unknown")
}
