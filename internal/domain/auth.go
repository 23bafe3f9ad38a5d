package domain

// SubjectKind differentiates user and administrative sessions. The kind is not
// encoded in the token; it is inferred by the verification context that checks
// the token.
type SubjectKind string

const (
	SubjectKindUser  SubjectKind = "USER"
	SubjectKindAdmin SubjectKind = "ADMIN"
)
