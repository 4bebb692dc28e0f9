package utils

//go:generate mockgen -source=interfaces.go -destination=../mock/utils_mock.go -package=mock

// IDGenerator issues identifiers for new contacts. Identifiers must never
// repeat, including for calls within the same clock tick.
type IDGenerator interface {
	Generate() string
}

var _ IDGenerator = (*UUIDGenerator)(nil)
