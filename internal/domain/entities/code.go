package entities

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

const (
	CodePrefix       = "OS"
	codeSuffixLength = 6
)

var codePattern = regexp.MustCompile(`^OS-\d{8}-[A-Z0-9]{6}$`)

// Code is the human-readable service order code, e.g. OS-20250114-AB12CD.
type Code string

// NewCode validates a code after trimming and upper-casing it.
func NewCode(raw string) (Code, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if !codePattern.MatchString(normalized) {
		return "", invalidInput("invalid service order code %q: expected %s-YYYYMMDD-XXXXXX", raw, CodePrefix)
	}
	if _, err := time.Parse("20060102", normalized[3:11]); err != nil {
		return "", invalidInput("invalid service order code %q: bad date", raw)
	}
	return Code(normalized), nil
}

// GenerateCode builds a code for the given date. The suffix is taken from the
// random part of a ULID, which is already upper-case Crockford base32.
func GenerateCode(at time.Time) Code {
	id := ulid.Make().String()
	suffix := id[len(id)-codeSuffixLength:]
	return Code(CodePrefix + "-" + at.UTC().Format("20060102") + "-" + suffix)
}

func (c Code) String() string {
	return string(c)
}

// NewID returns a time-ordered (version 7) UUID.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}
