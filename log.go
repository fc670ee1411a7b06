package voovan

import (
	"os"

	"github.com/rs/zerolog"
)

func init() {
	zerolog.CallerFieldName = "C"
	zerolog.MessageFieldName = "M"
	zerolog.LevelFieldName = "L"
	zerolog.ErrorFieldName = "E"
	zerolog.TimestampFieldName = "T"
	zerolog.ErrorStackFieldName = "S"
}

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// SetLogger replaces the package logger used on transmission failure paths.
func SetLogger(l zerolog.Logger) {
	logger = l
}
