package initialize

import (
	"os"

	"points-ledger/global"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	// console writer to stdout with timestamps
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	global.Logger = log.Output(cw).With().Timestamp().Logger()
}
