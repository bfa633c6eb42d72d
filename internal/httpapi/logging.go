package httpapi

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// zlog is an optional structured logger. If unset, falls back to log.Printf.
var zlog *zerolog.Logger

// SetLogger installs a structured logger used by the HTTP layer.
func SetLogger(l zerolog.Logger) { zlog = &l }

// logOp records one completed façade operation.
func logOp(r *http.Request, op string, dur time.Duration) {
	if zlog == nil {
		log.Printf("op=%s path=%s dur=%s", op, r.URL.Path, dur)
		return
	}
	z := zlog.Info().Str("op", op).Str("path", r.URL.Path).Dur("dur", dur)
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		z = z.Str("request_id", rid)
	}
	z.Msg("op end")
}

func logEncodeError(err error) {
	if zlog == nil {
		log.Printf("response encode error: %v", err)
		return
	}
	zlog.Error().Err(err).Msg("response encode error")
}
