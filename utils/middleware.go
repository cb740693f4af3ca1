package utils

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/kataras/iris/v12"
)

// CallerHeader carries the trusted numeric identity of the caller.
// Authentication happens upstream; the server takes the id as given.
const CallerHeader = "X-Sharer-User-Id"

const RequestIDHeader = "X-Request-Id"

// CallerIDMiddleware parses the caller header and stores the id for the
// handler. A missing or malformed header never reaches the handlers.
func CallerIDMiddleware(ctx iris.Context) {
	raw := ctx.GetHeader(CallerHeader)
	if raw == "" {
		CreateError(iris.StatusBadRequest, "Validation Error", CallerHeader+" header is required", ctx)
		return
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		CreateError(iris.StatusBadRequest, "Validation Error", CallerHeader+" header must be a positive integer", ctx)
		return
	}
	ctx.Values().Set("callerID", uint(id))
	ctx.Next()
}

// CallerID reads the id stored by CallerIDMiddleware.
func CallerID(ctx iris.Context) uint {
	id, _ := ctx.Values().Get("callerID").(uint)
	return id
}

// RequestIDMiddleware tags every request with an id for log correlation,
// honoring one supplied by the client.
func RequestIDMiddleware(ctx iris.Context) {
	rid := ctx.GetHeader(RequestIDHeader)
	if rid == "" {
		rid = uuid.NewString()
	}
	ctx.Header(RequestIDHeader, rid)
	ctx.Values().Set("requestID", rid)
	ctx.Next()
}
