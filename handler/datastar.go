package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarAcceptHeader marks a request that accepts server-sent events.
	DataStarAcceptHeader = "text/event-stream"

	// DataStarQueryParam carries datastar signals on GET requests.
	DataStarQueryParam = "datastar"
)

// Patch mode aliases.
const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchInner   = datastar.ElementPatchModeInner
	PatchReplace = datastar.ElementPatchModeReplace
	PatchRemove  = datastar.ElementPatchModeRemove
	PatchAppend  = datastar.ElementPatchModeAppend
	PatchPrepend = datastar.ElementPatchModePrepend
	PatchBefore  = datastar.ElementPatchModeBefore
	PatchAfter   = datastar.ElementPatchModeAfter
)

// IsDataStar reports whether r was issued by the datastar client.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	if r.URL.Query().Has(DataStarQueryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}

// NewSSE starts a datastar event stream on w.
func NewSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}
