package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarAcceptHeader is sent by datastar fetch actions.
	DataStarAcceptHeader = "text/event-stream"

	// DataStarRequestHeader is set to "true" on every datastar request.
	DataStarRequestHeader = "Datastar-Request"

	// DataStarQueryParam carries signals on GET requests.
	DataStarQueryParam = "datastar"
)

// Patch modes for WithPatchMode.
const (
	PatchOuter   = datastar.ElementPatchModeOuter // morph, the default
	PatchInner   = datastar.ElementPatchModeInner
	PatchReplace = datastar.ElementPatchModeReplace
	PatchRemove  = datastar.ElementPatchModeRemove
	PatchAppend  = datastar.ElementPatchModeAppend
	PatchPrepend = datastar.ElementPatchModePrepend
)

// IsDataStar reports whether the request was issued by datastar and expects
// an event stream back.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get(DataStarRequestHeader) == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	return r.URL.Query().Has(DataStarQueryParam)
}
