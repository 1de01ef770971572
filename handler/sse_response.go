package handler

import "net/http"

// SSEHandler streams events for as long as it runs. The stream ends when
// it returns or the client disconnects.
type SSEHandler func(stream StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return ErrDataStarRequired
	}

	base := NewContext(w, r)
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}
	return s.handler(&streamContext{Context: base, sse: sse})
}

// SSE creates a streaming response. Use it when a handler sends more than
// one update over time, like a progress state followed by a result:
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//		if err := stream.SendSignals(map[string]any{"submitting": true}); err != nil {
//			return err
//		}
//		res, err := job.AwaitContext(stream)
//		if err != nil {
//			return err
//		}
//		return stream.SendComponent(views.Result(res))
//	})
func SSE(handler SSEHandler) Response {
	return sseResponse{handler: handler}
}
