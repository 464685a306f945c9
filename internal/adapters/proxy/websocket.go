package proxy

import (
	"errors"
	"net/http"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"
	"go.trai.ch/frame/internal/core/ports"
)

// forwardedHeaders are copied from the client handshake to the upstream dial.
var forwardedHeaders = []string{"Origin", "Cookie", "Authorization", "User-Agent"}

// wsBridge relays websocket connections between a client and the upstream.
type wsBridge struct {
	origin   *url.URL
	dialer   websocket.Dialer
	upgrader websocket.Upgrader
	logger   ports.Logger
}

func newWSBridge(upstream *url.URL, logger ports.Logger) *wsBridge {
	origin := *upstream
	if origin.Scheme == "https" {
		origin.Scheme = "wss"
	} else {
		origin.Scheme = "ws"
	}

	return &wsBridge{
		origin: &origin,
		dialer: *websocket.DefaultDialer,
		upgrader: websocket.Upgrader{
			// The listener is loopback only.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// serve dials the upstream with the client's subprotocols, upgrades the
// client with the one the upstream picked, and pumps messages both ways
// until either side closes.
func (b *wsBridge) serve(w http.ResponseWriter, r *http.Request) error {
	target := *b.origin
	target.Path = r.URL.Path
	target.RawQuery = r.URL.RawQuery

	header := http.Header{}
	for _, name := range forwardedHeaders {
		if v := r.Header.Values(name); len(v) > 0 {
			header[name] = v
		}
	}

	dialer := b.dialer
	dialer.Subprotocols = websocket.Subprotocols(r)

	upstream, resp, err := dialer.DialContext(r.Context(), target.String(), header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		b.logger.Warn("websocket upstream dial failed", "path", r.URL.Path, "error", err.Error())
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		return err
	}

	var respHeader http.Header
	if proto := upstream.Subprotocol(); proto != "" {
		respHeader = http.Header{"Sec-Websocket-Protocol": {proto}}
	}

	client, err := b.upgrader.Upgrade(w, r, respHeader)
	if err != nil {
		_ = upstream.Close()
		return nil
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		relay(upstream, client)
	}()
	go func() {
		defer wg.Done()
		relay(client, upstream)
	}()
	wg.Wait()

	return nil
}

// relay copies messages from src to dst. When src closes, the close is
// passed on and both connections are torn down.
func relay(dst, src *websocket.Conn) {
	defer func() {
		_ = dst.Close()
		_ = src.Close()
	}()

	for {
		mt, msg, err := src.ReadMessage()
		if err != nil {
			code, text := websocket.CloseNormalClosure, ""
			var ce *websocket.CloseError
			if errors.As(err, &ce) {
				code, text = ce.Code, ce.Text
			}
			switch code {
			case websocket.CloseNoStatusReceived:
				code = websocket.CloseNormalClosure
			case websocket.CloseAbnormalClosure:
				code = websocket.CloseGoingAway
			}
			_ = dst.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(code, text))
			return
		}
		if err := dst.WriteMessage(mt, msg); err != nil {
			return
		}
	}
}
