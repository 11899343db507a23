package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(req *http.Request) bool {
		return true
	},
}

const (
	statsInterval = 2 * time.Second
	writeTimeout  = 10 * time.Second
)

// @Summary	Open websocket for realtime render statistics
// @Router		/api/ws [get]
// @Param		Upgrade	header	string	true	"websocket"
// @Tags		base
// @Success	101
func (a *Api) handleWebsocket(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("couldn't make websocket: %s", err))
		return
	}
	defer func(ws *websocket.Conn) {
		err := ws.Close()
		if err != nil {
			a.logger.Debug("could not close websocket", slog.Any("err", err))
		}
	}(ws)

	a.wsMutex.Lock()
	a.wsClients[ws] = true
	a.wsMutex.Unlock()
	a.ctl.Stats().AddWsClients(1)

	done := make(chan struct{})
	go a.websocketWriter(ws, done)

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			break
		}
		a.logger.Debug(fmt.Sprintf("Received: %s", msg))
	}

	close(done)
	a.wsMutex.Lock()
	delete(a.wsClients, ws)
	a.wsMutex.Unlock()
	a.ctl.Stats().AddWsClients(-1)
}

func (a *Api) websocketWriter(ws *websocket.Conn, done <-chan struct{}) {
	pingTicker := time.NewTicker(statsInterval)
	defer pingTicker.Stop()

	for {
		packet, err := json.Marshal(a.ctl.Stats().Snapshot())
		if err != nil {
			return
		}
		err = ws.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err != nil {
			a.logger.Debug("could not set write deadline", slog.Any("err", err))
			return
		}
		if err := ws.WriteMessage(websocket.TextMessage, packet); err != nil {
			return
		}

		select {
		case <-done:
			return
		case <-pingTicker.C:
		}
	}
}
