package debug

import (
	"net/http"

	"github.com/gorilla/websocket"
)

type client struct {
	server     *Server
	conn       *websocket.Conn
	send       chan []byte
	remoteAddr string
}

func (s *Server) newClient(conn *websocket.Conn, r *http.Request) *client {
	return &client{
		server:     s,
		conn:       conn,
		send:       make(chan []byte, 256),
		remoteAddr: r.RemoteAddr,
	}
}

// readPump handles messages from the client until the connection is
// closed.
func (c *client) readPump() {
	defer func() {
		select {
		case c.server.unregister <- c:
		case <-c.server.done:
		}
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			return // connection closed
		}
		if len(message) == 0 {
			continue
		}

		switch message[0] {
		case System:
			if len(message) < 3 {
				continue
			}
			switch message[1] {
			case Deduplicate:
				c.server.setDeduplicate(message[2] == 1)
			}
		case Closing:
			return
		}
	}
}

// writePump writes broadcast lines to the client until its send
// channel is closed by the server.
func (c *client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
