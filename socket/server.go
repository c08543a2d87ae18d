package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// VideoHub wraps the Socket.IO server. Creators join a room keyed by their
// email and hear a "videoReady" event when an upload finishes processing.
type VideoHub struct {
	Server *socketio.Server
}

// NewVideoHub initializes and returns a new Socket.IO hub
func NewVideoHub() *VideoHub {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, email string) {
		if email == "" {
			log.Println("❌ Invalid email in join request")
			return
		}
		log.Printf("👥 Socket %s joined room %s", c.ID(), email)
		c.Join(email)
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Println("❌ Socket error:", err)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("Socket disconnected:", reason)
	})

	return &VideoHub{Server: server}
}

// NotifyVideoReady tells a creator's open sessions that their video finished
// processing.
func (h *VideoHub) NotifyVideoReady(creatorEmail, videoID string) {
	h.Server.BroadcastToRoom("/", creatorEmail, "videoReady", map[string]string{
		"videoId": videoID,
	})
}
