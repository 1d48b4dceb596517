// internal/session/listener.go
package session

import (
	"go-season-defense/internal/event"
	"go-season-defense/internal/logger"

	"github.com/sirupsen/logrus"
)

// SessionEventListener обрабатывает события, важные для итога сессии.
type SessionEventListener struct {
	session *Session
}

// OnEvent реализует интерфейс event.Listener.
func (l *SessionEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.BaseDestroyed:
		l.session.baseDestroyed = true
		logger.Log.Info("base destroyed")
	case event.TowerDestroyed, event.TowerPlaced, event.ObstaclePlaced:
		if data, ok := e.Data.(event.EntityData); ok {
			logger.Log.WithFields(logrus.Fields{
				"x": data.Position.X,
				"y": data.Position.Y,
			}).Debug(string(e.Type))
		}
	}
}
