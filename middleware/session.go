package middleware

import (
	"context"
	"database/sql"
	"notes-api/database"

	"github.com/gofiber/fiber/v2"
)

const sessionKey = "dbSession"

// Session hands out at most one pooled connection per request. Nothing is
// taken from the pool until Conn is first called.
type Session struct {
	db   *database.DB
	conn *sql.Conn
}

// Conn returns the request's connection, acquiring it on first use.
func (s *Session) Conn(ctx context.Context) (*sql.Conn, error) {
	if s.conn != nil {
		return s.conn, nil
	}
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	s.conn = conn
	return conn, nil
}

// Acquired reports whether Conn has taken a connection.
func (s *Session) Acquired() bool {
	return s.conn != nil
}

func (s *Session) release() {
	if s.conn != nil {
		s.conn.Close()
		s.conn = nil
	}
}

// DBSession attaches a Session to the request and returns its connection,
// if one was taken, when the handler chain finishes, whatever the outcome.
func DBSession(db *database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := &Session{db: db}
		c.Locals(sessionKey, sess)
		defer func() {
			c.Locals(sessionKey, nil)
			sess.release()
		}()

		return c.Next()
	}
}

// GetSession returns the Session DBSession attached to the request, or nil.
func GetSession(c *fiber.Ctx) *Session {
	if sess, ok := c.Locals(sessionKey).(*Session); ok {
		return sess
	}
	return nil
}
