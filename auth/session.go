package auth

import (
	"strings"

	"studio/db"
	"studio/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const adminIdKey = "admin_id"
const failedLoginsKeyPrefix = "failed_logins_"

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

func (s *Session) LoginAdmin(userID uint64) {
	s.Set(adminIdKey, userID)
	s.Save()
}

// Logout drops the admin principal but keeps the session itself, so a
// goodbye flash still gets delivered.
func (s *Session) Logout() {
	s.Delete(adminIdKey)
	s.Save()
}

// Admin returns the logged-in back-office user, or a zero-ID user when the
// session carries no admin principal.
func (s *Session) Admin() (user models.User) {
	id := s.Get(adminIdKey)
	if id == nil {
		return
	}
	user.ID = id.(uint64)
	if db.Instance.First(&user).Error != nil {
		user.ID = 0
	}
	return
}

// Flash queues a one-shot message ("success" or "error") shown on the next
// rendered page.
func (s *Session) Flash(kind, message string) {
	s.AddFlash(kind + "|" + message)
	s.Save()
}

func (s *Session) TakeFlashes() []gin.H {
	result := []gin.H{}
	for _, f := range s.Flashes() {
		msg, ok := f.(string)
		if !ok {
			continue
		}
		kind := "success"
		if i := strings.IndexByte(msg, '|'); i >= 0 {
			kind, msg = msg[:i], msg[i+1:]
		}
		result = append(result, gin.H{"kind": kind, "message": msg})
	}
	s.Save()
	return result
}

// Failed login attempts are tracked per client address in the session,
// matching the soft counter kept alongside the rate limiter.
func (s *Session) FailedLogins(addr string) int {
	v := s.Get(failedLoginsKeyPrefix + addr)
	if v == nil {
		return 0
	}
	count, _ := v.(int)
	return count
}

func (s *Session) RecordFailedLogin(addr string) {
	s.Set(failedLoginsKeyPrefix+addr, s.FailedLogins(addr)+1)
	s.Save()
}

func (s *Session) ClearFailedLogins(addr string) {
	s.Delete(failedLoginsKeyPrefix + addr)
	s.Save()
}
