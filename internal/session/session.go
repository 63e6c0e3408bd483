// Package session holds the logged-in user session and the recent-activity
// feed shared by the application shell.
package session

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"inventory-service/internal/model"
)

// User is the authenticated user a session was established for.
type User struct {
	ID    uint
	Token string
	UUID  string
	Role  string
	Name  string
	Email string
}

// API is the subset of the inventory client the session context uses.
type API interface {
	ListActivities(ctx context.Context) ([]model.UserActivityLog, error)
	CreateActivity(ctx context.Context, userID uint, action, details string) (int, error)
}

// Context owns the current session and activity feed. It is created on
// session establishment and passed down explicitly; consumers read through
// accessors and never mutate its state. A Context is confined to the UI
// event loop and is not safe for concurrent use.
type Context struct {
	api API
	log *zap.Logger

	user        *User
	activities  []model.UserActivityLog
	sidebarOpen bool
}

// NewContext creates a session context with no active session.
func NewContext(api API, log *zap.Logger) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	return &Context{
		api:         api,
		log:         log,
		sidebarOpen: true,
	}
}

// Establish stores the session and immediately loads the activity feed.
func (c *Context) Establish(ctx context.Context, u User) {
	c.user = &u
	c.fetchActivities(ctx)
}

// Close tears the session down, dropping the user and the feed.
func (c *Context) Close() {
	c.user = nil
	c.activities = nil
}

// User returns the current session's user, or nil when logged out.
func (c *Context) User() *User {
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// Activities returns a copy of the activity feed, most recent first.
func (c *Context) Activities() []model.UserActivityLog {
	out := make([]model.UserActivityLog, len(c.activities))
	copy(out, c.activities)
	return out
}

// SidebarOpen reports whether the side bar is expanded.
func (c *Context) SidebarOpen() bool {
	return c.sidebarOpen
}

// ToggleSidebar flips the side bar flag. No backend interaction.
func (c *Context) ToggleSidebar() {
	c.sidebarOpen = !c.sidebarOpen
}

// SaveActivity records an activity for the current user and, once the
// backend confirms creation, reloads the full feed. It is a no-op without
// an active session. Failures are logged and swallowed; the feed keeps its
// previous contents.
func (c *Context) SaveActivity(ctx context.Context, action, details string) {
	if c.user == nil {
		return
	}

	status, err := c.api.CreateActivity(ctx, c.user.ID, action, details)
	if err != nil {
		c.log.Error("Failed to save activity",
			zap.String("action", action),
			zap.Error(err))
		return
	}

	if status == http.StatusCreated {
		c.fetchActivities(ctx)
	}
}

func (c *Context) fetchActivities(ctx context.Context) {
	activities, err := c.api.ListActivities(ctx)
	if err != nil {
		c.log.Error("Failed to fetch activity feed", zap.Error(err))
		return
	}
	c.activities = activities
}
