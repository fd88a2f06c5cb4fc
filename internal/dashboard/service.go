package dashboard

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"codexiv-backend/internal/blog"
	"codexiv-backend/internal/contact"
	"codexiv-backend/internal/projects"
	"codexiv-backend/internal/services"
	"codexiv-backend/internal/team"
)

// recentPageSize is the per-collection page pulled when building the
// activity feed. A globally recent item past its own collection's page is
// omitted; the feed is a best-effort snapshot, not an exact merge.
const recentPageSize = 5

// Stats are the collection counts shown on the admin dashboard.
type Stats struct {
	Projects    int `json:"projects"`
	TeamMembers int `json:"teamMembers"`
	BlogPosts   int `json:"blogPosts"`
	Services    int `json:"services"`
	Contacts    int `json:"contacts"`
}

// Activity is one entry in the recent-activity feed.
type Activity struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Action    string    `json:"action"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
}

// Service computes dashboard aggregates by fanning out over the content
// collections. Aggregates are recomputed per call; nothing is cached.
type Service struct {
	Projects *projects.Service
	Team     *team.Service
	Blog     *blog.Service
	Services *services.Manager
	Contact  *contact.Service
}

func NewService(p *projects.Service, t *team.Service, b *blog.Service, s *services.Manager, c *contact.Service) *Service {
	return &Service{Projects: p, Team: t, Blog: b, Services: s, Contact: c}
}

// GetStats counts every collection concurrently. The underlying list calls
// fail soft, so an unreachable collection reports 0 instead of failing the
// whole dashboard.
func (s *Service) GetStats(ctx context.Context) Stats {
	var stats Stats
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats.Projects = len(s.Projects.List(ctx, 0))
		return nil
	})
	g.Go(func() error {
		stats.TeamMembers = len(s.Team.List(ctx, 0))
		return nil
	})
	g.Go(func() error {
		stats.BlogPosts = len(s.Blog.List(ctx, 0))
		return nil
	})
	g.Go(func() error {
		stats.Services = len(s.Services.List(ctx, 0))
		return nil
	})
	g.Go(func() error {
		stats.Contacts = len(s.Contact.List(ctx, 0))
		return nil
	})
	_ = g.Wait()
	return stats
}

// GetRecentActivity merges the newest items across projects, team, blog and
// contact into a single feed, newest first, truncated to limit.
func (s *Service) GetRecentActivity(ctx context.Context, limit int) []Activity {
	if limit <= 0 {
		limit = 10
	}

	var (
		projectItems []Activity
		teamItems    []Activity
		blogItems    []Activity
		contactItems []Activity
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for _, p := range s.Projects.List(ctx, recentPageSize) {
			projectItems = append(projectItems, Activity{
				ID:        p.ID,
				Type:      "project",
				Action:    "added",
				Title:     p.Title,
				Timestamp: p.CreatedAt,
			})
		}
		return nil
	})
	g.Go(func() error {
		for _, m := range s.Team.List(ctx, recentPageSize) {
			teamItems = append(teamItems, Activity{
				ID:        m.ID,
				Type:      "team",
				Action:    "updated",
				Title:     m.Name,
				Timestamp: m.UpdatedAt,
			})
		}
		return nil
	})
	g.Go(func() error {
		for _, p := range s.Blog.List(ctx, recentPageSize) {
			blogItems = append(blogItems, Activity{
				ID:        p.ID,
				Type:      "blog",
				Action:    "published",
				Title:     p.Title,
				Timestamp: p.CreatedAt,
			})
		}
		return nil
	})
	g.Go(func() error {
		for _, sub := range s.Contact.List(ctx, recentPageSize) {
			contactItems = append(contactItems, Activity{
				ID:        sub.ID,
				Type:      "contact",
				Action:    "received",
				Title:     sub.Subject,
				Timestamp: sub.SubmittedAt,
			})
		}
		return nil
	})
	_ = g.Wait()

	out := make([]Activity, 0, len(projectItems)+len(teamItems)+len(blogItems)+len(contactItems))
	out = append(out, projectItems...)
	out = append(out, teamItems...)
	out = append(out, blogItems...)
	out = append(out, contactItems...)

	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if limit < len(out) {
		out = out[:limit]
	}
	return out
}
