package handler

import (
	"testing"
	"time"
)

func TestBlogPostReqToPost(t *testing.T) {
	base := func() blogPostReq {
		return blogPostReq{Title: "Packing for the Monsoon", Slug: "packing-for-the-monsoon", Content: "Bring a dry bag."}
	}

	t.Run("valid with explicit date", func(t *testing.T) {
		req := base()
		req.PublishedAt = "2026-03-15"
		post, msg := req.toPost()
		if msg != "" {
			t.Fatalf("unexpected validation message %q", msg)
		}
		want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		if !post.PublishedAt.Equal(want) {
			t.Errorf("published_at = %v, want %v", post.PublishedAt, want)
		}
		if !post.Enabled {
			t.Error("enabled should default to true")
		}
	})

	t.Run("empty date defaults to now", func(t *testing.T) {
		req := base()
		post, msg := req.toPost()
		if msg != "" {
			t.Fatalf("unexpected validation message %q", msg)
		}
		if time.Since(post.PublishedAt) > time.Minute {
			t.Errorf("published_at = %v, expected to be roughly now", post.PublishedAt)
		}
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		req := base()
		req.PublishedAt = "15/03/2026"
		if _, msg := req.toPost(); msg == "" {
			t.Error("expected a validation failure for a non-ISO date")
		}
	})

	t.Run("required fields", func(t *testing.T) {
		for _, strip := range []func(*blogPostReq){
			func(r *blogPostReq) { r.Title = "" },
			func(r *blogPostReq) { r.Slug = " " },
			func(r *blogPostReq) { r.Content = "" },
		} {
			req := base()
			strip(&req)
			if _, msg := req.toPost(); msg == "" {
				t.Errorf("expected validation failure for %+v", req)
			}
		}
	})

	t.Run("optional category nullable", func(t *testing.T) {
		req := base()
		post, _ := req.toPost()
		if post.Category != nil {
			t.Error("empty category should map to nil")
		}
		req.Category = "Travel Tips"
		post, _ = req.toPost()
		if post.Category == nil || *post.Category != "Travel Tips" {
			t.Errorf("category = %v, want Travel Tips", post.Category)
		}
	})
}
