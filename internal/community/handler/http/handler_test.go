package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	handler "github.com/MyNameIsWhaaat/oceanica/internal/community/handler/http"
	"github.com/MyNameIsWhaaat/oceanica/internal/community/model"
	"github.com/MyNameIsWhaaat/oceanica/internal/community/service"
	inm "github.com/MyNameIsWhaaat/oceanica/internal/community/storage/inmemory"
)

func newServer() *httptest.Server {
	gin.SetMode(gin.TestMode)
	svc := service.New(inm.New(), zerolog.Nop())
	r := gin.New()
	handler.New(svc).Register(r)
	return httptest.NewServer(r)
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	res, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	return res
}

func decode(t *testing.T, res *http.Response, v any) {
	t.Helper()
	defer res.Body.Close()
	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestPostCommentLikeFlow(t *testing.T) {
	srv := newServer()
	defer srv.Close()

	res := postJSON(t, srv.URL+"/api/posts", map[string]any{
		"name": "Ava", "content": "Spotted a leatherback!", "category": "Marine Biology",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 created, got %d", res.StatusCode)
	}
	var post model.Post
	decode(t, res, &post)
	if post.Category != model.CategoryBiology || post.AvatarSeed == "" {
		t.Fatalf("unexpected post: %+v", post)
	}
	postURL := srv.URL + "/api/posts/" + strconv.FormatInt(post.ID, 10)

	res = postJSON(t, postURL+"/comments", map[string]any{"name": "EcoWarrior22", "content": "Amazing"})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 for root comment, got %d", res.StatusCode)
	}
	var root model.CommentNode
	decode(t, res, &root)

	res = postJSON(t, postURL+"/comments", map[string]any{"parent_id": root.ID, "name": "OceanLover", "content": "Agreed"})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 for reply, got %d", res.StatusCode)
	}
	var reply model.CommentNode
	decode(t, res, &reply)

	res = postJSON(t, postURL+"/comments/"+strconv.FormatInt(reply.ID, 10)+"/likes", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for comment like, got %d", res.StatusCode)
	}
	var liked model.CommentNode
	decode(t, res, &liked)
	if liked.Likes != 1 {
		t.Fatalf("expected 1 like, got %d", liked.Likes)
	}

	res = postJSON(t, postURL+"/likes", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for post like, got %d", res.StatusCode)
	}
	_ = res.Body.Close()

	res, err := http.Get(postURL)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	var got model.Post
	decode(t, res, &got)
	if got.Likes != 1 {
		t.Fatalf("expected post likes 1, got %d", got.Likes)
	}
	if len(got.Comments) != 1 || len(got.Comments[0].Replies) != 1 || got.Comments[0].Replies[0].Likes != 1 {
		t.Fatalf("unexpected comment tree: %+v", got.Comments)
	}
}

func TestFeedAndProfile(t *testing.T) {
	srv := newServer()
	defer srv.Close()

	for _, p := range []map[string]any{
		{"name": "Ava", "content": "one", "category": "Q&A"},
		{"name": "Noah", "content": "two"},
		{"name": "Ava", "content": "three"},
	} {
		res := postJSON(t, srv.URL+"/api/posts", p)
		if res.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201 created, got %d", res.StatusCode)
		}
		_ = res.Body.Close()
	}

	res, err := http.Get(srv.URL + "/api/posts?category=" + "Q%26A")
	if err != nil {
		t.Fatalf("get feed: %v", err)
	}
	var feed struct {
		Posts []model.Post `json:"posts"`
	}
	decode(t, res, &feed)
	if len(feed.Posts) != 1 || feed.Posts[0].Body != "one" {
		t.Fatalf("unexpected filtered feed: %+v", feed.Posts)
	}

	res, err = http.Get(srv.URL + "/api/profiles/Ava")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	var prof model.Profile
	decode(t, res, &prof)
	if prof.PostCount != 2 || prof.Posts[0].Body != "three" {
		t.Fatalf("unexpected profile: %+v", prof)
	}

	res, err = http.Get(srv.URL + "/api/categories")
	if err != nil {
		t.Fatalf("get categories: %v", err)
	}
	var cats struct {
		Categories []model.Category `json:"categories"`
	}
	decode(t, res, &cats)
	if len(cats.Categories) != len(model.Categories) {
		t.Fatalf("expected %d categories, got %d", len(model.Categories), len(cats.Categories))
	}
}

func TestHandlerErrors(t *testing.T) {
	srv := newServer()
	defer srv.Close()

	tests := []struct {
		name   string
		do     func() (*http.Response, error)
		status int
	}{
		{"bad json", func() (*http.Response, error) {
			return http.Post(srv.URL+"/api/posts", "application/json", bytes.NewReader([]byte("{bad json")))
		}, http.StatusBadRequest},
		{"empty content", func() (*http.Response, error) {
			b, _ := json.Marshal(map[string]any{"name": "Ava", "content": "  "})
			return http.Post(srv.URL+"/api/posts", "application/json", bytes.NewReader(b))
		}, http.StatusBadRequest},
		{"invalid sort", func() (*http.Response, error) {
			return http.Get(srv.URL + "/api/posts?sort=random")
		}, http.StatusBadRequest},
		{"invalid id", func() (*http.Response, error) {
			return http.Get(srv.URL + "/api/posts/abc")
		}, http.StatusBadRequest},
		{"missing post", func() (*http.Response, error) {
			return http.Get(srv.URL + "/api/posts/42")
		}, http.StatusNotFound},
		{"like missing post", func() (*http.Response, error) {
			return http.Post(srv.URL+"/api/posts/42/likes", "application/json", nil)
		}, http.StatusNotFound},
		{"comment on missing post", func() (*http.Response, error) {
			b, _ := json.Marshal(map[string]any{"name": "Ava", "content": "hi"})
			return http.Post(srv.URL+"/api/posts/42/comments", "application/json", bytes.NewReader(b))
		}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.do()
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			defer res.Body.Close()
			if res.StatusCode != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, res.StatusCode)
			}
			var body map[string]string
			if err := json.NewDecoder(res.Body).Decode(&body); err != nil || body["error"] == "" {
				t.Fatalf("expected error body, got %v (%v)", body, err)
			}
		})
	}
}
