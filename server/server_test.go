package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/blogicum/blogicum/model"
	"github.com/blogicum/blogicum/utils"
	"github.com/blogicum/blogicum/utils/dotenv"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	dotenv.LoadDotEnvsInTests()
	os.Exit(m.Run())
}

// do runs one request through the router. Redirects are not followed, the
// Location header is part of what the tests assert on.
func do(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	db, _ := utils.CreateTempDB(t)
	return NewRouter(db), db
}

func TestRegistrationAndLogin(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodPost, "/auth/registration", "", gin.H{
		"username":   "alice",
		"first_name": "Alice",
		"email":      "alice@example.com",
		"password":   "correct horse",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// duplicate username is a conflict
	w = do(router, http.MethodPost, "/auth/registration", "", gin.H{
		"username": "alice",
		"password": "another pass",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	w = do(router, http.MethodPost, "/auth/login", "", gin.H{
		"username": "alice",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(router, http.MethodPost, "/auth/login", "", gin.H{
		"username": "alice",
		"password": "correct horse",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	w = do(router, http.MethodPost, "/auth/logout", resp.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// token is dead after logout, mutation falls back to the login redirect
	w = do(router, http.MethodPost, "/posts", resp.Token, gin.H{})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/auth/login", w.Header().Get("Location"))
}

func TestLoginReportsDatabaseFailure(t *testing.T) {
	router, db := newTestRouter(t)
	utils.TestCreateUserAndValidate(t, db, "alice")

	// a broken database is an internal error, not bad credentials
	conn, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	w := do(router, http.MethodPost, "/auth/login", "", gin.H{
		"username": "alice",
		"password": utils.TestPassword,
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAnonymousMutationRedirectsToLogin(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, probe := range []struct{ method, path string }{
		{http.MethodPost, "/posts"},
		{http.MethodPut, "/posts/1"},
		{http.MethodDelete, "/posts/1"},
		{http.MethodPost, "/posts/1/comments"},
		{http.MethodPut, "/comments/1"},
		{http.MethodDelete, "/comments/1"},
		{http.MethodPut, "/profile"},
	} {
		w := do(router, probe.method, probe.path, "", gin.H{"text": "x"})
		require.Equal(t, http.StatusFound, w.Code, probe.path)
		require.Equal(t, "/auth/login", w.Header().Get("Location"), probe.path)
	}
}

func TestPostLifecycleOverHTTP(t *testing.T) {
	router, db := newTestRouter(t)

	alice := utils.TestCreateUserAndValidate(t, db, "alice")
	bob := utils.TestCreateUserAndValidate(t, db, "bob")
	aliceToken := utils.TestCreateSessionAndValidate(t, db, alice)
	bobToken := utils.TestCreateSessionAndValidate(t, db, bob)

	w := do(router, http.MethodPost, "/posts", aliceToken, gin.H{
		"title":    "hello",
		"text":     "world",
		"pub_date": time.Now().Add(-time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/profile/alice", w.Header().Get("Location"))

	var post model.Post
	require.NoError(t, db.Where("title = ?", "hello").First(&post).Error)

	// on the index feed
	w = do(router, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var feed struct {
		Posts []struct {
			Id uint `json:"id"`
		} `json:"posts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	require.Len(t, feed.Posts, 1)
	require.Equal(t, post.Id, feed.Posts[0].Id)

	// bob's edit bounces to the post's read view without changing it
	w = do(router, http.MethodPut, fmt.Sprintf("/posts/%d", post.Id), bobToken, gin.H{
		"title":    "stolen",
		"text":     "stolen",
		"pub_date": time.Now().Format(time.RFC3339),
	})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, fmt.Sprintf("/posts/%d", post.Id), w.Header().Get("Location"))
	var unchanged model.Post
	require.NoError(t, db.First(&unchanged, post.Id).Error)
	require.Equal(t, "hello", unchanged.Title)

	// alice's edit lands and navigates back to the post
	w = do(router, http.MethodPut, fmt.Sprintf("/posts/%d", post.Id), aliceToken, gin.H{
		"title":    "hello again",
		"text":     "world",
		"pub_date": time.Now().Add(-time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, fmt.Sprintf("/posts/%d", post.Id), w.Header().Get("Location"))

	w = do(router, http.MethodDelete, fmt.Sprintf("/posts/%d", post.Id), aliceToken, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/profile/alice", w.Header().Get("Location"))

	w = do(router, http.MethodGet, fmt.Sprintf("/posts/%d", post.Id), "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostDetailHidesDraftsFromStrangers(t *testing.T) {
	router, db := newTestRouter(t)

	alice := utils.TestCreateUserAndValidate(t, db, "alice")
	bob := utils.TestCreateUserAndValidate(t, db, "bob")
	aliceToken := utils.TestCreateSessionAndValidate(t, db, alice)
	bobToken := utils.TestCreateSessionAndValidate(t, db, bob)

	draft := utils.TestCreatePostAndValidate(t, db, alice, nil, time.Now().Add(24*time.Hour), true)

	w := do(router, http.MethodGet, fmt.Sprintf("/posts/%d", draft.Id), aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, fmt.Sprintf("/posts/%d", draft.Id), bobToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = do(router, http.MethodGet, fmt.Sprintf("/posts/%d", draft.Id), "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryFeedOverHTTP(t *testing.T) {
	router, db := newTestRouter(t)

	alice := utils.TestCreateUserAndValidate(t, db, "alice")
	news := utils.TestCreateCategoryAndValidate(t, db, "news", true)
	utils.TestCreateCategoryAndValidate(t, db, "secret", false)
	utils.TestCreatePostAndValidate(t, db, alice, news, time.Now().Add(-time.Hour), true)

	w := do(router, http.MethodGet, "/category/news", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/category/secret", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = do(router, http.MethodGet, "/category/missing", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommentScenario(t *testing.T) {
	router, db := newTestRouter(t)

	alice := utils.TestCreateUserAndValidate(t, db, "alice")
	bob := utils.TestCreateUserAndValidate(t, db, "bob")
	aliceToken := utils.TestCreateSessionAndValidate(t, db, alice)
	bobToken := utils.TestCreateSessionAndValidate(t, db, bob)

	post := utils.TestCreatePostAndValidate(t, db, bob, nil, time.Now().Add(-time.Hour), true)
	utils.TestCreateCommentAndValidate(t, db, post, bob, "prior comment")

	// alice comments on post, lands back on the post
	w := do(router, http.MethodPost, fmt.Sprintf("/posts/%d/comments", post.Id), aliceToken, gin.H{
		"text": "from alice",
	})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, fmt.Sprintf("/posts/%d", post.Id), w.Header().Get("Location"))

	// ordered after all prior comments
	w = do(router, http.MethodGet, fmt.Sprintf("/posts/%d", post.Id), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		Comments []struct {
			Id   uint   `json:"id"`
			Text string `json:"text"`
		} `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	require.Len(t, detail.Comments, 2)
	require.Equal(t, "from alice", detail.Comments[1].Text)

	// bob tries to delete alice's comment: redirect to the post, no mutation
	commentId := detail.Comments[1].Id
	w = do(router, http.MethodDelete, fmt.Sprintf("/comments/%d", commentId), bobToken, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, fmt.Sprintf("/posts/%d", post.Id), w.Header().Get("Location"))

	var still model.Comment
	require.NoError(t, db.First(&still, commentId).Error)
	require.Equal(t, "from alice", still.Text)

	// commenting on a missing post is a 404
	w = do(router, http.MethodPost, "/posts/9999/comments", aliceToken, gin.H{"text": "x"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileFeedOverHTTP(t *testing.T) {
	router, db := newTestRouter(t)

	alice := utils.TestCreateUserAndValidate(t, db, "alice")
	aliceToken := utils.TestCreateSessionAndValidate(t, db, alice)
	utils.TestCreatePostAndValidate(t, db, alice, nil, time.Now().Add(-time.Hour), true)
	utils.TestCreatePostAndValidate(t, db, alice, nil, time.Now().Add(-time.Hour), false)

	type profileResp struct {
		Feed struct {
			Posts []json.RawMessage `json:"posts"`
		} `json:"feed"`
	}

	// self-view includes the draft
	w := do(router, http.MethodGet, "/profile/alice", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var self profileResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &self))
	require.Len(t, self.Feed.Posts, 2)

	// public view does not
	w = do(router, http.MethodGet, "/profile/alice", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var public profileResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &public))
	require.Len(t, public.Feed.Posts, 1)

	w = do(router, http.MethodGet, "/profile/nobody", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileUpdateSelfOnly(t *testing.T) {
	router, db := newTestRouter(t)

	alice := utils.TestCreateUserAndValidate(t, db, "alice")
	aliceToken := utils.TestCreateSessionAndValidate(t, db, alice)

	w := do(router, http.MethodPut, "/profile", aliceToken, gin.H{
		"first_name": "Alice",
		"last_name":  "Liddell",
		"email":      "alice@wonder.land",
	})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))

	var updated model.User
	require.NoError(t, db.First(&updated, alice.Id).Error)
	require.Equal(t, "Liddell", updated.LastName)
}

func TestExpiredSessionIsAnonymous(t *testing.T) {
	router, db := newTestRouter(t)

	alice := utils.TestCreateUserAndValidate(t, db, "alice")
	session := model.Session{
		Token:     "00000000-0000-0000-0000-000000000000",
		UserID:    alice.Id,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, db.Create(&session).Error)

	w := do(router, http.MethodPost, "/posts", session.Token, gin.H{})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/auth/login", w.Header().Get("Location"))
}
