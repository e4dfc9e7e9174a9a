package clients

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ZetoOfficial/vk-toolkit/internal/config"
	"github.com/ZetoOfficial/vk-toolkit/internal/mapper"
	"github.com/ZetoOfficial/vk-toolkit/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVK struct {
	mu        sync.Mutex
	responses map[string]string
	queries   map[string]url.Values
}

func (f *fakeVK) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	method := strings.TrimPrefix(r.URL.Path, "/")
	f.mu.Lock()
	f.queries[method] = r.URL.Query()
	f.mu.Unlock()

	body, ok := f.responses[method]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func (f *fakeVK) query(method string) url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[method]
}

func newTestClient(t *testing.T, responses map[string]string) (*VKClient, *fakeVK) {
	t.Helper()
	fake := &fakeVK{responses: responses, queries: map[string]url.Values{}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client := NewVKClient(config.Config{
		VKAccessToken: "secret",
		VKBaseURL:     srv.URL,
		VKTimeout:     time.Second,
	})
	return client, fake
}

func TestNewVKClientDefaults(t *testing.T) {
	client := NewVKClient(config.Config{VKAccessToken: "t"})
	assert.Equal(t, config.VKBaseURL, client.BaseURL)
	assert.Equal(t, config.VKAPIVersion, client.Version)
}

func TestGetUsers(t *testing.T) {
	client, fake := newTestClient(t, map[string]string{
		"users.get": `{"response": [
			{"uid": 1, "first_name": "Pavel", "last_name": "Durov", "city": 2, "timezone": "bad"},
			{"uid": 2, "name": "Ivan Petrov"}
		]}`,
	})

	users, err := client.GetUsers(context.Background(), []int64{1, 2}, []string{"city", "timezone"})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Durov", users[0].LastName)
	assert.Equal(t, "2", users[0].City)
	assert.Equal(t, 0.0, users[0].Timezone)
	assert.Equal(t, "Petrov", users[1].LastName)

	q := fake.query("users.get")
	assert.Equal(t, "1,2", q.Get("user_ids"))
	assert.Equal(t, "city,timezone", q.Get("fields"))
	assert.Equal(t, "secret", q.Get("access_token"))
	assert.Equal(t, config.VKAPIVersion, q.Get("v"))
}

func TestGetCurrentUserID(t *testing.T) {
	client, fake := newTestClient(t, map[string]string{
		"users.get": `{"response": [{"uid": 66748}]}`,
	})

	id, err := client.GetCurrentUserID(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 66748, id)
	assert.Empty(t, fake.query("users.get").Get("user_ids"))
}

func TestVKErrorEnvelope(t *testing.T) {
	client, _ := newTestClient(t, map[string]string{
		"users.get": `{"error": {"error_code": 5, "error_msg": "User authorization failed"}}`,
	})

	_, err := client.GetUsers(context.Background(), []int64{1}, nil)
	var vkErr *VKError
	require.True(t, errors.As(err, &vkErr))
	assert.EqualValues(t, 5, vkErr.Code)
	assert.Equal(t, "users.get", vkErr.Method)
	assert.Equal(t, "User authorization failed", vkErr.Message)
}

func TestUnexpectedStatus(t *testing.T) {
	client, _ := newTestClient(t, map[string]string{})

	_, err := client.GetGroupsByID(context.Background(), []int64{1})
	assert.ErrorContains(t, err, "unexpected status code: 404")
}

func TestMappingErrorPropagates(t *testing.T) {
	client, _ := newTestClient(t, map[string]string{
		"groups.getById": `{"response": [{"name": "no gid"}]}`,
	})

	groups, err := client.GetGroupsByID(context.Background(), []int64{1})
	assert.Nil(t, groups)
	assert.ErrorIs(t, err, mapper.ErrCoercion)
}

func TestGetAudioLegacyCountPrefix(t *testing.T) {
	client, fake := newTestClient(t, map[string]string{
		"audio.get": `{"response": [2,
			{"aid": 1, "owner_id": 6492, "duration": 10, "url": "https://vk.com/1.mp3", "lyrics_id": "11"},
			{"aid": 2, "owner_id": 6492, "duration": 20, "url": "https://vk.com/2.mp3"}
		]}`,
	})

	audios, err := client.GetAudio(context.Background(), 6492)
	require.NoError(t, err)
	require.Len(t, audios, 2)
	require.NotNil(t, audios[0].LyricsID)
	assert.EqualValues(t, 11, *audios[0].LyricsID)
	assert.Nil(t, audios[1].LyricsID)
	assert.Equal(t, "6492", fake.query("audio.get").Get("owner_id"))
}

func TestGetAudioItemsWrapper(t *testing.T) {
	client, _ := newTestClient(t, map[string]string{
		"audio.get": `{"response": {"count": 1, "items": [
			{"aid": 1, "owner_id": 1, "duration": 10, "url": "https://vk.com/1.mp3"}
		]}}`,
	})

	audios, err := client.GetAudio(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, audios, 1)
}

func TestGetLyrics(t *testing.T) {
	client, _ := newTestClient(t, map[string]string{
		"audio.getLyrics": `{"response": {"lyrics_id": 11, "text": "la la"}}`,
	})

	lyrics, err := client.GetLyrics(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, models.Lyrics{ID: 11, Text: "la la"}, lyrics)
}

func TestGetFriendStatuses(t *testing.T) {
	client, _ := newTestClient(t, map[string]string{
		"friends.areFriends": `{"response": [{"uid": 1, "friend_status": 3}, {"uid": 2, "friend_status": 0}]}`,
	})

	links, err := client.GetFriendStatuses(context.Background(), []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []models.FriendLink{
		{UserID: 1, Status: models.Friend},
		{UserID: 2, Status: models.NotFriend},
	}, links)
}

func TestCollectData(t *testing.T) {
	client, _ := newTestClient(t, map[string]string{
		"users.get":          `{"response": [{"uid": 1, "first_name": "Pavel"}]}`,
		"groups.getById":     `{"response": [{"gid": 1, "name": "API", "type": "page"}]}`,
		"friends.areFriends": `{"response": [{"uid": 1, "friend_status": 9}]}`,
		"audio.get": `{"response": [
			{"aid": 1, "owner_id": 1, "duration": 10, "url": "https://vk.com/1.mp3", "lyrics_id": "11"},
			{"aid": 2, "owner_id": 1, "duration": 20, "url": "https://vk.com/2.mp3", "lyrics_id": "11"}
		]}`,
		"audio.getLyrics": `{"response": {"lyrics_id": 11, "text": "la la"}}`,
	})

	data, err := client.CollectData(context.Background(), models.CollectRequest{
		UserIDs:   []int64{1},
		GroupIDs:  []int64{1},
		WithAudio: true,
	})
	require.NoError(t, err)
	assert.Contains(t, data.Users, int64(1))
	assert.Equal(t, models.GroupTypePage, data.Groups[1].Type)
	assert.Len(t, data.Audios, 2)
	assert.Equal(t, "la la", data.Lyrics[11].Text)
	// неизвестный статус дружбы не прерывает сбор
	assert.Empty(t, data.Friends)
}
