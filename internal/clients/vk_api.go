package clients

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ZetoOfficial/vk-toolkit/internal/config"
	"github.com/ZetoOfficial/vk-toolkit/internal/mapper"
	"github.com/ZetoOfficial/vk-toolkit/internal/models"
	"github.com/antonholmquist/jason"
	"github.com/sirupsen/logrus"
)

// DefaultUserFields запрашиваются у users.get.
var DefaultUserFields = []string{
	"nickname", "screen_name", "sex", "bdate", "city", "country", "timezone",
	"photo", "photo_medium", "photo_big", "has_mobile", "rate", "contacts",
	"education", "online", "counters",
}

type VKClient struct {
	AccessToken string
	BaseURL     string
	Version     string
	Client      *http.Client
}

func NewVKClient(cfg config.Config) *VKClient {
	baseURL := cfg.VKBaseURL
	if baseURL == "" {
		baseURL = config.VKBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	version := cfg.VKAPIVersion
	if version == "" {
		version = config.VKAPIVersion
	}
	return &VKClient{
		AccessToken: cfg.VKAccessToken,
		BaseURL:     baseURL,
		Version:     version,
		Client:      &http.Client{Timeout: cfg.VKTimeout},
	}
}

// VKError is the error envelope returned by the API instead of "response".
type VKError struct {
	Method  string
	Code    int64
	Message string
}

func (e *VKError) Error() string {
	return fmt.Sprintf("vk api error %d in %s: %s", e.Code, e.Method, e.Message)
}

// makeVKRequest выполняет GET-запрос к VK API и возвращает поле "response".
func (vk *VKClient) makeVKRequest(ctx context.Context, method string, params url.Values) (*jason.Value, error) {
	params.Set("access_token", vk.AccessToken)
	params.Set("v", vk.Version)

	fullURL := fmt.Sprintf("%s%s?%s", vk.BaseURL, method, params.Encode())
	fields := logrus.Fields{"method": method}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		logrus.WithFields(fields).WithError(err).Error("Не удалось создать HTTP-запрос")
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := vk.Client.Do(req)
	if err != nil {
		logrus.WithFields(fields).WithError(err).Error("Ошибка выполнения VK API запроса")
		return nil, fmt.Errorf("vk api call: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logrus.WithFields(fields).WithError(err).Warning("Не удалось закрыть тело ответа")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		logrus.WithFields(fields).WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"body":        string(bodyBytes),
		}).Error("Неправильный статус код от VK API")
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := jason.NewObjectFromReader(resp.Body)
	if err != nil {
		logrus.WithFields(fields).WithError(err).Error("Ошибка декодирования JSON ответа от VK API")
		return nil, fmt.Errorf("json decode: %w", err)
	}

	if envelope, err := body.GetObject("error"); err == nil {
		vkErr := &VKError{Method: method}
		vkErr.Code, _ = envelope.GetInt64("error_code")
		vkErr.Message, _ = envelope.GetString("error_msg")
		logrus.WithFields(fields).WithFields(logrus.Fields{
			"error_code": vkErr.Code,
			"error_msg":  vkErr.Message,
		}).Error("VK API вернул ошибку")
		return nil, vkErr
	}

	response, err := body.GetValue("response")
	if err != nil {
		return nil, fmt.Errorf("%s: no response field: %w", method, err)
	}
	return response, nil
}

// objectItems returns the objects of a list response. Legacy responses may
// prefix the array with a total count; newer ones wrap it in {"items": [...]}.
// Elements that are not objects are skipped.
func objectItems(v *jason.Value) ([]*jason.Object, error) {
	values, err := v.Array()
	if err != nil {
		obj, objErr := v.Object()
		if objErr != nil {
			return nil, fmt.Errorf("list response: %w", err)
		}
		values, err = obj.GetValueArray("items")
		if err != nil {
			return nil, fmt.Errorf("list response: %w", err)
		}
	}
	items := make([]*jason.Object, 0, len(values))
	for _, value := range values {
		if obj, err := value.Object(); err == nil {
			items = append(items, obj)
		}
	}
	return items, nil
}

func (vk *VKClient) getList(ctx context.Context, method string, params url.Values) ([]*jason.Object, error) {
	response, err := vk.makeVKRequest(ctx, method, params)
	if err != nil {
		return nil, err
	}
	items, err := objectItems(response)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return items, nil
}

// GetCurrentUserID возвращает ID владельца токена.
func (vk *VKClient) GetCurrentUserID(ctx context.Context) (int64, error) {
	users, err := vk.GetUsers(ctx, nil, nil)
	if err != nil {
		return 0, err
	}
	if len(users) == 0 {
		return 0, fmt.Errorf("empty response")
	}
	logrus.Infof("Получен ID текущего пользователя: %d", users[0].ID)
	return users[0].ID, nil
}

// GetUsers возвращает профили пользователей. Пустой ids означает текущего пользователя.
func (vk *VKClient) GetUsers(ctx context.Context, ids []int64, fields []string) ([]models.User, error) {
	params := url.Values{}
	if len(ids) > 0 {
		params.Set("user_ids", mapper.JoinCommaSeparated(ids))
	}
	if len(fields) > 0 {
		params.Set("fields", mapper.JoinCommaSeparated(fields))
	}

	items, err := vk.getList(ctx, "users.get", params)
	if err != nil {
		return nil, err
	}
	users, err := mapper.MapUsers(items)
	if err != nil {
		return nil, fmt.Errorf("users.get: %w", err)
	}
	return users, nil
}

// GetGroupsByID возвращает сообщества по их ID.
func (vk *VKClient) GetGroupsByID(ctx context.Context, ids []int64) ([]models.Group, error) {
	params := url.Values{}
	params.Set("group_ids", mapper.JoinCommaSeparated(ids))
	params.Set("fields", "city,country,description,wiki_page,start_date")

	items, err := vk.getList(ctx, "groups.getById", params)
	if err != nil {
		return nil, err
	}
	groups, err := mapper.MapGroups(items)
	if err != nil {
		return nil, fmt.Errorf("groups.getById: %w", err)
	}
	return groups, nil
}

// GetAudio возвращает аудиозаписи владельца.
func (vk *VKClient) GetAudio(ctx context.Context, ownerID int64) ([]models.Audio, error) {
	params := url.Values{}
	params.Set("owner_id", strconv.FormatInt(ownerID, 10))

	items, err := vk.getList(ctx, "audio.get", params)
	if err != nil {
		return nil, err
	}
	audios, err := mapper.MapAudios(items)
	if err != nil {
		return nil, fmt.Errorf("audio.get: %w", err)
	}
	return audios, nil
}

// GetLyrics возвращает текст аудиозаписи.
func (vk *VKClient) GetLyrics(ctx context.Context, lyricsID int64) (models.Lyrics, error) {
	params := url.Values{}
	params.Set("lyrics_id", strconv.FormatInt(lyricsID, 10))

	response, err := vk.makeVKRequest(ctx, "audio.getLyrics", params)
	if err != nil {
		return models.Lyrics{}, err
	}
	obj, err := response.Object()
	if err != nil {
		return models.Lyrics{}, fmt.Errorf("audio.getLyrics: %w", err)
	}
	lyrics, err := mapper.MapLyrics(obj)
	if err != nil {
		return models.Lyrics{}, fmt.Errorf("audio.getLyrics: %w", err)
	}
	return lyrics, nil
}

// GetFriendStatuses возвращает статус дружбы текущего пользователя с каждым из ids.
func (vk *VKClient) GetFriendStatuses(ctx context.Context, ids []int64) ([]models.FriendLink, error) {
	params := url.Values{}
	params.Set("user_ids", mapper.JoinCommaSeparated(ids))

	items, err := vk.getList(ctx, "friends.areFriends", params)
	if err != nil {
		return nil, err
	}
	links, err := mapper.MapFriendLinks(items)
	if err != nil {
		return nil, fmt.Errorf("friends.areFriends: %w", err)
	}
	return links, nil
}

// CollectData собирает профили, сообщества, аудиозаписи и статусы дружбы.
func (vk *VKClient) CollectData(ctx context.Context, req models.CollectRequest) (*models.Data, error) {
	logrus.Infof("Начало сбора данных для пользователей: %s", mapper.JoinCommaSeparated(req.UserIDs))
	data := models.NewData()

	users, err := vk.GetUsers(ctx, req.UserIDs, DefaultUserFields)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	userIDs := make([]int64, 0, len(users))
	for _, user := range users {
		data.Users[user.ID] = user
		userIDs = append(userIDs, user.ID)
	}

	if len(req.GroupIDs) > 0 {
		groups, err := vk.GetGroupsByID(ctx, req.GroupIDs)
		if err != nil {
			return nil, fmt.Errorf("get groups: %w", err)
		}
		for _, group := range groups {
			data.Groups[group.ID] = group
		}
	}

	if len(req.UserIDs) > 0 && len(userIDs) > 0 {
		links, err := vk.GetFriendStatuses(ctx, userIDs)
		if err != nil {
			// Статусы дружбы не обязательны, продолжаем сбор
			logrus.Warnf("Не удалось получить статусы дружбы: %v", err)
		} else {
			data.Friends = links
		}
	}

	if req.WithAudio && len(userIDs) > 0 {
		if err := vk.collectAudio(ctx, userIDs[0], data); err != nil {
			return nil, err
		}
	}

	logrus.Infof("Сбор данных завершен: пользователей %d, сообществ %d, аудиозаписей %d",
		len(data.Users), len(data.Groups), len(data.Audios))
	return data, nil
}

func (vk *VKClient) collectAudio(ctx context.Context, ownerID int64, data *models.Data) error {
	audios, err := vk.GetAudio(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("get audio (%d): %w", ownerID, err)
	}
	data.Audios = audios

	for _, audio := range audios {
		if audio.LyricsID == nil {
			continue
		}
		if _, ok := data.Lyrics[*audio.LyricsID]; ok {
			continue
		}
		lyrics, err := vk.GetLyrics(ctx, *audio.LyricsID)
		if err != nil {
			logrus.Errorf("Ошибка получения текста ID: %d: %v", *audio.LyricsID, err)
			// Продолжаем для остальных аудиозаписей
			continue
		}
		data.Lyrics[*audio.LyricsID] = lyrics
	}
	return nil
}
