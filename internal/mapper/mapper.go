// Package mapper converts VK API response objects into domain models.
//
// Every function here is pure: it reads only its argument and builds a new
// record. A missing or mistyped mandatory field fails the whole call with a
// *FieldError; optional fields fall back to their documented defaults.
package mapper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ZetoOfficial/vk-toolkit/internal/models"
	"github.com/antonholmquist/jason"
)

// MapLyrics преобразует ответ audio.getLyrics в models.Lyrics.
func MapLyrics(obj *jason.Object) (models.Lyrics, error) {
	r := newReader(obj, "lyrics")
	lyrics := models.Lyrics{
		ID:   r.reqInt("lyrics_id"),
		Text: r.reqStr("text"),
	}
	if r.err != nil {
		return models.Lyrics{}, r.err
	}
	return lyrics, nil
}

// MapAudio преобразует элемент ответа audio.get в models.Audio.
//
// lyrics_id and album arrive as string-encoded integers. Only that form of
// album is supported: an album object yields a FieldError.
func MapAudio(obj *jason.Object) (models.Audio, error) {
	r := newReader(obj, "audio")
	audio := models.Audio{
		ID:        r.reqInt("aid"),
		OwnerID:   r.reqInt("owner_id"),
		Duration:  int(r.reqInt("duration")),
		Artist:    r.str("artist"),
		Title:     r.str("title"),
		URL:       r.reqURL("url"),
		Performer: r.str("performer"),
		LyricsID:  r.encodedInt("lyrics_id"),
		AlbumID:   r.encodedInt("album"),
	}
	if r.err != nil {
		return models.Audio{}, r.err
	}
	return audio, nil
}

// MapUser преобразует профиль из ответа users.get в models.User.
func MapUser(obj *jason.Object) (models.User, error) {
	r := newReader(obj, "user")
	user := models.User{
		FirstName:   r.str("first_name"),
		LastName:    r.str("last_name"),
		Nickname:    r.str("nickname"),
		ScreenName:  r.str("screen_name"),
		Sex:         r.optInt("sex"),
		BirthDate:   r.str("bdate"),
		City:        r.str("city"),
		Country:     r.str("country"),
		Photo:       r.str("photo"),
		PhotoMedium: r.str("photo_medium"),
		PhotoBig:    r.str("photo_big"),
		HasMobile:   r.optInt("has_mobile"),
		Rate:        r.str("rate"),
		MobilePhone: r.str("mobile_phone"),
		HomePhone:   r.str("home_phone"),
		Online:      r.optInt("online"),
		NameGen:     r.str("name_gen"),
		Timezone:    r.softFloat("timezone"),
	}

	if r.has("uid") {
		user.ID = r.reqInt("uid")
	} else {
		user.ID = r.softInt("id")
	}

	if r.has("name") {
		user.FirstName, user.LastName = SplitName(r.str("name"))
	}

	if r.has("university") {
		user.Education = &models.Education{
			UniversityID:   r.str("university"),
			UniversityName: r.str("university_name"),
			FacultyID:      r.str("faculty"),
			FacultyName:    r.str("faculty_name"),
			Graduation:     r.str("graduation"),
		}
	}

	if counters := r.object("counters"); counters != nil {
		c, err := mapCounters(counters)
		if err != nil {
			return models.User{}, err
		}
		user.Counters = &c
	}

	if r.err != nil {
		return models.User{}, r.err
	}
	return user, nil
}

// SplitName splits a combined name on the first space. Everything after it,
// further spaces included, is the last name; a name without a space has an
// empty last name.
func SplitName(name string) (first, last string) {
	first, last, _ = strings.Cut(name, " ")
	return first, last
}

func mapCounters(obj *jason.Object) (models.Counters, error) {
	r := newReader(obj, "counters")
	c := models.Counters{
		Albums:        int(r.reqInt("albums")),
		Videos:        int(r.reqInt("videos")),
		Audios:        int(r.reqInt("audios")),
		Notes:         int(r.reqInt("notes")),
		Photos:        int(r.reqInt("photos")),
		Groups:        int(r.reqInt("groups")),
		Friends:       int(r.reqInt("friends")),
		OnlineFriends: int(r.reqInt("online_friends")),
		UserPhotos:    int(r.reqInt("user_photos")),
		UserVideos:    int(r.reqInt("user_videos")),
		Followers:     int(r.reqInt("followers")),
		Subscriptions: int(r.reqInt("subscriptions")),
	}
	if r.err != nil {
		return models.Counters{}, r.err
	}
	return c, nil
}

// MapGroup преобразует элемент ответа groups.getById в models.Group.
//
// is_closed and is_member stay nil when absent, is_admin defaults to false.
func MapGroup(obj *jason.Object) (models.Group, error) {
	r := newReader(obj, "group")
	group := models.Group{
		ID:          r.reqInt("gid"),
		Name:        r.str("name"),
		Link:        r.str("link"),
		Photo:       r.str("photo"),
		PhotoMedium: r.str("photo_medium"),
		PhotoBig:    r.str("photo_big"),
		ScreenName:  r.str("screen_name"),
		Description: r.str("description"),
		WikiPage:    r.str("wiki_page"),
		CityID:      r.optInt("city"),
		CountryID:   r.optInt("country"),
		IsClosed:    r.optFlag("is_closed"),
		IsMember:    r.optFlag("is_member"),
		Type:        DecodeGroupType(r.str("type")),
	}

	if isAdmin := r.optFlag("is_admin"); isAdmin != nil {
		group.IsAdmin = *isAdmin
	}

	if v := r.lookup("start_date"); v != nil {
		if raw, err := text(v); err == nil {
			if ts, err := strconv.ParseInt(raw, 10, 64); err == nil && ts > 0 {
				start := UnixToLocalTime(ts)
				group.StartDate = &start
			}
		}
	}

	if r.err != nil {
		return models.Group{}, r.err
	}
	return group, nil
}

// MapFriendLink преобразует элемент ответа friends.areFriends.
func MapFriendLink(obj *jason.Object) (models.FriendLink, error) {
	r := newReader(obj, "friend_status")
	var link models.FriendLink
	if r.has("uid") {
		link.UserID = r.reqInt("uid")
	} else {
		link.UserID = r.reqInt("user_id")
	}
	code := r.reqInt("friend_status")
	if r.err != nil {
		return models.FriendLink{}, r.err
	}
	status, err := DecodeFriendStatus(code)
	if err != nil {
		return models.FriendLink{}, err
	}
	link.Status = status
	return link, nil
}

func MapUsers(objs []*jason.Object) ([]models.User, error) {
	return mapAll(objs, MapUser)
}

func MapGroups(objs []*jason.Object) ([]models.Group, error) {
	return mapAll(objs, MapGroup)
}

func MapAudios(objs []*jason.Object) ([]models.Audio, error) {
	return mapAll(objs, MapAudio)
}

func MapFriendLinks(objs []*jason.Object) ([]models.FriendLink, error) {
	return mapAll(objs, MapFriendLink)
}

// mapAll fails on the first bad element and returns no partial result.
func mapAll[T any](objs []*jason.Object, fn func(*jason.Object) (T, error)) ([]T, error) {
	out := make([]T, 0, len(objs))
	for i, obj := range objs {
		item, err := fn(obj)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, item)
	}
	return out, nil
}
