package storage

import (
	"github.com/ZetoOfficial/vk-toolkit/internal/models"
)

const (
	saveUserQuery = `
			MERGE (u:User {id: $id})
			SET u.first_name = $first_name, u.last_name = $last_name, u.nickname = $nickname,
				u.screen_name = $screen_name, u.sex = $sex, u.bdate = $bdate,
				u.city = $city, u.country = $country, u.timezone = $timezone,
				u.online = $online, u.university = $university, u.university_name = $university_name,
				u.faculty_name = $faculty_name, u.graduation = $graduation,
				u.friends = $friends, u.followers = $followers, u.groups = $groups, u.audios = $audios
			`
	saveGroupQuery = `
			MERGE (g:Group {id: $id})
			SET g.name = $name, g.screen_name = $screen_name, g.type = $type,
				g.description = $description, g.city_id = $city_id, g.country_id = $country_id,
				g.start_date = $start_date, g.is_closed = $is_closed, g.is_member = $is_member,
				g.is_admin = $is_admin
			`
	// %s is the owner label: User or Group.
	saveAudioQuery = `
			MERGE (o:%s {id: $owner_node_id})
			MERGE (a:Audio {id: $id, owner_id: $owner_id})
			SET a.artist = $artist, a.title = $title, a.performer = $performer,
				a.duration = $duration, a.url = $url, a.album_id = $album_id,
				a.lyrics_id = $lyrics_id, a.lyrics = $lyrics
			MERGE (o)-[:OWNS]->(a)
			`
	saveFriendStatusQuery = `
			MATCH (u:User {id: $id})
			SET u.friend_status = $status
			`
)

// ownerNode resolves an owner id: negative ids belong to groups.
func ownerNode(ownerID int64) (string, int64) {
	if ownerID < 0 {
		return "Group", -ownerID
	}
	return "User", ownerID
}

// optional unwraps a pointer so the driver stores null for nil.
func optional[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func userParams(user models.User) map[string]any {
	params := map[string]any{
		"id":              user.ID,
		"first_name":      user.FirstName,
		"last_name":       user.LastName,
		"nickname":        user.Nickname,
		"screen_name":     user.ScreenName,
		"sex":             optional(user.Sex),
		"bdate":           user.BirthDate,
		"city":            user.City,
		"country":         user.Country,
		"timezone":        user.Timezone,
		"online":          optional(user.Online),
		"university":      nil,
		"university_name": nil,
		"faculty_name":    nil,
		"graduation":      nil,
		"friends":         nil,
		"followers":       nil,
		"groups":          nil,
		"audios":          nil,
	}
	if edu := user.Education; edu != nil {
		params["university"] = edu.UniversityID
		params["university_name"] = edu.UniversityName
		params["faculty_name"] = edu.FacultyName
		params["graduation"] = edu.Graduation
	}
	if c := user.Counters; c != nil {
		params["friends"] = c.Friends
		params["followers"] = c.Followers
		params["groups"] = c.Groups
		params["audios"] = c.Audios
	}
	return params
}

func groupParams(group models.Group) map[string]any {
	return map[string]any{
		"id":          group.ID,
		"name":        group.Name,
		"screen_name": group.ScreenName,
		"type":        group.Type.String(),
		"description": group.Description,
		"city_id":     optional(group.CityID),
		"country_id":  optional(group.CountryID),
		"start_date":  optional(group.StartDate),
		"is_closed":   optional(group.IsClosed),
		"is_member":   optional(group.IsMember),
		"is_admin":    group.IsAdmin,
	}
}

func audioParams(audio models.Audio, lyrics map[int64]models.Lyrics) map[string]any {
	params := map[string]any{
		"id":        audio.ID,
		"owner_id":  audio.OwnerID,
		"artist":    audio.Artist,
		"title":     audio.Title,
		"performer": audio.Performer,
		"duration":  audio.Duration,
		"url":       nil,
		"album_id":  optional(audio.AlbumID),
		"lyrics_id": optional(audio.LyricsID),
		"lyrics":    nil,
	}
	if audio.URL != nil {
		params["url"] = audio.URL.String()
	}
	if audio.LyricsID != nil {
		if l, ok := lyrics[*audio.LyricsID]; ok {
			params["lyrics"] = l.Text
		}
	}
	return params
}
