package storage

import "sort"

var neo4jQueries = map[string]string{
	// всего пользователей
	"total_users": `
			MATCH (u:User)
			RETURN COUNT(u) AS total_users
		`,
	// всего групп
	"total_groups": `
			MATCH (g:Group)
			RETURN COUNT(g) AS total_groups
		`,
	// всего аудиозаписей
	"total_audios": `
			MATCH (a:Audio)
			RETURN COUNT(a) AS total_audios
		`,
	// топ 5 пользователей по количеству подписчиков
	"top_followers": `
		MATCH (u:User)
		WHERE u.followers IS NOT NULL
		RETURN u.id AS user_id, u.first_name AS first_name, u.last_name AS last_name, u.followers AS followers
		ORDER BY followers DESC
		LIMIT 5
	`,
	// Топ-5 популярных городов среди пользователей
	"top_cities": `
		MATCH (u:User)
		WHERE u.city IS NOT NULL AND u.city <> ''
		RETURN u.city AS city, COUNT(u) AS user_count
		ORDER BY user_count DESC
		LIMIT 5
	`,
	// сообщества по типам
	"groups_by_type": `
		MATCH (g:Group)
		RETURN g.type AS type, COUNT(g) AS group_count
		ORDER BY group_count DESC
	`,
	// Топ-5 исполнителей по количеству аудиозаписей
	"top_artists": `
		MATCH (:User)-[:OWNS]->(a:Audio)
		WHERE a.artist IS NOT NULL AND a.artist <> ''
		RETURN a.artist AS artist, COUNT(a) AS audio_count
		ORDER BY audio_count DESC
		LIMIT 5
	`,
	// аудиозаписи с текстом
	"audios_with_lyrics": `
		MATCH (o)-[:OWNS]->(a:Audio)
		WHERE a.lyrics IS NOT NULL
		RETURN o.id AS owner_id, a.artist AS artist, a.title AS title
	`,
	// пользователи по статусу дружбы
	"friend_statuses": `
		MATCH (u:User)
		WHERE u.friend_status IS NOT NULL
		RETURN u.friend_status AS status, COUNT(u) AS user_count
		ORDER BY user_count DESC
	`,
}

// HasQuery сообщает, есть ли предопределенный запрос с таким именем.
func HasQuery(name string) bool {
	_, ok := neo4jQueries[name]
	return ok
}

func QueryNames() []string {
	names := make([]string, 0, len(neo4jQueries))
	for name := range neo4jQueries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
