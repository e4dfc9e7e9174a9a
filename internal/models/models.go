package models

import (
	"net/url"
	"time"
)

// Lyrics представляет текст аудиозаписи.
type Lyrics struct {
	ID   int64
	Text string
}

// Audio представляет аудиозапись VK.
type Audio struct {
	ID        int64
	OwnerID   int64
	Duration  int // секунды
	Artist    string
	Title     string
	Performer string
	URL       *url.URL
	LyricsID  *int64
	AlbumID   *int64
}

// Education представляет сведения об образовании пользователя.
type Education struct {
	UniversityID   string
	UniversityName string
	FacultyID      string
	FacultyName    string
	Graduation     string
}

// Counters представляет счетчики активности пользователя.
type Counters struct {
	Albums        int
	Videos        int
	Audios        int
	Notes         int
	Photos        int
	Groups        int
	Friends       int
	OnlineFriends int
	UserPhotos    int
	UserVideos    int
	Followers     int
	Subscriptions int
}

// User представляет пользователя VK.
type User struct {
	ID          int64
	FirstName   string
	LastName    string
	Nickname    string
	ScreenName  string
	Sex         *int64
	BirthDate   string
	City        string
	Country     string
	Photo       string
	PhotoMedium string
	PhotoBig    string
	HasMobile   *int64
	Rate        string
	MobilePhone string
	HomePhone   string
	Online      *int64
	NameGen     string
	Timezone    float64
	Education   *Education
	Counters    *Counters
}

// Group представляет сообщество VK.
type Group struct {
	ID          int64
	Name        string
	Link        string
	Photo       string
	PhotoMedium string
	PhotoBig    string
	ScreenName  string
	Description string
	WikiPage    string
	CityID      *int64
	CountryID   *int64
	StartDate   *time.Time
	IsClosed    *bool
	IsMember    *bool
	IsAdmin     bool
	Type        GroupType
}

// GroupType представляет тип сообщества.
type GroupType int

const (
	GroupTypeUndefined GroupType = iota
	GroupTypePage
	GroupTypeEvent
	GroupTypeGroup
)

func (t GroupType) String() string {
	switch t {
	case GroupTypePage:
		return "page"
	case GroupTypeEvent:
		return "event"
	case GroupTypeGroup:
		return "group"
	default:
		return "undefined"
	}
}

// FriendStatus представляет статус дружбы с текущим пользователем.
type FriendStatus int

const (
	NotFriend     FriendStatus = 0
	OutputRequest FriendStatus = 1
	InputRequest  FriendStatus = 2
	Friend        FriendStatus = 3
)

func (s FriendStatus) String() string {
	switch s {
	case NotFriend:
		return "not_friend"
	case OutputRequest:
		return "output_request"
	case InputRequest:
		return "input_request"
	case Friend:
		return "friend"
	default:
		return "unknown"
	}
}

// FriendLink связывает пользователя со статусом дружбы.
type FriendLink struct {
	UserID int64
	Status FriendStatus
}

// Data представляет собранные данные.
type Data struct {
	Users   map[int64]User
	Groups  map[int64]Group
	Audios  []Audio
	Lyrics  map[int64]Lyrics
	Friends []FriendLink
}

// NewData возвращает пустой набор данных.
func NewData() *Data {
	return &Data{
		Users:  make(map[int64]User),
		Groups: make(map[int64]Group),
		Lyrics: make(map[int64]Lyrics),
	}
}

// CollectRequest описывает, какие данные нужно собрать.
type CollectRequest struct {
	UserIDs   []int64 // пусто означает текущего пользователя
	GroupIDs  []int64
	WithAudio bool
}
