package mapper

import (
	"testing"
	"time"

	"github.com/ZetoOfficial/vk-toolkit/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeGroupType(t *testing.T) {
	tests := map[string]models.GroupType{
		"page":  models.GroupTypePage,
		"event": models.GroupTypeEvent,
		"group": models.GroupTypeGroup,
		"Page":  models.GroupTypeUndefined,
		"":      models.GroupTypeUndefined,
		"club":  models.GroupTypeUndefined,
	}
	for raw, want := range tests {
		assert.Equal(t, want, DecodeGroupType(raw), raw)
	}
}

func TestDecodeFriendStatus(t *testing.T) {
	want := []models.FriendStatus{models.NotFriend, models.OutputRequest, models.InputRequest, models.Friend}
	for code, status := range want {
		got, err := DecodeFriendStatus(int64(code))
		require.NoError(t, err)
		assert.Equal(t, status, got)
	}

	for _, code := range []int64{-1, 4, 100} {
		_, err := DecodeFriendStatus(code)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestUnixToLocalTime(t *testing.T) {
	epoch := UnixToLocalTime(0)
	assert.True(t, epoch.Equal(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.Local, epoch.Location())
	assert.Equal(t, time.Unix(0, 0).Local(), epoch)

	assert.Equal(t, "2011-03-13T07:06:40Z", UnixToLocalTime(1300000000).UTC().Format(time.RFC3339))
}

func TestJoinCommaSeparated(t *testing.T) {
	assert.Equal(t, "", JoinCommaSeparated([]int{}))
	assert.Equal(t, "", JoinCommaSeparated[string](nil))
	assert.Equal(t, "1,2,3", JoinCommaSeparated([]int{1, 2, 3}))
	assert.Equal(t, "durov", JoinCommaSeparated([]string{"durov"}))
	assert.Equal(t, "page,event", JoinCommaSeparated([]models.GroupType{models.GroupTypePage, models.GroupTypeEvent}))
}

func TestSplitName(t *testing.T) {
	first, last := SplitName("Ivan Petrov")
	assert.Equal(t, "Ivan", first)
	assert.Equal(t, "Petrov", last)

	first, last = SplitName("")
	assert.Equal(t, "", first)
	assert.Equal(t, "", last)
}
