package member

import (
	"Recipe-Journal/domain"
	"Recipe-Journal/entities"
	"Recipe-Journal/pkg/jwt"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entities.Member{},
		&entities.Friendship{},
	))
	return db
}

func newTestService(db *gorm.DB) MemberService {
	return NewMemberService(NewMemberRepository(db), jwt.NewJWTService(), nil)
}

func register(t *testing.T, service MemberService, username, password string) domain.RegisterResponse {
	t.Helper()
	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: username,
		Password: password,
	})
	require.NoError(t, err)
	return res
}

func TestMemberServiceRegister(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := newTestService(db)

	t.Run("registration stores a hashed password", func(t *testing.T) {
		res := register(t, service, "alice", "s3cret-pass")
		assert.Equal(t, "alice", res.Username)

		var stored entities.Member
		require.NoError(t, db.Where("username = ?", "alice").First(&stored).Error)
		assert.NotEqual(t, "s3cret-pass", stored.Password)
	})

	t.Run("a taken username is rejected", func(t *testing.T) {
		_, err := service.Register(ctx, domain.RegisterRequest{
			Username: "alice",
			Password: "another-pass",
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
	})
}

func TestMemberServiceLogin(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := newTestService(db)

	register(t, service, "bob", "correct-horse")

	t.Run("valid credentials yield a token", func(t *testing.T) {
		res, err := service.Login(ctx, domain.LoginRequest{Username: "bob", Password: "correct-horse"})
		require.NoError(t, err)
		assert.Equal(t, "bob", res.Username)
		assert.NotEmpty(t, res.Token)
	})

	t.Run("wrong password and unknown username fail identically", func(t *testing.T) {
		_, wrongPassErr := service.Login(ctx, domain.LoginRequest{Username: "bob", Password: "wrong"})
		_, unknownUserErr := service.Login(ctx, domain.LoginRequest{Username: "nobody", Password: "whatever"})

		assert.ErrorIs(t, wrongPassErr, domain.ErrInvalidCredentials)
		assert.ErrorIs(t, unknownUserErr, domain.ErrInvalidCredentials)
		assert.Equal(t, wrongPassErr.Error(), unknownUserErr.Error())
	})
}

func TestMemberServiceUpdateProfile(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := newTestService(db)

	carol := register(t, service, "carol", "old-pass")
	register(t, service, "dave", "dave-pass")

	t.Run("wrong former password blocks any change", func(t *testing.T) {
		err := service.UpdateProfile(ctx, domain.UpdateProfileRequest{
			NewUsername:    "carole",
			FormerPassword: "not-my-pass",
		}, carol.ID)
		assert.ErrorIs(t, err, domain.ErrWrongFormerPassword)

		var stored entities.Member
		require.NoError(t, db.Where("id = ?", carol.ID).First(&stored).Error)
		assert.Equal(t, "carol", stored.Username)
	})

	t.Run("mismatched password confirmation is rejected", func(t *testing.T) {
		err := service.UpdateProfile(ctx, domain.UpdateProfileRequest{
			FormerPassword:     "old-pass",
			NewPassword:        "new-pass",
			ConfirmNewPassword: "other-pass",
		}, carol.ID)
		assert.ErrorIs(t, err, domain.ErrPasswordMismatch)
	})

	t.Run("a taken username is rejected", func(t *testing.T) {
		err := service.UpdateProfile(ctx, domain.UpdateProfileRequest{
			NewUsername:    "dave",
			FormerPassword: "old-pass",
		}, carol.ID)
		assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
	})

	t.Run("username and password change together", func(t *testing.T) {
		err := service.UpdateProfile(ctx, domain.UpdateProfileRequest{
			NewUsername:        "carole",
			FormerPassword:     "old-pass",
			NewPassword:        "new-pass",
			ConfirmNewPassword: "new-pass",
		}, carol.ID)
		require.NoError(t, err)

		_, err = service.Login(ctx, domain.LoginRequest{Username: "carole", Password: "new-pass"})
		assert.NoError(t, err)

		_, err = service.Login(ctx, domain.LoginRequest{Username: "carole", Password: "old-pass"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestMemberServiceFriends(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := newTestService(db)

	erin := register(t, service, "erin", "pass")
	register(t, service, "frank", "pass")
	register(t, service, "grace", "pass")

	t.Run("adding an unknown username fails", func(t *testing.T) {
		err := service.AddFriend(ctx, domain.AddFriendRequest{Username: "nobody"}, erin.ID)
		assert.ErrorIs(t, err, domain.ErrFriendNotFound)
	})

	t.Run("a member cannot befriend themselves", func(t *testing.T) {
		err := service.AddFriend(ctx, domain.AddFriendRequest{Username: "erin"}, erin.ID)
		assert.ErrorIs(t, err, domain.ErrSelfFriend)
	})

	t.Run("friends list is ordered by username", func(t *testing.T) {
		require.NoError(t, service.AddFriend(ctx, domain.AddFriendRequest{Username: "grace"}, erin.ID))
		require.NoError(t, service.AddFriend(ctx, domain.AddFriendRequest{Username: "frank"}, erin.ID))

		friends, err := service.GetFriends(ctx, erin.ID)
		require.NoError(t, err)
		require.Len(t, friends, 2)
		assert.Equal(t, "frank", friends[0].Username)
		assert.Equal(t, "grace", friends[1].Username)
	})

	t.Run("adding the same friend twice fails", func(t *testing.T) {
		err := service.AddFriend(ctx, domain.AddFriendRequest{Username: "frank"}, erin.ID)
		assert.ErrorIs(t, err, domain.ErrAlreadyFriend)
	})

	t.Run("removal reports success with a removal message", func(t *testing.T) {
		res, err := service.RemoveFriend(ctx, domain.RemoveFriendRequest{Username: "frank"}, erin.ID)
		require.NoError(t, err)
		assert.True(t, res.Removed)

		friends, err := service.GetFriends(ctx, erin.ID)
		require.NoError(t, err)
		require.Len(t, friends, 1)
		assert.Equal(t, "grace", friends[0].Username)
	})

	t.Run("removing someone not in the list is a success outcome", func(t *testing.T) {
		res, err := service.RemoveFriend(ctx, domain.RemoveFriendRequest{Username: "frank"}, erin.ID)
		require.NoError(t, err)
		assert.False(t, res.Removed)
		assert.Equal(t, domain.MessageFriendNotInList, res.Message)
	})
}
