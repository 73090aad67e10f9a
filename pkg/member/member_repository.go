package member

import (
	"Recipe-Journal/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MemberRepository interface {
		CreateMember(ctx context.Context, member *entities.Member) error
		GetMemberByID(ctx context.Context, id string) (*entities.Member, error)
		GetMemberByUsername(ctx context.Context, username string) (*entities.Member, error)
		UsernameExists(ctx context.Context, username string) (bool, error)
		UpdateMember(ctx context.Context, member *entities.Member) error
		AddFriend(ctx context.Context, memberID, friendID uuid.UUID) error
		RemoveFriend(ctx context.Context, memberID, friendID uuid.UUID) (int64, error)
		IsFriend(ctx context.Context, memberID, friendID uuid.UUID) (bool, error)
		GetFriends(ctx context.Context, memberID uuid.UUID) ([]*entities.Member, error)
	}

	memberRepository struct {
		db *gorm.DB
	}
)

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) CreateMember(ctx context.Context, member *entities.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *memberRepository) GetMemberByID(ctx context.Context, id string) (*entities.Member, error) {
	var member entities.Member
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) GetMemberByUsername(ctx context.Context, username string) (*entities.Member, error) {
	var member entities.Member
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Member{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *memberRepository) UpdateMember(ctx context.Context, member *entities.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *memberRepository) AddFriend(ctx context.Context, memberID, friendID uuid.UUID) error {
	friendship := entities.Friendship{
		ID:       uuid.New(),
		MemberID: memberID,
		FriendID: friendID,
	}
	return r.db.WithContext(ctx).Create(&friendship).Error
}

func (r *memberRepository) RemoveFriend(ctx context.Context, memberID, friendID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("member_id = ? AND friend_id = ?", memberID, friendID).
		Delete(&entities.Friendship{})
	return res.RowsAffected, res.Error
}

func (r *memberRepository) IsFriend(ctx context.Context, memberID, friendID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Friendship{}).
		Where("member_id = ? AND friend_id = ?", memberID, friendID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *memberRepository) GetFriends(ctx context.Context, memberID uuid.UUID) ([]*entities.Member, error) {
	var friends []*entities.Member
	if err := r.db.WithContext(ctx).
		Joins("JOIN friendships ON friendships.friend_id = members.id").
		Where("friendships.member_id = ?", memberID).
		Order("members.username asc").
		Find(&friends).Error; err != nil {
		return nil, err
	}
	return friends, nil
}
