package member

import (
	"Recipe-Journal/domain"
	"Recipe-Journal/entities"
	"Recipe-Journal/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	// Mailer sends a plain notification mail. Failures are logged by the
	// caller, never surfaced to the member.
	Mailer interface {
		SendMail(toEmail string, subject string, body string) error
	}

	MemberService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, memberID string) (domain.MemberResponse, error)
		UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, memberID string) error
		AddFriend(ctx context.Context, req domain.AddFriendRequest, memberID string) error
		RemoveFriend(ctx context.Context, req domain.RemoveFriendRequest, memberID string) (domain.RemoveFriendResponse, error)
		GetFriends(ctx context.Context, memberID string) ([]domain.FriendResponse, error)
	}

	memberService struct {
		memberRepository MemberRepository
		jwtService       jwt.JWTService
		mailer           Mailer
	}
)

func NewMemberService(memberRepository MemberRepository, jwtService jwt.JWTService, mailer Mailer) MemberService {
	return &memberService{
		memberRepository: memberRepository,
		jwtService:       jwtService,
		mailer:           mailer,
	}
}

func (s *memberService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	taken, err := s.memberRepository.UsernameExists(ctx, req.Username)
	if err != nil {
		return domain.RegisterResponse{}, err
	}
	if taken {
		return domain.RegisterResponse{}, domain.ErrDuplicateUsername
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	member := &entities.Member{
		ID:       uuid.New(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
	}

	if err := s.memberRepository.CreateMember(ctx, member); err != nil {
		return domain.RegisterResponse{}, err
	}

	if s.mailer != nil && member.Email != "" {
		body := fmt.Sprintf("<p>Welcome %s, your recipe journal is ready.</p>", member.Username)
		if err := s.mailer.SendMail(member.Email, "Welcome to your recipe journal", body); err != nil {
			log.Printf("failed to send welcome mail to %s: %v", member.Email, err)
		}
	}

	return domain.RegisterResponse{
		ID:       member.ID.String(),
		Username: member.Username,
	}, nil
}

func (s *memberService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	member, err := s.memberRepository.GetMemberByUsername(ctx, req.Username)
	if err != nil {
		// Unknown username and wrong password produce the same error so
		// the response never reveals which usernames exist.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(member.ID.String(), domain.RoleUser)

	return domain.LoginResponse{
		Token:    token,
		Username: member.Username,
	}, nil
}

func (s *memberService) Me(ctx context.Context, memberID string) (domain.MemberResponse, error) {
	member, err := s.memberRepository.GetMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MemberResponse{}, domain.ErrMemberNotFound
		}
		return domain.MemberResponse{}, err
	}

	return domain.MemberResponse{
		ID:        member.ID.String(),
		Username:  member.Username,
		CreatedAt: member.CreatedAt,
	}, nil
}

// UpdateProfile runs every check before touching the record: a failing
// check leaves the member exactly as it was.
func (s *memberService) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, memberID string) error {
	member, err := s.memberRepository.GetMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMemberNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(req.FormerPassword)); err != nil {
		return domain.ErrWrongFormerPassword
	}

	if req.NewPassword != req.ConfirmNewPassword {
		return domain.ErrPasswordMismatch
	}

	if req.NewUsername != "" && req.NewUsername != member.Username {
		taken, err := s.memberRepository.UsernameExists(ctx, req.NewUsername)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrDuplicateUsername
		}
		member.Username = req.NewUsername
	}

	if req.NewPassword != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		member.Password = string(hashed)
	}

	return s.memberRepository.UpdateMember(ctx, member)
}

func (s *memberService) AddFriend(ctx context.Context, req domain.AddFriendRequest, memberID string) error {
	memberUUID, err := uuid.Parse(memberID)
	if err != nil {
		return domain.ErrParseUUID
	}

	friend, err := s.memberRepository.GetMemberByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFriendNotFound
		}
		return err
	}

	if friend.ID == memberUUID {
		return domain.ErrSelfFriend
	}

	alreadyFriend, err := s.memberRepository.IsFriend(ctx, memberUUID, friend.ID)
	if err != nil {
		return err
	}
	if alreadyFriend {
		return domain.ErrAlreadyFriend
	}

	return s.memberRepository.AddFriend(ctx, memberUUID, friend.ID)
}

func (s *memberService) RemoveFriend(ctx context.Context, req domain.RemoveFriendRequest, memberID string) (domain.RemoveFriendResponse, error) {
	memberUUID, err := uuid.Parse(memberID)
	if err != nil {
		return domain.RemoveFriendResponse{}, domain.ErrParseUUID
	}

	friend, err := s.memberRepository.GetMemberByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Not being a friend is a success outcome with its own message,
			// not an error.
			return domain.RemoveFriendResponse{
				Removed: false,
				Message: domain.MessageFriendNotInList,
			}, nil
		}
		return domain.RemoveFriendResponse{}, err
	}

	removed, err := s.memberRepository.RemoveFriend(ctx, memberUUID, friend.ID)
	if err != nil {
		return domain.RemoveFriendResponse{}, err
	}

	if removed == 0 {
		return domain.RemoveFriendResponse{
			Removed: false,
			Message: domain.MessageFriendNotInList,
		}, nil
	}

	return domain.RemoveFriendResponse{
		Removed: true,
		Message: fmt.Sprintf("%s has been removed from your friend list", req.Username),
	}, nil
}

func (s *memberService) GetFriends(ctx context.Context, memberID string) ([]domain.FriendResponse, error) {
	memberUUID, err := uuid.Parse(memberID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	friends, err := s.memberRepository.GetFriends(ctx, memberUUID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.FriendResponse, 0, len(friends))
	for _, friend := range friends {
		result = append(result, domain.FriendResponse{
			ID:       friend.ID.String(),
			Username: friend.Username,
		})
	}
	return result, nil
}
